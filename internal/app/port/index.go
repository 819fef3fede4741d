package port

import (
	"context"

	"wallet_export/internal/domain/entity"
)

// HTTPGetter performs a GET and returns the response body. Implementations retry
// transient failures.
type HTTPGetter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// IndexClient reads the paginated REST index.
type IndexClient interface {
	// NFTPage returns one page of asset identifiers starting at offset.
	NFTPage(ctx context.Context, category entity.NonFungibleCategory, address string, offset int) ([]string, error)
	// Catalog returns the full token catalog of a semi-fungible category.
	Catalog(ctx context.Context, category entity.SemiFungibleCategory) ([]entity.CatalogItem, error)
}
