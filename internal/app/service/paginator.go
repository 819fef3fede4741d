package service

import (
	"context"
	"fmt"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
)

// PageSize is the number of identifiers in a full index page.
const PageSize = 25

type assetPaginatorImpl struct {
	index  port.IndexClient
	logger port.Logger
}

// NewAssetPaginator creates a paginator over the index client.
func NewAssetPaginator(index port.IndexClient, logger port.Logger) port.AssetPaginator {
	return &assetPaginatorImpl{index: index, logger: logger}
}

// ListIDs walks the category pages of address until a page holds fewer than PageSize
// entries. Pages are fetched one after another since each offset depends on the last page.
func (p *assetPaginatorImpl) ListIDs(ctx context.Context, category entity.NonFungibleCategory, address string) ([]string, error) {
	ids := make([]string, 0)
	pages := 0

	for offset := 0; ; offset += PageSize {
		page, err := p.index.NFTPage(ctx, category, address, offset)
		if err != nil {
			return nil, fmt.Errorf("list %s ids of %s at offset %d: %w", category, address, offset, err)
		}
		pages++
		ids = append(ids, page...)

		if len(page) != PageSize {
			break
		}
	}

	p.logger.Debug("Listed non-fungible ids", "category", category.String(), "address", address, "pages", pages, "count", len(ids))
	return ids, nil
}
