package client

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// roninRestClient reads asset pages and token catalogs from the ronin.rest index.
type roninRestClient struct {
	http    port.HTTPGetter
	baseURL string
	logger  *zap.Logger
}

// NewRoninRestClient creates an index client on top of a retrying HTTP getter.
func NewRoninRestClient(baseURL string, http port.HTTPGetter, logger *zap.Logger) port.IndexClient {
	return &roninRestClient{
		http:    http,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Named("RoninRestClient"),
	}
}

// NFTPage implements port.IndexClient.
func (c *roninRestClient) NFTPage(ctx context.Context, category entity.NonFungibleCategory, address string, offset int) ([]string, error) {
	field := category.Spec().Name
	requestURL := fmt.Sprintf("%s/ronin/nfts/%s/%s?offset=%d", c.baseURL, field, address, offset)

	c.logger.Debug("Requesting asset page", zap.String("url", requestURL))
	body, err := c.http.Get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var doc map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s page at offset %d: %w", entity.ErrParse, field, offset, err)
	}

	raw, ok := doc[field]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		c.logger.Error("Asset page is missing its category field",
			zap.String("url", requestURL),
			zap.String("field", field),
			zap.ByteString("responseBody", body))
		return nil, fmt.Errorf("%w: %s page at offset %d has no %q field", entity.ErrParse, field, offset, field)
	}

	var entries []jsoniter.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %q field of %s page is not an array: %w", entity.ErrParse, field, field, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.ReplaceAll(string(e), `"`, ""))
	}
	return ids, nil
}

// Catalog implements port.IndexClient.
func (c *roninRestClient) Catalog(ctx context.Context, category entity.SemiFungibleCategory) ([]entity.CatalogItem, error) {
	requestURL := c.baseURL + category.Spec().CatalogPath

	c.logger.Debug("Requesting token catalog", zap.String("url", requestURL))
	body, err := c.http.Get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var resp catalogResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode %s catalog: %w", entity.ErrParse, category, err)
	}
	if resp.Items == nil {
		return nil, fmt.Errorf("%w: %s catalog has no _items field", entity.ErrParse, category)
	}

	items := make([]entity.CatalogItem, 0, len(*resp.Items))
	for _, env := range *resp.Items {
		items = append(items, env.Item.toEntity())
	}

	c.logger.Debug("Token catalog decoded", zap.String("category", category.String()), zap.Int("items", len(items)))
	return items, nil
}
