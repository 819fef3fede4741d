package service

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DiscoverTokens turns a catalog into zero-balance descriptors. Only multi-token entries
// of the category's contract with a positive token id are kept; a repeated id
// overwrites the earlier entry.
func DiscoverTokens(items []entity.CatalogItem, category entity.SemiFungibleCategory) map[uint64]entity.TokenDescriptor {
	contract := category.Spec().ContractAddress
	candidates := make(map[uint64]entity.TokenDescriptor)

	for _, item := range items {
		if item.TokenStandard != entity.ERC1155Standard || !strings.EqualFold(item.TokenAddress, contract) {
			continue
		}
		tokenID, err := strconv.ParseUint(strings.TrimSpace(item.TokenID), 10, 64)
		if err != nil || tokenID == 0 {
			continue
		}
		candidates[tokenID] = entity.TokenDescriptor{
			TokenID:     tokenID,
			ID:          item.ID,
			Name:        item.Name,
			Category:    category,
			Kind:        item.Category,
			Rarity:      item.Rarity,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			Balance:     new(big.Int),
		}
	}
	return candidates
}

// ResolveBalances queries balanceOf(owner, id) for every candidate and returns a new map
// with the balances filled in. The first failed query aborts the whole resolution.
func ResolveBalances(
	ctx context.Context,
	candidates map[uint64]entity.TokenDescriptor,
	chain port.BlockchainClient,
	contract, owner string,
	maxConcurrent int,
) (map[uint64]entity.TokenDescriptor, error) {
	resolved := make(map[uint64]entity.TokenDescriptor, len(candidates))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	if maxConcurrent > 0 {
		g.SetLimit(maxConcurrent)
	}

	for tokenID, desc := range candidates {
		g.Go(func() error {
			balance, err := chain.BalanceOfERC1155(gCtx, contract, owner, tokenID)
			if err != nil {
				return err
			}
			desc.Balance = balance
			mu.Lock()
			resolved[tokenID] = desc
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// TokenResolverOptions tunes the resolver.
type TokenResolverOptions struct {
	CatalogTTL    time.Duration
	MaxConcurrent int
}

type tokenResolverImpl struct {
	index   port.IndexClient
	clients port.BlockchainClientProvider
	netDef  entity.NetworkDefinition
	logger  port.Logger

	catalogs      *cache.Cache
	fetches       singleflight.Group
	maxConcurrent int
}

// NewTokenResolver creates a resolver that reads catalogs from index and balances from
// the chain client of netDef. Catalogs are cached for opts.CatalogTTL.
func NewTokenResolver(
	index port.IndexClient,
	clients port.BlockchainClientProvider,
	netDef entity.NetworkDefinition,
	logger port.Logger,
	opts TokenResolverOptions,
) port.TokenResolver {
	ttl := opts.CatalogTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &tokenResolverImpl{
		index:         index,
		clients:       clients,
		netDef:        netDef,
		logger:        logger,
		catalogs:      cache.New(ttl, 2*ttl),
		maxConcurrent: opts.MaxConcurrent,
	}
}

// ListBalances discovers the category's tokens and resolves every balance of address.
func (r *tokenResolverImpl) ListBalances(ctx context.Context, category entity.SemiFungibleCategory, address string) (map[uint64]entity.TokenDescriptor, error) {
	catalog, err := r.catalog(ctx, category)
	if err != nil {
		return nil, err
	}

	candidates := DiscoverTokens(catalog, category)
	r.logger.Debug("Discovered semi-fungible tokens", "category", category.String(), "catalog_size", len(catalog), "candidates", len(candidates))
	if len(candidates) == 0 {
		return candidates, nil
	}

	chain, err := r.clients.GetClient(ctx, r.netDef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrChainQuery, err)
	}

	resolved, err := ResolveBalances(ctx, candidates, chain, category.Spec().ContractAddress, address, r.maxConcurrent)
	if err != nil {
		return nil, fmt.Errorf("resolve %s balances of %s: %w", category, address, err)
	}
	return resolved, nil
}

func (r *tokenResolverImpl) catalog(ctx context.Context, category entity.SemiFungibleCategory) ([]entity.CatalogItem, error) {
	key := category.Spec().Name
	if cached, found := r.catalogs.Get(key); found {
		return cached.([]entity.CatalogItem), nil
	}

	// The shared fetch must outlive any single caller; each caller still stops waiting
	// when its own context ends.
	ch := r.fetches.DoChan(key, func() (interface{}, error) {
		items, err := r.index.Catalog(context.WithoutCancel(ctx), category)
		if err != nil {
			return nil, err
		}
		r.catalogs.SetDefault(key, items)
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch %s catalog: %w", category, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("fetch %s catalog: %w", category, res.Err)
		}
		return res.Val.([]entity.CatalogItem), nil
	}
}
