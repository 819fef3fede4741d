package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
)

var errNodeDown = errors.New("node down")

type fakeIndex struct {
	mu       sync.Mutex
	pages    map[entity.NonFungibleCategory][][]string
	catalogs map[entity.SemiFungibleCategory][]entity.CatalogItem
	offsets  map[entity.NonFungibleCategory][]int
	catalogN int
	pageErr  error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		pages:    make(map[entity.NonFungibleCategory][][]string),
		catalogs: make(map[entity.SemiFungibleCategory][]entity.CatalogItem),
		offsets:  make(map[entity.NonFungibleCategory][]int),
	}
}

func (f *fakeIndex) NFTPage(_ context.Context, category entity.NonFungibleCategory, _ string, offset int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offsets[category] = append(f.offsets[category], offset)
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	pages := f.pages[category]
	n := offset / PageSize
	if n >= len(pages) {
		return []string{}, nil
	}
	return pages[n], nil
}

func (f *fakeIndex) Catalog(_ context.Context, category entity.SemiFungibleCategory) ([]entity.CatalogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogN++
	return f.catalogs[category], nil
}

func makePage(prefix string, n int) []string {
	page := make([]string, n)
	for i := range page {
		page[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return page
}

type fakeChain struct {
	mu        sync.Mutex
	balances  map[string]int64 // contract/tokenID
	failToken uint64
	calls     int
	fungible  []entity.BalanceResultItem
	batchErr  error
}

func (c *fakeChain) GetBalances(_ context.Context, requests []entity.BalanceRequestItem) ([]entity.BalanceResultItem, error) {
	if c.batchErr != nil {
		return nil, c.batchErr
	}
	if c.fungible != nil {
		return c.fungible, nil
	}
	results := make([]entity.BalanceResultItem, len(requests))
	for i, r := range requests {
		results[i] = entity.BalanceResultItem{Token: r.Token, IsNative: r.Type == entity.NativeBalanceRequest, Balance: new(big.Int)}
	}
	return results, nil
}

func (c *fakeChain) BalanceOfERC1155(_ context.Context, contract, _ string, tokenID uint64) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if tokenID == c.failToken {
		return nil, fmt.Errorf("%w: %w", entity.ErrChainQuery, errNodeDown)
	}
	return big.NewInt(c.balances[fmt.Sprintf("%s/%d", strings.ToLower(contract), tokenID)]), nil
}

type fakeClients struct {
	chain port.BlockchainClient
}

func (p fakeClients) GetClient(context.Context, entity.NetworkDefinition) (port.BlockchainClient, error) {
	return p.chain, nil
}

type staticTokens []entity.TokenInfo

func (t staticTokens) GetTokens(entity.NetworkDefinition) ([]entity.TokenInfo, error) {
	return t, nil
}

var testNetwork = entity.NetworkDefinition{ChainID: 2020, Name: "Ronin Mainnet", Identifier: "ronin", NativeSymbol: "RON", Decimals: 18}

func runeItem(tokenID, id string) entity.CatalogItem {
	return entity.CatalogItem{
		TokenStandard: entity.ERC1155Standard,
		TokenAddress:  "0x" + strings.ToUpper(entity.Rune.Spec().ContractAddress[2:]),
		TokenID:       tokenID,
		ID:            id,
		Name:          id,
	}
}

type memorySink struct {
	mu      sync.Mutex
	written []*entity.WalletSnapshot
	failFor string
}

func (s *memorySink) Write(snapshot *entity.WalletSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot.Wallet == s.failFor {
		return errors.New("disk full")
	}
	s.written = append(s.written, snapshot)
	return nil
}
