package service

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/metrics"
	"wallet_export/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

type walletServiceImpl struct {
	paginator     port.AssetPaginator
	resolver      port.TokenResolver
	fungible      port.FungibleService
	logger        port.Logger
	maxConcurrent int
}

// NewWalletService creates the aggregator combining every category into one snapshot.
// maxConcurrent bounds the category fetches running at once.
func NewWalletService(
	paginator port.AssetPaginator,
	resolver port.TokenResolver,
	fungible port.FungibleService,
	logger port.Logger,
	maxConcurrent int,
) port.SnapshotBuilder {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &walletServiceImpl{
		paginator:     paginator,
		resolver:      resolver,
		fungible:      fungible,
		logger:        logger,
		maxConcurrent: maxConcurrent,
	}
}

// BuildSnapshot fetches every category of address concurrently. The snapshot is only
// returned when all of them succeed.
func (s *walletServiceImpl) BuildSnapshot(ctx context.Context, address string) (snapshot *entity.WalletSnapshot, err error) {
	defer func() { metrics.CollectSnapshot(err) }()

	wallet, err := utils.CanonicalAddress(address)
	if err != nil {
		return nil, err
	}

	var (
		fungible []entity.FungibleBalance
		ids      = make(map[entity.NonFungibleCategory][]string)
		tokens   = make(map[entity.SemiFungibleCategory]map[uint64]entity.TokenDescriptor)
	)
	nfCats := entity.NonFungibleCategories()
	sfCats := entity.SemiFungibleCategories()
	idResults := make([][]string, len(nfCats))
	tokenResults := make([]map[uint64]entity.TokenDescriptor, len(sfCats))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	g.Go(func() error {
		balances, err := s.fungible.ListFungible(gCtx, wallet)
		if err != nil {
			return fmt.Errorf("fungible: %w", err)
		}
		fungible = balances
		return nil
	})
	for i, cat := range nfCats {
		g.Go(func() error {
			list, err := s.paginator.ListIDs(gCtx, cat, wallet)
			if err != nil {
				return fmt.Errorf("%s: %w", cat, err)
			}
			idResults[i] = list
			return nil
		})
	}
	for i, cat := range sfCats {
		g.Go(func() error {
			resolved, err := s.resolver.ListBalances(gCtx, cat, wallet)
			if err != nil {
				return fmt.Errorf("%s: %w", cat, err)
			}
			tokenResults[i] = resolved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to build wallet snapshot", "address", wallet, "error", err)
		return nil, fmt.Errorf("snapshot of %s: %w", wallet, err)
	}

	for i, cat := range nfCats {
		ids[cat] = idResults[i]
	}
	for i, cat := range sfCats {
		tokens[cat] = tokenResults[i]
	}

	snapshot = assembleSnapshot(wallet, fungible, ids, tokens)
	s.logger.Info("Wallet snapshot built", "address", wallet,
		"fungible", snapshot.Summary.FungibleTokens,
		"axies", snapshot.Summary.Axies, "lands", snapshot.Summary.Lands, "items", snapshot.Summary.Items,
		"rune_kinds", snapshot.Summary.RuneKinds, "charm_kinds", snapshot.Summary.CharmKinds)
	return snapshot, nil
}

func assembleSnapshot(
	wallet string,
	fungible []entity.FungibleBalance,
	ids map[entity.NonFungibleCategory][]string,
	tokens map[entity.SemiFungibleCategory]map[uint64]entity.TokenDescriptor,
) *entity.WalletSnapshot {
	if fungible == nil {
		fungible = []entity.FungibleBalance{}
	}
	snapshot := &entity.WalletSnapshot{
		Wallet:      wallet,
		Fungible:    fungible,
		NonFungible: entity.NewNonFungibleHoldings(),
	}

	for cat, list := range ids {
		if list != nil {
			*snapshot.NonFungible.IDs(cat) = list
		}
	}

	summary := entity.WalletSummary{
		FungibleTokens: len(fungible),
		Axies:          len(snapshot.NonFungible.Axies),
		Lands:          len(snapshot.NonFungible.Lands),
		Items:          len(snapshot.NonFungible.Items),
		RuneTotal:      new(big.Int),
		CharmTotal:     new(big.Int),
	}
	for cat, descs := range tokens {
		minimal, total := projectTokens(descs)
		*snapshot.NonFungible.Tokens(cat) = minimal
		switch cat {
		case entity.Rune:
			summary.RuneKinds, summary.RuneTotal = len(minimal), total
		case entity.Charm:
			summary.CharmKinds, summary.CharmTotal = len(minimal), total
		}
	}
	snapshot.Summary = summary
	return snapshot
}

// projectTokens keeps the held descriptors as minimal pairs ordered by token id and
// sums their balances.
func projectTokens(descs map[uint64]entity.TokenDescriptor) ([][2]string, *big.Int) {
	held := make([]entity.TokenDescriptor, 0, len(descs))
	for _, d := range descs {
		if d.Held() {
			held = append(held, d)
		}
	}
	sort.Slice(held, func(i, j int) bool { return held[i].TokenID < held[j].TokenID })

	minimal := make([][2]string, 0, len(held))
	balances := make([]*big.Int, 0, len(held))
	for _, d := range held {
		minimal = append(minimal, d.Minimal())
		balances = append(balances, d.Balance)
	}
	return minimal, utils.SumBalances(balances...)
}
