package service

import (
	"context"
	"math/big"
	"testing"

	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func newTestWalletService(index *fakeIndex, chain *fakeChain) *walletServiceImpl {
	clients := fakeClients{chain: chain}
	return NewWalletService(
		NewAssetPaginator(index, logger.Nop{}),
		NewTokenResolver(index, clients, testNetwork, logger.Nop{}, TokenResolverOptions{MaxConcurrent: 4}),
		NewFungibleService(staticTokens{axs}, clients, testNetwork, logger.Nop{}),
		logger.Nop{},
		6,
	).(*walletServiceImpl)
}

func TestUnitProjectTokens(t *testing.T) {
	descs := map[uint64]entity.TokenDescriptor{
		9: {TokenID: 9, ID: "rune_zero", Balance: new(big.Int)},
		4: {TokenID: 4, ID: "rune_seven", Balance: big.NewInt(7)},
		2: {TokenID: 2, ID: "rune_two", Balance: big.NewInt(2)},
	}

	minimal, total := projectTokens(descs)
	require.Equal(t, [][2]string{{"rune_two", "2"}, {"rune_seven", "7"}}, minimal)
	require.Equal(t, int64(9), total.Int64())
}

func TestUnitBuildSnapshotEmptyWallet(t *testing.T) {
	svc := newTestWalletService(newFakeIndex(), &fakeChain{})

	snapshot, err := svc.BuildSnapshot(context.Background(), "ronin:3759468f9fd589665c8affbe52414ef77f863f72")
	require.NoError(t, err)
	require.Equal(t, "0x3759468f9fd589665c8affbe52414ef77f863f72", snapshot.Wallet)
	require.Empty(t, snapshot.Fungible)

	raw, err := jsoniter.Marshal(snapshot)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"wallet": "0x3759468f9fd589665c8affbe52414ef77f863f72",
		"fungible": [],
		"non_fungible": {"axies": [], "lands": [], "items": [], "runes": [], "charms": []}
	}`, string(raw))
}

func TestUnitBuildSnapshotCollectsEveryCategory(t *testing.T) {
	contract := entity.Rune.Spec().ContractAddress
	index := newFakeIndex()
	index.pages[entity.Axie] = [][]string{{"11", "12"}}
	index.pages[entity.Item] = [][]string{{"i1"}}
	index.catalogs[entity.Rune] = []entity.CatalogItem{runeItem("1", "rune_a"), runeItem("2", "rune_b")}
	chain := &fakeChain{balances: map[string]int64{contract + "/2": 7}}

	snapshot, err := newTestWalletService(index, chain).BuildSnapshot(context.Background(), "0x3759468f9fd589665c8affbe52414ef77f863f72")
	require.NoError(t, err)
	require.Equal(t, []string{"11", "12"}, snapshot.NonFungible.Axies)
	require.Equal(t, []string{}, snapshot.NonFungible.Lands)
	require.Equal(t, []string{"i1"}, snapshot.NonFungible.Items)
	require.Equal(t, [][2]string{{"rune_b", "7"}}, snapshot.NonFungible.Runes)
	require.Equal(t, [][2]string{}, snapshot.NonFungible.Charms)

	require.Equal(t, 2, snapshot.Summary.Axies)
	require.Equal(t, 1, snapshot.Summary.RuneKinds)
	require.Equal(t, int64(7), snapshot.Summary.RuneTotal.Int64())
	require.Zero(t, snapshot.Summary.CharmTotal.Sign())
}

func TestUnitBuildSnapshotNoPartialResult(t *testing.T) {
	index := newFakeIndex()
	index.catalogs[entity.Rune] = []entity.CatalogItem{runeItem("1", "rune_a")}
	chain := &fakeChain{failToken: 1}

	snapshot, err := newTestWalletService(index, chain).BuildSnapshot(context.Background(), "0x3759468f9fd589665c8affbe52414ef77f863f72")
	require.ErrorIs(t, err, entity.ErrChainQuery)
	require.Nil(t, snapshot)
}

func TestUnitBuildSnapshotValidatesBeforeIO(t *testing.T) {
	index := newFakeIndex()

	_, err := newTestWalletService(index, &fakeChain{}).BuildSnapshot(context.Background(), "ronin:xyz")
	require.ErrorIs(t, err, entity.ErrValidation)
	require.Empty(t, index.offsets)
	require.Zero(t, index.catalogN)
}
