package port

import (
	"context"

	"wallet_export/internal/domain/entity"
)

// WalletProvider yields the wallets of a run.
type WalletProvider interface {
	GetWallets() ([]entity.Wallet, error)
}

// AssetPaginator lists every non-fungible identifier a wallet holds in a category.
type AssetPaginator interface {
	ListIDs(ctx context.Context, category entity.NonFungibleCategory, address string) ([]string, error)
}

// TokenResolver resolves the semi-fungible balances of a wallet in a category.
type TokenResolver interface {
	ListBalances(ctx context.Context, category entity.SemiFungibleCategory, address string) (map[uint64]entity.TokenDescriptor, error)
}

// FungibleService lists non-zero fungible balances of a wallet.
type FungibleService interface {
	ListFungible(ctx context.Context, address string) ([]entity.FungibleBalance, error)
}

// SnapshotBuilder assembles the complete snapshot of one wallet.
type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context, address string) (*entity.WalletSnapshot, error)
}

// SnapshotSink persists a finished snapshot.
type SnapshotSink interface {
	Write(snapshot *entity.WalletSnapshot) error
}
