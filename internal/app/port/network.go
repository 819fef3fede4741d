package port

import (
	"context"
	"math/big"

	"wallet_export/internal/domain/entity"
)

// BlockchainClient defines the read-only chain operations the exporter needs.
type BlockchainClient interface {
	// GetBalances resolves native and ERC20 balances in one JSON-RPC batch.
	// Per-item failures are reported on the result item; the error is for the batch itself.
	GetBalances(ctx context.Context, requests []entity.BalanceRequestItem) ([]entity.BalanceResultItem, error)

	// BalanceOfERC1155 calls balanceOf(owner, tokenID) on a multi-token contract.
	BalanceOfERC1155(ctx context.Context, contract, owner string, tokenID uint64) (*big.Int, error)
}

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	GetAllNetworkDefinitions() []entity.NetworkDefinition
	GetNetworkDefinitionByName(nameOrIdentifier string) (entity.NetworkDefinition, bool)
}

// BlockchainClientProvider hands out (and caches) clients per network.
type BlockchainClientProvider interface {
	GetClient(ctx context.Context, networkDefinition entity.NetworkDefinition) (BlockchainClient, error)
}
