package port

import "wallet_export/internal/domain/entity"

// TokenProvider defines the interface for fetching fungible token definitions.
type TokenProvider interface {
	// GetTokens returns the fungible tokens tracked on the network.
	GetTokens(netDef entity.NetworkDefinition) ([]entity.TokenInfo, error)
}
