package service

import (
	"context"
	"fmt"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/utils"
)

type fungibleServiceImpl struct {
	tokens  port.TokenProvider
	clients port.BlockchainClientProvider
	netDef  entity.NetworkDefinition
	logger  port.Logger
}

// NewFungibleService creates a service listing the native coin and tracked ERC20 balances.
func NewFungibleService(
	tokens port.TokenProvider,
	clients port.BlockchainClientProvider,
	netDef entity.NetworkDefinition,
	logger port.Logger,
) port.FungibleService {
	return &fungibleServiceImpl{tokens: tokens, clients: clients, netDef: netDef, logger: logger}
}

// ListFungible returns the non-zero balances of address, native coin first.
// Any failed lookup fails the whole listing.
func (s *fungibleServiceImpl) ListFungible(ctx context.Context, address string) ([]entity.FungibleBalance, error) {
	tokens, err := s.tokens.GetTokens(s.netDef)
	if err != nil {
		return nil, fmt.Errorf("load tokens for %s: %w", s.netDef.Identifier, err)
	}

	client, err := s.clients.GetClient(ctx, s.netDef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrChainQuery, err)
	}

	requests := make([]entity.BalanceRequestItem, 0, len(tokens)+1)
	requests = append(requests, entity.BalanceRequestItem{
		Type:          entity.NativeBalanceRequest,
		WalletAddress: address,
		Token: entity.TokenInfo{
			ChainID:  s.netDef.ChainID,
			Address:  entity.ZeroAddress,
			Name:     s.netDef.Name,
			Symbol:   s.netDef.NativeSymbol,
			Decimals: uint8(s.netDef.Decimals),
		},
	})
	for _, token := range tokens {
		requests = append(requests, entity.BalanceRequestItem{
			Type:          entity.TokenBalanceRequest,
			WalletAddress: address,
			Token:         token,
		})
	}

	results, err := client.GetBalances(ctx, requests)
	if err != nil {
		return nil, fmt.Errorf("fungible balances of %s: %w", address, err)
	}

	balances := make([]entity.FungibleBalance, 0, len(results))
	for _, res := range results {
		if res.Error != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrChainQuery, res.Error)
		}
		if res.Balance == nil || res.Balance.Sign() == 0 {
			continue
		}
		balances = append(balances, entity.FungibleBalance{
			TokenSymbol:      res.Token.Symbol,
			TokenAddress:     res.Token.Address,
			Decimals:         res.Token.Decimals,
			Balance:          res.Balance.String(),
			FormattedBalance: utils.FormatBigInt(res.Balance, res.Token.Decimals),
			IsNative:         res.IsNative,
			Amount:           res.Balance,
		})
	}

	s.logger.Debug("Listed fungible balances", "address", address, "queried", len(requests), "non_zero", len(balances))
	return balances, nil
}
