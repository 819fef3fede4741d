package provider

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestUnitPromptWalletProvider(t *testing.T) {
	var out bytes.Buffer
	p := NewPromptWalletProvider(strings.NewReader("ronin:3759468f9fd589665c8affbe52414ef77f863f72\n"), &out)

	wallets, err := p.GetWallets()
	require.NoError(t, err)
	require.Equal(t, []entity.Wallet{{Address: "0x3759468f9fd589665c8affbe52414ef77f863f72"}}, wallets)
	require.Contains(t, out.String(), "Wallet address")

	_, err = NewPromptWalletProvider(strings.NewReader("\n"), &out).GetWallets()
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestUnitAddressWalletProviderNormalizes(t *testing.T) {
	wallets, err := NewAddressWalletProvider(" RONIN:abc ").GetWallets()
	require.NoError(t, err)
	require.Equal(t, "0xabc", wallets[0].Address)
}

type countingLoader struct {
	calls int
	err   error
}

func (l *countingLoader) GetTokens(entity.NetworkDefinition) ([]entity.TokenInfo, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return []entity.TokenInfo{{Symbol: "AXS"}}, nil
}

func TestUnitTokenProviderCachesPerNetwork(t *testing.T) {
	loader := &countingLoader{}
	p := NewTokenProvider(loader, logger.Nop{})
	net := entity.NetworkDefinition{Identifier: "ronin"}

	for i := 0; i < 3; i++ {
		tokens, err := p.GetTokens(net)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
	}
	require.Equal(t, 1, loader.calls)
}

func TestUnitTokenProviderDoesNotCacheErrors(t *testing.T) {
	loader := &countingLoader{err: errors.New("disk")}
	p := NewTokenProvider(loader, logger.Nop{})
	net := entity.NetworkDefinition{Identifier: "ronin"}

	_, err := p.GetTokens(net)
	require.Error(t, err)
	_, err = p.GetTokens(net)
	require.Error(t, err)
	require.Equal(t, 2, loader.calls)
}
