package tokenloader

import (
	"os"
	"path/filepath"
	"testing"

	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

var ronin = entity.NetworkDefinition{ChainID: 2020, Identifier: "ronin"}

func TestUnitGetTokensFallsBackToBuiltin(t *testing.T) {
	l := NewTokenLoader(t.TempDir(), logger.Nop{})

	tokens, err := l.GetTokens(ronin)
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	require.Equal(t, "WRON", tokens[0].Symbol)
}

func TestUnitGetTokensSkipsMismatchedChain(t *testing.T) {
	dir := t.TempDir()
	body := `[
		{"chainId": 2020, "address": "0x97a9107c1793bc407d6f527b77e7fff4d812bece", "name": "Axie Infinity Shard", "symbol": "AXS", "decimals": 18},
		{"chainId": 1, "address": "0xdac17f958d2ee523a2206206994597c13d831ec7", "name": "Tether", "symbol": "USDT", "decimals": 6}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ronin.json"), []byte(body), 0o600))

	tokens, err := NewTokenLoader(dir, logger.Nop{}).GetTokens(ronin)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, "AXS", tokens[0].Symbol)
}

func TestUnitGetTokensRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ronin.json"), []byte("{"), 0o600))

	_, err := NewTokenLoader(dir, logger.Nop{}).GetTokens(ronin)
	require.Error(t, err)
}
