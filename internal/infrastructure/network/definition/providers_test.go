package networkdefinition

import (
	"testing"

	"wallet_export/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestUnitProviderAppliesOverrides(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.Nop{}, RPCOverride{
		Identifier:      "RONIN",
		PrimaryRPCURL:   "http://node:8545",
		FallbackRPCURLs: []string{},
	}, RPCOverride{Identifier: "unknown", PrimaryRPCURL: "http://x"})

	def, ok := p.GetNetworkDefinitionByName("ronin")
	require.True(t, ok)
	require.Equal(t, "http://node:8545", def.PrimaryRPCURL)
	require.Empty(t, def.FallbackRPCURLs)

	require.Equal(t, "http://localhost:8545", Ronin.PrimaryRPCURL)
}

func TestUnitProviderListsNetworksByChainID(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.Nop{})

	defs := p.GetAllNetworkDefinitions()
	require.Len(t, defs, 2)
	require.Equal(t, uint64(2020), defs[0].ChainID)
	require.Equal(t, uint64(2021), defs[1].ChainID)

	_, ok := p.GetNetworkDefinitionByName("ethereum")
	require.False(t, ok)
}
