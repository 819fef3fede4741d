package networkdefinition

import (
	"sort"
	"strings"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
)

// NetworkDefinitionProvider provides network definitions.
type NetworkDefinitionProvider struct {
	logger  port.Logger
	allDefs map[string]entity.NetworkDefinition
}

var ( //nolint:gochecknoglobals // Global for definitions
	Ronin = entity.NetworkDefinition{
		ChainID:          2020,
		Name:             "Ronin Mainnet",
		Identifier:       "ronin",
		NativeSymbol:     "RON",
		Decimals:         18,
		PrimaryRPCURL:    "http://localhost:8545",
		FallbackRPCURLs:  []string{"https://api.roninchain.com/rpc"},
		BlockExplorerURL: "https://app.roninchain.com",
	}
	Saigon = entity.NetworkDefinition{
		ChainID:          2021,
		Name:             "Saigon Testnet",
		Identifier:       "saigon",
		NativeSymbol:     "RON",
		Decimals:         18,
		PrimaryRPCURL:    "https://saigon-testnet.roninchain.com/rpc",
		BlockExplorerURL: "https://saigon-app.roninchain.com",
	}
)

var allKnownDefinitions = map[string]entity.NetworkDefinition{ //nolint:gochecknoglobals // static table
	Ronin.Identifier:  Ronin,
	Saigon.Identifier: Saigon,
}

// RPCOverride replaces the RPC endpoints of one network, typically from configuration.
type RPCOverride struct {
	Identifier      string
	PrimaryRPCURL   string
	FallbackRPCURLs []string
}

// NewNetworkDefinitionProvider creates a provider over the built-in networks with
// the given RPC overrides applied.
func NewNetworkDefinitionProvider(log port.Logger, overrides ...RPCOverride) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger:  log,
		allDefs: make(map[string]entity.NetworkDefinition, len(allKnownDefinitions)),
	}
	for id, def := range allKnownDefinitions {
		def.FallbackRPCURLs = append([]string(nil), def.FallbackRPCURLs...)
		p.allDefs[id] = def
	}

	for _, o := range overrides {
		id := strings.ToLower(o.Identifier)
		def, ok := p.allDefs[id]
		if !ok {
			p.logger.Warn("RPC override for unknown network ignored", "network", o.Identifier)
			continue
		}
		if o.PrimaryRPCURL != "" {
			def.PrimaryRPCURL = o.PrimaryRPCURL
		}
		if o.FallbackRPCURLs != nil {
			def.FallbackRPCURLs = append([]string(nil), o.FallbackRPCURLs...)
		}
		p.allDefs[id] = def
		p.logger.Debug("RPC endpoints overridden", "network", def.Name, "rpc_primary", def.PrimaryRPCURL, "fallbacks", len(def.FallbackRPCURLs))
	}

	return p
}

// GetAllNetworkDefinitions returns every known network ordered by chain id.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	defs := make([]entity.NetworkDefinition, 0, len(p.allDefs))
	for _, def := range p.allDefs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ChainID < defs[j].ChainID })
	return defs
}

// GetNetworkDefinitionByName returns a network by identifier (case-insensitive).
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool) {
	def, ok := p.allDefs[strings.ToLower(strings.TrimSpace(identifier))]
	return def, ok
}
