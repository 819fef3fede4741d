package provider

import (
	"sync"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
)

type tokenProviderImpl struct {
	loader port.TokenProvider
	logger port.Logger

	mu          sync.Mutex
	tokensCache map[string][]entity.TokenInfo // key: network identifier
}

// NewTokenProvider caches the token lists produced by loader per network.
func NewTokenProvider(loader port.TokenProvider, logger port.Logger) port.TokenProvider {
	return &tokenProviderImpl{
		loader:      loader,
		logger:      logger,
		tokensCache: make(map[string][]entity.TokenInfo),
	}
}

// GetTokens returns the cached list, loading it on first use.
func (p *tokenProviderImpl) GetTokens(netDef entity.NetworkDefinition) ([]entity.TokenInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if tokens, ok := p.tokensCache[netDef.Identifier]; ok {
		return tokens, nil
	}

	tokens, err := p.loader.GetTokens(netDef)
	if err != nil {
		p.logger.Error("Failed to load tokens", "network", netDef.Identifier, "error", err)
		return nil, err
	}

	p.tokensCache[netDef.Identifier] = tokens
	p.logger.Debug("Tokens loaded and cached", "network", netDef.Identifier, "count", len(tokens))
	return tokens, nil
}
