package client

import (
	"context"
	"fmt"
	"sync"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
)

// evmClientProvider implements port.BlockchainClientProvider. Clients are dialed lazily
// and cached per network identifier; they are safe for concurrent reuse.
type evmClientProvider struct {
	clients map[string]port.BlockchainClient
	mu      sync.Mutex
	opts    EVMClientOptions
	logger  port.Logger
	dial    func(ctx context.Context, netDef entity.NetworkDefinition, opts EVMClientOptions) (port.BlockchainClient, error)
}

// NewEVMClientProvider creates a new EVMClientProvider.
func NewEVMClientProvider(opts EVMClientOptions, logger port.Logger) port.BlockchainClientProvider {
	return &evmClientProvider{
		clients: make(map[string]port.BlockchainClient),
		opts:    opts,
		logger:  logger,
		dial:    NewEVMClient,
	}
}

// GetClient returns the cached client for the network, dialing it on first use.
func (p *evmClientProvider) GetClient(ctx context.Context, netDef entity.NetworkDefinition) (port.BlockchainClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, exists := p.clients[netDef.Identifier]; exists {
		return c, nil
	}

	p.logger.Info("Creating new EVM client", "network", netDef.Name, "rpc_primary", netDef.PrimaryRPCURL)
	c, err := p.dial(ctx, netDef, p.opts)
	if err != nil {
		p.logger.Error("Failed to create EVM client", "network", netDef.Name, "error", err)
		return nil, fmt.Errorf("failed to create EVM client for %s: %w", netDef.Name, err)
	}

	p.clients[netDef.Identifier] = c
	return c, nil
}
