package main

import (
	"fmt"
	"strings"
	"time"

	"wallet_export/internal/app/port"
	"wallet_export/internal/app/provider"
	"wallet_export/internal/app/service"
	roninrest "wallet_export/internal/client"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/infrastructure/configloader"
	"wallet_export/internal/infrastructure/httpclient"
	evmclient "wallet_export/internal/infrastructure/network/client"
	networkdefinition "wallet_export/internal/infrastructure/network/definition"
	"wallet_export/internal/infrastructure/tokenloader"
	"wallet_export/internal/pkg/logger"

	"go.uber.org/zap"
)

// application holds the wired services shared by export and serve.
type application struct {
	cfg       *configloader.Config
	zapLogger *zap.Logger
	appLogger port.Logger
	network   entity.NetworkDefinition
	builder   port.SnapshotBuilder
}

// setupLogging builds zap at level and installs it behind slog and the logger package.
func setupLogging(cfg *configloader.Config, level string) (*zap.Logger, error) {
	zapLogger, err := logger.NewZap(level, cfg.Logging.Development)
	if err != nil {
		return nil, err
	}
	logger.Init(zapLogger, level)
	return zapLogger, nil
}

func newApplication(cfg *configloader.Config, zapLogger *zap.Logger) (*application, error) {
	appLogger := logger.NewSlogAdapter()

	var overrides []networkdefinition.RPCOverride
	if cfg.Chain.RPCURL != "" || cfg.Chain.FallbackRPCURLs != nil {
		overrides = append(overrides, networkdefinition.RPCOverride{
			Identifier:      cfg.Chain.Network,
			PrimaryRPCURL:   cfg.Chain.RPCURL,
			FallbackRPCURLs: cfg.Chain.FallbackRPCURLs,
		})
	}
	networks := networkdefinition.NewNetworkDefinitionProvider(appLogger, overrides...)
	netDef, ok := networks.GetNetworkDefinitionByName(cfg.Chain.Network)
	if !ok {
		known := make([]string, 0)
		for _, def := range networks.GetAllNetworkDefinitions() {
			known = append(known, def.Identifier)
		}
		return nil, fmt.Errorf("unknown network %q (known: %s)", cfg.Chain.Network, strings.Join(known, ", "))
	}

	httpClient := httpclient.NewRetryingClient(cfg.RetryPolicy(), cfg.Index.UserAgent, cfg.IndexTimeout(), zapLogger)
	index := roninrest.NewRoninRestClient(cfg.Index.BaseURL, httpClient, zapLogger)

	clients := evmclient.NewEVMClientProvider(evmclient.EVMClientOptions{
		ConnectionTimeout: time.Duration(cfg.Chain.ConnectTimeoutSeconds) * time.Second,
		RPCCallTimeout:    time.Duration(cfg.Chain.RPCCallTimeoutSeconds) * time.Second,
		RateLimit:         cfg.Chain.RateLimit,
		BurstLimit:        cfg.Chain.BurstLimit,
		MaxBatchSize:      cfg.Chain.MaxBatchSize,
	}, appLogger)

	tokens := provider.NewTokenProvider(tokenloader.NewTokenLoader(cfg.Chain.TokenDir, appLogger), appLogger)

	builder := service.NewWalletService(
		service.NewAssetPaginator(index, appLogger),
		service.NewTokenResolver(index, clients, netDef, appLogger, service.TokenResolverOptions{
			CatalogTTL:    cfg.CatalogCacheTTL(),
			MaxConcurrent: cfg.Performance.MaxConcurrentTokens,
		}),
		service.NewFungibleService(tokens, clients, netDef, appLogger),
		appLogger,
		cfg.Performance.MaxConcurrentCategories,
	)

	appLogger.Info("Application wired",
		"network", netDef.Name, "rpc_primary", netDef.PrimaryRPCURL,
		"index", cfg.Index.BaseURL, "max_retries", cfg.Index.Retry.MaxRetries)

	return &application{
		cfg:       cfg,
		zapLogger: zapLogger,
		appLogger: appLogger,
		network:   netDef,
		builder:   builder,
	}, nil
}
