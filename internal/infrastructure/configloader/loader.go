package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"wallet_export/internal/infrastructure/httpclient"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yml"
	DefaultUserAgent  = "ronin/wallet-export0.1.0 See: https://github.com/wehmoen/wallet-export"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level       string `yaml:"level" env:"LOG_LEVEL"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT"`
}

// RetryConfig is the backoff applied to index requests.
type RetryConfig struct {
	MaxRetries  int           `yaml:"maxRetries" env:"RETRY_MAX_RETRIES"`
	MinInterval time.Duration `yaml:"minInterval" env:"RETRY_MIN_INTERVAL"`
	MaxInterval time.Duration `yaml:"maxInterval" env:"RETRY_MAX_INTERVAL"`
	Exponent    float64       `yaml:"exponent" env:"RETRY_EXPONENT"`
}

// IndexConfig holds the REST index service settings.
type IndexConfig struct {
	BaseURL              string      `yaml:"baseURL" env:"INDEX_BASE_URL"`
	UserAgent            string      `yaml:"userAgent" env:"INDEX_USER_AGENT"`
	RequestTimeoutMillis int64       `yaml:"requestTimeoutMillis" env:"INDEX_REQUEST_TIMEOUT_MILLIS"`
	CatalogCacheTTL      int         `yaml:"catalogCacheTTLMinutes" env:"INDEX_CATALOG_CACHE_TTL_MINUTES"`
	Retry                RetryConfig `yaml:"retry"`
}

// ChainConfig holds the JSON-RPC node settings.
type ChainConfig struct {
	Network               string   `yaml:"network" env:"CHAIN_NETWORK"`
	RPCURL                string   `yaml:"rpcURL" env:"CHAIN_RPC_URL"`
	FallbackRPCURLs       []string `yaml:"fallbackRPCURLs" env:"CHAIN_FALLBACK_RPC_URLS" envSeparator:","`
	RPCCallTimeoutSeconds int      `yaml:"rpcCallTimeoutSeconds" env:"CHAIN_RPC_CALL_TIMEOUT_SECONDS"`
	ConnectTimeoutSeconds int      `yaml:"connectTimeoutSeconds" env:"CHAIN_CONNECT_TIMEOUT_SECONDS"`
	RateLimit             float64  `yaml:"rateLimit" env:"CHAIN_RATE_LIMIT"`
	BurstLimit            int      `yaml:"burstLimit" env:"CHAIN_BURST_LIMIT"`
	MaxBatchSize          int      `yaml:"maxBatchSize" env:"CHAIN_MAX_BATCH_SIZE"`
	TokenDir              string   `yaml:"tokenDir" env:"CHAIN_TOKEN_DIR"`
}

// PerformanceConfig holds performance-related configurations.
type PerformanceConfig struct {
	MaxConcurrentCategories int `yaml:"maxConcurrentCategories" env:"MAX_CONCURRENT_CATEGORIES"`
	MaxConcurrentTokens     int `yaml:"maxConcurrentTokens" env:"MAX_CONCURRENT_TOKENS"`
	MaxConcurrentWallets    int `yaml:"maxConcurrentWallets" env:"MAX_CONCURRENT_WALLETS"`
}

// OutputConfig holds the file sink settings.
type OutputConfig struct {
	Directory string `yaml:"directory" env:"OUTPUT_DIRECTORY"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Index       IndexConfig       `yaml:"index"`
	Chain       ChainConfig       `yaml:"chain"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
}

// Load reads the YAML file at path, applies environment overrides and fills defaults.
// A missing file is not an error; the defaults are used instead.
func Load(path string) (*Config, error) {
	// maxRetries: 0 is meaningful, so its default is seeded before decoding.
	cfg := Config{Index: IndexConfig{Retry: RetryConfig{MaxRetries: httpclient.DefaultRetryPolicy().MaxRetries}}}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Index.BaseURL == "" {
		cfg.Index.BaseURL = "https://ronin.rest"
	}
	if cfg.Index.UserAgent == "" {
		cfg.Index.UserAgent = DefaultUserAgent
	}
	if cfg.Index.RequestTimeoutMillis <= 0 {
		cfg.Index.RequestTimeoutMillis = 30000
	}
	if cfg.Index.CatalogCacheTTL <= 0 {
		cfg.Index.CatalogCacheTTL = 60
	}
	def := httpclient.DefaultRetryPolicy()
	if cfg.Index.Retry.MaxRetries < 0 {
		cfg.Index.Retry.MaxRetries = 0
	}
	if cfg.Index.Retry.MinInterval <= 0 {
		cfg.Index.Retry.MinInterval = def.MinInterval
	}
	if cfg.Index.Retry.MaxInterval <= 0 {
		cfg.Index.Retry.MaxInterval = def.MaxInterval
	}
	if cfg.Index.Retry.Exponent <= 0 {
		cfg.Index.Retry.Exponent = def.Exponent
	}

	if cfg.Chain.Network == "" {
		cfg.Chain.Network = "ronin"
	}
	if cfg.Chain.RPCCallTimeoutSeconds <= 0 {
		cfg.Chain.RPCCallTimeoutSeconds = 10
	}
	if cfg.Chain.ConnectTimeoutSeconds <= 0 {
		cfg.Chain.ConnectTimeoutSeconds = 10
	}
	if cfg.Chain.RateLimit == 0 {
		cfg.Chain.RateLimit = 20
	}
	if cfg.Chain.BurstLimit <= 0 {
		cfg.Chain.BurstLimit = 5
	}
	if cfg.Chain.MaxBatchSize <= 0 {
		cfg.Chain.MaxBatchSize = 100
	}
	if cfg.Chain.TokenDir == "" {
		cfg.Chain.TokenDir = "data/tokens"
	}

	if cfg.Performance.MaxConcurrentCategories <= 0 {
		cfg.Performance.MaxConcurrentCategories = 6
	}
	if cfg.Performance.MaxConcurrentTokens <= 0 {
		cfg.Performance.MaxConcurrentTokens = 8
	}
	if cfg.Performance.MaxConcurrentWallets <= 0 {
		cfg.Performance.MaxConcurrentWallets = 4
	}

	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "exports"
	}
}

// RetryPolicy converts the retry section into the value handed to the HTTP client.
func (c *Config) RetryPolicy() httpclient.RetryPolicy {
	return httpclient.RetryPolicy{
		MaxRetries:  c.Index.Retry.MaxRetries,
		MinInterval: c.Index.Retry.MinInterval,
		MaxInterval: c.Index.Retry.MaxInterval,
		Exponent:    c.Index.Retry.Exponent,
	}
}

// IndexTimeout is the per-attempt timeout of index requests.
func (c *Config) IndexTimeout() time.Duration {
	return time.Duration(c.Index.RequestTimeoutMillis) * time.Millisecond
}

// CatalogCacheTTL is how long a fetched catalog stays valid.
func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.Index.CatalogCacheTTL) * time.Minute
}
