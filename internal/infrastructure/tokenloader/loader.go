package tokenloader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/utils"
)

const DefaultTokenDirectoryPath = "data/tokens"

// builtinTokens is used when a network has no token file on disk.
var builtinTokens = map[uint64][]entity.TokenInfo{ //nolint:gochecknoglobals // static table
	2020: {
		{ChainID: 2020, Address: "0xe514d9deb7966c8be0ca922de8a064264ea6bcd4", Name: "Wrapped Ronin", Symbol: "WRON", Decimals: 18},
		{ChainID: 2020, Address: "0x97a9107c1793bc407d6f527b77e7fff4d812bece", Name: "Axie Infinity Shard", Symbol: "AXS", Decimals: 18},
		{ChainID: 2020, Address: "0xa8754b9fa15fc18bb59458815510e40a12cd2014", Name: "Smooth Love Potion", Symbol: "SLP", Decimals: 0},
		{ChainID: 2020, Address: "0xc99a6a985ed2cac1ef41640596c5a5f9f4e19ef5", Name: "Ronin Wrapped Ether", Symbol: "WETH", Decimals: 18},
		{ChainID: 2020, Address: "0x0b7007c13325c48911f73a2dad5fa5dcbf808adc", Name: "USD Coin", Symbol: "USDC", Decimals: 6},
	},
}

// TokenFileLoader implements port.TokenProvider over <dir>/<network>.json files.
type TokenFileLoader struct {
	tokenDirPath string
	logger       port.Logger
}

// NewTokenLoader creates a new TokenFileLoader. An empty dir selects DefaultTokenDirectoryPath.
func NewTokenLoader(dir string, logger port.Logger) *TokenFileLoader {
	if dir == "" {
		dir = DefaultTokenDirectoryPath
	}
	return &TokenFileLoader{tokenDirPath: dir, logger: logger}
}

// GetTokens reads the token file of the network and drops entries whose chain id does
// not match. A missing file falls back to the built-in list.
func (l *TokenFileLoader) GetTokens(netDef entity.NetworkDefinition) ([]entity.TokenInfo, error) {
	filePath := filepath.Join(l.tokenDirPath, strings.ToLower(netDef.Identifier)+".json")

	tokensInFile, err := utils.LoadTokensFromJSON(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			builtin := builtinTokens[netDef.ChainID]
			l.logger.Info("No token file for network, using built-in list", "path", filePath, "network", netDef.Identifier, "count", len(builtin))
			return append([]entity.TokenInfo(nil), builtin...), nil
		}
		return nil, fmt.Errorf("load tokens for %s: %w", netDef.Identifier, err)
	}

	valid := make([]entity.TokenInfo, 0, len(tokensInFile))
	for _, token := range tokensInFile {
		if token.ChainID != netDef.ChainID {
			l.logger.Warn("Token has mismatched ChainID in file, skipping token.",
				"file", filePath, "token_symbol", token.Symbol, "token_address", token.Address,
				"token_chain_id", token.ChainID, "expected_chain_id", netDef.ChainID)
			continue
		}
		valid = append(valid, token)
	}

	l.logger.Info("Loaded tokens for network from file", "network", netDef.Identifier, "file", filePath, "count", len(valid))
	return valid, nil
}
