package walletloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/utils"
)

// LoadWallets reads one address per line from the source file.
func LoadWallets(filePath string) ([]entity.Wallet, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file %s: %w", filePath, err)
	}
	defer file.Close()

	wallets, err := ReadWallets(file)
	if err != nil {
		return nil, fmt.Errorf("error scanning wallet file %s: %w", filePath, err)
	}
	return wallets, nil
}

// ReadWallets parses addresses from r. Blank lines and lines starting with '#' are
// skipped. Addresses are normalized but not validated; validation is reported per
// address by the exporter.
func ReadWallets(r io.Reader) ([]entity.Wallet, error) {
	var wallets []entity.Wallet
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wallets = append(wallets, entity.Wallet{Address: utils.NormalizeAddress(line)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return wallets, nil
}
