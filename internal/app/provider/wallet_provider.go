package provider

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/infrastructure/walletloader"
	"wallet_export/internal/pkg/utils"
)

type fileWalletProvider struct {
	walletFilePath string
	logger         port.Logger
}

// NewFileWalletProvider yields every address listed in a source file.
func NewFileWalletProvider(filePath string, logger port.Logger) port.WalletProvider {
	return &fileWalletProvider{walletFilePath: filePath, logger: logger}
}

// GetWallets loads wallet addresses from the configured file.
func (p *fileWalletProvider) GetWallets() ([]entity.Wallet, error) {
	p.logger.Debug("Loading wallets from file", "path", p.walletFilePath)
	wallets, err := walletloader.LoadWallets(p.walletFilePath)
	if err != nil {
		p.logger.Error("Failed to load wallets", "path", p.walletFilePath, "error", err)
		return nil, err
	}
	p.logger.Info("Wallets loaded successfully", "count", len(wallets), "path", p.walletFilePath)
	return wallets, nil
}

type staticWalletProvider struct {
	address string
}

// NewAddressWalletProvider yields the single address given on the command line.
func NewAddressWalletProvider(address string) port.WalletProvider {
	return &staticWalletProvider{address: address}
}

func (p *staticWalletProvider) GetWallets() ([]entity.Wallet, error) {
	return []entity.Wallet{{Address: utils.NormalizeAddress(p.address)}}, nil
}

type promptWalletProvider struct {
	in  io.Reader
	out io.Writer
}

// NewPromptWalletProvider asks for one address on in, writing the prompt to out.
func NewPromptWalletProvider(in io.Reader, out io.Writer) port.WalletProvider {
	return &promptWalletProvider{in: in, out: out}
}

func (p *promptWalletProvider) GetWallets() ([]entity.Wallet, error) {
	if _, err := fmt.Fprint(p.out, "Wallet address (ronin: or 0x): "); err != nil {
		return nil, err
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read address: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: no address entered", entity.ErrValidation)
	}
	return []entity.Wallet{{Address: utils.NormalizeAddress(line)}}, nil
}
