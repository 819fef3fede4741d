package utils

import (
	"fmt"
	"strings"

	"wallet_export/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

// RoninAddressPrefix is the chain-specific spelling of the "0x" hex prefix.
const RoninAddressPrefix = "ronin:"

// NormalizeAddress converts "ronin:<hex>" into "0x<hex>". Canonical input is returned
// unchanged, so NormalizeAddress(NormalizeAddress(x)) == NormalizeAddress(x).
func NormalizeAddress(raw string) string {
	addr := strings.TrimSpace(raw)
	if len(addr) >= len(RoninAddressPrefix) && strings.EqualFold(addr[:len(RoninAddressPrefix)], RoninAddressPrefix) {
		return "0x" + addr[len(RoninAddressPrefix):]
	}
	return addr
}

// ValidateAddress checks that a normalized address is a 20-byte hex account.
func ValidateAddress(addr string) error {
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return fmt.Errorf("%w: address %q must start with 0x or %s", entity.ErrValidation, addr, RoninAddressPrefix)
	}
	if !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: address %q is not a 20-byte hex account", entity.ErrValidation, addr)
	}
	return nil
}

// CanonicalAddress normalizes and validates raw user input in one step.
func CanonicalAddress(raw string) (string, error) {
	addr := NormalizeAddress(raw)
	if err := ValidateAddress(addr); err != nil {
		return "", err
	}
	return addr, nil
}
