package entity

import "errors"

var (
	// ErrTransport marks network, timeout and 5xx failures that survived the retry policy.
	ErrTransport = errors.New("transport error")
	// ErrParse marks a malformed or schema-mismatched index response.
	ErrParse = errors.New("parse error")
	// ErrChainQuery marks a failed on-chain read.
	ErrChainQuery = errors.New("chain query error")
	// ErrValidation marks a malformed wallet address.
	ErrValidation = errors.New("validation error")
)

// ExportError records why one wallet of a bulk run was not exported.
type ExportError struct {
	WalletAddress string `json:"walletAddress"`
	Stage         string `json:"stage"`
	Message       string `json:"message"`
}
