package entity

import "math/big"

// BalanceRequestType selects the RPC method used for one fungible balance lookup.
type BalanceRequestType int

const (
	// NativeBalanceRequest is answered by eth_getBalance.
	NativeBalanceRequest BalanceRequestType = iota
	// TokenBalanceRequest is answered by an ERC20 balanceOf eth_call.
	TokenBalanceRequest
)

// ZeroAddress stands in for the token address of the native coin.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// BalanceRequestItem is one element of a fungible balance batch.
type BalanceRequestItem struct {
	Type          BalanceRequestType
	WalletAddress string
	Token         TokenInfo
}

// BalanceResultItem is the answer to the BalanceRequestItem at the same index.
type BalanceResultItem struct {
	Token            TokenInfo
	IsNative         bool
	Balance          *big.Int
	FormattedBalance string
	Error            error
}
