package entity

import "math/big"

// FungibleBalance is the amount of one fungible token held by a wallet.
type FungibleBalance struct {
	TokenSymbol      string   `json:"symbol"`
	TokenAddress     string   `json:"token_address"`
	Decimals         uint8    `json:"decimals"`
	Balance          string   `json:"balance"`
	FormattedBalance string   `json:"formatted_balance"`
	IsNative         bool     `json:"-"`
	Amount           *big.Int `json:"-"`
}
