package entity

// Wallet is a chain account whose holdings are exported.
type Wallet struct {
	Address string `json:"address"`
}
