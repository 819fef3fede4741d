package entity

import "math/big"

// CatalogItem is one entry of a semi-fungible catalog as published by the index service.
type CatalogItem struct {
	TokenStandard string
	TokenAddress  string
	TokenID       string // decimal; empty when the entry carries none
	Name          string
	ID            string
	Category      string
	Rarity        string
	Description   string
	ImageURL      string
}

// TokenDescriptor describes one semi-fungible token definition and, once resolved,
// the balance the wallet holds of it.
type TokenDescriptor struct {
	TokenID     uint64
	ID          string
	Name        string
	Category    SemiFungibleCategory
	Kind        string // catalog category, e.g. "Fire"
	Rarity      string
	Description string
	ImageURL    string
	Balance     *big.Int
}

// Minimal is the two-field projection written into the exported document.
func (d TokenDescriptor) Minimal() [2]string {
	balance := "0"
	if d.Balance != nil {
		balance = d.Balance.String()
	}
	return [2]string{d.ID, balance}
}

// Held reports whether the resolved balance is positive.
func (d TokenDescriptor) Held() bool {
	return d.Balance != nil && d.Balance.Sign() > 0
}
