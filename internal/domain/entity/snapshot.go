package entity

import "math/big"

// WalletSnapshot is the exported wallet-balance document.
type WalletSnapshot struct {
	Wallet      string              `json:"wallet"`
	Fungible    []FungibleBalance   `json:"fungible"`
	NonFungible NonFungibleHoldings `json:"non_fungible"`
	Summary     WalletSummary       `json:"-"`
}

// NonFungibleHoldings groups the per-category identifiers. Every field is always non-nil
// so empty categories serialize as [].
type NonFungibleHoldings struct {
	Axies  []string    `json:"axies"`
	Lands  []string    `json:"lands"`
	Items  []string    `json:"items"`
	Runes  [][2]string `json:"runes"`
	Charms [][2]string `json:"charms"`
}

// WalletSummary holds the human-readable totals of a snapshot.
type WalletSummary struct {
	FungibleTokens int      `json:"fungibleTokens"`
	Axies          int      `json:"axies"`
	Lands          int      `json:"lands"`
	Items          int      `json:"items"`
	RuneKinds      int      `json:"runeKinds"`
	RuneTotal      *big.Int `json:"runeTotal"`
	CharmKinds     int      `json:"charmKinds"`
	CharmTotal     *big.Int `json:"charmTotal"`
}

// NewNonFungibleHoldings returns holdings with every category present and empty.
func NewNonFungibleHoldings() NonFungibleHoldings {
	return NonFungibleHoldings{
		Axies:  []string{},
		Lands:  []string{},
		Items:  []string{},
		Runes:  [][2]string{},
		Charms: [][2]string{},
	}
}

// IDs returns a pointer to the identifier list of a non-fungible category.
func (h *NonFungibleHoldings) IDs(c NonFungibleCategory) *[]string {
	switch c {
	case Axie:
		return &h.Axies
	case Land:
		return &h.Lands
	default:
		return &h.Items
	}
}

// Tokens returns a pointer to the minimal token list of a semi-fungible category.
func (h *NonFungibleHoldings) Tokens(c SemiFungibleCategory) *[][2]string {
	if c == Rune {
		return &h.Runes
	}
	return &h.Charms
}
