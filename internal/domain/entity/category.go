package entity

import "fmt"

// NonFungibleCategory enumerates the ERC721 collections listed by the index service.
type NonFungibleCategory int

const (
	Axie NonFungibleCategory = iota
	Land
	Item
)

// SemiFungibleCategory enumerates the ERC1155 token families resolved on chain.
type SemiFungibleCategory int

const (
	Rune SemiFungibleCategory = iota
	Charm
)

// ERC1155Standard is the tokenStandard tag carried by semi-fungible catalog entries.
const ERC1155Standard = "ERC1155"

// NonFungibleSpec is the static index configuration for one non-fungible category.
type NonFungibleSpec struct {
	Name string // path segment and name of the JSON array field in a page
	Key  string // key under non_fungible in the exported document
}

// SemiFungibleSpec is the static (catalog, contract) pair for one semi-fungible category.
type SemiFungibleSpec struct {
	Name            string
	Key             string
	CatalogPath     string
	ContractAddress string
}

var nonFungibleSpecs = map[NonFungibleCategory]NonFungibleSpec{ //nolint:gochecknoglobals // static table
	Axie: {Name: "axie", Key: "axies"},
	Land: {Name: "land", Key: "lands"},
	Item: {Name: "item", Key: "items"},
}

var semiFungibleSpecs = map[SemiFungibleCategory]SemiFungibleSpec{ //nolint:gochecknoglobals // static table
	Rune: {
		Name:            "rune",
		Key:             "runes",
		CatalogPath:     "/origin/game/listRunes",
		ContractAddress: "0xc25970724f032af21d801978c73653c440cf787c",
	},
	Charm: {
		Name:            "charm",
		Key:             "charms",
		CatalogPath:     "/origin/game/listCharms",
		ContractAddress: "0x814a9c959a3ef6ca44b5e2349e3bba9845393947",
	},
}

// NonFungibleCategories lists every non-fungible category in export order.
func NonFungibleCategories() []NonFungibleCategory {
	return []NonFungibleCategory{Axie, Land, Item}
}

// SemiFungibleCategories lists every semi-fungible category in export order.
func SemiFungibleCategories() []SemiFungibleCategory {
	return []SemiFungibleCategory{Rune, Charm}
}

// Spec returns the static configuration of the category.
func (c NonFungibleCategory) Spec() NonFungibleSpec {
	spec, ok := nonFungibleSpecs[c]
	if !ok {
		panic(fmt.Sprintf("unknown non-fungible category %d", int(c)))
	}
	return spec
}

func (c NonFungibleCategory) String() string {
	return c.Spec().Name
}

// Spec returns the static configuration of the category.
func (c SemiFungibleCategory) Spec() SemiFungibleSpec {
	spec, ok := semiFungibleSpecs[c]
	if !ok {
		panic(fmt.Sprintf("unknown semi-fungible category %d", int(c)))
	}
	return spec
}

func (c SemiFungibleCategory) String() string {
	return c.Spec().Name
}
