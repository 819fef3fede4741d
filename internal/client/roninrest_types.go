package client

import "wallet_export/internal/domain/entity"

// catalogResponse is the body of /origin/game/listRunes and /listCharms.
type catalogResponse struct {
	Items *[]catalogEnvelope `json:"_items"`
}

type catalogEnvelope struct {
	Item catalogItem `json:"item"`
}

// catalogItem mirrors the wire item. TokenID is left untyped because the service
// publishes it as a string but older entries omit it or carry null.
type catalogItem struct {
	TokenStandard string `json:"tokenStandard"`
	TokenAddress  string `json:"tokenAddress"`
	TokenID       any    `json:"tokenId"`
	Name          string `json:"name"`
	ID            string `json:"id"`
	Category      string `json:"category"`
	Rarity        string `json:"rarity"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
}

func (i catalogItem) toEntity() entity.CatalogItem {
	tokenID, _ := i.TokenID.(string)
	return entity.CatalogItem{
		TokenStandard: i.TokenStandard,
		TokenAddress:  i.TokenAddress,
		TokenID:       tokenID,
		Name:          i.Name,
		ID:            i.ID,
		Category:      i.Category,
		Rarity:        i.Rarity,
		Description:   i.Description,
		ImageURL:      i.ImageURL,
	}
}
