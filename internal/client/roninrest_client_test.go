package client

import (
	"context"
	"errors"
	"testing"

	"wallet_export/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGetter struct {
	bodies map[string]string
	err    error
	urls   []string
}

func (f *fakeGetter) Get(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.bodies[url]
	if !ok {
		return nil, errors.New("unexpected url " + url)
	}
	return []byte(body), nil
}

const addr = "0x3759468f9fd589665c8affbe52414ef77f863f72"

func TestNFTPageBuildsURLAndStripsQuotes(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		"https://ronin.rest/ronin/nfts/axie/" + addr + "?offset=25": `{"axie":["123", 456, "789"]}`,
	}}
	c := NewRoninRestClient("https://ronin.rest/", g, zap.NewNop())

	ids, err := c.NFTPage(context.Background(), entity.Axie, addr, 25)
	require.NoError(t, err)
	require.Equal(t, []string{"123", "456", "789"}, ids)
}

func TestNFTPageEmptyArray(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		"https://ronin.rest/ronin/nfts/land/" + addr + "?offset=0": `{"land":[]}`,
	}}
	c := NewRoninRestClient("https://ronin.rest", g, zap.NewNop())

	ids, err := c.NFTPage(context.Background(), entity.Land, addr, 0)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestNFTPageMissingFieldIsParseError(t *testing.T) {
	for name, body := range map[string]string{
		"missing":   `{"axie":["1"]}`,
		"null":      `{"item":null}`,
		"not array": `{"item":"1"}`,
		"not json":  `<html>`,
	} {
		t.Run(name, func(t *testing.T) {
			g := &fakeGetter{bodies: map[string]string{
				"https://ronin.rest/ronin/nfts/item/" + addr + "?offset=0": body,
			}}
			c := NewRoninRestClient("https://ronin.rest", g, zap.NewNop())

			_, err := c.NFTPage(context.Background(), entity.Item, addr, 0)
			require.ErrorIs(t, err, entity.ErrParse)
		})
	}
}

func TestNFTPagePropagatesTransportError(t *testing.T) {
	g := &fakeGetter{err: entity.ErrTransport}
	c := NewRoninRestClient("https://ronin.rest", g, zap.NewNop())

	_, err := c.NFTPage(context.Background(), entity.Item, addr, 0)
	require.ErrorIs(t, err, entity.ErrTransport)
	require.NotErrorIs(t, err, entity.ErrParse)
}

func TestCatalogDecodesItems(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		"https://ronin.rest/origin/game/listRunes": `{"_items":[
			{"item":{"tokenStandard":"ERC1155","tokenAddress":"0xC25970724f032af21d801978c73653c440cf787c","tokenId":"17","name":"Fire Rune","id":"rune_fire_1","category":"Fire","rarity":"Rare","description":"hot","imageUrl":"https://img/1.png"}},
			{"item":{"tokenStandard":"ERC721","tokenAddress":"0xabc","tokenId":null,"name":"n","id":"x","category":"c","rarity":"r","description":"d","imageUrl":"i"}}
		]}`,
	}}
	c := NewRoninRestClient("https://ronin.rest", g, zap.NewNop())

	items, err := c.Catalog(context.Background(), entity.Rune)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, entity.CatalogItem{
		TokenStandard: "ERC1155",
		TokenAddress:  "0xC25970724f032af21d801978c73653c440cf787c",
		TokenID:       "17",
		Name:          "Fire Rune",
		ID:            "rune_fire_1",
		Category:      "Fire",
		Rarity:        "Rare",
		Description:   "hot",
		ImageURL:      "https://img/1.png",
	}, items[0])
	require.Empty(t, items[1].TokenID)
}

func TestCatalogWithoutItemsIsParseError(t *testing.T) {
	g := &fakeGetter{bodies: map[string]string{
		"https://ronin.rest/origin/game/listCharms": `{"items":[]}`,
	}}
	c := NewRoninRestClient("https://ronin.rest", g, zap.NewNop())

	_, err := c.Catalog(context.Background(), entity.Charm)
	require.ErrorIs(t, err, entity.ErrParse)
}
