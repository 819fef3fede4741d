package restapi

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/logger"
	"wallet_export/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBuilder struct {
	err error
}

func (b fakeBuilder) BuildSnapshot(_ context.Context, address string) (*entity.WalletSnapshot, error) {
	if b.err != nil {
		return nil, b.err
	}
	wallet, err := utils.CanonicalAddress(address)
	if err != nil {
		return nil, err
	}
	holdings := entity.NewNonFungibleHoldings()
	holdings.Runes = [][2]string{{"rune_fire_1", "7"}}
	return &entity.WalletSnapshot{
		Wallet:      wallet,
		Fungible:    []entity.FungibleBalance{},
		NonFungible: holdings,
		Summary:     entity.WalletSummary{RuneKinds: 1, RuneTotal: big.NewInt(7), CharmTotal: new(big.Int)},
	}, nil
}

func newTestRouter(b fakeBuilder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(NewWalletHandler(b, logger.Nop{}), zap.NewNop(), RouterOptions{})
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUnitGetWallet(t *testing.T) {
	rec := get(t, newTestRouter(fakeBuilder{}), "/api/v1/wallets/ronin:3759468f9fd589665c8affbe52414ef77f863f72")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"wallet": "0x3759468f9fd589665c8affbe52414ef77f863f72",
		"fungible": [],
		"non_fungible": {"axies": [], "lands": [], "items": [], "runes": [["rune_fire_1", "7"]], "charms": []}
	}`, rec.Body.String())
}

func TestUnitGetWalletSummary(t *testing.T) {
	rec := get(t, newTestRouter(fakeBuilder{}), "/api/v1/wallets/0x3759468f9fd589665c8affbe52414ef77f863f72/summary")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"rune_kinds":1`)
	require.Contains(t, rec.Body.String(), `"rune_total":"7"`)
	require.Contains(t, rec.Body.String(), `"charm_total":"0"`)
}

func TestUnitGetWalletErrorStatus(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "invalid address", path: "/api/v1/wallets/ronin:nothex", status: http.StatusBadRequest},
		{name: "index down", path: "/api/v1/wallets/0x3759468f9fd589665c8affbe52414ef77f863f72", err: fmt.Errorf("axie: %w", entity.ErrTransport), status: http.StatusBadGateway},
		{name: "chain down", path: "/api/v1/wallets/0x3759468f9fd589665c8affbe52414ef77f863f72", err: fmt.Errorf("rune: %w", entity.ErrChainQuery), status: http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, newTestRouter(fakeBuilder{err: tc.err}), tc.path)
			require.Equal(t, tc.status, rec.Code)
			require.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestUnitHealthAndMetrics(t *testing.T) {
	router := newTestRouter(fakeBuilder{})

	require.Equal(t, http.StatusOK, get(t, router, "/healthz").Code)
	require.Equal(t, http.StatusOK, get(t, router, "/metrics").Code)
}
