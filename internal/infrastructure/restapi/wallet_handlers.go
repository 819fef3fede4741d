package restapi

import (
	"errors"
	"net/http"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Error string `json:"error"`
}

// APISummaryResponse is the per-category totals of a wallet.
type APISummaryResponse struct {
	Wallet         string `json:"wallet"`
	FungibleTokens int    `json:"fungible_tokens"`
	Axies          int    `json:"axies"`
	Lands          int    `json:"lands"`
	Items          int    `json:"items"`
	RuneKinds      int    `json:"rune_kinds"`
	RuneTotal      string `json:"rune_total"`
	CharmKinds     int    `json:"charm_kinds"`
	CharmTotal     string `json:"charm_total"`
}

// WalletHandler serves on-demand wallet snapshots.
type WalletHandler struct {
	builder port.SnapshotBuilder
	logger  port.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(builder port.SnapshotBuilder, logger port.Logger) *WalletHandler {
	return &WalletHandler{builder: builder, logger: logger}
}

// GetWalletHandler returns the full export document of one wallet.
func (h *WalletHandler) GetWalletHandler(c *gin.Context) {
	snapshot, ok := h.build(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetWalletSummaryHandler returns the per-category counts and totals of one wallet.
func (h *WalletHandler) GetWalletSummaryHandler(c *gin.Context) {
	snapshot, ok := h.build(c)
	if !ok {
		return
	}

	s := snapshot.Summary
	resp := APISummaryResponse{
		Wallet:         snapshot.Wallet,
		FungibleTokens: s.FungibleTokens,
		Axies:          s.Axies,
		Lands:          s.Lands,
		Items:          s.Items,
		RuneKinds:      s.RuneKinds,
		RuneTotal:      "0",
		CharmKinds:     s.CharmKinds,
		CharmTotal:     "0",
	}
	if s.RuneTotal != nil {
		resp.RuneTotal = s.RuneTotal.String()
	}
	if s.CharmTotal != nil {
		resp.CharmTotal = s.CharmTotal.String()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WalletHandler) build(c *gin.Context) (*entity.WalletSnapshot, bool) {
	address := c.Param("walletAddress")

	snapshot, err := h.builder.BuildSnapshot(c.Request.Context(), address)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Snapshot request failed", "address", address, "status", status, "error", err)
		}
		c.JSON(status, APIError{Error: err.Error()})
		return nil, false
	}
	return snapshot, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrTransport), errors.Is(err, entity.ErrParse), errors.Is(err, entity.ErrChainQuery):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
