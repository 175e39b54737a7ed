package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

// StatusGetter defines the interface that the service must implement.
type StatusGetter interface {
	GetStatus(ctx context.Context, externalID string) (*models.WalletStatus, error)
}

// WalletStatusGetter fetches the upstream status for a wallet session.
type WalletStatusGetter interface {
	Status(ctx context.Context, walletID string) (*models.WalletStatus, error)
}

// StatusResponse represents a wallet session status
// swagger:model StatusResponse
type StatusResponse struct {
	Success bool `json:"success"`

	// Upstream status code; 3 means ready
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage,omitempty"`
	Ready         bool   `json:"ready"`
	Network       string `json:"network,omitempty"`
	ServerURL     string `json:"serverUrl,omitempty"`
}

// StatusErrorResponse represents an error response for status lookups
// swagger:model StatusErrorResponse
type StatusErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Wallet not found
	Error string `json:"error"`

	// Raw upstream response body, present on wallet service failures
	Details string `json:"details,omitempty"`
}

// NewGetStatusHandler returns an HTTP handler for a user's wallet status.
// @Summary Get a user's wallet session status
// @Tags wallet
// @Produce json
// @Param telegramId path string true "Telegram user ID"
// @Success 200 {object} handlers.StatusResponse "Session status"
// @Failure 404 {object} handlers.StatusErrorResponse "Wallet not found"
// @Router /api/status/{telegramId} [get]
func NewGetStatusHandler(svc StatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID := chi.URLParam(r, "telegramId")

		status, err := svc.GetStatus(r.Context(), telegramID)
		if err != nil {
			writeStatusError(w, telegramID, err)
			return
		}

		writeStatus(w, status)
	}
}

// NewWalletStatusHandler returns an HTTP handler for the wallet-scoped
// status route.
// @Summary Get a wallet's session status
// @Tags wallet
// @Produce json
// @Param walletId path string true "Wallet session ID"
// @Success 200 {object} handlers.StatusResponse "Session status"
// @Failure 502 {object} handlers.StatusErrorResponse "Upstream wallet service unavailable"
// @Router /api/wallet/{walletId}/status [get]
func NewWalletStatusHandler(svc WalletStatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletID := chi.URLParam(r, "walletId")

		status, err := svc.Status(r.Context(), walletID)
		if err != nil {
			writeStatusError(w, walletID, err)
			return
		}

		writeStatus(w, status)
	}
}

func writeStatus(w http.ResponseWriter, status *models.WalletStatus) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(StatusResponse{
		Success:       true,
		StatusCode:    status.StatusCode,
		StatusMessage: status.StatusMessage,
		Ready:         status.StatusCode == models.WalletStatusReady,
		Network:       status.Network,
		ServerURL:     status.ServerURL,
	})
}

func writeStatusError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(StatusErrorResponse{
			Error: "Wallet not found",
		})
	case isUpstreamFailure(err):
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(StatusErrorResponse{
			Error:   "Wallet service unavailable",
			Details: upstreamDetails(err),
		})
	default:
		logger.Log.Errorw("status fetch failed", "id", id, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(StatusErrorResponse{
			Error: "Internal server error",
		})
	}
}
