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

// BalanceGetter defines the interface that the service must implement.
type BalanceGetter interface {
	GetBalances(ctx context.Context, externalID string) (map[string]models.BalanceEntry, error)
}

// WalletBalanceGetter fetches balances for an already ensured wallet session.
type WalletBalanceGetter interface {
	BalancesForWallet(ctx context.Context, walletID string) (map[string]models.BalanceEntry, error)
}

// BalanceResponse represents per-symbol balances in display units
// swagger:model BalanceResponse
type BalanceResponse struct {
	Success  bool                           `json:"success"`
	Balances map[string]models.BalanceEntry `json:"balances"`
}

// BalanceErrorResponse represents an error response when fetching balances
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Wallet not found
	Error string `json:"error"`

	// Raw upstream response body, present on wallet service failures
	Details string `json:"details,omitempty"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching a user's balances.
// @Summary Get user balances
// @Description Returns HTR and custom-token balances in display units, keyed by symbol.
// @Tags wallet
// @Produce json
// @Param telegramId path string true "Telegram user ID"
// @Success 200 {object} handlers.BalanceResponse "User balances"
// @Failure 404 {object} handlers.BalanceErrorResponse "Wallet not found"
// @Failure 502 {object} handlers.BalanceErrorResponse "Upstream wallet service unavailable"
// @Router /api/balance/{telegramId} [get]
func NewGetBalanceHandler(svc BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID := chi.URLParam(r, "telegramId")

		balances, err := svc.GetBalances(r.Context(), telegramID)
		if err != nil {
			writeBalanceError(w, telegramID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Success:  true,
			Balances: balances,
		})
	}
}

// NewWalletBalanceHandler returns an HTTP handler for the wallet-scoped
// balance route. Unlike the user route it does not re-ensure the session.
// @Summary Get a wallet's balances
// @Tags wallet
// @Produce json
// @Param walletId path string true "Wallet session ID"
// @Success 200 {object} handlers.BalanceResponse "Wallet balances"
// @Failure 502 {object} handlers.BalanceErrorResponse "Upstream wallet service unavailable"
// @Router /api/wallet/{walletId}/balance [get]
func NewWalletBalanceHandler(svc WalletBalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletID := chi.URLParam(r, "walletId")

		balances, err := svc.BalancesForWallet(r.Context(), walletID)
		if err != nil {
			writeBalanceError(w, walletID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Success:  true,
			Balances: balances,
		})
	}
}

func writeBalanceError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(BalanceErrorResponse{
			Error: "Wallet not found",
		})
	case isUpstreamFailure(err):
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(BalanceErrorResponse{
			Error:   "Wallet service unavailable",
			Details: upstreamDetails(err),
		})
	default:
		logger.Log.Errorw("balance fetch failed", "id", id, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(BalanceErrorResponse{
			Error: "Internal server error",
		})
	}
}
