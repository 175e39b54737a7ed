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

// HistoryGetter defines the interface that the service must implement.
type HistoryGetter interface {
	GetHistory(ctx context.Context, externalID string) ([]models.HistoryItem, error)
}

// HistoryResponse represents a transaction history response
// swagger:model HistoryResponse
type HistoryResponse struct {
	Success      bool                 `json:"success"`
	Transactions []models.HistoryItem `json:"transactions"`
}

// HistoryErrorResponse represents an error response for history lookups
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Wallet not found
	Error string `json:"error"`

	// Raw upstream response body, present on wallet service failures
	Details string `json:"details,omitempty"`
}

// NewGetHistoryHandler returns an HTTP handler for a user's transaction
// history, upstream order preserved.
// @Summary Get a user's transaction history
// @Description Returns mapped transactions with amounts in display units and explorer links.
// @Tags wallet
// @Produce json
// @Param telegramId path string true "Telegram user ID"
// @Success 200 {object} handlers.HistoryResponse "Transaction history"
// @Failure 404 {object} handlers.HistoryErrorResponse "Wallet not found"
// @Failure 502 {object} handlers.HistoryErrorResponse "Upstream wallet service unavailable"
// @Router /api/tx-history/{telegramId} [get]
func NewGetHistoryHandler(svc HistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID := chi.URLParam(r, "telegramId")

		history, err := svc.GetHistory(r.Context(), telegramID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(HistoryErrorResponse{
					Error: "Wallet not found",
				})
			case isUpstreamFailure(err):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(HistoryErrorResponse{
					Error:   "Wallet service unavailable",
					Details: upstreamDetails(err),
				})
			default:
				logger.Log.Errorw("history fetch failed", "telegramId", telegramID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(HistoryErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if history == nil {
			history = []models.HistoryItem{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{
			Success:      true,
			Transactions: history,
		})
	}
}
