package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

// TransactionGetter defines the interface that the service must implement.
type TransactionGetter interface {
	GetTransaction(ctx context.Context, externalID, txID string) (json.RawMessage, error)
}

// TransactionResponse represents a single raw transaction record
// swagger:model TransactionResponse
type TransactionResponse struct {
	Success     bool            `json:"success"`
	Transaction json.RawMessage `json:"transaction"`
}

// TransactionErrorResponse represents an error response for transaction lookups
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Transaction not found
	Error string `json:"error"`

	// Raw upstream response body, present on wallet service failures
	Details string `json:"details,omitempty"`
}

// NewGetTransactionHandler returns an HTTP handler that looks up a single
// transaction by ID and passes the upstream record through unchanged.
// @Summary Get a single transaction
// @Tags wallet
// @Produce json
// @Param telegramId path string true "Telegram user ID"
// @Param txId path string true "Transaction ID"
// @Success 200 {object} handlers.TransactionResponse "Raw transaction record"
// @Failure 404 {object} handlers.TransactionErrorResponse "Wallet or transaction not found"
// @Failure 502 {object} handlers.TransactionErrorResponse "Upstream wallet service unavailable"
// @Router /api/transaction/{telegramId}/{txId} [get]
func NewGetTransactionHandler(svc TransactionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID := chi.URLParam(r, "telegramId")
		txID := chi.URLParam(r, "txId")

		raw, err := svc.GetTransaction(r.Context(), telegramID, txID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{
					Error: "Wallet not found",
				})
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{
					Error: "Transaction not found",
				})
			case isUpstreamFailure(err):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(TransactionErrorResponse{
					Error:   "Wallet service unavailable",
					Details: upstreamDetails(err),
				})
			default:
				logger.Log.Errorw("transaction fetch failed", "telegramId", telegramID, "txId", txID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionResponse{
			Success:     true,
			Transaction: raw,
		})
	}
}
