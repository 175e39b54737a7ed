package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/middlewares"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

// Sender defines the interface that the service must implement.
type Sender interface {
	Send(ctx context.Context, senderID, recipient string, amount float64, token string) (string, error)
}

// SendRequest represents the JSON body for a send
// swagger:model SendRequest
type SendRequest struct {
	// Sender's Telegram user ID
	// required: true
	TelegramID string `json:"telegramId"`

	// Recipient: a registered Telegram user ID or a raw wallet address
	// required: true
	Recipient string `json:"recipient"`

	// Amount in display units
	// required: true
	// default: 1.5
	Amount float64 `json:"amount"`

	// Token symbol; HTR when omitted
	Token string `json:"token,omitempty"`
}

// SendResponse represents a successful transfer response
// swagger:model SendResponse
type SendResponse struct {
	Success bool   `json:"success"`
	TxID    string `json:"txId"`
}

// SendErrorResponse represents an error response for transfers
// swagger:model SendErrorResponse
type SendErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Wallet not found
	Error string `json:"error"`

	// Raw upstream response body, present on wallet service failures
	Details string `json:"details,omitempty"`
}

// NewSendHandler returns an HTTP handler that sends tokens to a registered
// user or a raw address. When the request is authenticated, the sender must
// match the token identity.
// @Summary Send tokens
// @Description Sends tokens from the user's wallet to a registered user ID or a raw Hathor address.
// @Tags transfer
// @Accept json
// @Produce json
// @Param sendRequest body handlers.SendRequest true "Transfer request"
// @Success 200 {object} handlers.SendResponse "Transfer accepted"
// @Failure 400 {object} handlers.SendErrorResponse "Invalid request"
// @Failure 403 {object} handlers.SendErrorResponse "Sender does not match authenticated user"
// @Failure 404 {object} handlers.SendErrorResponse "Wallet not found"
// @Failure 502 {object} handlers.SendErrorResponse "Upstream wallet service unavailable"
// @Router /api/send [post]
// @Security BearerAuth
func NewSendHandler(svc Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.TelegramID == "" || req.Recipient == "" || req.Amount <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendErrorResponse{
				Error: "telegramId, recipient and a positive amount are required",
			})
			return
		}

		if authID := middlewares.GetExternalIDFromContext(ctx); authID != "" && authID != req.TelegramID {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(SendErrorResponse{
				Error: "Sender does not match authenticated user",
			})
			return
		}

		txID, err := svc.Send(ctx, req.TelegramID, req.Recipient, req.Amount, req.Token)
		if err != nil {
			writeTransferError(w, req.TelegramID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendResponse{
			Success: true,
			TxID:    txID,
		})
	}
}

func writeTransferError(w http.ResponseWriter, senderID string, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(SendErrorResponse{
			Error: "Wallet not found",
		})
	case isUpstreamFailure(err):
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(SendErrorResponse{
			Error:   "Transfer rejected by wallet service",
			Details: upstreamDetails(err),
		})
	default:
		logger.Log.Errorw("transfer failed", "sender", senderID, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(SendErrorResponse{
			Error: "Internal server error",
		})
	}
}
