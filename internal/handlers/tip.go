package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hathorchat/hathor-wallet-relay/internal/middlewares"
)

// Tipper defines the interface that the service must implement.
type Tipper interface {
	Tip(ctx context.Context, senderID, recipientID string, amount float64, token string) (string, error)
}

// TipRequest represents the JSON body for a tip between registered users
// swagger:model TipRequest
type TipRequest struct {
	// Sender's Telegram user ID
	// required: true
	FromTelegramID string `json:"fromTelegramId"`

	// Recipient's Telegram user ID
	// required: true
	ToTelegramID string `json:"toTelegramId"`

	// Amount in display units
	// required: true
	// default: 0.5
	Amount float64 `json:"amount"`

	// Token symbol; HTR when omitted
	Token string `json:"token,omitempty"`
}

// NewTipHandler returns an HTTP handler that tips tokens between two
// registered users. The recipient's current address is resolved upstream.
// @Summary Tip a registered user
// @Tags transfer
// @Accept json
// @Produce json
// @Param tipRequest body handlers.TipRequest true "Tip request"
// @Success 200 {object} handlers.SendResponse "Transfer accepted"
// @Failure 400 {object} handlers.SendErrorResponse "Invalid request"
// @Failure 403 {object} handlers.SendErrorResponse "Sender does not match authenticated user"
// @Failure 404 {object} handlers.SendErrorResponse "Sender or recipient wallet not found"
// @Failure 502 {object} handlers.SendErrorResponse "Upstream wallet service unavailable"
// @Router /api/tip [post]
// @Security BearerAuth
func NewTipHandler(svc Tipper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req TipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.FromTelegramID == "" || req.ToTelegramID == "" || req.Amount <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendErrorResponse{
				Error: "fromTelegramId, toTelegramId and a positive amount are required",
			})
			return
		}

		if authID := middlewares.GetExternalIDFromContext(ctx); authID != "" && authID != req.FromTelegramID {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(SendErrorResponse{
				Error: "Sender does not match authenticated user",
			})
			return
		}

		txID, err := svc.Tip(ctx, req.FromTelegramID, req.ToTelegramID, req.Amount, req.Token)
		if err != nil {
			writeTransferError(w, req.FromTelegramID, err)
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
