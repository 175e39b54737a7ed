package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

// WalletProvisioner defines the interface that the service must implement.
type WalletProvisioner interface {
	ProvisionWallet(ctx context.Context, externalID, requestedSeed string) (*services.ProvisionResult, error)
}

// CreateWalletRequest represents the JSON body for wallet provisioning
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// Telegram user ID
	// required: true
	// default: 123456789
	TelegramID string `json:"telegramId"`

	// Optional BIP-39 seed phrase to import instead of generating one
	Seed string `json:"seed,omitempty"`
}

// CreateWalletResponse represents a successful wallet provisioning response
// swagger:model CreateWalletResponse
type CreateWalletResponse struct {
	Success  bool   `json:"success"`
	WalletID string `json:"walletId"`

	// Receiving address; may be empty when the upstream session is still starting
	Address string `json:"address,omitempty"`

	// Seed phrase; returned only when the wallet was just created
	Seed string `json:"seed,omitempty"`

	// True when this call created the wallet
	IsNew bool `json:"isNew"`
}

// CreateWalletErrorResponse represents an error response for wallet provisioning
// swagger:model CreateWalletErrorResponse
type CreateWalletErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Raw upstream response body, present on wallet service failures
	Details string `json:"details,omitempty"`
}

// NewCreateWalletHandler returns an HTTP handler that provisions a wallet for
// a Telegram user. The call is idempotent: repeat requests return the stored
// wallet ID without revealing the seed again.
// @Summary Create or fetch a user's wallet
// @Description Provisions an upstream wallet session for the Telegram user, creating and persisting one on first call.
// @Tags wallet
// @Accept json
// @Produce json
// @Param createWalletRequest body handlers.CreateWalletRequest true "Wallet provisioning request"
// @Success 200 {object} handlers.CreateWalletResponse "Wallet ready"
// @Failure 400 {object} handlers.CreateWalletErrorResponse "Invalid request"
// @Failure 502 {object} handlers.CreateWalletErrorResponse "Upstream wallet service unavailable"
// @Router /api/createWallet [post]
func NewCreateWalletHandler(svc WalletProvisioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWalletRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TelegramID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateWalletErrorResponse{
				Error: "telegramId is required",
			})
			return
		}

		res, err := svc.ProvisionWallet(r.Context(), req.TelegramID, req.Seed)
		if err != nil {
			switch {
			case isUpstreamFailure(err):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(CreateWalletErrorResponse{
					Error:   "Wallet service unavailable",
					Details: upstreamDetails(err),
				})
			default:
				logger.Log.Errorw("wallet provisioning failed", "telegramId", req.TelegramID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateWalletErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateWalletResponse{
			Success:  true,
			WalletID: res.WalletID,
			Address:  res.Address,
			Seed:     res.Seed,
			IsNew:    res.IsNew,
		})
	}
}
