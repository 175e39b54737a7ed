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

// WalletGetter defines the interface that the service must implement.
type WalletGetter interface {
	GetWallet(ctx context.Context, externalID string) (*models.UserRecord, error)
}

// WalletAddressGetter fetches the current receiving address for a wallet session.
type WalletAddressGetter interface {
	Address(ctx context.Context, walletID string) (string, error)
}

// WalletInfoResponse represents a user's wallet record
// swagger:model WalletInfoResponse
type WalletInfoResponse struct {
	Success  bool   `json:"success"`
	WalletID string `json:"walletId"`
	Address  string `json:"address,omitempty"`
}

// WalletErrorResponse represents an error response for wallet lookups
// swagger:model WalletErrorResponse
type WalletErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Wallet not found
	Error string `json:"error"`

	// Raw upstream response body, present on wallet service failures
	Details string `json:"details,omitempty"`
}

// NewGetWalletHandler returns an HTTP handler that looks up a user's wallet.
// The seed is never included in the response.
// @Summary Get a user's wallet
// @Description Returns the stored wallet ID and current receiving address for a Telegram user.
// @Tags wallet
// @Produce json
// @Param telegramId path string true "Telegram user ID"
// @Success 200 {object} handlers.WalletInfoResponse "Wallet record"
// @Failure 404 {object} handlers.WalletErrorResponse "Wallet not found"
// @Router /api/wallet/{telegramId} [get]
func NewGetWalletHandler(svc WalletGetter, addresses WalletAddressGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		telegramID := chi.URLParam(r, "telegramId")

		rec, err := svc.GetWallet(ctx, telegramID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WalletErrorResponse{
					Error: "Wallet not found",
				})
				return
			}
			logger.Log.Errorw("wallet lookup failed", "telegramId", telegramID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WalletErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		// Address fetch is best effort here.
		address, err := addresses.Address(ctx, rec.WalletID)
		if err != nil {
			logger.Log.Warnw("address fetch failed", "walletId", rec.WalletID, "err", err)
			address = ""
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WalletInfoResponse{
			Success:  true,
			WalletID: rec.WalletID,
			Address:  address,
		})
	}
}

// AddressResponse represents a wallet address response
// swagger:model AddressResponse
type AddressResponse struct {
	Success bool   `json:"success"`
	Address string `json:"address"`
}

// NewWalletAddressHandler returns an HTTP handler for the wallet-scoped
// address route.
// @Summary Get a wallet's receiving address
// @Tags wallet
// @Produce json
// @Param walletId path string true "Wallet session ID"
// @Success 200 {object} handlers.AddressResponse "Current receiving address"
// @Failure 502 {object} handlers.WalletErrorResponse "Upstream wallet service unavailable"
// @Router /api/wallet/{walletId}/address [get]
func NewWalletAddressHandler(addresses WalletAddressGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletID := chi.URLParam(r, "walletId")

		address, err := addresses.Address(r.Context(), walletID)
		if err != nil {
			logger.Log.Errorw("address fetch failed", "walletId", walletID, "err", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(WalletErrorResponse{
				Error:   "Wallet service unavailable",
				Details: upstreamDetails(err),
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddressResponse{
			Success: true,
			Address: address,
		})
	}
}
