package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/telegram"
)

// InitDataVerifier validates Telegram Mini App init data.
type InitDataVerifier interface {
	Verify(initData string) (*telegram.InitDataUser, error)
}

// TokenGenerator issues JWT tokens for an external user ID.
type TokenGenerator interface {
	Generate(ctx context.Context, externalID string) (string, error)
}

// TelegramAuthRequest represents the JSON body for Mini App authentication
// swagger:model TelegramAuthRequest
type TelegramAuthRequest struct {
	// Raw init data string as provided by the Telegram Mini App
	// required: true
	InitData string `json:"initData"`
}

// TelegramAuthResponse represents a successful authentication response
// swagger:model TelegramAuthResponse
type TelegramAuthResponse struct {
	Success bool `json:"success"`

	// Bearer token for subsequent API calls
	Token string `json:"token"`

	// Authenticated Telegram user ID
	TelegramID string `json:"telegramId"`
}

// TelegramAuthErrorResponse represents an error response for authentication
// swagger:model TelegramAuthErrorResponse
type TelegramAuthErrorResponse struct {
	Success bool `json:"success"`

	// Error message
	// default: Invalid init data
	Error string `json:"error"`
}

// NewTelegramAuthHandler returns an HTTP handler that exchanges signed
// Telegram Mini App init data for a bearer token.
// @Summary Authenticate a Telegram Mini App user
// @Description Verifies the init data signature against the bot token and issues a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param telegramAuthRequest body handlers.TelegramAuthRequest true "Authentication request"
// @Success 200 {object} handlers.TelegramAuthResponse "Token issued"
// @Failure 400 {object} handlers.TelegramAuthErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TelegramAuthErrorResponse "Init data rejected"
// @Router /api/auth/telegram [post]
func NewTelegramAuthHandler(verifier InitDataVerifier, tokens TokenGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req TelegramAuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.InitData == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TelegramAuthErrorResponse{
				Error: "initData is required",
			})
			return
		}

		user, err := verifier.Verify(req.InitData)
		if err != nil {
			if errors.Is(err, telegram.ErrExpiredInitData) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(TelegramAuthErrorResponse{
					Error: "Init data expired",
				})
				return
			}
			logger.Log.Warnw("init data rejected", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TelegramAuthErrorResponse{
				Error: "Invalid init data",
			})
			return
		}

		externalID := strconv.FormatInt(user.ID, 10)
		token, err := tokens.Generate(ctx, externalID)
		if err != nil {
			logger.Log.Errorw("token generation failed", "telegramId", externalID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TelegramAuthErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TelegramAuthResponse{
			Success:    true,
			Token:      token,
			TelegramID: externalID,
		})
	}
}
