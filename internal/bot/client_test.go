package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/jwt"
)

func TestClient_CreateWallet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/createWallet", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "111", req["telegramId"])

		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"walletId": "wallet-1",
			"seed":     "word1 word2",
			"isNew":    true,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)

	res, err := client.CreateWallet(context.Background(), "111")
	assert.NoError(t, err)
	assert.Equal(t, "wallet-1", res.WalletID)
	assert.True(t, res.IsNew)
	assert.Equal(t, "word1 word2", res.Seed)
}

func TestClient_SignsBearerToken(t *testing.T) {
	tokens := jwt.New("bot-secret", time.Minute)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(auth, "Bearer "))

		externalID, err := tokens.GetExternalID(r.Context(), strings.TrimPrefix(auth, "Bearer "))
		assert.NoError(t, err)
		assert.Equal(t, "111", externalID)

		json.NewEncoder(w).Encode(map[string]any{"success": true, "balances": map[string]any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, tokens)

	_, err := client.Balances(context.Background(), "111")
	assert.NoError(t, err)
}

func TestClient_ErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Wallet not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)

	_, err := client.Balances(context.Background(), "111")

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Wallet not found", apiErr.Message)
}

func TestClient_TipAndSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch r.URL.Path {
		case "/api/tip":
			assert.Equal(t, "111", req["fromTelegramId"])
			assert.Equal(t, "222", req["toTelegramId"])
			assert.Equal(t, 5.5, req["amount"])
			json.NewEncoder(w).Encode(map[string]any{"success": true, "txId": "tx-1"})
		case "/api/send":
			assert.Equal(t, "111", req["telegramId"])
			assert.Equal(t, "WAddr", req["recipient"])
			json.NewEncoder(w).Encode(map[string]any{"success": true, "txId": "tx-2"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	ctx := context.Background()

	txID, err := client.Tip(ctx, "111", "222", 5.5, "HTR")
	assert.NoError(t, err)
	assert.Equal(t, "tx-1", txID)

	txID, err = client.Send(ctx, "111", "WAddr", 1, "HTR")
	assert.NoError(t, err)
	assert.Equal(t, "tx-2", txID)
}

func TestClient_History(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tx-history/111", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"transactions": []map[string]any{
				{"txId": "abc", "amount": 2.5, "token": "HTR", "timestamp": 1000, "status": "confirmed"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)

	history, err := client.History(context.Background(), "111")
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "abc", history[0].TxID)
	assert.Equal(t, 2.5, history[0].Amount)
}
