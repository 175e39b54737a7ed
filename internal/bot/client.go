package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hathorchat/hathor-wallet-relay/internal/handlers"
	"github.com/hathorchat/hathor-wallet-relay/internal/jwt"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// Client is the bot's HTTP client for the relay API. When a token issuer is
// configured it self-signs a bearer token for the acting user on every call.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *jwt.JWT
}

// NewClient creates a relay API client. tokens may be nil when the relay
// runs without authentication.
func NewClient(baseURL string, timeout time.Duration, tokens *jwt.JWT) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// APIError is a non-2xx relay response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("relay api: status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path, actingID string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil && actingID != "" {
		token, err := c.tokens.Generate(ctx, actingID)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &errBody)
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// CreateWallet provisions (or fetches) the user's wallet.
func (c *Client) CreateWallet(ctx context.Context, telegramID string) (*handlers.CreateWalletResponse, error) {
	var out handlers.CreateWalletResponse
	err := c.do(ctx, http.MethodPost, "/api/createWallet", telegramID,
		handlers.CreateWalletRequest{TelegramID: telegramID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// WalletAddress fetches the receiving address for a wallet session.
func (c *Client) WalletAddress(ctx context.Context, telegramID, walletID string) (string, error) {
	var out handlers.AddressResponse
	err := c.do(ctx, http.MethodGet, "/api/wallet/"+walletID+"/address", telegramID, nil, &out)
	if err != nil {
		return "", err
	}
	return out.Address, nil
}

// Balances fetches normalized per-symbol balances for a user.
func (c *Client) Balances(ctx context.Context, telegramID string) (map[string]models.BalanceEntry, error) {
	var out handlers.BalanceResponse
	err := c.do(ctx, http.MethodGet, "/api/balance/"+telegramID, telegramID, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Balances, nil
}

// Status fetches the wallet session status for a user.
func (c *Client) Status(ctx context.Context, telegramID string) (*handlers.StatusResponse, error) {
	var out handlers.StatusResponse
	err := c.do(ctx, http.MethodGet, "/api/status/"+telegramID, telegramID, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches the user's mapped transaction history.
func (c *Client) History(ctx context.Context, telegramID string) ([]models.HistoryItem, error) {
	var out handlers.HistoryResponse
	err := c.do(ctx, http.MethodGet, "/api/tx-history/"+telegramID, telegramID, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// Transaction fetches a single raw transaction record.
func (c *Client) Transaction(ctx context.Context, telegramID, txID string) (json.RawMessage, error) {
	var out handlers.TransactionResponse
	err := c.do(ctx, http.MethodGet, "/api/transaction/"+telegramID+"/"+txID, telegramID, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Transaction, nil
}

// Tip tips tokens between two registered users.
func (c *Client) Tip(ctx context.Context, fromID, toID string, amount float64, token string) (string, error) {
	var out handlers.SendResponse
	err := c.do(ctx, http.MethodPost, "/api/tip", fromID, handlers.TipRequest{
		FromTelegramID: fromID,
		ToTelegramID:   toID,
		Amount:         amount,
		Token:          token,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.TxID, nil
}

// Send sends tokens to a registered user ID or a raw address.
func (c *Client) Send(ctx context.Context, fromID, recipient string, amount float64, token string) (string, error) {
	var out handlers.SendResponse
	err := c.do(ctx, http.MethodPost, "/api/send", fromID, handlers.SendRequest{
		TelegramID: fromID,
		Recipient:  recipient,
		Amount:     amount,
		Token:      token,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.TxID, nil
}
