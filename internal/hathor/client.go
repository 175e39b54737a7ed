package hathor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// walletIDHeader carries the session identifier on wallet-scoped calls.
const walletIDHeader = "X-Wallet-Id"

// ErrUnreachable is returned when the wallet-headless service cannot be
// reached at the transport level.
var ErrUnreachable = errors.New("wallet-headless unreachable")

// UpstreamError is returned when the wallet-headless service answers with a
// non-2xx status. Body keeps the raw upstream response so callers can
// surface it under the error envelope's details field.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("wallet-headless returned status %d: %s", e.StatusCode, e.Body)
}

// Client is a typed facade over the wallet-headless HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client for the given base URL with an explicit timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Start issues POST /start for the given wallet session.
func (c *Client) Start(ctx context.Context, req models.StartRequest) (*models.StartResponse, error) {
	var resp models.StartResponse
	if err := c.do(ctx, http.MethodPost, "/start", "", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status fetches GET /wallet/status for the given session.
func (c *Client) Status(ctx context.Context, walletID string) (*models.WalletStatus, error) {
	var resp models.WalletStatus
	if err := c.do(ctx, http.MethodGet, "/wallet/status", walletID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Address fetches the session's current receive address.
func (c *Client) Address(ctx context.Context, walletID string) (string, error) {
	var resp models.AddressResponse
	if err := c.do(ctx, http.MethodGet, "/wallet/address", walletID, nil, nil, &resp); err != nil {
		return "", err
	}
	if resp.Address == "" {
		return "", fmt.Errorf("wallet-headless returned empty address for wallet %s", walletID)
	}
	return resp.Address, nil
}

// Balance fetches the HTR balance of the session in atomic units.
func (c *Client) Balance(ctx context.Context, walletID string) (*models.RawBalance, error) {
	var resp models.RawBalance
	if err := c.do(ctx, http.MethodGet, "/wallet/balance", walletID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tokens fetches the custom-token balances of the session in atomic units.
func (c *Client) Tokens(ctx context.Context, walletID string) ([]models.RawTokenBalance, error) {
	var resp []models.RawTokenBalance
	if err := c.do(ctx, http.MethodGet, "/wallet/tokens", walletID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TxHistory fetches the session's transaction history, newest first.
func (c *Client) TxHistory(ctx context.Context, walletID string) ([]models.RawTransaction, error) {
	var resp []models.RawTransaction
	if err := c.do(ctx, http.MethodGet, "/wallet/tx-history", walletID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Transaction fetches a single transaction record by id. The record shape
// varies by transaction type, so it is passed through undecoded.
func (c *Client) Transaction(ctx context.Context, walletID, txID string) (json.RawMessage, error) {
	var resp json.RawMessage
	query := url.Values{"id": []string{txID}}
	if err := c.do(ctx, http.MethodGet, "/wallet/transaction", walletID, query, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SimpleSendTx issues POST /wallet/simple-send-tx.
func (c *Client) SimpleSendTx(ctx context.Context, req models.SendTxRequest) (*models.SendTxResponse, error) {
	var resp models.SendTxResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/simple-send-tx", req.WalletID, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one JSON round trip. walletID, query and body may be empty.
func (c *Client) do(ctx context.Context, method, path, walletID string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if walletID != "" {
		req.Header.Set(walletIDHeader, walletID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read wallet-headless response: %w", err)
	}

	logger.Log.Debugw("wallet-headless call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode wallet-headless response: %w", err)
		}
	}
	return nil
}
