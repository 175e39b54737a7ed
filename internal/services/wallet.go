package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/tyler-smith/go-bip39"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

var (
	// ErrUserNotFound is returned when no record exists for an external ID.
	ErrUserNotFound = errors.New("user not found or wallet not created")

	// ErrTransactionNotFound is returned when the upstream has no record
	// for the requested transaction id.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// UserReader reads user records from the configured store.
type UserReader interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.UserRecord, error)
}

// UserWriter persists user records to the configured store.
type UserWriter interface {
	Save(ctx context.Context, rec models.UserRecord) error
}

// WalletAPI is the slice of the upstream client used for wallet-scoped
// operations once a session is ensured.
type WalletAPI interface {
	Status(ctx context.Context, walletID string) (*models.WalletStatus, error)
	Address(ctx context.Context, walletID string) (string, error)
	Balance(ctx context.Context, walletID string) (*models.RawBalance, error)
	Tokens(ctx context.Context, walletID string) ([]models.RawTokenBalance, error)
	TxHistory(ctx context.Context, walletID string) ([]models.RawTransaction, error)
	Transaction(ctx context.Context, walletID, txID string) (json.RawMessage, error)
	SimpleSendTx(ctx context.Context, req models.SendTxRequest) (*models.SendTxResponse, error)
}

// Sessioner reconciles upstream wallet sessions.
type Sessioner interface {
	EnsureSession(ctx context.Context, walletID, seed string) error
	WaitReady(ctx context.Context, walletID string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProvisionResult is the outcome of a wallet provisioning call.
type ProvisionResult struct {
	WalletID string
	Seed     string // set only for freshly created wallets
	Address  string // empty when the address fetch degraded
	IsNew    bool
}

// WalletService composes the user store, the session manager and the
// upstream facade into the operations the relay exposes.
type WalletService struct {
	readStore   UserReader
	writeStore  UserWriter
	api         WalletAPI
	sessions    Sessioner
	mapper      *HistoryMapper
	kafkaWriter KafkaWriter

	// provisionMu serializes provisioning per external ID so two concurrent
	// first calls cannot persist two different wallet IDs for one user.
	// Entries are evicted once the record exists, so the map only holds
	// in-flight first calls.
	provisionMu struct {
		sync.Mutex
		locks map[string]*sync.Mutex
	}
}

// NewWalletService creates a WalletService. kafkaWriter may be nil, in which
// case transfer events are not published.
func NewWalletService(
	readStore UserReader,
	writeStore UserWriter,
	api WalletAPI,
	sessions Sessioner,
	mapper *HistoryMapper,
	kafkaWriter KafkaWriter,
) *WalletService {
	s := &WalletService{
		readStore:   readStore,
		writeStore:  writeStore,
		api:         api,
		sessions:    sessions,
		mapper:      mapper,
		kafkaWriter: kafkaWriter,
	}
	s.provisionMu.locks = make(map[string]*sync.Mutex)
	return s
}

func (s *WalletService) userLock(externalID string) *sync.Mutex {
	s.provisionMu.Lock()
	defer s.provisionMu.Unlock()

	mu, ok := s.provisionMu.locks[externalID]
	if !ok {
		mu = &sync.Mutex{}
		s.provisionMu.locks[externalID] = mu
	}
	return mu
}

func (s *WalletService) releaseUserLock(externalID string) {
	s.provisionMu.Lock()
	delete(s.provisionMu.locks, externalID)
	s.provisionMu.Unlock()
}

// ProvisionWallet returns the user's wallet, creating and persisting one on
// first call. Repeat calls are idempotent: the stored wallet ID is reused
// and no second upstream session is created.
func (s *WalletService) ProvisionWallet(ctx context.Context, externalID, requestedSeed string) (*ProvisionResult, error) {
	mu := s.userLock(externalID)
	mu.Lock()
	res, err := s.provision(ctx, externalID, requestedSeed)
	mu.Unlock()

	// Once a record is persisted, repeat calls only read it, so the lock
	// entry is no longer needed.
	if err == nil {
		s.releaseUserLock(externalID)
	}
	return res, err
}

func (s *WalletService) provision(ctx context.Context, externalID, requestedSeed string) (*ProvisionResult, error) {
	rec, err := s.readStore.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	if rec != nil {
		if err := s.sessions.EnsureSession(ctx, rec.WalletID, rec.Seed); err != nil {
			return nil, err
		}

		// Address fetch failure degrades to an empty address rather than
		// failing the whole call for an already provisioned user.
		address, addrErr := s.api.Address(ctx, rec.WalletID)
		if addrErr != nil {
			logger.Log.Warnw("address fetch degraded for existing wallet",
				"externalID", externalID, "walletID", rec.WalletID, "error", addrErr)
			address = ""
		}

		return &ProvisionResult{WalletID: rec.WalletID, Address: address}, nil
	}

	walletID := uuid.NewString()
	seed := requestedSeed
	if seed == "" {
		seed, err = generateSeed()
		if err != nil {
			return nil, fmt.Errorf("failed to generate seed: %w", err)
		}
	}

	if err := s.sessions.EnsureSession(ctx, walletID, seed); err != nil {
		return nil, err
	}
	if err := s.sessions.WaitReady(ctx, walletID); err != nil {
		return nil, err
	}

	// First-time provisioning needs the address; a failure here is fatal.
	address, err := s.api.Address(ctx, walletID)
	if err != nil {
		logger.Log.Errorw("failed to fetch address for new wallet",
			"externalID", externalID, "walletID", walletID, "error", err)
		return nil, fmt.Errorf("wallet created but address fetch failed: %w", err)
	}

	if err := s.writeStore.Save(ctx, models.UserRecord{
		ExternalID: externalID,
		WalletID:   walletID,
		Seed:       seed,
	}); err != nil {
		return nil, fmt.Errorf("failed to persist user record: %w", err)
	}

	logger.Log.Infow("wallet provisioned", "externalID", externalID, "walletID", walletID)

	return &ProvisionResult{WalletID: walletID, Seed: seed, Address: address, IsNew: true}, nil
}

// generateSeed produces a fresh 24-word mnemonic.
func generateSeed() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// GetWallet returns the stored record for the given external ID.
func (s *WalletService) GetWallet(ctx context.Context, externalID string) (*models.UserRecord, error) {
	rec, err := s.readStore.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	if rec == nil || rec.WalletID == "" {
		return nil, ErrUserNotFound
	}
	return rec, nil
}

// GetStatus returns the upstream session status for the user's wallet.
func (s *WalletService) GetStatus(ctx context.Context, externalID string) (*models.WalletStatus, error) {
	rec, err := s.GetWallet(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return s.api.Status(ctx, rec.WalletID)
}

// GetBalances ensures the user's session and returns the normalized
// per-symbol balance map.
func (s *WalletService) GetBalances(ctx context.Context, externalID string) (map[string]models.BalanceEntry, error) {
	rec, err := s.GetWallet(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.EnsureSession(ctx, rec.WalletID, rec.Seed); err != nil {
		return nil, err
	}
	return s.BalancesForWallet(ctx, rec.WalletID)
}

// BalancesForWallet fetches HTR and custom-token balances for a session and
// normalizes them to display units.
func (s *WalletService) BalancesForWallet(ctx context.Context, walletID string) (map[string]models.BalanceEntry, error) {
	htr, err := s.api.Balance(ctx, walletID)
	if err != nil {
		return nil, err
	}
	tokens, err := s.api.Tokens(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return NormalizeBalances(htr, tokens), nil
}

// GetHistory returns the user's mapped transaction history, upstream order
// preserved.
func (s *WalletService) GetHistory(ctx context.Context, externalID string) ([]models.HistoryItem, error) {
	rec, err := s.GetWallet(ctx, externalID)
	if err != nil {
		return nil, err
	}
	raw, err := s.api.TxHistory(ctx, rec.WalletID)
	if err != nil {
		return nil, err
	}
	return s.mapper.MapHistory(raw), nil
}

// GetTransaction returns a single raw transaction record for the user.
func (s *WalletService) GetTransaction(ctx context.Context, externalID, txID string) (json.RawMessage, error) {
	rec, err := s.GetWallet(ctx, externalID)
	if err != nil {
		return nil, err
	}
	raw, err := s.api.Transaction(ctx, rec.WalletID, txID)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrTransactionNotFound
	}
	return raw, nil
}

// Tip sends tokens between two registered users, resolving the recipient's
// current address upstream.
func (s *WalletService) Tip(ctx context.Context, senderID, recipientID string, amount float64, token string) (string, error) {
	sender, err := s.GetWallet(ctx, senderID)
	if err != nil {
		return "", err
	}
	recipient, err := s.GetWallet(ctx, recipientID)
	if err != nil {
		return "", err
	}

	address, err := s.api.Address(ctx, recipient.WalletID)
	if err != nil {
		return "", err
	}

	return s.transfer(ctx, "tip", sender, address, amount, token)
}

// Send sends tokens from a registered user to a recipient given either as a
// registered external ID or as a raw wallet address.
func (s *WalletService) Send(ctx context.Context, senderID, recipient string, amount float64, token string) (string, error) {
	sender, err := s.GetWallet(ctx, senderID)
	if err != nil {
		return "", err
	}

	address := recipient
	if rec, err := s.readStore.GetByExternalID(ctx, recipient); err == nil && rec != nil && rec.WalletID != "" {
		address, err = s.api.Address(ctx, rec.WalletID)
		if err != nil {
			return "", err
		}
	}

	return s.transfer(ctx, "send", sender, address, amount, token)
}

func (s *WalletService) transfer(ctx context.Context, operation string, sender *models.UserRecord, address string, amount float64, token string) (string, error) {
	if err := s.sessions.EnsureSession(ctx, sender.WalletID, sender.Seed); err != nil {
		return "", err
	}

	req := models.SendTxRequest{
		WalletID: sender.WalletID,
		Address:  address,
		Amount:   int64(math.Round(amount * models.AtomicUnitDivisor)),
	}
	if token != "" && token != models.HTR {
		req.Token = token
	}

	resp, err := s.api.SimpleSendTx(ctx, req)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("%w: %s", ErrUpstreamUnavailable, resp.Message)
	}

	logger.Log.Infow("transfer sent",
		"operation", operation,
		"sender", sender.ExternalID,
		"address", address,
		"amount", amount,
		"token", token,
		"txID", resp.TxID,
	)

	s.publishTransfer(ctx, models.TransferEvent{
		TransferID:       uuid.NewString(),
		Timestamp:        time.Now().Unix(),
		Amount:           amount,
		Token:            token,
		SenderID:         sender.ExternalID,
		RecipientAddress: address,
		TxID:             resp.TxID,
		Operation:        operation,
	})

	return resp.TxID, nil
}

// publishTransfer publishes a transfer event to Kafka.
func (s *WalletService) publishTransfer(ctx context.Context, event models.TransferEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transfer_id", event.TransferID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transfer event for Kafka", "transfer_id", event.TransferID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransferID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transfer event to Kafka", "transfer_id", event.TransferID, "error", err)
	} else {
		logger.Log.Infow("Transfer event published to Kafka", "transfer_id", event.TransferID, "amount", event.Amount)
	}
}
