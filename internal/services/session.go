package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// DefaultSeed is the fixed placeholder seed used when a session is started
// without stored seed material. An explicit design choice inherited from the
// original relay, not a cryptographic default.
const DefaultSeed = "default"

var (
	// ErrUpstreamUnavailable is returned when the wallet-headless service
	// cannot be reached or reports failure.
	ErrUpstreamUnavailable = errors.New("wallet service unavailable")

	// ErrReadyTimeout is returned when a started session does not reach the
	// ready state within the configured deadline.
	ErrReadyTimeout = errors.New("wallet session did not become ready in time")
)

// SessionAPI is the slice of the upstream client the session manager needs.
type SessionAPI interface {
	Start(ctx context.Context, req models.StartRequest) (*models.StartResponse, error)
	Status(ctx context.Context, walletID string) (*models.WalletStatus, error)
}

// SessionService guarantees that a named wallet session exists on the
// upstream service before wallet-scoped operations are issued.
type SessionService struct {
	api          SessionAPI
	network      string
	pollInterval time.Duration
	readyTimeout time.Duration
}

// NewSessionService creates a SessionService. network may be empty, in
// which case the upstream's default network is used.
func NewSessionService(api SessionAPI, network string, pollInterval, readyTimeout time.Duration) *SessionService {
	return &SessionService{
		api:          api,
		network:      network,
		pollInterval: pollInterval,
		readyTimeout: readyTimeout,
	}
}

// EnsureSession checks the session status and issues a start request when
// the session is not ready or the status check itself fails. It does not
// wait for the session to finish initializing; callers that need readiness
// immediately must follow up with WaitReady.
func (s *SessionService) EnsureSession(ctx context.Context, walletID, seed string) error {
	if seed == "" {
		seed = DefaultSeed
	}

	status, statusErr := s.api.Status(ctx, walletID)
	if statusErr == nil && status.StatusCode == models.WalletStatusReady {
		return nil
	}
	if statusErr != nil {
		// A failing status check (e.g. session absent) is treated the same
		// as not-ready: try to start the session.
		logger.Log.Infow("wallet status check failed, starting session",
			"walletID", walletID, "error", statusErr)
	}

	resp, startErr := s.api.Start(ctx, models.StartRequest{
		WalletID:   walletID,
		Seed:       seed,
		Passphrase: "",
		Network:    s.network,
	})
	if startErr != nil {
		logger.Log.Errorw("failed to start wallet session",
			"walletID", walletID, "statusError", statusErr, "error", startErr)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, startErr)
	}
	if !resp.Success {
		logger.Log.Errorw("wallet session start rejected",
			"walletID", walletID, "message", resp.Message)
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, resp.Message)
	}

	return nil
}

// WaitReady polls the session status until it reports ready or the deadline
// passes. Replaces the fixed settling sleep of the original relay with a
// definite ready/timeout outcome.
func (s *SessionService) WaitReady(ctx context.Context, walletID string) error {
	deadline := time.Now().Add(s.readyTimeout)

	for {
		status, err := s.api.Status(ctx, walletID)
		if err == nil && status.StatusCode == models.WalletStatusReady {
			return nil
		}

		if time.Now().After(deadline) {
			logger.Log.Warnw("wallet session not ready before deadline",
				"walletID", walletID, "timeout", s.readyTimeout)
			return ErrReadyTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}
