package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

func readyStatus() *models.WalletStatus {
	return &models.WalletStatus{StatusCode: models.WalletStatusReady, StatusMessage: "Ready"}
}

func syncingStatus() *models.WalletStatus {
	return &models.WalletStatus{StatusCode: 2, StatusMessage: "Syncing"}
}

func TestEnsureSession_AlreadyReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(readyStatus(), nil)
	// No Start call expected.

	svc := NewSessionService(api, "testnet", 10*time.Millisecond, time.Second)
	err := svc.EnsureSession(context.Background(), "wallet-1", "seed words")
	assert.NoError(t, err)
}

func TestEnsureSession_NotReadyIssuesStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(syncingStatus(), nil)
	api.EXPECT().Start(gomock.Any(), models.StartRequest{
		WalletID:   "wallet-1",
		Seed:       "seed words",
		Passphrase: "",
		Network:    "testnet",
	}).Return(&models.StartResponse{Success: true}, nil)

	svc := NewSessionService(api, "testnet", 10*time.Millisecond, time.Second)
	err := svc.EnsureSession(context.Background(), "wallet-1", "seed words")
	assert.NoError(t, err)
}

func TestEnsureSession_StatusErrorIssuesSingleStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(nil, errors.New("no session"))
	api.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(&models.StartResponse{Success: true}, nil).
		Times(1)

	svc := NewSessionService(api, "", 10*time.Millisecond, time.Second)
	err := svc.EnsureSession(context.Background(), "wallet-1", "seed words")
	assert.NoError(t, err)
}

func TestEnsureSession_EmptySeedUsesPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(syncingStatus(), nil)
	api.EXPECT().Start(gomock.Any(), models.StartRequest{
		WalletID: "wallet-1",
		Seed:     DefaultSeed,
	}).Return(&models.StartResponse{Success: true}, nil)

	svc := NewSessionService(api, "", 10*time.Millisecond, time.Second)
	err := svc.EnsureSession(context.Background(), "wallet-1", "")
	assert.NoError(t, err)
}

func TestEnsureSession_BothCallsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(nil, errors.New("connection refused"))
	api.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := NewSessionService(api, "", 10*time.Millisecond, time.Second)
	err := svc.EnsureSession(context.Background(), "wallet-1", "seed words")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestEnsureSession_StartRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(syncingStatus(), nil)
	api.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(&models.StartResponse{Success: false, Message: "invalid seed"}, nil)

	svc := NewSessionService(api, "", 10*time.Millisecond, time.Second)
	err := svc.EnsureSession(context.Background(), "wallet-1", "seed words")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "invalid seed")
}

func TestWaitReady_ImmediatelyReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(readyStatus(), nil)

	svc := NewSessionService(api, "", 10*time.Millisecond, time.Second)
	assert.NoError(t, svc.WaitReady(context.Background(), "wallet-1"))
}

func TestWaitReady_BecomesReadyAfterPolls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().Status(gomock.Any(), "wallet-1").Return(syncingStatus(), nil),
		api.EXPECT().Status(gomock.Any(), "wallet-1").Return(nil, errors.New("flaky")),
		api.EXPECT().Status(gomock.Any(), "wallet-1").Return(readyStatus(), nil),
	)

	svc := NewSessionService(api, "", time.Millisecond, time.Second)
	assert.NoError(t, svc.WaitReady(context.Background(), "wallet-1"))
}

func TestWaitReady_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(syncingStatus(), nil).AnyTimes()

	svc := NewSessionService(api, "", time.Millisecond, 20*time.Millisecond)
	err := svc.WaitReady(context.Background(), "wallet-1")
	assert.ErrorIs(t, err, ErrReadyTimeout)
}

func TestWaitReady_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockSessionAPI(ctrl)
	api.EXPECT().Status(gomock.Any(), "wallet-1").Return(syncingStatus(), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewSessionService(api, "", time.Millisecond, time.Second)
	err := svc.WaitReady(ctx, "wallet-1")
	assert.ErrorIs(t, err, context.Canceled)
}
