package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/hathor"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

func TestCreateWalletHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockWalletProvisioner)
		expectedCode int
		check        func(t *testing.T, body map[string]any)
	}{
		{
			name: "new wallet",
			body: `{"telegramId":"111"}`,
			mockSetup: func(m *MockWalletProvisioner) {
				m.EXPECT().
					ProvisionWallet(gomock.Any(), "111", "").
					Return(&services.ProvisionResult{
						WalletID: "wallet-1",
						Seed:     "word1 word2",
						Address:  "WAddr",
						IsNew:    true,
					}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "wallet-1", body["walletId"])
				assert.Equal(t, "word1 word2", body["seed"])
				assert.Equal(t, true, body["isNew"])
			},
		},
		{
			name: "existing wallet omits seed",
			body: `{"telegramId":"111"}`,
			mockSetup: func(m *MockWalletProvisioner) {
				m.EXPECT().
					ProvisionWallet(gomock.Any(), "111", "").
					Return(&services.ProvisionResult{WalletID: "wallet-1", Address: "WAddr"}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.NotContains(t, body, "seed")
				assert.Equal(t, false, body["isNew"])
			},
		},
		{
			name: "imported seed forwarded",
			body: `{"telegramId":"111","seed":"my seed"}`,
			mockSetup: func(m *MockWalletProvisioner) {
				m.EXPECT().
					ProvisionWallet(gomock.Any(), "111", "my seed").
					Return(&services.ProvisionResult{WalletID: "wallet-1", Seed: "my seed", IsNew: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing telegramId",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "upstream unavailable",
			body: `{"telegramId":"111"}`,
			mockSetup: func(m *MockWalletProvisioner) {
				m.EXPECT().
					ProvisionWallet(gomock.Any(), "111", "").
					Return(nil, services.ErrUpstreamUnavailable)
			},
			expectedCode: http.StatusBadGateway,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "Wallet service unavailable", body["error"])
				assert.NotContains(t, body, "details")
			},
		},
		{
			name: "upstream rejection surfaces details",
			body: `{"telegramId":"111"}`,
			mockSetup: func(m *MockWalletProvisioner) {
				err := fmt.Errorf("%w: %w", services.ErrUpstreamUnavailable,
					&hathor.UpstreamError{StatusCode: 500, Body: `{"success":false,"message":"Invalid words"}`})
				m.EXPECT().
					ProvisionWallet(gomock.Any(), "111", "").
					Return(nil, err)
			},
			expectedCode: http.StatusBadGateway,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "Wallet service unavailable", body["error"])
				assert.Equal(t, `{"success":false,"message":"Invalid words"}`, body["details"])
			},
		},
		{
			name: "ready timeout",
			body: `{"telegramId":"111"}`,
			mockSetup: func(m *MockWalletProvisioner) {
				m.EXPECT().
					ProvisionWallet(gomock.Any(), "111", "").
					Return(nil, services.ErrReadyTimeout)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "internal error",
			body: `{"telegramId":"111"}`,
			mockSetup: func(m *MockWalletProvisioner) {
				m.EXPECT().
					ProvisionWallet(gomock.Any(), "111", "").
					Return(nil, errors.New("store failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockWalletProvisioner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateWalletHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/createWallet", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				var body map[string]any
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}
