package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/hathor"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

func TestGetBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockBalanceGetter)
		expectedCode int
		check        func(t *testing.T, body BalanceResponse)
	}{
		{
			name: "success",
			mockSetup: func(m *MockBalanceGetter) {
				m.EXPECT().GetBalances(gomock.Any(), "111").
					Return(map[string]models.BalanceEntry{
						"HTR":  {Available: 5, Locked: 1, Total: 6},
						"VIBE": {Available: 2, Total: 2},
					}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body BalanceResponse) {
				assert.True(t, body.Success)
				assert.Equal(t, 6.0, body.Balances["HTR"].Total)
				assert.Equal(t, 2.0, body.Balances["VIBE"].Total)
			},
		},
		{
			name: "wallet not found",
			mockSetup: func(m *MockBalanceGetter) {
				m.EXPECT().GetBalances(gomock.Any(), "111").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "upstream unavailable",
			mockSetup: func(m *MockBalanceGetter) {
				m.EXPECT().GetBalances(gomock.Any(), "111").
					Return(nil, services.ErrUpstreamUnavailable)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "internal error",
			mockSetup: func(m *MockBalanceGetter) {
				m.EXPECT().GetBalances(gomock.Any(), "111").
					Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBalanceGetter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Get("/api/balance/{telegramId}", NewGetBalanceHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/balance/111", nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				var body BalanceResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}

func TestGetBalanceHandler_UpstreamErrorDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBalanceGetter(ctrl)
	mockSvc.EXPECT().GetBalances(gomock.Any(), "111").
		Return(nil, &hathor.UpstreamError{StatusCode: 400, Body: `{"success":false,"message":"Wallet is not ready"}`})

	router := chi.NewRouter()
	router.Get("/api/balance/{telegramId}", NewGetBalanceHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/api/balance/111", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var body BalanceErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Wallet service unavailable", body.Error)
	assert.Equal(t, `{"success":false,"message":"Wallet is not ready"}`, body.Details)
}

func TestWalletBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWalletBalanceGetter(ctrl)
	mockSvc.EXPECT().BalancesForWallet(gomock.Any(), "wallet-1").
		Return(map[string]models.BalanceEntry{"HTR": {Total: 1}}, nil)

	router := chi.NewRouter()
	router.Get("/api/wallet/{walletId}/balance", NewWalletBalanceHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/wallet-1/balance", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body BalanceResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1.0, body.Balances["HTR"].Total)
}
