package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/models"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

func TestGetHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockHistoryGetter)
		expectedCode int
		check        func(t *testing.T, body HistoryResponse)
	}{
		{
			name: "success",
			mockSetup: func(m *MockHistoryGetter) {
				m.EXPECT().GetHistory(gomock.Any(), "111").
					Return([]models.HistoryItem{
						{TxID: "abc", Amount: 2.5, Token: "HTR", Timestamp: 1000, Status: "confirmed"},
						{TxID: "def", Amount: -1, Token: "HTR", Timestamp: 2000, Status: "confirmed"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body HistoryResponse) {
				assert.Len(t, body.Transactions, 2)
				assert.Equal(t, "abc", body.Transactions[0].TxID)
				assert.Equal(t, "def", body.Transactions[1].TxID)
			},
		},
		{
			name: "empty history returns empty array",
			mockSetup: func(m *MockHistoryGetter) {
				m.EXPECT().GetHistory(gomock.Any(), "111").Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body HistoryResponse) {
				assert.NotNil(t, body.Transactions)
				assert.Len(t, body.Transactions, 0)
			},
		},
		{
			name: "wallet not found",
			mockSetup: func(m *MockHistoryGetter) {
				m.EXPECT().GetHistory(gomock.Any(), "111").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHistoryGetter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Get("/api/tx-history/{telegramId}", NewGetHistoryHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/tx-history/111", nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				var body HistoryResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}
