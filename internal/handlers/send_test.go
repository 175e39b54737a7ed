package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/middlewares"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

func TestSendHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		authID       string
		mockSetup    func(m *MockSender)
		expectedCode int
		check        func(t *testing.T, body map[string]any)
	}{
		{
			name: "success",
			body: `{"telegramId":"111","recipient":"WAddr","amount":1.5}`,
			mockSetup: func(m *MockSender) {
				m.EXPECT().Send(gomock.Any(), "111", "WAddr", 1.5, "").
					Return("tx-1", nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "tx-1", body["txId"])
			},
		},
		{
			name: "custom token",
			body: `{"telegramId":"111","recipient":"222","amount":10,"token":"VIBE"}`,
			mockSetup: func(m *MockSender) {
				m.EXPECT().Send(gomock.Any(), "111", "222", 10.0, "VIBE").
					Return("tx-2", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing recipient",
			body:         `{"telegramId":"111","amount":1}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "zero amount",
			body:         `{"telegramId":"111","recipient":"WAddr","amount":0}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "negative amount",
			body:         `{"telegramId":"111","recipient":"WAddr","amount":-2}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "authenticated sender matches",
			body:   `{"telegramId":"111","recipient":"WAddr","amount":1}`,
			authID: "111",
			mockSetup: func(m *MockSender) {
				m.EXPECT().Send(gomock.Any(), "111", "WAddr", 1.0, "").
					Return("tx-3", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "authenticated sender mismatch",
			body:         `{"telegramId":"111","recipient":"WAddr","amount":1}`,
			authID:       "222",
			expectedCode: http.StatusForbidden,
		},
		{
			name: "sender wallet not found",
			body: `{"telegramId":"111","recipient":"WAddr","amount":1}`,
			mockSetup: func(m *MockSender) {
				m.EXPECT().Send(gomock.Any(), "111", "WAddr", 1.0, "").
					Return("", services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "upstream rejects transfer",
			body: `{"telegramId":"111","recipient":"WAddr","amount":1}`,
			mockSetup: func(m *MockSender) {
				m.EXPECT().Send(gomock.Any(), "111", "WAddr", 1.0, "").
					Return("", services.ErrUpstreamUnavailable)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSender(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSendHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/send", bytes.NewBufferString(tt.body))
			if tt.authID != "" {
				req = req.WithContext(middlewares.SetExternalIDToContext(req.Context(), tt.authID))
			}
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
