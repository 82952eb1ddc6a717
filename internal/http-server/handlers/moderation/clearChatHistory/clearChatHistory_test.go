package clearChatHistory

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"organizerConsole/internal/http-server/handlers/moderation/clearChatHistory/mocks"
	"organizerConsole/internal/lib/logger/handlers/slogdiscard"
	"organizerConsole/internal/moderation"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestClearChatHistoryHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		groupID        string
		requestBody    string
		mockSetup      func(m *mocks.ChatHistoryClearer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Confirmed",
			groupID:     "1",
			requestBody: `{"confirm": true}`,
			mockSetup: func(m *mocks.ChatHistoryClearer) {
				m.On("ClearChatHistory", "1", true).Return(moderation.HistoryClearedMessage, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Sohbet geçmişi başarıyla temizlendi."}`,
		},
		{
			name:        "Without confirmation",
			groupID:     "1",
			requestBody: ``,
			mockSetup: func(m *mocks.ChatHistoryClearer) {
				m.On("ClearChatHistory", "1", false).Return("", moderation.ErrConfirmationRequired)
			},
			expectedStatus: http.StatusPreconditionRequired,
			expectedBody:   `{"status":"Error","error":"confirmation required"}`,
		},
		{
			name:        "Unknown group",
			groupID:     "9",
			requestBody: `{"confirm": true}`,
			mockSetup: func(m *mocks.ChatHistoryClearer) {
				m.On("ClearChatHistory", "9", true).Return("", moderation.ErrChatGroupNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"chat group not found"}`,
		},
		{
			name:           "Invalid JSON",
			groupID:        "1",
			requestBody:    `[`,
			mockSetup:      func(m *mocks.ChatHistoryClearer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockClearer := mocks.NewChatHistoryClearer(t)
			tc.mockSetup(mockClearer)

			router := chi.NewRouter()
			router.Post("/moderation/chats/{id}/clear", New(slogdiscard.NewDiscardLogger(), mockClearer))

			req := httptest.NewRequest(http.MethodPost, "/moderation/chats/"+tc.groupID+"/clear", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
