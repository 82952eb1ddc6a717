package setToken

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"organizerConsole/internal/http-server/handlers/session/setToken/mocks"
	"organizerConsole/internal/lib/logger/handlers/slogdiscard"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetTokenHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TokenSetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"token": "abc.def"}`,
			mockSetup: func(m *mocks.TokenSetter) {
				m.On("SetItem", mock.Anything, "accessToken", "abc.def").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Missing token",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.TokenSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Token is a required field"}`,
		},
		{
			name:           "Empty body",
			requestBody:    ``,
			mockSetup:      func(m *mocks.TokenSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"empty request"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"token":`,
			mockSetup:      func(m *mocks.TokenSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"token": "abc"}`,
			mockSetup: func(m *mocks.TokenSetter) {
				m.On("SetItem", mock.Anything, "accessToken", "abc").Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to store token"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSetter := mocks.NewTokenSetter(t)
			tc.mockSetup(mockSetter)

			handler := New(logger, mockSetter)

			req, err := http.NewRequest(http.MethodPut, "/session/token", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
