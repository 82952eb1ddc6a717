package removeBlockedWord

import (
	"net/http"
	"net/http/httptest"
	"organizerConsole/internal/http-server/handlers/moderation/removeBlockedWord/mocks"
	"organizerConsole/internal/lib/logger/handlers/slogdiscard"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRemoveBlockedWordHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(m *mocks.WordRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Plain word",
			path: "/moderation/blocked-words/fake",
			mockSetup: func(m *mocks.WordRemover) {
				m.On("RemoveBlockedWord", "fake").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name: "Escaped word",
			path: "/moderation/blocked-words/doland%C4%B1r%C4%B1c%C4%B1",
			mockSetup: func(m *mocks.WordRemover) {
				m.On("RemoveBlockedWord", "dolandırıcı").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRemover := mocks.NewWordRemover(t)
			tc.mockSetup(mockRemover)

			router := chi.NewRouter()
			router.Delete("/moderation/blocked-words/{word}", New(slogdiscard.NewDiscardLogger(), mockRemover))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, tc.path, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestRemoveBlockedWordMissing(t *testing.T) {
	t.Parallel()

	mockRemover := mocks.NewWordRemover(t)
	handler := New(slogdiscard.NewDiscardLogger(), mockRemover)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/moderation/blocked-words/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"word is required"}`, rr.Body.String())
}
