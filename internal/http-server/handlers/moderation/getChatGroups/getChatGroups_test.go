package getChatGroups

import (
	"net/http"
	"net/http/httptest"
	"organizerConsole/internal/http-server/handlers/moderation/getChatGroups/mocks"
	"organizerConsole/internal/lib/logger/handlers/slogdiscard"
	"organizerConsole/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetChatGroupsHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		groups       []models.ChatGroup
		expectedBody string
	}{
		{
			name: "Groups",
			groups: []models.ChatGroup{
				{ID: "r1", Name: "Zirve", Total: 3, Status: models.ChatActive, LastActivity: "05.10.2024"},
			},
			expectedBody: `{"status":"OK","chatGroups":[{"id":"r1","name":"Zirve","online":0,"total":3,` +
				`"status":"active","lastActivity":"05.10.2024"}]}`,
		},
		{
			name:         "Nil groups",
			groups:       nil,
			expectedBody: `{"status":"OK","chatGroups":[]}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLoader := mocks.NewChatGroupsLoader(t)
			mockLoader.On("LoadChatGroups", mock.Anything).Return(tc.groups)

			handler := New(slogdiscard.NewDiscardLogger(), mockLoader)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/moderation/chats", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
