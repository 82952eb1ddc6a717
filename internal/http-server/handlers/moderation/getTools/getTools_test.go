package getTools

import (
	"net/http"
	"net/http/httptest"
	"organizerConsole/internal/http-server/handlers/moderation/getTools/mocks"
	"organizerConsole/internal/lib/logger/handlers/slogdiscard"
	"organizerConsole/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetToolsHandler(t *testing.T) {
	t.Parallel()

	mockTools := mocks.NewToolsGetter(t)
	mockTools.On("BlockedWords").Return([]string{"dolandırıcı", "fake", "iptal"})
	mockTools.On("AutoMod").Return(models.AutoModSettings{SpamProtection: true, MediaFilter: true})

	handler := New(slogdiscard.NewDiscardLogger(), mockTools)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/moderation/tools", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status": "OK",
		"blockedWords": ["dolandırıcı", "fake", "iptal"],
		"autoMod": {"spamProtection": true, "slowMode": false, "mediaFilter": true}
	}`, rr.Body.String())
}
