package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/lib/logger/handlers/slogdiscard"
	"organizerConsole/internal/models"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChats struct {
	rooms []iwent.RawChatRoom
	err   error
}

func (f *fakeChats) ListEventChats(_ context.Context) ([]iwent.RawChatRoom, error) {
	return f.rooms, f.err
}

func newStore(chats ChatSource) *Store {
	return New(slogdiscard.NewDiscardLogger(), chats)
}

func TestApproveReport(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})

	got, err := store.ApproveReport(1)
	require.NoError(t, err)
	assert.Equal(t, models.ReportReviewed, got.Status)

	again, err := store.ApproveReport(1)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	reviewed := 0
	for _, r := range store.Reports() {
		if r.Status == models.ReportReviewed {
			reviewed++
		}
	}
	assert.Equal(t, 2, reviewed)
	assert.Len(t, store.Reports(), 4)

	_, err = store.ApproveReport(99)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestRejectReport(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})

	err := store.RejectReport(2, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, store.Reports(), 4)

	require.NoError(t, store.RejectReport(2, true))

	reports := store.Reports()
	require.Len(t, reports, 3)
	for _, r := range reports {
		assert.NotEqual(t, 2, r.ID)
	}

	assert.ErrorIs(t, store.RejectReport(2, true), ErrReportNotFound)
}

func TestReportsReturnsCopy(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})

	reports := store.Reports()
	reports[0].Status = models.ReportReviewed

	assert.Equal(t, models.ReportPending, store.Reports()[0].Status)
}

func TestLoadChatGroups(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		chats     *fakeChats
		wantIDs   []string
		wantNames []string
	}{
		{
			name: "Remote rooms",
			chats: &fakeChats{rooms: []iwent.RawChatRoom{
				{ID: "r1", Name: "Neon", Members: []json.RawMessage{json.RawMessage(`"a"`)}},
				{ID: "r2"},
			}},
			wantIDs:   []string{"r1", "r2"},
			wantNames: []string{"Neon", "İsimsiz Grup"},
		},
		{
			name:      "Empty falls back to demo",
			chats:     &fakeChats{},
			wantIDs:   []string{"1", "2"},
			wantNames: []string{"Neon Festivali 2024 (Demo)", "Teknoloji Zirvesi (Demo)"},
		},
		{
			name:      "Failure falls back to demo",
			chats:     &fakeChats{err: errors.New("down")},
			wantIDs:   []string{"1", "2"},
			wantNames: []string{"Neon Festivali 2024 (Demo)", "Teknoloji Zirvesi (Demo)"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := newStore(tc.chats)
			groups := store.LoadChatGroups(context.Background())

			var gotIDs, gotNames []string
			for _, g := range groups {
				gotIDs = append(gotIDs, g.ID)
				gotNames = append(gotNames, g.Name)
				assert.Equal(t, models.ChatActive, g.Status)
			}
			assert.Equal(t, tc.wantIDs, gotIDs)
			assert.Equal(t, tc.wantNames, gotNames)
			assert.Equal(t, groups, store.ChatGroups())
		})
	}
}

func TestToggleChatGroup(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})
	store.LoadChatGroups(context.Background())

	g, err := store.ToggleChatGroup("1")
	require.NoError(t, err)
	assert.Equal(t, models.ChatFrozen, g.Status)

	g, err = store.ToggleChatGroup("1")
	require.NoError(t, err)
	assert.Equal(t, models.ChatActive, g.Status)

	_, err = store.ToggleChatGroup("nope")
	assert.ErrorIs(t, err, ErrChatGroupNotFound)
}

func TestReloadDropsLocalToggles(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})
	store.LoadChatGroups(context.Background())

	_, err := store.ToggleChatGroup("2")
	require.NoError(t, err)

	groups := store.LoadChatGroups(context.Background())
	assert.Equal(t, models.ChatActive, groups[1].Status)
}

func TestClearChatHistory(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})
	store.LoadChatGroups(context.Background())

	_, err := store.ClearChatHistory("1", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	msg, err := store.ClearChatHistory("1", true)
	require.NoError(t, err)
	assert.Equal(t, HistoryClearedMessage, msg)

	_, err = store.ClearChatHistory("missing", true)
	assert.ErrorIs(t, err, ErrChatGroupNotFound)
}

func TestBlockedWords(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})
	assert.Equal(t, []string{"dolandırıcı", "fake", "iptal"}, store.BlockedWords())

	added, err := store.AddBlockedWord("  spam ")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.AddBlockedWord("spam")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"dolandırıcı", "fake", "iptal", "spam"}, store.BlockedWords())

	_, err = store.AddBlockedWord("   ")
	assert.ErrorIs(t, err, ErrEmptyWord)

	store.RemoveBlockedWord("fake")
	store.RemoveBlockedWord("never-added")
	assert.Equal(t, []string{"dolandırıcı", "iptal", "spam"}, store.BlockedWords())
}

func TestToggleAutoMod(t *testing.T) {
	t.Parallel()

	store := newStore(&fakeChats{})
	assert.Equal(t, models.AutoModSettings{SpamProtection: true, MediaFilter: true}, store.AutoMod())

	got, err := store.ToggleAutoMod(SettingSlowMode)
	require.NoError(t, err)
	assert.True(t, got.SlowMode)

	got, err = store.ToggleAutoMod(SettingSpamProtection)
	require.NoError(t, err)
	assert.False(t, got.SpamProtection)

	got, err = store.ToggleAutoMod(SettingMediaFilter)
	require.NoError(t, err)
	assert.False(t, got.MediaFilter)

	_, err = store.ToggleAutoMod("profanity")
	assert.ErrorIs(t, err, ErrUnknownSetting)
	assert.Equal(t, models.AutoModSettings{SlowMode: true}, store.AutoMod())
}

func TestLoadChatGroupsOverHTTP(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	client := iwent.New("https://api.test", nil, iwent.WithTransport(transport))

	transport.RegisterResponder(http.MethodGet, "https://api.test/chat/my-event-chats",
		httpmock.NewStringResponder(http.StatusOK, `{"data": [
			{"id": "room-1", "name": "Zirve", "members": ["u1", "u2", "u3"], "createdAt": "2024-10-05T09:00:00Z"}
		]}`),
	)

	store := newStore(client)
	groups := store.LoadChatGroups(context.Background())

	require.Len(t, groups, 1)
	assert.Equal(t, models.ChatGroup{
		ID:           "room-1",
		Name:         "Zirve",
		Total:        3,
		Status:       models.ChatActive,
		LastActivity: "05.10.2024",
	}, groups[0])
}
