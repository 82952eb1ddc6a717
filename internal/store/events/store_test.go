package events

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/lib/logger/handlers/slogdiscard"
	"organizerConsole/internal/models"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	listed     []iwent.RawEvent
	listErr    error
	details    iwent.RawEvent
	detailsErr error
	created    iwent.RawEvent
	createErr  error

	// createCalled and release let a test observe the store while a
	// creation request is in flight.
	createCalled chan iwent.CreateEventPayload
	release      chan struct{}
}

func (f *fakeRemote) ListEvents(_ context.Context) ([]iwent.RawEvent, error) {
	return f.listed, f.listErr
}

func (f *fakeRemote) GetEventDetails(_ context.Context, _ string) (iwent.RawEvent, error) {
	return f.details, f.detailsErr
}

func (f *fakeRemote) CreateEvent(_ context.Context, payload iwent.CreateEventPayload) (iwent.RawEvent, error) {
	if f.createCalled != nil {
		f.createCalled <- payload
	}
	if f.release != nil {
		<-f.release
	}

	return f.created, f.createErr
}

func ids(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}

	return out
}

func TestNewStoreIsLoading(t *testing.T) {
	t.Parallel()

	store := New(slogdiscard.NewDiscardLogger(), &fakeRemote{})

	assert.True(t, store.Loading())
	assert.Empty(t, store.Events())
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		remote  *fakeRemote
		wantIDs []string
	}{
		{
			name: "Remote events become canonical",
			remote: &fakeRemote{listed: []iwent.RawEvent{
				{ID: "a", Title: "A"},
				{ID: "b", Title: "B"},
			}},
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "Empty list falls back",
			remote:  &fakeRemote{listed: []iwent.RawEvent{}},
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "Failure falls back",
			remote:  &fakeRemote{listErr: errors.New("connection refused")},
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "Timeout falls back",
			remote:  &fakeRemote{listErr: iwent.ErrTimeout},
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "Duplicate ids are collapsed",
			remote: &fakeRemote{listed: []iwent.RawEvent{
				{ID: "a", Title: "first"},
				{ID: "a", Title: "second"},
				{ID: "b"},
			}},
			wantIDs: []string{"a", "b"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := New(slogdiscard.NewDiscardLogger(), tc.remote)
			store.Initialize(context.Background())

			assert.False(t, store.Loading())
			assert.Equal(t, tc.wantIDs, ids(store.Events()))
		})
	}
}

func TestInitializeFailureAndEmptyAreIndistinguishable(t *testing.T) {
	t.Parallel()

	empty := New(slogdiscard.NewDiscardLogger(), &fakeRemote{})
	failed := New(slogdiscard.NewDiscardLogger(), &fakeRemote{listErr: errors.New("boom")})

	empty.Initialize(context.Background())
	failed.Initialize(context.Background())

	assert.Equal(t, empty.Events(), failed.Events())
	assert.Equal(t, empty.Loading(), failed.Loading())
}

func TestRefreshReplacesList(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{}
	store := New(slogdiscard.NewDiscardLogger(), remote)
	store.Initialize(context.Background())
	require.Len(t, store.Events(), 5)

	remote.listed = []iwent.RawEvent{{ID: "live-1"}}
	store.Refresh(context.Background())

	assert.Equal(t, []string{"live-1"}, ids(store.Events()))
	assert.False(t, store.Loading())
}

func TestAddEventOptimisticThenReconciled(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{
		listed:       []iwent.RawEvent{{ID: "existing"}},
		created:      iwent.RawEvent{ID: "srv-1", Title: "Yaz Konseri", Status: "PUBLISHED"},
		createCalled: make(chan iwent.CreateEventPayload, 1),
		release:      make(chan struct{}),
	}
	store := New(slogdiscard.NewDiscardLogger(), remote)
	store.Initialize(context.Background())

	candidate := models.Event{ID: "tmp-1", Title: "Yaz Konseri", Status: models.StatusPublished}

	type result struct {
		event models.Event
		err   error
	}
	done := make(chan result, 1)
	go func() {
		e, err := store.AddEvent(context.Background(), candidate)
		done <- result{e, err}
	}()

	payload := <-remote.createCalled
	assert.Equal(t, "Yaz Konseri", payload.Title)

	inFlight := store.Events()
	require.NotEmpty(t, inFlight)
	assert.Equal(t, "tmp-1", inFlight[0].ID)
	assert.True(t, inFlight[0].Pending)
	assert.Equal(t, []string{"tmp-1", "existing"}, ids(inFlight))

	close(remote.release)

	var res result
	select {
	case res = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("AddEvent did not return")
	}
	require.NoError(t, res.err)
	assert.Equal(t, "srv-1", res.event.ID)

	settled := store.Events()
	assert.Equal(t, []string{"srv-1", "existing"}, ids(settled))
	assert.False(t, settled[0].Pending)
	for _, e := range settled {
		assert.NotEqual(t, "tmp-1", e.ID)
	}
}

func TestRefreshKeepsInFlightEntry(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{
		listed:       []iwent.RawEvent{{ID: "existing"}},
		created:      iwent.RawEvent{ID: "srv-1", Title: "Gala"},
		createCalled: make(chan iwent.CreateEventPayload, 1),
		release:      make(chan struct{}),
	}
	store := New(slogdiscard.NewDiscardLogger(), remote)
	store.Initialize(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := store.AddEvent(context.Background(), models.Event{ID: "tmp-1", Title: "Gala"})
		done <- err
	}()

	<-remote.createCalled

	store.Refresh(context.Background())

	refreshed := store.Events()
	assert.Equal(t, []string{"tmp-1", "existing"}, ids(refreshed))
	assert.True(t, refreshed[0].Pending)

	close(remote.release)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("AddEvent did not return")
	}

	assert.Equal(t, []string{"srv-1", "existing"}, ids(store.Events()))
}

func TestRefreshDropsSettledFailedEntry(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{
		listed:    []iwent.RawEvent{{ID: "existing"}},
		createErr: errors.New("bad gateway"),
	}
	store := New(slogdiscard.NewDiscardLogger(), remote)
	store.Initialize(context.Background())

	_, err := store.AddEvent(context.Background(), models.Event{ID: "tmp-1"})
	require.ErrorIs(t, err, ErrCreateFailed)
	require.Equal(t, []string{"tmp-1", "existing"}, ids(store.Events()))

	store.Refresh(context.Background())

	assert.Equal(t, []string{"existing"}, ids(store.Events()))
}

func TestAddEventFailureKeepsPendingEntry(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{
		listed:    []iwent.RawEvent{{ID: "existing"}},
		createErr: iwent.ErrTimeout,
	}
	store := New(slogdiscard.NewDiscardLogger(), remote)
	store.Initialize(context.Background())

	got, err := store.AddEvent(context.Background(), models.Event{ID: "tmp-9", Title: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCreateFailed)
	assert.ErrorIs(t, err, iwent.ErrTimeout)
	assert.Equal(t, "tmp-9", got.ID)
	assert.True(t, got.Pending)

	events := store.Events()
	assert.Equal(t, []string{"tmp-9", "existing"}, ids(events))
	assert.True(t, events[0].Pending)
}

func TestAddEventAssignsTempID(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{createErr: errors.New("down")}
	store := New(slogdiscard.NewDiscardLogger(), remote)

	got, err := store.AddEvent(context.Background(), models.Event{Title: "no id"})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(got.ID, "tmp-"))
}

func TestAddEventWithoutConfirmedIDKeepsTempID(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote{created: iwent.RawEvent{Title: "echo"}}
	store := New(slogdiscard.NewDiscardLogger(), remote)

	got, err := store.AddEvent(context.Background(), models.Event{ID: "tmp-2"})
	require.NoError(t, err)
	assert.Equal(t, "tmp-2", got.ID)
	assert.False(t, got.Pending)
	assert.Equal(t, []string{"tmp-2"}, ids(store.Events()))
}

func TestFetchEvent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		remote  *fakeRemote
		wantID  string
		wantErr error
	}{
		{
			name: "Found",
			remote: &fakeRemote{details: iwent.RawEvent{
				ID:     "remote-9",
				Title:  "Kış Festivali",
				Status: "PUBLISHED",
				Venue:  &iwent.RawVenue{Name: "Arena", City: "İzmir"},
			}},
			wantID: "remote-9",
		},
		{
			name:    "Empty record",
			remote:  &fakeRemote{},
			wantErr: ErrNotFound,
		},
		{
			name:    "Remote failure",
			remote:  &fakeRemote{detailsErr: iwent.ErrUnexpectedStatus},
			wantErr: iwent.ErrUnexpectedStatus,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := New(slogdiscard.NewDiscardLogger(), tc.remote)

			got, err := store.FetchEvent(context.Background(), "remote-9")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantID, got.ID)
			assert.Equal(t, models.StatusPublished, got.Status)
			assert.Equal(t, "Arena, İzmir", got.Location)
			assert.Empty(t, store.Events())
		})
	}
}

func TestEventsReturnsCopies(t *testing.T) {
	t.Parallel()

	store := New(slogdiscard.NewDiscardLogger(), &fakeRemote{})
	store.Initialize(context.Background())

	events := store.Events()
	events[0].Title = "mutated"
	events[0].TicketTypes[0].Sold = 9999

	again, ok := store.Event(events[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Neon Festivali 2024", again.Title)
	assert.Equal(t, 450, again.TicketTypes[0].Sold)

	_, ok = store.Event("missing")
	assert.False(t, ok)
}

func TestStoreOverHTTP(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	client := iwent.New("https://api.test", nil, iwent.WithTransport(transport))

	transport.RegisterResponder(http.MethodGet, "https://api.test/events?limit=50",
		httpmock.NewStringResponder(http.StatusServiceUnavailable, ``),
	)
	transport.RegisterResponder(http.MethodPost, "https://api.test/events",
		httpmock.NewStringResponder(http.StatusCreated, `{"data": {"id": "srv-77", "title": "Atölye"}}`),
	)

	store := New(slogdiscard.NewDiscardLogger(), client)
	store.Initialize(context.Background())

	require.Len(t, store.Events(), 5)
	assert.False(t, store.Loading())

	created, err := store.AddEvent(context.Background(), NewCandidate(Draft{Title: "Atölye"}, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "srv-77", created.ID)
	assert.Equal(t, "srv-77", store.Events()[0].ID)
	assert.Len(t, store.Events(), 6)
}
