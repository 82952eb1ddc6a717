// Package events holds the canonical event list every screen reads from.
//
// The store is created once and lives as long as the process. Reads return
// copies; only the store mutates the list.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/mapper"
	"organizerConsole/internal/models"
)

var (
	ErrCreateFailed = errors.New("event creation failed")
	ErrNotFound     = errors.New("event not found")
)

type Remote interface {
	ListEvents(ctx context.Context) ([]iwent.RawEvent, error)
	GetEventDetails(ctx context.Context, id string) (iwent.RawEvent, error)
	CreateEvent(ctx context.Context, payload iwent.CreateEventPayload) (iwent.RawEvent, error)
}

type Store struct {
	log      *slog.Logger
	remote   Remote
	fallback []models.Event

	mu       sync.RWMutex
	events   []models.Event
	loading  bool
	inFlight map[string]struct{}
}

func New(log *slog.Logger, remote Remote) *Store {
	return &Store{
		log:      log.With(slog.String("component", "store/events")),
		remote:   remote,
		fallback: FallbackEvents(),
		events:   []models.Event{},
		loading:  true,
		inFlight: make(map[string]struct{}),
	}
}

// Initialize fetches the event list. An empty answer and a failed request
// are treated the same way: the fallback dataset becomes canonical.
// Loading is cleared once the fetch has settled, whatever the outcome.
func (s *Store) Initialize(ctx context.Context) {
	const op = "store.events.Initialize"

	log := s.log.With(slog.String("op", op))

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var fetched []models.Event

	raw, err := s.remote.ListEvents(ctx)
	if err != nil {
		log.Warn("failed to fetch events", sl.Err(err))
	} else {
		fetched = make([]models.Event, 0, len(raw))
		for _, r := range raw {
			fetched = append(fetched, mapper.MapToEvent(r))
		}
	}

	if len(fetched) == 0 {
		log.Warn("remote returned no events, using fallback dataset")
		fetched = cloneAll(s.fallback)
	} else {
		log.Info("events fetched", slog.Int("count", len(fetched)))
	}

	s.mu.Lock()
	s.events = uniqueByID(append(s.inFlightEvents(), fetched...))
	s.loading = false
	s.mu.Unlock()
}

// inFlightEvents returns the optimistic entries whose creation request has
// not settled yet, in list order. Callers hold mu.
func (s *Store) inFlightEvents() []models.Event {
	var out []models.Event
	for _, e := range s.events {
		if _, ok := s.inFlight[e.ID]; ok {
			out = append(out, e)
		}
	}

	return out
}

// Refresh re-runs the fetch and fallback sequence.
func (s *Store) Refresh(ctx context.Context) {
	s.Initialize(ctx)
}

// AddEvent prepends the candidate before talking to the remote service, so the
// next read already sees it. On success the optimistic entry is swapped for
// the confirmed one. On failure the entry stays in the list marked Pending
// and the error is returned to the caller.
func (s *Store) AddEvent(ctx context.Context, candidate models.Event) (models.Event, error) {
	const op = "store.events.AddEvent"

	if candidate.ID == "" {
		candidate.ID = NewTempID()
	}
	candidate = candidate.Clone()
	candidate.Pending = true

	log := s.log.With(
		slog.String("op", op),
		slog.String("temp_id", candidate.ID),
	)

	s.mu.Lock()
	s.events = append([]models.Event{candidate}, without(s.events, candidate.ID)...)
	s.inFlight[candidate.ID] = struct{}{}
	s.mu.Unlock()

	raw, err := s.remote.CreateEvent(ctx, mapper.ToCreatePayload(candidate))

	s.mu.Lock()
	delete(s.inFlight, candidate.ID)
	s.mu.Unlock()

	if err != nil {
		log.Error("failed to create event", sl.Err(err))

		return candidate.Clone(), fmt.Errorf("%s: %w: %w", op, ErrCreateFailed, err)
	}

	created := mapper.MapToEvent(raw)
	if created.ID == "" {
		log.Warn("remote confirmed event without id, keeping temporary id")
		created.ID = candidate.ID
	}

	s.mu.Lock()
	rest := without(without(s.events, candidate.ID), created.ID)
	s.events = append([]models.Event{created}, rest...)
	s.mu.Unlock()

	log.Info("event created", slog.String("id", created.ID))

	return created.Clone(), nil
}

func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.events)
}

func (s *Store) Event(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e.Clone(), true
		}
	}

	return models.Event{}, false
}

// FetchEvent asks the remote service for a single event. The canonical list
// is left untouched.
func (s *Store) FetchEvent(ctx context.Context, id string) (models.Event, error) {
	const op = "store.events.FetchEvent"

	raw, err := s.remote.GetEventDetails(ctx, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	if raw.ID == "" {
		return models.Event{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return mapper.MapToEvent(raw), nil
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

func without(events []models.Event, id string) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			out = append(out, e)
		}
	}

	return out
}

// uniqueByID keeps the first occurrence of every id.
func uniqueByID(events []models.Event) []models.Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}

	return out
}
