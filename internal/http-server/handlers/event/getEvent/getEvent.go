package getEvent

import (
	"context"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/metrics"
	"organizerConsole/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	Event       models.Event         `json:"event"`
	StatusLabel string               `json:"statusLabel"`
	Tickets     models.TicketSummary `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Event(id string) (models.Event, bool)
	FetchEvent(ctx context.Context, id string) (models.Event, error)
}

func New(log *slog.Logger, eventGetter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, ok := eventGetter.Event(eventID)
		if !ok {
			// not in the canonical list, ask the remote service directly
			fetched, err := eventGetter.FetchEvent(r.Context(), eventID)
			if err != nil {
				log.Info("event not found", sl.Err(err))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			event = fetched
		}

		log.Info("event retrieved successfully")

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.JSON(w, r, EventResponse{
		Response:    response.OK(),
		Event:       event,
		StatusLabel: event.Status.Label(),
		Tickets:     metrics.TicketSummary(event),
	})
}
