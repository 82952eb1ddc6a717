package refreshEvents

import (
	"context"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/models"

	"github.com/go-chi/render"
)

type RefreshResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsRefresher
type EventsRefresher interface {
	Refresh(ctx context.Context)
	Events() []models.Event
}

// New re-runs the initial fetch. A failed fetch still answers OK since the
// store falls back to its built-in dataset.
func New(log *slog.Logger, refresher EventsRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.refreshEvents.New"

		log := log.With(slog.String("op", op))

		refresher.Refresh(r.Context())

		evts := refresher.Events()
		if evts == nil {
			evts = []models.Event{}
		}

		log.Info("events refreshed", slog.Int("count", len(evts)))

		render.JSON(w, r, RefreshResponse{
			Response: response.OK(),
			Events:   evts,
		})
	}
}
