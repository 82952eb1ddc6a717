package getAllEvents

import (
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events  []models.Event `json:"events"`
	Loading bool           `json:"loading"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events() []models.Event
	Loading() bool
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		events := eventsGetter.Events()
		loading := eventsGetter.Loading()

		log.Info("events retrieved successfully",
			slog.Int("count", len(events)),
			slog.Bool("loading", loading),
		)

		responseOK(w, r, events, loading)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event, loading bool) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
		Loading:  loading,
	})
}
