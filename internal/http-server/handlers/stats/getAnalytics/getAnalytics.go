package getAnalytics

import (
	"errors"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/metrics"
	"organizerConsole/internal/models"

	"github.com/go-chi/render"
)

type AnalyticsResponse struct {
	response.Response
	Selection string                `json:"selection"`
	Analytics models.AnalyticsStats `json:"analytics"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events() []models.Event
}

func New(log *slog.Logger, eventsGetter EventsGetter, series metrics.SeriesSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stats.getAnalytics.New"

		sel := metrics.ParseSelection(r.URL.Query().Get("event"))

		log := log.With(
			slog.String("op", op),
			slog.String("selection", sel.String()),
		)

		stats, err := metrics.Analytics(eventsGetter.Events(), sel, series)
		if err != nil {
			log.Error("failed to compute analytics", sl.Err(err))

			if errors.Is(err, metrics.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to compute analytics"))
			return
		}

		render.JSON(w, r, AnalyticsResponse{
			Response:  response.OK(),
			Selection: sel.String(),
			Analytics: stats,
		})
	}
}
