package getDashboard

import (
	"errors"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/lib/money"
	"organizerConsole/internal/metrics"
	"organizerConsole/internal/models"

	"github.com/go-chi/render"
)

type EventRow struct {
	models.Event
	StatusLabel string               `json:"statusLabel"`
	Tickets     models.TicketSummary `json:"tickets"`
}

type DashboardResponse struct {
	response.Response
	Selection      string                  `json:"selection"`
	Stats          models.DashboardStats   `json:"stats"`
	TotalRevenue   string                  `json:"totalRevenueDisplay"`
	AvgTicketPrice string                  `json:"avgTicketPriceDisplay"`
	Sales          []models.SalesDataPoint `json:"sales"`
	Events         []EventRow              `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events() []models.Event
}

// New serves the dashboard for the event given in the "event" query
// parameter. A missing parameter or "all" selects every event.
func New(log *slog.Logger, eventsGetter EventsGetter, series metrics.SeriesSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stats.getDashboard.New"

		sel := metrics.ParseSelection(r.URL.Query().Get("event"))

		log := log.With(
			slog.String("op", op),
			slog.String("selection", sel.String()),
		)

		evts := eventsGetter.Events()

		stats, err := metrics.Dashboard(evts, sel)
		if err != nil {
			log.Error("failed to compute dashboard", sl.Err(err))

			if errors.Is(err, metrics.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to compute dashboard"))
			return
		}

		displayed := metrics.DisplayedEvents(evts, sel)
		rows := make([]EventRow, 0, len(displayed))
		for _, e := range displayed {
			rows = append(rows, EventRow{
				Event:       e,
				StatusLabel: e.Status.Label(),
				Tickets:     metrics.TicketSummary(e),
			})
		}

		log.Debug("dashboard computed",
			slog.Int("active_events", stats.ActiveEvents),
			slog.Int("tickets_sold", stats.TicketsSold),
		)

		render.JSON(w, r, DashboardResponse{
			Response:       response.OK(),
			Selection:      sel.String(),
			Stats:          stats,
			TotalRevenue:   money.FormatTRY(stats.TotalRevenue),
			AvgTicketPrice: money.FormatTRY(float64(stats.AvgTicketPrice)),
			Sales:          series.Sales(evts, sel),
			Events:         rows,
		})
	}
}
