package getReports

import (
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/models"

	"github.com/go-chi/render"
)

type ReportsResponse struct {
	response.Response
	Reports []models.Report `json:"reports"`
	Pending int             `json:"pending"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReportsGetter
type ReportsGetter interface {
	Reports() []models.Report
}

func New(log *slog.Logger, reports ReportsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.getReports.New"

		log := log.With(slog.String("op", op))

		list := reports.Reports()
		if list == nil {
			list = []models.Report{}
		}

		pending := 0
		for _, rep := range list {
			if rep.Status == models.ReportPending {
				pending++
			}
		}

		log.Info("reports retrieved", slog.Int("count", len(list)), slog.Int("pending", pending))

		render.JSON(w, r, ReportsResponse{
			Response: response.OK(),
			Reports:  list,
			Pending:  pending,
		})
	}
}
