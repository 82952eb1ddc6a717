package approveReport

import (
	"errors"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/models"
	"organizerConsole/internal/moderation"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ReportResponse struct {
	response.Response
	Report models.Report `json:"report"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReportApprover
type ReportApprover interface {
	ApproveReport(id int) (models.Report, error)
}

func New(log *slog.Logger, approver ReportApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.approveReport.New"

		log := log.With(slog.String("op", op))

		reportIdStr := chi.URLParam(r, "id")
		if reportIdStr == "" {
			log.Error("report id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("report id is required"))
			return
		}

		reportID, err := strconv.Atoi(reportIdStr)
		if err != nil {
			log.Error("invalid report id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid report id format"))
			return
		}

		log = log.With(slog.Int("report_id", reportID))

		report, err := approver.ApproveReport(reportID)
		if err != nil {
			log.Error("failed to approve report", sl.Err(err))

			if errors.Is(err, moderation.ErrReportNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("report not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to approve report"))
			return
		}

		log.Info("report approved")

		render.JSON(w, r, ReportResponse{
			Response: response.OK(),
			Report:   report,
		})
	}
}
