package rejectReport

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/moderation"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RejectRequest struct {
	Confirm bool `json:"confirm"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReportRejecter
type ReportRejecter interface {
	RejectReport(id int, confirmed bool) error
}

// New deletes a report. The body must carry {"confirm": true}; an empty
// body counts as unconfirmed. Confirmation is checked before the id.
func New(log *slog.Logger, rejecter ReportRejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.rejectReport.New"

		log := log.With(slog.String("op", op))

		var req RejectRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if !req.Confirm {
			log.Info("reject not confirmed")
			render.Status(r, http.StatusPreconditionRequired)
			render.JSON(w, r, response.Error("confirmation required"))
			return
		}

		reportID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid report id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid report id format"))
			return
		}

		log = log.With(slog.Int("report_id", reportID))

		if err = rejecter.RejectReport(reportID, req.Confirm); err != nil {
			log.Error("failed to reject report", sl.Err(err))

			switch {
			case errors.Is(err, moderation.ErrConfirmationRequired):
				render.Status(r, http.StatusPreconditionRequired)
				render.JSON(w, r, response.Error("confirmation required"))
			case errors.Is(err, moderation.ErrReportNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("report not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to reject report"))
			}
			return
		}

		log.Info("report rejected")

		render.JSON(w, r, response.OK())
	}
}
