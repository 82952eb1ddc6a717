package clearChatHistory

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/moderation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

type ClearResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChatHistoryClearer
type ChatHistoryClearer interface {
	ClearChatHistory(id string, confirmed bool) (string, error)
}

func New(log *slog.Logger, clearer ChatHistoryClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.clearChatHistory.New"

		groupID := chi.URLParam(r, "id")

		log := log.With(
			slog.String("op", op),
			slog.String("chat_group_id", groupID),
		)

		var req ClearRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		msg, err := clearer.ClearChatHistory(groupID, req.Confirm)
		if err != nil {
			log.Error("failed to clear chat history", sl.Err(err))

			switch {
			case errors.Is(err, moderation.ErrConfirmationRequired):
				render.Status(r, http.StatusPreconditionRequired)
				render.JSON(w, r, response.Error("confirmation required"))
			case errors.Is(err, moderation.ErrChatGroupNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("chat group not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to clear chat history"))
			}
			return
		}

		log.Info("chat history cleared")

		render.JSON(w, r, ClearResponse{
			Response: response.OK(),
			Message:  msg,
		})
	}
}
