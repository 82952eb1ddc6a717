package toggleChatGroup

import (
	"errors"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/models"
	"organizerConsole/internal/moderation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ChatGroupResponse struct {
	response.Response
	ChatGroup models.ChatGroup `json:"chatGroup"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChatGroupToggler
type ChatGroupToggler interface {
	ToggleChatGroup(id string) (models.ChatGroup, error)
}

func New(log *slog.Logger, toggler ChatGroupToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.toggleChatGroup.New"

		groupID := chi.URLParam(r, "id")

		log := log.With(
			slog.String("op", op),
			slog.String("chat_group_id", groupID),
		)

		group, err := toggler.ToggleChatGroup(groupID)
		if err != nil {
			log.Error("failed to toggle chat group", sl.Err(err))

			if errors.Is(err, moderation.ErrChatGroupNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("chat group not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to toggle chat group"))
			return
		}

		log.Info("chat group toggled", slog.String("status", string(group.Status)))

		render.JSON(w, r, ChatGroupResponse{
			Response:  response.OK(),
			ChatGroup: group,
		})
	}
}
