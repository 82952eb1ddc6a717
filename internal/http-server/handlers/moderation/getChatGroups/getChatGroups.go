package getChatGroups

import (
	"context"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/models"

	"github.com/go-chi/render"
)

type ChatGroupsResponse struct {
	response.Response
	ChatGroups []models.ChatGroup `json:"chatGroups"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChatGroupsLoader
type ChatGroupsLoader interface {
	LoadChatGroups(ctx context.Context) []models.ChatGroup
}

func New(log *slog.Logger, loader ChatGroupsLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.getChatGroups.New"

		log := log.With(slog.String("op", op))

		groups := loader.LoadChatGroups(r.Context())
		if groups == nil {
			groups = []models.ChatGroup{}
		}

		log.Info("chat groups loaded", slog.Int("count", len(groups)))

		render.JSON(w, r, ChatGroupsResponse{
			Response:   response.OK(),
			ChatGroups: groups,
		})
	}
}
