package getTools

import (
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/models"

	"github.com/go-chi/render"
)

type ToolsResponse struct {
	response.Response
	BlockedWords []string               `json:"blockedWords"`
	AutoMod      models.AutoModSettings `json:"autoMod"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ToolsGetter
type ToolsGetter interface {
	BlockedWords() []string
	AutoMod() models.AutoModSettings
}

func New(log *slog.Logger, tools ToolsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.getTools.New"

		log := log.With(slog.String("op", op))

		words := tools.BlockedWords()
		if words == nil {
			words = []string{}
		}

		log.Debug("moderation tools retrieved", slog.Int("blocked_words", len(words)))

		render.JSON(w, r, ToolsResponse{
			Response:     response.OK(),
			BlockedWords: words,
			AutoMod:      tools.AutoMod(),
		})
	}
}
