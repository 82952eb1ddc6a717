package removeBlockedWord

import (
	"log/slog"
	"net/http"
	"net/url"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WordRemover
type WordRemover interface {
	RemoveBlockedWord(word string)
}

// New removes a word from the blocked list. Removing a word that is not
// listed still succeeds.
func New(log *slog.Logger, remover WordRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.removeBlockedWord.New"

		log := log.With(slog.String("op", op))

		word, err := url.PathUnescape(chi.URLParam(r, "word"))
		if err != nil {
			log.Error("invalid word encoding", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid word"))
			return
		}

		if word == "" {
			log.Error("word is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("word is required"))
			return
		}

		remover.RemoveBlockedWord(word)

		log.Info("blocked word removed", slog.String("word", word))

		render.JSON(w, r, response.OK())
	}
}
