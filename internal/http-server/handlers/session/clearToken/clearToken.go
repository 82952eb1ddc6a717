package clearToken

import (
	"context"
	"log/slog"
	"net/http"
	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenRemover
type TokenRemover interface {
	RemoveItem(ctx context.Context, key string) error
}

func New(log *slog.Logger, tokens TokenRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.clearToken.New"

		log := log.With(slog.String("op", op))

		if err := tokens.RemoveItem(r.Context(), iwent.TokenKey); err != nil {
			log.Error("failed to remove token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove token"))
			return
		}

		log.Info("token removed")

		render.JSON(w, r, response.OK())
	}
}
