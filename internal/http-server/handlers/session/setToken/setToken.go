package setToken

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenSetter
type TokenSetter interface {
	SetItem(ctx context.Context, key, value string) error
}

// New stores the bearer token sent with every later remote call.
func New(log *slog.Logger, tokens TokenSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.setToken.New"

		log := log.With(slog.String("op", op))

		var req TokenRequest

		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Error("request body is empty")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("empty request"))
			return
		}
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err = tokens.SetItem(r.Context(), iwent.TokenKey, req.Token); err != nil {
			log.Error("failed to store token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to store token"))
			return
		}

		// the token itself is never logged
		log.Info("token stored")

		render.JSON(w, r, response.OK())
	}
}
