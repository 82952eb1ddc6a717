package addBlockedWord

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/moderation"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type WordRequest struct {
	Word string `json:"word" validate:"required"`
}

type WordResponse struct {
	response.Response
	Added bool `json:"added"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WordAdder
type WordAdder interface {
	AddBlockedWord(word string) (bool, error)
}

func New(log *slog.Logger, adder WordAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.addBlockedWord.New"

		log := log.With(slog.String("op", op))

		var req WordRequest

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

		added, err := adder.AddBlockedWord(req.Word)
		if err != nil {
			log.Error("failed to add blocked word", sl.Err(err))

			if errors.Is(err, moderation.ErrEmptyWord) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("word is empty"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add blocked word"))
			return
		}

		log.Info("blocked word processed", slog.Bool("added", added))

		render.JSON(w, r, WordResponse{
			Response: response.OK(),
			Added:    added,
		})
	}
}
