package toggleAutoMod

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

type AutoModResponse struct {
	response.Response
	AutoMod models.AutoModSettings `json:"autoMod"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AutoModToggler
type AutoModToggler interface {
	ToggleAutoMod(setting string) (models.AutoModSettings, error)
}

func New(log *slog.Logger, toggler AutoModToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.toggleAutoMod.New"

		setting := chi.URLParam(r, "setting")

		log := log.With(
			slog.String("op", op),
			slog.String("setting", setting),
		)

		settings, err := toggler.ToggleAutoMod(setting)
		if err != nil {
			log.Error("failed to toggle auto-moderation", sl.Err(err))

			if errors.Is(err, moderation.ErrUnknownSetting) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("unknown setting"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to toggle setting"))
			return
		}

		log.Info("auto-moderation toggled")

		render.JSON(w, r, AutoModResponse{
			Response: response.OK(),
			AutoMod:  settings,
		})
	}
}
