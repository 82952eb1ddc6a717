package createEvent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/lib/api/response"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/models"
	"organizerConsole/internal/store/events"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// TicketTypeRequest rows are taken as typed: empty names and negative
// numbers pass through unchanged.
type TicketTypeRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Quota int     `json:"quota"`
	Sold  int     `json:"sold"`
}

// EventRequest is the creation form. Only the status is checked, against
// the known lifecycle values.
type EventRequest struct {
	Title       string              `json:"title"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Location    string              `json:"location"`
	Status      string              `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED SOLD_OUT ENDED CANCELLED"`
	Image       string              `json:"image"`
	TicketTypes []TicketTypeRequest `json:"ticketTypes"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	AddEvent(ctx context.Context, candidate models.Event) (models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(slog.String("op", op))

		var req EventRequest

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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		candidate := events.NewCandidate(toDraft(req), time.Now())

		log = log.With(slog.String("temp_id", candidate.ID))

		created, err := creator.AddEvent(r.Context(), candidate)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))

			if errors.Is(err, iwent.ErrTimeout) {
				render.Status(r, http.StatusGatewayTimeout)
				render.JSON(w, r, response.Error("event service timed out"))

				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.String("id", created.ID))

		responseOK(w, r, created)
	}
}

func toDraft(req EventRequest) events.Draft {
	ticketTypes := make([]models.TicketType, 0, len(req.TicketTypes))
	for _, t := range req.TicketTypes {
		ticketTypes = append(ticketTypes, models.TicketType{
			ID:    t.ID,
			Name:  t.Name,
			Price: t.Price,
			Quota: t.Quota,
			Sold:  t.Sold,
		})
	}

	return events.Draft{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Status:      models.EventStatus(req.Status),
		Image:       req.Image,
		TicketTypes: ticketTypes,
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
