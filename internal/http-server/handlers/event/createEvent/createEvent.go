package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/models"
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name        string    `json:"name" validate:"required,max=80"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required,gtefield=Start"`
	Description string    `json:"description" validate:"max=512"`
}

type Response struct {
	response.Response
	Event models.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event *models.Event) error
}

func New(log *slog.Logger, tr *i18n.Translator, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "failed_to_decode", nil)))

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

		event := &models.Event{
			Name:        req.Name,
			Start:       req.Start,
			End:         req.End,
			Description: req.Description,
		}

		err = events.CreateEvent(r.Context(), event)
		if errors.Is(err, storage.ErrEventExists) {
			log.Info("event already exists", slog.String("name", req.Name))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "event_already_exists", nil)))

			return
		}
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		log.Info("event added", slog.Int64("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    event.View(time.Now()),
		})
	}
}
