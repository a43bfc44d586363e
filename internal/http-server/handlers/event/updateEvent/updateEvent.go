package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/models"
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request holds the fields to change; absent fields keep their value.
type Request struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=80"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Description *string    `json:"description" validate:"omitempty,max=512"`
}

type Response struct {
	response.Response
	Event models.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error)
}

func New(log *slog.Logger, tr *i18n.Translator, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Info("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "invalid_id", nil)))

			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "failed_to_decode", nil)))

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

		event, err := events.UpdateEvent(r.Context(), eventID, models.EventPatch{
			Name:        req.Name,
			Start:       req.Start,
			End:         req.End,
			Description: req.Description,
		})
		switch {
		case errors.Is(err, storage.ErrEventNotFound):
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(tr.Message(r, "event_not_found", i18n.ID(eventID))))

			return
		case errors.Is(err, models.ErrInvalidSchedule):
			log.Info("invalid schedule", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "invalid_schedule", nil)))

			return
		case errors.Is(err, storage.ErrEventExists):
			log.Info("event name taken")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "event_already_exists", nil)))

			return
		case err != nil:
			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		log.Info("event updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    event.View(time.Now()),
		})
	}
}
