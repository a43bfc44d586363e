package getEvent

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
)

// EventDetail always lists participants, even when there are none.
type EventDetail struct {
	models.EventView
	Participants []models.Member `json:"participants"`
}

type Response struct {
	response.Response
	Event EventDetail `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Event(ctx context.Context, id int64) (*models.Event, error)
}

func New(log *slog.Logger, tr *i18n.Translator, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

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

		event, err := events.Event(r.Context(), eventID)
		if errors.Is(err, storage.ErrEventNotFound) {
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(tr.Message(r, "event_not_found", i18n.ID(eventID))))

			return
		}
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		participants := event.Participants
		if participants == nil {
			participants = []models.Member{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event: EventDetail{
				EventView:    event.View(time.Now()),
				Participants: participants,
			},
		})
	}
}
