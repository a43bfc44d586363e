package deleteEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id int64) error
}

func New(log *slog.Logger, tr *i18n.Translator, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

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

		err = events.DeleteEvent(r.Context(), eventID)
		if errors.Is(err, storage.ErrEventNotFound) {
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(tr.Message(r, "event_not_found", i18n.ID(eventID))))

			return
		}
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.Message(tr.Message(r, "event_deleted", nil)))
	}
}
