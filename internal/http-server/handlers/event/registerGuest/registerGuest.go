package registerGuest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventsAPI/internal/http-server/middleware/auth"
	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/services/membership"
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestRegistrar
type GuestRegistrar interface {
	Add(ctx context.Context, eventID, memberID int64) error
}

// New registers the caller, as identified by the token, for the event.
func New(log *slog.Logger, tr *i18n.Translator, guests GuestRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerGuest.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no claims in request context")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "login_required", nil)))

			return
		}

		eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Info("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "invalid_id", nil)))

			return
		}

		log = log.With(slog.Int64("event_id", eventID), slog.Int64("guest_id", claims.UserID))

		err = guests.Add(r.Context(), eventID, claims.UserID)
		switch {
		case errors.Is(err, storage.ErrEventNotFound):
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(tr.Message(r, "event_not_found", i18n.ID(eventID))))

			return
		case errors.Is(err, storage.ErrAlreadyRegistered):
			log.Info("guest already registered")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "user_already_registered_for_event", i18n.ID(claims.UserID))))

			return
		case errors.Is(err, membership.ErrProfileUnavailable):
			log.Error("failed to load guest profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "error_loading_user", i18n.ID(claims.UserID))))

			return
		case err != nil:
			log.Error("failed to register guest", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		log.Info("guest registered")

		render.JSON(w, r, response.Message(tr.Message(r, "registered_for_event", nil)))
	}
}
