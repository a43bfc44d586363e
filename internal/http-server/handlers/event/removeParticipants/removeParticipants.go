package removeParticipants

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/services/membership"
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Participants []int64 `json:"participants" validate:"required,min=1"`
}

type Response struct {
	response.Response
	Processed []int64 `json:"processed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantsRemover
type ParticipantsRemover interface {
	RemoveBatch(ctx context.Context, eventID int64, memberIDs []int64) ([]int64, error)
}

func New(log *slog.Logger, tr *i18n.Translator, participants ParticipantsRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.removeParticipants.New"

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

		done, err := participants.RemoveBatch(r.Context(), eventID, req.Participants)
		if done == nil {
			done = []int64{}
		}

		var batchErr *membership.BatchError
		switch {
		case errors.Is(err, storage.ErrEventNotFound):
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, Response{
				Response:  response.Error(tr.Message(r, "event_not_found", i18n.ID(eventID))),
				Processed: done,
			})

			return
		case errors.Is(err, storage.ErrNotRegistered) && errors.As(err, &batchErr):
			log.Info("participant not registered", slog.Any("processed", done), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{
				Response:  response.Error(tr.Message(r, "author_not_registered_for_event", i18n.ID(batchErr.MemberID))),
				Processed: done,
			})

			return
		case err != nil:
			log.Error("failed to remove participants", slog.Any("processed", done), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{
				Response:  response.Error(tr.Message(r, "internal_error", nil)),
				Processed: done,
			})

			return
		}

		log.Info("participants removed", slog.Any("ids", done))

		render.JSON(w, r, Response{
			Response:  response.Message(tr.Message(r, "participants_unregistered", nil)),
			Processed: done,
		})
	}
}
