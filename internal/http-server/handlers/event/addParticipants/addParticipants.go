package addParticipants

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

// Response lists the participants handled before the first failure, or
// all of them on success.
type Response struct {
	response.Response
	Processed []int64 `json:"processed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantsAdder
type ParticipantsAdder interface {
	AddBatch(ctx context.Context, eventID int64, memberIDs []int64) ([]int64, error)
}

func New(log *slog.Logger, tr *i18n.Translator, participants ParticipantsAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.addParticipants.New"

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

		done, err := participants.AddBatch(r.Context(), eventID, req.Participants)
		if done == nil {
			done = []int64{}
		}
		if err != nil {
			status, msg := failure(r, tr, eventID, err)
			if status == http.StatusInternalServerError {
				log.Error("failed to add participants", slog.Any("processed", done), sl.Err(err))
			} else {
				log.Info("participants not added", slog.Any("processed", done), sl.Err(err))
			}

			render.Status(r, status)
			render.JSON(w, r, Response{Response: response.Error(msg), Processed: done})

			return
		}

		log.Info("participants added", slog.Any("ids", done))

		render.JSON(w, r, Response{
			Response:  response.Message(tr.Message(r, "participants_registered", nil)),
			Processed: done,
		})
	}
}

func failure(r *http.Request, tr *i18n.Translator, eventID int64, err error) (int, string) {
	var memberID int64
	var batchErr *membership.BatchError
	if errors.As(err, &batchErr) {
		memberID = batchErr.MemberID
	}

	switch {
	case errors.Is(err, storage.ErrEventNotFound):
		return http.StatusNotFound, tr.Message(r, "event_not_found", i18n.ID(eventID))
	case errors.Is(err, storage.ErrAlreadyRegistered):
		return http.StatusBadRequest, tr.Message(r, "author_already_registered_for_event", i18n.ID(memberID))
	case errors.Is(err, membership.ErrProfileUnavailable):
		return http.StatusInternalServerError, tr.Message(r, "error_loading_author", i18n.ID(memberID))
	default:
		return http.StatusInternalServerError, tr.Message(r, "internal_error", nil)
	}
}
