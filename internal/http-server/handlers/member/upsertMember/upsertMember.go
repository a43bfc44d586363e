package upsertMember

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/models"
	"eventsAPI/internal/services/membership"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Member *models.Member `json:"member"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberUpserter
type MemberUpserter interface {
	Upsert(ctx context.Context, id int64) (*models.Member, error)
}

// New reloads the profile from the books service, creating it when the
// member is not known yet.
func New(log *slog.Logger, tr *i18n.Translator, kind models.MemberKind, members MemberUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.upsertMember.New"

		log := log.With(
			slog.String("op", op),
			slog.String("member_kind", string(kind)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Info("invalid member id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "invalid_id", nil)))

			return
		}

		log = log.With(slog.Int64("member_id", id))

		member, err := members.Upsert(r.Context(), id)
		if errors.Is(err, membership.ErrProfileUnavailable) {
			log.Error("failed to load profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, i18n.KindKey(kind, "error_loading_%s"), i18n.ID(id))))

			return
		}
		if err != nil {
			log.Error("failed to save profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		log.Info("profile updated")

		render.JSON(w, r, Response{
			Response: response.Message(tr.Message(r, "profile_updated", nil)),
			Member:   member,
		})
	}
}
