package getMember

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
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Member *models.Member `json:"member"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberGetter
type MemberGetter interface {
	Member(ctx context.Context, id int64) (*models.Member, error)
}

// New serves a guest or participant profile, depending on kind.
func New(log *slog.Logger, tr *i18n.Translator, kind models.MemberKind, members MemberGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.member.getMember.New"

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

		member, err := members.Member(r.Context(), id)
		if errors.Is(err, storage.ErrMemberNotFound) {
			log.Info("member not found", slog.Int64("member_id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(tr.Message(r, i18n.KindKey(kind, "%s_not_found"), i18n.ID(id))))

			return
		}
		if err != nil {
			log.Error("failed to get member", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Member:   member,
		})
	}
}
