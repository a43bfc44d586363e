package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventsAPI/internal/config"
	"eventsAPI/internal/lib/api/pagination"
	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter, now time.Time, page, limit int) (models.Page[models.Event], error)
}

func New(log *slog.Logger, tr *i18n.Translator, cfg config.Pagination, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		params, filters, err := pagination.Parse(r.URL.Query(), cfg.DefaultLimit, cfg.MaxLimit)
		if err != nil {
			log.Info("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "invalid_pagination", nil)))

			return
		}

		filter, err := models.ParseEventFilter(filters)
		if err != nil {
			log.Info("invalid filter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(tr.Message(r, "invalid_filter", nil)))

			return
		}

		if filter.MatchesNothing() {
			log.Info("unsupported filters, listing is empty", slog.Any("filters", filter.Unsupported))
		}

		now := time.Now()

		page, err := events.ListEvents(r.Context(), filter, now, params.Page, params.Limit)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "internal_error", nil)))

			return
		}

		log.Debug("events listed", slog.Int("count", len(page.Items)), slog.Int("page", page.Page))

		render.JSON(w, r, pagination.New(r, page, models.Views(page.Items, now), filters))
	}
}
