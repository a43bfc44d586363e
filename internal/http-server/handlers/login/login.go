package login

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"eventsAPI/internal/clients/books"
	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LoginProxy
type LoginProxy interface {
	Login(ctx context.Context, credentials io.Reader) (*books.LoginResult, error)
}

// New forwards the credentials to the books service and relays its answer
// as is, tokens included.
func New(log *slog.Logger, tr *i18n.Translator, proxy LoginProxy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		res, err := proxy.Login(r.Context(), r.Body)
		if err != nil {
			log.Error("login request failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(tr.Message(r, "login_failed", nil)))

			return
		}

		log.Info("login relayed", slog.Int("status", res.StatusCode))

		if res.ContentType != "" {
			w.Header().Set("Content-Type", res.ContentType)
		}
		w.WriteHeader(res.StatusCode)

		if _, err = w.Write(res.Body); err != nil {
			log.Error("failed to write response", sl.Err(err))
		}
	}
}
