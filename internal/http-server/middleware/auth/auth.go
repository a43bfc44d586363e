// Package auth guards routes with HS256 bearer tokens issued by the books
// service.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrAuthorizationRequired = errors.New("authorization required")
	ErrTokenExpired          = errors.New("token expired")
	ErrInvalidToken          = errors.New("invalid token")
	ErrAdminRequired         = errors.New("admin required")
	ErrOwnerRequired         = errors.New("owner or admin required")
)

type Claims struct {
	UserID  int64 `json:"id"`
	IsAdmin bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

type Options struct {
	RequireAdmin bool
	// RequireOwner lets through the user whose id is the {id} route
	// parameter, and admins.
	RequireOwner bool
}

type ctxKey struct{}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	return claims, ok
}

type Authenticator struct {
	log    *slog.Logger
	tr     *i18n.Translator
	secret []byte
	now    func() time.Time
}

func New(log *slog.Logger, tr *i18n.Translator, secret string) *Authenticator {
	return &Authenticator{
		log:    log,
		tr:     tr,
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Authorize validates the raw Authorization header value and checks it
// against opts. ownerID is the owner route parameter, if any.
func (a *Authenticator) Authorize(header, ownerID string, opts Options) (*Claims, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" {
		return nil, ErrAuthorizationRequired
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if opts.RequireAdmin && !claims.IsAdmin {
		return nil, ErrAdminRequired
	}

	if opts.RequireOwner && !claims.IsAdmin {
		id, err := strconv.ParseInt(ownerID, 10, 64)
		if err != nil || id != claims.UserID {
			return nil, ErrOwnerRequired
		}
	}

	return claims, nil
}

// Require rejects requests that fail Authorize with 400 and stores the
// claims of the others in the request context.
func (a *Authenticator) Require(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.auth.Require"

			claims, err := a.Authorize(r.Header.Get("Authorization"), chi.URLParam(r, "id"), opts)
			if err != nil {
				a.log.Info("request rejected",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
					sl.Err(err),
				)

				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(a.tr.Message(r, messageKey(err), nil)))

				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		}

		return http.HandlerFunc(fn)
	}
}

func messageKey(err error) string {
	switch {
	case errors.Is(err, ErrAuthorizationRequired):
		return "login_required"
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrAdminRequired):
		return "admin_required"
	case errors.Is(err, ErrOwnerRequired):
		return "owner_or_admin_required"
	default:
		return "invalid_token"
	}
}
