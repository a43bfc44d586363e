package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()

	tr, err := i18n.New("en")
	require.NoError(t, err)

	a := New(slogdiscard.NewDiscardLogger(), tr, secret)
	a.now = func() time.Time { return now }

	return a
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func userToken(t *testing.T, id int64, admin bool, exp time.Time) string {
	t.Helper()

	return sign(t, jwt.SigningMethodHS256, []byte(secret), &Claims{
		UserID:           id,
		IsAdmin:          admin,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	a := newAuthenticator(t)
	later := now.Add(time.Hour)

	testCases := []struct {
		name        string
		header      string
		ownerID     string
		opts        Options
		expectedErr error
		wantID      int64
	}{
		{
			name:        "Missing token",
			expectedErr: ErrAuthorizationRequired,
		},
		{
			name:        "Expired token",
			header:      userToken(t, 1, true, now.Add(-time.Second)),
			expectedErr: ErrTokenExpired,
		},
		{
			name:        "Expiry equal to now",
			header:      userToken(t, 1, true, now),
			expectedErr: ErrTokenExpired,
		},
		{
			name:        "Wrong secret",
			header:      sign(t, jwt.SigningMethodHS256, []byte("other"), &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(later)}}),
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "Other algorithm",
			header:      sign(t, jwt.SigningMethodHS512, []byte(secret), &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(later)}}),
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "No expiry",
			header:      sign(t, jwt.SigningMethodHS256, []byte(secret), &Claims{UserID: 1}),
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "Garbage",
			header:      "Bearer not-a-token",
			expectedErr: ErrInvalidToken,
		},
		{
			name:   "Any authenticated user",
			header: "Bearer " + userToken(t, 5, false, later),
			wantID: 5,
		},
		{
			name:        "Non-admin on admin route",
			header:      userToken(t, 5, false, later),
			opts:        Options{RequireAdmin: true},
			expectedErr: ErrAdminRequired,
		},
		{
			name:   "Admin on admin route",
			header: userToken(t, 1, true, later),
			opts:   Options{RequireAdmin: true},
			wantID: 1,
		},
		{
			name:    "Owner",
			header:  userToken(t, 5, false, later),
			ownerID: "5",
			opts:    Options{RequireOwner: true},
			wantID:  5,
		},
		{
			name:        "Someone else",
			header:      userToken(t, 6, false, later),
			ownerID:     "5",
			opts:        Options{RequireOwner: true},
			expectedErr: ErrOwnerRequired,
		},
		{
			name:    "Admin acting for owner",
			header:  userToken(t, 1, true, later),
			ownerID: "5",
			opts:    Options{RequireOwner: true},
			wantID:  1,
		},
		{
			name:        "Owner on admin and owner route",
			header:      userToken(t, 5, false, later),
			ownerID:     "5",
			opts:        Options{RequireAdmin: true, RequireOwner: true},
			expectedErr: ErrAdminRequired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			claims, err := a.Authorize(tc.header, tc.ownerID, tc.opts)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, claims.UserID)
		})
	}
}

func TestRequire(t *testing.T) {
	t.Parallel()

	a := newAuthenticator(t)
	later := now.Add(time.Hour)

	testCases := []struct {
		name       string
		path       string
		token      string
		opts       Options
		wantStatus int
		wantError  string
	}{
		{
			name:       "Expired token",
			path:       "/events",
			token:      userToken(t, 1, true, now.Add(-time.Minute)),
			wantStatus: http.StatusBadRequest,
			wantError:  "token expired",
		},
		{
			name:       "Non-admin",
			path:       "/events",
			token:      userToken(t, 2, false, later),
			opts:       Options{RequireAdmin: true},
			wantStatus: http.StatusBadRequest,
			wantError:  "admin required",
		},
		{
			name:       "Missing token",
			path:       "/events",
			wantStatus: http.StatusBadRequest,
			wantError:  "authorization required",
		},
		{
			name:       "Not the owner",
			path:       "/guests/3",
			token:      userToken(t, 2, false, later),
			opts:       Options{RequireOwner: true},
			wantStatus: http.StatusBadRequest,
			wantError:  "owner or admin required",
		},
		{
			name:       "Owner",
			path:       "/guests/2",
			token:      userToken(t, 2, false, later),
			opts:       Options{RequireOwner: true},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			var seen *Claims

			router := chi.NewRouter()
			router.With(a.Require(tc.opts)).Get("/events", func(w http.ResponseWriter, r *http.Request) {
				called = true
				seen, _ = ClaimsFromContext(r.Context())
			})
			router.With(a.Require(tc.opts)).Get("/guests/{id}", func(w http.ResponseWriter, r *http.Request) {
				called = true
				seen, _ = ClaimsFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)

			if tc.wantError == "" {
				assert.True(t, called)
				require.NotNil(t, seen)
				return
			}

			assert.False(t, called)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, response.StatusError, resp.Status)
			assert.Equal(t, tc.wantError, resp.Error)
		})
	}
}
