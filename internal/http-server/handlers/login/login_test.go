package login

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsAPI/internal/clients/books"
	"eventsAPI/internal/http-server/handlers/login/mocks"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	credentials := `{"username":"bilbo","password":"ring"}`
	forwarded := func(t *testing.T) func(args mock.Arguments) {
		return func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(1).(io.Reader))
			require.NoError(t, err)
			assert.Equal(t, credentials, string(body))
		}
	}

	testCases := []struct {
		name                string
		mockSetup           func(t *testing.T, m *mocks.LoginProxy)
		expectedStatus      int
		expectedContentType string
		expectedBody        string
	}{
		{
			name: "Token relayed",
			mockSetup: func(t *testing.T, m *mocks.LoginProxy) {
				m.On("Login", mock.Anything, mock.Anything).Run(forwarded(t)).Return(&books.LoginResult{
					StatusCode:  http.StatusOK,
					ContentType: "application/json",
					Body:        []byte(`{"access":"token"}`),
				}, nil)
			},
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/json",
			expectedBody:        `{"access":"token"}`,
		},
		{
			name: "Rejection relayed",
			mockSetup: func(t *testing.T, m *mocks.LoginProxy) {
				m.On("Login", mock.Anything, mock.Anything).Return(&books.LoginResult{
					StatusCode:  http.StatusUnauthorized,
					ContentType: "application/json",
					Body:        []byte(`{"detail":"bad credentials"}`),
				}, nil)
			},
			expectedStatus:      http.StatusUnauthorized,
			expectedContentType: "application/json",
			expectedBody:        `{"detail":"bad credentials"}`,
		},
		{
			name: "Books service unreachable",
			mockSetup: func(t *testing.T, m *mocks.LoginProxy) {
				m.On("Login", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedContentType: "application/json",
			expectedBody:        `{"status":"Error","error":"failed to reach the login service"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProxy := mocks.NewLoginProxy(t)
			tc.mockSetup(t, mockProxy)

			handler := New(logger, tr, mockProxy)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(credentials))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.Contains(t, rr.Header().Get("Content-Type"), tc.expectedContentType)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
