package upsertMember

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsAPI/internal/http-server/handlers/member/upsertMember/mocks"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/handlers/slogdiscard"
	"eventsAPI/internal/models"
	"eventsAPI/internal/services/membership"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertMemberHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	testCases := []struct {
		name           string
		kind           models.MemberKind
		mockSetup      func(m *mocks.MemberUpserter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Guest profile refreshed",
			kind: models.KindGuest,
			mockSetup: func(m *mocks.MemberUpserter) {
				m.On("Upsert", mock.Anything, int64(6)).Return(&models.Member{ID: 6, Name: "Samwise"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Profile updated.","member":{"id":6,"name":"Samwise"}}`,
		},
		{
			name: "Books service failure for a guest",
			kind: models.KindGuest,
			mockSetup: func(m *mocks.MemberUpserter) {
				m.On("Upsert", mock.Anything, int64(6)).
					Return(nil, fmt.Errorf("services.membership.Upsert: %w: status 500", membership.ErrProfileUnavailable))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Error loading user 6."}`,
		},
		{
			name: "Books service failure for a participant",
			kind: models.KindParticipant,
			mockSetup: func(m *mocks.MemberUpserter) {
				m.On("Upsert", mock.Anything, int64(6)).Return(nil, membership.ErrProfileUnavailable)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Error loading author 6."}`,
		},
		{
			name: "Database error",
			kind: models.KindGuest,
			mockSetup: func(m *mocks.MemberUpserter) {
				m.On("Upsert", mock.Anything, int64(6)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpserter := mocks.NewMemberUpserter(t)
			tc.mockSetup(mockUpserter)

			handler := New(logger, tr, tc.kind, mockUpserter)

			req := httptest.NewRequest(http.MethodPut, "/members/6", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "6")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
