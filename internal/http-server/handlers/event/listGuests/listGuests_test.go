package listGuests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsAPI/internal/config"
	"eventsAPI/internal/http-server/handlers/event/listGuests/mocks"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/handlers/slogdiscard"
	"eventsAPI/internal/models"
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListGuestsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	cfg := config.Pagination{DefaultLimit: 20, MaxLimit: 100}

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.GuestsLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "First page with more to come",
			query: "?limit=2",
			mockSetup: func(m *mocks.GuestsLister) {
				m.On("List", mock.Anything, int64(1), 1, 2).Return(models.Page[models.Member]{
					Items:   []models.Member{{ID: 3, Name: "Bilbo"}, {ID: 5, Name: "Frodo"}},
					Page:    1,
					Limit:   2,
					HasNext: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","page":1,"limit":2,
				"next":"http://example.com/events/1/guests?limit=2&page=2","prev":null,
				"results":[{"id":3,"name":"Bilbo"},{"id":5,"name":"Frodo"}]}`,
		},
		{
			name:  "Event not found",
			query: "",
			mockSetup: func(m *mocks.GuestsLister) {
				m.On("List", mock.Anything, int64(1), 1, 20).Return(models.Page[models.Member]{}, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"Event with id 1 not found."}`,
		},
		{
			name:           "Invalid limit",
			query:          "?limit=zero",
			mockSetup:      func(m *mocks.GuestsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"page and limit must be positive integers"}`,
		},
		{
			name:  "Database error",
			query: "",
			mockSetup: func(m *mocks.GuestsLister) {
				m.On("List", mock.Anything, int64(1), 1, 20).Return(models.Page[models.Member]{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewGuestsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, tr, cfg, mockLister)

			req := httptest.NewRequest(http.MethodGet, "/events/1/guests"+tc.query, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "1")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
