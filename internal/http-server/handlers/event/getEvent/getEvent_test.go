package getEvent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventsAPI/internal/http-server/handlers/event/getEvent/mocks"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/handlers/slogdiscard"
	"eventsAPI/internal/models"
	"eventsAPI/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	start := time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Event with participants",
			eventID: "1",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Event", mock.Anything, int64(1)).Return(&models.Event{
					ID:           1,
					Name:         "Meetup",
					Start:        start,
					End:          end,
					Description:  "Annual",
					Participants: []models.Member{{ID: 4, Name: "Tolkien"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","event":{
				"id":1,"name":"Meetup",
				"start":"2020-03-01T10:00:00Z","end":"2020-03-01T13:00:00Z",
				"description":"Annual","status":"past",
				"participants":[{"id":4,"name":"Tolkien"}]}}`,
		},
		{
			name:    "Event without participants",
			eventID: "2",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Event", mock.Anything, int64(2)).Return(&models.Event{ID: 2, Name: "Quiet", Start: start, End: end}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","event":{
				"id":2,"name":"Quiet",
				"start":"2020-03-01T10:00:00Z","end":"2020-03-01T13:00:00Z",
				"status":"past","participants":[]}}`,
		},
		{
			name:    "Not found",
			eventID: "42",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Event", mock.Anything, int64(42)).Return(nil, fmt.Errorf("storage.postgres.Event: %w", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"Event with id 42 not found."}`,
		},
		{
			name:           "Invalid id",
			eventID:        "abc",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
		{
			name:    "Database error",
			eventID: "1",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Event", mock.Anything, int64(1)).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, tr, mockGetter)

			req := httptest.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.eventID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
