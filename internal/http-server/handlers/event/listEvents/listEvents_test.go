package listEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventsAPI/internal/config"
	"eventsAPI/internal/http-server/handlers/event/listEvents/mocks"
	"eventsAPI/internal/lib/api/pagination"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/handlers/slogdiscard"
	"eventsAPI/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var paginationCfg = config.Pagination{DefaultLimit: 20, MaxLimit: 100}

func pastEvents(from, n int) []models.Event {
	start := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)

	events := make([]models.Event, 0, n)
	for i := from; i < from+n; i++ {
		events = append(events, models.Event{
			ID:    int64(i),
			Name:  "Event",
			Start: start.AddDate(0, 0, i),
			End:   start.AddDate(0, 0, i).Add(2 * time.Hour),
		})
	}
	return events
}

func TestListEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	past := models.StatusPast
	guestID := int64(9)

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.EventsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:  "Twelve past events, second page of five",
			query: "?status=past&page=2&limit=5",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, models.EventFilter{Status: past}, mock.AnythingOfType("time.Time"), 2, 5).
					Return(models.Page[models.Event]{Items: pastEvents(6, 5), Page: 2, Limit: 5, HasNext: true}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var env pagination.Envelope[models.EventView]
				require.NoError(t, json.Unmarshal(body, &env))

				assert.Equal(t, "OK", env.Status)
				require.Len(t, env.Results, 5)
				assert.Equal(t, int64(6), env.Results[0].ID)
				for _, e := range env.Results {
					assert.Equal(t, models.StatusPast, e.Status)
					assert.Nil(t, e.Participants)
				}
				require.NotNil(t, env.Next)
				require.NotNil(t, env.Prev)
				assert.Equal(t, "http://example.com/events?limit=5&page=3&status=past", *env.Next)
				assert.Equal(t, "http://example.com/events?limit=5&page=1&status=past", *env.Prev)
			},
		},
		{
			name:  "Defaults",
			query: "",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, models.EventFilter{}, mock.Anything, 1, 20).
					Return(models.Page[models.Event]{Page: 1, Limit: 20}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","page":1,"limit":20,"next":null,"prev":null,"results":[]}`,
		},
		{
			name:  "Limit clamped to maximum",
			query: "?limit=500&guest=9",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, models.EventFilter{GuestID: &guestID}, mock.Anything, 1, 100).
					Return(models.Page[models.Event]{Page: 1, Limit: 100}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var env pagination.Envelope[models.EventView]
				require.NoError(t, json.Unmarshal(body, &env))
				assert.Equal(t, 100, env.Limit)
			},
		},
		{
			name:  "Unsupported filter yields an empty listing",
			query: "?venue=hall",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, models.EventFilter{Unsupported: []string{"venue"}}, mock.Anything, 1, 20).
					Return(models.Page[models.Event]{Page: 1, Limit: 20}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","page":1,"limit":20,"next":null,"prev":null,"results":[]}`,
		},
		{
			name:           "Invalid status",
			query:          "?status=soon",
			mockSetup:      func(m *mocks.EventsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid filter value"}`,
		},
		{
			name:           "Invalid page",
			query:          "?page=0",
			mockSetup:      func(m *mocks.EventsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"page and limit must be positive integers"}`,
		},
		{
			name:  "Storage error",
			query: "",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, mock.Anything, mock.Anything, 1, 20).
					Return(models.Page[models.Event]{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, tr, paginationCfg, mockLister)

			req := httptest.NewRequest(http.MethodGet, "/events"+tc.query, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
