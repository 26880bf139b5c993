package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-event-scheduler/internal/handler"
	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/service/mocks"
	apperrors "go-event-scheduler/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *model.Event {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	return &model.Event{
		ID:            uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"),
		EventName:     "Standup",
		Profiles:      []uuid.UUID{uuid.MustParse("11111111-1111-4111-8111-111111111111")},
		Timezone:      "America/New_York",
		StartDateTime: start,
		EndDateTime:   start.Add(30 * time.Minute),
		CreatedAt:     start,
		UpdatedAt:     start,
		UpdateLogs:    []model.UpdateLogEntry{},
	}
}

func TestHealth(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Server is running"}`, w.Body.String())
}

func TestCreateEvent(t *testing.T) {
	event := sampleEvent()

	t.Run("Success - wall clock input", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p model.CreateEventParams) bool {
			return p.EventName == "Standup" &&
				p.Timezone == "America/New_York" &&
				p.StartDateTime == nil &&
				p.StartLocal != nil && *p.StartLocal == model.WallClock{Date: "2024-01-10", Time: "09:00"} &&
				p.EndLocal != nil && *p.EndLocal == model.WallClock{Date: "2024-01-10", Time: "09:30"} &&
				len(p.Profiles) == 1 && p.Profiles[0] == event.Profiles[0]
		})).Return(event, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/events", map[string]interface{}{
			"eventName": "Standup",
			"profiles":  []string{event.Profiles[0].String()},
			"timezone":  "America/New_York",
			"startDate": "2024-01-10",
			"startTime": "09:00",
			"endDate":   "2024-01-10",
			"endTime":   "09:30",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.Event
		decodeBody(t, w.Body, &got)
		assert.Equal(t, event.ID, got.ID)
		assert.True(t, event.StartDateTime.Equal(got.StartDateTime))
	})

	t.Run("Success - RFC 3339 input", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p model.CreateEventParams) bool {
			return p.StartDateTime != nil && p.StartDateTime.Equal(event.StartDateTime) && p.StartLocal == nil
		})).Return(event, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/events", map[string]interface{}{
			"eventName":     "Standup",
			"profiles":      []string{event.Profiles[0].String()},
			"timezone":      "America/New_York",
			"startDateTime": "2024-01-10T09:00:00-05:00",
			"endDateTime":   "2024-01-10T14:30:00Z",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - ValidationError", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		events.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("End date/time must be after start date/time")).Once()

		req := createJSONHTTPRequest("POST", "/api/events", map[string]interface{}{"eventName": "Standup"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"End date/time must be after start date/time"}`, w.Body.String())
	})

	t.Run("Failed - date without time", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		req := createJSONHTTPRequest("POST", "/api/events", map[string]interface{}{
			"eventName": "Standup",
			"startDate": "2024-01-10",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"startDate and startTime must be provided together"}`, w.Body.String())
		events.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		req := createJSONHTTPRequest("POST", "/api/events", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())
		events.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - nil profile id", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		req := createJSONHTTPRequest("POST", "/api/events", map[string]interface{}{
			"eventName": "Standup",
			"profiles":  []string{uuid.Nil.String()},
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())
		events.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - malformed start date", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		req := createJSONHTTPRequest("POST", "/api/events", map[string]interface{}{
			"eventName": "Standup",
			"startDate": "2024/01/10",
			"startTime": "09:00",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())
		events.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - malformed profile id", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		req := createJSONHTTPRequest("POST", "/api/events", map[string]interface{}{
			"eventName": "Standup",
			"profiles":  []string{"not-a-uuid"},
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		events.AssertNotCalled(t, "Create")
	})
}

func TestGetEvent(t *testing.T) {
	event := sampleEvent()

	t.Run("Success", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/"+event.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got model.EventView
		decodeBody(t, w.Body, &got)
		require.NotNil(t, got.Event)
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, event.Profiles, got.Profiles)
		assert.Equal(t, []model.ProfileSummary{aliceSummary}, got.ProfileDetails)
	})

	t.Run("Success - populate failure falls back to plain event", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		events := mocks.NewMockEventService(t)
		router := handler.NewRouter(events, mocks.NewMockProfileService(t))
		events.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil).Once()
		events.EXPECT().Populate(mock.Anything, []*model.Event{event}, "").Return(nil, errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/"+event.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "profileDetails")
		var got model.Event
		decodeBody(t, w.Body, &got)
		assert.Equal(t, event.ID, got.ID)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().GetByID(mock.Anything, event.ID).Return(nil, apperrors.ErrEventNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/"+event.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
	})

	t.Run("Failed - invalid id", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/events/123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid event id"}`, w.Body.String())
		events.AssertNotCalled(t, "GetByID")
	})
}

func TestListEventsByProfile(t *testing.T) {
	event := sampleEvent()
	profileID := event.Profiles[0]

	t.Run("Success - with view timezone", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().ListByProfile(mock.Anything, profileID).Return([]*model.Event{event}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/profile/"+profileID.String()+"?tz=Asia/Kolkata", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var views []model.EventView
		decodeBody(t, w.Body, &views)
		require.Len(t, views, 1)
		assert.Equal(t, event.ID, views[0].ID)
		assert.Equal(t, "Asia/Kolkata", views[0].ViewTimezone)
		assert.Equal(t, &model.WallClock{Date: "2024-01-10", Time: "19:30"}, views[0].StartLocal)
		assert.Equal(t, &model.WallClock{Date: "2024-01-10", Time: "20:00"}, views[0].EndLocal)
		assert.Equal(t, []model.ProfileSummary{aliceSummary}, views[0].ProfileDetails)
	})

	t.Run("Success - without view timezone", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().ListByProfile(mock.Anything, profileID).Return([]*model.Event{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/profile/"+profileID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Failed - unknown view timezone", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().ListByProfile(mock.Anything, profileID).Return([]*model.Event{event}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/profile/"+profileID.String()+"?tz=Nope/Nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExportICal(t *testing.T) {
	event := sampleEvent()
	profileID := event.Profiles[0]

	t.Run("Success", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().ListByProfile(mock.Anything, profileID).Return([]*model.Event{event}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/profile/"+profileID.String()+"/ical", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), profileID.String()+".ics")
		assert.Contains(t, w.Body.String(), "UID:"+event.ID.String())
		assert.Contains(t, w.Body.String(), "DTSTART:20240110T140000Z")
	})

	t.Run("Failed - invalid profile id", func(t *testing.T) {
		router, _, _ := setupTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/events/profile/nope/ical", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - service error", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().ListByProfile(mock.Anything, profileID).Return(nil, errors.New("boom")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/events/profile/"+profileID.String()+"/ical", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUpdateEvent(t *testing.T) {
	event := sampleEvent()

	t.Run("Success - only sent fields are forwarded", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		events.EXPECT().Update(mock.Anything, event.ID, mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.EventName != nil && *p.EventName == "Retro" &&
				p.EventDetails == nil && p.Profiles == nil && p.Timezone == nil &&
				p.StartLocal == nil &&
				p.EndLocal != nil && *p.EndLocal == model.WallClock{Date: "2024-01-10", Time: "09:45"}
		})).Return(event, nil).Once()

		req := createJSONHTTPRequest("PATCH", "/api/events/"+event.ID.String(), map[string]interface{}{
			"eventName": "Retro",
			"endDate":   "2024-01-10",
			"endTime":   "09:45",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got model.EventView
		decodeBody(t, w.Body, &got)
		assert.Equal(t, []model.ProfileSummary{aliceSummary}, got.ProfileDetails)
	})

	t.Run("Success - empty body is an empty update", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().Update(mock.Anything, event.ID, mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.EventFields.IsEmpty() && p.StartLocal == nil && p.EndLocal == nil
		})).Return(event, nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/api/events/"+event.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - nil profile id", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)

		req := createJSONHTTPRequest("PATCH", "/api/events/"+event.ID.String(), map[string]interface{}{
			"profiles": []string{uuid.Nil.String()},
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		events.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().Update(mock.Anything, event.ID, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("PATCH", "/api/events/"+event.ID.String(), map[string]interface{}{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().Update(mock.Anything, event.ID, mock.Anything).Return(nil, errors.New("connection reset")).Once()

		req := createJSONHTTPRequest("PATCH", "/api/events/"+event.ID.String(), map[string]interface{}{"eventName": "x"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestDeleteEvent(t *testing.T) {
	event := sampleEvent()

	t.Run("Success", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().Delete(mock.Anything, event.ID).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/events/"+event.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Event deleted successfully"}`, w.Body.String())
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		router, events, _ := setupTestRouter(t)
		events.EXPECT().Delete(mock.Anything, event.ID).Return(apperrors.ErrEventNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/events/"+event.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
