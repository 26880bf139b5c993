package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"go-event-scheduler/internal/handler"
	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/service"
	"go-event-scheduler/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`

	aliceSummary = model.ProfileSummary{
		ID:       uuid.MustParse("11111111-1111-4111-8111-111111111111"),
		Name:     "Alice",
		Timezone: "America/New_York",
	}
)

// populateViews 模擬 EventService.Populate：換算 wall clock 並帶入已知的 profile 摘要
func populateViews(_ context.Context, events []*model.Event, tz string) ([]model.EventView, error) {
	views, err := service.ToViews(events, tz)
	if err != nil {
		return nil, err
	}
	for i := range views {
		for _, id := range views[i].Profiles {
			if id == aliceSummary.ID {
				views[i].ProfileDetails = append(views[i].ProfileDetails, aliceSummary)
			}
		}
	}
	return views, nil
}

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockEventService, *mocks.MockProfileService) {
	gin.SetMode(gin.TestMode)
	events := mocks.NewMockEventService(t)
	profiles := mocks.NewMockProfileService(t)
	events.EXPECT().Populate(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(populateViews).Maybe()
	return handler.NewRouter(events, profiles), events, profiles
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, body *bytes.Buffer, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body.Bytes(), out))
}
