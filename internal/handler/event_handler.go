package handler

import (
	"net/http"
	"strings"
	"time"

	"go-event-scheduler/internal/calendar"
	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/service"
	apperrors "go-event-scheduler/pkg/app_errors"
	"go-event-scheduler/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("events/profile/:profileId", h.ListByProfile)
		router.GET("events/profile/:profileId/ical", h.ExportICal)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.PATCH("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
	}
}

// CreateEventRequest 建立活動請求
// 時間可用 startDateTime/endDateTime (RFC 3339)，或 startDate+startTime / endDate+endTime (以 timezone 解讀)
// binding 只做格式檢查，活動規則由 validator 負責
type CreateEventRequest struct {
	EventName     string      `json:"eventName"`
	EventDetails  string      `json:"eventDetails"`
	Profiles      []uuid.UUID `json:"profiles" binding:"omitempty,dive,required"`
	Timezone      string      `json:"timezone"`
	StartDateTime *time.Time  `json:"startDateTime"`
	EndDateTime   *time.Time  `json:"endDateTime"`
	StartDate     string      `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	StartTime     string      `json:"startTime"`
	EndDate       string      `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	EndTime       string      `json:"endTime"`
}

// UpdateEventRequest 部分更新，沒帶的欄位維持原值
type UpdateEventRequest struct {
	EventName     *string      `json:"eventName"`
	EventDetails  *string      `json:"eventDetails"`
	Profiles      *[]uuid.UUID `json:"profiles" binding:"omitempty,dive,required"`
	Timezone      *string      `json:"timezone"`
	StartDateTime *time.Time   `json:"startDateTime"`
	EndDateTime   *time.Time   `json:"endDateTime"`
	StartDate     string       `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	StartTime     string       `json:"startTime"`
	EndDate       string       `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	EndTime       string       `json:"endTime"`
}

func (h *EventHandler) ListByProfile(c *gin.Context) {
	profileID, ok := parseID(c, "profileId", "profile")
	if !ok {
		return
	}

	events, err := h.service.ListByProfile(c, profileID)
	if err != nil {
		handleError(c, err, "ListByProfile")
		return
	}

	views, err := h.service.Populate(c, events, strings.TrimSpace(c.Query("tz")))
	if err != nil {
		handleError(c, err, "ListByProfile")
		return
	}
	c.JSON(http.StatusOK, views)
}

// ExportICal 以 iCalendar 格式輸出 profile 的活動，供行事曆軟體訂閱
func (h *EventHandler) ExportICal(c *gin.Context) {
	profileID, ok := parseID(c, "profileId", "profile")
	if !ok {
		return
	}

	events, err := h.service.ListByProfile(c, profileID)
	if err != nil {
		handleError(c, err, "ExportICal")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+profileID.String()+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.Export(events, time.Now())))
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetByID")
		return
	}
	h.writeEvent(c, http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	startLocal, err := wallClock(req.StartDate, req.StartTime, "start")
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	endLocal, err := wallClock(req.EndDate, req.EndTime, "end")
	if err != nil {
		handleError(c, err, "Create")
		return
	}

	event, err := h.service.Create(c, model.CreateEventParams{
		EventName:     req.EventName,
		EventDetails:  req.EventDetails,
		Profiles:      req.Profiles,
		Timezone:      req.Timezone,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		StartLocal:    startLocal,
		EndLocal:      endLocal,
	})
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	h.writeEvent(c, http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "event")
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := BindOptionalJson(c, &req); err != nil {
		return
	}

	startLocal, err := wallClock(req.StartDate, req.StartTime, "start")
	if err != nil {
		handleError(c, err, "Update")
		return
	}
	endLocal, err := wallClock(req.EndDate, req.EndTime, "end")
	if err != nil {
		handleError(c, err, "Update")
		return
	}

	event, err := h.service.Update(c, id, model.UpdateEventParams{
		EventFields: model.EventFields{
			EventName:     req.EventName,
			EventDetails:  req.EventDetails,
			Profiles:      req.Profiles,
			Timezone:      req.Timezone,
			StartDateTime: req.StartDateTime,
			EndDateTime:   req.EndDateTime,
		},
		StartLocal: startLocal,
		EndLocal:   endLocal,
	})
	if err != nil {
		handleError(c, err, "Update")
		return
	}
	h.writeEvent(c, http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "event")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// writeEvent 回傳帶 profile 摘要的活動；摘要載入失敗時退回原始資料 (異動已 commit)
func (h *EventHandler) writeEvent(c *gin.Context, status int, event *model.Event) {
	views, err := h.service.Populate(c, []*model.Event{event}, "")
	if err != nil || len(views) != 1 {
		logger.WithComponent("handler").Warn("Populate profiles failed",
			zap.String("event_id", event.ID.String()), zap.Error(err))
		c.JSON(status, event)
		return
	}
	c.JSON(status, views[0])
}

// wallClock 日期與時間必須同時提供；都沒有時回傳 nil
func wallClock(date, clock, label string) (*model.WallClock, error) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date == "" && clock == "" {
		return nil, nil
	}
	if date == "" || clock == "" {
		return nil, apperrors.NewValidationError("%sDate and %sTime must be provided together", label, label)
	}
	return &model.WallClock{Date: date, Time: clock}, nil
}
