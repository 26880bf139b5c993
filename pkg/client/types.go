package client

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileSummary 活動回應中帶的 profile 摘要
type ProfileSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Timezone string    `json:"timezone"`
}

type WallClock struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Change struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}

type UpdateLog struct {
	UpdatedBy string            `json:"updatedBy"`
	Changes   map[string]Change `json:"changes"`
	Timestamp time.Time         `json:"timestamp"`
}

// Event 伺服器回傳的活動，帶 profileDetails；以 tz 查詢列表時會帶 startLocal/endLocal
type Event struct {
	ID            uuid.UUID   `json:"id"`
	EventName     string      `json:"eventName"`
	EventDetails  string      `json:"eventDetails"`
	Profiles      []uuid.UUID `json:"profiles"`
	Timezone      string      `json:"timezone"`
	StartDateTime time.Time   `json:"startDateTime"`
	EndDateTime   time.Time   `json:"endDateTime"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	UpdateLogs    []UpdateLog `json:"updateLogs"`

	ProfileDetails []ProfileSummary `json:"profileDetails"`
	ViewTimezone   string           `json:"viewTimezone,omitempty"`
	StartLocal     *WallClock       `json:"startLocal,omitempty"`
	EndLocal       *WallClock       `json:"endLocal,omitempty"`
}

// CreateEventInput 時間可用 StartDateTime/EndDateTime 或 date+time 擇一
type CreateEventInput struct {
	EventName     string      `json:"eventName"`
	EventDetails  string      `json:"eventDetails,omitempty"`
	Profiles      []uuid.UUID `json:"profiles"`
	Timezone      string      `json:"timezone,omitempty"`
	StartDateTime *time.Time  `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time  `json:"endDateTime,omitempty"`
	StartDate     string      `json:"startDate,omitempty"`
	StartTime     string      `json:"startTime,omitempty"`
	EndDate       string      `json:"endDate,omitempty"`
	EndTime       string      `json:"endTime,omitempty"`
}

// UpdateEventInput nil 的欄位不會送出
type UpdateEventInput struct {
	EventName     *string      `json:"eventName,omitempty"`
	EventDetails  *string      `json:"eventDetails,omitempty"`
	Profiles      *[]uuid.UUID `json:"profiles,omitempty"`
	Timezone      *string      `json:"timezone,omitempty"`
	StartDateTime *time.Time   `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time   `json:"endDateTime,omitempty"`
	StartDate     string       `json:"startDate,omitempty"`
	StartTime     string       `json:"startTime,omitempty"`
	EndDate       string       `json:"endDate,omitempty"`
	EndTime       string       `json:"endTime,omitempty"`
}
