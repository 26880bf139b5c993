package model

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultActor 目前沒有身分驗證，所有異動都記在固定的操作者底下
const DefaultActor = "Admin"

// 可追蹤異動的欄位名稱 (同時也是 JSON 欄位名)
const (
	FieldEventName     = "eventName"
	FieldEventDetails  = "eventDetails"
	FieldProfiles      = "profiles"
	FieldTimezone      = "timezone"
	FieldStartDateTime = "startDateTime"
	FieldEndDateTime   = "endDateTime"
)

type Event struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	EventName     string           `json:"eventName" db:"event_name"`
	EventDetails  string           `json:"eventDetails" db:"event_details"`
	Profiles      []uuid.UUID      `json:"profiles" db:"-"`
	Timezone      string           `json:"timezone" db:"timezone"`
	StartDateTime time.Time        `json:"startDateTime" db:"start_date_time"`
	EndDateTime   time.Time        `json:"endDateTime" db:"end_date_time"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
	UpdateLogs    []UpdateLogEntry `json:"updateLogs" db:"-"`
}

// Clone 深拷貝，避免呼叫端與 store 共用 slice
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	out := *e
	if e.Profiles != nil {
		out.Profiles = make([]uuid.UUID, len(e.Profiles))
		copy(out.Profiles, e.Profiles)
	}
	if e.UpdateLogs != nil {
		out.UpdateLogs = make([]UpdateLogEntry, len(e.UpdateLogs))
		for i, entry := range e.UpdateLogs {
			out.UpdateLogs[i] = entry.Clone()
		}
	}
	return &out
}

// HasProfile 是否屬於指定 profile
func (e *Event) HasProfile(profileID uuid.UUID) bool {
	for _, id := range e.Profiles {
		if id == profileID {
			return true
		}
	}
	return false
}

// UpdateLogEntry 一次成功更新的異動紀錄，寫入後不可修改
type UpdateLogEntry struct {
	UpdatedBy string    `json:"updatedBy"`
	Changes   Changeset `json:"changes"`
	Timestamp time.Time `json:"timestamp"`
}

func (l UpdateLogEntry) Clone() UpdateLogEntry {
	out := l
	out.Changes = l.Changes.Clone()
	return out
}

// Change 單一欄位的前後值 (已轉成 canonical 形式，可直接顯示)
type Change struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}

// Changeset 欄位名稱 -> 前後值
type Changeset map[string]Change

func (c Changeset) IsEmpty() bool {
	return len(c) == 0
}

func (c Changeset) Clone() Changeset {
	if c == nil {
		return nil
	}
	out := make(Changeset, len(c))
	for field, change := range c {
		out[field] = Change{From: cloneValue(change.From), To: cloneValue(change.To)}
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []interface{}:
		return append([]interface{}(nil), val...)
	default:
		return v
	}
}

// WallClock 未帶時區的日期+時間，需搭配 timezone 才有意義
type WallClock struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:mm
}

// EventFields 可被更新的欄位；nil 代表這次請求沒有帶該欄位
type EventFields struct {
	EventName     *string
	EventDetails  *string
	Profiles      *[]uuid.UUID
	Timezone      *string
	StartDateTime *time.Time
	EndDateTime   *time.Time
}

// IsEmpty 沒有任何欄位
func (f EventFields) IsEmpty() bool {
	return f.EventName == nil && f.EventDetails == nil && f.Profiles == nil &&
		f.Timezone == nil && f.StartDateTime == nil && f.EndDateTime == nil
}

// CreateEventParams 建立活動參數；時間可用 instant 或 wall clock 擇一
type CreateEventParams struct {
	EventName     string
	EventDetails  string
	Profiles      []uuid.UUID
	Timezone      string
	StartDateTime *time.Time
	EndDateTime   *time.Time
	StartLocal    *WallClock
	EndLocal      *WallClock
}

// UpdateEventParams 部分更新參數；wall clock 以請求的 timezone 解讀，未帶時用活動原本的 timezone
type UpdateEventParams struct {
	EventFields
	StartLocal *WallClock
	EndLocal   *WallClock
}

// EventView 回應用的活動資料：帶 profile 摘要，指定檢視時區時另外帶 wall clock
type EventView struct {
	*Event
	ProfileDetails []ProfileSummary `json:"profileDetails"`
	ViewTimezone   string           `json:"viewTimezone,omitempty"`
	StartLocal     *WallClock       `json:"startLocal,omitempty"`
	EndLocal       *WallClock       `json:"endLocal,omitempty"`
}

// NormalizeProfiles profiles 視為集合：去重複並排序
func NormalizeProfiles(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Apply 回傳套用 fields 後的新副本，原本的 event 不會被修改
func (e *Event) Apply(fields EventFields) *Event {
	out := e.Clone()
	if fields.EventName != nil {
		out.EventName = strings.TrimSpace(*fields.EventName)
	}
	if fields.EventDetails != nil {
		out.EventDetails = strings.TrimSpace(*fields.EventDetails)
	}
	if fields.Profiles != nil {
		out.Profiles = NormalizeProfiles(*fields.Profiles)
	}
	if fields.Timezone != nil {
		out.Timezone = *fields.Timezone
	}
	if fields.StartDateTime != nil {
		out.StartDateTime = *fields.StartDateTime
	}
	if fields.EndDateTime != nil {
		out.EndDateTime = *fields.EndDateTime
	}
	return out
}
