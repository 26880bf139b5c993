package audit

import (
	"time"

	"go-event-scheduler/internal/model"
)

// AppendIfNonEmpty changeset 不為空時附加一筆 update log
// 既有紀錄只會被保留，不會被修改或移除
func AppendIfNonEmpty(event *model.Event, changes model.Changeset, now time.Time) *model.Event {
	if changes.IsEmpty() {
		return event
	}
	event.UpdateLogs = append(event.UpdateLogs, model.UpdateLogEntry{
		UpdatedBy: model.DefaultActor,
		Changes:   changes.Clone(),
		Timestamp: now.UTC(),
	})
	return event
}

// IsAppendOnly next 是否只在 prev 後面附加紀錄
func IsAppendOnly(prev, next []model.UpdateLogEntry) bool {
	if len(next) < len(prev) {
		return false
	}
	for i := range prev {
		if !prev[i].Timestamp.Equal(next[i].Timestamp) || prev[i].UpdatedBy != next[i].UpdatedBy ||
			len(prev[i].Changes) != len(next[i].Changes) {
			return false
		}
	}
	return true
}
