package audit

import (
	"strings"
	"time"

	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/timezone"

	"github.com/google/uuid"
)

// Diff 比較 previous 與 proposed，只回傳真的有變動的欄位
// proposed 沒帶的欄位 (nil) 不列入比較
func Diff(previous *model.Event, proposed model.EventFields) model.Changeset {
	changes := model.Changeset{}

	if proposed.EventName != nil {
		diffString(changes, model.FieldEventName, previous.EventName, strings.TrimSpace(*proposed.EventName))
	}
	if proposed.EventDetails != nil {
		diffString(changes, model.FieldEventDetails, previous.EventDetails, strings.TrimSpace(*proposed.EventDetails))
	}
	if proposed.Profiles != nil {
		from := CanonicalProfiles(previous.Profiles)
		to := CanonicalProfiles(*proposed.Profiles)
		if !equalStrings(from, to) {
			changes[model.FieldProfiles] = model.Change{From: from, To: to}
		}
	}
	if proposed.Timezone != nil {
		diffString(changes, model.FieldTimezone, previous.Timezone, *proposed.Timezone)
	}
	if proposed.StartDateTime != nil {
		diffInstant(changes, model.FieldStartDateTime, previous.StartDateTime, *proposed.StartDateTime)
	}
	if proposed.EndDateTime != nil {
		diffInstant(changes, model.FieldEndDateTime, previous.EndDateTime, *proposed.EndDateTime)
	}

	return changes
}

// CanonicalProfiles profiles 的比較與紀錄格式：排序且去重複的 id 字串
func CanonicalProfiles(ids []uuid.UUID) []string {
	normalized := model.NormalizeProfiles(ids)
	out := make([]string, len(normalized))
	for i, id := range normalized {
		out[i] = id.String()
	}
	return out
}

func diffString(changes model.Changeset, field, from, to string) {
	if from != to {
		changes[field] = model.Change{From: from, To: to}
	}
}

func diffInstant(changes model.Changeset, field string, from, to time.Time) {
	if !from.Equal(to) {
		changes[field] = model.Change{From: timezone.Canonical(from), To: timezone.Canonical(to)}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
