package timezone

import (
	"strings"
	"sync"
	"time"

	"go-event-scheduler/internal/model"
	apperrors "go-event-scheduler/pkg/app_errors"
)

const (
	DateLayout         = "2006-01-02"
	ClockLayout        = "15:04"
	ClockLayoutSeconds = "15:04:05"
	// CanonicalLayout instant 在 changeset 與 API 中的固定格式 (UTC, 毫秒)
	CanonicalLayout = "2006-01-02T15:04:05.000Z"
)

var locations sync.Map

// Load 取得 IANA 時區，結果會快取；"Local" 與空字串不接受
func Load(tz string) (*time.Location, error) {
	name := strings.TrimSpace(tz)
	if name == "" {
		return nil, apperrors.NewValidationError("Timezone is required")
	}
	if cached, ok := locations.Load(name); ok {
		return cached.(*time.Location), nil
	}
	if name == "Local" {
		return nil, apperrors.NewValidationError("Unknown timezone %q", tz)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperrors.NewValidationError("Unknown timezone %q", tz)
	}
	locations.Store(name, loc)
	return loc, nil
}

// Validate 檢查是否為可辨識的 IANA 時區
func Validate(tz string) error {
	_, err := Load(tz)
	return err
}

// ToInstant 將 (日期, 時間, 時區) 轉成 UTC instant
//
// DST 規則：
//   - 重疊時段 (撥回) 取標準時間的 offset，也就是較晚的 instant
//   - 不存在的時段 (撥快) 依跳過的長度往後推，例如 02:30 -> 03:30
func ToInstant(date, clock, tz string) (time.Time, error) {
	loc, err := Load(tz)
	if err != nil {
		return time.Time{}, err
	}

	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("Invalid date %q, expected YYYY-MM-DD", date)
	}

	c, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	naive := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.UTC)
	return resolve(naive, loc).UTC(), nil
}

// FromWallClock ToInstant 的 model.WallClock 版本
func FromWallClock(wc model.WallClock, tz string) (time.Time, error) {
	return ToInstant(wc.Date, wc.Time, tz)
}

// ToWallClock 將 instant 轉成指定時區的日期與時間
func ToWallClock(instant time.Time, tz string) (model.WallClock, error) {
	loc, err := Load(tz)
	if err != nil {
		return model.WallClock{}, err
	}
	local := instant.In(loc)
	layout := ClockLayout
	if local.Second() != 0 {
		layout = ClockLayoutSeconds
	}
	return model.WallClock{
		Date: local.Format(DateLayout),
		Time: local.Format(layout),
	}, nil
}

// Canonical instant 的 ISO-8601 字串 (UTC, 毫秒)
func Canonical(t time.Time) string {
	return t.UTC().Format(CanonicalLayout)
}

// Truncate 儲存前統一到毫秒精度，確保比對與 canonical 字串一致
func Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func parseClock(clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	for _, layout := range []string{ClockLayout, ClockLayoutSeconds} {
		if c, err := time.Parse(layout, clock); err == nil {
			return c, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("Invalid time %q, expected HH:mm", clock)
}

func resolve(naive time.Time, loc *time.Location) time.Time {
	_, before := naive.Add(-24 * time.Hour).In(loc).Zone()
	_, after := naive.Add(24 * time.Hour).In(loc).Zone()

	offsets := []int{before}
	if after != before {
		offsets = append(offsets, after)
	}

	matches := make([]time.Time, 0, 2)
	for _, offset := range offsets {
		candidate := naive.Add(-time.Duration(offset) * time.Second)
		if sameWallClock(candidate.In(loc), naive) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		// 撥快跳過的時段
		return naive.Add(-time.Duration(before) * time.Second)
	case 1:
		return matches[0]
	}

	for _, m := range matches {
		if !m.In(loc).IsDST() {
			return m
		}
	}
	if matches[1].After(matches[0]) {
		return matches[1]
	}
	return matches[0]
}

func sameWallClock(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second()
}
