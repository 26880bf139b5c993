package validator

import (
	"strings"

	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/timezone"
	apperrors "go-event-scheduler/pkg/app_errors"
)

// ValidateEvent 檢查活動不變量，依序短路：
// 1. 名稱去空白後不可為空
// 2. profiles 不可為空
// 3. 結束時間必須晚於開始時間
// 4. 時區必須可辨識
//
// update 時傳入的是合併後的完整候選資料
func ValidateEvent(candidate *model.Event) error {
	if candidate == nil {
		return apperrors.ErrInvalidInput
	}
	if strings.TrimSpace(candidate.EventName) == "" {
		return apperrors.NewValidationError("Event name is required")
	}
	if len(candidate.Profiles) == 0 {
		return apperrors.NewValidationError("At least one profile is required")
	}
	if !candidate.EndDateTime.After(candidate.StartDateTime) {
		return apperrors.NewValidationError("End date/time must be after start date/time")
	}
	return timezone.Validate(candidate.Timezone)
}

// ValidateProfile 建立 profile 前的檢查
func ValidateProfile(name, tz string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("Profile name is required")
	}
	return timezone.Validate(tz)
}
