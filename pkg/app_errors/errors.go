package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateName       = errors.New("duplicate profile name")
	ErrInvalidInput        = errors.New("invalid input")
	ErrAuditLogRewrite     = errors.New("update logs are append-only")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError 輸入不合法，呼叫端修正後可重送
type ValidationError struct {
	Reason string
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateNameError 名稱重複(不分大小寫)
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("Profile with name %q already exists", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// IsNotFound event 或 profile 不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound) || errors.Is(err, ErrProfileNotFound)
}
