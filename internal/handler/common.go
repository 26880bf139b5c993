package handler

import (
	"errors"
	"io"
	"net/http"

	apperrors "go-event-scheduler/pkg/app_errors"
	"go-event-scheduler/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	return bindJson(c, obj, false)
}

// BindOptionalJson 與 BindJson 相同，但沒有 body 時視為 {}
func BindOptionalJson(c *gin.Context, obj interface{}) error {
	return bindJson(c, obj, true)
}

func bindJson(c *gin.Context, obj interface{}, allowEmpty bool) error {
	err := c.ShouldBindJSON(obj)
	if allowEmpty && errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// parseID 解析路徑上的 uuid，失敗時直接回 400
func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " id"})
		return uuid.Nil, false
	}
	return id, true
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validationErr *apperrors.ValidationError
	var duplicateErr *apperrors.DuplicateNameError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Reason,
		})
	case errors.As(err, &duplicateErr):
		log.Warn("Duplicate profile name")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": duplicateErr.Error(),
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, apperrors.ErrProfileNotFound):
		log.Warn("Profile not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Profile not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
