package handler

import (
	"net/http"

	"go-event-scheduler/internal/model"
	"go-event-scheduler/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("profiles", h.List)
		router.POST("profiles", h.Create)
		router.PATCH("profiles/:id/timezone", h.UpdateTimezone)
	}
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListProfiles")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req model.CreateProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	profile, err := h.service.Create(c, req)
	if err != nil {
		handleError(c, err, "CreateProfile")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdateTimezone(c *gin.Context) {
	id, ok := parseID(c, "id", "profile")
	if !ok {
		return
	}

	var req model.UpdateProfileTimezoneRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	profile, err := h.service.SetTimezone(c, id, req.Timezone)
	if err != nil {
		handleError(c, err, "UpdateProfileTimezone")
		return
	}
	c.JSON(http.StatusOK, profile)
}
