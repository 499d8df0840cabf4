package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")
	{
		profile.GET("", h.GetProfile)
	}

	admin := r.Group("/profile")
	admin.Use(middleware.AdminOnly()...)
	{
		admin.GET("/:id", h.GetProfileByID)
		admin.POST("", h.UpsertProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	profile, err := h.profileService.GetProfileByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates the profile on first submission (201) and fully
// replaces it afterwards (200), keyed by the authenticated owner.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.UpsertProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, created, err := h.profileService.Upsert(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, profile)
}
