package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ExperienceHandler struct {
	*BaseHandler
	experienceService services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler:       base,
		experienceService: experienceService,
	}
}

func (h *ExperienceHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/experience")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	admin := r.Group("/experience")
	admin.Use(middleware.AdminOnly()...)
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.experienceService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	entry, err := h.experienceService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.ExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.experienceService.Create(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req dto.ExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.experienceService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience removed"})
}
