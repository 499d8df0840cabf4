package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Anyone may submit a message; reading and deleting is admin-only.
	public := r.Group("/contact")
	{
		public.POST("", h.Create)
	}

	admin := r.Group("/contact")
	admin.Use(middleware.AdminOnly()...)
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.contactService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ContactHandler) Get(c *gin.Context) {
	message, err := h.contactService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact removed"})
}
