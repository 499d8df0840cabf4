package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(r *gin.RouterGroup) {
	resume := r.Group("/resume")
	{
		resume.GET("/generate", h.Generate)
	}
}

// Generate renders the resume PDF and streams it as a download.
func (h *ResumeHandler) Generate(c *gin.Context) {
	path, err := h.resumeService.Generate(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.FileAttachment(path, "resume.pdf")
}
