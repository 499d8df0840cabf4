package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/handlers"
)

// RegisterRoutes mounts every handler under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.ExperienceHandler.RegisterRoutes(api)
		appHandlers.EducationHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.ResumeHandler.RegisterRoutes(api)
	}
}
