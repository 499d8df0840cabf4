package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	ProfileHandler    *ProfileHandler
	ProjectHandler    *ProjectHandler
	SkillHandler      *SkillHandler
	ExperienceHandler *ExperienceHandler
	EducationHandler  *EducationHandler
	ContactHandler    *ContactHandler
	ResumeHandler     *ResumeHandler
}
