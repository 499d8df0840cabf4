package services

// ServiceContainer bundles every service for wiring in app and tests.
type ServiceContainer struct {
	AuthService       AuthService
	ProfileService    ProfileService
	ProjectService    ProjectService
	SkillService      SkillService
	ExperienceService ExperienceService
	EducationService  EducationService
	ContactService    ContactService
	ResumeService     ResumeService
}
