package app

import (
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/resume"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/validator"
)

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	skillRepo := repositories.NewSkillRepository()
	experienceRepo := repositories.NewExperienceRepository()
	educationRepo := repositories.NewEducationRepository()
	contactRepo := repositories.NewContactRepository()

	var sender email.Sender
	if cfg.Email.Enabled {
		smtpSender, err := email.NewSMTPSender(email.Config{
			SMTPHost:    cfg.Email.SMTPHost,
			SMTPPort:    cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUsername,
			Password:    cfg.Email.SMTPPassword,
			FromEmail:   cfg.Email.FromEmail,
			FromName:    cfg.Email.FromName,
			NotifyEmail: cfg.Email.NotifyEmail,
		})
		if err != nil {
			logger.Warn("Email sender disabled", "error", err)
		} else {
			sender = smtpSender
		}
	}

	renderer := resume.NewRenderer(
		cfg.Resume.TemplatePath,
		cfg.Resume.OutputPath,
		cfg.Resume.BinaryPath,
	)

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(userRepo),
		ProfileService:    services.NewProfileService(profileRepo),
		ProjectService:    services.NewProjectService(projectRepo),
		SkillService:      services.NewSkillService(skillRepo),
		ExperienceService: services.NewExperienceService(experienceRepo),
		EducationService:  services.NewEducationService(educationRepo),
		ContactService:    services.NewContactService(contactRepo, sender),
		ResumeService:     services.NewResumeService(profileRepo, skillRepo, renderer),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(base, sc.AuthService),
		ProfileHandler:    handlers.NewProfileHandler(base, sc.ProfileService),
		ProjectHandler:    handlers.NewProjectHandler(base, sc.ProjectService),
		SkillHandler:      handlers.NewSkillHandler(base, sc.SkillService),
		ExperienceHandler: handlers.NewExperienceHandler(base, sc.ExperienceService),
		EducationHandler:  handlers.NewEducationHandler(base, sc.EducationService),
		ContactHandler:    handlers.NewContactHandler(base, sc.ContactService),
		ResumeHandler:     handlers.NewResumeHandler(base, sc.ResumeService),
	}
}
