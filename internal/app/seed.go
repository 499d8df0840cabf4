package app

import (
	"fmt"

	"gorm.io/gorm"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

// SeedFirstAdmin creates the initial admin account when no admin exists yet.
// Without it there is no way to log in to the console.
func SeedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	userRepo := repositories.NewUserRepository()

	count, err := userRepo.CountByRole(gormDB, models.UserRoleAdmin)
	if err != nil {
		return fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("No admin user exists and admin credentials are not configured")
		return nil
	}

	if err := auth.ValidatePassword(cfg.Admin.Password); err != nil {
		return fmt.Errorf("admin password rejected: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := userRepo.Create(gormDB, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("Seeded first admin user", "email", admin.Email)
	return nil
}
