package database

import (
	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.ContactMessage{},
	)
}
