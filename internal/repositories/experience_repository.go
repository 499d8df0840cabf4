package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

var ErrExperienceNotFound = errors.New("experience not found")

type ExperienceRepository interface {
	Create(db *gorm.DB, experience *models.Experience) error
	Save(db *gorm.DB, experience *models.Experience) error
	FindByID(db *gorm.DB, id string) (*models.Experience, error)
	FindAll(db *gorm.DB) ([]models.Experience, error)
	Delete(db *gorm.DB, id string) error
}

type experienceRepository struct{}

func NewExperienceRepository() ExperienceRepository {
	return &experienceRepository{}
}

func (r *experienceRepository) Create(db *gorm.DB, experience *models.Experience) error {
	return db.Create(experience).Error
}

func (r *experienceRepository) Save(db *gorm.DB, experience *models.Experience) error {
	return db.Save(experience).Error
}

func (r *experienceRepository) FindByID(db *gorm.DB, id string) (*models.Experience, error) {
	if !validID(id) {
		return nil, ErrExperienceNotFound
	}

	var experience models.Experience
	err := db.First(&experience, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) FindAll(db *gorm.DB) ([]models.Experience, error) {
	experiences := []models.Experience{}
	err := db.Order("order_index ASC").Find(&experiences).Error
	return experiences, err
}

func (r *experienceRepository) Delete(db *gorm.DB, id string) error {
	if !validID(id) {
		return ErrExperienceNotFound
	}

	result := db.Delete(&models.Experience{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}
