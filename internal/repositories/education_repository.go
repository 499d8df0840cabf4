package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

var ErrEducationNotFound = errors.New("education not found")

type EducationRepository interface {
	Create(db *gorm.DB, education *models.Education) error
	Save(db *gorm.DB, education *models.Education) error
	FindByID(db *gorm.DB, id string) (*models.Education, error)
	FindAll(db *gorm.DB) ([]models.Education, error)
	Delete(db *gorm.DB, id string) error
}

type educationRepository struct{}

func NewEducationRepository() EducationRepository {
	return &educationRepository{}
}

func (r *educationRepository) Create(db *gorm.DB, education *models.Education) error {
	return db.Create(education).Error
}

func (r *educationRepository) Save(db *gorm.DB, education *models.Education) error {
	return db.Save(education).Error
}

func (r *educationRepository) FindByID(db *gorm.DB, id string) (*models.Education, error) {
	if !validID(id) {
		return nil, ErrEducationNotFound
	}

	var education models.Education
	err := db.First(&education, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, err
	}
	return &education, nil
}

func (r *educationRepository) FindAll(db *gorm.DB) ([]models.Education, error) {
	entries := []models.Education{}
	err := db.Order("order_index ASC").Find(&entries).Error
	return entries, err
}

func (r *educationRepository) Delete(db *gorm.DB, id string) error {
	if !validID(id) {
		return ErrEducationNotFound
	}

	result := db.Delete(&models.Education{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEducationNotFound
	}
	return nil
}
