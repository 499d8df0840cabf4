package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(db *gorm.DB, skill *models.Skill) error
	Save(db *gorm.DB, skill *models.Skill) error
	FindByID(db *gorm.DB, id string) (*models.Skill, error)
	FindAll(db *gorm.DB) ([]models.Skill, error)
	Delete(db *gorm.DB, id string) error
}

type skillRepository struct{}

func NewSkillRepository() SkillRepository {
	return &skillRepository{}
}

func (r *skillRepository) Create(db *gorm.DB, skill *models.Skill) error {
	return db.Create(skill).Error
}

func (r *skillRepository) Save(db *gorm.DB, skill *models.Skill) error {
	return db.Save(skill).Error
}

func (r *skillRepository) FindByID(db *gorm.DB, id string) (*models.Skill, error) {
	if !validID(id) {
		return nil, ErrSkillNotFound
	}

	var skill models.Skill
	err := db.First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) FindAll(db *gorm.DB) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := db.Order("order_index ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) Delete(db *gorm.DB, id string) error {
	if !validID(id) {
		return ErrSkillNotFound
	}

	result := db.Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
