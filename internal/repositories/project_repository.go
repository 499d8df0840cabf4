package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	Save(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindAll(db *gorm.DB) ([]models.Project, error)
	Delete(db *gorm.DB, id string) error
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *projectRepository) Save(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *projectRepository) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	if !validID(id) {
		return nil, ErrProjectNotFound
	}

	var project models.Project
	err := db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindAll(db *gorm.DB) ([]models.Project, error) {
	projects := []models.Project{}
	err := db.Order("order_index ASC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Delete(db *gorm.DB, id string) error {
	if !validID(id) {
		return ErrProjectNotFound
	}

	result := db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
