package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type ProjectService interface {
	List(ctx context.Context, db *gorm.DB) ([]models.Project, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Project, error)
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.ProjectRequest) (*models.Project, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.ProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type projectService struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) List(ctx context.Context, db *gorm.DB) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.ProjectRequest) (*models.Project, error) {
	project := &models.Project{UserID: userID}
	s.assign(project, req)

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// Update applies full PUT semantics: every writable field is taken from the
// request, so omitted fields reset to their zero values.
func (s *projectService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.ProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	s.assign(project, req)

	if err := s.projectRepo.Save(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.projectRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *projectService) assign(project *models.Project, req *dto.ProjectRequest) {
	project.Title = req.Title
	project.Description = req.Description
	project.Image = req.Image
	project.Technologies = models.StringList(req.Technologies)
	project.GithubURL = req.GithubURL
	project.LiveURL = req.LiveURL
	project.Featured = req.Featured
	project.OrderIndex = req.Order
}
