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

type EducationService interface {
	List(ctx context.Context, db *gorm.DB) ([]models.Education, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Education, error)
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.EducationRequest) (*models.Education, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.EducationRequest) (*models.Education, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type educationService struct {
	educationRepo repositories.EducationRepository
}

func NewEducationService(educationRepo repositories.EducationRepository) EducationService {
	return &educationService{educationRepo: educationRepo}
}

func (s *educationService) List(ctx context.Context, db *gorm.DB) ([]models.Education, error) {
	entries, err := s.educationRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *educationService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Education, error) {
	entry, err := s.educationRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return nil, apperrors.ErrEducationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *educationService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.EducationRequest) (*models.Education, error) {
	entry := &models.Education{UserID: userID}
	s.assign(entry, req)

	if err := s.educationRepo.Create(db, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *educationService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.EducationRequest) (*models.Education, error) {
	entry, err := s.educationRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return nil, apperrors.ErrEducationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	s.assign(entry, req)

	if err := s.educationRepo.Save(db, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *educationService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.educationRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return apperrors.ErrEducationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *educationService) assign(entry *models.Education, req *dto.EducationRequest) {
	entry.School = req.School
	entry.Degree = req.Degree
	entry.FieldOfStudy = req.FieldOfStudy
	entry.From = req.From
	entry.To = req.To
	entry.Current = req.Current
	entry.Description = req.Description
	entry.OrderIndex = req.Order
}
