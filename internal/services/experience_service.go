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

type ExperienceService interface {
	List(ctx context.Context, db *gorm.DB) ([]models.Experience, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Experience, error)
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.ExperienceRequest) (*models.Experience, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.ExperienceRequest) (*models.Experience, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type experienceService struct {
	experienceRepo repositories.ExperienceRepository
}

func NewExperienceService(experienceRepo repositories.ExperienceRepository) ExperienceService {
	return &experienceService{experienceRepo: experienceRepo}
}

func (s *experienceService) List(ctx context.Context, db *gorm.DB) ([]models.Experience, error) {
	entries, err := s.experienceRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *experienceService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Experience, error) {
	entry, err := s.experienceRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *experienceService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.ExperienceRequest) (*models.Experience, error) {
	entry := &models.Experience{UserID: userID}
	s.assign(entry, req)

	if err := s.experienceRepo.Create(db, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *experienceService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.ExperienceRequest) (*models.Experience, error) {
	entry, err := s.experienceRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	s.assign(entry, req)

	if err := s.experienceRepo.Save(db, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *experienceService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.experienceRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.ErrExperienceNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *experienceService) assign(entry *models.Experience, req *dto.ExperienceRequest) {
	entry.Title = req.Title
	entry.Company = req.Company
	entry.Location = req.Location
	entry.From = req.From
	entry.To = req.To
	entry.Current = req.Current
	entry.Description = req.Description
	entry.OrderIndex = req.Order
}
