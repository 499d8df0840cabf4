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

type SkillService interface {
	List(ctx context.Context, db *gorm.DB) ([]models.Skill, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Skill, error)
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.SkillRequest) (*models.Skill, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.SkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type skillService struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) List(ctx context.Context, db *gorm.DB) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skills, nil
}

func (s *skillService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *skillService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.SkillRequest) (*models.Skill, error) {
	skill := &models.Skill{UserID: userID}
	s.assign(skill, req)

	if err := s.skillRepo.Create(db, skill); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.SkillRequest) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	s.assign(skill, req)

	if err := s.skillRepo.Save(db, skill); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.skillRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrSkillNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *skillService) assign(skill *models.Skill, req *dto.SkillRequest) {
	skill.Name = req.Name
	skill.Level = req.Level
	skill.Category = models.SkillCategory(req.Category)
	skill.Icon = req.Icon
	skill.OrderIndex = req.Order
}
