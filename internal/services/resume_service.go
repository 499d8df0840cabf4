package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/resume"
)

type ResumeService interface {
	// Generate renders the resume PDF from the current profile and skills
	// and returns the path of the written file.
	Generate(ctx context.Context, db *gorm.DB) (string, error)
}

type resumeService struct {
	profileRepo repositories.ProfileRepository
	skillRepo   repositories.SkillRepository
	renderer    *resume.Renderer
}

func NewResumeService(profileRepo repositories.ProfileRepository, skillRepo repositories.SkillRepository, renderer *resume.Renderer) ResumeService {
	return &resumeService{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		renderer:    renderer,
	}
}

func (s *resumeService) Generate(ctx context.Context, db *gorm.DB) (string, error) {
	profile, err := s.profileRepo.FindLatest(db)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return "", apperrors.ErrProfileNotFound
		}
		return "", apperrors.InternalError(err)
	}

	skills, err := s.skillRepo.FindAll(db)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	data := resume.Data{
		Name:     profile.Name,
		Title:    profile.Title,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Location: profile.Location,
	}
	for _, skill := range skills {
		data.Skills = append(data.Skills, skill.Name)
	}

	path, err := s.renderer.Render(data)
	if err != nil {
		if errors.Is(err, resume.ErrTemplateMissing) {
			return "", apperrors.ErrResumeNotFound
		}
		return "", apperrors.ErrResumeRendering
	}
	return path, nil
}
