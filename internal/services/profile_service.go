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

type ProfileService interface {
	GetProfile(ctx context.Context, db *gorm.DB) (*models.Profile, error)
	GetProfileByID(ctx context.Context, db *gorm.DB, id string) (*models.Profile, error)
	// Upsert creates the profile on first call and replaces it afterwards,
	// keyed by the owning user.
	Upsert(ctx context.Context, db *gorm.DB, userID string, req *dto.UpsertProfileRequest) (*models.Profile, bool, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, db *gorm.DB) (*models.Profile, error) {
	profile, err := s.profileRepo.FindLatest(db)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) GetProfileByID(ctx context.Context, db *gorm.DB, id string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) Upsert(ctx context.Context, db *gorm.DB, userID string, req *dto.UpsertProfileRequest) (*models.Profile, bool, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, false, apperrors.InternalError(err)
	}

	created := false
	if profile == nil {
		profile = &models.Profile{UserID: userID}
		created = true
	}

	s.assign(profile, req)

	if created {
		err = s.profileRepo.Create(db, profile)
	} else {
		err = s.profileRepo.Save(db, profile)
	}
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}

	return profile, created, nil
}

func (s *profileService) assign(profile *models.Profile, req *dto.UpsertProfileRequest) {
	profile.Name = req.Name
	profile.Title = req.Title
	profile.Bio = req.Bio
	profile.Avatar = req.Avatar
	profile.Location = req.Location
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.Website = req.Website
	profile.GithubUsername = req.GithubUsername
	profile.Social = models.SocialLinks{
		GitHub:    req.Social.GitHub,
		LinkedIn:  req.Social.LinkedIn,
		Twitter:   req.Social.Twitter,
		Instagram: req.Social.Instagram,
	}
}
