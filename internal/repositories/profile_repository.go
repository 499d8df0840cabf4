package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	Save(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	// FindLatest returns the most recently created profile. The profile is
	// conceptually a singleton; recency resolves the case where more than
	// one row exists.
	FindLatest(db *gorm.DB) (*models.Profile, error)
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) Save(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}

func (r *profileRepository) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	if !validID(id) {
		return nil, ErrProfileNotFound
	}

	var profile models.Profile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	if !validID(userID) {
		return nil, ErrProfileNotFound
	}

	var profile models.Profile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindLatest(db *gorm.DB) (*models.Profile, error) {
	var profile models.Profile
	err := db.Order("created_at DESC").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
