package repositories

import (
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactRepository interface {
	Create(db *gorm.DB, message *models.ContactMessage) error
	Save(db *gorm.DB, message *models.ContactMessage) error
	FindByID(db *gorm.DB, id string) (*models.ContactMessage, error)
	FindAll(db *gorm.DB) ([]models.ContactMessage, error)
	Delete(db *gorm.DB, id string) error
}

type contactRepository struct{}

func NewContactRepository() ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Create(db *gorm.DB, message *models.ContactMessage) error {
	return db.Create(message).Error
}

func (r *contactRepository) Save(db *gorm.DB, message *models.ContactMessage) error {
	return db.Save(message).Error
}

func (r *contactRepository) FindByID(db *gorm.DB, id string) (*models.ContactMessage, error) {
	if !validID(id) {
		return nil, ErrContactNotFound
	}

	var message models.ContactMessage
	err := db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *contactRepository) FindAll(db *gorm.DB) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *contactRepository) Delete(db *gorm.DB, id string) error {
	if !validID(id) {
		return ErrContactNotFound
	}

	result := db.Delete(&models.ContactMessage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
