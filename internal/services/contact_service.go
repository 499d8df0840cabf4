package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type ContactService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateContactRequest) (*models.ContactMessage, error)
	List(ctx context.Context, db *gorm.DB) ([]models.ContactMessage, error)
	// Get marks the message as read on first retrieval and persists that
	// before returning; later calls are no-ops for the flag.
	Get(ctx context.Context, db *gorm.DB, id string) (*models.ContactMessage, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
	sender      email.Sender // nil when notifications are disabled
}

func NewContactService(contactRepo repositories.ContactRepository, sender email.Sender) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		sender:      sender,
	}
}

func (s *contactService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		IsRead:  false,
	}

	if err := s.contactRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Notification is best effort; a broken relay must not lose the message.
	if s.sender != nil {
		if err := s.sender.SendContactNotification(email.ContactNotificationData{
			Name:    message.Name,
			Email:   message.Email,
			Subject: message.Subject,
			Message: message.Message,
		}); err != nil {
			logger.CtxWithError(ctx, "contact notification email failed", err, "contact_id", message.ID)
		}
	}

	return message, nil
}

func (s *contactService) List(ctx context.Context, db *gorm.DB) ([]models.ContactMessage, error) {
	messages, err := s.contactRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

func (s *contactService) Get(ctx context.Context, db *gorm.DB, id string) (*models.ContactMessage, error) {
	message, err := s.contactRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !message.IsRead {
		message.IsRead = true
		if err := s.contactRepo.Save(db, message); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return message, nil
}

func (s *contactService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.contactRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return apperrors.ErrContactNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
