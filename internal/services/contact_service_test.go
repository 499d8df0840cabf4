package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type fakeSender struct {
	sent []email.ContactNotificationData
	err  error
}

func (f *fakeSender) Send(msg *email.Email) error {
	return f.err
}

func (f *fakeSender) SendContactNotification(data email.ContactNotificationData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func TestContactServiceCreateNotifies(t *testing.T) {
	db := openTestDB(t)
	sender := &fakeSender{}
	svc := NewContactService(repositories.NewContactRepository(), sender)
	ctx := context.Background()

	message, err := svc.Create(ctx, db, &dto.CreateContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	require.NoError(t, err)
	assert.False(t, message.IsRead)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Visitor", sender.sent[0].Name)
	assert.Equal(t, "Hello", sender.sent[0].Subject)
}

func TestContactServiceCreateSurvivesBrokenRelay(t *testing.T) {
	db := openTestDB(t)
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := NewContactService(repositories.NewContactRepository(), sender)

	message, err := svc.Create(context.Background(), db, &dto.CreateContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	require.NoError(t, err, "a failing notification must not lose the message")

	var stored models.ContactMessage
	require.NoError(t, db.First(&stored, "id = ?", message.ID).Error)
}

func TestContactServiceCreateWithoutSender(t *testing.T) {
	db := openTestDB(t)
	svc := NewContactService(repositories.NewContactRepository(), nil)

	_, err := svc.Create(context.Background(), db, &dto.CreateContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	assert.NoError(t, err)
}

func TestContactServiceGetFlipsIsReadOnce(t *testing.T) {
	db := openTestDB(t)
	svc := NewContactService(repositories.NewContactRepository(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreateContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	require.NoError(t, err)

	first, err := svc.Get(ctx, db, created.ID)
	require.NoError(t, err)
	assert.True(t, first.IsRead)

	var stored models.ContactMessage
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.True(t, stored.IsRead, "the flip is persisted")

	firstUpdatedAt := stored.UpdatedAt

	second, err := svc.Get(ctx, db, created.ID)
	require.NoError(t, err)
	assert.True(t, second.IsRead)

	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, firstUpdatedAt, stored.UpdatedAt, "later reads do not rewrite the row")
}

func TestContactServiceGetUnknownID(t *testing.T) {
	db := openTestDB(t)
	svc := NewContactService(repositories.NewContactRepository(), nil)

	_, err := svc.Get(context.Background(), db, "missing")
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}
