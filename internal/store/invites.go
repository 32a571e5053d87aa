// Package store is the persistence client for invites.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/saia-da-torre/rsvp/internal/models"
	"gorm.io/gorm"
)

type InviteStore struct {
	db *gorm.DB
}

func NewInviteStore(db *gorm.DB) *InviteStore {
	return &InviteStore{db: db}
}

// FindByNationalID returns at most one invite registered with nationalID.
func (s *InviteStore) FindByNationalID(ctx context.Context, nationalID string) ([]models.Invite, error) {
	var invites []models.Invite
	err := s.db.WithContext(ctx).
		Select("cpf").
		Where("cpf = ?", nationalID).
		Limit(1).
		Find(&invites).Error
	if err != nil {
		return nil, classify(err, NewFailedToFetchError("failed to look up national ID", err))
	}
	return invites, nil
}

// Insert stores invite. The ID and CreatedAt are filled in by the store.
func (s *InviteStore) Insert(ctx context.Context, invite *models.Invite) error {
	err := s.db.WithContext(ctx).Create(invite).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return NewAlreadyExistsError("national ID already registered", err)
	}
	return classify(err, NewFailedToWriteError("failed to insert invite", err))
}

// ListAll returns every invite, newest first.
func (s *InviteStore) ListAll(ctx context.Context) ([]models.Invite, error) {
	var invites []models.Invite
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&invites).Error; err != nil {
		return nil, classify(err, NewFailedToFetchError("failed to list invites", err))
	}
	return invites, nil
}

func classify(err error, fallback *Error) *Error {
	if strings.Contains(err.Error(), "no such table") {
		return NewSchemaMissingError("invites table does not exist", err)
	}
	return fallback
}
