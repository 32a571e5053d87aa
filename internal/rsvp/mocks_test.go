package rsvp

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/saia-da-torre/rsvp/internal/models"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockStore struct {
	FindFunc   func(ctx context.Context, nationalID string) ([]models.Invite, error)
	InsertFunc func(ctx context.Context, invite *models.Invite) error
	ListFunc   func(ctx context.Context) ([]models.Invite, error)

	findCalls   int
	insertCalls int
	listCalls   int
	inserted    []models.Invite
}

func (m *mockStore) FindByNationalID(ctx context.Context, nationalID string) ([]models.Invite, error) {
	m.findCalls++
	if m.FindFunc != nil {
		return m.FindFunc(ctx, nationalID)
	}
	return nil, nil
}

func (m *mockStore) Insert(ctx context.Context, invite *models.Invite) error {
	m.insertCalls++
	if m.InsertFunc != nil {
		if err := m.InsertFunc(ctx, invite); err != nil {
			return err
		}
	}
	if invite.ID == "" {
		invite.ID = "generated-id"
	}
	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now()
	}
	m.inserted = append(m.inserted, *invite)
	return nil
}

func (m *mockStore) ListAll(ctx context.Context) ([]models.Invite, error) {
	m.listCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}
