package handlers

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/saia-da-torre/rsvp/internal/auth"
	"github.com/saia-da-torre/rsvp/internal/config"
	"github.com/saia-da-torre/rsvp/internal/database"
	"github.com/saia-da-torre/rsvp/internal/models"
	"github.com/saia-da-torre/rsvp/internal/store"
	"gorm.io/gorm"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var testEvent = config.Event{
	Name:    "Saia da Torre",
	Tagline: "Convite Exclusivo",
	Date:    "06/03/2026",
	Time:    "18h",
	Venue:   "Na loja Zem Multimarcas",
	Address: "R. Tesouro, 355 - Vale do Sol, Campo Verde - MT",
}

type fakeNotifier struct {
	invites []models.Invite
}

func (n *fakeNotifier) NotifyInvite(event string, invite models.Invite) error {
	n.invites = append(n.invites, invite)
	return nil
}

type testEnv struct {
	db           *gorm.DB
	auth         *auth.AuthHandler
	registration *RegistrationHandler
	apiKeys      *APIKeyHandler
	notifier     *fakeNotifier
	organizer    models.Organizer
}

func newTestEnv(t *testing.T, migrate bool) *testEnv {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "handlers.db"))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	env := &testEnv{db: db, notifier: &fakeNotifier{}}
	if migrate {
		if err := database.Migrate(db); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}
		env.organizer = models.Organizer{DiscordID: "organizer-1", Username: "org"}
		db.Create(&env.organizer)
		db.Create(&models.APIKey{OrganizerID: env.organizer.ID, Key: "test-key", Name: "tests"})
	}

	env.auth = auth.NewAuthHandler(&config.Config{JWTSecret: "test-secret"}, db)
	env.registration = NewRegistrationHandler(store.NewInviteStore(db), env.notifier, env.auth, testEvent, time.UTC, noopLogger)
	env.apiKeys = NewAPIKeyHandler(db, env.auth)
	return env
}

func (e *testEnv) seedInvite(t *testing.T, name, phone, nationalID string, createdAt time.Time) {
	t.Helper()
	invite := models.Invite{Name: name, Phone: phone, NationalID: nationalID, CreatedAt: createdAt}
	if err := e.db.Create(&invite).Error; err != nil {
		t.Fatalf("failed to seed invite: %v", err)
	}
}
