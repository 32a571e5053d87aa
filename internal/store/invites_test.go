package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/saia-da-torre/rsvp/internal/database"
	"github.com/saia-da-torre/rsvp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to connect database")
	if migrate {
		require.NoError(t, database.Migrate(db))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestInviteStore_InsertAndFind(t *testing.T) {
	s := NewInviteStore(openTestDB(t, true))
	ctx := context.Background()

	found, err := s.FindByNationalID(ctx, "123.456.789-01")
	require.NoError(t, err)
	assert.Empty(t, found)

	invite := &models.Invite{Name: "Maria", Phone: "(11) 98765-4321", NationalID: "123.456.789-01"}
	require.NoError(t, s.Insert(ctx, invite))
	assert.NotEmpty(t, invite.ID, "store should assign an ID")
	assert.False(t, invite.CreatedAt.IsZero(), "store should assign CreatedAt")

	found, err = s.FindByNationalID(ctx, "123.456.789-01")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "123.456.789-01", found[0].NationalID)
}

func TestInviteStore_InsertDuplicate(t *testing.T) {
	s := NewInviteStore(openTestDB(t, true))
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, &models.Invite{Name: "A", Phone: "(11) 11111-1111", NationalID: "111.111.111-11"}))
	err := s.Insert(ctx, &models.Invite{Name: "B", Phone: "(22) 22222-2222", NationalID: "111.111.111-11"})

	require.Error(t, err)
	assert.True(t, HasReason(err, REASON_ALREADY_EXISTS), "got %v", err)
}

func TestInviteStore_ListAllNewestFirst(t *testing.T) {
	s := NewInviteStore(openTestDB(t, true))
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		invite := &models.Invite{
			Name:       name,
			Phone:      "(11) 98765-432" + string(rune('0'+i)),
			NationalID: "123.456.789-0" + string(rune('0'+i)),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, s.Insert(ctx, invite))
	}

	invites, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 3)
	assert.Equal(t, "third", invites[0].Name)
	assert.Equal(t, "second", invites[1].Name)
	assert.Equal(t, "first", invites[2].Name)
}

func TestInviteStore_SchemaMissing(t *testing.T) {
	s := NewInviteStore(openTestDB(t, false))
	ctx := context.Background()

	err := s.Insert(ctx, &models.Invite{Name: "A", Phone: "(11) 11111-1111", NationalID: "111.111.111-11"})
	assert.True(t, HasReason(err, REASON_SCHEMA_MISSING), "insert: got %v", err)

	_, err = s.FindByNationalID(ctx, "111.111.111-11")
	assert.True(t, HasReason(err, REASON_SCHEMA_MISSING), "find: got %v", err)

	_, err = s.ListAll(ctx)
	assert.True(t, HasReason(err, REASON_SCHEMA_MISSING), "list: got %v", err)
}
