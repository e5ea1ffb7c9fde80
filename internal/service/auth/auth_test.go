package auth

import (
	"context"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/repo/enttest"
	entuser "github.com/bystrodel/backend/internal/repo/user"
)

func newTestDB(t *testing.T) *repo.Client {
	t.Helper()

	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordLoginStampsTimestamp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u, err := db.User.Create().
		SetEmail("ivan@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleClient).
		Save(ctx)
	require.NoError(t, err)
	require.Nil(t, u.LastLoginAt)

	s := &authService{db: db}
	s.recordLogin(ctx, u)

	got, err := db.User.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.False(t, got.LastLoginAt.IsZero())
}

func TestRecordLoginSwallowsWriteFailure(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u, err := db.User.Create().
		SetEmail("ivan@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleClient).
		Save(ctx)
	require.NoError(t, err)

	// The stamp races with account deletion; a failed write is logged
	// and the login continues.
	require.NoError(t, db.User.DeleteOneID(u.ID).Exec(ctx))

	s := &authService{db: db}
	assert.NotPanics(t, func() { s.recordLogin(ctx, u) })
}
