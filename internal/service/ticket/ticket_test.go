package ticket

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/repo/enttest"
	entticket "github.com/bystrodel/backend/internal/repo/ticket"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()

	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })

	return New(db, nil), db
}

func createTestTicket(t *testing.T, svc Service) *repo.Ticket {
	t.Helper()

	tk, err := svc.Create(context.Background(), CreateRequest{
		Name:    "Анна Смирнова",
		Email:   "anna@example.com",
		Subject: "Не открывается сайт",
		Message: "Страница выдаёт ошибку 502.",
	})
	require.NoError(t, err)
	return tk
}

func TestCreateMarksAdminUnread(t *testing.T) {
	svc, _ := newTestService(t)

	tk := createTestTicket(t, svc)

	assert.Equal(t, entticket.StatusNew, tk.Status)
	assert.True(t, tk.AdminUnread)
	assert.False(t, tk.ClientUnread)
	assert.Zero(t, tk.MessageSeq)
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tk := createTestTicket(t, svc)

	require.NoError(t, svc.MarkRead(ctx, tk.ID, "manager"))

	got, err := db.Ticket.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.False(t, got.AdminUnread)
	firstVersion := got.Version

	require.NoError(t, svc.MarkRead(ctx, tk.ID, "manager"))

	got, err = db.Ticket.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, firstVersion, got.Version, "repeat MarkRead must not bump the version")

	assert.ErrorIs(t, svc.MarkRead(ctx, tk.ID, "support"), ErrInvalidSide)
	assert.ErrorIs(t, svc.MarkRead(ctx, uuid.Must(uuid.NewV7()), "client"), ErrNotFound)
}

func TestPurgeFinishedPreservesOpenTickets(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	completed := createTestTicket(t, svc)
	rejected := createTestTicket(t, svc)
	open := createTestTicket(t, svc)

	_, err := svc.UpdateStatus(ctx, completed.ID, string(entticket.StatusCompleted))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, rejected.ID, string(entticket.StatusRejected))
	require.NoError(t, err)

	n, err := svc.PurgeFinished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := db.Ticket.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, open.ID, remaining[0].ID)
}
