package order

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bystrodel/backend/internal/repo"
	entmsg "github.com/bystrodel/backend/internal/repo/chatmessage"
	"github.com/bystrodel/backend/internal/repo/enttest"
	entorder "github.com/bystrodel/backend/internal/repo/order"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()

	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })

	return New(db, nil), db
}

func createTestOrder(t *testing.T, svc Service) *repo.Order {
	t.Helper()

	o, err := svc.Create(context.Background(), CreateRequest{
		Service:     "Разработка сайта",
		ClientName:  "Иван Петров",
		ClientEmail: "ivan@example.com",
		Details:     "Нужен лендинг для кофейни.",
	})
	require.NoError(t, err)
	return o
}

func TestCreateSeedsWelcomeMessage(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	o := createTestOrder(t, svc)

	assert.Equal(t, entorder.StatusNew, o.Status)
	assert.True(t, o.CanDiscuss)
	assert.False(t, o.CanDownload)
	assert.True(t, o.AdminUnread, "a fresh order is news for the managers")
	assert.False(t, o.ClientUnread)
	assert.Equal(t, 1, o.MessageSeq, "the welcome message occupies seq 1")

	msgs, err := db.ChatMessage.Query().
		Where(entmsg.ThreadTypeEQ(entmsg.ThreadTypeOrder), entmsg.ThreadID(o.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	welcome := msgs[0]
	assert.Equal(t, 1, welcome.Seq)
	assert.Equal(t, entmsg.SenderManager, welcome.Sender)
	require.NotNil(t, welcome.Body)
	assert.Contains(t, *welcome.Body, "Иван Петров")
	assert.Contains(t, *welcome.Body, "Разработка сайта")
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	o := createTestOrder(t, svc)
	require.True(t, o.AdminUnread)

	require.NoError(t, svc.MarkRead(ctx, o.ID, "manager"))

	got, err := db.Order.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, got.AdminUnread)
	firstVersion := got.Version

	// Clearing an already-clear flag must not touch the record.
	require.NoError(t, svc.MarkRead(ctx, o.ID, "manager"))

	got, err = db.Order.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, got.AdminUnread)
	assert.Equal(t, firstVersion, got.Version, "repeat MarkRead must not bump the version")
}

func TestMarkReadRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o := createTestOrder(t, svc)

	assert.ErrorIs(t, svc.MarkRead(ctx, o.ID, "moderator"), ErrInvalidSide)

	missing := uuid.Must(uuid.NewV7())
	assert.ErrorIs(t, svc.MarkRead(ctx, missing, "client"), ErrNotFound)
}

func TestPurgeFinishedPreservesRemainder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	completed := createTestOrder(t, svc)
	cancelled := createTestOrder(t, svc)
	active := createTestOrder(t, svc)

	_, err := svc.UpdateStatus(ctx, completed.ID, string(entorder.StatusCompleted))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, cancelled.ID, string(entorder.StatusCancelled))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, active.ID, string(entorder.StatusInProgress))
	require.NoError(t, err)

	n, err := svc.PurgeFinished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := db.Order.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, active.ID, remaining[0].ID)

	// The survivor keeps its chat thread; the purged threads are gone.
	kept, err := db.ChatMessage.Query().
		Where(entmsg.ThreadTypeEQ(entmsg.ThreadTypeOrder), entmsg.ThreadID(active.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)

	orphaned, err := db.ChatMessage.Query().
		Where(entmsg.ThreadTypeEQ(entmsg.ThreadTypeOrder), entmsg.ThreadIDIn(completed.ID, cancelled.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, orphaned)
}

func TestPurgeFinishedEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	n, err := svc.PurgeFinished(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateStatusCompletedUnlocksDownload(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o := createTestOrder(t, svc)
	require.False(t, o.CanDownload)

	got, err := svc.UpdateStatus(ctx, o.ID, string(entorder.StatusCompleted))
	require.NoError(t, err)
	assert.True(t, got.CanDownload)
	assert.True(t, got.ClientUnread, "a status change is news for the client")
}
