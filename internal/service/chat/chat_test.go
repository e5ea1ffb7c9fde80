package chat

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
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/ticket"
)

func strptr(s string) *string { return &s }

// stubPresence satisfies presence.Service without Redis; typing state is
// irrelevant to message persistence.
type stubPresence struct{}

func (stubPresence) SetTyping(context.Context, string, uuid.UUID, string) error   { return nil }
func (stubPresence) ClearTyping(context.Context, string, uuid.UUID, string) error { return nil }
func (stubPresence) Typing(context.Context, string, uuid.UUID) (bool, bool, error) {
	return false, false, nil
}

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()

	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })

	return New(db, nil, stubPresence{}), db
}

func createTestOrder(t *testing.T, db *repo.Client) uuid.UUID {
	t.Helper()

	o, err := order.New(db, nil).Create(context.Background(), order.CreateRequest{
		Service:     "Разработка сайта",
		ClientName:  "Иван Петров",
		ClientEmail: "ivan@example.com",
		Details:     "Нужен лендинг для кофейни.",
	})
	require.NoError(t, err)
	return o.ID
}

func TestAppendAllocatesGaplessSeq(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	orderID := createTestOrder(t, db)

	// The welcome message occupies seq 1; a client reply follows at 2.
	m1, err := svc.Append(ctx, AppendRequest{
		ThreadType: "order",
		ThreadID:   orderID,
		Sender:     "client",
		Body:       strptr("Когда начнёте работу?"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m1.Seq)

	o, err := db.Order.Get(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, o.AdminUnread, "a client message is news for the managers")

	m2, err := svc.Append(ctx, AppendRequest{
		ThreadType: "order",
		ThreadID:   orderID,
		Sender:     "manager",
		Body:       strptr("Начинаем завтра."),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m2.Seq)

	o, err = db.Order.Get(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, o.ClientUnread, "a manager message is news for the client")
	assert.Equal(t, 3, o.MessageSeq)

	msgs, err := svc.ListMessages(ctx, "order", orderID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	for i, m := range msgs {
		assert.Equal(t, i+1, m.Seq)
	}
}

func TestListMessagesAfterSeq(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	orderID := createTestOrder(t, db)

	_, err := svc.Append(ctx, AppendRequest{
		ThreadType: "order",
		ThreadID:   orderID,
		Sender:     "client",
		Body:       strptr("Вопрос по срокам."),
	})
	require.NoError(t, err)

	msgs, err := svc.ListMessages(ctx, "order", orderID, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, 2, msgs[0].Seq)

	msgs, err = svc.ListMessages(ctx, "order", orderID, 2)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestAppendClosedDiscussion(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	orderID := createTestOrder(t, db)
	require.NoError(t, db.Order.UpdateOneID(orderID).SetCanDiscuss(false).Exec(ctx))

	_, err := svc.Append(ctx, AppendRequest{
		ThreadType: "order",
		ThreadID:   orderID,
		Sender:     "client",
		Body:       strptr("Ещё один вопрос."),
	})
	assert.ErrorIs(t, err, ErrDiscussionClosed)

	// Managers can still write into a closed discussion.
	m, err := svc.Append(ctx, AppendRequest{
		ThreadType: "order",
		ThreadID:   orderID,
		Sender:     "manager",
		Body:       strptr("Заказ закрыт, спасибо!"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Seq)
}

func TestAppendMissingThread(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Append(context.Background(), AppendRequest{
		ThreadType: "order",
		ThreadID:   uuid.Must(uuid.NewV7()),
		Sender:     "client",
		Body:       strptr("Есть кто?"),
	})
	assert.ErrorIs(t, err, ErrThreadNotFound)
}

func TestAppendTicketThread(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tk, err := ticket.New(db, nil).Create(ctx, ticket.CreateRequest{
		Name:    "Анна Смирнова",
		Email:   "anna@example.com",
		Subject: "Не открывается сайт",
		Message: "Страница выдаёт ошибку 502.",
	})
	require.NoError(t, err)

	// Tickets have no seeded message, so the first reply takes seq 1.
	m, err := svc.Append(ctx, AppendRequest{
		ThreadType: "ticket",
		ThreadID:   tk.ID,
		Sender:     "manager",
		Body:       strptr("Проверяем, спасибо за сигнал."),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Seq)

	got, err := db.Ticket.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.True(t, got.ClientUnread)
	assert.Equal(t, 1, got.MessageSeq)
}

func TestValidateThreadType(t *testing.T) {
	require.NoError(t, validateThreadType("order"))
	require.NoError(t, validateThreadType("ticket"))
	assert.ErrorIs(t, validateThreadType("invoice"), ErrInvalidThreadType)
	assert.ErrorIs(t, validateThreadType(""), ErrInvalidThreadType)
}

func TestValidatePayloadTextMessage(t *testing.T) {
	req := AppendRequest{Body: strptr("  Привет!  ")}

	require.NoError(t, validatePayload(&req))
	require.NotNil(t, req.Body)
	assert.Equal(t, "Привет!", *req.Body)
}

func TestValidatePayloadFileMessage(t *testing.T) {
	req := AppendRequest{
		FileKey:  strptr("attachments/order/x/y.pdf"),
		FileName: strptr("договор.pdf"),
	}

	require.NoError(t, validatePayload(&req))
}

func TestValidatePayloadRejectsEmpty(t *testing.T) {
	cases := []struct {
		name string
		req  AppendRequest
	}{
		{"nothing set", AppendRequest{}},
		{"whitespace body", AppendRequest{Body: strptr("   \n\t ")}},
		{"file key without name", AppendRequest{FileKey: strptr("k")}},
		{"empty file fields", AppendRequest{FileKey: strptr(""), FileName: strptr("")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validatePayload(&tc.req), ErrEmptyMessage)
		})
	}
}

func TestValidatePayloadRejectsMixed(t *testing.T) {
	req := AppendRequest{
		Body:     strptr("текст"),
		FileKey:  strptr("attachments/ticket/x/y.png"),
		FileName: strptr("скрин.png"),
	}

	assert.ErrorIs(t, validatePayload(&req), ErrMixedPayload)
}

func TestValidatePayloadWhitespaceBodyWithFile(t *testing.T) {
	// A blank body alongside a file collapses to a plain file message.
	req := AppendRequest{
		Body:     strptr("  "),
		FileKey:  strptr("attachments/order/x/y.png"),
		FileName: strptr("фото.png"),
	}

	require.NoError(t, validatePayload(&req))
	assert.Nil(t, req.Body)
}
