package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bystrodel/backend/config"
	"github.com/bystrodel/backend/internal/repo"
	entorder "github.com/bystrodel/backend/internal/repo/order"
	entticket "github.com/bystrodel/backend/internal/repo/ticket"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/ticket"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m.Text)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type fakeOrderStore struct {
	orders        []*repo.Order
	updatedID     uuid.UUID
	updatedStatus string
}

func (f *fakeOrderStore) List(ctx context.Context, req order.ListRequest) ([]*repo.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderStore) GetByReference(ctx context.Context, reference string) (*repo.Order, error) {
	for _, o := range f.orders {
		if o.Reference == reference {
			return o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*repo.Order, error) {
	f.updatedID = orderID
	f.updatedStatus = status
	for _, o := range f.orders {
		if o.ID == orderID {
			updated := *o
			updated.Status = entorder.Status(status)
			return &updated, nil
		}
	}
	return nil, order.ErrNotFound
}

type fakeTicketStore struct {
	tickets       []*repo.Ticket
	updatedStatus string
}

func (f *fakeTicketStore) List(ctx context.Context, req ticket.ListRequest) ([]*repo.Ticket, error) {
	return f.tickets, nil
}

func (f *fakeTicketStore) GetByReference(ctx context.Context, reference string) (*repo.Ticket, error) {
	for _, t := range f.tickets {
		if t.Reference == reference {
			return t, nil
		}
	}
	return nil, ticket.ErrNotFound
}

func (f *fakeTicketStore) UpdateStatus(ctx context.Context, ticketID uuid.UUID, status string) (*repo.Ticket, error) {
	f.updatedStatus = status
	for _, t := range f.tickets {
		if t.ID == ticketID {
			updated := *t
			updated.Status = entticket.Status(status)
			return &updated, nil
		}
	}
	return nil, ticket.ErrNotFound
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const (
	adminID    = int64(1001)
	strangerID = int64(42)
	chatID     = int64(500)
)

func newTestBot(orders OrderStore, tickets TicketStore) (*Bot, *fakeSender) {
	api := &fakeSender{}
	b := newBot(api, orders, tickets, config.TelegramConfig{
		AdminChatID: chatID,
		AdminIDs:    []int64{adminID},
	})
	return b, api
}

func commandUpdate(from int64, text string) tgbotapi.Update {
	cmdLen := len(text)
	for i, r := range text {
		if r == ' ' {
			cmdLen = i
			break
		}
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: cmdLen},
			},
			From: &tgbotapi.User{ID: from},
			Chat: &tgbotapi.Chat{ID: chatID},
		},
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHandleUpdateDeniesNonAdmin(t *testing.T) {
	b, api := newTestBot(&fakeOrderStore{}, &fakeTicketStore{})

	b.HandleUpdate(context.Background(), commandUpdate(strangerID, "/orders"))

	require.Len(t, api.sent, 1)
	assert.Equal(t, "Доступ запрещен.", api.sent[0])
}

func TestHandleUpdateIgnoresNonCommands(t *testing.T) {
	b, api := newTestBot(&fakeOrderStore{}, &fakeTicketStore{})

	b.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "привет",
			From: &tgbotapi.User{ID: adminID},
			Chat: &tgbotapi.Chat{ID: chatID},
		},
	})

	assert.Empty(t, api.sent)
}

func TestOrdersCommandListsOrders(t *testing.T) {
	store := &fakeOrderStore{orders: []*repo.Order{
		{
			ID:          uuid.Must(uuid.NewV7()),
			Reference:   "ORDER-20260901-ABC234",
			Service:     "Разработка сайта",
			Status:      entorder.StatusInProgress,
			ClientName:  "Иван Петров",
			ClientEmail: "ivan@example.com",
		},
	}}
	b, api := newTestBot(store, &fakeTicketStore{})

	b.HandleUpdate(context.Background(), commandUpdate(adminID, "/orders"))

	require.Len(t, api.sent, 1)
	assert.Contains(t, api.sent[0], "ORDER-20260901-ABC234")
	assert.Contains(t, api.sent[0], "В работе")
	assert.Contains(t, api.sent[0], "Разработка сайта")
}

func TestOrdersCommandEmpty(t *testing.T) {
	b, api := newTestBot(&fakeOrderStore{}, &fakeTicketStore{})

	b.HandleUpdate(context.Background(), commandUpdate(adminID, "/orders"))

	require.Len(t, api.sent, 1)
	assert.Equal(t, "Заказов пока нет.", api.sent[0])
}

func TestStatusCommandAcceptsRussianName(t *testing.T) {
	o := &repo.Order{
		ID:        uuid.Must(uuid.NewV7()),
		Reference: "ORDER-20260901-ABC234",
		Status:    entorder.StatusNew,
	}
	store := &fakeOrderStore{orders: []*repo.Order{o}}
	b, api := newTestBot(store, &fakeTicketStore{})

	// Multi-word Russian status name after the reference.
	b.HandleUpdate(context.Background(), commandUpdate(adminID, "/status ORDER-20260901-ABC234 Ожидает обсуждения"))

	assert.Equal(t, o.ID, store.updatedID)
	assert.Equal(t, "awaiting_discussion", store.updatedStatus)
	require.Len(t, api.sent, 1)
	assert.Contains(t, api.sent[0], "Ожидает обсуждения")
}

func TestStatusCommandRejectsUnknownStatus(t *testing.T) {
	store := &fakeOrderStore{}
	b, api := newTestBot(store, &fakeTicketStore{})

	b.HandleUpdate(context.Background(), commandUpdate(adminID, "/status ORDER-20260901-ABC234 Готово"))

	assert.Empty(t, store.updatedStatus)
	require.Len(t, api.sent, 1)
	assert.Contains(t, api.sent[0], "Неизвестный статус")
}

func TestStatusCommandUsageOnMissingArgs(t *testing.T) {
	b, api := newTestBot(&fakeOrderStore{}, &fakeTicketStore{})

	b.HandleUpdate(context.Background(), commandUpdate(adminID, "/status"))

	require.Len(t, api.sent, 1)
	assert.Contains(t, api.sent[0], "Формат: /status")
}

func TestTicketStatusCommand(t *testing.T) {
	tk := &repo.Ticket{
		ID:        uuid.Must(uuid.NewV7()),
		Reference: "TICKET-20260901-XYZ789",
		Status:    entticket.StatusNew,
	}
	store := &fakeTicketStore{tickets: []*repo.Ticket{tk}}
	b, api := newTestBot(&fakeOrderStore{}, store)

	b.HandleUpdate(context.Background(), commandUpdate(adminID, "/ticketstatus TICKET-20260901-XYZ789 Отклонено"))

	assert.Equal(t, "rejected", store.updatedStatus)
	require.Len(t, api.sent, 1)
	assert.Contains(t, api.sent[0], "Отклонено")
}

func TestNotifyAdmins(t *testing.T) {
	b, api := newTestBot(&fakeOrderStore{}, &fakeTicketStore{})

	b.NotifyAdmins("Новый заказ ORDER-20260901-ABC234")

	require.Len(t, api.sent, 1)
	assert.Equal(t, "Новый заказ ORDER-20260901-ABC234", api.sent[0])
}

func TestStatusDisplayRoundTrip(t *testing.T) {
	for st, ru := range orderStatusRU {
		parsed, ok := ParseOrderStatus(ru)
		require.True(t, ok, "display name %q must parse", ru)
		assert.Equal(t, st, parsed)

		// Raw enum tokens are accepted too.
		parsed, ok = ParseOrderStatus(string(st))
		require.True(t, ok)
		assert.Equal(t, st, parsed)
	}

	for st, ru := range ticketStatusRU {
		parsed, ok := ParseTicketStatus(ru)
		require.True(t, ok)
		assert.Equal(t, st, parsed)
	}
}
