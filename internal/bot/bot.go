// Package bot implements the Telegram management bot. Updates arrive
// through the webhook endpoint; commands read and mutate the real
// order/ticket store and reply with the Russian status names managers
// are used to.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/bystrodel/backend/config"
	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/ticket"
)

const helpText = `Команды:
/orders — последние заказы
/tickets — последние обращения
/status <id> <статус> — изменить статус заказа
/ticketstatus <id> <статус> — изменить статус обращения
/help — эта справка`

// listLimit caps /orders and /tickets output.
const listLimit = 10

// OrderStore is the slice of the order service the bot needs.
type OrderStore interface {
	List(ctx context.Context, req order.ListRequest) ([]*repo.Order, error)
	GetByReference(ctx context.Context, reference string) (*repo.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*repo.Order, error)
}

// TicketStore is the slice of the ticket service the bot needs.
type TicketStore interface {
	List(ctx context.Context, req ticket.ListRequest) ([]*repo.Ticket, error)
	GetByReference(ctx context.Context, reference string) (*repo.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID uuid.UUID, status string) (*repo.Ticket, error)
}

// sender is the part of tgbotapi.BotAPI the bot calls; tests swap it
// for a recorder.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api        sender
	orders     OrderStore
	tickets    TicketStore
	adminIDs   []int64
	adminChat  int64
	webhookURL string
}

func New(cfg config.TelegramConfig, orders OrderStore, tickets TicketStore) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}

	slog.Info("telegram bot authorized", "account", api.Self.UserName)

	return newBot(api, orders, tickets, cfg), nil
}

// newBot wires a Bot around an existing sender.
func newBot(api sender, orders OrderStore, tickets TicketStore, cfg config.TelegramConfig) *Bot {
	return &Bot{
		api:        api,
		orders:     orders,
		tickets:    tickets,
		adminIDs:   cfg.AdminIDs,
		adminChat:  cfg.AdminChatID,
		webhookURL: cfg.WebhookURL,
	}
}

// RegisterWebhook tells Telegram to deliver updates to the configured
// public URL.
func (b *Bot) RegisterWebhook() error {
	if b.webhookURL == "" {
		return fmt.Errorf("telegram bot: webhook URL is not configured")
	}
	wh, err := tgbotapi.NewWebhook(b.webhookURL)
	if err != nil {
		return fmt.Errorf("telegram bot: build webhook: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("telegram bot: register webhook: %w", err)
	}
	return nil
}

// NotifyAdmins pushes a message to the configured admin chat. Used by
// the notification workers.
func (b *Bot) NotifyAdmins(text string) {
	if b.adminChat == 0 {
		return
	}
	b.send(b.adminChat, text)
}

// HandleUpdate processes one webhook update.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	if !b.isAdmin(msg.From.ID) {
		b.send(msg.Chat.ID, "Доступ запрещен.")
		return
	}

	switch msg.Command() {
	case "start":
		b.send(msg.Chat.ID, "Бот БыстроДел на связи.\n\n"+helpText)

	case "help":
		b.send(msg.Chat.ID, helpText)

	case "orders":
		b.handleOrders(ctx, msg)

	case "tickets":
		b.handleTickets(ctx, msg)

	case "status":
		b.handleOrderStatus(ctx, msg)

	case "ticketstatus":
		b.handleTicketStatus(ctx, msg)

	default:
		b.send(msg.Chat.ID, "Неизвестная команда. /help — список команд.")
	}
}

func (b *Bot) handleOrders(ctx context.Context, msg *tgbotapi.Message) {
	orders, err := b.orders.List(ctx, order.ListRequest{PerPage: listLimit})
	if err != nil {
		slog.Error("bot: list orders", "error", err)
		b.send(msg.Chat.ID, "Не удалось получить список заказов.")
		return
	}
	if len(orders) == 0 {
		b.send(msg.Chat.ID, "Заказов пока нет.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Последние заказы (%d):\n\n", len(orders))
	for _, o := range orders {
		fmt.Fprintf(&sb, "%s — %s\n", o.Reference, OrderStatusDisplay(o.Status))
		fmt.Fprintf(&sb, "  Услуга: %s\n", o.Service)
		fmt.Fprintf(&sb, "  Клиент: %s <%s>\n\n", o.ClientName, o.ClientEmail)
	}
	b.send(msg.Chat.ID, sb.String())
}

func (b *Bot) handleTickets(ctx context.Context, msg *tgbotapi.Message) {
	tickets, err := b.tickets.List(ctx, ticket.ListRequest{PerPage: listLimit})
	if err != nil {
		slog.Error("bot: list tickets", "error", err)
		b.send(msg.Chat.ID, "Не удалось получить список обращений.")
		return
	}
	if len(tickets) == 0 {
		b.send(msg.Chat.ID, "Обращений пока нет.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Последние обращения (%d):\n\n", len(tickets))
	for _, t := range tickets {
		fmt.Fprintf(&sb, "%s — %s\n", t.Reference, TicketStatusDisplay(t.Status))
		fmt.Fprintf(&sb, "  Тема: %s\n", t.Subject)
		fmt.Fprintf(&sb, "  От: %s <%s>\n\n", t.Name, t.Email)
	}
	b.send(msg.Chat.ID, sb.String())
}

func (b *Bot) handleOrderStatus(ctx context.Context, msg *tgbotapi.Message) {
	reference, statusArg, ok := splitStatusArgs(msg.CommandArguments())
	if !ok {
		b.send(msg.Chat.ID, "Формат: /status <id> <статус>\nНапример: /status ORDER-20260901-A1B2C3 В работе")
		return
	}

	st, ok := ParseOrderStatus(statusArg)
	if !ok {
		b.send(msg.Chat.ID, fmt.Sprintf("Неизвестный статус %q. Доступные: %s.", statusArg, orderStatusList()))
		return
	}

	o, err := b.orders.GetByReference(ctx, reference)
	if err != nil {
		b.send(msg.Chat.ID, fmt.Sprintf("Заказ %s не найден.", reference))
		return
	}

	updated, err := b.orders.UpdateStatus(ctx, o.ID, string(st))
	if err != nil {
		slog.Error("bot: update order status", "reference", reference, "error", err)
		b.send(msg.Chat.ID, "Не удалось обновить статус заказа.")
		return
	}

	b.send(msg.Chat.ID, fmt.Sprintf("Статус заказа %s: %s", updated.Reference, OrderStatusDisplay(updated.Status)))
}

func (b *Bot) handleTicketStatus(ctx context.Context, msg *tgbotapi.Message) {
	reference, statusArg, ok := splitStatusArgs(msg.CommandArguments())
	if !ok {
		b.send(msg.Chat.ID, "Формат: /ticketstatus <id> <статус>\nНапример: /ticketstatus TICKET-20260901-A1B2C3 Завершено")
		return
	}

	st, ok := ParseTicketStatus(statusArg)
	if !ok {
		b.send(msg.Chat.ID, fmt.Sprintf("Неизвестный статус %q. Доступные: %s.", statusArg, ticketStatusList()))
		return
	}

	t, err := b.tickets.GetByReference(ctx, reference)
	if err != nil {
		b.send(msg.Chat.ID, fmt.Sprintf("Обращение %s не найдено.", reference))
		return
	}

	updated, err := b.tickets.UpdateStatus(ctx, t.ID, string(st))
	if err != nil {
		slog.Error("bot: update ticket status", "reference", reference, "error", err)
		b.send(msg.Chat.ID, "Не удалось обновить статус обращения.")
		return
	}

	b.send(msg.Chat.ID, fmt.Sprintf("Статус обращения %s: %s", updated.Reference, TicketStatusDisplay(updated.Status)))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (b *Bot) isAdmin(userID int64) bool {
	for _, id := range b.adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("bot: send message", "chat_id", chatID, "error", err)
	}
}

// splitStatusArgs splits "ORDER-... В работе" into the reference and
// the (possibly multi-word) status argument.
func splitStatusArgs(args string) (reference, status string, ok bool) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.Join(fields[1:], " "), true
}

func orderStatusList() string {
	names := make([]string, 0, len(orderStatusRU))
	for _, ru := range orderStatusRU {
		names = append(names, ru)
	}
	return strings.Join(names, ", ")
}

func ticketStatusList() string {
	names := make([]string, 0, len(ticketStatusRU))
	for _, ru := range ticketStatusRU {
		names = append(names, ru)
	}
	return strings.Join(names, ", ")
}
