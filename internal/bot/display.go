package bot

import (
	entorder "github.com/bystrodel/backend/internal/repo/order"
	entticket "github.com/bystrodel/backend/internal/repo/ticket"
)

// Statuses are stored as English enum tokens; the bot is the boundary
// where the original Russian display names surface, both in replies and
// as accepted command arguments.

var orderStatusRU = map[entorder.Status]string{
	entorder.StatusNew:                "Новый",
	entorder.StatusAwaitingDiscussion: "Ожидает обсуждения",
	entorder.StatusInProgress:         "В работе",
	entorder.StatusUnderReview:        "На проверке",
	entorder.StatusCompleted:          "Завершено",
	entorder.StatusCancelled:          "Отменен",
}

var ticketStatusRU = map[entticket.Status]string{
	entticket.StatusNew:        "Новое",
	entticket.StatusInProgress: "В работе",
	entticket.StatusCompleted:  "Завершено",
	entticket.StatusRejected:   "Отклонено",
}

// OrderStatusDisplay renders an order status in Russian.
func OrderStatusDisplay(st entorder.Status) string {
	if ru, ok := orderStatusRU[st]; ok {
		return ru
	}
	return string(st)
}

// TicketStatusDisplay renders a ticket status in Russian.
func TicketStatusDisplay(st entticket.Status) string {
	if ru, ok := ticketStatusRU[st]; ok {
		return ru
	}
	return string(st)
}

// ParseOrderStatus maps a command argument to the stored enum token.
// Both the Russian display name and the raw token are accepted.
func ParseOrderStatus(arg string) (entorder.Status, bool) {
	for st, ru := range orderStatusRU {
		if arg == ru || arg == string(st) {
			return st, true
		}
	}
	return "", false
}

// ParseTicketStatus maps a command argument to the stored enum token.
func ParseTicketStatus(arg string) (entticket.Status, bool) {
	for st, ru := range ticketStatusRU {
		if arg == ru || arg == string(st) {
			return st, true
		}
	}
	return "", false
}
