package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNotification(t *testing.T) {
	msg := NewOrderNotification("admin@bystrodel.ru", NewOrderData{
		Reference:  "ORDER-20250901-ABC234",
		Service:    "Разработка сайта",
		ClientName: "Иван Петров",
		Email:      "ivan@example.com",
		Details:    "Нужен лендинг до конца месяца.",
	})

	require.Equal(t, []string{"admin@bystrodel.ru"}, msg.To)
	assert.Contains(t, msg.Subject, "ORDER-20250901-ABC234")
	assert.Contains(t, msg.Subject, "Разработка сайта")
	assert.Contains(t, msg.TextBody, "ivan@example.com")
	assert.Contains(t, msg.TextBody, "Нужен лендинг")
}

func TestNewTicketNotification(t *testing.T) {
	msg := NewTicketNotification("admin@bystrodel.ru", NewTicketData{
		Reference: "TICKET-20250901-XYZ789",
		Subject:   "Не приходит письмо",
		Name:      "Анна",
		Email:     "anna@example.com",
		Body:      "Не получаю подтверждение на почту.",
	})

	require.Equal(t, []string{"admin@bystrodel.ru"}, msg.To)
	assert.Contains(t, msg.Subject, "TICKET-20250901-XYZ789")
	assert.Contains(t, msg.TextBody, "anna@example.com")
}
