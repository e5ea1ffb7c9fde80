package email

import "fmt"

// NewOrderData carries the fields rendered into the admin notification
// for a freshly submitted order.
type NewOrderData struct {
	Reference  string
	Service    string
	ClientName string
	Email      string
	Details    string
}

func NewOrderNotification(to string, d NewOrderData) Message {
	return Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Новый заказ %s — %s", d.Reference, d.Service),
		TextBody: fmt.Sprintf(
			"Поступил новый заказ.\n\nID: %s\nУслуга: %s\nКлиент: %s <%s>\n\nДетали:\n%s\n",
			d.Reference, d.Service, d.ClientName, d.Email, d.Details,
		),
	}
}

// NewTicketData carries the fields rendered into the admin notification
// for a new support ticket.
type NewTicketData struct {
	Reference string
	Subject   string
	Name      string
	Email     string
	Body      string
}

func NewTicketNotification(to string, d NewTicketData) Message {
	return Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Новое обращение %s — %s", d.Reference, d.Subject),
		TextBody: fmt.Sprintf(
			"Поступило новое обращение в поддержку.\n\nID: %s\nТема: %s\nОт: %s <%s>\n\nСообщение:\n%s\n",
			d.Reference, d.Subject, d.Name, d.Email, d.Body,
		),
	}
}
