package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/bystrodel/backend/internal/bot"
	"github.com/bystrodel/backend/internal/events"
	"github.com/bystrodel/backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	Email *email.Client
	Bot   *bot.Bot // nil when Telegram is disabled
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.Email, p.Bot)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

// startNotificationWorker pushes new-order and new-ticket events to the
// admin Telegram chat and the admin mailbox. Both channels are
// best-effort; failures are logged and never retried.
func startNotificationWorker(nc *nats.Conn, mail *email.Client, tgBot *bot.Bot) {
	_, err := nc.Subscribe(events.SubjectOrderCreated, func(msg *nats.Msg) {
		var ev events.CreatedEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("notification_worker: bad order payload", "err", err)
			return
		}

		if tgBot != nil {
			tgBot.NotifyAdmins(fmt.Sprintf(
				"Новый заказ %s — %s\nКлиент: %s <%s>",
				ev.Reference, ev.Title, ev.Name, ev.Email,
			))
		}

		sendAdminEmail(mail, email.NewOrderNotification(mail.AdminEmail(), email.NewOrderData{
			Reference:  ev.Reference,
			Service:    ev.Title,
			ClientName: ev.Name,
			Email:      ev.Email,
			Details:    ev.Body,
		}))
	})
	if err != nil {
		slog.Error("notification_worker: subscribe orders.created failed", "err", err)
	}

	_, err = nc.Subscribe(events.SubjectTicketCreated, func(msg *nats.Msg) {
		var ev events.CreatedEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("notification_worker: bad ticket payload", "err", err)
			return
		}

		if tgBot != nil {
			tgBot.NotifyAdmins(fmt.Sprintf(
				"Новое обращение %s — %s\nОт: %s <%s>",
				ev.Reference, ev.Title, ev.Name, ev.Email,
			))
		}

		sendAdminEmail(mail, email.NewTicketNotification(mail.AdminEmail(), email.NewTicketData{
			Reference: ev.Reference,
			Subject:   ev.Title,
			Name:      ev.Name,
			Email:     ev.Email,
			Body:      ev.Body,
		}))
	})
	if err != nil {
		slog.Error("notification_worker: subscribe tickets.created failed", "err", err)
	}

	// Client chat messages also reach the admin chat; manager messages
	// and typing noise do not.
	for _, subject := range []string{"bystrodel.order.*.message", "bystrodel.ticket.*.message"} {
		_, err = nc.Subscribe(subject, func(msg *nats.Msg) {
			var ev events.MessageEvent
			if err := json.Unmarshal(msg.Data, &ev); err != nil {
				slog.Warn("notification_worker: bad message payload", "err", err)
				return
			}
			if ev.Sender != "client" || tgBot == nil {
				return
			}

			preview := "[файл]"
			if ev.Body != nil {
				preview = *ev.Body
			}
			tgBot.NotifyAdmins(fmt.Sprintf(
				"Новое сообщение в чате (%s %s):\n%s",
				ev.ThreadType, ev.ThreadID, preview,
			))
		})
		if err != nil {
			slog.Error("notification_worker: subscribe messages failed", "subject", subject, "err", err)
		}
	}

	slog.Info("notification_worker: started")
}

func sendAdminEmail(mail *email.Client, msg email.Message) {
	if mail.AdminEmail() == "" {
		return
	}
	if err := mail.Send(context.Background(), msg); err != nil {
		if errors.As(err, &email.ErrDisabled{}) {
			return
		}
		slog.Warn("notification_worker: admin email failed", "err", err)
	}
}
