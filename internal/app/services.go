package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/bystrodel/backend/config"
	"github.com/bystrodel/backend/internal/bot"
	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/service/attachment"
	"github.com/bystrodel/backend/internal/service/auth"
	"github.com/bystrodel/backend/internal/service/chat"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/presence"
	"github.com/bystrodel/backend/internal/service/ticket"
	"github.com/bystrodel/backend/internal/service/user"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
	s3pkg "github.com/bystrodel/backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePasetoManager,
		ProvideAuthService,
		ProvideOrderService,
		ProvideTicketService,
		ProvidePresenceService,
		ProvideChatService,
		ProvideUserService,
		ProvideAttachmentService,
		ProvideBot,
	),
)

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideOrderService(db *repo.Client, nc *nats.Conn) order.Service {
	return order.New(db, nc)
}

func ProvideTicketService(db *repo.Client, nc *nats.Conn) ticket.Service {
	return ticket.New(db, nc)
}

func ProvidePresenceService(rdb *redis.Client, nc *nats.Conn) presence.Service {
	return presence.New(rdb, nc)
}

func ProvideChatService(db *repo.Client, nc *nats.Conn, pres presence.Service) chat.Service {
	return chat.New(db, nc, pres)
}

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideAttachmentService(s3 *s3pkg.Client) attachment.Service {
	return attachment.New(s3)
}

// ProvideBot returns nil when the Telegram integration is disabled;
// consumers must handle the nil.
func ProvideBot(cfg *config.Config, orders order.Service, tickets ticket.Service) (*bot.Bot, error) {
	if !cfg.Telegram.Enabled {
		return nil, nil
	}
	return bot.New(cfg.Telegram, orders, tickets)
}
