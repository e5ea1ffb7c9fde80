package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/bystrodel/backend/config"
	"github.com/bystrodel/backend/internal/api/http/handler"
	"github.com/bystrodel/backend/internal/api/http/middleware"
	"github.com/bystrodel/backend/internal/bot"
	"github.com/bystrodel/backend/internal/service/attachment"
	"github.com/bystrodel/backend/internal/service/auth"
	"github.com/bystrodel/backend/internal/service/chat"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/presence"
	"github.com/bystrodel/backend/internal/service/ticket"
	"github.com/bystrodel/backend/internal/service/user"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client
	NC            *nats.Conn
	UserSvc       user.Service
	AuthSvc       auth.Service
	OrderSvc      order.Service
	TicketSvc     ticket.Service
	ChatSvc       chat.Service
	PresenceSvc   presence.Service
	AttachmentSvc attachment.Service
	PasetoMgr     *pasetotoken.Manager
	Bot           *bot.Bot // nil when Telegram is disabled
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	adminRequired := middleware.AdminRequired()

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	orderH := handler.NewOrderHandler(r.p.OrderSvc)
	ticketH := handler.NewTicketHandler(r.p.TicketSvc)
	contactH := handler.NewContactHandler(r.p.TicketSvc)
	chatH := handler.NewChatHandler(r.p.ChatSvc, r.p.PresenceSvc, r.p.OrderSvc, r.p.TicketSvc)
	eventsH := handler.NewEventsHandler(r.p.NC, r.p.OrderSvc, r.p.TicketSvc)
	attachmentH := handler.NewAttachmentHandler(r.p.AttachmentSvc, r.p.OrderSvc, r.p.TicketSvc)
	telegramH := handler.NewTelegramHandler(r.p.Bot)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerContactRoutes(api, contactH)
	r.registerOrderRoutes(api, orderH, chatH, eventsH, authRequired)
	r.registerTicketRoutes(api, ticketH, chatH, eventsH, authRequired)
	r.registerAttachmentRoutes(api, attachmentH, authRequired)
	r.registerAdminRoutes(api, orderH, ticketH, authRequired, adminRequired)
	r.registerTelegramRoutes(api, telegramH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Redis.Ping(c.Context()).Err() == nil && r.p.NC.IsConnected()
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
