package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/api/http/handler"
)

func (r *Router) registerAdminRoutes(
	api fiber.Router,
	oh *handler.OrderHandler,
	th *handler.TicketHandler,
	authRequired fiber.Handler,
	adminRequired fiber.Handler,
) {
	admin := api.Group("/admin", authRequired, adminRequired)

	orders := admin.Group("/orders")
	orders.Get("/", oh.AdminList)
	// Purge goes first so "finished" is not captured by :id.
	orders.Delete("/finished", oh.PurgeFinished)
	orders.Patch("/:id/status", oh.UpdateStatus)
	orders.Post("/:id/read", oh.MarkRead)
	orders.Delete("/:id", oh.Delete)

	tickets := admin.Group("/tickets")
	tickets.Get("/", th.AdminList)
	tickets.Delete("/finished", th.PurgeFinished)
	tickets.Patch("/:id/status", th.UpdateStatus)
	tickets.Post("/:id/read", th.MarkRead)
	tickets.Delete("/:id", th.Delete)
}
