package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/api/http/handler"
)

func (r *Router) registerOrderRoutes(
	api fiber.Router,
	oh *handler.OrderHandler,
	ch *handler.ChatHandler,
	eh *handler.EventsHandler,
	authRequired fiber.Handler,
) {
	// Order submission from the public site needs no account.
	api.Post("/orders", oh.Create)

	orders := api.Group("/orders", authRequired)
	orders.Get("/", oh.List)

	o := orders.Group("/:id")
	o.Get("/", oh.Get)
	o.Post("/read", oh.MarkRead)
	o.Get("/messages", ch.ListOrderMessages)
	o.Post("/messages", ch.PostOrderMessage)
	o.Post("/typing", ch.OrderTyping)
	o.Get("/typing", ch.OrderTypingState)
	o.Get("/events", eh.OrderEvents)
}
