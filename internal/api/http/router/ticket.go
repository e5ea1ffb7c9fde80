package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/api/http/handler"
)

func (r *Router) registerTicketRoutes(
	api fiber.Router,
	th *handler.TicketHandler,
	ch *handler.ChatHandler,
	eh *handler.EventsHandler,
	authRequired fiber.Handler,
) {
	tickets := api.Group("/tickets", authRequired)
	tickets.Get("/", th.List)

	t := tickets.Group("/:id")
	t.Get("/", th.Get)
	t.Post("/read", th.MarkRead)
	t.Get("/messages", ch.ListTicketMessages)
	t.Post("/messages", ch.PostTicketMessage)
	t.Post("/typing", ch.TicketTyping)
	t.Get("/typing", ch.TicketTypingState)
	t.Get("/events", eh.TicketEvents)
}
