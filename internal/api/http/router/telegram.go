package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/api/http/handler"
)

func (r *Router) registerTelegramRoutes(api fiber.Router, h *handler.TelegramHandler) {
	// Authenticated by the secret webhook path, not by session tokens.
	api.Post("/telegram/webhook", h.Webhook)
	api.Get("/telegram/webhook", h.Register)
}
