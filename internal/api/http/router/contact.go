package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler) {
	api.Post("/contact", h.Submit)
}
