package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/api/http/handler"
)

func (r *Router) registerAttachmentRoutes(api fiber.Router, h *handler.AttachmentHandler, authRequired fiber.Handler) {
	group := api.Group("/attachments", authRequired)
	group.Post("/", h.Upload)
	group.Get("/*", h.Download)
}
