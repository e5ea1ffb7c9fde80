package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired fiber.Handler) {
	me := api.Group("/users/me", authRequired)
	me.Get("/profile", h.Profile)
	me.Put("/profile", h.UpdateProfile)
}
