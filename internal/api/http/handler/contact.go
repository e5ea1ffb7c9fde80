package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/service/ticket"
)

// ContactHandler turns public contact-form submissions into support
// tickets.
type ContactHandler struct {
	svc ticket.Service
}

func NewContactHandler(svc ticket.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// POST /contact (public)
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.svc.Create(c.Context(), ticket.CreateRequest{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		return mapTicketError(c, err)
	}
	return created(c, t)
}
