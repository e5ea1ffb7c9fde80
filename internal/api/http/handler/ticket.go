package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/service/ticket"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

type TicketHandler struct {
	svc ticket.Service
}

func NewTicketHandler(svc ticket.Service) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func mapTicketError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ticket.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, ticket.ErrInvalidStatus),
		errors.Is(err, ticket.ErrInvalidSide),
		errors.Is(err, ticket.ErrValidation):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /tickets — the caller's own tickets, by token email.
func (h *TicketHandler) List(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	tickets, err := h.svc.ListForOwner(c.Context(), claims.Email)
	if err != nil {
		return mapTicketError(c, err)
	}
	return ok(c, tickets)
}

// GET /tickets/:id
func (h *TicketHandler) Get(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	t, err := h.fetch(c, claims, ticketID)
	if err != nil {
		return mapTicketError(c, err)
	}
	return ok(c, t)
}

// POST /tickets/:id/read
func (h *TicketHandler) MarkRead(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	if _, err := h.fetch(c, claims, ticketID); err != nil {
		return mapTicketError(c, err)
	}

	if err := h.svc.MarkRead(c.Context(), ticketID, sideOf(claims)); err != nil {
		return mapTicketError(c, err)
	}
	return noContent(c)
}

// GET /admin/tickets
func (h *TicketHandler) AdminList(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := ticket.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}

	tickets, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapTicketError(c, err)
	}
	return ok(c, tickets)
}

// PATCH /admin/tickets/:id/status
func (h *TicketHandler) UpdateStatus(c fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Status == "" {
		return badRequest(c, "status is required")
	}

	t, err := h.svc.UpdateStatus(c.Context(), ticketID, body.Status)
	if err != nil {
		return mapTicketError(c, err)
	}
	return ok(c, t)
}

// DELETE /admin/tickets/:id
func (h *TicketHandler) Delete(c fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	if err := h.svc.Delete(c.Context(), ticketID); err != nil {
		return mapTicketError(c, err)
	}
	return noContent(c)
}

// DELETE /admin/tickets/finished
func (h *TicketHandler) PurgeFinished(c fiber.Ctx) error {
	n, err := h.svc.PurgeFinished(c.Context())
	if err != nil {
		return mapTicketError(c, err)
	}
	return ok(c, fiber.Map{"deleted": n})
}

func (h *TicketHandler) fetch(c fiber.Ctx, claims *pasetotoken.Claims, ticketID uuid.UUID) (*repo.Ticket, error) {
	if claims.IsAdmin() {
		return h.svc.GetByID(c.Context(), ticketID)
	}
	return h.svc.GetForOwner(c.Context(), ticketID, claims.Email)
}
