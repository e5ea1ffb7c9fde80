package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/service/order"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func mapOrderError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, order.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidPhone),
		errors.Is(err, order.ErrInvalidSide),
		errors.Is(err, order.ErrValidation):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /orders (public)
func (h *OrderHandler) Create(c fiber.Ctx) error {
	var body struct {
		Service string `json:"service"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Details string `json:"details"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	o, err := h.svc.Create(c.Context(), order.CreateRequest{
		Service:     body.Service,
		ClientName:  body.Name,
		ClientEmail: body.Email,
		ClientPhone: body.Phone,
		Details:     body.Details,
	})
	if err != nil {
		return mapOrderError(c, err)
	}
	return created(c, o)
}

// GET /orders — the caller's own orders, by token email.
func (h *OrderHandler) List(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	orders, err := h.svc.ListForOwner(c.Context(), claims.Email)
	if err != nil {
		return mapOrderError(c, err)
	}
	return ok(c, orders)
}

// GET /orders/:id
func (h *OrderHandler) Get(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	o, err := h.fetch(c, claims, orderID)
	if err != nil {
		return mapOrderError(c, err)
	}
	return ok(c, o)
}

// POST /orders/:id/read
func (h *OrderHandler) MarkRead(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	if _, err := h.fetch(c, claims, orderID); err != nil {
		return mapOrderError(c, err)
	}

	if err := h.svc.MarkRead(c.Context(), orderID, sideOf(claims)); err != nil {
		return mapOrderError(c, err)
	}
	return noContent(c)
}

// GET /admin/orders
func (h *OrderHandler) AdminList(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := order.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}

	orders, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapOrderError(c, err)
	}
	return ok(c, orders)
}

// PATCH /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
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

	o, err := h.svc.UpdateStatus(c.Context(), orderID, body.Status)
	if err != nil {
		return mapOrderError(c, err)
	}
	return ok(c, o)
}

// DELETE /admin/orders/:id
func (h *OrderHandler) Delete(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	if err := h.svc.Delete(c.Context(), orderID); err != nil {
		return mapOrderError(c, err)
	}
	return noContent(c)
}

// DELETE /admin/orders/finished
func (h *OrderHandler) PurgeFinished(c fiber.Ctx) error {
	n, err := h.svc.PurgeFinished(c.Context())
	if err != nil {
		return mapOrderError(c, err)
	}
	return ok(c, fiber.Map{"deleted": n})
}

// fetch resolves an order with the caller's visibility: admins see any
// order, clients only their own.
func (h *OrderHandler) fetch(c fiber.Ctx, claims *pasetotoken.Claims, orderID uuid.UUID) (*repo.Order, error) {
	if claims.IsAdmin() {
		return h.svc.GetByID(c.Context(), orderID)
	}
	return h.svc.GetForOwner(c.Context(), orderID, claims.Email)
}

// sideOf maps the caller's role to a chat thread side.
func sideOf(claims *pasetotoken.Claims) string {
	if claims.IsAdmin() {
		return "manager"
	}
	return "client"
}
