package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/service/user"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// userResponse strips the sensitive fields from a user record.
func userResponse(u *repo.User) fiber.Map {
	return fiber.Map{
		"id":         u.ID,
		"email":      u.Email,
		"role":       u.Role,
		"name":       u.Name,
		"phone":      u.Phone,
		"address":    u.Address,
		"created_at": u.CreatedAt,
	}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /users/me/profile
func (h *UserHandler) Profile(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	u, err := h.svc.Profile(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, userResponse(u))
}

// PUT /users/me/profile
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), claims.UserID, user.UpdateProfileRequest{
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, userResponse(u))
}
