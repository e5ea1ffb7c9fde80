package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bystrodel/backend/internal/service/attachment"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/ticket"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

type AttachmentHandler struct {
	svc     attachment.Service
	orders  order.Service
	tickets ticket.Service
}

func NewAttachmentHandler(svc attachment.Service, orders order.Service, tickets ticket.Service) *AttachmentHandler {
	return &AttachmentHandler{svc: svc, orders: orders, tickets: tickets}
}

// POST /attachments — multipart upload with thread_type and thread_id
// form fields. The returned key goes into the message file_key field.
// Access follows the parent record, same as posting a message.
func (h *AttachmentHandler) Upload(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	threadType := c.FormValue("thread_type")
	threadID, err := uuid.Parse(c.FormValue("thread_id"))
	if err != nil {
		return badRequest(c, "invalid thread id")
	}

	switch threadType {
	case "order":
		if claims.IsAdmin() {
			_, err = h.orders.GetByID(c.Context(), threadID)
		} else {
			_, err = h.orders.GetForOwner(c.Context(), threadID, claims.Email)
		}
		if err != nil {
			return mapOrderError(c, err)
		}
	case "ticket":
		if claims.IsAdmin() {
			_, err = h.tickets.GetByID(c.Context(), threadID)
		} else {
			_, err = h.tickets.GetForOwner(c.Context(), threadID, claims.Email)
		}
		if err != nil {
			return mapTicketError(c, err)
		}
	default:
		return badRequest(c, "thread type must be order or ticket")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	res, err := h.svc.Upload(c.Context(), threadType, threadID, fh)
	if err != nil {
		switch {
		case errors.Is(err, attachment.ErrInvalidThread):
			return badRequest(c, err.Error())
		case errors.Is(err, attachment.ErrTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return internalError(c)
		}
	}

	return created(c, fiber.Map{
		"key":       res.Key,
		"file_name": res.FileName,
		"size":      res.Size,
		"mime_type": res.MimeType,
	})
}

// GET /attachments/* — redirects to a presigned download URL for the
// stored object key.
func (h *AttachmentHandler) Download(c fiber.Ctx) error {
	key := strings.TrimPrefix(c.Params("*"), "/")
	if key == "" {
		return badRequest(c, "attachment key is required")
	}

	url, err := h.svc.DownloadURL(c.Context(), key)
	if err != nil {
		return internalError(c)
	}
	return c.Redirect().Status(fiber.StatusTemporaryRedirect).To(url)
}
