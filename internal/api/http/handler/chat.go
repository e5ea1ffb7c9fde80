package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bystrodel/backend/internal/service/chat"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/presence"
	"github.com/bystrodel/backend/internal/service/ticket"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

// ChatHandler serves the message threads hanging off orders and
// tickets. Thread access follows the parent record: admins reach any
// thread, clients only threads they own.
type ChatHandler struct {
	chat     chat.Service
	presence presence.Service
	orders   order.Service
	tickets  ticket.Service
}

func NewChatHandler(chatSvc chat.Service, pres presence.Service, orders order.Service, tickets ticket.Service) *ChatHandler {
	return &ChatHandler{chat: chatSvc, presence: pres, orders: orders, tickets: tickets}
}

func mapChatError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrThreadNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chat.ErrDiscussionClosed):
		return forbidden(c)
	case errors.Is(err, chat.ErrInvalidThreadType),
		errors.Is(err, chat.ErrInvalidSender),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMixedPayload),
		errors.Is(err, presence.ErrInvalidRole):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /orders/:id/messages
func (h *ChatHandler) PostOrderMessage(c fiber.Ctx) error { return h.post(c, "order") }

// POST /tickets/:id/messages
func (h *ChatHandler) PostTicketMessage(c fiber.Ctx) error { return h.post(c, "ticket") }

// GET /orders/:id/messages?after_seq=N
func (h *ChatHandler) ListOrderMessages(c fiber.Ctx) error { return h.list(c, "order") }

// GET /tickets/:id/messages?after_seq=N
func (h *ChatHandler) ListTicketMessages(c fiber.Ctx) error { return h.list(c, "ticket") }

// POST /orders/:id/typing
func (h *ChatHandler) OrderTyping(c fiber.Ctx) error { return h.typing(c, "order") }

// POST /tickets/:id/typing
func (h *ChatHandler) TicketTyping(c fiber.Ctx) error { return h.typing(c, "ticket") }

// GET /orders/:id/typing
func (h *ChatHandler) OrderTypingState(c fiber.Ctx) error { return h.typingState(c, "order") }

// GET /tickets/:id/typing
func (h *ChatHandler) TicketTypingState(c fiber.Ctx) error { return h.typingState(c, "ticket") }

func (h *ChatHandler) post(c fiber.Ctx, threadType string) error {
	claims, threadID, err := h.authorizeThread(c, threadType)
	if err != nil {
		return err
	}

	var body struct {
		Body     *string `json:"body"`
		FileKey  *string `json:"file_key"`
		FileName *string `json:"file_name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.chat.Append(c.Context(), chat.AppendRequest{
		ThreadType: threadType,
		ThreadID:   threadID,
		Sender:     sideOf(claims),
		Body:       body.Body,
		FileKey:    body.FileKey,
		FileName:   body.FileName,
	})
	if err != nil {
		return mapChatError(c, err)
	}
	return created(c, msg)
}

func (h *ChatHandler) list(c fiber.Ctx, threadType string) error {
	_, threadID, err := h.authorizeThread(c, threadType)
	if err != nil {
		return err
	}

	afterSeq, _ := strconv.Atoi(c.Query("after_seq"))

	msgs, err := h.chat.ListMessages(c.Context(), threadType, threadID, afterSeq)
	if err != nil {
		return mapChatError(c, err)
	}
	return ok(c, msgs)
}

func (h *ChatHandler) typing(c fiber.Ctx, threadType string) error {
	claims, threadID, err := h.authorizeThread(c, threadType)
	if err != nil {
		return err
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	role := sideOf(claims)
	if body.Active {
		err = h.presence.SetTyping(c.Context(), threadType, threadID, role)
	} else {
		err = h.presence.ClearTyping(c.Context(), threadType, threadID, role)
	}
	if err != nil {
		return mapChatError(c, err)
	}
	return noContent(c)
}

// typingState is the polling fallback for clients that cannot hold the
// SSE stream open.
func (h *ChatHandler) typingState(c fiber.Ctx, threadType string) error {
	_, threadID, err := h.authorizeThread(c, threadType)
	if err != nil {
		return err
	}

	client, manager, err := h.presence.Typing(c.Context(), threadType, threadID)
	if err != nil {
		return mapChatError(c, err)
	}
	return ok(c, fiber.Map{"client": client, "manager": manager})
}

// authorizeThread parses the :id param and checks the caller can see
// the parent record.
func (h *ChatHandler) authorizeThread(c fiber.Ctx, threadType string) (*pasetotoken.Claims, uuid.UUID, error) {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return nil, uuid.Nil, unauthorized(c)
	}

	threadID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, badRequest(c, "invalid thread id")
	}

	switch threadType {
	case "order":
		if claims.IsAdmin() {
			_, err = h.orders.GetByID(c.Context(), threadID)
		} else {
			_, err = h.orders.GetForOwner(c.Context(), threadID, claims.Email)
		}
		if err != nil {
			return nil, uuid.Nil, mapOrderError(c, err)
		}
	case "ticket":
		if claims.IsAdmin() {
			_, err = h.tickets.GetByID(c.Context(), threadID)
		} else {
			_, err = h.tickets.GetForOwner(c.Context(), threadID, claims.Email)
		}
		if err != nil {
			return nil, uuid.Nil, mapTicketError(c, err)
		}
	}

	return claims, threadID, nil
}
