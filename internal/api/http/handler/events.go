package handler

import (
	"bufio"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/bystrodel/backend/internal/events"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/ticket"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

const eventsKeepAlive = 15 * time.Second

// EventsHandler streams thread events (messages, status changes,
// typing) to clients over SSE, bridging the NATS subjects the services
// publish to. Clients that cannot hold the stream open fall back to
// polling the list endpoints.
type EventsHandler struct {
	nc      *nats.Conn
	orders  order.Service
	tickets ticket.Service
}

func NewEventsHandler(nc *nats.Conn, orders order.Service, tickets ticket.Service) *EventsHandler {
	return &EventsHandler{nc: nc, orders: orders, tickets: tickets}
}

// GET /orders/:id/events
func (h *EventsHandler) OrderEvents(c fiber.Ctx) error { return h.stream(c, "order") }

// GET /tickets/:id/events
func (h *EventsHandler) TicketEvents(c fiber.Ctx) error { return h.stream(c, "ticket") }

func (h *EventsHandler) stream(c fiber.Ctx, threadType string) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	threadID, err := uuid.Parse(c.Params("id"))
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
	}

	msgs := make(chan *nats.Msg, 64)
	sub, err := h.nc.ChanSubscribe(events.ThreadWildcard(threadType, threadID), msgs)
	if err != nil {
		return internalError(c)
	}

	ctx := c.Context()

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		defer sub.Unsubscribe()

		// Events carry their kind in the payload, so a single
		// unnamed SSE stream suffices.
		keepAlive := time.NewTicker(eventsKeepAlive)
		defer keepAlive.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case m, chanOK := <-msgs:
				if !chanOK {
					return
				}
				fmt.Fprintf(w, "data: %s\n\n", m.Data)
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepAlive.C:
				// Comment frame keeps intermediaries from
				// closing an idle connection.
				fmt.Fprint(w, ": keep-alive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
}
