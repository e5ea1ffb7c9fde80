// Package events defines the NATS subjects and payloads shared by the
// services that publish them, the SSE bridge, and the notification
// workers.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Global subjects consumed by the notification workers.
const (
	SubjectOrderCreated  = "bystrodel.orders.created"
	SubjectTicketCreated = "bystrodel.tickets.created"
)

// Per-thread event kinds.
const (
	KindMessage = "message"
	KindStatus  = "status"
	KindTyping  = "typing"
)

// ThreadSubject builds the subject for a single thread event,
// e.g. "bystrodel.order.<id>.message".
func ThreadSubject(threadType string, threadID uuid.UUID, kind string) string {
	return "bystrodel." + threadType + "." + threadID.String() + "." + kind
}

// ThreadWildcard matches every event of one thread,
// e.g. "bystrodel.order.<id>.>".
func ThreadWildcard(threadType string, threadID uuid.UUID) string {
	return "bystrodel." + threadType + "." + threadID.String() + ".>"
}

// MessageEvent is published after a chat message is committed.
type MessageEvent struct {
	Type       string    `json:"type"` // always "message"
	ThreadType string    `json:"thread_type"`
	ThreadID   uuid.UUID `json:"thread_id"`
	Seq        int       `json:"seq"`
	Sender     string    `json:"sender"`
	Body       *string   `json:"body,omitempty"`
	FileKey    *string   `json:"file_key,omitempty"`
	FileName   *string   `json:"file_name,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

// StatusEvent is published after an order or ticket status change.
type StatusEvent struct {
	Type       string    `json:"type"` // always "status"
	ThreadType string    `json:"thread_type"`
	ThreadID   uuid.UUID `json:"thread_id"`
	Status     string    `json:"status"`
	Version    int       `json:"version"`
}

// TypingEvent is published when a typing flag is set or cleared.
type TypingEvent struct {
	Type       string    `json:"type"` // always "typing"
	ThreadType string    `json:"thread_type"`
	ThreadID   uuid.UUID `json:"thread_id"`
	Role       string    `json:"role"` // client | manager
	Active     bool      `json:"active"`
}

// CreatedEvent notifies workers about a new order or ticket.
type CreatedEvent struct {
	Kind      string    `json:"kind"` // order | ticket
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Title     string    `json:"title"` // service name or ticket subject
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
}
