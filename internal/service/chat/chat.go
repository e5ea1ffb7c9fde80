// Package chat implements the message threads shared by orders and
// support tickets. Message sequence numbers are allocated server-side
// from the parent record's counter inside one transaction, so a thread
// is always gapless and strictly ordered.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/bystrodel/backend/internal/events"
	"github.com/bystrodel/backend/internal/repo"
	entmsg "github.com/bystrodel/backend/internal/repo/chatmessage"
	entorder "github.com/bystrodel/backend/internal/repo/order"
	entticket "github.com/bystrodel/backend/internal/repo/ticket"
	"github.com/bystrodel/backend/internal/service/presence"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AppendRequest struct {
	ThreadType string // order | ticket
	ThreadID   uuid.UUID
	Sender     string // client | manager

	// Exactly one of Body or FileKey+FileName must be set.
	Body     *string
	FileKey  *string
	FileName *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Append(ctx context.Context, req AppendRequest) (*repo.ChatMessage, error)
	ListMessages(ctx context.Context, threadType string, threadID uuid.UUID, afterSeq int) ([]*repo.ChatMessage, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chatService struct {
	db       *repo.Client
	nc       *nats.Conn
	presence presence.Service
}

func New(db *repo.Client, nc *nats.Conn, pres presence.Service) Service {
	return &chatService{db: db, nc: nc, presence: pres}
}

func (s *chatService) Append(ctx context.Context, req AppendRequest) (*repo.ChatMessage, error) {
	if err := validateThreadType(req.ThreadType); err != nil {
		return nil, err
	}
	if req.Sender != "client" && req.Sender != "manager" {
		return nil, ErrInvalidSender
	}
	if err := validatePayload(&req); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	// Allocate the next seq and flip the counterpart's unread flag in
	// one conditional update.
	seq, err := s.claimSeq(ctx, tx, req)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	c := tx.ChatMessage.Create().
		SetThreadType(entmsg.ThreadType(req.ThreadType)).
		SetThreadID(req.ThreadID).
		SetSeq(seq).
		SetSender(entmsg.Sender(req.Sender))
	if req.Body != nil {
		c = c.SetBody(*req.Body)
	}
	if req.FileKey != nil {
		c = c.SetFileKey(*req.FileKey).SetFileName(*req.FileName)
	}

	msg, err := c.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create chat message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit chat message: %w", err)
	}

	// Sending a message ends the sender's typing state.
	_ = s.presence.ClearTyping(ctx, req.ThreadType, req.ThreadID, req.Sender)

	s.publish(msg)

	return msg, nil
}

func (s *chatService) ListMessages(ctx context.Context, threadType string, threadID uuid.UUID, afterSeq int) ([]*repo.ChatMessage, error) {
	if err := validateThreadType(threadType); err != nil {
		return nil, err
	}

	q := s.db.ChatMessage.Query().
		Where(
			entmsg.ThreadTypeEQ(entmsg.ThreadType(threadType)),
			entmsg.ThreadID(threadID),
		)
	if afterSeq > 0 {
		q = q.Where(entmsg.SeqGT(afterSeq))
	}

	msgs, err := q.Order(entmsg.BySeq(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	return msgs, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// claimSeq increments the parent's message counter and returns the
// allocated sequence number. The UPDATE takes the row lock, so
// concurrent appends serialize and the counter stays gapless. The same
// update bumps the parent version and marks the thread unread for the
// counterpart.
func (s *chatService) claimSeq(ctx context.Context, tx *repo.Tx, req AppendRequest) (int, error) {
	switch req.ThreadType {
	case "order":
		upd := tx.Order.Update().
			Where(entorder.ID(req.ThreadID)).
			AddMessageSeq(1).
			AddVersion(1)
		if req.Sender == "client" {
			// Clients can only write while the discussion is open.
			upd = upd.Where(entorder.CanDiscuss(true)).SetAdminUnread(true)
		} else {
			upd = upd.SetClientUnread(true)
		}
		n, err := upd.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("advance order seq: %w", err)
		}
		if n == 0 {
			exists, err := tx.Order.Query().Where(entorder.ID(req.ThreadID)).Exist(ctx)
			if err != nil {
				return 0, fmt.Errorf("check order: %w", err)
			}
			if !exists {
				return 0, ErrThreadNotFound
			}
			return 0, ErrDiscussionClosed
		}

		o, err := tx.Order.Get(ctx, req.ThreadID)
		if err != nil {
			return 0, fmt.Errorf("read order seq: %w", err)
		}
		return o.MessageSeq, nil

	case "ticket":
		upd := tx.Ticket.Update().
			Where(entticket.ID(req.ThreadID)).
			AddMessageSeq(1).
			AddVersion(1)
		if req.Sender == "client" {
			upd = upd.SetAdminUnread(true)
		} else {
			upd = upd.SetClientUnread(true)
		}
		n, err := upd.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("advance ticket seq: %w", err)
		}
		if n == 0 {
			return 0, ErrThreadNotFound
		}

		t, err := tx.Ticket.Get(ctx, req.ThreadID)
		if err != nil {
			return 0, fmt.Errorf("read ticket seq: %w", err)
		}
		return t.MessageSeq, nil
	}

	return 0, ErrInvalidThreadType
}

func validateThreadType(tt string) error {
	if tt != "order" && tt != "ticket" {
		return ErrInvalidThreadType
	}
	return nil
}

func validatePayload(req *AppendRequest) error {
	if req.Body != nil {
		trimmed := strings.TrimSpace(*req.Body)
		if trimmed == "" {
			req.Body = nil
		} else {
			req.Body = &trimmed
		}
	}

	hasBody := req.Body != nil
	hasFile := req.FileKey != nil && *req.FileKey != "" &&
		req.FileName != nil && *req.FileName != ""

	switch {
	case hasBody && hasFile:
		return ErrMixedPayload
	case !hasBody && !hasFile:
		return ErrEmptyMessage
	}
	return nil
}

func (s *chatService) publish(msg *repo.ChatMessage) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(events.MessageEvent{
		Type:       events.KindMessage,
		ThreadType: string(msg.ThreadType),
		ThreadID:   msg.ThreadID,
		Seq:        msg.Seq,
		Sender:     string(msg.Sender),
		Body:       msg.Body,
		FileKey:    msg.FileKey,
		FileName:   msg.FileName,
		SentAt:     msg.CreatedAt,
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(events.ThreadSubject(string(msg.ThreadType), msg.ThreadID, events.KindMessage), payload)
}
