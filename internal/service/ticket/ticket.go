package ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/bystrodel/backend/internal/events"
	"github.com/bystrodel/backend/internal/repo"
	entmsg "github.com/bystrodel/backend/internal/repo/chatmessage"
	entticket "github.com/bystrodel/backend/internal/repo/ticket"
	"github.com/bystrodel/backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CreateRequest is the contact form payload. Every submission opens a
// support ticket.
type CreateRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ListRequest struct {
	Status  *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Ticket, error)
	ListForOwner(ctx context.Context, email string) ([]*repo.Ticket, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Ticket, error)
	GetByID(ctx context.Context, ticketID uuid.UUID) (*repo.Ticket, error)
	GetForOwner(ctx context.Context, ticketID uuid.UUID, email string) (*repo.Ticket, error)
	GetByReference(ctx context.Context, reference string) (*repo.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID uuid.UUID, status string) (*repo.Ticket, error)
	Delete(ctx context.Context, ticketID uuid.UUID) error
	PurgeFinished(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, ticketID uuid.UUID, side string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type ticketService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &ticketService{db: db, nc: nc}
}

func (s *ticketService) Create(ctx context.Context, req CreateRequest) (*repo.Ticket, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return nil, ErrValidation
	}

	reference, err := codes.GenerateTicketReference(time.Now())
	if err != nil {
		return nil, fmt.Errorf("generate ticket reference: %w", err)
	}

	t, err := s.db.Ticket.Create().
		SetReference(reference).
		SetName(req.Name).
		SetEmail(req.Email).
		SetSubject(req.Subject).
		SetMessage(req.Message).
		SetStatus(entticket.StatusNew).
		SetAdminUnread(true).
		SetClientUnread(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.publishCreated(t)

	return t, nil
}

func (s *ticketService) ListForOwner(ctx context.Context, email string) ([]*repo.Ticket, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	tickets, err := s.db.Ticket.Query().
		Where(entticket.Email(email)).
		Order(entticket.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets for owner: %w", err)
	}
	return tickets, nil
}

func (s *ticketService) List(ctx context.Context, req ListRequest) ([]*repo.Ticket, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Ticket.Query()
	if req.Status != nil {
		st := entticket.Status(*req.Status)
		if err := entticket.StatusValidator(st); err != nil {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entticket.StatusEQ(st))
	}

	tickets, err := q.
		Order(entticket.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *ticketService) GetByID(ctx context.Context, ticketID uuid.UUID) (*repo.Ticket, error) {
	t, err := s.db.Ticket.Get(ctx, ticketID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

func (s *ticketService) GetForOwner(ctx context.Context, ticketID uuid.UUID, email string) (*repo.Ticket, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	t, err := s.db.Ticket.Query().
		Where(entticket.ID(ticketID), entticket.Email(email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket for owner: %w", err)
	}
	return t, nil
}

func (s *ticketService) GetByReference(ctx context.Context, reference string) (*repo.Ticket, error) {
	t, err := s.db.Ticket.Query().
		Where(entticket.Reference(strings.ToUpper(strings.TrimSpace(reference)))).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket by reference: %w", err)
	}
	return t, nil
}

func (s *ticketService) UpdateStatus(ctx context.Context, ticketID uuid.UUID, status string) (*repo.Ticket, error) {
	st := entticket.Status(status)
	if err := entticket.StatusValidator(st); err != nil {
		return nil, ErrInvalidStatus
	}

	t, err := s.db.Ticket.UpdateOneID(ticketID).
		SetStatus(st).
		SetClientUnread(true).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update ticket status: %w", err)
	}

	s.publishStatus(t)

	return t, nil
}

func (s *ticketService) Delete(ctx context.Context, ticketID uuid.UUID) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.ChatMessage.Delete().
		Where(entmsg.ThreadTypeEQ(entmsg.ThreadTypeTicket), entmsg.ThreadID(ticketID)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete ticket messages: %w", err)
	}

	if err := tx.Ticket.DeleteOneID(ticketID).Exec(ctx); err != nil {
		tx.Rollback()
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete ticket: %w", err)
	}

	return tx.Commit()
}

// PurgeFinished deletes all completed and rejected tickets with their
// chat threads; open tickets survive untouched.
func (s *ticketService) PurgeFinished(ctx context.Context) (int, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	finished := entticket.StatusIn(entticket.StatusCompleted, entticket.StatusRejected)

	ids, err := tx.Ticket.Query().Where(finished).IDs(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("query finished tickets: %w", err)
	}
	if len(ids) == 0 {
		tx.Rollback()
		return 0, nil
	}

	_, err = tx.ChatMessage.Delete().
		Where(entmsg.ThreadTypeEQ(entmsg.ThreadTypeTicket), entmsg.ThreadIDIn(ids...)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete finished ticket messages: %w", err)
	}

	n, err := tx.Ticket.Delete().Where(entticket.IDIn(ids...)).Exec(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete finished tickets: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purge: %w", err)
	}
	return n, nil
}

// MarkRead clears the unread flag for one side of the thread and is
// idempotent. The clear is conditional on the flag being set, so a
// message appended concurrently cannot have its fresh flag wiped.
func (s *ticketService) MarkRead(ctx context.Context, ticketID uuid.UUID, side string) error {
	upd := s.db.Ticket.Update().AddVersion(1)
	switch side {
	case "client":
		upd = upd.
			Where(entticket.ID(ticketID), entticket.ClientUnread(true)).
			SetClientUnread(false)
	case "manager":
		upd = upd.
			Where(entticket.ID(ticketID), entticket.AdminUnread(true)).
			SetAdminUnread(false)
	default:
		return ErrInvalidSide
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("mark ticket read: %w", err)
	}
	if n == 0 {
		// Either already read or the ticket does not exist.
		exists, err := s.db.Ticket.Query().Where(entticket.ID(ticketID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("mark ticket read: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *ticketService) publishCreated(t *repo.Ticket) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(events.CreatedEvent{
		Kind:      "ticket",
		ID:        t.ID,
		Reference: t.Reference,
		Title:     t.Subject,
		Name:      t.Name,
		Email:     t.Email,
		Body:      t.Message,
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(events.SubjectTicketCreated, payload)
}

func (s *ticketService) publishStatus(t *repo.Ticket) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(events.StatusEvent{
		Type:       events.KindStatus,
		ThreadType: "ticket",
		ThreadID:   t.ID,
		Status:     string(t.Status),
		Version:    t.Version,
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(events.ThreadSubject("ticket", t.ID, events.KindStatus), payload)
}
