package order

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nyaruka/phonenumbers"

	"github.com/bystrodel/backend/internal/events"
	"github.com/bystrodel/backend/internal/repo"
	entmsg "github.com/bystrodel/backend/internal/repo/chatmessage"
	entorder "github.com/bystrodel/backend/internal/repo/order"
	"github.com/bystrodel/backend/pkg/util/codes"
)

// Clients submit phone numbers in local notation; numbers are stored E.164.
const defaultPhoneRegion = "RU"

// welcomeTemplate seeds every new order's chat thread as the first
// manager message: name, short order id, service name.
const welcomeTemplate = `Здравствуйте, %s! Ваш заказ №%s по услуге "%s" принят. Мы скоро свяжемся с вами для обсуждения деталей.`

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Service     string
	ClientName  string
	ClientEmail string
	ClientPhone string // optional
	Details     string
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
	Create(ctx context.Context, req CreateRequest) (*repo.Order, error)
	ListForOwner(ctx context.Context, email string) ([]*repo.Order, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Order, error)
	GetByID(ctx context.Context, orderID uuid.UUID) (*repo.Order, error)
	GetForOwner(ctx context.Context, orderID uuid.UUID, email string) (*repo.Order, error)
	GetByReference(ctx context.Context, reference string) (*repo.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*repo.Order, error)
	Delete(ctx context.Context, orderID uuid.UUID) error
	PurgeFinished(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, orderID uuid.UUID, side string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type orderService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &orderService{db: db, nc: nc}
}

func (s *orderService) Create(ctx context.Context, req CreateRequest) (*repo.Order, error) {
	req.Service = strings.TrimSpace(req.Service)
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientEmail = strings.ToLower(strings.TrimSpace(req.ClientEmail))
	req.Details = strings.TrimSpace(req.Details)

	if req.Service == "" || req.ClientName == "" || req.ClientEmail == "" || req.Details == "" {
		return nil, ErrValidation
	}

	var phone *string
	if p := strings.TrimSpace(req.ClientPhone); p != "" {
		normalized, err := normalizePhone(p)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		phone = &normalized
	}

	reference, err := codes.GenerateOrderReference(time.Now())
	if err != nil {
		return nil, fmt.Errorf("generate order reference: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	c := tx.Order.Create().
		SetReference(reference).
		SetService(req.Service).
		SetStatus(entorder.StatusNew).
		SetClientName(req.ClientName).
		SetClientEmail(req.ClientEmail).
		SetDetails(req.Details).
		SetCanDiscuss(true).
		SetCanDownload(false).
		SetAdminUnread(true).
		SetClientUnread(false).
		SetMessageSeq(1) // the welcome message below
	if phone != nil {
		c = c.SetClientPhone(*phone)
	}

	o, err := c.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create order: %w", err)
	}

	welcome := fmt.Sprintf(welcomeTemplate, req.ClientName, codes.ShortID(reference), req.Service)
	_, err = tx.ChatMessage.Create().
		SetThreadType(entmsg.ThreadTypeOrder).
		SetThreadID(o.ID).
		SetSeq(1).
		SetSender(entmsg.SenderManager).
		SetBody(welcome).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create welcome message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}

	s.publishCreated(o)

	return o, nil
}

func (s *orderService) ListForOwner(ctx context.Context, email string) ([]*repo.Order, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	orders, err := s.db.Order.Query().
		Where(entorder.ClientEmail(email)).
		Order(entorder.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders for owner: %w", err)
	}
	return orders, nil
}

func (s *orderService) List(ctx context.Context, req ListRequest) ([]*repo.Order, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Order.Query()
	if req.Status != nil {
		st := entorder.Status(*req.Status)
		if err := entorder.StatusValidator(st); err != nil {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entorder.StatusEQ(st))
	}

	orders, err := q.
		Order(entorder.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetByID(ctx context.Context, orderID uuid.UUID) (*repo.Order, error) {
	o, err := s.db.Order.Get(ctx, orderID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (s *orderService) GetForOwner(ctx context.Context, orderID uuid.UUID, email string) (*repo.Order, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	o, err := s.db.Order.Query().
		Where(entorder.ID(orderID), entorder.ClientEmail(email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order for owner: %w", err)
	}
	return o, nil
}

func (s *orderService) GetByReference(ctx context.Context, reference string) (*repo.Order, error) {
	o, err := s.db.Order.Query().
		Where(entorder.Reference(strings.ToUpper(strings.TrimSpace(reference)))).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order by reference: %w", err)
	}
	return o, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*repo.Order, error) {
	st := entorder.Status(status)
	if err := entorder.StatusValidator(st); err != nil {
		return nil, ErrInvalidStatus
	}

	upd := s.db.Order.UpdateOneID(orderID).
		SetStatus(st).
		SetClientUnread(true). // a status change is news for the client
		AddVersion(1)

	// Completed orders unlock the deliverables download.
	if st == entorder.StatusCompleted {
		upd = upd.SetCanDownload(true)
	}

	o, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.publishStatus(o)

	return o, nil
}

func (s *orderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.ChatMessage.Delete().
		Where(entmsg.ThreadTypeEQ(entmsg.ThreadTypeOrder), entmsg.ThreadID(orderID)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete order messages: %w", err)
	}

	if err := tx.Order.DeleteOneID(orderID).Exec(ctx); err != nil {
		tx.Rollback()
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete order: %w", err)
	}

	return tx.Commit()
}

// PurgeFinished deletes all completed and cancelled orders together with
// their chat threads and reports how many orders were removed. Orders in
// any other status are untouched.
func (s *orderService) PurgeFinished(ctx context.Context) (int, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	finished := entorder.StatusIn(entorder.StatusCompleted, entorder.StatusCancelled)

	ids, err := tx.Order.Query().Where(finished).IDs(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("query finished orders: %w", err)
	}
	if len(ids) == 0 {
		tx.Rollback()
		return 0, nil
	}

	_, err = tx.ChatMessage.Delete().
		Where(entmsg.ThreadTypeEQ(entmsg.ThreadTypeOrder), entmsg.ThreadIDIn(ids...)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete finished order messages: %w", err)
	}

	n, err := tx.Order.Delete().Where(entorder.IDIn(ids...)).Exec(ctx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete finished orders: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purge: %w", err)
	}
	return n, nil
}

// MarkRead clears the unread flag for one side of the thread. Calling it
// when the flag is already clear is a no-op and does not bump the version.
// The clear is conditional on the flag being set, so a message appended
// concurrently cannot have its fresh flag wiped.
func (s *orderService) MarkRead(ctx context.Context, orderID uuid.UUID, side string) error {
	upd := s.db.Order.Update().AddVersion(1)
	switch side {
	case "client":
		upd = upd.
			Where(entorder.ID(orderID), entorder.ClientUnread(true)).
			SetClientUnread(false)
	case "manager":
		upd = upd.
			Where(entorder.ID(orderID), entorder.AdminUnread(true)).
			SetAdminUnread(false)
	default:
		return ErrInvalidSide
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("mark order read: %w", err)
	}
	if n == 0 {
		// Either already read or the order does not exist.
		exists, err := s.db.Order.Query().Where(entorder.ID(orderID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("mark order read: %w", err)
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

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("phone %q is not a valid number", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *orderService) publishCreated(o *repo.Order) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(events.CreatedEvent{
		Kind:      "order",
		ID:        o.ID,
		Reference: o.Reference,
		Title:     o.Service,
		Name:      o.ClientName,
		Email:     o.ClientEmail,
		Body:      o.Details,
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(events.SubjectOrderCreated, payload)
}

func (s *orderService) publishStatus(o *repo.Order) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(events.StatusEvent{
		Type:       events.KindStatus,
		ThreadType: "order",
		ThreadID:   o.ID,
		Status:     string(o.Status),
		Version:    o.Version,
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(events.ThreadSubject("order", o.ID, events.KindStatus), payload)
}
