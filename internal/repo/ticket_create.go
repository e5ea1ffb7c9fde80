// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bystrodel/backend/internal/repo/ticket"
	"github.com/google/uuid"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *TicketCreate) SetVersion(v int) *TicketCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TicketCreate) SetNillableVersion(v *int) *TicketCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetReference sets the "reference" field.
func (_c *TicketCreate) SetReference(v string) *TicketCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TicketCreate) SetName(v string) *TicketCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *TicketCreate) SetEmail(v string) *TicketCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *TicketCreate) SetSubject(v string) *TicketCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *TicketCreate) SetMessage(v string) *TicketCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TicketCreate) SetStatus(v ticket.Status) *TicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStatus(v *ticket.Status) *TicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAdminUnread sets the "admin_unread" field.
func (_c *TicketCreate) SetAdminUnread(v bool) *TicketCreate {
	_c.mutation.SetAdminUnread(v)
	return _c
}

// SetNillableAdminUnread sets the "admin_unread" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAdminUnread(v *bool) *TicketCreate {
	if v != nil {
		_c.SetAdminUnread(*v)
	}
	return _c
}

// SetClientUnread sets the "client_unread" field.
func (_c *TicketCreate) SetClientUnread(v bool) *TicketCreate {
	_c.mutation.SetClientUnread(v)
	return _c
}

// SetNillableClientUnread sets the "client_unread" field if the given value is not nil.
func (_c *TicketCreate) SetNillableClientUnread(v *bool) *TicketCreate {
	if v != nil {
		_c.SetClientUnread(*v)
	}
	return _c
}

// SetMessageSeq sets the "message_seq" field.
func (_c *TicketCreate) SetMessageSeq(v int) *TicketCreate {
	_c.mutation.SetMessageSeq(v)
	return _c
}

// SetNillableMessageSeq sets the "message_seq" field if the given value is not nil.
func (_c *TicketCreate) SetNillableMessageSeq(v *int) *TicketCreate {
	if v != nil {
		_c.SetMessageSeq(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCreate) SetID(v uuid.UUID) *TicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableID(v *uuid.UUID) *TicketCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := ticket.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AdminUnread(); !ok {
		v := ticket.DefaultAdminUnread
		_c.mutation.SetAdminUnread(v)
	}
	if _, ok := _c.mutation.ClientUnread(); !ok {
		v := ticket.DefaultClientUnread
		_c.mutation.SetClientUnread(v)
	}
	if _, ok := _c.mutation.MessageSeq(); !ok {
		v := ticket.DefaultMessageSeq
		_c.mutation.SetMessageSeq(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ticket.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Ticket.updated_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "Ticket.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := ticket.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Ticket.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`repo: missing required field "Ticket.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := ticket.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`repo: validator failed for field "Ticket.reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Ticket.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := ticket.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Ticket.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Ticket.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := ticket.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Ticket.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`repo: missing required field "Ticket.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := ticket.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Ticket.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`repo: missing required field "Ticket.message"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Ticket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AdminUnread(); !ok {
		return &ValidationError{Name: "admin_unread", err: errors.New(`repo: missing required field "Ticket.admin_unread"`)}
	}
	if _, ok := _c.mutation.ClientUnread(); !ok {
		return &ValidationError{Name: "client_unread", err: errors.New(`repo: missing required field "Ticket.client_unread"`)}
	}
	if _, ok := _c.mutation.MessageSeq(); !ok {
		return &ValidationError{Name: "message_seq", err: errors.New(`repo: missing required field "Ticket.message_seq"`)}
	}
	if v, ok := _c.mutation.MessageSeq(); ok {
		if err := ticket.MessageSeqValidator(v); err != nil {
			return &ValidationError{Name: "message_seq", err: fmt.Errorf(`repo: validator failed for field "Ticket.message_seq": %w`, err)}
		}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(ticket.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(ticket.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(ticket.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(ticket.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(ticket.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(ticket.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AdminUnread(); ok {
		_spec.SetField(ticket.FieldAdminUnread, field.TypeBool, value)
		_node.AdminUnread = value
	}
	if value, ok := _c.mutation.ClientUnread(); ok {
		_spec.SetField(ticket.FieldClientUnread, field.TypeBool, value)
		_node.ClientUnread = value
	}
	if value, ok := _c.mutation.MessageSeq(); ok {
		_spec.SetField(ticket.FieldMessageSeq, field.TypeInt, value)
		_node.MessageSeq = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreate) OnConflict(opts ...sql.ConflictOption) *TicketUpsertOne {
	_c.conflict = opts
	return &TicketUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreate) OnConflictColumns(columns ...string) *TicketUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertOne{
		create: _c,
	}
}

type (
	// TicketUpsertOne is the builder for "upsert"-ing
	//  one Ticket node.
	TicketUpsertOne struct {
		create *TicketCreate
	}

	// TicketUpsert is the "OnConflict" setter.
	TicketUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsert) SetUpdatedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateUpdatedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldUpdatedAt)
	return u
}

// SetVersion sets the "version" field.
func (u *TicketUpsert) SetVersion(v int) *TicketUpsert {
	u.Set(ticket.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TicketUpsert) UpdateVersion() *TicketUpsert {
	u.SetExcluded(ticket.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *TicketUpsert) AddVersion(v int) *TicketUpsert {
	u.Add(ticket.FieldVersion, v)
	return u
}

// SetName sets the "name" field.
func (u *TicketUpsert) SetName(v string) *TicketUpsert {
	u.Set(ticket.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TicketUpsert) UpdateName() *TicketUpsert {
	u.SetExcluded(ticket.FieldName)
	return u
}

// SetEmail sets the "email" field.
func (u *TicketUpsert) SetEmail(v string) *TicketUpsert {
	u.Set(ticket.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *TicketUpsert) UpdateEmail() *TicketUpsert {
	u.SetExcluded(ticket.FieldEmail)
	return u
}

// SetSubject sets the "subject" field.
func (u *TicketUpsert) SetSubject(v string) *TicketUpsert {
	u.Set(ticket.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TicketUpsert) UpdateSubject() *TicketUpsert {
	u.SetExcluded(ticket.FieldSubject)
	return u
}

// SetMessage sets the "message" field.
func (u *TicketUpsert) SetMessage(v string) *TicketUpsert {
	u.Set(ticket.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *TicketUpsert) UpdateMessage() *TicketUpsert {
	u.SetExcluded(ticket.FieldMessage)
	return u
}

// SetStatus sets the "status" field.
func (u *TicketUpsert) SetStatus(v ticket.Status) *TicketUpsert {
	u.Set(ticket.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsert) UpdateStatus() *TicketUpsert {
	u.SetExcluded(ticket.FieldStatus)
	return u
}

// SetAdminUnread sets the "admin_unread" field.
func (u *TicketUpsert) SetAdminUnread(v bool) *TicketUpsert {
	u.Set(ticket.FieldAdminUnread, v)
	return u
}

// UpdateAdminUnread sets the "admin_unread" field to the value that was provided on create.
func (u *TicketUpsert) UpdateAdminUnread() *TicketUpsert {
	u.SetExcluded(ticket.FieldAdminUnread)
	return u
}

// SetClientUnread sets the "client_unread" field.
func (u *TicketUpsert) SetClientUnread(v bool) *TicketUpsert {
	u.Set(ticket.FieldClientUnread, v)
	return u
}

// UpdateClientUnread sets the "client_unread" field to the value that was provided on create.
func (u *TicketUpsert) UpdateClientUnread() *TicketUpsert {
	u.SetExcluded(ticket.FieldClientUnread)
	return u
}

// SetMessageSeq sets the "message_seq" field.
func (u *TicketUpsert) SetMessageSeq(v int) *TicketUpsert {
	u.Set(ticket.FieldMessageSeq, v)
	return u
}

// UpdateMessageSeq sets the "message_seq" field to the value that was provided on create.
func (u *TicketUpsert) UpdateMessageSeq() *TicketUpsert {
	u.SetExcluded(ticket.FieldMessageSeq)
	return u
}

// AddMessageSeq adds v to the "message_seq" field.
func (u *TicketUpsert) AddMessageSeq(v int) *TicketUpsert {
	u.Add(ticket.FieldMessageSeq, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TicketUpsertOne) UpdateNewValues() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ticket.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ticket.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Reference(); exists {
			s.SetIgnore(ticket.FieldReference)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TicketUpsertOne) Ignore() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertOne) DoNothing() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreate.OnConflict
// documentation for more info.
func (u *TicketUpsertOne) Update(set func(*TicketUpsert)) *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertOne) SetUpdatedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateUpdatedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetVersion sets the "version" field.
func (u *TicketUpsertOne) SetVersion(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TicketUpsertOne) AddVersion(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateVersion() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateVersion()
	})
}

// SetName sets the "name" field.
func (u *TicketUpsertOne) SetName(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateName() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *TicketUpsertOne) SetEmail(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateEmail() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateEmail()
	})
}

// SetSubject sets the "subject" field.
func (u *TicketUpsertOne) SetSubject(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateSubject() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateSubject()
	})
}

// SetMessage sets the "message" field.
func (u *TicketUpsertOne) SetMessage(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateMessage() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateMessage()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertOne) SetStatus(v ticket.Status) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateStatus() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetAdminUnread sets the "admin_unread" field.
func (u *TicketUpsertOne) SetAdminUnread(v bool) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetAdminUnread(v)
	})
}

// UpdateAdminUnread sets the "admin_unread" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateAdminUnread() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateAdminUnread()
	})
}

// SetClientUnread sets the "client_unread" field.
func (u *TicketUpsertOne) SetClientUnread(v bool) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetClientUnread(v)
	})
}

// UpdateClientUnread sets the "client_unread" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateClientUnread() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateClientUnread()
	})
}

// SetMessageSeq sets the "message_seq" field.
func (u *TicketUpsertOne) SetMessageSeq(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetMessageSeq(v)
	})
}

// AddMessageSeq adds v to the "message_seq" field.
func (u *TicketUpsertOne) AddMessageSeq(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddMessageSeq(v)
	})
}

// UpdateMessageSeq sets the "message_seq" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateMessageSeq() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateMessageSeq()
	})
}

// Exec executes the query.
func (u *TicketUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TicketCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TicketUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TicketUpsertOne.ID is not supported by MySQL driver. Use TicketUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TicketUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
	conflict []sql.ConflictOption
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflict(opts ...sql.ConflictOption) *TicketUpsertBulk {
	_c.conflict = opts
	return &TicketUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflictColumns(columns ...string) *TicketUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertBulk{
		create: _c,
	}
}

// TicketUpsertBulk is the builder for "upsert"-ing
// a bulk of Ticket nodes.
type TicketUpsertBulk struct {
	create *TicketCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TicketUpsertBulk) UpdateNewValues() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ticket.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ticket.FieldCreatedAt)
			}
			if _, exists := b.mutation.Reference(); exists {
				s.SetIgnore(ticket.FieldReference)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TicketUpsertBulk) Ignore() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertBulk) DoNothing() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreateBulk.OnConflict
// documentation for more info.
func (u *TicketUpsertBulk) Update(set func(*TicketUpsert)) *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertBulk) SetUpdatedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateUpdatedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetVersion sets the "version" field.
func (u *TicketUpsertBulk) SetVersion(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TicketUpsertBulk) AddVersion(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateVersion() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateVersion()
	})
}

// SetName sets the "name" field.
func (u *TicketUpsertBulk) SetName(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateName() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *TicketUpsertBulk) SetEmail(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateEmail() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateEmail()
	})
}

// SetSubject sets the "subject" field.
func (u *TicketUpsertBulk) SetSubject(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateSubject() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateSubject()
	})
}

// SetMessage sets the "message" field.
func (u *TicketUpsertBulk) SetMessage(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateMessage() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateMessage()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertBulk) SetStatus(v ticket.Status) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateStatus() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetAdminUnread sets the "admin_unread" field.
func (u *TicketUpsertBulk) SetAdminUnread(v bool) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetAdminUnread(v)
	})
}

// UpdateAdminUnread sets the "admin_unread" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateAdminUnread() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateAdminUnread()
	})
}

// SetClientUnread sets the "client_unread" field.
func (u *TicketUpsertBulk) SetClientUnread(v bool) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetClientUnread(v)
	})
}

// UpdateClientUnread sets the "client_unread" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateClientUnread() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateClientUnread()
	})
}

// SetMessageSeq sets the "message_seq" field.
func (u *TicketUpsertBulk) SetMessageSeq(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetMessageSeq(v)
	})
}

// AddMessageSeq adds v to the "message_seq" field.
func (u *TicketUpsertBulk) AddMessageSeq(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddMessageSeq(v)
	})
}

// UpdateMessageSeq sets the "message_seq" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateMessageSeq() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateMessageSeq()
	})
}

// Exec executes the query.
func (u *TicketUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TicketCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TicketCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
