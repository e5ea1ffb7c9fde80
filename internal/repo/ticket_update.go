// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bystrodel/backend/internal/repo/predicate"
	"github.com/bystrodel/backend/internal/repo/ticket"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *TicketUpdate) SetVersion(v int) *TicketUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableVersion(v *int) *TicketUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TicketUpdate) AddVersion(v int) *TicketUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetName sets the "name" field.
func (_u *TicketUpdate) SetName(v string) *TicketUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableName(v *string) *TicketUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TicketUpdate) SetEmail(v string) *TicketUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableEmail(v *string) *TicketUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TicketUpdate) SetSubject(v string) *TicketUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableSubject(v *string) *TicketUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *TicketUpdate) SetMessage(v string) *TicketUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableMessage(v *string) *TicketUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdate) SetStatus(v ticket.Status) *TicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatus(v *ticket.Status) *TicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAdminUnread sets the "admin_unread" field.
func (_u *TicketUpdate) SetAdminUnread(v bool) *TicketUpdate {
	_u.mutation.SetAdminUnread(v)
	return _u
}

// SetNillableAdminUnread sets the "admin_unread" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAdminUnread(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetAdminUnread(*v)
	}
	return _u
}

// SetClientUnread sets the "client_unread" field.
func (_u *TicketUpdate) SetClientUnread(v bool) *TicketUpdate {
	_u.mutation.SetClientUnread(v)
	return _u
}

// SetNillableClientUnread sets the "client_unread" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableClientUnread(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetClientUnread(*v)
	}
	return _u
}

// SetMessageSeq sets the "message_seq" field.
func (_u *TicketUpdate) SetMessageSeq(v int) *TicketUpdate {
	_u.mutation.ResetMessageSeq()
	_u.mutation.SetMessageSeq(v)
	return _u
}

// SetNillableMessageSeq sets the "message_seq" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableMessageSeq(v *int) *TicketUpdate {
	if v != nil {
		_u.SetMessageSeq(*v)
	}
	return _u
}

// AddMessageSeq adds value to the "message_seq" field.
func (_u *TicketUpdate) AddMessageSeq(v int) *TicketUpdate {
	_u.mutation.AddMessageSeq(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := ticket.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Ticket.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := ticket.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Ticket.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := ticket.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Ticket.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := ticket.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Ticket.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageSeq(); ok {
		if err := ticket.MessageSeqValidator(v); err != nil {
			return &ValidationError{Name: "message_seq", err: fmt.Errorf(`repo: validator failed for field "Ticket.message_seq": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(ticket.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(ticket.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(ticket.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(ticket.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminUnread(); ok {
		_spec.SetField(ticket.FieldAdminUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientUnread(); ok {
		_spec.SetField(ticket.FieldClientUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MessageSeq(); ok {
		_spec.SetField(ticket.FieldMessageSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageSeq(); ok {
		_spec.AddField(ticket.FieldMessageSeq, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *TicketUpdateOne) SetVersion(v int) *TicketUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableVersion(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TicketUpdateOne) AddVersion(v int) *TicketUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetName sets the "name" field.
func (_u *TicketUpdateOne) SetName(v string) *TicketUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableName(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TicketUpdateOne) SetEmail(v string) *TicketUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableEmail(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TicketUpdateOne) SetSubject(v string) *TicketUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableSubject(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *TicketUpdateOne) SetMessage(v string) *TicketUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableMessage(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdateOne) SetStatus(v ticket.Status) *TicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatus(v *ticket.Status) *TicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAdminUnread sets the "admin_unread" field.
func (_u *TicketUpdateOne) SetAdminUnread(v bool) *TicketUpdateOne {
	_u.mutation.SetAdminUnread(v)
	return _u
}

// SetNillableAdminUnread sets the "admin_unread" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAdminUnread(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetAdminUnread(*v)
	}
	return _u
}

// SetClientUnread sets the "client_unread" field.
func (_u *TicketUpdateOne) SetClientUnread(v bool) *TicketUpdateOne {
	_u.mutation.SetClientUnread(v)
	return _u
}

// SetNillableClientUnread sets the "client_unread" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableClientUnread(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetClientUnread(*v)
	}
	return _u
}

// SetMessageSeq sets the "message_seq" field.
func (_u *TicketUpdateOne) SetMessageSeq(v int) *TicketUpdateOne {
	_u.mutation.ResetMessageSeq()
	_u.mutation.SetMessageSeq(v)
	return _u
}

// SetNillableMessageSeq sets the "message_seq" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableMessageSeq(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetMessageSeq(*v)
	}
	return _u
}

// AddMessageSeq adds value to the "message_seq" field.
func (_u *TicketUpdateOne) AddMessageSeq(v int) *TicketUpdateOne {
	_u.mutation.AddMessageSeq(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := ticket.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Ticket.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := ticket.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Ticket.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := ticket.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Ticket.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := ticket.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Ticket.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageSeq(); ok {
		if err := ticket.MessageSeqValidator(v); err != nil {
			return &ValidationError{Name: "message_seq", err: fmt.Errorf(`repo: validator failed for field "Ticket.message_seq": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(ticket.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(ticket.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(ticket.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(ticket.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AdminUnread(); ok {
		_spec.SetField(ticket.FieldAdminUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientUnread(); ok {
		_spec.SetField(ticket.FieldClientUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MessageSeq(); ok {
		_spec.SetField(ticket.FieldMessageSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageSeq(); ok {
		_spec.AddField(ticket.FieldMessageSeq, field.TypeInt, value)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
