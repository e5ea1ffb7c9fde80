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
	"github.com/bystrodel/backend/internal/repo/order"
	"github.com/bystrodel/backend/internal/repo/predicate"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *OrderUpdate) SetVersion(v int) *OrderUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableVersion(v *int) *OrderUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *OrderUpdate) AddVersion(v int) *OrderUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetService sets the "service" field.
func (_u *OrderUpdate) SetService(v string) *OrderUpdate {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableService(v *string) *OrderUpdate {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v order.Status) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *order.Status) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *OrderUpdate) SetClientName(v string) *OrderUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableClientName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *OrderUpdate) SetClientEmail(v string) *OrderUpdate {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableClientEmail(v *string) *OrderUpdate {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *OrderUpdate) SetClientPhone(v string) *OrderUpdate {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableClientPhone(v *string) *OrderUpdate {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *OrderUpdate) ClearClientPhone() *OrderUpdate {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetDetails sets the "details" field.
func (_u *OrderUpdate) SetDetails(v string) *OrderUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDetails(v *string) *OrderUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetCanDiscuss sets the "can_discuss" field.
func (_u *OrderUpdate) SetCanDiscuss(v bool) *OrderUpdate {
	_u.mutation.SetCanDiscuss(v)
	return _u
}

// SetNillableCanDiscuss sets the "can_discuss" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCanDiscuss(v *bool) *OrderUpdate {
	if v != nil {
		_u.SetCanDiscuss(*v)
	}
	return _u
}

// SetCanDownload sets the "can_download" field.
func (_u *OrderUpdate) SetCanDownload(v bool) *OrderUpdate {
	_u.mutation.SetCanDownload(v)
	return _u
}

// SetNillableCanDownload sets the "can_download" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCanDownload(v *bool) *OrderUpdate {
	if v != nil {
		_u.SetCanDownload(*v)
	}
	return _u
}

// SetAdminUnread sets the "admin_unread" field.
func (_u *OrderUpdate) SetAdminUnread(v bool) *OrderUpdate {
	_u.mutation.SetAdminUnread(v)
	return _u
}

// SetNillableAdminUnread sets the "admin_unread" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableAdminUnread(v *bool) *OrderUpdate {
	if v != nil {
		_u.SetAdminUnread(*v)
	}
	return _u
}

// SetClientUnread sets the "client_unread" field.
func (_u *OrderUpdate) SetClientUnread(v bool) *OrderUpdate {
	_u.mutation.SetClientUnread(v)
	return _u
}

// SetNillableClientUnread sets the "client_unread" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableClientUnread(v *bool) *OrderUpdate {
	if v != nil {
		_u.SetClientUnread(*v)
	}
	return _u
}

// SetMessageSeq sets the "message_seq" field.
func (_u *OrderUpdate) SetMessageSeq(v int) *OrderUpdate {
	_u.mutation.ResetMessageSeq()
	_u.mutation.SetMessageSeq(v)
	return _u
}

// SetNillableMessageSeq sets the "message_seq" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableMessageSeq(v *int) *OrderUpdate {
	if v != nil {
		_u.SetMessageSeq(*v)
	}
	return _u
}

// AddMessageSeq adds value to the "message_seq" field.
func (_u *OrderUpdate) AddMessageSeq(v int) *OrderUpdate {
	_u.mutation.AddMessageSeq(v)
	return _u
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := order.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Order.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Service(); ok {
		if err := order.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`repo: validator failed for field "Order.service": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientName(); ok {
		if err := order.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`repo: validator failed for field "Order.client_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientEmail(); ok {
		if err := order.ClientEmailValidator(v); err != nil {
			return &ValidationError{Name: "client_email", err: fmt.Errorf(`repo: validator failed for field "Order.client_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientPhone(); ok {
		if err := order.ClientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "client_phone", err: fmt.Errorf(`repo: validator failed for field "Order.client_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageSeq(); ok {
		if err := order.MessageSeqValidator(v); err != nil {
			return &ValidationError{Name: "message_seq", err: fmt.Errorf(`repo: validator failed for field "Order.message_seq": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(order.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(order.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(order.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(order.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(order.FieldClientEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(order.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(order.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(order.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanDiscuss(); ok {
		_spec.SetField(order.FieldCanDiscuss, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanDownload(); ok {
		_spec.SetField(order.FieldCanDownload, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdminUnread(); ok {
		_spec.SetField(order.FieldAdminUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientUnread(); ok {
		_spec.SetField(order.FieldClientUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MessageSeq(); ok {
		_spec.SetField(order.FieldMessageSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageSeq(); ok {
		_spec.AddField(order.FieldMessageSeq, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *OrderUpdateOne) SetVersion(v int) *OrderUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableVersion(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *OrderUpdateOne) AddVersion(v int) *OrderUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetService sets the "service" field.
func (_u *OrderUpdateOne) SetService(v string) *OrderUpdateOne {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableService(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v order.Status) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *order.Status) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *OrderUpdateOne) SetClientName(v string) *OrderUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableClientName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *OrderUpdateOne) SetClientEmail(v string) *OrderUpdateOne {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableClientEmail(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *OrderUpdateOne) SetClientPhone(v string) *OrderUpdateOne {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableClientPhone(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *OrderUpdateOne) ClearClientPhone() *OrderUpdateOne {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetDetails sets the "details" field.
func (_u *OrderUpdateOne) SetDetails(v string) *OrderUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDetails(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetCanDiscuss sets the "can_discuss" field.
func (_u *OrderUpdateOne) SetCanDiscuss(v bool) *OrderUpdateOne {
	_u.mutation.SetCanDiscuss(v)
	return _u
}

// SetNillableCanDiscuss sets the "can_discuss" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCanDiscuss(v *bool) *OrderUpdateOne {
	if v != nil {
		_u.SetCanDiscuss(*v)
	}
	return _u
}

// SetCanDownload sets the "can_download" field.
func (_u *OrderUpdateOne) SetCanDownload(v bool) *OrderUpdateOne {
	_u.mutation.SetCanDownload(v)
	return _u
}

// SetNillableCanDownload sets the "can_download" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCanDownload(v *bool) *OrderUpdateOne {
	if v != nil {
		_u.SetCanDownload(*v)
	}
	return _u
}

// SetAdminUnread sets the "admin_unread" field.
func (_u *OrderUpdateOne) SetAdminUnread(v bool) *OrderUpdateOne {
	_u.mutation.SetAdminUnread(v)
	return _u
}

// SetNillableAdminUnread sets the "admin_unread" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableAdminUnread(v *bool) *OrderUpdateOne {
	if v != nil {
		_u.SetAdminUnread(*v)
	}
	return _u
}

// SetClientUnread sets the "client_unread" field.
func (_u *OrderUpdateOne) SetClientUnread(v bool) *OrderUpdateOne {
	_u.mutation.SetClientUnread(v)
	return _u
}

// SetNillableClientUnread sets the "client_unread" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableClientUnread(v *bool) *OrderUpdateOne {
	if v != nil {
		_u.SetClientUnread(*v)
	}
	return _u
}

// SetMessageSeq sets the "message_seq" field.
func (_u *OrderUpdateOne) SetMessageSeq(v int) *OrderUpdateOne {
	_u.mutation.ResetMessageSeq()
	_u.mutation.SetMessageSeq(v)
	return _u
}

// SetNillableMessageSeq sets the "message_seq" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableMessageSeq(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetMessageSeq(*v)
	}
	return _u
}

// AddMessageSeq adds value to the "message_seq" field.
func (_u *OrderUpdateOne) AddMessageSeq(v int) *OrderUpdateOne {
	_u.mutation.AddMessageSeq(v)
	return _u
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := order.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Order.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Service(); ok {
		if err := order.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`repo: validator failed for field "Order.service": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientName(); ok {
		if err := order.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`repo: validator failed for field "Order.client_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientEmail(); ok {
		if err := order.ClientEmailValidator(v); err != nil {
			return &ValidationError{Name: "client_email", err: fmt.Errorf(`repo: validator failed for field "Order.client_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientPhone(); ok {
		if err := order.ClientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "client_phone", err: fmt.Errorf(`repo: validator failed for field "Order.client_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageSeq(); ok {
		if err := order.MessageSeqValidator(v); err != nil {
			return &ValidationError{Name: "message_seq", err: fmt.Errorf(`repo: validator failed for field "Order.message_seq": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != order.FieldID {
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
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(order.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(order.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(order.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(order.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(order.FieldClientEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(order.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(order.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(order.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanDiscuss(); ok {
		_spec.SetField(order.FieldCanDiscuss, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanDownload(); ok {
		_spec.SetField(order.FieldCanDownload, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdminUnread(); ok {
		_spec.SetField(order.FieldAdminUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientUnread(); ok {
		_spec.SetField(order.FieldClientUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MessageSeq(); ok {
		_spec.SetField(order.FieldMessageSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageSeq(); ok {
		_spec.AddField(order.FieldMessageSeq, field.TypeInt, value)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
