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
	"github.com/bystrodel/backend/internal/repo/order"
	"github.com/google/uuid"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderCreate) SetUpdatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableUpdatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *OrderCreate) SetVersion(v int) *OrderCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *OrderCreate) SetNillableVersion(v *int) *OrderCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetReference sets the "reference" field.
func (_c *OrderCreate) SetReference(v string) *OrderCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetService sets the "service" field.
func (_c *OrderCreate) SetService(v string) *OrderCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OrderCreate) SetStatus(v order.Status) *OrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableStatus(v *order.Status) *OrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *OrderCreate) SetClientName(v string) *OrderCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetClientEmail sets the "client_email" field.
func (_c *OrderCreate) SetClientEmail(v string) *OrderCreate {
	_c.mutation.SetClientEmail(v)
	return _c
}

// SetClientPhone sets the "client_phone" field.
func (_c *OrderCreate) SetClientPhone(v string) *OrderCreate {
	_c.mutation.SetClientPhone(v)
	return _c
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_c *OrderCreate) SetNillableClientPhone(v *string) *OrderCreate {
	if v != nil {
		_c.SetClientPhone(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *OrderCreate) SetDetails(v string) *OrderCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCanDiscuss sets the "can_discuss" field.
func (_c *OrderCreate) SetCanDiscuss(v bool) *OrderCreate {
	_c.mutation.SetCanDiscuss(v)
	return _c
}

// SetNillableCanDiscuss sets the "can_discuss" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCanDiscuss(v *bool) *OrderCreate {
	if v != nil {
		_c.SetCanDiscuss(*v)
	}
	return _c
}

// SetCanDownload sets the "can_download" field.
func (_c *OrderCreate) SetCanDownload(v bool) *OrderCreate {
	_c.mutation.SetCanDownload(v)
	return _c
}

// SetNillableCanDownload sets the "can_download" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCanDownload(v *bool) *OrderCreate {
	if v != nil {
		_c.SetCanDownload(*v)
	}
	return _c
}

// SetAdminUnread sets the "admin_unread" field.
func (_c *OrderCreate) SetAdminUnread(v bool) *OrderCreate {
	_c.mutation.SetAdminUnread(v)
	return _c
}

// SetNillableAdminUnread sets the "admin_unread" field if the given value is not nil.
func (_c *OrderCreate) SetNillableAdminUnread(v *bool) *OrderCreate {
	if v != nil {
		_c.SetAdminUnread(*v)
	}
	return _c
}

// SetClientUnread sets the "client_unread" field.
func (_c *OrderCreate) SetClientUnread(v bool) *OrderCreate {
	_c.mutation.SetClientUnread(v)
	return _c
}

// SetNillableClientUnread sets the "client_unread" field if the given value is not nil.
func (_c *OrderCreate) SetNillableClientUnread(v *bool) *OrderCreate {
	if v != nil {
		_c.SetClientUnread(*v)
	}
	return _c
}

// SetMessageSeq sets the "message_seq" field.
func (_c *OrderCreate) SetMessageSeq(v int) *OrderCreate {
	_c.mutation.SetMessageSeq(v)
	return _c
}

// SetNillableMessageSeq sets the "message_seq" field if the given value is not nil.
func (_c *OrderCreate) SetNillableMessageSeq(v *int) *OrderCreate {
	if v != nil {
		_c.SetMessageSeq(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableID(v *uuid.UUID) *OrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := order.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := order.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CanDiscuss(); !ok {
		v := order.DefaultCanDiscuss
		_c.mutation.SetCanDiscuss(v)
	}
	if _, ok := _c.mutation.CanDownload(); !ok {
		v := order.DefaultCanDownload
		_c.mutation.SetCanDownload(v)
	}
	if _, ok := _c.mutation.AdminUnread(); !ok {
		v := order.DefaultAdminUnread
		_c.mutation.SetAdminUnread(v)
	}
	if _, ok := _c.mutation.ClientUnread(); !ok {
		v := order.DefaultClientUnread
		_c.mutation.SetClientUnread(v)
	}
	if _, ok := _c.mutation.MessageSeq(); !ok {
		v := order.DefaultMessageSeq
		_c.mutation.SetMessageSeq(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := order.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Order.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Order.updated_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "Order.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := order.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Order.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`repo: missing required field "Order.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := order.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`repo: validator failed for field "Order.reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`repo: missing required field "Order.service"`)}
	}
	if v, ok := _c.mutation.Service(); ok {
		if err := order.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`repo: validator failed for field "Order.service": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Order.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Order.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientName(); !ok {
		return &ValidationError{Name: "client_name", err: errors.New(`repo: missing required field "Order.client_name"`)}
	}
	if v, ok := _c.mutation.ClientName(); ok {
		if err := order.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`repo: validator failed for field "Order.client_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientEmail(); !ok {
		return &ValidationError{Name: "client_email", err: errors.New(`repo: missing required field "Order.client_email"`)}
	}
	if v, ok := _c.mutation.ClientEmail(); ok {
		if err := order.ClientEmailValidator(v); err != nil {
			return &ValidationError{Name: "client_email", err: fmt.Errorf(`repo: validator failed for field "Order.client_email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ClientPhone(); ok {
		if err := order.ClientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "client_phone", err: fmt.Errorf(`repo: validator failed for field "Order.client_phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`repo: missing required field "Order.details"`)}
	}
	if _, ok := _c.mutation.CanDiscuss(); !ok {
		return &ValidationError{Name: "can_discuss", err: errors.New(`repo: missing required field "Order.can_discuss"`)}
	}
	if _, ok := _c.mutation.CanDownload(); !ok {
		return &ValidationError{Name: "can_download", err: errors.New(`repo: missing required field "Order.can_download"`)}
	}
	if _, ok := _c.mutation.AdminUnread(); !ok {
		return &ValidationError{Name: "admin_unread", err: errors.New(`repo: missing required field "Order.admin_unread"`)}
	}
	if _, ok := _c.mutation.ClientUnread(); !ok {
		return &ValidationError{Name: "client_unread", err: errors.New(`repo: missing required field "Order.client_unread"`)}
	}
	if _, ok := _c.mutation.MessageSeq(); !ok {
		return &ValidationError{Name: "message_seq", err: errors.New(`repo: missing required field "Order.message_seq"`)}
	}
	if v, ok := _c.mutation.MessageSeq(); ok {
		if err := order.MessageSeqValidator(v); err != nil {
			return &ValidationError{Name: "message_seq", err: fmt.Errorf(`repo: validator failed for field "Order.message_seq": %w`, err)}
		}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
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

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(order.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(order.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(order.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(order.FieldClientName, field.TypeString, value)
		_node.ClientName = value
	}
	if value, ok := _c.mutation.ClientEmail(); ok {
		_spec.SetField(order.FieldClientEmail, field.TypeString, value)
		_node.ClientEmail = value
	}
	if value, ok := _c.mutation.ClientPhone(); ok {
		_spec.SetField(order.FieldClientPhone, field.TypeString, value)
		_node.ClientPhone = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(order.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CanDiscuss(); ok {
		_spec.SetField(order.FieldCanDiscuss, field.TypeBool, value)
		_node.CanDiscuss = value
	}
	if value, ok := _c.mutation.CanDownload(); ok {
		_spec.SetField(order.FieldCanDownload, field.TypeBool, value)
		_node.CanDownload = value
	}
	if value, ok := _c.mutation.AdminUnread(); ok {
		_spec.SetField(order.FieldAdminUnread, field.TypeBool, value)
		_node.AdminUnread = value
	}
	if value, ok := _c.mutation.ClientUnread(); ok {
		_spec.SetField(order.FieldClientUnread, field.TypeBool, value)
		_node.ClientUnread = value
	}
	if value, ok := _c.mutation.MessageSeq(); ok {
		_spec.SetField(order.FieldMessageSeq, field.TypeInt, value)
		_node.MessageSeq = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreate) OnConflict(opts ...sql.ConflictOption) *OrderUpsertOne {
	_c.conflict = opts
	return &OrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreate) OnConflictColumns(columns ...string) *OrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertOne{
		create: _c,
	}
}

type (
	// OrderUpsertOne is the builder for "upsert"-ing
	//  one Order node.
	OrderUpsertOne struct {
		create *OrderCreate
	}

	// OrderUpsert is the "OnConflict" setter.
	OrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsert) SetUpdatedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateUpdatedAt() *OrderUpsert {
	u.SetExcluded(order.FieldUpdatedAt)
	return u
}

// SetVersion sets the "version" field.
func (u *OrderUpsert) SetVersion(v int) *OrderUpsert {
	u.Set(order.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *OrderUpsert) UpdateVersion() *OrderUpsert {
	u.SetExcluded(order.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *OrderUpsert) AddVersion(v int) *OrderUpsert {
	u.Add(order.FieldVersion, v)
	return u
}

// SetService sets the "service" field.
func (u *OrderUpsert) SetService(v string) *OrderUpsert {
	u.Set(order.FieldService, v)
	return u
}

// UpdateService sets the "service" field to the value that was provided on create.
func (u *OrderUpsert) UpdateService() *OrderUpsert {
	u.SetExcluded(order.FieldService)
	return u
}

// SetStatus sets the "status" field.
func (u *OrderUpsert) SetStatus(v order.Status) *OrderUpsert {
	u.Set(order.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsert) UpdateStatus() *OrderUpsert {
	u.SetExcluded(order.FieldStatus)
	return u
}

// SetClientName sets the "client_name" field.
func (u *OrderUpsert) SetClientName(v string) *OrderUpsert {
	u.Set(order.FieldClientName, v)
	return u
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *OrderUpsert) UpdateClientName() *OrderUpsert {
	u.SetExcluded(order.FieldClientName)
	return u
}

// SetClientEmail sets the "client_email" field.
func (u *OrderUpsert) SetClientEmail(v string) *OrderUpsert {
	u.Set(order.FieldClientEmail, v)
	return u
}

// UpdateClientEmail sets the "client_email" field to the value that was provided on create.
func (u *OrderUpsert) UpdateClientEmail() *OrderUpsert {
	u.SetExcluded(order.FieldClientEmail)
	return u
}

// SetClientPhone sets the "client_phone" field.
func (u *OrderUpsert) SetClientPhone(v string) *OrderUpsert {
	u.Set(order.FieldClientPhone, v)
	return u
}

// UpdateClientPhone sets the "client_phone" field to the value that was provided on create.
func (u *OrderUpsert) UpdateClientPhone() *OrderUpsert {
	u.SetExcluded(order.FieldClientPhone)
	return u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (u *OrderUpsert) ClearClientPhone() *OrderUpsert {
	u.SetNull(order.FieldClientPhone)
	return u
}

// SetDetails sets the "details" field.
func (u *OrderUpsert) SetDetails(v string) *OrderUpsert {
	u.Set(order.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *OrderUpsert) UpdateDetails() *OrderUpsert {
	u.SetExcluded(order.FieldDetails)
	return u
}

// SetCanDiscuss sets the "can_discuss" field.
func (u *OrderUpsert) SetCanDiscuss(v bool) *OrderUpsert {
	u.Set(order.FieldCanDiscuss, v)
	return u
}

// UpdateCanDiscuss sets the "can_discuss" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCanDiscuss() *OrderUpsert {
	u.SetExcluded(order.FieldCanDiscuss)
	return u
}

// SetCanDownload sets the "can_download" field.
func (u *OrderUpsert) SetCanDownload(v bool) *OrderUpsert {
	u.Set(order.FieldCanDownload, v)
	return u
}

// UpdateCanDownload sets the "can_download" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCanDownload() *OrderUpsert {
	u.SetExcluded(order.FieldCanDownload)
	return u
}

// SetAdminUnread sets the "admin_unread" field.
func (u *OrderUpsert) SetAdminUnread(v bool) *OrderUpsert {
	u.Set(order.FieldAdminUnread, v)
	return u
}

// UpdateAdminUnread sets the "admin_unread" field to the value that was provided on create.
func (u *OrderUpsert) UpdateAdminUnread() *OrderUpsert {
	u.SetExcluded(order.FieldAdminUnread)
	return u
}

// SetClientUnread sets the "client_unread" field.
func (u *OrderUpsert) SetClientUnread(v bool) *OrderUpsert {
	u.Set(order.FieldClientUnread, v)
	return u
}

// UpdateClientUnread sets the "client_unread" field to the value that was provided on create.
func (u *OrderUpsert) UpdateClientUnread() *OrderUpsert {
	u.SetExcluded(order.FieldClientUnread)
	return u
}

// SetMessageSeq sets the "message_seq" field.
func (u *OrderUpsert) SetMessageSeq(v int) *OrderUpsert {
	u.Set(order.FieldMessageSeq, v)
	return u
}

// UpdateMessageSeq sets the "message_seq" field to the value that was provided on create.
func (u *OrderUpsert) UpdateMessageSeq() *OrderUpsert {
	u.SetExcluded(order.FieldMessageSeq)
	return u
}

// AddMessageSeq adds v to the "message_seq" field.
func (u *OrderUpsert) AddMessageSeq(v int) *OrderUpsert {
	u.Add(order.FieldMessageSeq, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertOne) UpdateNewValues() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(order.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(order.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Reference(); exists {
			s.SetIgnore(order.FieldReference)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderUpsertOne) Ignore() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertOne) DoNothing() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreate.OnConflict
// documentation for more info.
func (u *OrderUpsertOne) Update(set func(*OrderUpsert)) *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsertOne) SetUpdatedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateUpdatedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetVersion sets the "version" field.
func (u *OrderUpsertOne) SetVersion(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *OrderUpsertOne) AddVersion(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateVersion() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateVersion()
	})
}

// SetService sets the "service" field.
func (u *OrderUpsertOne) SetService(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetService(v)
	})
}

// UpdateService sets the "service" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateService() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateService()
	})
}

// SetStatus sets the "status" field.
func (u *OrderUpsertOne) SetStatus(v order.Status) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateStatus() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatus()
	})
}

// SetClientName sets the "client_name" field.
func (u *OrderUpsertOne) SetClientName(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientName(v)
	})
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateClientName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientName()
	})
}

// SetClientEmail sets the "client_email" field.
func (u *OrderUpsertOne) SetClientEmail(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientEmail(v)
	})
}

// UpdateClientEmail sets the "client_email" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateClientEmail() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientEmail()
	})
}

// SetClientPhone sets the "client_phone" field.
func (u *OrderUpsertOne) SetClientPhone(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientPhone(v)
	})
}

// UpdateClientPhone sets the "client_phone" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateClientPhone() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientPhone()
	})
}

// ClearClientPhone clears the value of the "client_phone" field.
func (u *OrderUpsertOne) ClearClientPhone() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearClientPhone()
	})
}

// SetDetails sets the "details" field.
func (u *OrderUpsertOne) SetDetails(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateDetails() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateDetails()
	})
}

// SetCanDiscuss sets the "can_discuss" field.
func (u *OrderUpsertOne) SetCanDiscuss(v bool) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCanDiscuss(v)
	})
}

// UpdateCanDiscuss sets the "can_discuss" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCanDiscuss() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCanDiscuss()
	})
}

// SetCanDownload sets the "can_download" field.
func (u *OrderUpsertOne) SetCanDownload(v bool) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCanDownload(v)
	})
}

// UpdateCanDownload sets the "can_download" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCanDownload() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCanDownload()
	})
}

// SetAdminUnread sets the "admin_unread" field.
func (u *OrderUpsertOne) SetAdminUnread(v bool) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetAdminUnread(v)
	})
}

// UpdateAdminUnread sets the "admin_unread" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateAdminUnread() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateAdminUnread()
	})
}

// SetClientUnread sets the "client_unread" field.
func (u *OrderUpsertOne) SetClientUnread(v bool) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientUnread(v)
	})
}

// UpdateClientUnread sets the "client_unread" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateClientUnread() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientUnread()
	})
}

// SetMessageSeq sets the "message_seq" field.
func (u *OrderUpsertOne) SetMessageSeq(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetMessageSeq(v)
	})
}

// AddMessageSeq adds v to the "message_seq" field.
func (u *OrderUpsertOne) AddMessageSeq(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddMessageSeq(v)
	})
}

// UpdateMessageSeq sets the "message_seq" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateMessageSeq() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateMessageSeq()
	})
}

// Exec executes the query.
func (u *OrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: OrderUpsertOne.ID is not supported by MySQL driver. Use OrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
	conflict []sql.ConflictOption
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
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
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderUpsertBulk {
	_c.conflict = opts
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflictColumns(columns ...string) *OrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OrderUpsertBulk is the builder for "upsert"-ing
// a bulk of Order nodes.
type OrderUpsertBulk struct {
	create *OrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertBulk) UpdateNewValues() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(order.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(order.FieldCreatedAt)
			}
			if _, exists := b.mutation.Reference(); exists {
				s.SetIgnore(order.FieldReference)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderUpsertBulk) Ignore() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertBulk) DoNothing() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreateBulk.OnConflict
// documentation for more info.
func (u *OrderUpsertBulk) Update(set func(*OrderUpsert)) *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsertBulk) SetUpdatedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateUpdatedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetVersion sets the "version" field.
func (u *OrderUpsertBulk) SetVersion(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *OrderUpsertBulk) AddVersion(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateVersion() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateVersion()
	})
}

// SetService sets the "service" field.
func (u *OrderUpsertBulk) SetService(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetService(v)
	})
}

// UpdateService sets the "service" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateService() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateService()
	})
}

// SetStatus sets the "status" field.
func (u *OrderUpsertBulk) SetStatus(v order.Status) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateStatus() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatus()
	})
}

// SetClientName sets the "client_name" field.
func (u *OrderUpsertBulk) SetClientName(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientName(v)
	})
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateClientName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientName()
	})
}

// SetClientEmail sets the "client_email" field.
func (u *OrderUpsertBulk) SetClientEmail(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientEmail(v)
	})
}

// UpdateClientEmail sets the "client_email" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateClientEmail() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientEmail()
	})
}

// SetClientPhone sets the "client_phone" field.
func (u *OrderUpsertBulk) SetClientPhone(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientPhone(v)
	})
}

// UpdateClientPhone sets the "client_phone" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateClientPhone() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientPhone()
	})
}

// ClearClientPhone clears the value of the "client_phone" field.
func (u *OrderUpsertBulk) ClearClientPhone() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearClientPhone()
	})
}

// SetDetails sets the "details" field.
func (u *OrderUpsertBulk) SetDetails(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateDetails() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateDetails()
	})
}

// SetCanDiscuss sets the "can_discuss" field.
func (u *OrderUpsertBulk) SetCanDiscuss(v bool) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCanDiscuss(v)
	})
}

// UpdateCanDiscuss sets the "can_discuss" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCanDiscuss() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCanDiscuss()
	})
}

// SetCanDownload sets the "can_download" field.
func (u *OrderUpsertBulk) SetCanDownload(v bool) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCanDownload(v)
	})
}

// UpdateCanDownload sets the "can_download" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCanDownload() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCanDownload()
	})
}

// SetAdminUnread sets the "admin_unread" field.
func (u *OrderUpsertBulk) SetAdminUnread(v bool) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetAdminUnread(v)
	})
}

// UpdateAdminUnread sets the "admin_unread" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateAdminUnread() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateAdminUnread()
	})
}

// SetClientUnread sets the "client_unread" field.
func (u *OrderUpsertBulk) SetClientUnread(v bool) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetClientUnread(v)
	})
}

// UpdateClientUnread sets the "client_unread" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateClientUnread() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateClientUnread()
	})
}

// SetMessageSeq sets the "message_seq" field.
func (u *OrderUpsertBulk) SetMessageSeq(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetMessageSeq(v)
	})
}

// AddMessageSeq adds v to the "message_seq" field.
func (u *OrderUpsertBulk) AddMessageSeq(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddMessageSeq(v)
	})
}

// UpdateMessageSeq sets the "message_seq" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateMessageSeq() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateMessageSeq()
	})
}

// Exec executes the query.
func (u *OrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the OrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
