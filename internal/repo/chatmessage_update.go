// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bystrodel/backend/internal/repo/chatmessage"
	"github.com/bystrodel/backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadType sets the "thread_type" field.
func (_u *ChatMessageUpdate) SetThreadType(v chatmessage.ThreadType) *ChatMessageUpdate {
	_u.mutation.SetThreadType(v)
	return _u
}

// SetNillableThreadType sets the "thread_type" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableThreadType(v *chatmessage.ThreadType) *ChatMessageUpdate {
	if v != nil {
		_u.SetThreadType(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ChatMessageUpdate) SetThreadID(v uuid.UUID) *ChatMessageUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableThreadID(v *uuid.UUID) *ChatMessageUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ChatMessageUpdate) SetSeq(v int) *ChatMessageUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSeq(v *int) *ChatMessageUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ChatMessageUpdate) AddSeq(v int) *ChatMessageUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetSender sets the "sender" field.
func (_u *ChatMessageUpdate) SetSender(v chatmessage.Sender) *ChatMessageUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSender(v *chatmessage.Sender) *ChatMessageUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ChatMessageUpdate) SetBody(v string) *ChatMessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableBody(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *ChatMessageUpdate) ClearBody() *ChatMessageUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *ChatMessageUpdate) SetFileKey(v string) *ChatMessageUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableFileKey(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// ClearFileKey clears the value of the "file_key" field.
func (_u *ChatMessageUpdate) ClearFileKey() *ChatMessageUpdate {
	_u.mutation.ClearFileKey()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ChatMessageUpdate) SetFileName(v string) *ChatMessageUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableFileName(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *ChatMessageUpdate) ClearFileName() *ChatMessageUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if v, ok := _u.mutation.ThreadType(); ok {
		if err := chatmessage.ThreadTypeValidator(v); err != nil {
			return &ValidationError{Name: "thread_type", err: fmt.Errorf(`repo: validator failed for field "ChatMessage.thread_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seq(); ok {
		if err := chatmessage.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`repo: validator failed for field "ChatMessage.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sender(); ok {
		if err := chatmessage.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`repo: validator failed for field "ChatMessage.sender": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadType(); ok {
		_spec.SetField(chatmessage.FieldThreadType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(chatmessage.FieldThreadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(chatmessage.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(chatmessage.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(chatmessage.FieldSender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(chatmessage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(chatmessage.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(chatmessage.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.FileKeyCleared() {
		_spec.ClearField(chatmessage.FieldFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(chatmessage.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(chatmessage.FieldFileName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetThreadType sets the "thread_type" field.
func (_u *ChatMessageUpdateOne) SetThreadType(v chatmessage.ThreadType) *ChatMessageUpdateOne {
	_u.mutation.SetThreadType(v)
	return _u
}

// SetNillableThreadType sets the "thread_type" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableThreadType(v *chatmessage.ThreadType) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetThreadType(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ChatMessageUpdateOne) SetThreadID(v uuid.UUID) *ChatMessageUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableThreadID(v *uuid.UUID) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ChatMessageUpdateOne) SetSeq(v int) *ChatMessageUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSeq(v *int) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ChatMessageUpdateOne) AddSeq(v int) *ChatMessageUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetSender sets the "sender" field.
func (_u *ChatMessageUpdateOne) SetSender(v chatmessage.Sender) *ChatMessageUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSender(v *chatmessage.Sender) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ChatMessageUpdateOne) SetBody(v string) *ChatMessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableBody(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *ChatMessageUpdateOne) ClearBody() *ChatMessageUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *ChatMessageUpdateOne) SetFileKey(v string) *ChatMessageUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableFileKey(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// ClearFileKey clears the value of the "file_key" field.
func (_u *ChatMessageUpdateOne) ClearFileKey() *ChatMessageUpdateOne {
	_u.mutation.ClearFileKey()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ChatMessageUpdateOne) SetFileName(v string) *ChatMessageUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableFileName(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *ChatMessageUpdateOne) ClearFileName() *ChatMessageUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if v, ok := _u.mutation.ThreadType(); ok {
		if err := chatmessage.ThreadTypeValidator(v); err != nil {
			return &ValidationError{Name: "thread_type", err: fmt.Errorf(`repo: validator failed for field "ChatMessage.thread_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seq(); ok {
		if err := chatmessage.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`repo: validator failed for field "ChatMessage.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sender(); ok {
		if err := chatmessage.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`repo: validator failed for field "ChatMessage.sender": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
	if value, ok := _u.mutation.ThreadType(); ok {
		_spec.SetField(chatmessage.FieldThreadType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(chatmessage.FieldThreadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(chatmessage.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(chatmessage.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(chatmessage.FieldSender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(chatmessage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(chatmessage.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(chatmessage.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.FileKeyCleared() {
		_spec.ClearField(chatmessage.FieldFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(chatmessage.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(chatmessage.FieldFileName, field.TypeString)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
