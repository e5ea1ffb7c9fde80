// Code generated by ent, DO NOT EDIT.

package order

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// FieldService holds the string denoting the service field in the database.
	FieldService = "service"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldClientEmail holds the string denoting the client_email field in the database.
	FieldClientEmail = "client_email"
	// FieldClientPhone holds the string denoting the client_phone field in the database.
	FieldClientPhone = "client_phone"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldCanDiscuss holds the string denoting the can_discuss field in the database.
	FieldCanDiscuss = "can_discuss"
	// FieldCanDownload holds the string denoting the can_download field in the database.
	FieldCanDownload = "can_download"
	// FieldAdminUnread holds the string denoting the admin_unread field in the database.
	FieldAdminUnread = "admin_unread"
	// FieldClientUnread holds the string denoting the client_unread field in the database.
	FieldClientUnread = "client_unread"
	// FieldMessageSeq holds the string denoting the message_seq field in the database.
	FieldMessageSeq = "message_seq"
	// Table holds the table name of the order in the database.
	Table = "orders"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldVersion,
	FieldReference,
	FieldService,
	FieldStatus,
	FieldClientName,
	FieldClientEmail,
	FieldClientPhone,
	FieldDetails,
	FieldCanDiscuss,
	FieldCanDownload,
	FieldAdminUnread,
	FieldClientUnread,
	FieldMessageSeq,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	ReferenceValidator func(string) error
	// ServiceValidator is a validator for the "service" field. It is called by the builders before save.
	ServiceValidator func(string) error
	// ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	ClientNameValidator func(string) error
	// ClientEmailValidator is a validator for the "client_email" field. It is called by the builders before save.
	ClientEmailValidator func(string) error
	// ClientPhoneValidator is a validator for the "client_phone" field. It is called by the builders before save.
	ClientPhoneValidator func(string) error
	// DefaultCanDiscuss holds the default value on creation for the "can_discuss" field.
	DefaultCanDiscuss bool
	// DefaultCanDownload holds the default value on creation for the "can_download" field.
	DefaultCanDownload bool
	// DefaultAdminUnread holds the default value on creation for the "admin_unread" field.
	DefaultAdminUnread bool
	// DefaultClientUnread holds the default value on creation for the "client_unread" field.
	DefaultClientUnread bool
	// DefaultMessageSeq holds the default value on creation for the "message_seq" field.
	DefaultMessageSeq int
	// MessageSeqValidator is a validator for the "message_seq" field. It is called by the builders before save.
	MessageSeqValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew                Status = "new"
	StatusAwaitingDiscussion Status = "awaiting_discussion"
	StatusInProgress         Status = "in_progress"
	StatusUnderReview        Status = "under_review"
	StatusCompleted          Status = "completed"
	StatusCancelled          Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusAwaitingDiscussion, StatusInProgress, StatusUnderReview, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByService orders the results by the service field.
func ByService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldService, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByClientEmail orders the results by the client_email field.
func ByClientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientEmail, opts...).ToFunc()
}

// ByClientPhone orders the results by the client_phone field.
func ByClientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientPhone, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByCanDiscuss orders the results by the can_discuss field.
func ByCanDiscuss(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanDiscuss, opts...).ToFunc()
}

// ByCanDownload orders the results by the can_download field.
func ByCanDownload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanDownload, opts...).ToFunc()
}

// ByAdminUnread orders the results by the admin_unread field.
func ByAdminUnread(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminUnread, opts...).ToFunc()
}

// ByClientUnread orders the results by the client_unread field.
func ByClientUnread(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientUnread, opts...).ToFunc()
}

// ByMessageSeq orders the results by the message_seq field.
func ByMessageSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageSeq, opts...).ToFunc()
}
