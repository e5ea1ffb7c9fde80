// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/bystrodel/backend/internal/repo/chatmessage"
	"github.com/bystrodel/backend/internal/repo/order"
	"github.com/bystrodel/backend/internal/repo/ticket"
	"github.com/bystrodel/backend/internal/repo/user"
	"github.com/bystrodel/backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageMixinFields1 := chatmessageMixin[1].Fields()
	_ = chatmessageMixinFields1
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageMixinFields1[0].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	// chatmessageDescSeq is the schema descriptor for seq field.
	chatmessageDescSeq := chatmessageFields[2].Descriptor()
	// chatmessage.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	chatmessage.SeqValidator = chatmessageDescSeq.Validators[0].(func(int) error)
	// chatmessageDescID is the schema descriptor for id field.
	chatmessageDescID := chatmessageMixinFields0[0].Descriptor()
	// chatmessage.DefaultID holds the default value on creation for the id field.
	chatmessage.DefaultID = chatmessageDescID.Default.(func() uuid.UUID)
	orderMixin := schema.Order{}.Mixin()
	orderMixinFields0 := orderMixin[0].Fields()
	_ = orderMixinFields0
	orderMixinFields1 := orderMixin[1].Fields()
	_ = orderMixinFields1
	orderMixinFields2 := orderMixin[2].Fields()
	_ = orderMixinFields2
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderMixinFields1[0].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderMixinFields1[1].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescVersion is the schema descriptor for version field.
	orderDescVersion := orderMixinFields2[0].Descriptor()
	// order.DefaultVersion holds the default value on creation for the version field.
	order.DefaultVersion = orderDescVersion.Default.(int)
	// order.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	order.VersionValidator = orderDescVersion.Validators[0].(func(int) error)
	// orderDescReference is the schema descriptor for reference field.
	orderDescReference := orderFields[0].Descriptor()
	// order.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	order.ReferenceValidator = orderDescReference.Validators[0].(func(string) error)
	// orderDescService is the schema descriptor for service field.
	orderDescService := orderFields[1].Descriptor()
	// order.ServiceValidator is a validator for the "service" field. It is called by the builders before save.
	order.ServiceValidator = orderDescService.Validators[0].(func(string) error)
	// orderDescClientName is the schema descriptor for client_name field.
	orderDescClientName := orderFields[3].Descriptor()
	// order.ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	order.ClientNameValidator = orderDescClientName.Validators[0].(func(string) error)
	// orderDescClientEmail is the schema descriptor for client_email field.
	orderDescClientEmail := orderFields[4].Descriptor()
	// order.ClientEmailValidator is a validator for the "client_email" field. It is called by the builders before save.
	order.ClientEmailValidator = orderDescClientEmail.Validators[0].(func(string) error)
	// orderDescClientPhone is the schema descriptor for client_phone field.
	orderDescClientPhone := orderFields[5].Descriptor()
	// order.ClientPhoneValidator is a validator for the "client_phone" field. It is called by the builders before save.
	order.ClientPhoneValidator = orderDescClientPhone.Validators[0].(func(string) error)
	// orderDescCanDiscuss is the schema descriptor for can_discuss field.
	orderDescCanDiscuss := orderFields[7].Descriptor()
	// order.DefaultCanDiscuss holds the default value on creation for the can_discuss field.
	order.DefaultCanDiscuss = orderDescCanDiscuss.Default.(bool)
	// orderDescCanDownload is the schema descriptor for can_download field.
	orderDescCanDownload := orderFields[8].Descriptor()
	// order.DefaultCanDownload holds the default value on creation for the can_download field.
	order.DefaultCanDownload = orderDescCanDownload.Default.(bool)
	// orderDescAdminUnread is the schema descriptor for admin_unread field.
	orderDescAdminUnread := orderFields[9].Descriptor()
	// order.DefaultAdminUnread holds the default value on creation for the admin_unread field.
	order.DefaultAdminUnread = orderDescAdminUnread.Default.(bool)
	// orderDescClientUnread is the schema descriptor for client_unread field.
	orderDescClientUnread := orderFields[10].Descriptor()
	// order.DefaultClientUnread holds the default value on creation for the client_unread field.
	order.DefaultClientUnread = orderDescClientUnread.Default.(bool)
	// orderDescMessageSeq is the schema descriptor for message_seq field.
	orderDescMessageSeq := orderFields[11].Descriptor()
	// order.DefaultMessageSeq holds the default value on creation for the message_seq field.
	order.DefaultMessageSeq = orderDescMessageSeq.Default.(int)
	// order.MessageSeqValidator is a validator for the "message_seq" field. It is called by the builders before save.
	order.MessageSeqValidator = orderDescMessageSeq.Validators[0].(func(int) error)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderMixinFields0[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	ticketMixin := schema.Ticket{}.Mixin()
	ticketMixinFields0 := ticketMixin[0].Fields()
	_ = ticketMixinFields0
	ticketMixinFields1 := ticketMixin[1].Fields()
	_ = ticketMixinFields1
	ticketMixinFields2 := ticketMixin[2].Fields()
	_ = ticketMixinFields2
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketMixinFields1[0].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketMixinFields1[1].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ticketDescVersion is the schema descriptor for version field.
	ticketDescVersion := ticketMixinFields2[0].Descriptor()
	// ticket.DefaultVersion holds the default value on creation for the version field.
	ticket.DefaultVersion = ticketDescVersion.Default.(int)
	// ticket.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	ticket.VersionValidator = ticketDescVersion.Validators[0].(func(int) error)
	// ticketDescReference is the schema descriptor for reference field.
	ticketDescReference := ticketFields[0].Descriptor()
	// ticket.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	ticket.ReferenceValidator = ticketDescReference.Validators[0].(func(string) error)
	// ticketDescName is the schema descriptor for name field.
	ticketDescName := ticketFields[1].Descriptor()
	// ticket.NameValidator is a validator for the "name" field. It is called by the builders before save.
	ticket.NameValidator = ticketDescName.Validators[0].(func(string) error)
	// ticketDescEmail is the schema descriptor for email field.
	ticketDescEmail := ticketFields[2].Descriptor()
	// ticket.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	ticket.EmailValidator = ticketDescEmail.Validators[0].(func(string) error)
	// ticketDescSubject is the schema descriptor for subject field.
	ticketDescSubject := ticketFields[3].Descriptor()
	// ticket.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	ticket.SubjectValidator = ticketDescSubject.Validators[0].(func(string) error)
	// ticketDescAdminUnread is the schema descriptor for admin_unread field.
	ticketDescAdminUnread := ticketFields[6].Descriptor()
	// ticket.DefaultAdminUnread holds the default value on creation for the admin_unread field.
	ticket.DefaultAdminUnread = ticketDescAdminUnread.Default.(bool)
	// ticketDescClientUnread is the schema descriptor for client_unread field.
	ticketDescClientUnread := ticketFields[7].Descriptor()
	// ticket.DefaultClientUnread holds the default value on creation for the client_unread field.
	ticket.DefaultClientUnread = ticketDescClientUnread.Default.(bool)
	// ticketDescMessageSeq is the schema descriptor for message_seq field.
	ticketDescMessageSeq := ticketFields[8].Descriptor()
	// ticket.DefaultMessageSeq holds the default value on creation for the message_seq field.
	ticket.DefaultMessageSeq = ticketDescMessageSeq.Default.(int)
	// ticket.MessageSeqValidator is a validator for the "message_seq" field. It is called by the builders before save.
	ticket.MessageSeqValidator = ticketDescMessageSeq.Validators[0].(func(int) error)
	// ticketDescID is the schema descriptor for id field.
	ticketDescID := ticketMixinFields0[0].Descriptor()
	// ticket.DefaultID holds the default value on creation for the id field.
	ticket.DefaultID = ticketDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[4].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescAddress is the schema descriptor for address field.
	userDescAddress := userFields[5].Descriptor()
	// user.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	user.AddressValidator = userDescAddress.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
