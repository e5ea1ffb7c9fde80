// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bystrodel/backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldVersion, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldReference, v))
}

// Service applies equality check predicate on the "service" field. It's identical to ServiceEQ.
func Service(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldService, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientName, v))
}

// ClientEmail applies equality check predicate on the "client_email" field. It's identical to ClientEmailEQ.
func ClientEmail(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientEmail, v))
}

// ClientPhone applies equality check predicate on the "client_phone" field. It's identical to ClientPhoneEQ.
func ClientPhone(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientPhone, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDetails, v))
}

// CanDiscuss applies equality check predicate on the "can_discuss" field. It's identical to CanDiscussEQ.
func CanDiscuss(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCanDiscuss, v))
}

// CanDownload applies equality check predicate on the "can_download" field. It's identical to CanDownloadEQ.
func CanDownload(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCanDownload, v))
}

// AdminUnread applies equality check predicate on the "admin_unread" field. It's identical to AdminUnreadEQ.
func AdminUnread(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAdminUnread, v))
}

// ClientUnread applies equality check predicate on the "client_unread" field. It's identical to ClientUnreadEQ.
func ClientUnread(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientUnread, v))
}

// MessageSeq applies equality check predicate on the "message_seq" field. It's identical to MessageSeqEQ.
func MessageSeq(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldMessageSeq, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldVersion, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldReference, v))
}

// ServiceEQ applies the EQ predicate on the "service" field.
func ServiceEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldService, v))
}

// ServiceNEQ applies the NEQ predicate on the "service" field.
func ServiceNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldService, v))
}

// ServiceIn applies the In predicate on the "service" field.
func ServiceIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldService, vs...))
}

// ServiceNotIn applies the NotIn predicate on the "service" field.
func ServiceNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldService, vs...))
}

// ServiceGT applies the GT predicate on the "service" field.
func ServiceGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldService, v))
}

// ServiceGTE applies the GTE predicate on the "service" field.
func ServiceGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldService, v))
}

// ServiceLT applies the LT predicate on the "service" field.
func ServiceLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldService, v))
}

// ServiceLTE applies the LTE predicate on the "service" field.
func ServiceLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldService, v))
}

// ServiceContains applies the Contains predicate on the "service" field.
func ServiceContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldService, v))
}

// ServiceHasPrefix applies the HasPrefix predicate on the "service" field.
func ServiceHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldService, v))
}

// ServiceHasSuffix applies the HasSuffix predicate on the "service" field.
func ServiceHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldService, v))
}

// ServiceEqualFold applies the EqualFold predicate on the "service" field.
func ServiceEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldService, v))
}

// ServiceContainsFold applies the ContainsFold predicate on the "service" field.
func ServiceContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldService, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatus, vs...))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldClientName, v))
}

// ClientEmailEQ applies the EQ predicate on the "client_email" field.
func ClientEmailEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientEmail, v))
}

// ClientEmailNEQ applies the NEQ predicate on the "client_email" field.
func ClientEmailNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldClientEmail, v))
}

// ClientEmailIn applies the In predicate on the "client_email" field.
func ClientEmailIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldClientEmail, vs...))
}

// ClientEmailNotIn applies the NotIn predicate on the "client_email" field.
func ClientEmailNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldClientEmail, vs...))
}

// ClientEmailGT applies the GT predicate on the "client_email" field.
func ClientEmailGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldClientEmail, v))
}

// ClientEmailGTE applies the GTE predicate on the "client_email" field.
func ClientEmailGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldClientEmail, v))
}

// ClientEmailLT applies the LT predicate on the "client_email" field.
func ClientEmailLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldClientEmail, v))
}

// ClientEmailLTE applies the LTE predicate on the "client_email" field.
func ClientEmailLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldClientEmail, v))
}

// ClientEmailContains applies the Contains predicate on the "client_email" field.
func ClientEmailContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldClientEmail, v))
}

// ClientEmailHasPrefix applies the HasPrefix predicate on the "client_email" field.
func ClientEmailHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldClientEmail, v))
}

// ClientEmailHasSuffix applies the HasSuffix predicate on the "client_email" field.
func ClientEmailHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldClientEmail, v))
}

// ClientEmailEqualFold applies the EqualFold predicate on the "client_email" field.
func ClientEmailEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldClientEmail, v))
}

// ClientEmailContainsFold applies the ContainsFold predicate on the "client_email" field.
func ClientEmailContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldClientEmail, v))
}

// ClientPhoneEQ applies the EQ predicate on the "client_phone" field.
func ClientPhoneEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientPhone, v))
}

// ClientPhoneNEQ applies the NEQ predicate on the "client_phone" field.
func ClientPhoneNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldClientPhone, v))
}

// ClientPhoneIn applies the In predicate on the "client_phone" field.
func ClientPhoneIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldClientPhone, vs...))
}

// ClientPhoneNotIn applies the NotIn predicate on the "client_phone" field.
func ClientPhoneNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldClientPhone, vs...))
}

// ClientPhoneGT applies the GT predicate on the "client_phone" field.
func ClientPhoneGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldClientPhone, v))
}

// ClientPhoneGTE applies the GTE predicate on the "client_phone" field.
func ClientPhoneGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldClientPhone, v))
}

// ClientPhoneLT applies the LT predicate on the "client_phone" field.
func ClientPhoneLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldClientPhone, v))
}

// ClientPhoneLTE applies the LTE predicate on the "client_phone" field.
func ClientPhoneLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldClientPhone, v))
}

// ClientPhoneContains applies the Contains predicate on the "client_phone" field.
func ClientPhoneContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldClientPhone, v))
}

// ClientPhoneHasPrefix applies the HasPrefix predicate on the "client_phone" field.
func ClientPhoneHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldClientPhone, v))
}

// ClientPhoneHasSuffix applies the HasSuffix predicate on the "client_phone" field.
func ClientPhoneHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldClientPhone, v))
}

// ClientPhoneIsNil applies the IsNil predicate on the "client_phone" field.
func ClientPhoneIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldClientPhone))
}

// ClientPhoneNotNil applies the NotNil predicate on the "client_phone" field.
func ClientPhoneNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldClientPhone))
}

// ClientPhoneEqualFold applies the EqualFold predicate on the "client_phone" field.
func ClientPhoneEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldClientPhone, v))
}

// ClientPhoneContainsFold applies the ContainsFold predicate on the "client_phone" field.
func ClientPhoneContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldClientPhone, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldDetails, v))
}

// CanDiscussEQ applies the EQ predicate on the "can_discuss" field.
func CanDiscussEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCanDiscuss, v))
}

// CanDiscussNEQ applies the NEQ predicate on the "can_discuss" field.
func CanDiscussNEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCanDiscuss, v))
}

// CanDownloadEQ applies the EQ predicate on the "can_download" field.
func CanDownloadEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCanDownload, v))
}

// CanDownloadNEQ applies the NEQ predicate on the "can_download" field.
func CanDownloadNEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCanDownload, v))
}

// AdminUnreadEQ applies the EQ predicate on the "admin_unread" field.
func AdminUnreadEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAdminUnread, v))
}

// AdminUnreadNEQ applies the NEQ predicate on the "admin_unread" field.
func AdminUnreadNEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldAdminUnread, v))
}

// ClientUnreadEQ applies the EQ predicate on the "client_unread" field.
func ClientUnreadEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldClientUnread, v))
}

// ClientUnreadNEQ applies the NEQ predicate on the "client_unread" field.
func ClientUnreadNEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldClientUnread, v))
}

// MessageSeqEQ applies the EQ predicate on the "message_seq" field.
func MessageSeqEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldMessageSeq, v))
}

// MessageSeqNEQ applies the NEQ predicate on the "message_seq" field.
func MessageSeqNEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldMessageSeq, v))
}

// MessageSeqIn applies the In predicate on the "message_seq" field.
func MessageSeqIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldMessageSeq, vs...))
}

// MessageSeqNotIn applies the NotIn predicate on the "message_seq" field.
func MessageSeqNotIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldMessageSeq, vs...))
}

// MessageSeqGT applies the GT predicate on the "message_seq" field.
func MessageSeqGT(v int) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldMessageSeq, v))
}

// MessageSeqGTE applies the GTE predicate on the "message_seq" field.
func MessageSeqGTE(v int) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldMessageSeq, v))
}

// MessageSeqLT applies the LT predicate on the "message_seq" field.
func MessageSeqLT(v int) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldMessageSeq, v))
}

// MessageSeqLTE applies the LTE predicate on the "message_seq" field.
func MessageSeqLTE(v int) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldMessageSeq, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
