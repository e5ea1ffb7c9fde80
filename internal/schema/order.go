package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Order is a client service order together with its discussion thread state.
type Order struct {
	ent.Schema
}

func (Order) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		VersionMixin{},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("reference").
			Unique().
			MaxLen(32).
			Immutable().
			Comment("Human-facing id, ORDER-<yyyymmdd>-<random>"),

		field.String("service").
			MaxLen(255),

		field.Enum("status").
			Values("new", "awaiting_discussion", "in_progress", "under_review", "completed", "cancelled").
			Default("new"),

		field.String("client_name").
			MaxLen(255),

		field.String("client_email").
			MaxLen(255).
			Comment("Owner key, scopes the order to a client account"),

		field.String("client_phone").
			Optional().
			MaxLen(20),

		field.Text("details"),

		field.Bool("can_discuss").
			Default(true),

		field.Bool("can_download").
			Default(false),

		field.Bool("admin_unread").
			Default(false),

		field.Bool("client_unread").
			Default(false),

		field.Int("message_seq").
			Default(0).
			NonNegative().
			Comment("Last assigned chat message sequence number"),
	}
}

func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_email", "status"),
		index.Fields("status"),
	}
}
