package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket is a support request submitted through the contact form.
type Ticket struct {
	ent.Schema
}

func (Ticket) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		VersionMixin{},
	}
}

func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("reference").
			Unique().
			MaxLen(32).
			Immutable().
			Comment("Human-facing id, TICKET-<yyyymmdd>-<random>"),

		field.String("name").
			MaxLen(255),

		field.String("email").
			MaxLen(255).
			Comment("Owner key, scopes the ticket to a client account"),

		field.String("subject").
			MaxLen(255),

		field.Text("message"),

		field.Enum("status").
			Values("new", "in_progress", "completed", "rejected").
			Default("new"),

		field.Bool("admin_unread").
			Default(true),

		field.Bool("client_unread").
			Default(false),

		field.Int("message_seq").
			Default(0).
			NonNegative().
			Comment("Last assigned chat message sequence number"),
	}
}

func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email", "status"),
		index.Fields("status"),
	}
}
