package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ChatMessage is a single message in an order or ticket discussion thread.
// The (thread_type, thread_id, seq) triple is unique; seq is assigned
// server-side from the parent record's message_seq counter.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("thread_type").
			Values("order", "ticket"),

		field.UUID("thread_id", uuid.UUID{}).
			Comment("FK → orders.id or tickets.id depending on thread_type"),

		field.Int("seq").
			Positive().
			Comment("Per-thread monotonic sequence number, starts at 1"),

		field.Enum("sender").
			Values("client", "manager"),

		field.Text("body").
			Optional().
			Nillable(),

		field.String("file_key").
			Optional().
			Nillable(),

		field.String("file_name").
			Optional().
			Nillable(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_type", "thread_id", "seq").Unique(),
		index.Fields("thread_type", "thread_id", "created_at"),
	}
}
