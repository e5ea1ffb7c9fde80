package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("client", "admin").
			Default("client"),

		// Profile fields (личный кабинет).
		field.String("name").
			Optional().
			MaxLen(255),

		field.String("phone").
			Optional().
			MaxLen(20),

		field.String("address").
			Optional().
			MaxLen(500),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}
