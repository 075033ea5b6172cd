package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// Mixin adds created_at/updated_at to every schema in this package.
type Mixin struct {
	mixin.Schema
}

// Fields of the Mixin: created_at is write-once, updated_at follows every save.
func (Mixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
