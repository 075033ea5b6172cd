package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClickEvent is an append-only log record of a principal opening a
// dashboard. Rows are never updated or deleted by the application.
type ClickEvent struct {
	ent.Schema
}

// Fields of the ClickEvent.
func (ClickEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Uint32("id"),
		field.Uint32("dashboard_id"),
		field.String("dashboard_title").Optional().Default(""),
		field.String("user_email"),
	}
}

// Indexes of the ClickEvent.
func (ClickEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_email"),
		index.Fields("dashboard_id"),
	}
}

// Mixin for the ClickEvent schema.
func (ClickEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Mixin{},
	}
}
