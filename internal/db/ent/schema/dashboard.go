package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Dashboard holds the schema definition for the Dashboard entity.
type Dashboard struct {
	ent.Schema
}

// Fields of the Dashboard.
func (Dashboard) Fields() []ent.Field {
	return []ent.Field{
		field.Uint32("id"),
		field.String("title"),
		field.String("description").Optional().Default(""),
		field.String("url"),
		field.String("thumbnail").Optional().Default(""),
	}
}

// Edges of the Dashboard.
func (Dashboard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("grants", AccessGrant.Type),
	}
}

// Mixin for the Dashboard schema.
func (Dashboard) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Mixin{},
	}
}
