package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Team holds the schema definition for the Team entity.
// Teams are soft-deleted (is_active flag) because dashboards
// reference teams by name through access grants.
type Team struct {
	ent.Schema
}

// Fields of the Team.
func (Team) Fields() []ent.Field {
	return []ent.Field{
		field.Uint32("id"),
		field.String("name").Unique(),
		field.String("description").Optional().Default(""),
		field.Bool("is_active").Default(true),
	}
}

// Mixin for the Team schema.
func (Team) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Mixin{},
	}
}
