package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AccessGrant links one dashboard to one subject (a team name or an email)
// with view permission. Team grants and email grants share one shape so
// entitlement resolution has a single code path.
type AccessGrant struct {
	ent.Schema
}

// Fields of the AccessGrant.
func (AccessGrant) Fields() []ent.Field {
	return []ent.Field{
		field.Uint32("id"),
		field.Uint32("dashboard_id"),
		field.String("subject_kind"), // "team" or "email"
		field.String("subject"),
	}
}

// Edges of the AccessGrant.
func (AccessGrant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dashboard", Dashboard.Type).
			Ref("grants").
			Field("dashboard_id").
			Unique().
			Required(),
	}
}

// Indexes defines a unique composite index so a dashboard never carries
// duplicate grants for the same subject.
func (AccessGrant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dashboard_id", "subject_kind", "subject").Unique(),
	}
}

// Mixin for the AccessGrant schema.
func (AccessGrant) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Mixin{},
	}
}
