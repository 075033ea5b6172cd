// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AccessGrant is the predicate function for accessgrant builders.
type AccessGrant func(*sql.Selector)

// ClickEvent is the predicate function for clickevent builders.
type ClickEvent func(*sql.Selector)

// Dashboard is the predicate function for dashboard builders.
type Dashboard func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
