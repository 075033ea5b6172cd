// Code generated by ent, DO NOT EDIT.

package clickevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the clickevent type in the database.
	Label = "click_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDashboardID holds the string denoting the dashboard_id field in the database.
	FieldDashboardID = "dashboard_id"
	// FieldDashboardTitle holds the string denoting the dashboard_title field in the database.
	FieldDashboardTitle = "dashboard_title"
	// FieldUserEmail holds the string denoting the user_email field in the database.
	FieldUserEmail = "user_email"
	// Table holds the table name of the clickevent in the database.
	Table = "click_events"
)

// Columns holds all SQL columns for clickevent fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDashboardID,
	FieldDashboardTitle,
	FieldUserEmail,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultDashboardTitle holds the default value on creation for the "dashboard_title" field.
	DefaultDashboardTitle string
)

// OrderOption defines the ordering options for the ClickEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDashboardID orders the results by the dashboard_id field.
func ByDashboardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDashboardID, opts...).ToFunc()
}

// ByDashboardTitle orders the results by the dashboard_title field.
func ByDashboardTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDashboardTitle, opts...).ToFunc()
}

// ByUserEmail orders the results by the user_email field.
func ByUserEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserEmail, opts...).ToFunc()
}
