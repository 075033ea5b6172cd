// Code generated by ent, DO NOT EDIT.

package accessgrant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the accessgrant type in the database.
	Label = "access_grant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDashboardID holds the string denoting the dashboard_id field in the database.
	FieldDashboardID = "dashboard_id"
	// FieldSubjectKind holds the string denoting the subject_kind field in the database.
	FieldSubjectKind = "subject_kind"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// EdgeDashboard holds the string denoting the dashboard edge name in mutations.
	EdgeDashboard = "dashboard"
	// Table holds the table name of the accessgrant in the database.
	Table = "access_grants"
	// DashboardTable is the table that holds the dashboard relation/edge.
	DashboardTable = "access_grants"
	// DashboardInverseTable is the table name for the Dashboard entity.
	// It exists in this package in order to avoid circular dependency with the "dashboard" package.
	DashboardInverseTable = "dashboards"
	// DashboardColumn is the table column denoting the dashboard relation/edge.
	DashboardColumn = "dashboard_id"
)

// Columns holds all SQL columns for accessgrant fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDashboardID,
	FieldSubjectKind,
	FieldSubject,
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
)

// OrderOption defines the ordering options for the AccessGrant queries.
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

// BySubjectKind orders the results by the subject_kind field.
func BySubjectKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectKind, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByDashboardField orders the results by dashboard field.
func ByDashboardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDashboardStep(), sql.OrderByField(field, opts...))
	}
}
func newDashboardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DashboardInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DashboardTable, DashboardColumn),
	)
}
