// Code generated by ent, DO NOT EDIT.

package ent

import (
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/dashboard"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// AccessGrant is the model entity for the AccessGrant schema.
type AccessGrant struct {
	config `json:"-"`
	// ID of the ent.
	ID uint32 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DashboardID holds the value of the "dashboard_id" field.
	DashboardID uint32 `json:"dashboard_id,omitempty"`
	// SubjectKind holds the value of the "subject_kind" field.
	SubjectKind string `json:"subject_kind,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccessGrantQuery when eager-loading is set.
	Edges        AccessGrantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccessGrantEdges holds the relations/edges for other nodes in the graph.
type AccessGrantEdges struct {
	// Dashboard holds the value of the dashboard edge.
	Dashboard *Dashboard `json:"dashboard,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DashboardOrErr returns the Dashboard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AccessGrantEdges) DashboardOrErr() (*Dashboard, error) {
	if e.Dashboard != nil {
		return e.Dashboard, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dashboard.Label}
	}
	return nil, &NotLoadedError{edge: "dashboard"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AccessGrant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case accessgrant.FieldID, accessgrant.FieldDashboardID:
			values[i] = new(sql.NullInt64)
		case accessgrant.FieldSubjectKind, accessgrant.FieldSubject:
			values[i] = new(sql.NullString)
		case accessgrant.FieldCreatedAt, accessgrant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AccessGrant fields.
func (ag *AccessGrant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case accessgrant.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ag.ID = uint32(value.Int64)
		case accessgrant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ag.CreatedAt = value.Time
			}
		case accessgrant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ag.UpdatedAt = value.Time
			}
		case accessgrant.FieldDashboardID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dashboard_id", values[i])
			} else if value.Valid {
				ag.DashboardID = uint32(value.Int64)
			}
		case accessgrant.FieldSubjectKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_kind", values[i])
			} else if value.Valid {
				ag.SubjectKind = value.String
			}
		case accessgrant.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				ag.Subject = value.String
			}
		default:
			ag.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AccessGrant.
// This includes values selected through modifiers, order, etc.
func (ag *AccessGrant) Value(name string) (ent.Value, error) {
	return ag.selectValues.Get(name)
}

// QueryDashboard queries the "dashboard" edge of the AccessGrant entity.
func (ag *AccessGrant) QueryDashboard() *DashboardQuery {
	return NewAccessGrantClient(ag.config).QueryDashboard(ag)
}

// Update returns a builder for updating this AccessGrant.
// Note that you need to call AccessGrant.Unwrap() before calling this method if this AccessGrant
// was returned from a transaction, and the transaction was committed or rolled back.
func (ag *AccessGrant) Update() *AccessGrantUpdateOne {
	return NewAccessGrantClient(ag.config).UpdateOne(ag)
}

// Unwrap unwraps the AccessGrant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ag *AccessGrant) Unwrap() *AccessGrant {
	_tx, ok := ag.config.driver.(*txDriver)
	if !ok {
		panic("ent: AccessGrant is not a transactional entity")
	}
	ag.config.driver = _tx.drv
	return ag
}

// String implements the fmt.Stringer.
func (ag *AccessGrant) String() string {
	var builder strings.Builder
	builder.WriteString("AccessGrant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ag.ID))
	builder.WriteString("created_at=")
	builder.WriteString(ag.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ag.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dashboard_id=")
	builder.WriteString(fmt.Sprintf("%v", ag.DashboardID))
	builder.WriteString(", ")
	builder.WriteString("subject_kind=")
	builder.WriteString(ag.SubjectKind)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(ag.Subject)
	builder.WriteByte(')')
	return builder.String()
}

// AccessGrants is a parsable slice of AccessGrant.
type AccessGrants []*AccessGrant
