// Code generated by ent, DO NOT EDIT.

package ent

import (
	"dashgate/internal/db/ent/clickevent"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// ClickEvent is the model entity for the ClickEvent schema.
type ClickEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uint32 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DashboardID holds the value of the "dashboard_id" field.
	DashboardID uint32 `json:"dashboard_id,omitempty"`
	// DashboardTitle holds the value of the "dashboard_title" field.
	DashboardTitle string `json:"dashboard_title,omitempty"`
	// UserEmail holds the value of the "user_email" field.
	UserEmail    string `json:"user_email,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClickEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clickevent.FieldID, clickevent.FieldDashboardID:
			values[i] = new(sql.NullInt64)
		case clickevent.FieldDashboardTitle, clickevent.FieldUserEmail:
			values[i] = new(sql.NullString)
		case clickevent.FieldCreatedAt, clickevent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClickEvent fields.
func (ce *ClickEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clickevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ce.ID = uint32(value.Int64)
		case clickevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ce.CreatedAt = value.Time
			}
		case clickevent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ce.UpdatedAt = value.Time
			}
		case clickevent.FieldDashboardID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dashboard_id", values[i])
			} else if value.Valid {
				ce.DashboardID = uint32(value.Int64)
			}
		case clickevent.FieldDashboardTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dashboard_title", values[i])
			} else if value.Valid {
				ce.DashboardTitle = value.String
			}
		case clickevent.FieldUserEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_email", values[i])
			} else if value.Valid {
				ce.UserEmail = value.String
			}
		default:
			ce.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClickEvent.
// This includes values selected through modifiers, order, etc.
func (ce *ClickEvent) Value(name string) (ent.Value, error) {
	return ce.selectValues.Get(name)
}

// Update returns a builder for updating this ClickEvent.
// Note that you need to call ClickEvent.Unwrap() before calling this method if this ClickEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ce *ClickEvent) Update() *ClickEventUpdateOne {
	return NewClickEventClient(ce.config).UpdateOne(ce)
}

// Unwrap unwraps the ClickEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ce *ClickEvent) Unwrap() *ClickEvent {
	_tx, ok := ce.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClickEvent is not a transactional entity")
	}
	ce.config.driver = _tx.drv
	return ce
}

// String implements the fmt.Stringer.
func (ce *ClickEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ClickEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ce.ID))
	builder.WriteString("created_at=")
	builder.WriteString(ce.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ce.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dashboard_id=")
	builder.WriteString(fmt.Sprintf("%v", ce.DashboardID))
	builder.WriteString(", ")
	builder.WriteString("dashboard_title=")
	builder.WriteString(ce.DashboardTitle)
	builder.WriteString(", ")
	builder.WriteString("user_email=")
	builder.WriteString(ce.UserEmail)
	builder.WriteByte(')')
	return builder.String()
}

// ClickEvents is a parsable slice of ClickEvent.
type ClickEvents []*ClickEvent
