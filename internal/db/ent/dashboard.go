// Code generated by ent, DO NOT EDIT.

package ent

import (
	"dashgate/internal/db/ent/dashboard"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Dashboard is the model entity for the Dashboard schema.
type Dashboard struct {
	config `json:"-"`
	// ID of the ent.
	ID uint32 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Thumbnail holds the value of the "thumbnail" field.
	Thumbnail string `json:"thumbnail,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DashboardQuery when eager-loading is set.
	Edges        DashboardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DashboardEdges holds the relations/edges for other nodes in the graph.
type DashboardEdges struct {
	// Grants holds the value of the grants edge.
	Grants []*AccessGrant `json:"grants,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GrantsOrErr returns the Grants value or an error if the edge
// was not loaded in eager-loading.
func (e DashboardEdges) GrantsOrErr() ([]*AccessGrant, error) {
	if e.loadedTypes[0] {
		return e.Grants, nil
	}
	return nil, &NotLoadedError{edge: "grants"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dashboard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dashboard.FieldID:
			values[i] = new(sql.NullInt64)
		case dashboard.FieldTitle, dashboard.FieldDescription, dashboard.FieldURL, dashboard.FieldThumbnail:
			values[i] = new(sql.NullString)
		case dashboard.FieldCreatedAt, dashboard.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dashboard fields.
func (d *Dashboard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dashboard.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			d.ID = uint32(value.Int64)
		case dashboard.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				d.CreatedAt = value.Time
			}
		case dashboard.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				d.UpdatedAt = value.Time
			}
		case dashboard.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				d.Title = value.String
			}
		case dashboard.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				d.Description = value.String
			}
		case dashboard.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				d.URL = value.String
			}
		case dashboard.FieldThumbnail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail", values[i])
			} else if value.Valid {
				d.Thumbnail = value.String
			}
		default:
			d.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Dashboard.
// This includes values selected through modifiers, order, etc.
func (d *Dashboard) Value(name string) (ent.Value, error) {
	return d.selectValues.Get(name)
}

// QueryGrants queries the "grants" edge of the Dashboard entity.
func (d *Dashboard) QueryGrants() *AccessGrantQuery {
	return NewDashboardClient(d.config).QueryGrants(d)
}

// Update returns a builder for updating this Dashboard.
// Note that you need to call Dashboard.Unwrap() before calling this method if this Dashboard
// was returned from a transaction, and the transaction was committed or rolled back.
func (d *Dashboard) Update() *DashboardUpdateOne {
	return NewDashboardClient(d.config).UpdateOne(d)
}

// Unwrap unwraps the Dashboard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (d *Dashboard) Unwrap() *Dashboard {
	_tx, ok := d.config.driver.(*txDriver)
	if !ok {
		panic("ent: Dashboard is not a transactional entity")
	}
	d.config.driver = _tx.drv
	return d
}

// String implements the fmt.Stringer.
func (d *Dashboard) String() string {
	var builder strings.Builder
	builder.WriteString("Dashboard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", d.ID))
	builder.WriteString("created_at=")
	builder.WriteString(d.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(d.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(d.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(d.Description)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(d.URL)
	builder.WriteString(", ")
	builder.WriteString("thumbnail=")
	builder.WriteString(d.Thumbnail)
	builder.WriteByte(')')
	return builder.String()
}

// Dashboards is a parsable slice of Dashboard.
type Dashboards []*Dashboard
