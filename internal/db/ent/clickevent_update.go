// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dashgate/internal/db/ent/clickevent"
	"dashgate/internal/db/ent/predicate"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ClickEventUpdate is the builder for updating ClickEvent entities.
type ClickEventUpdate struct {
	config
	hooks    []Hook
	mutation *ClickEventMutation
}

// Where appends a list predicates to the ClickEventUpdate builder.
func (ceu *ClickEventUpdate) Where(ps ...predicate.ClickEvent) *ClickEventUpdate {
	ceu.mutation.Where(ps...)
	return ceu
}

// SetUpdatedAt sets the "updated_at" field.
func (ceu *ClickEventUpdate) SetUpdatedAt(t time.Time) *ClickEventUpdate {
	ceu.mutation.SetUpdatedAt(t)
	return ceu
}

// SetDashboardID sets the "dashboard_id" field.
func (ceu *ClickEventUpdate) SetDashboardID(u uint32) *ClickEventUpdate {
	ceu.mutation.ResetDashboardID()
	ceu.mutation.SetDashboardID(u)
	return ceu
}

// SetNillableDashboardID sets the "dashboard_id" field if the given value is not nil.
func (ceu *ClickEventUpdate) SetNillableDashboardID(u *uint32) *ClickEventUpdate {
	if u != nil {
		ceu.SetDashboardID(*u)
	}
	return ceu
}

// AddDashboardID adds u to the "dashboard_id" field.
func (ceu *ClickEventUpdate) AddDashboardID(u int32) *ClickEventUpdate {
	ceu.mutation.AddDashboardID(u)
	return ceu
}

// SetDashboardTitle sets the "dashboard_title" field.
func (ceu *ClickEventUpdate) SetDashboardTitle(s string) *ClickEventUpdate {
	ceu.mutation.SetDashboardTitle(s)
	return ceu
}

// SetNillableDashboardTitle sets the "dashboard_title" field if the given value is not nil.
func (ceu *ClickEventUpdate) SetNillableDashboardTitle(s *string) *ClickEventUpdate {
	if s != nil {
		ceu.SetDashboardTitle(*s)
	}
	return ceu
}

// ClearDashboardTitle clears the value of the "dashboard_title" field.
func (ceu *ClickEventUpdate) ClearDashboardTitle() *ClickEventUpdate {
	ceu.mutation.ClearDashboardTitle()
	return ceu
}

// SetUserEmail sets the "user_email" field.
func (ceu *ClickEventUpdate) SetUserEmail(s string) *ClickEventUpdate {
	ceu.mutation.SetUserEmail(s)
	return ceu
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (ceu *ClickEventUpdate) SetNillableUserEmail(s *string) *ClickEventUpdate {
	if s != nil {
		ceu.SetUserEmail(*s)
	}
	return ceu
}

// Mutation returns the ClickEventMutation object of the builder.
func (ceu *ClickEventUpdate) Mutation() *ClickEventMutation {
	return ceu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ceu *ClickEventUpdate) Save(ctx context.Context) (int, error) {
	ceu.defaults()
	return withHooks(ctx, ceu.sqlSave, ceu.mutation, ceu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceu *ClickEventUpdate) SaveX(ctx context.Context) int {
	affected, err := ceu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ceu *ClickEventUpdate) Exec(ctx context.Context) error {
	_, err := ceu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceu *ClickEventUpdate) ExecX(ctx context.Context) {
	if err := ceu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ceu *ClickEventUpdate) defaults() {
	if _, ok := ceu.mutation.UpdatedAt(); !ok {
		v := clickevent.UpdateDefaultUpdatedAt()
		ceu.mutation.SetUpdatedAt(v)
	}
}

func (ceu *ClickEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(clickevent.Table, clickevent.Columns, sqlgraph.NewFieldSpec(clickevent.FieldID, field.TypeUint32))
	if ps := ceu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceu.mutation.UpdatedAt(); ok {
		_spec.SetField(clickevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := ceu.mutation.DashboardID(); ok {
		_spec.SetField(clickevent.FieldDashboardID, field.TypeUint32, value)
	}
	if value, ok := ceu.mutation.AddedDashboardID(); ok {
		_spec.AddField(clickevent.FieldDashboardID, field.TypeUint32, value)
	}
	if value, ok := ceu.mutation.DashboardTitle(); ok {
		_spec.SetField(clickevent.FieldDashboardTitle, field.TypeString, value)
	}
	if ceu.mutation.DashboardTitleCleared() {
		_spec.ClearField(clickevent.FieldDashboardTitle, field.TypeString)
	}
	if value, ok := ceu.mutation.UserEmail(); ok {
		_spec.SetField(clickevent.FieldUserEmail, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ceu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clickevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ceu.mutation.done = true
	return n, nil
}

// ClickEventUpdateOne is the builder for updating a single ClickEvent entity.
type ClickEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClickEventMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (ceuo *ClickEventUpdateOne) SetUpdatedAt(t time.Time) *ClickEventUpdateOne {
	ceuo.mutation.SetUpdatedAt(t)
	return ceuo
}

// SetDashboardID sets the "dashboard_id" field.
func (ceuo *ClickEventUpdateOne) SetDashboardID(u uint32) *ClickEventUpdateOne {
	ceuo.mutation.ResetDashboardID()
	ceuo.mutation.SetDashboardID(u)
	return ceuo
}

// SetNillableDashboardID sets the "dashboard_id" field if the given value is not nil.
func (ceuo *ClickEventUpdateOne) SetNillableDashboardID(u *uint32) *ClickEventUpdateOne {
	if u != nil {
		ceuo.SetDashboardID(*u)
	}
	return ceuo
}

// AddDashboardID adds u to the "dashboard_id" field.
func (ceuo *ClickEventUpdateOne) AddDashboardID(u int32) *ClickEventUpdateOne {
	ceuo.mutation.AddDashboardID(u)
	return ceuo
}

// SetDashboardTitle sets the "dashboard_title" field.
func (ceuo *ClickEventUpdateOne) SetDashboardTitle(s string) *ClickEventUpdateOne {
	ceuo.mutation.SetDashboardTitle(s)
	return ceuo
}

// SetNillableDashboardTitle sets the "dashboard_title" field if the given value is not nil.
func (ceuo *ClickEventUpdateOne) SetNillableDashboardTitle(s *string) *ClickEventUpdateOne {
	if s != nil {
		ceuo.SetDashboardTitle(*s)
	}
	return ceuo
}

// ClearDashboardTitle clears the value of the "dashboard_title" field.
func (ceuo *ClickEventUpdateOne) ClearDashboardTitle() *ClickEventUpdateOne {
	ceuo.mutation.ClearDashboardTitle()
	return ceuo
}

// SetUserEmail sets the "user_email" field.
func (ceuo *ClickEventUpdateOne) SetUserEmail(s string) *ClickEventUpdateOne {
	ceuo.mutation.SetUserEmail(s)
	return ceuo
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (ceuo *ClickEventUpdateOne) SetNillableUserEmail(s *string) *ClickEventUpdateOne {
	if s != nil {
		ceuo.SetUserEmail(*s)
	}
	return ceuo
}

// Mutation returns the ClickEventMutation object of the builder.
func (ceuo *ClickEventUpdateOne) Mutation() *ClickEventMutation {
	return ceuo.mutation
}

// Where appends a list predicates to the ClickEventUpdate builder.
func (ceuo *ClickEventUpdateOne) Where(ps ...predicate.ClickEvent) *ClickEventUpdateOne {
	ceuo.mutation.Where(ps...)
	return ceuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ceuo *ClickEventUpdateOne) Select(field string, fields ...string) *ClickEventUpdateOne {
	ceuo.fields = append([]string{field}, fields...)
	return ceuo
}

// Save executes the query and returns the updated ClickEvent entity.
func (ceuo *ClickEventUpdateOne) Save(ctx context.Context) (*ClickEvent, error) {
	ceuo.defaults()
	return withHooks(ctx, ceuo.sqlSave, ceuo.mutation, ceuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceuo *ClickEventUpdateOne) SaveX(ctx context.Context) *ClickEvent {
	node, err := ceuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ceuo *ClickEventUpdateOne) Exec(ctx context.Context) error {
	_, err := ceuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceuo *ClickEventUpdateOne) ExecX(ctx context.Context) {
	if err := ceuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ceuo *ClickEventUpdateOne) defaults() {
	if _, ok := ceuo.mutation.UpdatedAt(); !ok {
		v := clickevent.UpdateDefaultUpdatedAt()
		ceuo.mutation.SetUpdatedAt(v)
	}
}

func (ceuo *ClickEventUpdateOne) sqlSave(ctx context.Context) (_node *ClickEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(clickevent.Table, clickevent.Columns, sqlgraph.NewFieldSpec(clickevent.FieldID, field.TypeUint32))
	id, ok := ceuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClickEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ceuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clickevent.FieldID)
		for _, f := range fields {
			if !clickevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clickevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ceuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceuo.mutation.UpdatedAt(); ok {
		_spec.SetField(clickevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := ceuo.mutation.DashboardID(); ok {
		_spec.SetField(clickevent.FieldDashboardID, field.TypeUint32, value)
	}
	if value, ok := ceuo.mutation.AddedDashboardID(); ok {
		_spec.AddField(clickevent.FieldDashboardID, field.TypeUint32, value)
	}
	if value, ok := ceuo.mutation.DashboardTitle(); ok {
		_spec.SetField(clickevent.FieldDashboardTitle, field.TypeString, value)
	}
	if ceuo.mutation.DashboardTitleCleared() {
		_spec.ClearField(clickevent.FieldDashboardTitle, field.TypeString)
	}
	if value, ok := ceuo.mutation.UserEmail(); ok {
		_spec.SetField(clickevent.FieldUserEmail, field.TypeString, value)
	}
	_node = &ClickEvent{config: ceuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ceuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clickevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ceuo.mutation.done = true
	return _node, nil
}
