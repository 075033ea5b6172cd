// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/dashboard"
	"dashgate/internal/db/ent/predicate"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AccessGrantUpdate is the builder for updating AccessGrant entities.
type AccessGrantUpdate struct {
	config
	hooks    []Hook
	mutation *AccessGrantMutation
}

// Where appends a list predicates to the AccessGrantUpdate builder.
func (agu *AccessGrantUpdate) Where(ps ...predicate.AccessGrant) *AccessGrantUpdate {
	agu.mutation.Where(ps...)
	return agu
}

// SetUpdatedAt sets the "updated_at" field.
func (agu *AccessGrantUpdate) SetUpdatedAt(t time.Time) *AccessGrantUpdate {
	agu.mutation.SetUpdatedAt(t)
	return agu
}

// SetDashboardID sets the "dashboard_id" field.
func (agu *AccessGrantUpdate) SetDashboardID(u uint32) *AccessGrantUpdate {
	agu.mutation.SetDashboardID(u)
	return agu
}

// SetNillableDashboardID sets the "dashboard_id" field if the given value is not nil.
func (agu *AccessGrantUpdate) SetNillableDashboardID(u *uint32) *AccessGrantUpdate {
	if u != nil {
		agu.SetDashboardID(*u)
	}
	return agu
}

// SetSubjectKind sets the "subject_kind" field.
func (agu *AccessGrantUpdate) SetSubjectKind(s string) *AccessGrantUpdate {
	agu.mutation.SetSubjectKind(s)
	return agu
}

// SetNillableSubjectKind sets the "subject_kind" field if the given value is not nil.
func (agu *AccessGrantUpdate) SetNillableSubjectKind(s *string) *AccessGrantUpdate {
	if s != nil {
		agu.SetSubjectKind(*s)
	}
	return agu
}

// SetSubject sets the "subject" field.
func (agu *AccessGrantUpdate) SetSubject(s string) *AccessGrantUpdate {
	agu.mutation.SetSubject(s)
	return agu
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (agu *AccessGrantUpdate) SetNillableSubject(s *string) *AccessGrantUpdate {
	if s != nil {
		agu.SetSubject(*s)
	}
	return agu
}

// SetDashboard sets the "dashboard" edge to the Dashboard entity.
func (agu *AccessGrantUpdate) SetDashboard(d *Dashboard) *AccessGrantUpdate {
	return agu.SetDashboardID(d.ID)
}

// Mutation returns the AccessGrantMutation object of the builder.
func (agu *AccessGrantUpdate) Mutation() *AccessGrantMutation {
	return agu.mutation
}

// ClearDashboard clears the "dashboard" edge to the Dashboard entity.
func (agu *AccessGrantUpdate) ClearDashboard() *AccessGrantUpdate {
	agu.mutation.ClearDashboard()
	return agu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (agu *AccessGrantUpdate) Save(ctx context.Context) (int, error) {
	agu.defaults()
	return withHooks(ctx, agu.sqlSave, agu.mutation, agu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (agu *AccessGrantUpdate) SaveX(ctx context.Context) int {
	affected, err := agu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (agu *AccessGrantUpdate) Exec(ctx context.Context) error {
	_, err := agu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (agu *AccessGrantUpdate) ExecX(ctx context.Context) {
	if err := agu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (agu *AccessGrantUpdate) defaults() {
	if _, ok := agu.mutation.UpdatedAt(); !ok {
		v := accessgrant.UpdateDefaultUpdatedAt()
		agu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (agu *AccessGrantUpdate) check() error {
	if agu.mutation.DashboardCleared() && len(agu.mutation.DashboardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AccessGrant.dashboard"`)
	}
	return nil
}

func (agu *AccessGrantUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := agu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(accessgrant.Table, accessgrant.Columns, sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32))
	if ps := agu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := agu.mutation.UpdatedAt(); ok {
		_spec.SetField(accessgrant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := agu.mutation.SubjectKind(); ok {
		_spec.SetField(accessgrant.FieldSubjectKind, field.TypeString, value)
	}
	if value, ok := agu.mutation.Subject(); ok {
		_spec.SetField(accessgrant.FieldSubject, field.TypeString, value)
	}
	if agu.mutation.DashboardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   accessgrant.DashboardTable,
			Columns: []string{accessgrant.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := agu.mutation.DashboardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   accessgrant.DashboardTable,
			Columns: []string{accessgrant.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, agu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accessgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	agu.mutation.done = true
	return n, nil
}

// AccessGrantUpdateOne is the builder for updating a single AccessGrant entity.
type AccessGrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccessGrantMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (aguo *AccessGrantUpdateOne) SetUpdatedAt(t time.Time) *AccessGrantUpdateOne {
	aguo.mutation.SetUpdatedAt(t)
	return aguo
}

// SetDashboardID sets the "dashboard_id" field.
func (aguo *AccessGrantUpdateOne) SetDashboardID(u uint32) *AccessGrantUpdateOne {
	aguo.mutation.SetDashboardID(u)
	return aguo
}

// SetNillableDashboardID sets the "dashboard_id" field if the given value is not nil.
func (aguo *AccessGrantUpdateOne) SetNillableDashboardID(u *uint32) *AccessGrantUpdateOne {
	if u != nil {
		aguo.SetDashboardID(*u)
	}
	return aguo
}

// SetSubjectKind sets the "subject_kind" field.
func (aguo *AccessGrantUpdateOne) SetSubjectKind(s string) *AccessGrantUpdateOne {
	aguo.mutation.SetSubjectKind(s)
	return aguo
}

// SetNillableSubjectKind sets the "subject_kind" field if the given value is not nil.
func (aguo *AccessGrantUpdateOne) SetNillableSubjectKind(s *string) *AccessGrantUpdateOne {
	if s != nil {
		aguo.SetSubjectKind(*s)
	}
	return aguo
}

// SetSubject sets the "subject" field.
func (aguo *AccessGrantUpdateOne) SetSubject(s string) *AccessGrantUpdateOne {
	aguo.mutation.SetSubject(s)
	return aguo
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (aguo *AccessGrantUpdateOne) SetNillableSubject(s *string) *AccessGrantUpdateOne {
	if s != nil {
		aguo.SetSubject(*s)
	}
	return aguo
}

// SetDashboard sets the "dashboard" edge to the Dashboard entity.
func (aguo *AccessGrantUpdateOne) SetDashboard(d *Dashboard) *AccessGrantUpdateOne {
	return aguo.SetDashboardID(d.ID)
}

// Mutation returns the AccessGrantMutation object of the builder.
func (aguo *AccessGrantUpdateOne) Mutation() *AccessGrantMutation {
	return aguo.mutation
}

// ClearDashboard clears the "dashboard" edge to the Dashboard entity.
func (aguo *AccessGrantUpdateOne) ClearDashboard() *AccessGrantUpdateOne {
	aguo.mutation.ClearDashboard()
	return aguo
}

// Where appends a list predicates to the AccessGrantUpdate builder.
func (aguo *AccessGrantUpdateOne) Where(ps ...predicate.AccessGrant) *AccessGrantUpdateOne {
	aguo.mutation.Where(ps...)
	return aguo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aguo *AccessGrantUpdateOne) Select(field string, fields ...string) *AccessGrantUpdateOne {
	aguo.fields = append([]string{field}, fields...)
	return aguo
}

// Save executes the query and returns the updated AccessGrant entity.
func (aguo *AccessGrantUpdateOne) Save(ctx context.Context) (*AccessGrant, error) {
	aguo.defaults()
	return withHooks(ctx, aguo.sqlSave, aguo.mutation, aguo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aguo *AccessGrantUpdateOne) SaveX(ctx context.Context) *AccessGrant {
	node, err := aguo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aguo *AccessGrantUpdateOne) Exec(ctx context.Context) error {
	_, err := aguo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aguo *AccessGrantUpdateOne) ExecX(ctx context.Context) {
	if err := aguo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aguo *AccessGrantUpdateOne) defaults() {
	if _, ok := aguo.mutation.UpdatedAt(); !ok {
		v := accessgrant.UpdateDefaultUpdatedAt()
		aguo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aguo *AccessGrantUpdateOne) check() error {
	if aguo.mutation.DashboardCleared() && len(aguo.mutation.DashboardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AccessGrant.dashboard"`)
	}
	return nil
}

func (aguo *AccessGrantUpdateOne) sqlSave(ctx context.Context) (_node *AccessGrant, err error) {
	if err := aguo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accessgrant.Table, accessgrant.Columns, sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32))
	id, ok := aguo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AccessGrant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aguo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accessgrant.FieldID)
		for _, f := range fields {
			if !accessgrant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != accessgrant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aguo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aguo.mutation.UpdatedAt(); ok {
		_spec.SetField(accessgrant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := aguo.mutation.SubjectKind(); ok {
		_spec.SetField(accessgrant.FieldSubjectKind, field.TypeString, value)
	}
	if value, ok := aguo.mutation.Subject(); ok {
		_spec.SetField(accessgrant.FieldSubject, field.TypeString, value)
	}
	if aguo.mutation.DashboardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   accessgrant.DashboardTable,
			Columns: []string{accessgrant.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aguo.mutation.DashboardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   accessgrant.DashboardTable,
			Columns: []string{accessgrant.DashboardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AccessGrant{config: aguo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aguo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accessgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aguo.mutation.done = true
	return _node, nil
}
