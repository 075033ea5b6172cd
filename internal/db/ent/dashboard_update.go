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

// DashboardUpdate is the builder for updating Dashboard entities.
type DashboardUpdate struct {
	config
	hooks    []Hook
	mutation *DashboardMutation
}

// Where appends a list predicates to the DashboardUpdate builder.
func (du *DashboardUpdate) Where(ps ...predicate.Dashboard) *DashboardUpdate {
	du.mutation.Where(ps...)
	return du
}

// SetUpdatedAt sets the "updated_at" field.
func (du *DashboardUpdate) SetUpdatedAt(t time.Time) *DashboardUpdate {
	du.mutation.SetUpdatedAt(t)
	return du
}

// SetTitle sets the "title" field.
func (du *DashboardUpdate) SetTitle(s string) *DashboardUpdate {
	du.mutation.SetTitle(s)
	return du
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (du *DashboardUpdate) SetNillableTitle(s *string) *DashboardUpdate {
	if s != nil {
		du.SetTitle(*s)
	}
	return du
}

// SetDescription sets the "description" field.
func (du *DashboardUpdate) SetDescription(s string) *DashboardUpdate {
	du.mutation.SetDescription(s)
	return du
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (du *DashboardUpdate) SetNillableDescription(s *string) *DashboardUpdate {
	if s != nil {
		du.SetDescription(*s)
	}
	return du
}

// ClearDescription clears the value of the "description" field.
func (du *DashboardUpdate) ClearDescription() *DashboardUpdate {
	du.mutation.ClearDescription()
	return du
}

// SetURL sets the "url" field.
func (du *DashboardUpdate) SetURL(s string) *DashboardUpdate {
	du.mutation.SetURL(s)
	return du
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (du *DashboardUpdate) SetNillableURL(s *string) *DashboardUpdate {
	if s != nil {
		du.SetURL(*s)
	}
	return du
}

// SetThumbnail sets the "thumbnail" field.
func (du *DashboardUpdate) SetThumbnail(s string) *DashboardUpdate {
	du.mutation.SetThumbnail(s)
	return du
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (du *DashboardUpdate) SetNillableThumbnail(s *string) *DashboardUpdate {
	if s != nil {
		du.SetThumbnail(*s)
	}
	return du
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (du *DashboardUpdate) ClearThumbnail() *DashboardUpdate {
	du.mutation.ClearThumbnail()
	return du
}

// AddGrantIDs adds the "grants" edge to the AccessGrant entity by IDs.
func (du *DashboardUpdate) AddGrantIDs(ids ...uint32) *DashboardUpdate {
	du.mutation.AddGrantIDs(ids...)
	return du
}

// AddGrants adds the "grants" edges to the AccessGrant entity.
func (du *DashboardUpdate) AddGrants(a ...*AccessGrant) *DashboardUpdate {
	ids := make([]uint32, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return du.AddGrantIDs(ids...)
}

// Mutation returns the DashboardMutation object of the builder.
func (du *DashboardUpdate) Mutation() *DashboardMutation {
	return du.mutation
}

// ClearGrants clears all "grants" edges to the AccessGrant entity.
func (du *DashboardUpdate) ClearGrants() *DashboardUpdate {
	du.mutation.ClearGrants()
	return du
}

// RemoveGrantIDs removes the "grants" edge to AccessGrant entities by IDs.
func (du *DashboardUpdate) RemoveGrantIDs(ids ...uint32) *DashboardUpdate {
	du.mutation.RemoveGrantIDs(ids...)
	return du
}

// RemoveGrants removes "grants" edges to AccessGrant entities.
func (du *DashboardUpdate) RemoveGrants(a ...*AccessGrant) *DashboardUpdate {
	ids := make([]uint32, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return du.RemoveGrantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (du *DashboardUpdate) Save(ctx context.Context) (int, error) {
	du.defaults()
	return withHooks(ctx, du.sqlSave, du.mutation, du.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (du *DashboardUpdate) SaveX(ctx context.Context) int {
	affected, err := du.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (du *DashboardUpdate) Exec(ctx context.Context) error {
	_, err := du.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (du *DashboardUpdate) ExecX(ctx context.Context) {
	if err := du.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (du *DashboardUpdate) defaults() {
	if _, ok := du.mutation.UpdatedAt(); !ok {
		v := dashboard.UpdateDefaultUpdatedAt()
		du.mutation.SetUpdatedAt(v)
	}
}

func (du *DashboardUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dashboard.Table, dashboard.Columns, sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32))
	if ps := du.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := du.mutation.UpdatedAt(); ok {
		_spec.SetField(dashboard.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := du.mutation.Title(); ok {
		_spec.SetField(dashboard.FieldTitle, field.TypeString, value)
	}
	if value, ok := du.mutation.Description(); ok {
		_spec.SetField(dashboard.FieldDescription, field.TypeString, value)
	}
	if du.mutation.DescriptionCleared() {
		_spec.ClearField(dashboard.FieldDescription, field.TypeString)
	}
	if value, ok := du.mutation.URL(); ok {
		_spec.SetField(dashboard.FieldURL, field.TypeString, value)
	}
	if value, ok := du.mutation.Thumbnail(); ok {
		_spec.SetField(dashboard.FieldThumbnail, field.TypeString, value)
	}
	if du.mutation.ThumbnailCleared() {
		_spec.ClearField(dashboard.FieldThumbnail, field.TypeString)
	}
	if du.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dashboard.GrantsTable,
			Columns: []string{dashboard.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !du.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dashboard.GrantsTable,
			Columns: []string{dashboard.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dashboard.GrantsTable,
			Columns: []string{dashboard.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, du.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dashboard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	du.mutation.done = true
	return n, nil
}

// DashboardUpdateOne is the builder for updating a single Dashboard entity.
type DashboardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DashboardMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (duo *DashboardUpdateOne) SetUpdatedAt(t time.Time) *DashboardUpdateOne {
	duo.mutation.SetUpdatedAt(t)
	return duo
}

// SetTitle sets the "title" field.
func (duo *DashboardUpdateOne) SetTitle(s string) *DashboardUpdateOne {
	duo.mutation.SetTitle(s)
	return duo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (duo *DashboardUpdateOne) SetNillableTitle(s *string) *DashboardUpdateOne {
	if s != nil {
		duo.SetTitle(*s)
	}
	return duo
}

// SetDescription sets the "description" field.
func (duo *DashboardUpdateOne) SetDescription(s string) *DashboardUpdateOne {
	duo.mutation.SetDescription(s)
	return duo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (duo *DashboardUpdateOne) SetNillableDescription(s *string) *DashboardUpdateOne {
	if s != nil {
		duo.SetDescription(*s)
	}
	return duo
}

// ClearDescription clears the value of the "description" field.
func (duo *DashboardUpdateOne) ClearDescription() *DashboardUpdateOne {
	duo.mutation.ClearDescription()
	return duo
}

// SetURL sets the "url" field.
func (duo *DashboardUpdateOne) SetURL(s string) *DashboardUpdateOne {
	duo.mutation.SetURL(s)
	return duo
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (duo *DashboardUpdateOne) SetNillableURL(s *string) *DashboardUpdateOne {
	if s != nil {
		duo.SetURL(*s)
	}
	return duo
}

// SetThumbnail sets the "thumbnail" field.
func (duo *DashboardUpdateOne) SetThumbnail(s string) *DashboardUpdateOne {
	duo.mutation.SetThumbnail(s)
	return duo
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (duo *DashboardUpdateOne) SetNillableThumbnail(s *string) *DashboardUpdateOne {
	if s != nil {
		duo.SetThumbnail(*s)
	}
	return duo
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (duo *DashboardUpdateOne) ClearThumbnail() *DashboardUpdateOne {
	duo.mutation.ClearThumbnail()
	return duo
}

// AddGrantIDs adds the "grants" edge to the AccessGrant entity by IDs.
func (duo *DashboardUpdateOne) AddGrantIDs(ids ...uint32) *DashboardUpdateOne {
	duo.mutation.AddGrantIDs(ids...)
	return duo
}

// AddGrants adds the "grants" edges to the AccessGrant entity.
func (duo *DashboardUpdateOne) AddGrants(a ...*AccessGrant) *DashboardUpdateOne {
	ids := make([]uint32, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return duo.AddGrantIDs(ids...)
}

// Mutation returns the DashboardMutation object of the builder.
func (duo *DashboardUpdateOne) Mutation() *DashboardMutation {
	return duo.mutation
}

// ClearGrants clears all "grants" edges to the AccessGrant entity.
func (duo *DashboardUpdateOne) ClearGrants() *DashboardUpdateOne {
	duo.mutation.ClearGrants()
	return duo
}

// RemoveGrantIDs removes the "grants" edge to AccessGrant entities by IDs.
func (duo *DashboardUpdateOne) RemoveGrantIDs(ids ...uint32) *DashboardUpdateOne {
	duo.mutation.RemoveGrantIDs(ids...)
	return duo
}

// RemoveGrants removes "grants" edges to AccessGrant entities.
func (duo *DashboardUpdateOne) RemoveGrants(a ...*AccessGrant) *DashboardUpdateOne {
	ids := make([]uint32, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return duo.RemoveGrantIDs(ids...)
}

// Where appends a list predicates to the DashboardUpdate builder.
func (duo *DashboardUpdateOne) Where(ps ...predicate.Dashboard) *DashboardUpdateOne {
	duo.mutation.Where(ps...)
	return duo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (duo *DashboardUpdateOne) Select(field string, fields ...string) *DashboardUpdateOne {
	duo.fields = append([]string{field}, fields...)
	return duo
}

// Save executes the query and returns the updated Dashboard entity.
func (duo *DashboardUpdateOne) Save(ctx context.Context) (*Dashboard, error) {
	duo.defaults()
	return withHooks(ctx, duo.sqlSave, duo.mutation, duo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (duo *DashboardUpdateOne) SaveX(ctx context.Context) *Dashboard {
	node, err := duo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (duo *DashboardUpdateOne) Exec(ctx context.Context) error {
	_, err := duo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duo *DashboardUpdateOne) ExecX(ctx context.Context) {
	if err := duo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (duo *DashboardUpdateOne) defaults() {
	if _, ok := duo.mutation.UpdatedAt(); !ok {
		v := dashboard.UpdateDefaultUpdatedAt()
		duo.mutation.SetUpdatedAt(v)
	}
}

func (duo *DashboardUpdateOne) sqlSave(ctx context.Context) (_node *Dashboard, err error) {
	_spec := sqlgraph.NewUpdateSpec(dashboard.Table, dashboard.Columns, sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32))
	id, ok := duo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dashboard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := duo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dashboard.FieldID)
		for _, f := range fields {
			if !dashboard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dashboard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := duo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := duo.mutation.UpdatedAt(); ok {
		_spec.SetField(dashboard.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := duo.mutation.Title(); ok {
		_spec.SetField(dashboard.FieldTitle, field.TypeString, value)
	}
	if value, ok := duo.mutation.Description(); ok {
		_spec.SetField(dashboard.FieldDescription, field.TypeString, value)
	}
	if duo.mutation.DescriptionCleared() {
		_spec.ClearField(dashboard.FieldDescription, field.TypeString)
	}
	if value, ok := duo.mutation.URL(); ok {
		_spec.SetField(dashboard.FieldURL, field.TypeString, value)
	}
	if value, ok := duo.mutation.Thumbnail(); ok {
		_spec.SetField(dashboard.FieldThumbnail, field.TypeString, value)
	}
	if duo.mutation.ThumbnailCleared() {
		_spec.ClearField(dashboard.FieldThumbnail, field.TypeString)
	}
	if duo.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dashboard.GrantsTable,
			Columns: []string{dashboard.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !duo.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dashboard.GrantsTable,
			Columns: []string{dashboard.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dashboard.GrantsTable,
			Columns: []string{dashboard.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Dashboard{config: duo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, duo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dashboard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	duo.mutation.done = true
	return _node, nil
}
