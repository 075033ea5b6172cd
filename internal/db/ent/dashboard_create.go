// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/dashboard"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DashboardCreate is the builder for creating a Dashboard entity.
type DashboardCreate struct {
	config
	mutation *DashboardMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (dc *DashboardCreate) SetCreatedAt(t time.Time) *DashboardCreate {
	dc.mutation.SetCreatedAt(t)
	return dc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (dc *DashboardCreate) SetNillableCreatedAt(t *time.Time) *DashboardCreate {
	if t != nil {
		dc.SetCreatedAt(*t)
	}
	return dc
}

// SetUpdatedAt sets the "updated_at" field.
func (dc *DashboardCreate) SetUpdatedAt(t time.Time) *DashboardCreate {
	dc.mutation.SetUpdatedAt(t)
	return dc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (dc *DashboardCreate) SetNillableUpdatedAt(t *time.Time) *DashboardCreate {
	if t != nil {
		dc.SetUpdatedAt(*t)
	}
	return dc
}

// SetTitle sets the "title" field.
func (dc *DashboardCreate) SetTitle(s string) *DashboardCreate {
	dc.mutation.SetTitle(s)
	return dc
}

// SetDescription sets the "description" field.
func (dc *DashboardCreate) SetDescription(s string) *DashboardCreate {
	dc.mutation.SetDescription(s)
	return dc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (dc *DashboardCreate) SetNillableDescription(s *string) *DashboardCreate {
	if s != nil {
		dc.SetDescription(*s)
	}
	return dc
}

// SetURL sets the "url" field.
func (dc *DashboardCreate) SetURL(s string) *DashboardCreate {
	dc.mutation.SetURL(s)
	return dc
}

// SetThumbnail sets the "thumbnail" field.
func (dc *DashboardCreate) SetThumbnail(s string) *DashboardCreate {
	dc.mutation.SetThumbnail(s)
	return dc
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (dc *DashboardCreate) SetNillableThumbnail(s *string) *DashboardCreate {
	if s != nil {
		dc.SetThumbnail(*s)
	}
	return dc
}

// SetID sets the "id" field.
func (dc *DashboardCreate) SetID(u uint32) *DashboardCreate {
	dc.mutation.SetID(u)
	return dc
}

// AddGrantIDs adds the "grants" edge to the AccessGrant entity by IDs.
func (dc *DashboardCreate) AddGrantIDs(ids ...uint32) *DashboardCreate {
	dc.mutation.AddGrantIDs(ids...)
	return dc
}

// AddGrants adds the "grants" edges to the AccessGrant entity.
func (dc *DashboardCreate) AddGrants(a ...*AccessGrant) *DashboardCreate {
	ids := make([]uint32, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return dc.AddGrantIDs(ids...)
}

// Mutation returns the DashboardMutation object of the builder.
func (dc *DashboardCreate) Mutation() *DashboardMutation {
	return dc.mutation
}

// Save creates the Dashboard in the database.
func (dc *DashboardCreate) Save(ctx context.Context) (*Dashboard, error) {
	dc.defaults()
	return withHooks(ctx, dc.sqlSave, dc.mutation, dc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dc *DashboardCreate) SaveX(ctx context.Context) *Dashboard {
	v, err := dc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dc *DashboardCreate) Exec(ctx context.Context) error {
	_, err := dc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dc *DashboardCreate) ExecX(ctx context.Context) {
	if err := dc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dc *DashboardCreate) defaults() {
	if _, ok := dc.mutation.CreatedAt(); !ok {
		v := dashboard.DefaultCreatedAt()
		dc.mutation.SetCreatedAt(v)
	}
	if _, ok := dc.mutation.UpdatedAt(); !ok {
		v := dashboard.DefaultUpdatedAt()
		dc.mutation.SetUpdatedAt(v)
	}
	if _, ok := dc.mutation.Description(); !ok {
		v := dashboard.DefaultDescription
		dc.mutation.SetDescription(v)
	}
	if _, ok := dc.mutation.Thumbnail(); !ok {
		v := dashboard.DefaultThumbnail
		dc.mutation.SetThumbnail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dc *DashboardCreate) check() error {
	if _, ok := dc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Dashboard.created_at"`)}
	}
	if _, ok := dc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Dashboard.updated_at"`)}
	}
	if _, ok := dc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Dashboard.title"`)}
	}
	if _, ok := dc.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Dashboard.url"`)}
	}
	return nil
}

func (dc *DashboardCreate) sqlSave(ctx context.Context) (*Dashboard, error) {
	if err := dc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint32(id)
	}
	dc.mutation.id = &_node.ID
	dc.mutation.done = true
	return _node, nil
}

func (dc *DashboardCreate) createSpec() (*Dashboard, *sqlgraph.CreateSpec) {
	var (
		_node = &Dashboard{config: dc.config}
		_spec = sqlgraph.NewCreateSpec(dashboard.Table, sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32))
	)
	if id, ok := dc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := dc.mutation.CreatedAt(); ok {
		_spec.SetField(dashboard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := dc.mutation.UpdatedAt(); ok {
		_spec.SetField(dashboard.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := dc.mutation.Title(); ok {
		_spec.SetField(dashboard.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := dc.mutation.Description(); ok {
		_spec.SetField(dashboard.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := dc.mutation.URL(); ok {
		_spec.SetField(dashboard.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := dc.mutation.Thumbnail(); ok {
		_spec.SetField(dashboard.FieldThumbnail, field.TypeString, value)
		_node.Thumbnail = value
	}
	if nodes := dc.mutation.GrantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DashboardCreateBulk is the builder for creating many Dashboard entities in bulk.
type DashboardCreateBulk struct {
	config
	err      error
	builders []*DashboardCreate
}

// Save creates the Dashboard entities in the database.
func (dcb *DashboardCreateBulk) Save(ctx context.Context) ([]*Dashboard, error) {
	if dcb.err != nil {
		return nil, dcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dcb.builders))
	nodes := make([]*Dashboard, len(dcb.builders))
	mutators := make([]Mutator, len(dcb.builders))
	for i := range dcb.builders {
		func(i int, root context.Context) {
			builder := dcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DashboardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, dcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint32(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, dcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dcb *DashboardCreateBulk) SaveX(ctx context.Context) []*Dashboard {
	v, err := dcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dcb *DashboardCreateBulk) Exec(ctx context.Context) error {
	_, err := dcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dcb *DashboardCreateBulk) ExecX(ctx context.Context) {
	if err := dcb.Exec(ctx); err != nil {
		panic(err)
	}
}
