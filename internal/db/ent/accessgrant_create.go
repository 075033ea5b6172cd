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

// AccessGrantCreate is the builder for creating a AccessGrant entity.
type AccessGrantCreate struct {
	config
	mutation *AccessGrantMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (agc *AccessGrantCreate) SetCreatedAt(t time.Time) *AccessGrantCreate {
	agc.mutation.SetCreatedAt(t)
	return agc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (agc *AccessGrantCreate) SetNillableCreatedAt(t *time.Time) *AccessGrantCreate {
	if t != nil {
		agc.SetCreatedAt(*t)
	}
	return agc
}

// SetUpdatedAt sets the "updated_at" field.
func (agc *AccessGrantCreate) SetUpdatedAt(t time.Time) *AccessGrantCreate {
	agc.mutation.SetUpdatedAt(t)
	return agc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (agc *AccessGrantCreate) SetNillableUpdatedAt(t *time.Time) *AccessGrantCreate {
	if t != nil {
		agc.SetUpdatedAt(*t)
	}
	return agc
}

// SetDashboardID sets the "dashboard_id" field.
func (agc *AccessGrantCreate) SetDashboardID(u uint32) *AccessGrantCreate {
	agc.mutation.SetDashboardID(u)
	return agc
}

// SetSubjectKind sets the "subject_kind" field.
func (agc *AccessGrantCreate) SetSubjectKind(s string) *AccessGrantCreate {
	agc.mutation.SetSubjectKind(s)
	return agc
}

// SetSubject sets the "subject" field.
func (agc *AccessGrantCreate) SetSubject(s string) *AccessGrantCreate {
	agc.mutation.SetSubject(s)
	return agc
}

// SetID sets the "id" field.
func (agc *AccessGrantCreate) SetID(u uint32) *AccessGrantCreate {
	agc.mutation.SetID(u)
	return agc
}

// SetDashboard sets the "dashboard" edge to the Dashboard entity.
func (agc *AccessGrantCreate) SetDashboard(d *Dashboard) *AccessGrantCreate {
	return agc.SetDashboardID(d.ID)
}

// Mutation returns the AccessGrantMutation object of the builder.
func (agc *AccessGrantCreate) Mutation() *AccessGrantMutation {
	return agc.mutation
}

// Save creates the AccessGrant in the database.
func (agc *AccessGrantCreate) Save(ctx context.Context) (*AccessGrant, error) {
	agc.defaults()
	return withHooks(ctx, agc.sqlSave, agc.mutation, agc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (agc *AccessGrantCreate) SaveX(ctx context.Context) *AccessGrant {
	v, err := agc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (agc *AccessGrantCreate) Exec(ctx context.Context) error {
	_, err := agc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (agc *AccessGrantCreate) ExecX(ctx context.Context) {
	if err := agc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (agc *AccessGrantCreate) defaults() {
	if _, ok := agc.mutation.CreatedAt(); !ok {
		v := accessgrant.DefaultCreatedAt()
		agc.mutation.SetCreatedAt(v)
	}
	if _, ok := agc.mutation.UpdatedAt(); !ok {
		v := accessgrant.DefaultUpdatedAt()
		agc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (agc *AccessGrantCreate) check() error {
	if _, ok := agc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AccessGrant.created_at"`)}
	}
	if _, ok := agc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AccessGrant.updated_at"`)}
	}
	if _, ok := agc.mutation.DashboardID(); !ok {
		return &ValidationError{Name: "dashboard_id", err: errors.New(`ent: missing required field "AccessGrant.dashboard_id"`)}
	}
	if _, ok := agc.mutation.SubjectKind(); !ok {
		return &ValidationError{Name: "subject_kind", err: errors.New(`ent: missing required field "AccessGrant.subject_kind"`)}
	}
	if _, ok := agc.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "AccessGrant.subject"`)}
	}
	if len(agc.mutation.DashboardIDs()) == 0 {
		return &ValidationError{Name: "dashboard", err: errors.New(`ent: missing required edge "AccessGrant.dashboard"`)}
	}
	return nil
}

func (agc *AccessGrantCreate) sqlSave(ctx context.Context) (*AccessGrant, error) {
	if err := agc.check(); err != nil {
		return nil, err
	}
	_node, _spec := agc.createSpec()
	if err := sqlgraph.CreateNode(ctx, agc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint32(id)
	}
	agc.mutation.id = &_node.ID
	agc.mutation.done = true
	return _node, nil
}

func (agc *AccessGrantCreate) createSpec() (*AccessGrant, *sqlgraph.CreateSpec) {
	var (
		_node = &AccessGrant{config: agc.config}
		_spec = sqlgraph.NewCreateSpec(accessgrant.Table, sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32))
	)
	if id, ok := agc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := agc.mutation.CreatedAt(); ok {
		_spec.SetField(accessgrant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := agc.mutation.UpdatedAt(); ok {
		_spec.SetField(accessgrant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := agc.mutation.SubjectKind(); ok {
		_spec.SetField(accessgrant.FieldSubjectKind, field.TypeString, value)
		_node.SubjectKind = value
	}
	if value, ok := agc.mutation.Subject(); ok {
		_spec.SetField(accessgrant.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if nodes := agc.mutation.DashboardIDs(); len(nodes) > 0 {
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
		_node.DashboardID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AccessGrantCreateBulk is the builder for creating many AccessGrant entities in bulk.
type AccessGrantCreateBulk struct {
	config
	err      error
	builders []*AccessGrantCreate
}

// Save creates the AccessGrant entities in the database.
func (agcb *AccessGrantCreateBulk) Save(ctx context.Context) ([]*AccessGrant, error) {
	if agcb.err != nil {
		return nil, agcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(agcb.builders))
	nodes := make([]*AccessGrant, len(agcb.builders))
	mutators := make([]Mutator, len(agcb.builders))
	for i := range agcb.builders {
		func(i int, root context.Context) {
			builder := agcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccessGrantMutation)
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
					_, err = mutators[i+1].Mutate(root, agcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, agcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, agcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (agcb *AccessGrantCreateBulk) SaveX(ctx context.Context) []*AccessGrant {
	v, err := agcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (agcb *AccessGrantCreateBulk) Exec(ctx context.Context) error {
	_, err := agcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (agcb *AccessGrantCreateBulk) ExecX(ctx context.Context) {
	if err := agcb.Exec(ctx); err != nil {
		panic(err)
	}
}
