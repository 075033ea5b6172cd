// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dashgate/internal/db/ent/clickevent"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ClickEventCreate is the builder for creating a ClickEvent entity.
type ClickEventCreate struct {
	config
	mutation *ClickEventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (cec *ClickEventCreate) SetCreatedAt(t time.Time) *ClickEventCreate {
	cec.mutation.SetCreatedAt(t)
	return cec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cec *ClickEventCreate) SetNillableCreatedAt(t *time.Time) *ClickEventCreate {
	if t != nil {
		cec.SetCreatedAt(*t)
	}
	return cec
}

// SetUpdatedAt sets the "updated_at" field.
func (cec *ClickEventCreate) SetUpdatedAt(t time.Time) *ClickEventCreate {
	cec.mutation.SetUpdatedAt(t)
	return cec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cec *ClickEventCreate) SetNillableUpdatedAt(t *time.Time) *ClickEventCreate {
	if t != nil {
		cec.SetUpdatedAt(*t)
	}
	return cec
}

// SetDashboardID sets the "dashboard_id" field.
func (cec *ClickEventCreate) SetDashboardID(u uint32) *ClickEventCreate {
	cec.mutation.SetDashboardID(u)
	return cec
}

// SetDashboardTitle sets the "dashboard_title" field.
func (cec *ClickEventCreate) SetDashboardTitle(s string) *ClickEventCreate {
	cec.mutation.SetDashboardTitle(s)
	return cec
}

// SetNillableDashboardTitle sets the "dashboard_title" field if the given value is not nil.
func (cec *ClickEventCreate) SetNillableDashboardTitle(s *string) *ClickEventCreate {
	if s != nil {
		cec.SetDashboardTitle(*s)
	}
	return cec
}

// SetUserEmail sets the "user_email" field.
func (cec *ClickEventCreate) SetUserEmail(s string) *ClickEventCreate {
	cec.mutation.SetUserEmail(s)
	return cec
}

// SetID sets the "id" field.
func (cec *ClickEventCreate) SetID(u uint32) *ClickEventCreate {
	cec.mutation.SetID(u)
	return cec
}

// Mutation returns the ClickEventMutation object of the builder.
func (cec *ClickEventCreate) Mutation() *ClickEventMutation {
	return cec.mutation
}

// Save creates the ClickEvent in the database.
func (cec *ClickEventCreate) Save(ctx context.Context) (*ClickEvent, error) {
	cec.defaults()
	return withHooks(ctx, cec.sqlSave, cec.mutation, cec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cec *ClickEventCreate) SaveX(ctx context.Context) *ClickEvent {
	v, err := cec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cec *ClickEventCreate) Exec(ctx context.Context) error {
	_, err := cec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cec *ClickEventCreate) ExecX(ctx context.Context) {
	if err := cec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cec *ClickEventCreate) defaults() {
	if _, ok := cec.mutation.CreatedAt(); !ok {
		v := clickevent.DefaultCreatedAt()
		cec.mutation.SetCreatedAt(v)
	}
	if _, ok := cec.mutation.UpdatedAt(); !ok {
		v := clickevent.DefaultUpdatedAt()
		cec.mutation.SetUpdatedAt(v)
	}
	if _, ok := cec.mutation.DashboardTitle(); !ok {
		v := clickevent.DefaultDashboardTitle
		cec.mutation.SetDashboardTitle(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cec *ClickEventCreate) check() error {
	if _, ok := cec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClickEvent.created_at"`)}
	}
	if _, ok := cec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClickEvent.updated_at"`)}
	}
	if _, ok := cec.mutation.DashboardID(); !ok {
		return &ValidationError{Name: "dashboard_id", err: errors.New(`ent: missing required field "ClickEvent.dashboard_id"`)}
	}
	if _, ok := cec.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "ClickEvent.user_email"`)}
	}
	return nil
}

func (cec *ClickEventCreate) sqlSave(ctx context.Context) (*ClickEvent, error) {
	if err := cec.check(); err != nil {
		return nil, err
	}
	_node, _spec := cec.createSpec()
	if err := sqlgraph.CreateNode(ctx, cec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint32(id)
	}
	cec.mutation.id = &_node.ID
	cec.mutation.done = true
	return _node, nil
}

func (cec *ClickEventCreate) createSpec() (*ClickEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ClickEvent{config: cec.config}
		_spec = sqlgraph.NewCreateSpec(clickevent.Table, sqlgraph.NewFieldSpec(clickevent.FieldID, field.TypeUint32))
	)
	if id, ok := cec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cec.mutation.CreatedAt(); ok {
		_spec.SetField(clickevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cec.mutation.UpdatedAt(); ok {
		_spec.SetField(clickevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := cec.mutation.DashboardID(); ok {
		_spec.SetField(clickevent.FieldDashboardID, field.TypeUint32, value)
		_node.DashboardID = value
	}
	if value, ok := cec.mutation.DashboardTitle(); ok {
		_spec.SetField(clickevent.FieldDashboardTitle, field.TypeString, value)
		_node.DashboardTitle = value
	}
	if value, ok := cec.mutation.UserEmail(); ok {
		_spec.SetField(clickevent.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	return _node, _spec
}

// ClickEventCreateBulk is the builder for creating many ClickEvent entities in bulk.
type ClickEventCreateBulk struct {
	config
	err      error
	builders []*ClickEventCreate
}

// Save creates the ClickEvent entities in the database.
func (cecb *ClickEventCreateBulk) Save(ctx context.Context) ([]*ClickEvent, error) {
	if cecb.err != nil {
		return nil, cecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cecb.builders))
	nodes := make([]*ClickEvent, len(cecb.builders))
	mutators := make([]Mutator, len(cecb.builders))
	for i := range cecb.builders {
		func(i int, root context.Context) {
			builder := cecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClickEventMutation)
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
					_, err = mutators[i+1].Mutate(root, cecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cecb *ClickEventCreateBulk) SaveX(ctx context.Context) []*ClickEvent {
	v, err := cecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cecb *ClickEventCreateBulk) Exec(ctx context.Context) error {
	_, err := cecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cecb *ClickEventCreateBulk) ExecX(ctx context.Context) {
	if err := cecb.Exec(ctx); err != nil {
		panic(err)
	}
}
