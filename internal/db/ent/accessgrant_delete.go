// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AccessGrantDelete is the builder for deleting a AccessGrant entity.
type AccessGrantDelete struct {
	config
	hooks    []Hook
	mutation *AccessGrantMutation
}

// Where appends a list predicates to the AccessGrantDelete builder.
func (agd *AccessGrantDelete) Where(ps ...predicate.AccessGrant) *AccessGrantDelete {
	agd.mutation.Where(ps...)
	return agd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (agd *AccessGrantDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, agd.sqlExec, agd.mutation, agd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (agd *AccessGrantDelete) ExecX(ctx context.Context) int {
	n, err := agd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (agd *AccessGrantDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(accessgrant.Table, sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32))
	if ps := agd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, agd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	agd.mutation.done = true
	return affected, err
}

// AccessGrantDeleteOne is the builder for deleting a single AccessGrant entity.
type AccessGrantDeleteOne struct {
	agd *AccessGrantDelete
}

// Where appends a list predicates to the AccessGrantDelete builder.
func (agdo *AccessGrantDeleteOne) Where(ps ...predicate.AccessGrant) *AccessGrantDeleteOne {
	agdo.agd.mutation.Where(ps...)
	return agdo
}

// Exec executes the deletion query.
func (agdo *AccessGrantDeleteOne) Exec(ctx context.Context) error {
	n, err := agdo.agd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{accessgrant.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (agdo *AccessGrantDeleteOne) ExecX(ctx context.Context) {
	if err := agdo.Exec(ctx); err != nil {
		panic(err)
	}
}
