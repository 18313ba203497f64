// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stagehand-project/stagehand/ent/archivedsession"
	"github.com/stagehand-project/stagehand/ent/predicate"
)

// ArchivedSessionDelete is the builder for deleting a ArchivedSession entity.
type ArchivedSessionDelete struct {
	config
	hooks    []Hook
	mutation *ArchivedSessionMutation
}

// Where appends a list predicates to the ArchivedSessionDelete builder.
func (_d *ArchivedSessionDelete) Where(ps ...predicate.ArchivedSession) *ArchivedSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArchivedSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivedSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArchivedSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(archivedsession.Table, sqlgraph.NewFieldSpec(archivedsession.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ArchivedSessionDeleteOne is the builder for deleting a single ArchivedSession entity.
type ArchivedSessionDeleteOne struct {
	_d *ArchivedSessionDelete
}

// Where appends a list predicates to the ArchivedSessionDelete builder.
func (_d *ArchivedSessionDeleteOne) Where(ps ...predicate.ArchivedSession) *ArchivedSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArchivedSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{archivedsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivedSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
