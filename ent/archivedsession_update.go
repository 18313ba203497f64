// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stagehand-project/stagehand/ent/archivedsession"
	"github.com/stagehand-project/stagehand/ent/predicate"
)

// ArchivedSessionUpdate is the builder for updating ArchivedSession entities.
type ArchivedSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ArchivedSessionMutation
}

// Where appends a list predicates to the ArchivedSessionUpdate builder.
func (_u *ArchivedSessionUpdate) Where(ps ...predicate.ArchivedSession) *ArchivedSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ArchivedSessionMutation object of the builder.
func (_u *ArchivedSessionUpdate) Mutation() *ArchivedSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArchivedSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivedSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArchivedSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivedSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArchivedSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(archivedsession.Table, archivedsession.Columns, sqlgraph.NewFieldSpec(archivedsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(archivedsession.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivedsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArchivedSessionUpdateOne is the builder for updating a single ArchivedSession entity.
type ArchivedSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArchivedSessionMutation
}

// Mutation returns the ArchivedSessionMutation object of the builder.
func (_u *ArchivedSessionUpdateOne) Mutation() *ArchivedSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArchivedSessionUpdate builder.
func (_u *ArchivedSessionUpdateOne) Where(ps ...predicate.ArchivedSession) *ArchivedSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArchivedSessionUpdateOne) Select(field string, fields ...string) *ArchivedSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArchivedSession entity.
func (_u *ArchivedSessionUpdateOne) Save(ctx context.Context) (*ArchivedSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivedSessionUpdateOne) SaveX(ctx context.Context) *ArchivedSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArchivedSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivedSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArchivedSessionUpdateOne) sqlSave(ctx context.Context) (_node *ArchivedSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(archivedsession.Table, archivedsession.Columns, sqlgraph.NewFieldSpec(archivedsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArchivedSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, archivedsession.FieldID)
		for _, f := range fields {
			if !archivedsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != archivedsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(archivedsession.FieldPayload, field.TypeJSON)
	}
	_node = &ArchivedSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivedsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
