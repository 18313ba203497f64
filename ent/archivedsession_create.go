// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stagehand-project/stagehand/ent/archivedsession"
)

// ArchivedSessionCreate is the builder for creating a ArchivedSession entity.
type ArchivedSessionCreate struct {
	config
	mutation *ArchivedSessionMutation
	hooks    []Hook
}

// SetObjective sets the "objective" field.
func (_c *ArchivedSessionCreate) SetObjective(v string) *ArchivedSessionCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetDetectedRole sets the "detected_role" field.
func (_c *ArchivedSessionCreate) SetDetectedRole(v string) *ArchivedSessionCreate {
	_c.mutation.SetDetectedRole(v)
	return _c
}

// SetFinalPhase sets the "final_phase" field.
func (_c *ArchivedSessionCreate) SetFinalPhase(v string) *ArchivedSessionCreate {
	_c.mutation.SetFinalPhase(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ArchivedSessionCreate) SetPayload(v map[string]interface{}) *ArchivedSessionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetReasoningEffectiveness sets the "reasoning_effectiveness" field.
func (_c *ArchivedSessionCreate) SetReasoningEffectiveness(v float64) *ArchivedSessionCreate {
	_c.mutation.SetReasoningEffectiveness(v)
	return _c
}

// SetRevision sets the "revision" field.
func (_c *ArchivedSessionCreate) SetRevision(v int64) *ArchivedSessionCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetPhaseTransitionCount sets the "phase_transition_count" field.
func (_c *ArchivedSessionCreate) SetPhaseTransitionCount(v int) *ArchivedSessionCreate {
	_c.mutation.SetPhaseTransitionCount(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArchivedSessionCreate) SetCreatedAt(v time.Time) *ArchivedSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *ArchivedSessionCreate) SetArchivedAt(v time.Time) *ArchivedSessionCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *ArchivedSessionCreate) SetNillableArchivedAt(v *time.Time) *ArchivedSessionCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArchivedSessionCreate) SetID(v string) *ArchivedSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArchivedSessionMutation object of the builder.
func (_c *ArchivedSessionCreate) Mutation() *ArchivedSessionMutation {
	return _c.mutation
}

// Save creates the ArchivedSession in the database.
func (_c *ArchivedSessionCreate) Save(ctx context.Context) (*ArchivedSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArchivedSessionCreate) SaveX(ctx context.Context) *ArchivedSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivedSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivedSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArchivedSessionCreate) defaults() {
	if _, ok := _c.mutation.ArchivedAt(); !ok {
		v := archivedsession.DefaultArchivedAt()
		_c.mutation.SetArchivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArchivedSessionCreate) check() error {
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "ArchivedSession.objective"`)}
	}
	if _, ok := _c.mutation.DetectedRole(); !ok {
		return &ValidationError{Name: "detected_role", err: errors.New(`ent: missing required field "ArchivedSession.detected_role"`)}
	}
	if _, ok := _c.mutation.FinalPhase(); !ok {
		return &ValidationError{Name: "final_phase", err: errors.New(`ent: missing required field "ArchivedSession.final_phase"`)}
	}
	if _, ok := _c.mutation.ReasoningEffectiveness(); !ok {
		return &ValidationError{Name: "reasoning_effectiveness", err: errors.New(`ent: missing required field "ArchivedSession.reasoning_effectiveness"`)}
	}
	if _, ok := _c.mutation.Revision(); !ok {
		return &ValidationError{Name: "revision", err: errors.New(`ent: missing required field "ArchivedSession.revision"`)}
	}
	if _, ok := _c.mutation.PhaseTransitionCount(); !ok {
		return &ValidationError{Name: "phase_transition_count", err: errors.New(`ent: missing required field "ArchivedSession.phase_transition_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArchivedSession.created_at"`)}
	}
	if _, ok := _c.mutation.ArchivedAt(); !ok {
		return &ValidationError{Name: "archived_at", err: errors.New(`ent: missing required field "ArchivedSession.archived_at"`)}
	}
	return nil
}

func (_c *ArchivedSessionCreate) sqlSave(ctx context.Context) (*ArchivedSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ArchivedSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArchivedSessionCreate) createSpec() (*ArchivedSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ArchivedSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(archivedsession.Table, sqlgraph.NewFieldSpec(archivedsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(archivedsession.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.DetectedRole(); ok {
		_spec.SetField(archivedsession.FieldDetectedRole, field.TypeString, value)
		_node.DetectedRole = value
	}
	if value, ok := _c.mutation.FinalPhase(); ok {
		_spec.SetField(archivedsession.FieldFinalPhase, field.TypeString, value)
		_node.FinalPhase = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(archivedsession.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ReasoningEffectiveness(); ok {
		_spec.SetField(archivedsession.FieldReasoningEffectiveness, field.TypeFloat64, value)
		_node.ReasoningEffectiveness = value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(archivedsession.FieldRevision, field.TypeInt64, value)
		_node.Revision = value
	}
	if value, ok := _c.mutation.PhaseTransitionCount(); ok {
		_spec.SetField(archivedsession.FieldPhaseTransitionCount, field.TypeInt, value)
		_node.PhaseTransitionCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(archivedsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(archivedsession.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = value
	}
	return _node, _spec
}

// ArchivedSessionCreateBulk is the builder for creating many ArchivedSession entities in bulk.
type ArchivedSessionCreateBulk struct {
	config
	err      error
	builders []*ArchivedSessionCreate
}

// Save creates the ArchivedSession entities in the database.
func (_c *ArchivedSessionCreateBulk) Save(ctx context.Context) ([]*ArchivedSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArchivedSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArchivedSessionMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ArchivedSessionCreateBulk) SaveX(ctx context.Context) []*ArchivedSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivedSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivedSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
