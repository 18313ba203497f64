// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stagehand-project/stagehand/ent/statesession"
)

// StateSessionCreate is the builder for creating a StateSession entity.
type StateSessionCreate struct {
	config
	mutation *StateSessionMutation
	hooks    []Hook
}

// SetObjective sets the "objective" field.
func (_c *StateSessionCreate) SetObjective(v string) *StateSessionCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetDetectedRole sets the "detected_role" field.
func (_c *StateSessionCreate) SetDetectedRole(v string) *StateSessionCreate {
	_c.mutation.SetDetectedRole(v)
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *StateSessionCreate) SetCurrentPhase(v statesession.CurrentPhase) *StateSessionCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *StateSessionCreate) SetNillableCurrentPhase(v *statesession.CurrentPhase) *StateSessionCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StateSessionCreate) SetPayload(v map[string]interface{}) *StateSessionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetReasoningEffectiveness sets the "reasoning_effectiveness" field.
func (_c *StateSessionCreate) SetReasoningEffectiveness(v float64) *StateSessionCreate {
	_c.mutation.SetReasoningEffectiveness(v)
	return _c
}

// SetRevision sets the "revision" field.
func (_c *StateSessionCreate) SetRevision(v int64) *StateSessionCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_c *StateSessionCreate) SetNillableRevision(v *int64) *StateSessionCreate {
	if v != nil {
		_c.SetRevision(*v)
	}
	return _c
}

// SetLastCompletionHash sets the "last_completion_hash" field.
func (_c *StateSessionCreate) SetLastCompletionHash(v string) *StateSessionCreate {
	_c.mutation.SetLastCompletionHash(v)
	return _c
}

// SetNillableLastCompletionHash sets the "last_completion_hash" field if the given value is not nil.
func (_c *StateSessionCreate) SetNillableLastCompletionHash(v *string) *StateSessionCreate {
	if v != nil {
		_c.SetLastCompletionHash(*v)
	}
	return _c
}

// SetPhaseTransitionCount sets the "phase_transition_count" field.
func (_c *StateSessionCreate) SetPhaseTransitionCount(v int) *StateSessionCreate {
	_c.mutation.SetPhaseTransitionCount(v)
	return _c
}

// SetNillablePhaseTransitionCount sets the "phase_transition_count" field if the given value is not nil.
func (_c *StateSessionCreate) SetNillablePhaseTransitionCount(v *int) *StateSessionCreate {
	if v != nil {
		_c.SetPhaseTransitionCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StateSessionCreate) SetCreatedAt(v time.Time) *StateSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StateSessionCreate) SetNillableCreatedAt(v *time.Time) *StateSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StateSessionCreate) SetUpdatedAt(v time.Time) *StateSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StateSessionCreate) SetNillableUpdatedAt(v *time.Time) *StateSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *StateSessionCreate) SetLastActivityAt(v time.Time) *StateSessionCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *StateSessionCreate) SetNillableLastActivityAt(v *time.Time) *StateSessionCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StateSessionCreate) SetID(v string) *StateSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StateSessionMutation object of the builder.
func (_c *StateSessionCreate) Mutation() *StateSessionMutation {
	return _c.mutation
}

// Save creates the StateSession in the database.
func (_c *StateSessionCreate) Save(ctx context.Context) (*StateSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StateSessionCreate) SaveX(ctx context.Context) *StateSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StateSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		v := statesession.DefaultCurrentPhase
		_c.mutation.SetCurrentPhase(v)
	}
	if _, ok := _c.mutation.Revision(); !ok {
		v := statesession.DefaultRevision
		_c.mutation.SetRevision(v)
	}
	if _, ok := _c.mutation.PhaseTransitionCount(); !ok {
		v := statesession.DefaultPhaseTransitionCount
		_c.mutation.SetPhaseTransitionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := statesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := statesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := statesession.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StateSessionCreate) check() error {
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "StateSession.objective"`)}
	}
	if _, ok := _c.mutation.DetectedRole(); !ok {
		return &ValidationError{Name: "detected_role", err: errors.New(`ent: missing required field "StateSession.detected_role"`)}
	}
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		return &ValidationError{Name: "current_phase", err: errors.New(`ent: missing required field "StateSession.current_phase"`)}
	}
	if v, ok := _c.mutation.CurrentPhase(); ok {
		if err := statesession.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "StateSession.current_phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReasoningEffectiveness(); !ok {
		return &ValidationError{Name: "reasoning_effectiveness", err: errors.New(`ent: missing required field "StateSession.reasoning_effectiveness"`)}
	}
	if _, ok := _c.mutation.Revision(); !ok {
		return &ValidationError{Name: "revision", err: errors.New(`ent: missing required field "StateSession.revision"`)}
	}
	if _, ok := _c.mutation.PhaseTransitionCount(); !ok {
		return &ValidationError{Name: "phase_transition_count", err: errors.New(`ent: missing required field "StateSession.phase_transition_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StateSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StateSession.updated_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "StateSession.last_activity_at"`)}
	}
	return nil
}

func (_c *StateSessionCreate) sqlSave(ctx context.Context) (*StateSession, error) {
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
			return nil, fmt.Errorf("unexpected StateSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StateSessionCreate) createSpec() (*StateSession, *sqlgraph.CreateSpec) {
	var (
		_node = &StateSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statesession.Table, sqlgraph.NewFieldSpec(statesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(statesession.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.DetectedRole(); ok {
		_spec.SetField(statesession.FieldDetectedRole, field.TypeString, value)
		_node.DetectedRole = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(statesession.FieldCurrentPhase, field.TypeEnum, value)
		_node.CurrentPhase = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(statesession.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ReasoningEffectiveness(); ok {
		_spec.SetField(statesession.FieldReasoningEffectiveness, field.TypeFloat64, value)
		_node.ReasoningEffectiveness = value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(statesession.FieldRevision, field.TypeInt64, value)
		_node.Revision = value
	}
	if value, ok := _c.mutation.LastCompletionHash(); ok {
		_spec.SetField(statesession.FieldLastCompletionHash, field.TypeString, value)
		_node.LastCompletionHash = &value
	}
	if value, ok := _c.mutation.PhaseTransitionCount(); ok {
		_spec.SetField(statesession.FieldPhaseTransitionCount, field.TypeInt, value)
		_node.PhaseTransitionCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(statesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(statesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(statesession.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	return _node, _spec
}

// StateSessionCreateBulk is the builder for creating many StateSession entities in bulk.
type StateSessionCreateBulk struct {
	config
	err      error
	builders []*StateSessionCreate
}

// Save creates the StateSession entities in the database.
func (_c *StateSessionCreateBulk) Save(ctx context.Context) ([]*StateSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StateSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StateSessionMutation)
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
func (_c *StateSessionCreateBulk) SaveX(ctx context.Context) []*StateSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
