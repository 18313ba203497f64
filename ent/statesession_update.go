// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stagehand-project/stagehand/ent/predicate"
	"github.com/stagehand-project/stagehand/ent/statesession"
)

// StateSessionUpdate is the builder for updating StateSession entities.
type StateSessionUpdate struct {
	config
	hooks    []Hook
	mutation *StateSessionMutation
}

// Where appends a list predicates to the StateSessionUpdate builder.
func (_u *StateSessionUpdate) Where(ps ...predicate.StateSession) *StateSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjective sets the "objective" field.
func (_u *StateSessionUpdate) SetObjective(v string) *StateSessionUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillableObjective(v *string) *StateSessionUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetDetectedRole sets the "detected_role" field.
func (_u *StateSessionUpdate) SetDetectedRole(v string) *StateSessionUpdate {
	_u.mutation.SetDetectedRole(v)
	return _u
}

// SetNillableDetectedRole sets the "detected_role" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillableDetectedRole(v *string) *StateSessionUpdate {
	if v != nil {
		_u.SetDetectedRole(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *StateSessionUpdate) SetCurrentPhase(v statesession.CurrentPhase) *StateSessionUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillableCurrentPhase(v *statesession.CurrentPhase) *StateSessionUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StateSessionUpdate) SetPayload(v map[string]interface{}) *StateSessionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *StateSessionUpdate) ClearPayload() *StateSessionUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetReasoningEffectiveness sets the "reasoning_effectiveness" field.
func (_u *StateSessionUpdate) SetReasoningEffectiveness(v float64) *StateSessionUpdate {
	_u.mutation.ResetReasoningEffectiveness()
	_u.mutation.SetReasoningEffectiveness(v)
	return _u
}

// SetNillableReasoningEffectiveness sets the "reasoning_effectiveness" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillableReasoningEffectiveness(v *float64) *StateSessionUpdate {
	if v != nil {
		_u.SetReasoningEffectiveness(*v)
	}
	return _u
}

// AddReasoningEffectiveness adds value to the "reasoning_effectiveness" field.
func (_u *StateSessionUpdate) AddReasoningEffectiveness(v float64) *StateSessionUpdate {
	_u.mutation.AddReasoningEffectiveness(v)
	return _u
}

// SetRevision sets the "revision" field.
func (_u *StateSessionUpdate) SetRevision(v int64) *StateSessionUpdate {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillableRevision(v *int64) *StateSessionUpdate {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *StateSessionUpdate) AddRevision(v int64) *StateSessionUpdate {
	_u.mutation.AddRevision(v)
	return _u
}

// SetLastCompletionHash sets the "last_completion_hash" field.
func (_u *StateSessionUpdate) SetLastCompletionHash(v string) *StateSessionUpdate {
	_u.mutation.SetLastCompletionHash(v)
	return _u
}

// SetNillableLastCompletionHash sets the "last_completion_hash" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillableLastCompletionHash(v *string) *StateSessionUpdate {
	if v != nil {
		_u.SetLastCompletionHash(*v)
	}
	return _u
}

// ClearLastCompletionHash clears the value of the "last_completion_hash" field.
func (_u *StateSessionUpdate) ClearLastCompletionHash() *StateSessionUpdate {
	_u.mutation.ClearLastCompletionHash()
	return _u
}

// SetPhaseTransitionCount sets the "phase_transition_count" field.
func (_u *StateSessionUpdate) SetPhaseTransitionCount(v int) *StateSessionUpdate {
	_u.mutation.ResetPhaseTransitionCount()
	_u.mutation.SetPhaseTransitionCount(v)
	return _u
}

// SetNillablePhaseTransitionCount sets the "phase_transition_count" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillablePhaseTransitionCount(v *int) *StateSessionUpdate {
	if v != nil {
		_u.SetPhaseTransitionCount(*v)
	}
	return _u
}

// AddPhaseTransitionCount adds value to the "phase_transition_count" field.
func (_u *StateSessionUpdate) AddPhaseTransitionCount(v int) *StateSessionUpdate {
	_u.mutation.AddPhaseTransitionCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateSessionUpdate) SetUpdatedAt(v time.Time) *StateSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StateSessionUpdate) SetLastActivityAt(v time.Time) *StateSessionUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StateSessionUpdate) SetNillableLastActivityAt(v *time.Time) *StateSessionUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// Mutation returns the StateSessionMutation object of the builder.
func (_u *StateSessionUpdate) Mutation() *StateSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StateSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StateSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := statesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateSessionUpdate) check() error {
	if v, ok := _u.mutation.CurrentPhase(); ok {
		if err := statesession.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "StateSession.current_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *StateSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statesession.Table, statesession.Columns, sqlgraph.NewFieldSpec(statesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(statesession.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetectedRole(); ok {
		_spec.SetField(statesession.FieldDetectedRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(statesession.FieldCurrentPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(statesession.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(statesession.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReasoningEffectiveness(); ok {
		_spec.SetField(statesession.FieldReasoningEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReasoningEffectiveness(); ok {
		_spec.AddField(statesession.FieldReasoningEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(statesession.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(statesession.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastCompletionHash(); ok {
		_spec.SetField(statesession.FieldLastCompletionHash, field.TypeString, value)
	}
	if _u.mutation.LastCompletionHashCleared() {
		_spec.ClearField(statesession.FieldLastCompletionHash, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseTransitionCount(); ok {
		_spec.SetField(statesession.FieldPhaseTransitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseTransitionCount(); ok {
		_spec.AddField(statesession.FieldPhaseTransitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(statesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(statesession.FieldLastActivityAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StateSessionUpdateOne is the builder for updating a single StateSession entity.
type StateSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateSessionMutation
}

// SetObjective sets the "objective" field.
func (_u *StateSessionUpdateOne) SetObjective(v string) *StateSessionUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillableObjective(v *string) *StateSessionUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetDetectedRole sets the "detected_role" field.
func (_u *StateSessionUpdateOne) SetDetectedRole(v string) *StateSessionUpdateOne {
	_u.mutation.SetDetectedRole(v)
	return _u
}

// SetNillableDetectedRole sets the "detected_role" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillableDetectedRole(v *string) *StateSessionUpdateOne {
	if v != nil {
		_u.SetDetectedRole(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *StateSessionUpdateOne) SetCurrentPhase(v statesession.CurrentPhase) *StateSessionUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillableCurrentPhase(v *statesession.CurrentPhase) *StateSessionUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StateSessionUpdateOne) SetPayload(v map[string]interface{}) *StateSessionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *StateSessionUpdateOne) ClearPayload() *StateSessionUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetReasoningEffectiveness sets the "reasoning_effectiveness" field.
func (_u *StateSessionUpdateOne) SetReasoningEffectiveness(v float64) *StateSessionUpdateOne {
	_u.mutation.ResetReasoningEffectiveness()
	_u.mutation.SetReasoningEffectiveness(v)
	return _u
}

// SetNillableReasoningEffectiveness sets the "reasoning_effectiveness" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillableReasoningEffectiveness(v *float64) *StateSessionUpdateOne {
	if v != nil {
		_u.SetReasoningEffectiveness(*v)
	}
	return _u
}

// AddReasoningEffectiveness adds value to the "reasoning_effectiveness" field.
func (_u *StateSessionUpdateOne) AddReasoningEffectiveness(v float64) *StateSessionUpdateOne {
	_u.mutation.AddReasoningEffectiveness(v)
	return _u
}

// SetRevision sets the "revision" field.
func (_u *StateSessionUpdateOne) SetRevision(v int64) *StateSessionUpdateOne {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillableRevision(v *int64) *StateSessionUpdateOne {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *StateSessionUpdateOne) AddRevision(v int64) *StateSessionUpdateOne {
	_u.mutation.AddRevision(v)
	return _u
}

// SetLastCompletionHash sets the "last_completion_hash" field.
func (_u *StateSessionUpdateOne) SetLastCompletionHash(v string) *StateSessionUpdateOne {
	_u.mutation.SetLastCompletionHash(v)
	return _u
}

// SetNillableLastCompletionHash sets the "last_completion_hash" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillableLastCompletionHash(v *string) *StateSessionUpdateOne {
	if v != nil {
		_u.SetLastCompletionHash(*v)
	}
	return _u
}

// ClearLastCompletionHash clears the value of the "last_completion_hash" field.
func (_u *StateSessionUpdateOne) ClearLastCompletionHash() *StateSessionUpdateOne {
	_u.mutation.ClearLastCompletionHash()
	return _u
}

// SetPhaseTransitionCount sets the "phase_transition_count" field.
func (_u *StateSessionUpdateOne) SetPhaseTransitionCount(v int) *StateSessionUpdateOne {
	_u.mutation.ResetPhaseTransitionCount()
	_u.mutation.SetPhaseTransitionCount(v)
	return _u
}

// SetNillablePhaseTransitionCount sets the "phase_transition_count" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillablePhaseTransitionCount(v *int) *StateSessionUpdateOne {
	if v != nil {
		_u.SetPhaseTransitionCount(*v)
	}
	return _u
}

// AddPhaseTransitionCount adds value to the "phase_transition_count" field.
func (_u *StateSessionUpdateOne) AddPhaseTransitionCount(v int) *StateSessionUpdateOne {
	_u.mutation.AddPhaseTransitionCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateSessionUpdateOne) SetUpdatedAt(v time.Time) *StateSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StateSessionUpdateOne) SetLastActivityAt(v time.Time) *StateSessionUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StateSessionUpdateOne) SetNillableLastActivityAt(v *time.Time) *StateSessionUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// Mutation returns the StateSessionMutation object of the builder.
func (_u *StateSessionUpdateOne) Mutation() *StateSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StateSessionUpdate builder.
func (_u *StateSessionUpdateOne) Where(ps ...predicate.StateSession) *StateSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StateSessionUpdateOne) Select(field string, fields ...string) *StateSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StateSession entity.
func (_u *StateSessionUpdateOne) Save(ctx context.Context) (*StateSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateSessionUpdateOne) SaveX(ctx context.Context) *StateSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StateSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := statesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateSessionUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentPhase(); ok {
		if err := statesession.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "StateSession.current_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *StateSessionUpdateOne) sqlSave(ctx context.Context) (_node *StateSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statesession.Table, statesession.Columns, sqlgraph.NewFieldSpec(statesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StateSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statesession.FieldID)
		for _, f := range fields {
			if !statesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statesession.FieldID {
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
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(statesession.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetectedRole(); ok {
		_spec.SetField(statesession.FieldDetectedRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(statesession.FieldCurrentPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(statesession.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(statesession.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReasoningEffectiveness(); ok {
		_spec.SetField(statesession.FieldReasoningEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReasoningEffectiveness(); ok {
		_spec.AddField(statesession.FieldReasoningEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(statesession.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(statesession.FieldRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastCompletionHash(); ok {
		_spec.SetField(statesession.FieldLastCompletionHash, field.TypeString, value)
	}
	if _u.mutation.LastCompletionHashCleared() {
		_spec.ClearField(statesession.FieldLastCompletionHash, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseTransitionCount(); ok {
		_spec.SetField(statesession.FieldPhaseTransitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseTransitionCount(); ok {
		_spec.AddField(statesession.FieldPhaseTransitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(statesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(statesession.FieldLastActivityAt, field.TypeTime, value)
	}
	_node = &StateSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
