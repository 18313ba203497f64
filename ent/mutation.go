// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stagehand-project/stagehand/ent/archivedsession"
	"github.com/stagehand-project/stagehand/ent/predicate"
	"github.com/stagehand-project/stagehand/ent/statesession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArchivedSession = "ArchivedSession"
	TypeStateSession    = "StateSession"
)

// ArchivedSessionMutation represents an operation that mutates the ArchivedSession nodes in the graph.
type ArchivedSessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	objective                  *string
	detected_role              *string
	final_phase                *string
	payload                    *map[string]interface{}
	reasoning_effectiveness    *float64
	addreasoning_effectiveness *float64
	revision                   *int64
	addrevision                *int64
	phase_transition_count     *int
	addphase_transition_count  *int
	created_at                 *time.Time
	archived_at                *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*ArchivedSession, error)
	predicates                 []predicate.ArchivedSession
}

var _ ent.Mutation = (*ArchivedSessionMutation)(nil)

// archivedsessionOption allows management of the mutation configuration using functional options.
type archivedsessionOption func(*ArchivedSessionMutation)

// newArchivedSessionMutation creates new mutation for the ArchivedSession entity.
func newArchivedSessionMutation(c config, op Op, opts ...archivedsessionOption) *ArchivedSessionMutation {
	m := &ArchivedSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeArchivedSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArchivedSessionID sets the ID field of the mutation.
func withArchivedSessionID(id string) archivedsessionOption {
	return func(m *ArchivedSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ArchivedSession
		)
		m.oldValue = func(ctx context.Context) (*ArchivedSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArchivedSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArchivedSession sets the old ArchivedSession of the mutation.
func withArchivedSession(node *ArchivedSession) archivedsessionOption {
	return func(m *ArchivedSessionMutation) {
		m.oldValue = func(context.Context) (*ArchivedSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArchivedSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArchivedSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ArchivedSession entities.
func (m *ArchivedSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArchivedSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArchivedSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArchivedSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObjective sets the "objective" field.
func (m *ArchivedSessionMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *ArchivedSessionMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ResetObjective resets all changes to the "objective" field.
func (m *ArchivedSessionMutation) ResetObjective() {
	m.objective = nil
}

// SetDetectedRole sets the "detected_role" field.
func (m *ArchivedSessionMutation) SetDetectedRole(s string) {
	m.detected_role = &s
}

// DetectedRole returns the value of the "detected_role" field in the mutation.
func (m *ArchivedSessionMutation) DetectedRole() (r string, exists bool) {
	v := m.detected_role
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedRole returns the old "detected_role" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldDetectedRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedRole: %w", err)
	}
	return oldValue.DetectedRole, nil
}

// ResetDetectedRole resets all changes to the "detected_role" field.
func (m *ArchivedSessionMutation) ResetDetectedRole() {
	m.detected_role = nil
}

// SetFinalPhase sets the "final_phase" field.
func (m *ArchivedSessionMutation) SetFinalPhase(s string) {
	m.final_phase = &s
}

// FinalPhase returns the value of the "final_phase" field in the mutation.
func (m *ArchivedSessionMutation) FinalPhase() (r string, exists bool) {
	v := m.final_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalPhase returns the old "final_phase" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldFinalPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalPhase: %w", err)
	}
	return oldValue.FinalPhase, nil
}

// ResetFinalPhase resets all changes to the "final_phase" field.
func (m *ArchivedSessionMutation) ResetFinalPhase() {
	m.final_phase = nil
}

// SetPayload sets the "payload" field.
func (m *ArchivedSessionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ArchivedSessionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *ArchivedSessionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[archivedsession.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ArchivedSessionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[archivedsession.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ArchivedSessionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, archivedsession.FieldPayload)
}

// SetReasoningEffectiveness sets the "reasoning_effectiveness" field.
func (m *ArchivedSessionMutation) SetReasoningEffectiveness(f float64) {
	m.reasoning_effectiveness = &f
	m.addreasoning_effectiveness = nil
}

// ReasoningEffectiveness returns the value of the "reasoning_effectiveness" field in the mutation.
func (m *ArchivedSessionMutation) ReasoningEffectiveness() (r float64, exists bool) {
	v := m.reasoning_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningEffectiveness returns the old "reasoning_effectiveness" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldReasoningEffectiveness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningEffectiveness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningEffectiveness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningEffectiveness: %w", err)
	}
	return oldValue.ReasoningEffectiveness, nil
}

// AddReasoningEffectiveness adds f to the "reasoning_effectiveness" field.
func (m *ArchivedSessionMutation) AddReasoningEffectiveness(f float64) {
	if m.addreasoning_effectiveness != nil {
		*m.addreasoning_effectiveness += f
	} else {
		m.addreasoning_effectiveness = &f
	}
}

// AddedReasoningEffectiveness returns the value that was added to the "reasoning_effectiveness" field in this mutation.
func (m *ArchivedSessionMutation) AddedReasoningEffectiveness() (r float64, exists bool) {
	v := m.addreasoning_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// ResetReasoningEffectiveness resets all changes to the "reasoning_effectiveness" field.
func (m *ArchivedSessionMutation) ResetReasoningEffectiveness() {
	m.reasoning_effectiveness = nil
	m.addreasoning_effectiveness = nil
}

// SetRevision sets the "revision" field.
func (m *ArchivedSessionMutation) SetRevision(i int64) {
	m.revision = &i
	m.addrevision = nil
}

// Revision returns the value of the "revision" field in the mutation.
func (m *ArchivedSessionMutation) Revision() (r int64, exists bool) {
	v := m.revision
	if v == nil {
		return
	}
	return *v, true
}

// OldRevision returns the old "revision" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldRevision(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevision: %w", err)
	}
	return oldValue.Revision, nil
}

// AddRevision adds i to the "revision" field.
func (m *ArchivedSessionMutation) AddRevision(i int64) {
	if m.addrevision != nil {
		*m.addrevision += i
	} else {
		m.addrevision = &i
	}
}

// AddedRevision returns the value that was added to the "revision" field in this mutation.
func (m *ArchivedSessionMutation) AddedRevision() (r int64, exists bool) {
	v := m.addrevision
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevision resets all changes to the "revision" field.
func (m *ArchivedSessionMutation) ResetRevision() {
	m.revision = nil
	m.addrevision = nil
}

// SetPhaseTransitionCount sets the "phase_transition_count" field.
func (m *ArchivedSessionMutation) SetPhaseTransitionCount(i int) {
	m.phase_transition_count = &i
	m.addphase_transition_count = nil
}

// PhaseTransitionCount returns the value of the "phase_transition_count" field in the mutation.
func (m *ArchivedSessionMutation) PhaseTransitionCount() (r int, exists bool) {
	v := m.phase_transition_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseTransitionCount returns the old "phase_transition_count" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldPhaseTransitionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseTransitionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseTransitionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseTransitionCount: %w", err)
	}
	return oldValue.PhaseTransitionCount, nil
}

// AddPhaseTransitionCount adds i to the "phase_transition_count" field.
func (m *ArchivedSessionMutation) AddPhaseTransitionCount(i int) {
	if m.addphase_transition_count != nil {
		*m.addphase_transition_count += i
	} else {
		m.addphase_transition_count = &i
	}
}

// AddedPhaseTransitionCount returns the value that was added to the "phase_transition_count" field in this mutation.
func (m *ArchivedSessionMutation) AddedPhaseTransitionCount() (r int, exists bool) {
	v := m.addphase_transition_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseTransitionCount resets all changes to the "phase_transition_count" field.
func (m *ArchivedSessionMutation) ResetPhaseTransitionCount() {
	m.phase_transition_count = nil
	m.addphase_transition_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArchivedSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArchivedSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArchivedSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *ArchivedSessionMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *ArchivedSessionMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the ArchivedSession entity.
// If the ArchivedSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedSessionMutation) OldArchivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *ArchivedSessionMutation) ResetArchivedAt() {
	m.archived_at = nil
}

// Where appends a list predicates to the ArchivedSessionMutation builder.
func (m *ArchivedSessionMutation) Where(ps ...predicate.ArchivedSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArchivedSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArchivedSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArchivedSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArchivedSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArchivedSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArchivedSession).
func (m *ArchivedSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArchivedSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.objective != nil {
		fields = append(fields, archivedsession.FieldObjective)
	}
	if m.detected_role != nil {
		fields = append(fields, archivedsession.FieldDetectedRole)
	}
	if m.final_phase != nil {
		fields = append(fields, archivedsession.FieldFinalPhase)
	}
	if m.payload != nil {
		fields = append(fields, archivedsession.FieldPayload)
	}
	if m.reasoning_effectiveness != nil {
		fields = append(fields, archivedsession.FieldReasoningEffectiveness)
	}
	if m.revision != nil {
		fields = append(fields, archivedsession.FieldRevision)
	}
	if m.phase_transition_count != nil {
		fields = append(fields, archivedsession.FieldPhaseTransitionCount)
	}
	if m.created_at != nil {
		fields = append(fields, archivedsession.FieldCreatedAt)
	}
	if m.archived_at != nil {
		fields = append(fields, archivedsession.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArchivedSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case archivedsession.FieldObjective:
		return m.Objective()
	case archivedsession.FieldDetectedRole:
		return m.DetectedRole()
	case archivedsession.FieldFinalPhase:
		return m.FinalPhase()
	case archivedsession.FieldPayload:
		return m.Payload()
	case archivedsession.FieldReasoningEffectiveness:
		return m.ReasoningEffectiveness()
	case archivedsession.FieldRevision:
		return m.Revision()
	case archivedsession.FieldPhaseTransitionCount:
		return m.PhaseTransitionCount()
	case archivedsession.FieldCreatedAt:
		return m.CreatedAt()
	case archivedsession.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArchivedSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case archivedsession.FieldObjective:
		return m.OldObjective(ctx)
	case archivedsession.FieldDetectedRole:
		return m.OldDetectedRole(ctx)
	case archivedsession.FieldFinalPhase:
		return m.OldFinalPhase(ctx)
	case archivedsession.FieldPayload:
		return m.OldPayload(ctx)
	case archivedsession.FieldReasoningEffectiveness:
		return m.OldReasoningEffectiveness(ctx)
	case archivedsession.FieldRevision:
		return m.OldRevision(ctx)
	case archivedsession.FieldPhaseTransitionCount:
		return m.OldPhaseTransitionCount(ctx)
	case archivedsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case archivedsession.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArchivedSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivedSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case archivedsession.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case archivedsession.FieldDetectedRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedRole(v)
		return nil
	case archivedsession.FieldFinalPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalPhase(v)
		return nil
	case archivedsession.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case archivedsession.FieldReasoningEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningEffectiveness(v)
		return nil
	case archivedsession.FieldRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevision(v)
		return nil
	case archivedsession.FieldPhaseTransitionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseTransitionCount(v)
		return nil
	case archivedsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case archivedsession.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivedSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArchivedSessionMutation) AddedFields() []string {
	var fields []string
	if m.addreasoning_effectiveness != nil {
		fields = append(fields, archivedsession.FieldReasoningEffectiveness)
	}
	if m.addrevision != nil {
		fields = append(fields, archivedsession.FieldRevision)
	}
	if m.addphase_transition_count != nil {
		fields = append(fields, archivedsession.FieldPhaseTransitionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArchivedSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case archivedsession.FieldReasoningEffectiveness:
		return m.AddedReasoningEffectiveness()
	case archivedsession.FieldRevision:
		return m.AddedRevision()
	case archivedsession.FieldPhaseTransitionCount:
		return m.AddedPhaseTransitionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivedSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case archivedsession.FieldReasoningEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReasoningEffectiveness(v)
		return nil
	case archivedsession.FieldRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevision(v)
		return nil
	case archivedsession.FieldPhaseTransitionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseTransitionCount(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivedSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArchivedSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(archivedsession.FieldPayload) {
		fields = append(fields, archivedsession.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArchivedSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArchivedSessionMutation) ClearField(name string) error {
	switch name {
	case archivedsession.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown ArchivedSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArchivedSessionMutation) ResetField(name string) error {
	switch name {
	case archivedsession.FieldObjective:
		m.ResetObjective()
		return nil
	case archivedsession.FieldDetectedRole:
		m.ResetDetectedRole()
		return nil
	case archivedsession.FieldFinalPhase:
		m.ResetFinalPhase()
		return nil
	case archivedsession.FieldPayload:
		m.ResetPayload()
		return nil
	case archivedsession.FieldReasoningEffectiveness:
		m.ResetReasoningEffectiveness()
		return nil
	case archivedsession.FieldRevision:
		m.ResetRevision()
		return nil
	case archivedsession.FieldPhaseTransitionCount:
		m.ResetPhaseTransitionCount()
		return nil
	case archivedsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case archivedsession.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown ArchivedSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArchivedSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArchivedSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArchivedSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArchivedSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArchivedSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArchivedSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArchivedSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ArchivedSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArchivedSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ArchivedSession edge %s", name)
}

// StateSessionMutation represents an operation that mutates the StateSession nodes in the graph.
type StateSessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	objective                  *string
	detected_role              *string
	current_phase              *statesession.CurrentPhase
	payload                    *map[string]interface{}
	reasoning_effectiveness    *float64
	addreasoning_effectiveness *float64
	revision                   *int64
	addrevision                *int64
	last_completion_hash       *string
	phase_transition_count     *int
	addphase_transition_count  *int
	created_at                 *time.Time
	updated_at                 *time.Time
	last_activity_at           *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*StateSession, error)
	predicates                 []predicate.StateSession
}

var _ ent.Mutation = (*StateSessionMutation)(nil)

// statesessionOption allows management of the mutation configuration using functional options.
type statesessionOption func(*StateSessionMutation)

// newStateSessionMutation creates new mutation for the StateSession entity.
func newStateSessionMutation(c config, op Op, opts ...statesessionOption) *StateSessionMutation {
	m := &StateSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStateSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStateSessionID sets the ID field of the mutation.
func withStateSessionID(id string) statesessionOption {
	return func(m *StateSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StateSession
		)
		m.oldValue = func(ctx context.Context) (*StateSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StateSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStateSession sets the old StateSession of the mutation.
func withStateSession(node *StateSession) statesessionOption {
	return func(m *StateSessionMutation) {
		m.oldValue = func(context.Context) (*StateSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StateSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StateSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StateSession entities.
func (m *StateSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StateSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StateSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StateSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObjective sets the "objective" field.
func (m *StateSessionMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *StateSessionMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ResetObjective resets all changes to the "objective" field.
func (m *StateSessionMutation) ResetObjective() {
	m.objective = nil
}

// SetDetectedRole sets the "detected_role" field.
func (m *StateSessionMutation) SetDetectedRole(s string) {
	m.detected_role = &s
}

// DetectedRole returns the value of the "detected_role" field in the mutation.
func (m *StateSessionMutation) DetectedRole() (r string, exists bool) {
	v := m.detected_role
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedRole returns the old "detected_role" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldDetectedRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedRole: %w", err)
	}
	return oldValue.DetectedRole, nil
}

// ResetDetectedRole resets all changes to the "detected_role" field.
func (m *StateSessionMutation) ResetDetectedRole() {
	m.detected_role = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *StateSessionMutation) SetCurrentPhase(sp statesession.CurrentPhase) {
	m.current_phase = &sp
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *StateSessionMutation) CurrentPhase() (r statesession.CurrentPhase, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldCurrentPhase(ctx context.Context) (v statesession.CurrentPhase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *StateSessionMutation) ResetCurrentPhase() {
	m.current_phase = nil
}

// SetPayload sets the "payload" field.
func (m *StateSessionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StateSessionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *StateSessionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[statesession.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *StateSessionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[statesession.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *StateSessionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, statesession.FieldPayload)
}

// SetReasoningEffectiveness sets the "reasoning_effectiveness" field.
func (m *StateSessionMutation) SetReasoningEffectiveness(f float64) {
	m.reasoning_effectiveness = &f
	m.addreasoning_effectiveness = nil
}

// ReasoningEffectiveness returns the value of the "reasoning_effectiveness" field in the mutation.
func (m *StateSessionMutation) ReasoningEffectiveness() (r float64, exists bool) {
	v := m.reasoning_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningEffectiveness returns the old "reasoning_effectiveness" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldReasoningEffectiveness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningEffectiveness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningEffectiveness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningEffectiveness: %w", err)
	}
	return oldValue.ReasoningEffectiveness, nil
}

// AddReasoningEffectiveness adds f to the "reasoning_effectiveness" field.
func (m *StateSessionMutation) AddReasoningEffectiveness(f float64) {
	if m.addreasoning_effectiveness != nil {
		*m.addreasoning_effectiveness += f
	} else {
		m.addreasoning_effectiveness = &f
	}
}

// AddedReasoningEffectiveness returns the value that was added to the "reasoning_effectiveness" field in this mutation.
func (m *StateSessionMutation) AddedReasoningEffectiveness() (r float64, exists bool) {
	v := m.addreasoning_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// ResetReasoningEffectiveness resets all changes to the "reasoning_effectiveness" field.
func (m *StateSessionMutation) ResetReasoningEffectiveness() {
	m.reasoning_effectiveness = nil
	m.addreasoning_effectiveness = nil
}

// SetRevision sets the "revision" field.
func (m *StateSessionMutation) SetRevision(i int64) {
	m.revision = &i
	m.addrevision = nil
}

// Revision returns the value of the "revision" field in the mutation.
func (m *StateSessionMutation) Revision() (r int64, exists bool) {
	v := m.revision
	if v == nil {
		return
	}
	return *v, true
}

// OldRevision returns the old "revision" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldRevision(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevision: %w", err)
	}
	return oldValue.Revision, nil
}

// AddRevision adds i to the "revision" field.
func (m *StateSessionMutation) AddRevision(i int64) {
	if m.addrevision != nil {
		*m.addrevision += i
	} else {
		m.addrevision = &i
	}
}

// AddedRevision returns the value that was added to the "revision" field in this mutation.
func (m *StateSessionMutation) AddedRevision() (r int64, exists bool) {
	v := m.addrevision
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevision resets all changes to the "revision" field.
func (m *StateSessionMutation) ResetRevision() {
	m.revision = nil
	m.addrevision = nil
}

// SetLastCompletionHash sets the "last_completion_hash" field.
func (m *StateSessionMutation) SetLastCompletionHash(s string) {
	m.last_completion_hash = &s
}

// LastCompletionHash returns the value of the "last_completion_hash" field in the mutation.
func (m *StateSessionMutation) LastCompletionHash() (r string, exists bool) {
	v := m.last_completion_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCompletionHash returns the old "last_completion_hash" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldLastCompletionHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCompletionHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCompletionHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCompletionHash: %w", err)
	}
	return oldValue.LastCompletionHash, nil
}

// ClearLastCompletionHash clears the value of the "last_completion_hash" field.
func (m *StateSessionMutation) ClearLastCompletionHash() {
	m.last_completion_hash = nil
	m.clearedFields[statesession.FieldLastCompletionHash] = struct{}{}
}

// LastCompletionHashCleared returns if the "last_completion_hash" field was cleared in this mutation.
func (m *StateSessionMutation) LastCompletionHashCleared() bool {
	_, ok := m.clearedFields[statesession.FieldLastCompletionHash]
	return ok
}

// ResetLastCompletionHash resets all changes to the "last_completion_hash" field.
func (m *StateSessionMutation) ResetLastCompletionHash() {
	m.last_completion_hash = nil
	delete(m.clearedFields, statesession.FieldLastCompletionHash)
}

// SetPhaseTransitionCount sets the "phase_transition_count" field.
func (m *StateSessionMutation) SetPhaseTransitionCount(i int) {
	m.phase_transition_count = &i
	m.addphase_transition_count = nil
}

// PhaseTransitionCount returns the value of the "phase_transition_count" field in the mutation.
func (m *StateSessionMutation) PhaseTransitionCount() (r int, exists bool) {
	v := m.phase_transition_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseTransitionCount returns the old "phase_transition_count" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldPhaseTransitionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseTransitionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseTransitionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseTransitionCount: %w", err)
	}
	return oldValue.PhaseTransitionCount, nil
}

// AddPhaseTransitionCount adds i to the "phase_transition_count" field.
func (m *StateSessionMutation) AddPhaseTransitionCount(i int) {
	if m.addphase_transition_count != nil {
		*m.addphase_transition_count += i
	} else {
		m.addphase_transition_count = &i
	}
}

// AddedPhaseTransitionCount returns the value that was added to the "phase_transition_count" field in this mutation.
func (m *StateSessionMutation) AddedPhaseTransitionCount() (r int, exists bool) {
	v := m.addphase_transition_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseTransitionCount resets all changes to the "phase_transition_count" field.
func (m *StateSessionMutation) ResetPhaseTransitionCount() {
	m.phase_transition_count = nil
	m.addphase_transition_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StateSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StateSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StateSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StateSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StateSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StateSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *StateSessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *StateSessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the StateSession entity.
// If the StateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateSessionMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *StateSessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// Where appends a list predicates to the StateSessionMutation builder.
func (m *StateSessionMutation) Where(ps ...predicate.StateSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StateSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StateSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StateSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StateSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StateSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StateSession).
func (m *StateSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StateSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.objective != nil {
		fields = append(fields, statesession.FieldObjective)
	}
	if m.detected_role != nil {
		fields = append(fields, statesession.FieldDetectedRole)
	}
	if m.current_phase != nil {
		fields = append(fields, statesession.FieldCurrentPhase)
	}
	if m.payload != nil {
		fields = append(fields, statesession.FieldPayload)
	}
	if m.reasoning_effectiveness != nil {
		fields = append(fields, statesession.FieldReasoningEffectiveness)
	}
	if m.revision != nil {
		fields = append(fields, statesession.FieldRevision)
	}
	if m.last_completion_hash != nil {
		fields = append(fields, statesession.FieldLastCompletionHash)
	}
	if m.phase_transition_count != nil {
		fields = append(fields, statesession.FieldPhaseTransitionCount)
	}
	if m.created_at != nil {
		fields = append(fields, statesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, statesession.FieldUpdatedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, statesession.FieldLastActivityAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StateSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statesession.FieldObjective:
		return m.Objective()
	case statesession.FieldDetectedRole:
		return m.DetectedRole()
	case statesession.FieldCurrentPhase:
		return m.CurrentPhase()
	case statesession.FieldPayload:
		return m.Payload()
	case statesession.FieldReasoningEffectiveness:
		return m.ReasoningEffectiveness()
	case statesession.FieldRevision:
		return m.Revision()
	case statesession.FieldLastCompletionHash:
		return m.LastCompletionHash()
	case statesession.FieldPhaseTransitionCount:
		return m.PhaseTransitionCount()
	case statesession.FieldCreatedAt:
		return m.CreatedAt()
	case statesession.FieldUpdatedAt:
		return m.UpdatedAt()
	case statesession.FieldLastActivityAt:
		return m.LastActivityAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StateSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statesession.FieldObjective:
		return m.OldObjective(ctx)
	case statesession.FieldDetectedRole:
		return m.OldDetectedRole(ctx)
	case statesession.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case statesession.FieldPayload:
		return m.OldPayload(ctx)
	case statesession.FieldReasoningEffectiveness:
		return m.OldReasoningEffectiveness(ctx)
	case statesession.FieldRevision:
		return m.OldRevision(ctx)
	case statesession.FieldLastCompletionHash:
		return m.OldLastCompletionHash(ctx)
	case statesession.FieldPhaseTransitionCount:
		return m.OldPhaseTransitionCount(ctx)
	case statesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case statesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case statesession.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	}
	return nil, fmt.Errorf("unknown StateSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statesession.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case statesession.FieldDetectedRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedRole(v)
		return nil
	case statesession.FieldCurrentPhase:
		v, ok := value.(statesession.CurrentPhase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case statesession.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case statesession.FieldReasoningEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningEffectiveness(v)
		return nil
	case statesession.FieldRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevision(v)
		return nil
	case statesession.FieldLastCompletionHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCompletionHash(v)
		return nil
	case statesession.FieldPhaseTransitionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseTransitionCount(v)
		return nil
	case statesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case statesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case statesession.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	}
	return fmt.Errorf("unknown StateSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StateSessionMutation) AddedFields() []string {
	var fields []string
	if m.addreasoning_effectiveness != nil {
		fields = append(fields, statesession.FieldReasoningEffectiveness)
	}
	if m.addrevision != nil {
		fields = append(fields, statesession.FieldRevision)
	}
	if m.addphase_transition_count != nil {
		fields = append(fields, statesession.FieldPhaseTransitionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StateSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statesession.FieldReasoningEffectiveness:
		return m.AddedReasoningEffectiveness()
	case statesession.FieldRevision:
		return m.AddedRevision()
	case statesession.FieldPhaseTransitionCount:
		return m.AddedPhaseTransitionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statesession.FieldReasoningEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReasoningEffectiveness(v)
		return nil
	case statesession.FieldRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevision(v)
		return nil
	case statesession.FieldPhaseTransitionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseTransitionCount(v)
		return nil
	}
	return fmt.Errorf("unknown StateSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StateSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(statesession.FieldPayload) {
		fields = append(fields, statesession.FieldPayload)
	}
	if m.FieldCleared(statesession.FieldLastCompletionHash) {
		fields = append(fields, statesession.FieldLastCompletionHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StateSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StateSessionMutation) ClearField(name string) error {
	switch name {
	case statesession.FieldPayload:
		m.ClearPayload()
		return nil
	case statesession.FieldLastCompletionHash:
		m.ClearLastCompletionHash()
		return nil
	}
	return fmt.Errorf("unknown StateSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StateSessionMutation) ResetField(name string) error {
	switch name {
	case statesession.FieldObjective:
		m.ResetObjective()
		return nil
	case statesession.FieldDetectedRole:
		m.ResetDetectedRole()
		return nil
	case statesession.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case statesession.FieldPayload:
		m.ResetPayload()
		return nil
	case statesession.FieldReasoningEffectiveness:
		m.ResetReasoningEffectiveness()
		return nil
	case statesession.FieldRevision:
		m.ResetRevision()
		return nil
	case statesession.FieldLastCompletionHash:
		m.ResetLastCompletionHash()
		return nil
	case statesession.FieldPhaseTransitionCount:
		m.ResetPhaseTransitionCount()
		return nil
	case statesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case statesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case statesession.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown StateSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StateSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StateSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StateSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StateSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StateSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StateSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StateSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StateSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StateSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StateSession edge %s", name)
}
