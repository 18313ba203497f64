// Code generated by ent, DO NOT EDIT.

package statesession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the statesession type in the database.
	Label = "state_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldDetectedRole holds the string denoting the detected_role field in the database.
	FieldDetectedRole = "detected_role"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldReasoningEffectiveness holds the string denoting the reasoning_effectiveness field in the database.
	FieldReasoningEffectiveness = "reasoning_effectiveness"
	// FieldRevision holds the string denoting the revision field in the database.
	FieldRevision = "revision"
	// FieldLastCompletionHash holds the string denoting the last_completion_hash field in the database.
	FieldLastCompletionHash = "last_completion_hash"
	// FieldPhaseTransitionCount holds the string denoting the phase_transition_count field in the database.
	FieldPhaseTransitionCount = "phase_transition_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// Table holds the table name of the statesession in the database.
	Table = "state_sessions"
)

// Columns holds all SQL columns for statesession fields.
var Columns = []string{
	FieldID,
	FieldObjective,
	FieldDetectedRole,
	FieldCurrentPhase,
	FieldPayload,
	FieldReasoningEffectiveness,
	FieldRevision,
	FieldLastCompletionHash,
	FieldPhaseTransitionCount,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLastActivityAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRevision holds the default value on creation for the "revision" field.
	DefaultRevision int64
	// DefaultPhaseTransitionCount holds the default value on creation for the "phase_transition_count" field.
	DefaultPhaseTransitionCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
)

// CurrentPhase defines the type for the "current_phase" enum field.
type CurrentPhase string

// CurrentPhaseINIT is the default value of the CurrentPhase enum.
const DefaultCurrentPhase = CurrentPhaseINIT

// CurrentPhase values.
const (
	CurrentPhaseINIT      CurrentPhase = "INIT"
	CurrentPhaseQUERY     CurrentPhase = "QUERY"
	CurrentPhaseENHANCE   CurrentPhase = "ENHANCE"
	CurrentPhaseKNOWLEDGE CurrentPhase = "KNOWLEDGE"
	CurrentPhasePLAN      CurrentPhase = "PLAN"
	CurrentPhaseEXECUTE   CurrentPhase = "EXECUTE"
	CurrentPhaseVERIFY    CurrentPhase = "VERIFY"
	CurrentPhaseDONE      CurrentPhase = "DONE"
)

func (cp CurrentPhase) String() string {
	return string(cp)
}

// CurrentPhaseValidator is a validator for the "current_phase" field enum values. It is called by the builders before save.
func CurrentPhaseValidator(cp CurrentPhase) error {
	switch cp {
	case CurrentPhaseINIT, CurrentPhaseQUERY, CurrentPhaseENHANCE, CurrentPhaseKNOWLEDGE, CurrentPhasePLAN, CurrentPhaseEXECUTE, CurrentPhaseVERIFY, CurrentPhaseDONE:
		return nil
	default:
		return fmt.Errorf("statesession: invalid enum value for current_phase field: %q", cp)
	}
}

// OrderOption defines the ordering options for the StateSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// ByDetectedRole orders the results by the detected_role field.
func ByDetectedRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedRole, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByReasoningEffectiveness orders the results by the reasoning_effectiveness field.
func ByReasoningEffectiveness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningEffectiveness, opts...).ToFunc()
}

// ByRevision orders the results by the revision field.
func ByRevision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevision, opts...).ToFunc()
}

// ByLastCompletionHash orders the results by the last_completion_hash field.
func ByLastCompletionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCompletionHash, opts...).ToFunc()
}

// ByPhaseTransitionCount orders the results by the phase_transition_count field.
func ByPhaseTransitionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseTransitionCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}
