// Code generated by ent, DO NOT EDIT.

package archivedsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the archivedsession type in the database.
	Label = "archived_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldDetectedRole holds the string denoting the detected_role field in the database.
	FieldDetectedRole = "detected_role"
	// FieldFinalPhase holds the string denoting the final_phase field in the database.
	FieldFinalPhase = "final_phase"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldReasoningEffectiveness holds the string denoting the reasoning_effectiveness field in the database.
	FieldReasoningEffectiveness = "reasoning_effectiveness"
	// FieldRevision holds the string denoting the revision field in the database.
	FieldRevision = "revision"
	// FieldPhaseTransitionCount holds the string denoting the phase_transition_count field in the database.
	FieldPhaseTransitionCount = "phase_transition_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// Table holds the table name of the archivedsession in the database.
	Table = "archived_sessions"
)

// Columns holds all SQL columns for archivedsession fields.
var Columns = []string{
	FieldID,
	FieldObjective,
	FieldDetectedRole,
	FieldFinalPhase,
	FieldPayload,
	FieldReasoningEffectiveness,
	FieldRevision,
	FieldPhaseTransitionCount,
	FieldCreatedAt,
	FieldArchivedAt,
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
	// DefaultArchivedAt holds the default value on creation for the "archived_at" field.
	DefaultArchivedAt func() time.Time
)

// OrderOption defines the ordering options for the ArchivedSession queries.
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

// ByFinalPhase orders the results by the final_phase field.
func ByFinalPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalPhase, opts...).ToFunc()
}

// ByReasoningEffectiveness orders the results by the reasoning_effectiveness field.
func ByReasoningEffectiveness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningEffectiveness, opts...).ToFunc()
}

// ByRevision orders the results by the revision field.
func ByRevision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevision, opts...).ToFunc()
}

// ByPhaseTransitionCount orders the results by the phase_transition_count field.
func ByPhaseTransitionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseTransitionCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}
