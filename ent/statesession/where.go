// Code generated by ent, DO NOT EDIT.

package statesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stagehand-project/stagehand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StateSession {
	return predicate.StateSession(sql.FieldContainsFold(FieldID, id))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldObjective, v))
}

// DetectedRole applies equality check predicate on the "detected_role" field. It's identical to DetectedRoleEQ.
func DetectedRole(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldDetectedRole, v))
}

// ReasoningEffectiveness applies equality check predicate on the "reasoning_effectiveness" field. It's identical to ReasoningEffectivenessEQ.
func ReasoningEffectiveness(v float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldReasoningEffectiveness, v))
}

// Revision applies equality check predicate on the "revision" field. It's identical to RevisionEQ.
func Revision(v int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldRevision, v))
}

// LastCompletionHash applies equality check predicate on the "last_completion_hash" field. It's identical to LastCompletionHashEQ.
func LastCompletionHash(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldLastCompletionHash, v))
}

// PhaseTransitionCount applies equality check predicate on the "phase_transition_count" field. It's identical to PhaseTransitionCountEQ.
func PhaseTransitionCount(v int) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldPhaseTransitionCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldContainsFold(FieldObjective, v))
}

// DetectedRoleEQ applies the EQ predicate on the "detected_role" field.
func DetectedRoleEQ(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldDetectedRole, v))
}

// DetectedRoleNEQ applies the NEQ predicate on the "detected_role" field.
func DetectedRoleNEQ(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldDetectedRole, v))
}

// DetectedRoleIn applies the In predicate on the "detected_role" field.
func DetectedRoleIn(vs ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldDetectedRole, vs...))
}

// DetectedRoleNotIn applies the NotIn predicate on the "detected_role" field.
func DetectedRoleNotIn(vs ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldDetectedRole, vs...))
}

// DetectedRoleGT applies the GT predicate on the "detected_role" field.
func DetectedRoleGT(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldDetectedRole, v))
}

// DetectedRoleGTE applies the GTE predicate on the "detected_role" field.
func DetectedRoleGTE(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldDetectedRole, v))
}

// DetectedRoleLT applies the LT predicate on the "detected_role" field.
func DetectedRoleLT(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldDetectedRole, v))
}

// DetectedRoleLTE applies the LTE predicate on the "detected_role" field.
func DetectedRoleLTE(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldDetectedRole, v))
}

// DetectedRoleContains applies the Contains predicate on the "detected_role" field.
func DetectedRoleContains(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldContains(FieldDetectedRole, v))
}

// DetectedRoleHasPrefix applies the HasPrefix predicate on the "detected_role" field.
func DetectedRoleHasPrefix(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldHasPrefix(FieldDetectedRole, v))
}

// DetectedRoleHasSuffix applies the HasSuffix predicate on the "detected_role" field.
func DetectedRoleHasSuffix(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldHasSuffix(FieldDetectedRole, v))
}

// DetectedRoleEqualFold applies the EqualFold predicate on the "detected_role" field.
func DetectedRoleEqualFold(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEqualFold(FieldDetectedRole, v))
}

// DetectedRoleContainsFold applies the ContainsFold predicate on the "detected_role" field.
func DetectedRoleContainsFold(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldContainsFold(FieldDetectedRole, v))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v CurrentPhase) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v CurrentPhase) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...CurrentPhase) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...CurrentPhase) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.StateSession {
	return predicate.StateSession(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.StateSession {
	return predicate.StateSession(sql.FieldNotNull(FieldPayload))
}

// ReasoningEffectivenessEQ applies the EQ predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessEQ(v float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessNEQ applies the NEQ predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessNEQ(v float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessIn applies the In predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessIn(vs ...float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldReasoningEffectiveness, vs...))
}

// ReasoningEffectivenessNotIn applies the NotIn predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessNotIn(vs ...float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldReasoningEffectiveness, vs...))
}

// ReasoningEffectivenessGT applies the GT predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessGT(v float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessGTE applies the GTE predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessGTE(v float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessLT applies the LT predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessLT(v float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessLTE applies the LTE predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessLTE(v float64) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldReasoningEffectiveness, v))
}

// RevisionEQ applies the EQ predicate on the "revision" field.
func RevisionEQ(v int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldRevision, v))
}

// RevisionNEQ applies the NEQ predicate on the "revision" field.
func RevisionNEQ(v int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldRevision, v))
}

// RevisionIn applies the In predicate on the "revision" field.
func RevisionIn(vs ...int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldRevision, vs...))
}

// RevisionNotIn applies the NotIn predicate on the "revision" field.
func RevisionNotIn(vs ...int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldRevision, vs...))
}

// RevisionGT applies the GT predicate on the "revision" field.
func RevisionGT(v int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldRevision, v))
}

// RevisionGTE applies the GTE predicate on the "revision" field.
func RevisionGTE(v int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldRevision, v))
}

// RevisionLT applies the LT predicate on the "revision" field.
func RevisionLT(v int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldRevision, v))
}

// RevisionLTE applies the LTE predicate on the "revision" field.
func RevisionLTE(v int64) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldRevision, v))
}

// LastCompletionHashEQ applies the EQ predicate on the "last_completion_hash" field.
func LastCompletionHashEQ(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldLastCompletionHash, v))
}

// LastCompletionHashNEQ applies the NEQ predicate on the "last_completion_hash" field.
func LastCompletionHashNEQ(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldLastCompletionHash, v))
}

// LastCompletionHashIn applies the In predicate on the "last_completion_hash" field.
func LastCompletionHashIn(vs ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldLastCompletionHash, vs...))
}

// LastCompletionHashNotIn applies the NotIn predicate on the "last_completion_hash" field.
func LastCompletionHashNotIn(vs ...string) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldLastCompletionHash, vs...))
}

// LastCompletionHashGT applies the GT predicate on the "last_completion_hash" field.
func LastCompletionHashGT(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldLastCompletionHash, v))
}

// LastCompletionHashGTE applies the GTE predicate on the "last_completion_hash" field.
func LastCompletionHashGTE(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldLastCompletionHash, v))
}

// LastCompletionHashLT applies the LT predicate on the "last_completion_hash" field.
func LastCompletionHashLT(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldLastCompletionHash, v))
}

// LastCompletionHashLTE applies the LTE predicate on the "last_completion_hash" field.
func LastCompletionHashLTE(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldLastCompletionHash, v))
}

// LastCompletionHashContains applies the Contains predicate on the "last_completion_hash" field.
func LastCompletionHashContains(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldContains(FieldLastCompletionHash, v))
}

// LastCompletionHashHasPrefix applies the HasPrefix predicate on the "last_completion_hash" field.
func LastCompletionHashHasPrefix(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldHasPrefix(FieldLastCompletionHash, v))
}

// LastCompletionHashHasSuffix applies the HasSuffix predicate on the "last_completion_hash" field.
func LastCompletionHashHasSuffix(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldHasSuffix(FieldLastCompletionHash, v))
}

// LastCompletionHashIsNil applies the IsNil predicate on the "last_completion_hash" field.
func LastCompletionHashIsNil() predicate.StateSession {
	return predicate.StateSession(sql.FieldIsNull(FieldLastCompletionHash))
}

// LastCompletionHashNotNil applies the NotNil predicate on the "last_completion_hash" field.
func LastCompletionHashNotNil() predicate.StateSession {
	return predicate.StateSession(sql.FieldNotNull(FieldLastCompletionHash))
}

// LastCompletionHashEqualFold applies the EqualFold predicate on the "last_completion_hash" field.
func LastCompletionHashEqualFold(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldEqualFold(FieldLastCompletionHash, v))
}

// LastCompletionHashContainsFold applies the ContainsFold predicate on the "last_completion_hash" field.
func LastCompletionHashContainsFold(v string) predicate.StateSession {
	return predicate.StateSession(sql.FieldContainsFold(FieldLastCompletionHash, v))
}

// PhaseTransitionCountEQ applies the EQ predicate on the "phase_transition_count" field.
func PhaseTransitionCountEQ(v int) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountNEQ applies the NEQ predicate on the "phase_transition_count" field.
func PhaseTransitionCountNEQ(v int) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountIn applies the In predicate on the "phase_transition_count" field.
func PhaseTransitionCountIn(vs ...int) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldPhaseTransitionCount, vs...))
}

// PhaseTransitionCountNotIn applies the NotIn predicate on the "phase_transition_count" field.
func PhaseTransitionCountNotIn(vs ...int) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldPhaseTransitionCount, vs...))
}

// PhaseTransitionCountGT applies the GT predicate on the "phase_transition_count" field.
func PhaseTransitionCountGT(v int) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountGTE applies the GTE predicate on the "phase_transition_count" field.
func PhaseTransitionCountGTE(v int) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountLT applies the LT predicate on the "phase_transition_count" field.
func PhaseTransitionCountLT(v int) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountLTE applies the LTE predicate on the "phase_transition_count" field.
func PhaseTransitionCountLTE(v int) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldPhaseTransitionCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.StateSession {
	return predicate.StateSession(sql.FieldLTE(FieldLastActivityAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StateSession) predicate.StateSession {
	return predicate.StateSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StateSession) predicate.StateSession {
	return predicate.StateSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StateSession) predicate.StateSession {
	return predicate.StateSession(sql.NotPredicates(p))
}
