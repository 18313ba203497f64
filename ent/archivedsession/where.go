// Code generated by ent, DO NOT EDIT.

package archivedsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stagehand-project/stagehand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldContainsFold(FieldID, id))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldObjective, v))
}

// DetectedRole applies equality check predicate on the "detected_role" field. It's identical to DetectedRoleEQ.
func DetectedRole(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldDetectedRole, v))
}

// FinalPhase applies equality check predicate on the "final_phase" field. It's identical to FinalPhaseEQ.
func FinalPhase(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldFinalPhase, v))
}

// ReasoningEffectiveness applies equality check predicate on the "reasoning_effectiveness" field. It's identical to ReasoningEffectivenessEQ.
func ReasoningEffectiveness(v float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldReasoningEffectiveness, v))
}

// Revision applies equality check predicate on the "revision" field. It's identical to RevisionEQ.
func Revision(v int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldRevision, v))
}

// PhaseTransitionCount applies equality check predicate on the "phase_transition_count" field. It's identical to PhaseTransitionCountEQ.
func PhaseTransitionCount(v int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldPhaseTransitionCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldCreatedAt, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldArchivedAt, v))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldContainsFold(FieldObjective, v))
}

// DetectedRoleEQ applies the EQ predicate on the "detected_role" field.
func DetectedRoleEQ(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldDetectedRole, v))
}

// DetectedRoleNEQ applies the NEQ predicate on the "detected_role" field.
func DetectedRoleNEQ(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldDetectedRole, v))
}

// DetectedRoleIn applies the In predicate on the "detected_role" field.
func DetectedRoleIn(vs ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldDetectedRole, vs...))
}

// DetectedRoleNotIn applies the NotIn predicate on the "detected_role" field.
func DetectedRoleNotIn(vs ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldDetectedRole, vs...))
}

// DetectedRoleGT applies the GT predicate on the "detected_role" field.
func DetectedRoleGT(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldDetectedRole, v))
}

// DetectedRoleGTE applies the GTE predicate on the "detected_role" field.
func DetectedRoleGTE(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldDetectedRole, v))
}

// DetectedRoleLT applies the LT predicate on the "detected_role" field.
func DetectedRoleLT(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldDetectedRole, v))
}

// DetectedRoleLTE applies the LTE predicate on the "detected_role" field.
func DetectedRoleLTE(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldDetectedRole, v))
}

// DetectedRoleContains applies the Contains predicate on the "detected_role" field.
func DetectedRoleContains(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldContains(FieldDetectedRole, v))
}

// DetectedRoleHasPrefix applies the HasPrefix predicate on the "detected_role" field.
func DetectedRoleHasPrefix(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldHasPrefix(FieldDetectedRole, v))
}

// DetectedRoleHasSuffix applies the HasSuffix predicate on the "detected_role" field.
func DetectedRoleHasSuffix(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldHasSuffix(FieldDetectedRole, v))
}

// DetectedRoleEqualFold applies the EqualFold predicate on the "detected_role" field.
func DetectedRoleEqualFold(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEqualFold(FieldDetectedRole, v))
}

// DetectedRoleContainsFold applies the ContainsFold predicate on the "detected_role" field.
func DetectedRoleContainsFold(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldContainsFold(FieldDetectedRole, v))
}

// FinalPhaseEQ applies the EQ predicate on the "final_phase" field.
func FinalPhaseEQ(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldFinalPhase, v))
}

// FinalPhaseNEQ applies the NEQ predicate on the "final_phase" field.
func FinalPhaseNEQ(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldFinalPhase, v))
}

// FinalPhaseIn applies the In predicate on the "final_phase" field.
func FinalPhaseIn(vs ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldFinalPhase, vs...))
}

// FinalPhaseNotIn applies the NotIn predicate on the "final_phase" field.
func FinalPhaseNotIn(vs ...string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldFinalPhase, vs...))
}

// FinalPhaseGT applies the GT predicate on the "final_phase" field.
func FinalPhaseGT(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldFinalPhase, v))
}

// FinalPhaseGTE applies the GTE predicate on the "final_phase" field.
func FinalPhaseGTE(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldFinalPhase, v))
}

// FinalPhaseLT applies the LT predicate on the "final_phase" field.
func FinalPhaseLT(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldFinalPhase, v))
}

// FinalPhaseLTE applies the LTE predicate on the "final_phase" field.
func FinalPhaseLTE(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldFinalPhase, v))
}

// FinalPhaseContains applies the Contains predicate on the "final_phase" field.
func FinalPhaseContains(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldContains(FieldFinalPhase, v))
}

// FinalPhaseHasPrefix applies the HasPrefix predicate on the "final_phase" field.
func FinalPhaseHasPrefix(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldHasPrefix(FieldFinalPhase, v))
}

// FinalPhaseHasSuffix applies the HasSuffix predicate on the "final_phase" field.
func FinalPhaseHasSuffix(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldHasSuffix(FieldFinalPhase, v))
}

// FinalPhaseEqualFold applies the EqualFold predicate on the "final_phase" field.
func FinalPhaseEqualFold(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEqualFold(FieldFinalPhase, v))
}

// FinalPhaseContainsFold applies the ContainsFold predicate on the "final_phase" field.
func FinalPhaseContainsFold(v string) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldContainsFold(FieldFinalPhase, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotNull(FieldPayload))
}

// ReasoningEffectivenessEQ applies the EQ predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessEQ(v float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessNEQ applies the NEQ predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessNEQ(v float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessIn applies the In predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessIn(vs ...float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldReasoningEffectiveness, vs...))
}

// ReasoningEffectivenessNotIn applies the NotIn predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessNotIn(vs ...float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldReasoningEffectiveness, vs...))
}

// ReasoningEffectivenessGT applies the GT predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessGT(v float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessGTE applies the GTE predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessGTE(v float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessLT applies the LT predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessLT(v float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldReasoningEffectiveness, v))
}

// ReasoningEffectivenessLTE applies the LTE predicate on the "reasoning_effectiveness" field.
func ReasoningEffectivenessLTE(v float64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldReasoningEffectiveness, v))
}

// RevisionEQ applies the EQ predicate on the "revision" field.
func RevisionEQ(v int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldRevision, v))
}

// RevisionNEQ applies the NEQ predicate on the "revision" field.
func RevisionNEQ(v int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldRevision, v))
}

// RevisionIn applies the In predicate on the "revision" field.
func RevisionIn(vs ...int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldRevision, vs...))
}

// RevisionNotIn applies the NotIn predicate on the "revision" field.
func RevisionNotIn(vs ...int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldRevision, vs...))
}

// RevisionGT applies the GT predicate on the "revision" field.
func RevisionGT(v int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldRevision, v))
}

// RevisionGTE applies the GTE predicate on the "revision" field.
func RevisionGTE(v int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldRevision, v))
}

// RevisionLT applies the LT predicate on the "revision" field.
func RevisionLT(v int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldRevision, v))
}

// RevisionLTE applies the LTE predicate on the "revision" field.
func RevisionLTE(v int64) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldRevision, v))
}

// PhaseTransitionCountEQ applies the EQ predicate on the "phase_transition_count" field.
func PhaseTransitionCountEQ(v int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountNEQ applies the NEQ predicate on the "phase_transition_count" field.
func PhaseTransitionCountNEQ(v int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountIn applies the In predicate on the "phase_transition_count" field.
func PhaseTransitionCountIn(vs ...int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldPhaseTransitionCount, vs...))
}

// PhaseTransitionCountNotIn applies the NotIn predicate on the "phase_transition_count" field.
func PhaseTransitionCountNotIn(vs ...int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldPhaseTransitionCount, vs...))
}

// PhaseTransitionCountGT applies the GT predicate on the "phase_transition_count" field.
func PhaseTransitionCountGT(v int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountGTE applies the GTE predicate on the "phase_transition_count" field.
func PhaseTransitionCountGTE(v int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountLT applies the LT predicate on the "phase_transition_count" field.
func PhaseTransitionCountLT(v int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldPhaseTransitionCount, v))
}

// PhaseTransitionCountLTE applies the LTE predicate on the "phase_transition_count" field.
func PhaseTransitionCountLTE(v int) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldPhaseTransitionCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldCreatedAt, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.FieldLTE(FieldArchivedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArchivedSession) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArchivedSession) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArchivedSession) predicate.ArchivedSession {
	return predicate.ArchivedSession(sql.NotPredicates(p))
}
