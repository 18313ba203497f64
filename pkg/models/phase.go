// Package models contains the shared domain types for the stagehand
// control plane: phases, roles, todos, session payloads, and the
// ProcessState boundary messages.
package models

import "fmt"

// Phase is a stage of the eight-phase workflow. INIT is the unique start
// state and DONE is terminal.
type Phase string

const (
	PhaseInit      Phase = "INIT"
	PhaseQuery     Phase = "QUERY"
	PhaseEnhance   Phase = "ENHANCE"
	PhaseKnowledge Phase = "KNOWLEDGE"
	PhasePlan      Phase = "PLAN"
	PhaseExecute   Phase = "EXECUTE"
	PhaseVerify    Phase = "VERIFY"
	PhaseDone      Phase = "DONE"
)

// AllPhases lists every phase in workflow order.
var AllPhases = []Phase{
	PhaseInit, PhaseQuery, PhaseEnhance, PhaseKnowledge,
	PhasePlan, PhaseExecute, PhaseVerify, PhaseDone,
}

// IsValid checks whether the phase token is a member of the enum.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseInit, PhaseQuery, PhaseEnhance, PhaseKnowledge,
		PhasePlan, PhaseExecute, PhaseVerify, PhaseDone:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the phase is DONE.
func (p Phase) IsTerminal() bool {
	return p == PhaseDone
}

// ParsePhase converts a wire token into a Phase or returns a schema error.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid phase token %q", s)
	}
	return p, nil
}

// CompletablePhases are the phases a worker may report as completed in a
// ProcessState message. INIT and DONE are never reported by the worker.
var CompletablePhases = []Phase{
	PhaseQuery, PhaseEnhance, PhaseKnowledge, PhasePlan, PhaseExecute, PhaseVerify,
}

// IsCompletable reports whether a worker may declare this phase completed.
func (p Phase) IsCompletable() bool {
	switch p {
	case PhaseQuery, PhaseEnhance, PhaseKnowledge, PhasePlan, PhaseExecute, PhaseVerify:
		return true
	default:
		return false
	}
}
