package orchestrator

import (
	"fmt"

	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/pkg/prompt"
	"github.com/stagehand-project/stagehand/pkg/services"
	"github.com/stagehand-project/stagehand/pkg/verification"
)

// allowedTools is the fixed capability whitelist per phase. Names are
// opaque to the control plane; DONE grants nothing.
var allowedTools = map[models.Phase][]string{
	models.PhaseInit:      {},
	models.PhaseQuery:     {"jarvis"},
	models.PhaseEnhance:   {"jarvis", "web_search", "todo_read"},
	models.PhaseKnowledge: {"web_search", "web_fetch", "todo_read"},
	models.PhasePlan:      {"todo_write", "todo_read", "jarvis"},
	models.PhaseExecute:   {"task", "todo_write", "todo_read", "bash", "read", "write", "edit", "browser", "ide_exec"},
	models.PhaseVerify:    {"todo_read", "read", "bash"},
	models.PhaseDone:      {},
}

// AllowedTools returns the capability whitelist for a phase.
func AllowedTools(phase models.Phase) []string {
	tools := allowedTools[phase]
	out := make([]string, len(tools))
	copy(out, tools)
	return out
}

// AllowedTargets returns the set of phases a transition from the given
// phase may land on.
func AllowedTargets(phase models.Phase) []models.Phase {
	switch phase {
	case models.PhaseInit:
		return []models.Phase{models.PhaseQuery}
	case models.PhaseQuery:
		return []models.Phase{models.PhaseEnhance}
	case models.PhaseEnhance:
		return []models.Phase{models.PhaseKnowledge}
	case models.PhaseKnowledge:
		return []models.Phase{models.PhasePlan}
	case models.PhasePlan:
		return []models.Phase{models.PhaseExecute}
	case models.PhaseExecute:
		return []models.Phase{models.PhaseExecute, models.PhaseVerify}
	case models.PhaseVerify:
		return []models.Phase{models.PhaseDone, models.PhasePlan, models.PhaseExecute}
	case models.PhaseDone:
		return []models.Phase{models.PhaseDone}
	default:
		return nil
	}
}

// Machine computes phase transitions. It is pure state logic: no I/O, no
// clock, no store access.
type Machine struct {
	gate          *verification.Gate
	effectiveness *Tracker
}

// NewMachine creates a state machine over the given gate and tracker.
func NewMachine(gate *verification.Gate, tracker *Tracker) *Machine {
	return &Machine{gate: gate, effectiveness: tracker}
}

// StepInput is one completion message applied to the current state.
type StepInput struct {
	Current       models.Phase
	Completed     models.Phase
	Completion    models.Payload // worker's completion payload
	Payload       models.Payload // session's accumulated payload
	Effectiveness float64
}

// StepResult is the outcome of one transition.
type StepResult struct {
	Next          models.Phase
	Payload       models.Payload
	Effectiveness float64
	// Reissue is set when the (current, completed) pair does not advance
	// the machine; the current phase's prompt is issued again unchanged.
	Reissue bool
	// NeedsKnowledge asks the caller to run auto-connection before the
	// result is persisted (set on KNOWLEDGE completion with no prior
	// synthesis artifact).
	NeedsKnowledge bool
	// RoleOverride carries an explicit role supplied in a QUERY completion.
	RoleOverride models.Role
}

// Step applies one completion. A mismatched (current, completed) pair is a
// no-op re-issue. Matching pairs merge the completion payload and advance
// per the transition table.
func (m *Machine) Step(in StepInput) (StepResult, error) {
	if in.Current == models.PhaseDone {
		return StepResult{Next: models.PhaseDone, Payload: in.Payload, Effectiveness: in.Effectiveness, Reissue: true}, nil
	}
	if in.Completed != in.Current {
		return StepResult{Next: in.Current, Payload: in.Payload, Effectiveness: in.Effectiveness, Reissue: true}, nil
	}

	merged := in.Payload.Clone()
	merged.Merge(in.Completion)

	res := StepResult{Payload: merged, Effectiveness: in.Effectiveness}

	switch in.Current {
	case models.PhaseQuery:
		res.Next = models.PhaseEnhance
		if role, err := models.ParseRole(merged.GetString(models.KeyRole)); err == nil {
			res.RoleOverride = role
			merged[models.KeyDetectedRole] = string(role)
		}

	case models.PhaseEnhance:
		res.Next = models.PhaseKnowledge

	case models.PhaseKnowledge:
		res.Next = models.PhasePlan
		res.NeedsKnowledge = merged.GetString(models.KeySynthesizedKnowledge) == ""

	case models.PhasePlan:
		if !merged.GetBool(models.KeyPlanCreated) {
			// Plan not declared ready; hold the session at PLAN.
			return StepResult{Next: models.PhasePlan, Payload: in.Payload, Effectiveness: in.Effectiveness, Reissue: true}, nil
		}
		todos, err := merged.Todos()
		if err != nil {
			return StepResult{}, services.NewValidationError("current_todos", err.Error())
		}
		annotated := prompt.AnnotateTodos(todos)
		if err := models.ValidateTodos(annotated); err != nil {
			return StepResult{}, services.NewValidationError("current_todos", err.Error())
		}
		merged.SetTodos(annotated)
		merged[models.KeyCurrentTaskIndex] = 0
		res.Next = models.PhaseExecute

	case models.PhaseExecute:
		todos, err := validTodos(merged)
		if err != nil {
			return StepResult{}, err
		}
		res.Effectiveness = m.effectiveness.Update(
			in.Effectiveness,
			merged.GetBool(models.KeyExecutionSuccess),
			merged.GetString(models.KeyTaskComplexity),
		)
		idx, _ := merged.GetInt(models.KeyCurrentTaskIndex)
		if merged.GetBool(models.KeyMoreTasksPending) || idx < len(todos)-1 {
			merged[models.KeyCurrentTaskIndex] = idx + 1
			res.Next = models.PhaseExecute
		} else {
			res.Next = models.PhaseVerify
		}

	case models.PhaseVerify:
		todos, err := validTodos(merged)
		if err != nil {
			return StepResult{}, err
		}
		verdict := m.gate.Evaluate(todos, res.Effectiveness, merged.GetBool(models.KeyVerificationPassed))
		if verdict.Passed {
			delete(merged, models.KeyVerificationFailure)
			delete(merged, models.KeyLastCompletionPct)
			res.Next = models.PhaseDone
		} else {
			merged[models.KeyLastCompletionPct] = verdict.Metrics.CompletionPct
			merged[models.KeyVerificationFailure] = verdict.FailureReason
			res.Next = verdict.Rollback.NextPhase
			idx, _ := merged.GetInt(models.KeyCurrentTaskIndex)
			switch {
			case verdict.Rollback.ResetTaskIndex:
				merged[models.KeyCurrentTaskIndex] = 0
			case verdict.Rollback.StepBackTaskIndex && idx > 0:
				merged[models.KeyCurrentTaskIndex] = idx - 1
			}
		}

	default:
		return StepResult{}, fmt.Errorf("no transition defined from phase %s", in.Current)
	}

	if !contains(AllowedTargets(in.Current), res.Next) {
		return StepResult{}, fmt.Errorf("computed illegal transition %s -> %s", in.Current, res.Next)
	}
	res.Payload = merged
	return res, nil
}

// validTodos parses current_todos from the merged payload and re-checks
// the todo invariants. Worker-supplied updates must satisfy them on every
// merge, not only at PLAN exit; a malformed list is an error, never an
// empty list.
func validTodos(p models.Payload) ([]models.Todo, error) {
	todos, err := p.Todos()
	if err != nil {
		return nil, services.NewValidationError("current_todos", err.Error())
	}
	if err := models.ValidateTodos(todos); err != nil {
		return nil, services.NewValidationError("current_todos", err.Error())
	}
	return todos, nil
}

func contains(phases []models.Phase, p models.Phase) bool {
	for _, c := range phases {
		if c == p {
			return true
		}
	}
	return false
}
