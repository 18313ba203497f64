// Package verification implements the completion gate that decides DONE
// versus rollback at the end of a workflow: strict completion arithmetic
// over the session's todo list plus a pass/fail ruleset.
package verification

import (
	"fmt"
	"math"

	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/models"
)

// Metrics is the completion arithmetic computed over the todo list.
type Metrics struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	InProgress          int `json:"in_progress"`
	Pending             int `json:"pending"`
	CompletionPct       int `json:"completion_pct"`
	CriticalTotal       int `json:"critical_total"`
	CriticalDone        int `json:"critical_done"`
	HighPriorityPending int `json:"high_priority_pending"`
}

// Rollback describes where a failed verification sends the session.
type Rollback struct {
	NextPhase models.Phase
	// ResetTaskIndex forces current_task_index back to zero (severe
	// failures that replan from scratch).
	ResetTaskIndex bool
	// StepBackTaskIndex decrements current_task_index by one, floored at
	// zero (near-complete failures that redo the last task).
	StepBackTaskIndex bool
}

// Result is the gate's decision.
type Result struct {
	Passed        bool
	Metrics       Metrics
	FailureReason string
	Rollback      *Rollback // nil when Passed
}

// Gate evaluates verification decisions against configured thresholds.
type Gate struct {
	completionThreshold  int
	effectivenessMinimum float64
}

// NewGate creates a verification gate from config.
func NewGate(cfg config.VerificationConfig) *Gate {
	return &Gate{
		completionThreshold:  cfg.CompletionThreshold,
		effectivenessMinimum: cfg.EffectivenessMinimum,
	}
}

// Compute derives the completion metrics from a todo list. An empty list
// counts as 100% complete.
func Compute(todos []models.Todo) Metrics {
	m := Metrics{Total: len(todos)}
	for _, t := range todos {
		switch t.Status {
		case models.TodoCompleted:
			m.Completed++
		case models.TodoInProgress:
			m.InProgress++
		default:
			m.Pending++
			if t.Priority == models.PriorityHigh {
				m.HighPriorityPending++
			}
		}
		if t.IsCritical() {
			m.CriticalTotal++
			if t.Status == models.TodoCompleted {
				m.CriticalDone++
			}
		}
	}
	if m.Total == 0 {
		m.CompletionPct = 100
	} else {
		m.CompletionPct = int(math.Round(100 * float64(m.Completed) / float64(m.Total)))
	}
	return m
}

// Evaluate runs the full ruleset. All rules must hold for PASS:
//
//  1. every critical task completed
//  2. completion percentage meets the threshold
//  3. no high-priority task pending
//  4. nothing in_progress
//  5. reasoning effectiveness meets the minimum
//  6. a worker assertion of success never relaxes rules 1-5, and a true
//     assertion with incomplete critical work is itself inconsistent
//
// workerAsserted is the worker's own verification_passed claim.
func (g *Gate) Evaluate(todos []models.Todo, effectiveness float64, workerAsserted bool) Result {
	m := Compute(todos)

	fail := func(reason string) Result {
		return Result{
			Passed:        false,
			Metrics:       m,
			FailureReason: reason,
			Rollback:      rollbackFor(m.CompletionPct),
		}
	}

	if m.CriticalDone != m.CriticalTotal {
		return fail(fmt.Sprintf("critical tasks incomplete: %d of %d done", m.CriticalDone, m.CriticalTotal))
	}
	if m.CompletionPct < g.completionThreshold {
		return fail(fmt.Sprintf("completion %d%% below threshold %d%%", m.CompletionPct, g.completionThreshold))
	}
	if m.HighPriorityPending > 0 {
		return fail(fmt.Sprintf("%d high-priority tasks still pending", m.HighPriorityPending))
	}
	if m.InProgress > 0 {
		return fail(fmt.Sprintf("%d tasks still in_progress", m.InProgress))
	}
	if effectiveness < g.effectivenessMinimum {
		return fail(fmt.Sprintf("reasoning effectiveness %.2f below minimum %.2f", effectiveness, g.effectivenessMinimum))
	}
	if workerAsserted && m.CompletionPct < 100 && m.CriticalTotal > 0 {
		return fail(fmt.Sprintf("worker asserted success at %d%% completion with %d critical tasks — inconsistent", m.CompletionPct, m.CriticalTotal))
	}

	return Result{Passed: true, Metrics: m}
}

// rollbackFor maps the recomputed completion percentage to a rollback
// severity:
//
//	< 50    replan from scratch (PLAN, task index reset)
//	50-79   resume execution where it stopped (EXECUTE)
//	>= 80   redo the most recent task (EXECUTE, task index stepped back)
func rollbackFor(completionPct int) *Rollback {
	switch {
	case completionPct < 50:
		return &Rollback{NextPhase: models.PhasePlan, ResetTaskIndex: true}
	case completionPct < 80:
		return &Rollback{NextPhase: models.PhaseExecute}
	default:
		return &Rollback{NextPhase: models.PhaseExecute, StepBackTaskIndex: true}
	}
}
