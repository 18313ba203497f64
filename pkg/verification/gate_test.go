package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/models"
)

func testGate() *Gate {
	return NewGate(config.VerificationConfig{
		CompletionThreshold:  95,
		EffectivenessMinimum: 0.7,
	})
}

func todo(id string, status models.TodoStatus, priority models.TodoPriority) models.Todo {
	return models.Todo{ID: id, Content: "task " + id, Status: status, Priority: priority, Kind: models.KindDirectExecution}
}

func TestCompute(t *testing.T) {
	t.Run("empty list counts as fully complete", func(t *testing.T) {
		m := Compute(nil)
		assert.Equal(t, 100, m.CompletionPct)
		assert.Zero(t, m.Total)
	})

	t.Run("rounds completion percentage", func(t *testing.T) {
		m := Compute([]models.Todo{
			todo("a", models.TodoCompleted, models.PriorityLow),
			todo("b", models.TodoPending, models.PriorityLow),
			todo("c", models.TodoPending, models.PriorityLow),
		})
		assert.Equal(t, 33, m.CompletionPct)
		assert.Equal(t, 1, m.Completed)
		assert.Equal(t, 2, m.Pending)
	})

	t.Run("counts critical and high-priority pending", func(t *testing.T) {
		agent := models.Todo{
			ID: "agent", Content: "x", Status: models.TodoPending,
			Priority:   models.PriorityMedium,
			Kind:       models.KindTaskAgent,
			MetaPrompt: &models.MetaPrompt{RoleSpecification: models.RoleCoder, Instruction: "do"},
		}
		m := Compute([]models.Todo{
			todo("h", models.TodoPending, models.PriorityHigh),
			agent,
			todo("done", models.TodoCompleted, models.PriorityHigh),
		})
		assert.Equal(t, 3, m.CriticalTotal)
		assert.Equal(t, 1, m.CriticalDone)
		assert.Equal(t, 1, m.HighPriorityPending)
	})
}

func TestEvaluate(t *testing.T) {
	g := testGate()

	t.Run("passes at effectiveness boundary", func(t *testing.T) {
		todos := []models.Todo{
			todo("a", models.TodoCompleted, models.PriorityLow),
			todo("b", models.TodoCompleted, models.PriorityHigh),
		}
		res := g.Evaluate(todos, 0.7, true)
		assert.True(t, res.Passed)
		assert.Nil(t, res.Rollback)
	})

	t.Run("fails just below effectiveness boundary", func(t *testing.T) {
		todos := []models.Todo{
			todo("a", models.TodoCompleted, models.PriorityLow),
			todo("b", models.TodoCompleted, models.PriorityHigh),
		}
		res := g.Evaluate(todos, 0.69, true)
		assert.False(t, res.Passed)
		assert.Contains(t, res.FailureReason, "effectiveness")
	})

	t.Run("fails on incomplete critical task", func(t *testing.T) {
		todos := []models.Todo{
			todo("a", models.TodoCompleted, models.PriorityLow),
			todo("crit", models.TodoPending, models.PriorityHigh),
		}
		res := g.Evaluate(todos, 0.9, false)
		assert.False(t, res.Passed)
		assert.Contains(t, res.FailureReason, "critical")
	})

	t.Run("fails when anything is in_progress", func(t *testing.T) {
		todos := make([]models.Todo, 0, 20)
		for i := 0; i < 19; i++ {
			todos = append(todos, todo(string(rune('a'+i)), models.TodoCompleted, models.PriorityLow))
		}
		todos = append(todos, todo("wip", models.TodoInProgress, models.PriorityLow))
		res := g.Evaluate(todos, 0.9, true)
		assert.False(t, res.Passed)
		assert.Contains(t, res.FailureReason, "in_progress")
	})

	t.Run("worker assertion never relaxes the rules", func(t *testing.T) {
		todos := []models.Todo{
			todo("a", models.TodoCompleted, models.PriorityHigh),
			todo("b", models.TodoPending, models.PriorityLow),
		}
		res := g.Evaluate(todos, 0.9, true)
		assert.False(t, res.Passed)
	})

	t.Run("fails below completion threshold", func(t *testing.T) {
		var todos []models.Todo
		for i := 0; i < 9; i++ {
			todos = append(todos, todo(string(rune('a'+i)), models.TodoCompleted, models.PriorityLow))
		}
		todos = append(todos, todo("last", models.TodoPending, models.PriorityLow))
		res := g.Evaluate(todos, 0.9, false)
		require.False(t, res.Passed)
		assert.Equal(t, 90, res.Metrics.CompletionPct)
	})
}

func TestRollbackSeverity(t *testing.T) {
	tests := []struct {
		name      string
		pct       int
		wantPhase models.Phase
		reset     bool
		stepBack  bool
	}{
		{"severe replans from scratch", 33, models.PhasePlan, true, false},
		{"boundary 49 replans", 49, models.PhasePlan, true, false},
		{"moderate resumes execution", 50, models.PhaseExecute, false, false},
		{"boundary 79 resumes", 79, models.PhaseExecute, false, false},
		{"near-complete redoes last task", 80, models.PhaseExecute, false, true},
		{"boundary 99 redoes last task", 99, models.PhaseExecute, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := rollbackFor(tt.pct)
			require.NotNil(t, rb)
			assert.Equal(t, tt.wantPhase, rb.NextPhase)
			assert.Equal(t, tt.reset, rb.ResetTaskIndex)
			assert.Equal(t, tt.stepBack, rb.StepBackTaskIndex)
		})
	}
}

func TestEvaluateRollbackUsesRecomputedPct(t *testing.T) {
	g := testGate()
	todos := []models.Todo{
		todo("a", models.TodoCompleted, models.PriorityLow),
		todo("b", models.TodoPending, models.PriorityLow),
		todo("c", models.TodoPending, models.PriorityLow),
	}
	res := g.Evaluate(todos, 0.9, false)
	require.False(t, res.Passed)
	require.NotNil(t, res.Rollback)
	assert.Equal(t, 33, res.Metrics.CompletionPct)
	assert.Equal(t, models.PhasePlan, res.Rollback.NextPhase)
	assert.True(t, res.Rollback.ResetTaskIndex)
}
