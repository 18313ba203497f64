package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/pkg/verification"
)

func testMachine() *Machine {
	gate := verification.NewGate(config.VerificationConfig{
		CompletionThreshold:  95,
		EffectivenessMinimum: 0.7,
	})
	return NewMachine(gate, testTracker())
}

func rawTodos(entries ...map[string]any) []any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out
}

func doneTodo(id string) map[string]any {
	return map[string]any{"id": id, "content": "task " + id, "status": "completed", "priority": "low"}
}

func pendingTodo(id string) map[string]any {
	return map[string]any{"id": id, "content": "task " + id, "status": "pending", "priority": "low"}
}

func TestAllowedTools(t *testing.T) {
	assert.Equal(t, []string{"jarvis"}, AllowedTools(models.PhaseQuery))
	assert.Empty(t, AllowedTools(models.PhaseDone))
	assert.Empty(t, AllowedTools(models.PhaseInit))
	assert.Contains(t, AllowedTools(models.PhaseKnowledge), "web_fetch")
	assert.Contains(t, AllowedTools(models.PhaseExecute), "task")
	assert.NotContains(t, AllowedTools(models.PhaseVerify), "write")

	// Returned slice is a copy; mutating it must not poison the table.
	tools := AllowedTools(models.PhaseQuery)
	tools[0] = "mutated"
	assert.Equal(t, []string{"jarvis"}, AllowedTools(models.PhaseQuery))
}

func TestAllowedTargets(t *testing.T) {
	assert.Equal(t, []models.Phase{models.PhaseQuery}, AllowedTargets(models.PhaseInit))
	assert.ElementsMatch(t,
		[]models.Phase{models.PhaseExecute, models.PhaseVerify},
		AllowedTargets(models.PhaseExecute))
	assert.ElementsMatch(t,
		[]models.Phase{models.PhaseDone, models.PhasePlan, models.PhaseExecute},
		AllowedTargets(models.PhaseVerify))
	assert.Equal(t, []models.Phase{models.PhaseDone}, AllowedTargets(models.PhaseDone))
}

func TestStepReissues(t *testing.T) {
	m := testMachine()

	t.Run("terminal phase is idempotent", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseDone, Completed: models.PhaseVerify,
			Payload: models.Payload{"k": "v"}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.True(t, res.Reissue)
		assert.Equal(t, models.PhaseDone, res.Next)
	})

	t.Run("mismatched pair re-issues without mutating payload", func(t *testing.T) {
		payload := models.Payload{"k": "v"}
		res, err := m.Step(StepInput{
			Current: models.PhasePlan, Completed: models.PhaseExecute,
			Completion: models.Payload{"stray": true},
			Payload:    payload, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.True(t, res.Reissue)
		assert.Equal(t, models.PhasePlan, res.Next)
		assert.NotContains(t, res.Payload, "stray")
	})
}

func TestStepLinearPhases(t *testing.T) {
	m := testMachine()

	t.Run("query advances to enhance and records role", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseQuery, Completed: models.PhaseQuery,
			Completion: models.Payload{
				models.KeyInterpretedGoal: "build a parser",
				models.KeyRole:            "coder",
			},
			Payload: models.Payload{}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseEnhance, res.Next)
		assert.Equal(t, models.RoleCoder, res.RoleOverride)
		assert.Equal(t, "coder", res.Payload.GetString(models.KeyDetectedRole))
	})

	t.Run("invalid role token is ignored", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseQuery, Completed: models.PhaseQuery,
			Completion: models.Payload{models.KeyRole: "wizard"},
			Payload:    models.Payload{}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseEnhance, res.Next)
		assert.Empty(t, res.RoleOverride)
	})

	t.Run("enhance advances to knowledge", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseEnhance, Completed: models.PhaseEnhance,
			Completion: models.Payload{models.KeyEnhancedGoal: "build a fast parser"},
			Payload:    models.Payload{}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseKnowledge, res.Next)
	})

	t.Run("knowledge without synthesis asks for auto-connection", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseKnowledge, Completed: models.PhaseKnowledge,
			Completion: models.Payload{},
			Payload:    models.Payload{}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhasePlan, res.Next)
		assert.True(t, res.NeedsKnowledge)
	})

	t.Run("knowledge with synthesis skips auto-connection", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseKnowledge, Completed: models.PhaseKnowledge,
			Completion: models.Payload{models.KeySynthesizedKnowledge: "facts"},
			Payload:    models.Payload{}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.False(t, res.NeedsKnowledge)
	})
}

func TestStepPlan(t *testing.T) {
	m := testMachine()

	t.Run("plan not ready holds the session", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhasePlan, Completed: models.PhasePlan,
			Completion: models.Payload{models.KeyPlanCreated: false},
			Payload:    models.Payload{}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.True(t, res.Reissue)
		assert.Equal(t, models.PhasePlan, res.Next)
	})

	t.Run("plan ready annotates todos and resets the index", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhasePlan, Completed: models.PhasePlan,
			Completion: models.Payload{
				models.KeyPlanCreated: true,
				models.KeyCurrentTodos: rawTodos(
					pendingTodo("t1"),
					map[string]any{
						"id":       "t2",
						"content":  "(ROLE: coder) (PROMPT: implement the lexer)",
						"status":   "pending",
						"priority": "high",
					},
				),
			},
			Payload: models.Payload{}, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseExecute, res.Next)

		idx, ok := res.Payload.GetInt(models.KeyCurrentTaskIndex)
		require.True(t, ok)
		assert.Zero(t, idx)

		todos, err := res.Payload.Todos()
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, models.KindDirectExecution, todos[0].Kind)
		assert.Equal(t, models.KindTaskAgent, todos[1].Kind)
		require.NotNil(t, todos[1].MetaPrompt)
		assert.Equal(t, models.RoleCoder, todos[1].MetaPrompt.RoleSpecification)
	})

	t.Run("invalid todo list is a validation error", func(t *testing.T) {
		_, err := m.Step(StepInput{
			Current: models.PhasePlan, Completed: models.PhasePlan,
			Completion: models.Payload{
				models.KeyPlanCreated:  true,
				models.KeyCurrentTodos: rawTodos(pendingTodo("dup"), pendingTodo("dup")),
			},
			Payload: models.Payload{}, Effectiveness: 0.8,
		})
		assert.Error(t, err)
	})
}

func TestStepExecute(t *testing.T) {
	m := testMachine()

	t.Run("loops while tasks remain and advances the index", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseExecute, Completed: models.PhaseExecute,
			Completion: models.Payload{
				models.KeyExecutionSuccess: true,
				models.KeyTaskComplexity:   ComplexitySimple,
			},
			Payload: models.Payload{
				models.KeyCurrentTodos:     rawTodos(doneTodo("t1"), pendingTodo("t2"), pendingTodo("t3")),
				models.KeyCurrentTaskIndex: 0,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseExecute, res.Next)
		idx, _ := res.Payload.GetInt(models.KeyCurrentTaskIndex)
		assert.Equal(t, 1, idx)
		assert.InDelta(t, 0.9, res.Effectiveness, 1e-9)
	})

	t.Run("loops on more_tasks_pending even at the last index", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseExecute, Completed: models.PhaseExecute,
			Completion: models.Payload{
				models.KeyExecutionSuccess: true,
				models.KeyMoreTasksPending: true,
			},
			Payload: models.Payload{
				models.KeyCurrentTodos:     rawTodos(doneTodo("t1")),
				models.KeyCurrentTaskIndex: 0,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseExecute, res.Next)
		idx, _ := res.Payload.GetInt(models.KeyCurrentTaskIndex)
		assert.Equal(t, 1, idx)
	})

	t.Run("moves to verify after the last task", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseExecute, Completed: models.PhaseExecute,
			Completion: models.Payload{
				models.KeyExecutionSuccess: false,
				models.KeyTaskComplexity:   ComplexityComplex,
			},
			Payload: models.Payload{
				models.KeyCurrentTodos:     rawTodos(doneTodo("t1"), doneTodo("t2")),
				models.KeyCurrentTaskIndex: 1,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseVerify, res.Next)
		assert.InDelta(t, 0.65, res.Effectiveness, 1e-9)
	})
}

func TestStepTodoInvariantsRecheckedAfterMerge(t *testing.T) {
	m := testMachine()

	inProgressTodo := func(id string) map[string]any {
		return map[string]any{"id": id, "content": "task " + id, "status": "in_progress", "priority": "low"}
	}

	t.Run("execute rejects a second in_progress todo", func(t *testing.T) {
		_, err := m.Step(StepInput{
			Current: models.PhaseExecute, Completed: models.PhaseExecute,
			Completion: models.Payload{
				models.KeyExecutionSuccess: true,
				models.KeyCurrentTodos:     rawTodos(inProgressTodo("t1"), inProgressTodo("t2")),
			},
			Payload: models.Payload{
				models.KeyCurrentTodos:     rawTodos(pendingTodo("t1"), pendingTodo("t2")),
				models.KeyCurrentTaskIndex: 0,
			},
			Effectiveness: 0.8,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "in_progress")
	})

	t.Run("execute rejects a malformed todo list", func(t *testing.T) {
		_, err := m.Step(StepInput{
			Current: models.PhaseExecute, Completed: models.PhaseExecute,
			Completion: models.Payload{
				models.KeyExecutionSuccess: true,
				models.KeyCurrentTodos:     "not a list",
			},
			Payload:       models.Payload{models.KeyCurrentTaskIndex: 0},
			Effectiveness: 0.8,
		})
		assert.Error(t, err)
	})

	t.Run("verify rejects duplicate todo ids", func(t *testing.T) {
		_, err := m.Step(StepInput{
			Current: models.PhaseVerify, Completed: models.PhaseVerify,
			Completion: models.Payload{
				models.KeyCurrentTodos: rawTodos(doneTodo("dup"), doneTodo("dup")),
			},
			Payload:       models.Payload{},
			Effectiveness: 0.8,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestStepVerify(t *testing.T) {
	m := testMachine()

	t.Run("pass moves to done and clears the rollback context", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseVerify, Completed: models.PhaseVerify,
			Completion: models.Payload{models.KeyVerificationPassed: true},
			Payload: models.Payload{
				models.KeyCurrentTodos:        rawTodos(doneTodo("t1"), doneTodo("t2")),
				models.KeyVerificationFailure: "stale reason",
				models.KeyLastCompletionPct:   60,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseDone, res.Next)
		assert.NotContains(t, res.Payload, models.KeyVerificationFailure)
		assert.NotContains(t, res.Payload, models.KeyLastCompletionPct)
	})

	t.Run("severe failure rolls back to plan with index reset", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseVerify, Completed: models.PhaseVerify,
			Completion: models.Payload{},
			Payload: models.Payload{
				models.KeyCurrentTodos:     rawTodos(doneTodo("t1"), pendingTodo("t2"), pendingTodo("t3")),
				models.KeyCurrentTaskIndex: 2,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhasePlan, res.Next)
		idx, _ := res.Payload.GetInt(models.KeyCurrentTaskIndex)
		assert.Zero(t, idx)
		assert.NotEmpty(t, res.Payload.GetString(models.KeyVerificationFailure))
		pct, _ := res.Payload.GetInt(models.KeyLastCompletionPct)
		assert.Equal(t, 33, pct)
	})

	t.Run("moderate failure resumes execution keeping the index", func(t *testing.T) {
		res, err := m.Step(StepInput{
			Current: models.PhaseVerify, Completed: models.PhaseVerify,
			Completion: models.Payload{},
			Payload: models.Payload{
				models.KeyCurrentTodos: rawTodos(
					doneTodo("t1"), doneTodo("t2"), doneTodo("t3"), pendingTodo("t4"), pendingTodo("t5")),
				models.KeyCurrentTaskIndex: 3,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseExecute, res.Next)
		idx, _ := res.Payload.GetInt(models.KeyCurrentTaskIndex)
		assert.Equal(t, 3, idx)
	})

	t.Run("near-complete failure steps the index back", func(t *testing.T) {
		todos := rawTodos(
			doneTodo("t1"), doneTodo("t2"), doneTodo("t3"), doneTodo("t4"),
			doneTodo("t5"), doneTodo("t6"), doneTodo("t7"), doneTodo("t8"),
			doneTodo("t9"), pendingTodo("t10"))
		res, err := m.Step(StepInput{
			Current: models.PhaseVerify, Completed: models.PhaseVerify,
			Completion: models.Payload{},
			Payload: models.Payload{
				models.KeyCurrentTodos:     todos,
				models.KeyCurrentTaskIndex: 9,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PhaseExecute, res.Next)
		idx, _ := res.Payload.GetInt(models.KeyCurrentTaskIndex)
		assert.Equal(t, 8, idx)
	})

	t.Run("step back floors at zero", func(t *testing.T) {
		todos := rawTodos(
			doneTodo("t1"), doneTodo("t2"), doneTodo("t3"), doneTodo("t4"),
			doneTodo("t5"), doneTodo("t6"), doneTodo("t7"), doneTodo("t8"),
			doneTodo("t9"), pendingTodo("t10"))
		res, err := m.Step(StepInput{
			Current: models.PhaseVerify, Completed: models.PhaseVerify,
			Completion: models.Payload{},
			Payload: models.Payload{
				models.KeyCurrentTodos:     todos,
				models.KeyCurrentTaskIndex: 0,
			},
			Effectiveness: 0.8,
		})
		require.NoError(t, err)
		idx, _ := res.Payload.GetInt(models.KeyCurrentTaskIndex)
		assert.Zero(t, idx)
	})
}
