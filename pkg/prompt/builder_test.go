package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/models"
)

func TestBuildSubstitutesPlaceholders(t *testing.T) {
	b := NewBuilder()
	out := b.Build(models.PhaseQuery, Input{
		SessionID: "sess-42",
		Objective: "build a thing",
		Role:      models.RoleCoder,
	})

	assert.Contains(t, out, "sess-42")
	assert.NotContains(t, out, "{{session_id}}")
	assert.Contains(t, out, "Objective: build a thing")
	assert.Contains(t, out, "Role: coder")
}

func TestBuildUsesRoleEnhancementWhenPresent(t *testing.T) {
	b := NewBuilder()

	withEnhancement := b.Build(models.PhaseExecute, Input{SessionID: "s", Role: models.RoleCoder})
	assert.Contains(t, withEnhancement, "Write the test alongside the change")

	// Critic has no EXECUTE enhancement: falls back to the generic
	// framework list from the role config.
	generic := b.Build(models.PhaseExecute, Input{SessionID: "s", Role: models.RoleCritic})
	assert.Contains(t, generic, "Suggested frameworks:")
}

func TestBuildPlanContext(t *testing.T) {
	b := NewBuilder()
	out := b.Build(models.PhasePlan, Input{
		SessionID: "s",
		Role:      models.RolePlanner,
		Payload: models.Payload{
			models.KeyEnhancedGoal:         "ship the importer",
			models.KeySynthesizedKnowledge: "importer formats: csv, json",
			models.KeyKnowledgeConfidence:  0.75,
			models.KeyVerificationFailure:  "critical task t2 incomplete",
			models.KeyLastCompletionPct:    80,
		},
	})

	assert.Contains(t, out, "Enhanced goal: ship the importer")
	assert.Contains(t, out, "Gathered knowledge: importer formats: csv, json")
	assert.Contains(t, out, "Knowledge confidence: 0.75")
	assert.Contains(t, out, "Previous verification failure: critical task t2 incomplete")
	assert.Contains(t, out, "Previous completion: 80%")
}

func TestBuildExecuteContextRendersTodos(t *testing.T) {
	b := NewBuilder()
	payload := models.Payload{
		models.KeyCurrentTaskIndex: 1,
	}
	payload.SetTodos([]models.Todo{
		{ID: "t1", Content: "a", Status: models.TodoCompleted, Priority: models.PriorityLow, Kind: models.KindDirectExecution},
		{ID: "t2", Content: "b", Status: models.TodoInProgress, Priority: models.PriorityHigh, Kind: models.KindDirectExecution},
	})

	out := b.Build(models.PhaseExecute, Input{SessionID: "s", Role: models.RoleCoder, Payload: payload})

	assert.Contains(t, out, "Current task index: 1")
	assert.Contains(t, out, "[x] t1")
	assert.Contains(t, out, "[>] t2")
}

func TestBuildKnowledgeGoalFallsBackToObjective(t *testing.T) {
	b := NewBuilder()

	out := b.Build(models.PhaseKnowledge, Input{
		SessionID: "s", Objective: "the raw objective", Role: models.RoleResearcher,
	})
	assert.Contains(t, out, "Goal: the raw objective")

	out = b.Build(models.PhaseKnowledge, Input{
		SessionID: "s", Objective: "the raw objective", Role: models.RoleResearcher,
		Payload: models.Payload{models.KeyEnhancedGoal: "the enhanced goal"},
	})
	assert.Contains(t, out, "Goal: the enhanced goal")
	assert.NotContains(t, out, "Goal: the raw objective")
}

func TestBuildDonePhase(t *testing.T) {
	b := NewBuilder()
	out := b.Build(models.PhaseDone, Input{SessionID: "final", Role: models.RolePlanner})
	assert.Contains(t, out, "Session final is complete")
	require.False(t, strings.Contains(out, "Context:"), "terminal phase carries no context block")
}
