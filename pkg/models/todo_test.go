package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCritical(t *testing.T) {
	mp := &MetaPrompt{RoleSpecification: RoleCoder, Instruction: "do"}
	tests := []struct {
		name string
		todo Todo
		want bool
	}{
		{"high priority", Todo{ID: "a", Priority: PriorityHigh, Kind: KindDirectExecution}, true},
		{"task agent kind", Todo{ID: "b", Priority: PriorityLow, Kind: KindTaskAgent, MetaPrompt: mp}, true},
		{"meta prompt attached", Todo{ID: "c", Priority: PriorityLow, Kind: KindTaskAgent, MetaPrompt: mp}, true},
		{"plain low", Todo{ID: "d", Priority: PriorityLow, Kind: KindDirectExecution}, false},
		{"plain medium", Todo{ID: "e", Priority: PriorityMedium, Kind: KindDirectExecution}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.todo.IsCritical())
		})
	}
}

func TestValidateTodos(t *testing.T) {
	mp := &MetaPrompt{RoleSpecification: RoleCoder, Instruction: "do"}

	t.Run("accepts a well-formed list", func(t *testing.T) {
		err := ValidateTodos([]Todo{
			{ID: "a", Status: TodoCompleted, Priority: PriorityLow, Kind: KindDirectExecution},
			{ID: "b", Status: TodoInProgress, Priority: PriorityHigh, Kind: KindTaskAgent, MetaPrompt: mp},
			{ID: "c", Status: TodoPending, Priority: PriorityMedium, Kind: KindDirectExecution},
		})
		assert.NoError(t, err)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		err := ValidateTodos([]Todo{{ID: "", Kind: KindDirectExecution}})
		assert.ErrorContains(t, err, "no id")
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		err := ValidateTodos([]Todo{
			{ID: "a", Kind: KindDirectExecution},
			{ID: "a", Kind: KindDirectExecution},
		})
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("rejects two in_progress entries", func(t *testing.T) {
		err := ValidateTodos([]Todo{
			{ID: "a", Status: TodoInProgress, Kind: KindDirectExecution},
			{ID: "b", Status: TodoInProgress, Kind: KindDirectExecution},
		})
		assert.ErrorContains(t, err, "in_progress")
	})

	t.Run("task_agent requires a meta prompt", func(t *testing.T) {
		err := ValidateTodos([]Todo{{ID: "a", Kind: KindTaskAgent}})
		assert.ErrorContains(t, err, "meta_prompt")
	})

	t.Run("meta prompt requires task_agent kind", func(t *testing.T) {
		err := ValidateTodos([]Todo{{ID: "a", Kind: KindDirectExecution, MetaPrompt: mp}})
		assert.ErrorContains(t, err, "meta_prompt")
	})
}

func TestDecodeTodos(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		todos, err := DecodeTodos(nil)
		require.NoError(t, err)
		assert.Nil(t, todos)
	})

	t.Run("rejects non-list values", func(t *testing.T) {
		_, err := DecodeTodos("not a list")
		assert.Error(t, err)
	})
}
