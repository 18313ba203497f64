package models

import (
	"encoding/json"
	"fmt"
)

// TodoStatus tracks a task through its lifecycle.
type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
)

// IsValid checks the status token.
func (s TodoStatus) IsValid() bool {
	return s == TodoPending || s == TodoInProgress || s == TodoCompleted
}

// TodoPriority orders tasks for verification accounting.
type TodoPriority string

const (
	PriorityHigh   TodoPriority = "high"
	PriorityMedium TodoPriority = "medium"
	PriorityLow    TodoPriority = "low"
)

// IsValid checks the priority token.
func (p TodoPriority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// TodoKind distinguishes tasks the worker executes inline from tasks that
// spawn a specialized sub-agent from an embedded meta-prompt.
type TodoKind string

const (
	KindDirectExecution TodoKind = "direct_execution"
	KindTaskAgent       TodoKind = "task_agent"
)

// MetaPrompt is a sub-agent specification extracted from a todo's content
// during PLAN and consumed during EXECUTE. Parsed once, never re-parsed.
type MetaPrompt struct {
	RoleSpecification  Role              `json:"role_specification"`
	Context            map[string]string `json:"context"`
	Instruction        string            `json:"instruction"`
	OutputRequirements string            `json:"output_requirements"`
}

// SlideSpec is the presentation-shaped sibling of MetaPrompt: present iff
// the todo content matches the slide meta-prompt shape.
type SlideSpec struct {
	SlideType    string `json:"slide_type"`
	SlideContent string `json:"slide_content"`
	Output       string `json:"output,omitempty"`
}

// Todo is a unit of work produced in PLAN and consumed in EXECUTE.
type Todo struct {
	ID         string       `json:"id"`
	Content    string       `json:"content"`
	Status     TodoStatus   `json:"status"`
	Priority   TodoPriority `json:"priority"`
	Kind       TodoKind     `json:"kind"`
	MetaPrompt *MetaPrompt  `json:"meta_prompt,omitempty"`
	SlideSpec  *SlideSpec   `json:"slide_spec,omitempty"`
}

// IsCritical reports whether the todo counts toward the verification
// gate's critical set: high priority, task-agent kind, or an embedded
// meta-prompt.
func (t Todo) IsCritical() bool {
	return t.Priority == PriorityHigh || t.Kind == KindTaskAgent || t.MetaPrompt != nil
}

// ValidateTodos enforces the session-level todo invariants:
// unique non-empty ids, at most one in_progress entry, and
// kind = task_agent exactly when a meta-prompt is attached.
func ValidateTodos(todos []Todo) error {
	seen := make(map[string]struct{}, len(todos))
	inProgress := 0
	for i, t := range todos {
		if t.ID == "" {
			return fmt.Errorf("todo at index %d has no id", i)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate todo id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Status == TodoInProgress {
			inProgress++
			if inProgress > 1 {
				return fmt.Errorf("more than one todo in_progress (second: %q)", t.ID)
			}
		}
		if t.Kind == KindTaskAgent && t.MetaPrompt == nil {
			return fmt.Errorf("todo %q is task_agent but has no meta_prompt", t.ID)
		}
		if t.Kind != KindTaskAgent && t.MetaPrompt != nil {
			return fmt.Errorf("todo %q has a meta_prompt but kind %q", t.ID, t.Kind)
		}
	}
	return nil
}

// DecodeTodos converts the raw payload value under "current_todos" into a
// typed slice. Accepts either a JSON array or a pre-decoded []any.
func DecodeTodos(v any) ([]Todo, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode current_todos: %w", err)
	}
	var todos []Todo
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, fmt.Errorf("decode current_todos: %w", err)
	}
	return todos, nil
}
