package prompt

import (
	"fmt"
	"strings"

	"github.com/stagehand-project/stagehand/pkg/models"
)

// Builder assembles the system prompt for a phase:
// base phase template + role enhancement + phase context block, followed by
// placeholder substitution. Stateless — all state comes from parameters.
// Thread-safe — no mutable state.
type Builder struct{}

// NewBuilder creates a prompt Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Input carries everything prompt assembly reads from the session.
type Input struct {
	SessionID string
	Objective string
	Role      models.Role
	Payload   models.Payload
}

// Build returns the full system prompt for running the given phase.
func (b *Builder) Build(phase models.Phase, in Input) string {
	base, ok := basePhasePrompts[phase]
	if !ok {
		base = basePhasePrompts[models.PhaseDone]
	}

	sections := []string{base, b.roleSection(phase, in.Role)}
	if ctx := b.contextSection(phase, in); ctx != "" {
		sections = append(sections, ctx)
	}

	text := strings.Join(sections, "\n\n")
	return substitute(text, map[string]string{
		"session_id": in.SessionID,
		"role":       string(in.Role),
	})
}

// roleSection layers the role's working style onto the phase. A specific
// (role, phase) enhancement is used when the table has one; otherwise a
// generic enhancement is derived from the role config.
func (b *Builder) roleSection(phase models.Phase, role models.Role) string {
	cfg := ConfigFor(role)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: %s (reasoning multiplier %.1fx). Focus: %s.",
		role, cfg.ReasoningMultiplier, cfg.Focus)

	if enh, ok := roleEnhancements[role][phase]; ok {
		sb.WriteString("\n")
		sb.WriteString(enh)
	} else if len(cfg.SuggestedFrameworks) > 0 {
		fmt.Fprintf(&sb, "\nSuggested frameworks: %s.", strings.Join(cfg.SuggestedFrameworks, "; "))
	}
	if len(cfg.ValidationRules) > 0 {
		fmt.Fprintf(&sb, "\nSelf-checks: %s.", strings.Join(cfg.ValidationRules, "; "))
	}
	return sb.String()
}

// contextSection selects and formats payload keys relevant to the phase.
func (b *Builder) contextSection(phase models.Phase, in Input) string {
	p := in.Payload
	var lines []string

	add := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, value))
		}
	}

	switch phase {
	case models.PhaseQuery:
		add("Objective", in.Objective)

	case models.PhaseEnhance:
		add("Objective", in.Objective)
		add("Interpreted goal", p.GetString(models.KeyInterpretedGoal))

	case models.PhaseKnowledge:
		goal := p.GetString(models.KeyEnhancedGoal)
		if goal == "" {
			goal = in.Objective
		}
		add("Goal", goal)

	case models.PhasePlan:
		add("Enhanced goal", p.GetString(models.KeyEnhancedGoal))
		add("Gathered knowledge", p.GetString(models.KeySynthesizedKnowledge))
		if conf, ok := p.GetFloat(models.KeyKnowledgeConfidence); ok {
			add("Knowledge confidence", fmt.Sprintf("%.2f", conf))
		}
		add("Previous verification failure", p.GetString(models.KeyVerificationFailure))
		if pct, ok := p.GetInt(models.KeyLastCompletionPct); ok {
			add("Previous completion", fmt.Sprintf("%d%%", pct))
		}

	case models.PhaseExecute:
		add("Enhanced goal", p.GetString(models.KeyEnhancedGoal))
		if idx, ok := p.GetInt(models.KeyCurrentTaskIndex); ok {
			add("Current task index", fmt.Sprintf("%d", idx))
		}
		add("Todo list", formatTodos(p))
		add("Previous verification failure", p.GetString(models.KeyVerificationFailure))

	case models.PhaseVerify:
		add("Enhanced goal", p.GetString(models.KeyEnhancedGoal))
		add("Todo list", formatTodos(p))
	}

	if len(lines) == 0 {
		return ""
	}
	return "Context:\n" + strings.Join(lines, "\n")
}

// formatTodos renders the todo list as one compact line per task.
func formatTodos(p models.Payload) string {
	todos, err := p.Todos()
	if err != nil || len(todos) == 0 {
		return ""
	}
	parts := make([]string, 0, len(todos))
	for _, t := range todos {
		marker := " "
		switch t.Status {
		case models.TodoCompleted:
			marker = "x"
		case models.TodoInProgress:
			marker = ">"
		}
		line := fmt.Sprintf("  [%s] %s (%s, %s)", marker, t.ID, t.Priority, t.Kind)
		parts = append(parts, line)
	}
	return "\n" + strings.Join(parts, "\n")
}

// substitute replaces {{name}} placeholders. Unknown placeholders are left
// in place so malformed templates fail loudly in review rather than
// silently rendering empty text.
func substitute(text string, vars map[string]string) string {
	for name, value := range vars {
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}
	return text
}
