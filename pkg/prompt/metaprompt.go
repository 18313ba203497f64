package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stagehand-project/stagehand/pkg/models"
)

// Meta-prompt extraction regexes. The bodies are matched non-greedily up
// to the next literal ')': a prompt containing parentheses is silently
// truncated at the first ')'. This matches the historical grammar; callers
// relying on nested parentheses must escape or restructure.
var (
	rolePattern    = regexp.MustCompile(`(?i)\(ROLE:\s*([^)]+)\)`)
	contextPattern = regexp.MustCompile(`(?i)\(CONTEXT:\s*([^)]+)\)`)
	promptPattern  = regexp.MustCompile(`(?i)\(PROMPT:\s*([^)]+)\)`)
	outputPattern  = regexp.MustCompile(`(?i)\(OUTPUT:\s*([^)]+)\)`)

	slideTypePattern    = regexp.MustCompile(`(?i)\(SLIDE_TYPE:\s*([^)]+)\)`)
	slideContentPattern = regexp.MustCompile(`(?i)\(SLIDE_CONTENT:\s*([^)]+)\)`)
	slideOutputPattern  = regexp.MustCompile(`(?i)\(OUTPUT:\s*(slide_[^)]*)\)`)
)

// ExtractMetaPrompt parses a todo's content for an embedded sub-agent
// spec. A MetaPrompt is emitted only when both ROLE and PROMPT match;
// CONTEXT and OUTPUT are optional. Returns nil when the content carries no
// meta-prompt.
func ExtractMetaPrompt(content string) *models.MetaPrompt {
	roleMatch := rolePattern.FindStringSubmatch(content)
	promptMatch := promptPattern.FindStringSubmatch(content)
	if roleMatch == nil || promptMatch == nil {
		return nil
	}

	mp := &models.MetaPrompt{
		RoleSpecification: models.Role(strings.TrimSpace(roleMatch[1])),
		Instruction:       strings.TrimSpace(promptMatch[1]),
		Context:           map[string]string{},
	}
	if m := contextPattern.FindStringSubmatch(content); m != nil {
		mp.Context["domain"] = strings.TrimSpace(m[1])
	}
	if m := outputPattern.FindStringSubmatch(content); m != nil {
		mp.OutputRequirements = strings.TrimSpace(m[1])
	}
	return mp
}

// RenderMetaPrompt produces the canonical textual form of a meta-prompt.
// ExtractMetaPrompt(RenderMetaPrompt(mp)) yields a structure equal to mp
// (for bodies free of parentheses).
func RenderMetaPrompt(mp *models.MetaPrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(ROLE: %s)", mp.RoleSpecification)
	if domain, ok := mp.Context["domain"]; ok && domain != "" {
		fmt.Fprintf(&b, " (CONTEXT: %s)", domain)
	}
	fmt.Fprintf(&b, " (PROMPT: %s)", mp.Instruction)
	if mp.OutputRequirements != "" {
		fmt.Fprintf(&b, " (OUTPUT: %s)", mp.OutputRequirements)
	}
	return b.String()
}

// ExtractSlideSpec parses the presentation-shaped sibling of the general
// meta-prompt. Both may coexist in one todo; extraction is independent.
// Requires SLIDE_TYPE and SLIDE_CONTENT; the slide_N output tag is
// optional.
func ExtractSlideSpec(content string) *models.SlideSpec {
	typeMatch := slideTypePattern.FindStringSubmatch(content)
	contentMatch := slideContentPattern.FindStringSubmatch(content)
	if typeMatch == nil || contentMatch == nil {
		return nil
	}

	spec := &models.SlideSpec{
		SlideType:    strings.TrimSpace(typeMatch[1]),
		SlideContent: strings.TrimSpace(contentMatch[1]),
	}
	if m := slideOutputPattern.FindStringSubmatch(content); m != nil {
		spec.Output = strings.TrimSpace(m[1])
	}
	return spec
}

// AnnotateTodos attaches parsed meta-prompts and slide specs to a freshly
// planned todo list. Parsing happens once, at PLAN time; todos that
// already carry a meta-prompt are left untouched. Todos that gain a
// meta-prompt become task_agent kind.
func AnnotateTodos(todos []models.Todo) []models.Todo {
	out := make([]models.Todo, len(todos))
	for i, t := range todos {
		if t.MetaPrompt == nil {
			if mp := ExtractMetaPrompt(t.Content); mp != nil {
				t.MetaPrompt = mp
				t.Kind = models.KindTaskAgent
			}
		}
		if t.SlideSpec == nil {
			t.SlideSpec = ExtractSlideSpec(t.Content)
		}
		if t.Kind == "" {
			t.Kind = models.KindDirectExecution
		}
		out[i] = t
	}
	return out
}
