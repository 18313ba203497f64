// Package prompt implements the role & meta-prompt engine: keyword-based
// role detection, phase x role prompt assembly, and extraction of fractal
// sub-agent specs embedded in todo items.
package prompt

import (
	"strings"

	"github.com/stagehand-project/stagehand/pkg/models"
)

// RoleConfig parameterizes prompt assembly for one role. The multiplier
// never changes orchestration logic; it is surfaced in the prompt so the
// downstream worker self-regulates its reasoning depth.
type RoleConfig struct {
	ReasoningMultiplier float64
	Focus               string
	SuggestedFrameworks []string
	ValidationRules     []string
}

// roleConfigs is the constant role table. Multipliers stay within
// [2.0, 3.5].
var roleConfigs = map[models.Role]RoleConfig{
	models.RolePlanner: {
		ReasoningMultiplier: 3.0,
		Focus:               "strategic decomposition and dependency ordering",
		SuggestedFrameworks: []string{"work-breakdown structure", "critical path analysis"},
		ValidationRules:     []string{"every task has an owner phase", "no circular dependencies"},
	},
	models.RoleCoder: {
		ReasoningMultiplier: 2.5,
		Focus:               "implementation correctness and testability",
		SuggestedFrameworks: []string{"test-driven development", "incremental refactoring"},
		ValidationRules:     []string{"code compiles", "edge cases covered by tests"},
	},
	models.RoleCritic: {
		ReasoningMultiplier: 3.5,
		Focus:               "finding defects, gaps, and unstated assumptions",
		SuggestedFrameworks: []string{"failure mode analysis", "rubric-based review"},
		ValidationRules:     []string{"every claim has evidence", "severity assigned to each finding"},
	},
	models.RoleResearcher: {
		ReasoningMultiplier: 3.0,
		Focus:               "breadth-first evidence gathering with source tracking",
		SuggestedFrameworks: []string{"triangulation across sources", "citation chaining"},
		ValidationRules:     []string{"at least two independent sources per claim"},
	},
	models.RoleAnalyzer: {
		ReasoningMultiplier: 3.2,
		Focus:               "quantitative pattern extraction and comparison",
		SuggestedFrameworks: []string{"descriptive statistics", "cohort comparison"},
		ValidationRules:     []string{"units stated", "outliers examined before aggregation"},
	},
	models.RoleSynthesizer: {
		ReasoningMultiplier: 2.8,
		Focus:               "merging partial results into one coherent deliverable",
		SuggestedFrameworks: []string{"thematic clustering", "contradiction resolution"},
		ValidationRules:     []string{"no source dropped silently", "conflicts surfaced explicitly"},
	},
	models.RoleUIArchitect: {
		ReasoningMultiplier: 2.6,
		Focus:               "information architecture and interaction flows",
		SuggestedFrameworks: []string{"atomic design", "user journey mapping"},
		ValidationRules:     []string{"every screen reachable", "navigation depth bounded"},
	},
	models.RoleUIImplementer: {
		ReasoningMultiplier: 2.2,
		Focus:               "translating designs into working components",
		SuggestedFrameworks: []string{"component-driven development", "progressive enhancement"},
		ValidationRules:     []string{"responsive at common breakpoints", "semantic markup"},
	},
	models.RoleUIRefiner: {
		ReasoningMultiplier: 2.0,
		Focus:               "visual polish, accessibility, and micro-interactions",
		SuggestedFrameworks: []string{"WCAG 2.1 checklist", "design token audit"},
		ValidationRules:     []string{"contrast ratios pass AA", "focus states visible"},
	},
}

// ConfigFor returns the role configuration table entry.
func ConfigFor(role models.Role) RoleConfig {
	return roleConfigs[role]
}

// roleKeywords drives detection: each keyword found in the lowercased
// objective scores one point for its role.
var roleKeywords = map[models.Role][]string{
	models.RolePlanner:       {"plan", "roadmap", "strategy", "organize", "schedule", "milestone", "coordinate", "prioritize"},
	models.RoleCoder:         {"build", "code", "implement", "program", "script", "api", "function", "develop", "fix", "debug"},
	models.RoleCritic:        {"review", "critique", "evaluate", "assess", "audit", "inspect", "quality"},
	models.RoleResearcher:    {"research", "investigate", "find", "search", "explore", "discover", "gather", "sources"},
	models.RoleAnalyzer:      {"analyze", "analysis", "data", "metric", "pattern", "statistic", "performance", "profile"},
	models.RoleSynthesizer:   {"combine", "merge", "synthesize", "summarize", "integrate", "consolidate", "digest"},
	models.RoleUIArchitect:   {"wireframe", "layout", "navigation", "user flow", "information architecture", "mockup"},
	models.RoleUIImplementer: {"component", "css", "frontend", "render", "form", "page", "button", "responsive"},
	models.RoleUIRefiner:     {"polish", "refine", "accessibility", "contrast", "spacing", "animation", "theme"},
}

// DetectRole scores each role's keyword set against the lowercased
// objective and returns the best match. Ties break in the documented
// precedence order (models.RolePrecedence); an objective matching nothing
// defaults to planner.
func DetectRole(objective string) models.Role {
	lowered := strings.ToLower(objective)

	best := models.RolePlanner
	bestScore := 0
	for _, role := range models.RolePrecedence {
		score := 0
		for _, kw := range roleKeywords[role] {
			if strings.Contains(lowered, kw) {
				score++
			}
		}
		if score > bestScore {
			best = role
			bestScore = score
		}
	}
	return best
}
