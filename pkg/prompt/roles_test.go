package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagehand-project/stagehand/pkg/models"
)

func TestDetectRole(t *testing.T) {
	tests := []struct {
		name      string
		objective string
		want      models.Role
	}{
		{"coder keywords", "build and implement a REST api", models.RoleCoder},
		{"researcher keywords", "research and investigate caching strategies, gather sources", models.RoleResearcher},
		{"analyzer keywords", "analyze performance data and extract metric patterns", models.RoleAnalyzer},
		{"ui refiner keywords", "polish the theme, fix contrast and spacing", models.RoleUIRefiner},
		{"no keywords defaults to planner", "qwerty asdf zxcv", models.RolePlanner},
		{"empty objective defaults to planner", "", models.RolePlanner},
		{"case insensitive", "BUILD AND DEBUG THE SCRIPT", models.RoleCoder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectRole(tt.objective))
		})
	}
}

func TestDetectRoleTieBreaksByPrecedence(t *testing.T) {
	// One keyword each for planner ("plan") and coder ("build"): planner
	// comes first in the precedence order.
	assert.Equal(t, models.RolePlanner, DetectRole("plan then build"))
}

func TestConfigForCoversEveryRole(t *testing.T) {
	for _, role := range models.RolePrecedence {
		cfg := ConfigFor(role)
		assert.GreaterOrEqual(t, cfg.ReasoningMultiplier, 2.0, "role %s", role)
		assert.LessOrEqual(t, cfg.ReasoningMultiplier, 3.5, "role %s", role)
		assert.NotEmpty(t, cfg.Focus, "role %s", role)
	}
}
