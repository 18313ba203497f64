package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/models"
)

func TestSelectCapsAtFive(t *testing.T) {
	catalog := config.BuiltinCatalog()
	require.Greater(t, len(catalog), maxSelected)

	out := Select(catalog, "build a web application", models.RoleCoder)
	assert.Len(t, out, maxSelected)
}

func TestSelectKeywordOverlapWins(t *testing.T) {
	catalog := []config.APIEndpoint{
		{Name: "weather", Category: config.CategoryData, Keywords: []string{"weather", "forecast"}, Reliability: 0.5},
		{Name: "code", Category: config.CategoryDevelopment, Keywords: []string{"code", "library"}, Reliability: 0.5},
	}

	out := Select(catalog, "find a code library for parsing", models.RolePlanner)
	require.NotEmpty(t, out)
	assert.Equal(t, "code", out[0].Name)
}

func TestSelectRoleAffinityBreaksKeywordSilence(t *testing.T) {
	catalog := []config.APIEndpoint{
		{Name: "data-api", Category: config.CategoryData, Keywords: []string{"zzz"}, Reliability: 0.5},
		{Name: "ui-api", Category: config.CategoryUI, Keywords: []string{"zzz"}, Reliability: 0.5},
	}

	out := Select(catalog, "no overlapping words here", models.RoleUIRefiner)
	require.NotEmpty(t, out)
	assert.Equal(t, "ui-api", out[0].Name)
}

func TestSelectDeterministicTieBreak(t *testing.T) {
	catalog := []config.APIEndpoint{
		{Name: "first", Category: "misc", Keywords: []string{"zzz"}, Reliability: 0.5},
		{Name: "second", Category: "misc", Keywords: []string{"zzz"}, Reliability: 0.5},
	}

	for i := 0; i < 10; i++ {
		out := Select(catalog, "identical scores", models.RolePlanner)
		require.Len(t, out, 2)
		assert.Equal(t, "first", out[0].Name, "ties keep catalog order")
	}
}

func TestSelectReliabilityTieBreak(t *testing.T) {
	catalog := []config.APIEndpoint{
		{Name: "flaky", Category: "misc", Keywords: []string{"zzz"}, Reliability: 0.2},
		{Name: "solid", Category: "misc", Keywords: []string{"zzz"}, Reliability: 0.9},
	}

	out := Select(catalog, "nothing matches", models.RolePlanner)
	require.Len(t, out, 2)
	assert.Equal(t, "solid", out[0].Name)
}

func TestTokenize(t *testing.T) {
	words := tokenize("Build a REST API, quickly! (v2)")
	assert.True(t, words["build"])
	assert.True(t, words["rest"])
	assert.True(t, words["api"], "punctuation is trimmed")
	assert.False(t, words["api,"])
	assert.True(t, words["quickly"])
	assert.False(t, words["a"], "short words are dropped")
	assert.False(t, words["v2"], "two-character words are dropped")
}
