package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Knowledge.MaxConcurrency)
	assert.Equal(t, 4*time.Second, cfg.Knowledge.Timeout)
	assert.True(t, cfg.Knowledge.AutoConnectEnabled)
	assert.True(t, cfg.SSRF.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 95, cfg.Verification.CompletionThreshold)
	assert.InDelta(t, 0.7, cfg.Verification.EffectivenessMinimum, 1e-9)
	assert.InDelta(t, 0.8, cfg.Effectiveness.Initial, 1e-9)
	assert.Equal(t, 24*time.Hour, cfg.Retention.ArchiveAfter)
	assert.NotEmpty(t, cfg.Catalog)
}

func TestInitializeEnvOverrides(t *testing.T) {
	t.Setenv("KNOWLEDGE_MAX_CONCURRENCY", "4")
	t.Setenv("KNOWLEDGE_TIMEOUT_MS", "2500")
	t.Setenv("AUTO_CONNECTION_ENABLED", "false")
	t.Setenv("ENABLE_SSRF_PROTECTION", "false")
	t.Setenv("ALLOWED_HOSTS", "API.Example.com, *.trusted.org ,")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MINUTE", "9")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "30000")
	t.Setenv("VERIFICATION_COMPLETION_THRESHOLD", "80")
	t.Setenv("INITIAL_REASONING_EFFECTIVENESS", "0.6")
	t.Setenv("SESSION_ARCHIVE_AFTER", "48h")
	t.Setenv("USER_AGENT", "custom-agent/1.0")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Knowledge.MaxConcurrency)
	assert.Equal(t, 2500*time.Millisecond, cfg.Knowledge.Timeout)
	assert.False(t, cfg.Knowledge.AutoConnectEnabled)
	assert.False(t, cfg.SSRF.Enabled)
	assert.Equal(t, []string{"api.example.com", "*.trusted.org"}, cfg.SSRF.AllowedHosts)
	assert.Equal(t, 9, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 80, cfg.Verification.CompletionThreshold)
	assert.InDelta(t, 0.6, cfg.Effectiveness.Initial, 1e-9)
	assert.Equal(t, 48*time.Hour, cfg.Retention.ArchiveAfter)
	assert.Equal(t, "custom-agent/1.0", cfg.Knowledge.UserAgent)
}

func TestInitializeRejectsMalformedEnv(t *testing.T) {
	t.Setenv("KNOWLEDGE_MAX_CONCURRENCY", "not-a-number")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"concurrency too high", "KNOWLEDGE_MAX_CONCURRENCY", "11"},
		{"concurrency zero", "KNOWLEDGE_MAX_CONCURRENCY", "0"},
		{"timeout too low", "KNOWLEDGE_TIMEOUT_MS", "500"},
		{"timeout too high", "KNOWLEDGE_TIMEOUT_MS", "60000"},
		{"confidence out of range", "KNOWLEDGE_CONFIDENCE_THRESHOLD", "1.5"},
		{"response size not positive", "KNOWLEDGE_MAX_RESPONSE_SIZE", "0"},
		{"rate limit not positive", "RATE_LIMIT_REQUESTS_PER_MINUTE", "0"},
		{"completion threshold too low", "VERIFICATION_COMPLETION_THRESHOLD", "40"},
		{"completion threshold too high", "VERIFICATION_COMPLETION_THRESHOLD", "101"},
		{"effectiveness minimum out of range", "EXECUTION_SUCCESS_RATE_THRESHOLD", "2"},
		{"initial outside clamp", "INITIAL_REASONING_EFFECTIVENESS", "0.1"},
		{"archive after not positive", "SESSION_ARCHIVE_AFTER", "-1h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Initialize(context.Background(), t.TempDir())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestLoadCatalogOverlay(t *testing.T) {
	dir := t.TempDir()
	overlay := `
endpoints:
  - name: wikipedia-summary
    reliability: 0.5
  - name: internal-docs
    url: https://docs.internal.example.com/api
    category: knowledge
    keywords: [docs, internal]
    auth_type: api_key
    reliability: 0.99
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFileName), []byte(overlay), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	byName := make(map[string]APIEndpoint, len(cfg.Catalog))
	for _, e := range cfg.Catalog {
		byName[e.Name] = e
	}

	// Overridden entry: user reliability wins, unset fields keep built-ins.
	wiki, ok := byName["wikipedia-summary"]
	require.True(t, ok)
	assert.InDelta(t, 0.5, wiki.Reliability, 1e-9)
	assert.NotEmpty(t, wiki.URL, "built-in URL survives the overlay")
	assert.Equal(t, CategoryKnowledge, wiki.Category)

	// Appended entry.
	docs, ok := byName["internal-docs"]
	require.True(t, ok)
	assert.Equal(t, "https://docs.internal.example.com/api", docs.URL)
	assert.Equal(t, AuthAPIKey, docs.AuthType)

	assert.Len(t, cfg.Catalog, len(BuiltinCatalog())+1)
}

func TestLoadCatalogRejectsBadOverlay(t *testing.T) {
	t.Run("unnamed entry", func(t *testing.T) {
		dir := t.TempDir()
		overlay := "endpoints:\n  - url: https://example.com/\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFileName), []byte(overlay), 0o644))

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFileName), []byte("endpoints: ["), 0o644))

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
	})

	t.Run("bad endpoint url fails validation", func(t *testing.T) {
		dir := t.TempDir()
		overlay := "endpoints:\n  - name: broken\n    url: not-a-url\n    auth_type: none\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFileName), []byte(overlay), 0o644))

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestBuiltinCatalogIsValid(t *testing.T) {
	assert.NoError(t, validateCatalog(BuiltinCatalog()))
}
