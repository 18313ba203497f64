// Package config loads and validates the stagehand runtime configuration:
// the enumerated environment options plus the API catalog (built-in entries
// merged with an optional catalog.yaml overlay).
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/stagehand-project/stagehand/pkg/version"
)

// KnowledgeConfig bounds the KNOWLEDGE-phase auto-connection subsystem.
type KnowledgeConfig struct {
	MaxConcurrency      int           // fetcher semaphore width
	Timeout             time.Duration // per-fetch deadline
	ConfidenceThreshold float64       // informational floor for "reliable"
	MaxResponseSize     int           // max synthesized answer bytes
	AutoConnectEnabled  bool          // turn KNOWLEDGE fetching on/off
	MaxContentLength    int64         // HTTP client body cap in bytes
	UserAgent           string        // outbound UA header
}

// RateLimitConfig is the per-host token bucket shape.
type RateLimitConfig struct {
	RequestsPerMinute int           // bucket capacity per host
	Window            time.Duration // sliding window
}

// SSRFConfig controls the outbound URL guard.
type SSRFConfig struct {
	Enabled      bool
	AllowedHosts []string // optional allowlist, "*." prefix wildcards supported
}

// VerificationConfig holds the verification gate thresholds.
type VerificationConfig struct {
	CompletionThreshold  int     // minimum completion % for PASS
	EffectivenessMinimum float64 // minimum reasoning effectiveness for PASS
}

// EffectivenessConfig clamps the reasoning-effectiveness scalar.
type EffectivenessConfig struct {
	Initial float64
	Min     float64
	Max     float64
}

// RetentionConfig drives the archival sweep.
type RetentionConfig struct {
	ArchiveAfter    time.Duration // inactivity before a session is archived
	CleanupInterval time.Duration // sweep cadence
}

// Config is the immutable runtime configuration.
type Config struct {
	Knowledge     KnowledgeConfig
	RateLimit     RateLimitConfig
	SSRF          SSRFConfig
	Verification  VerificationConfig
	Effectiveness EffectivenessConfig
	Retention     RetentionConfig

	// Catalog is the merged API registry: built-in entries overlaid with
	// catalog.yaml from the config directory. Read-only after Initialize.
	Catalog []APIEndpoint
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read the enumerated environment options, applying defaults
//  2. Load catalog.yaml from configDir (optional) and merge over built-ins
//  3. Validate option ranges and catalog entries
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	catalog, err := loadCatalog(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load API catalog: %w", err)
	}
	cfg.Catalog = catalog

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"catalog_endpoints", len(cfg.Catalog),
		"auto_connection", cfg.Knowledge.AutoConnectEnabled,
		"ssrf_protection", cfg.SSRF.Enabled)

	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{
		Knowledge: KnowledgeConfig{
			MaxConcurrency:      2,
			Timeout:             4000 * time.Millisecond,
			ConfidenceThreshold: 0.4,
			MaxResponseSize:     5000,
			AutoConnectEnabled:  true,
			MaxContentLength:    2 << 20, // 2 MiB
			UserAgent:           version.Full(),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 5,
			Window:            60 * time.Second,
		},
		SSRF: SSRFConfig{
			Enabled: true,
		},
		Verification: VerificationConfig{
			CompletionThreshold:  95,
			EffectivenessMinimum: 0.7,
		},
		Effectiveness: EffectivenessConfig{
			Initial: 0.8,
			Min:     0.3,
			Max:     1.0,
		},
		Retention: RetentionConfig{
			ArchiveAfter:    24 * time.Hour,
			CleanupInterval: time.Hour,
		},
	}

	var err error
	if cfg.Knowledge.MaxConcurrency, err = envInt("KNOWLEDGE_MAX_CONCURRENCY", cfg.Knowledge.MaxConcurrency); err != nil {
		return nil, err
	}
	if ms, err := envInt("KNOWLEDGE_TIMEOUT_MS", int(cfg.Knowledge.Timeout/time.Millisecond)); err != nil {
		return nil, err
	} else {
		cfg.Knowledge.Timeout = time.Duration(ms) * time.Millisecond
	}
	if cfg.Knowledge.ConfidenceThreshold, err = envFloat("KNOWLEDGE_CONFIDENCE_THRESHOLD", cfg.Knowledge.ConfidenceThreshold); err != nil {
		return nil, err
	}
	if cfg.Knowledge.MaxResponseSize, err = envInt("KNOWLEDGE_MAX_RESPONSE_SIZE", cfg.Knowledge.MaxResponseSize); err != nil {
		return nil, err
	}
	if cfg.Knowledge.AutoConnectEnabled, err = envBool("AUTO_CONNECTION_ENABLED", cfg.Knowledge.AutoConnectEnabled); err != nil {
		return nil, err
	}
	if n, err := envInt("MAX_CONTENT_LENGTH", int(cfg.Knowledge.MaxContentLength)); err != nil {
		return nil, err
	} else {
		cfg.Knowledge.MaxContentLength = int64(n)
	}
	if ua := os.Getenv("USER_AGENT"); ua != "" {
		cfg.Knowledge.UserAgent = ua
	}

	if cfg.RateLimit.RequestsPerMinute, err = envInt("RATE_LIMIT_REQUESTS_PER_MINUTE", cfg.RateLimit.RequestsPerMinute); err != nil {
		return nil, err
	}
	if ms, err := envInt("RATE_LIMIT_WINDOW_MS", int(cfg.RateLimit.Window/time.Millisecond)); err != nil {
		return nil, err
	} else {
		cfg.RateLimit.Window = time.Duration(ms) * time.Millisecond
	}

	if cfg.SSRF.Enabled, err = envBool("ENABLE_SSRF_PROTECTION", cfg.SSRF.Enabled); err != nil {
		return nil, err
	}
	if hosts := os.Getenv("ALLOWED_HOSTS"); hosts != "" {
		for _, h := range strings.Split(hosts, ",") {
			if h = strings.TrimSpace(h); h != "" {
				cfg.SSRF.AllowedHosts = append(cfg.SSRF.AllowedHosts, strings.ToLower(h))
			}
		}
	}

	if cfg.Verification.CompletionThreshold, err = envInt("VERIFICATION_COMPLETION_THRESHOLD", cfg.Verification.CompletionThreshold); err != nil {
		return nil, err
	}
	if cfg.Verification.EffectivenessMinimum, err = envFloat("EXECUTION_SUCCESS_RATE_THRESHOLD", cfg.Verification.EffectivenessMinimum); err != nil {
		return nil, err
	}

	if cfg.Effectiveness.Initial, err = envFloat("INITIAL_REASONING_EFFECTIVENESS", cfg.Effectiveness.Initial); err != nil {
		return nil, err
	}
	if cfg.Effectiveness.Min, err = envFloat("MIN_REASONING_EFFECTIVENESS", cfg.Effectiveness.Min); err != nil {
		return nil, err
	}
	if cfg.Effectiveness.Max, err = envFloat("MAX_REASONING_EFFECTIVENESS", cfg.Effectiveness.Max); err != nil {
		return nil, err
	}

	if cfg.Retention.ArchiveAfter, err = envDuration("SESSION_ARCHIVE_AFTER", cfg.Retention.ArchiveAfter); err != nil {
		return nil, err
	}
	if cfg.Retention.CleanupInterval, err = envDuration("CLEANUP_INTERVAL", cfg.Retention.CleanupInterval); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate range-checks every option; any violation is a startup error.
func (c *Config) validate() error {
	k := c.Knowledge
	if k.MaxConcurrency < 1 || k.MaxConcurrency > 10 {
		return NewValidationError("option", "KNOWLEDGE_MAX_CONCURRENCY", "", fmt.Errorf("%w: must be in [1, 10], got %d", ErrInvalidValue, k.MaxConcurrency))
	}
	if k.Timeout < 1000*time.Millisecond || k.Timeout > 30000*time.Millisecond {
		return NewValidationError("option", "KNOWLEDGE_TIMEOUT_MS", "", fmt.Errorf("%w: must be in [1000, 30000], got %d", ErrInvalidValue, k.Timeout/time.Millisecond))
	}
	if k.ConfidenceThreshold < 0 || k.ConfidenceThreshold > 1 {
		return NewValidationError("option", "KNOWLEDGE_CONFIDENCE_THRESHOLD", "", fmt.Errorf("%w: must be in [0.0, 1.0], got %g", ErrInvalidValue, k.ConfidenceThreshold))
	}
	if k.MaxResponseSize <= 0 {
		return NewValidationError("option", "KNOWLEDGE_MAX_RESPONSE_SIZE", "", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, k.MaxResponseSize))
	}
	if k.MaxContentLength <= 0 {
		return NewValidationError("option", "MAX_CONTENT_LENGTH", "", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, k.MaxContentLength))
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return NewValidationError("option", "RATE_LIMIT_REQUESTS_PER_MINUTE", "", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, c.RateLimit.RequestsPerMinute))
	}
	if c.RateLimit.Window <= 0 {
		return NewValidationError("option", "RATE_LIMIT_WINDOW_MS", "", fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, c.RateLimit.Window))
	}

	v := c.Verification
	if v.CompletionThreshold < 50 || v.CompletionThreshold > 100 {
		return NewValidationError("option", "VERIFICATION_COMPLETION_THRESHOLD", "", fmt.Errorf("%w: must be in [50, 100], got %d", ErrInvalidValue, v.CompletionThreshold))
	}
	if v.EffectivenessMinimum < 0 || v.EffectivenessMinimum > 1 {
		return NewValidationError("option", "EXECUTION_SUCCESS_RATE_THRESHOLD", "", fmt.Errorf("%w: must be in [0.0, 1.0], got %g", ErrInvalidValue, v.EffectivenessMinimum))
	}

	e := c.Effectiveness
	if e.Min < 0 || e.Max > 1 || e.Min > e.Max {
		return NewValidationError("option", "MIN/MAX_REASONING_EFFECTIVENESS", "", fmt.Errorf("%w: require 0 <= min <= max <= 1, got min=%g max=%g", ErrInvalidValue, e.Min, e.Max))
	}
	if e.Initial < e.Min || e.Initial > e.Max {
		return NewValidationError("option", "INITIAL_REASONING_EFFECTIVENESS", "", fmt.Errorf("%w: must be in [%g, %g], got %g", ErrInvalidValue, e.Min, e.Max, e.Initial))
	}

	if c.Retention.ArchiveAfter <= 0 {
		return NewValidationError("option", "SESSION_ARCHIVE_AFTER", "", fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, c.Retention.ArchiveAfter))
	}
	if c.Retention.CleanupInterval <= 0 {
		return NewValidationError("option", "CLEANUP_INTERVAL", "", fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, c.Retention.CleanupInterval))
	}

	return validateCatalog(c.Catalog)
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, NewValidationError("option", key, "", fmt.Errorf("%w: not an integer: %q", ErrInvalidValue, v))
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, NewValidationError("option", key, "", fmt.Errorf("%w: not a number: %q", ErrInvalidValue, v))
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, NewValidationError("option", key, "", fmt.Errorf("%w: not a boolean: %q", ErrInvalidValue, v))
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, NewValidationError("option", key, "", fmt.Errorf("%w: not a duration: %q", ErrInvalidValue, v))
	}
	return d, nil
}
