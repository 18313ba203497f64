// Package knowledge implements the KNOWLEDGE-phase auto-connection
// subsystem: endpoint selection from the API catalog, SSRF-guarded
// bounded-concurrency fetching with per-host rate limits, response
// truncation, and confidence-scored synthesis.
package knowledge

// ErrorType classifies a failed fetch. Failures are values carried on the
// FetchResult; they never abort sibling fetches.
type ErrorType string

const (
	ErrTimeout     ErrorType = "timeout"
	ErrNetwork     ErrorType = "network"
	ErrHTTP        ErrorType = "http_4xx_5xx"
	ErrRateLimit   ErrorType = "rate_limit"
	ErrSSRFBlocked ErrorType = "ssrf_blocked"
	// ErrCanceled maps caller-initiated cancellation. The wire name is
	// kept for compatibility with consumers of the original taxonomy.
	ErrCanceled ErrorType = "promise_rejected"
	ErrUnknown  ErrorType = "unknown"
)

// FetchError is the structured error attached to a failed FetchResult.
type FetchError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

// FetchResult is the outcome of fetching one catalog endpoint.
// Index preserves the caller's input order for deterministic reporting
// regardless of completion order. When an alternate endpoint succeeded
// after the primary failed, Endpoint names both URLs and Corrected is set.
type FetchResult struct {
	Endpoint   string            `json:"endpoint"`
	Name       string            `json:"name"`
	Index      int               `json:"index"`
	Success    bool              `json:"success"`
	Status     int               `json:"status,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"` // at most 10
	Body       string            `json:"body,omitempty"`    // truncated
	Size       int               `json:"size"`
	DurationMS int64             `json:"duration_ms"`
	Error      *FetchError       `json:"error,omitempty"`
	Corrected  bool              `json:"corrected"`
	// Reliability is copied from the catalog entry for synthesis scoring.
	Reliability float64 `json:"-"`
}

// Synthesis is the combined knowledge artifact produced from a fetch
// round. Confidence is monotone non-decreasing in the number of
// successful fetches; zero successes yield confidence 0 and a fallback
// answer directing the worker to its manual tools.
type Synthesis struct {
	Answer         string   `json:"answer"`
	Contradictions []string `json:"contradictions"`
	Confidence     float64  `json:"confidence"`
}

// UsageMetrics summarizes a fetch round for telemetry payload keys.
type UsageMetrics struct {
	Requested       int   `json:"requested"`
	Succeeded       int   `json:"succeeded"`
	Failed          int   `json:"failed"`
	RateLimited     int   `json:"rate_limited"`
	SSRFBlocked     int   `json:"ssrf_blocked"`
	Corrected       int   `json:"corrected"`
	TotalDurationMS int64 `json:"total_duration_ms"`
}

// MetricsFor aggregates usage metrics over a fetch round.
func MetricsFor(results []FetchResult) UsageMetrics {
	m := UsageMetrics{Requested: len(results)}
	for _, r := range results {
		m.TotalDurationMS += r.DurationMS
		if r.Success {
			m.Succeeded++
			if r.Corrected {
				m.Corrected++
			}
			continue
		}
		m.Failed++
		if r.Error == nil {
			continue
		}
		switch r.Error.Type {
		case ErrRateLimit:
			m.RateLimited++
		case ErrSSRFBlocked:
			m.SSRFBlocked++
		}
	}
	return m
}
