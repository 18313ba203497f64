package models

import (
	"regexp"
	"time"
)

// sessionIDPattern is the boundary validation for session identifiers.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidSessionID reports whether the id satisfies the boundary regex.
func ValidSessionID(id string) bool {
	return sessionIDPattern.MatchString(id)
}

// ProcessStateRequest is the single boundary message: the worker reports
// which phase it just finished together with its completion payload.
//
// PhaseCompleted is absent on the very first call for a session.
// InitialObjective is required on that first call and forbidden afterward.
type ProcessStateRequest struct {
	SessionID        string  `json:"session_id"`
	PhaseCompleted   string  `json:"phase_completed,omitempty"`
	InitialObjective string  `json:"initial_objective,omitempty"`
	Payload          Payload `json:"payload,omitempty"`
}

// ProcessStatus is the coarse progress flag returned with every response.
type ProcessStatus string

const (
	StatusInProgress ProcessStatus = "IN_PROGRESS"
	StatusDone       ProcessStatus = "DONE"
)

// ProcessStateResponse tells the worker which phase to run next, the
// prompt for that phase, and the capability whitelist it may use.
type ProcessStateResponse struct {
	SessionID        string        `json:"session_id"`
	NextPhase        Phase         `json:"next_phase"`
	SystemPrompt     string        `json:"system_prompt"`
	AllowedNextTools []string      `json:"allowed_next_tools"`
	Status           ProcessStatus `json:"status"`
	Payload          Payload       `json:"payload,omitempty"`
}

// SessionDetail is the read-model returned by the session endpoints.
type SessionDetail struct {
	SessionID              string    `json:"session_id"`
	CurrentPhase           Phase     `json:"current_phase"`
	InitialObjective       string    `json:"initial_objective"`
	DetectedRole           Role      `json:"detected_role"`
	ReasoningEffectiveness float64   `json:"reasoning_effectiveness"`
	Revision               int       `json:"revision"`
	Payload                Payload   `json:"payload,omitempty"`
	LastActivity           time.Time `json:"last_activity"`
	CreatedAt              time.Time `json:"created_at"`
}

// SessionListParams filters and pages the session list endpoint.
type SessionListParams struct {
	Page     int
	PageSize int
	Phase    string
}

// SessionListResult is one page of sessions plus pagination metadata.
type SessionListResult struct {
	Sessions   []SessionDetail `json:"sessions"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalCount int             `json:"total_count"`
}

// TransitionEvent is the telemetry record published on every committed
// phase transition.
type TransitionEvent struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	FromPhase Phase     `json:"from_phase"`
	ToPhase   Phase     `json:"to_phase"`
	Revision  int       `json:"revision"`
	CreatedAt time.Time `json:"created_at"`
}
