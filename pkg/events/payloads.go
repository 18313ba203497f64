package events

// PhaseTransitionPayload is the payload for phase.transition events.
// Published after every applied state transition, including re-issues.
type PhaseTransitionPayload struct {
	Type            string `json:"type"` // always EventTypePhaseTransition
	SessionID       string `json:"session_id"`
	FromPhase       string `json:"from_phase"`
	ToPhase         string `json:"to_phase"`
	PhaseCompleted  string `json:"phase_completed,omitempty"` // empty on initial INIT
	Revision        int64  `json:"revision"`
	TransitionCount int    `json:"transition_count"`
	Reissued        bool   `json:"reissued"` // mismatched completion, phase re-issued
	Timestamp       string `json:"timestamp"` // RFC3339Nano
}

// SessionStatusPayload is the payload for session.status events.
type SessionStatusPayload struct {
	Type      string `json:"type"` // always EventTypeSessionStatus
	SessionID string `json:"session_id"`
	Status    string `json:"status"` // created, done, archived
	Phase     string `json:"phase"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// KnowledgeFetchPayload is the payload for knowledge.fetch transient
// events, one per endpoint queried in a KNOWLEDGE round.
type KnowledgeFetchPayload struct {
	Type       string `json:"type"` // always EventTypeKnowledgeFetch
	SessionID  string `json:"session_id"`
	Endpoint   string `json:"endpoint"`
	Name       string `json:"name"`
	Success    bool   `json:"success"`
	Corrected  bool   `json:"corrected"`
	ErrorType  string `json:"error_type,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}
