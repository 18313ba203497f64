// Package events publishes session telemetry via PostgreSQL NOTIFY for
// cross-replica distribution. Persistent events are stored in the events
// table then broadcast; transient events are broadcast only.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Phase lifecycle — one event per applied state transition.
	EventTypePhaseTransition = "phase.transition"

	// Session lifecycle — created, done, archived.
	EventTypeSessionStatus = "session.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-endpoint knowledge fetch outcomes — high-frequency, ephemeral.
	EventTypeKnowledgeFetch = "knowledge.fetch"
)

// Session lifecycle status values (used in SessionStatusPayload.Status).
const (
	SessionStatusCreated  = "created"
	SessionStatusDone     = "done"
	SessionStatusArchived = "archived"
)

// GlobalSessionsChannel is the channel for session-level status events.
// Dashboards subscribe to this for the session list.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}
