package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes session telemetry.
// Persistent events are stored in the events table then broadcast via
// NOTIFY. Transient events are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Internally, payloads are marshaled to JSON and routed to
// the appropriate channel via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishPhaseTransition persists and broadcasts a phase.transition event.
func (p *EventPublisher) PublishPhaseTransition(ctx context.Context, sessionID string, payload PhaseTransitionPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PhaseTransitionPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON)
}

// PublishSessionStatus persists a session status event to the session
// channel and broadcasts a transient copy to the global sessions channel.
// Both publishes are best-effort: if the persistent one fails, the
// transient one is still attempted. Returns the first error encountered.
func (p *EventPublisher) PublishSessionStatus(ctx context.Context, sessionID string, payload SessionStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish session status to session channel",
			"session_id", sessionID, "status", payload.Status, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish session status to global channel",
			"session_id", sessionID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishKnowledgeFetch broadcasts a knowledge.fetch transient event
// (no DB persistence).
func (p *EventPublisher) PublishKnowledgeFetch(ctx context.Context, sessionID string, payload KnowledgeFetchPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal KnowledgeFetchPayload: %w", err)
	}
	return p.notifyOnly(ctx, SessionChannel(sessionID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, sessionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		sessionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without
// persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, keeping only the routing fields a subscriber
// needs to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
