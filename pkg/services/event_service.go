package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// EventService reads the persisted event log. Events are written by the
// publisher with raw SQL in the same transaction as the NOTIFY, so reads
// go through the *sql.DB rather than Ent.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// StoredEvent is one persisted event row with its decoded payload.
type StoredEvent struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id"`
	Channel   string          `json:"channel"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListForSession returns events for a session with id greater than
// afterID, oldest first, capped at limit. Used both by the read API and
// by subscribers catching up after a NOTIFY gap.
func (s *EventService) ListForSession(ctx context.Context, sessionID string, afterID int64, limit int) ([]StoredEvent, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, channel, payload, created_at
		 FROM events
		 WHERE session_id = $1 AND id > $2
		 ORDER BY id ASC
		 LIMIT $3`,
		sessionID, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var out []StoredEvent
	for rows.Next() {
		var e StoredEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Channel, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}
	return out, nil
}

// PruneBefore deletes events older than cutoff, returning the count
// removed. Called by the retention sweep alongside session archival.
func (s *EventService) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read pruned row count: %w", err)
	}
	return n, nil
}
