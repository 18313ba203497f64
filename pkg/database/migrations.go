package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePayloadIndexes creates JSONB GIN indexes on the payload columns.
// These enable containment queries over session payloads (for example
// filtering sessions by a payload key) without full-table scans. Ent's
// schema DSL cannot express GIN indexes, so they live here.
func CreatePayloadIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_state_sessions_payload_gin
		ON state_sessions USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create state_sessions payload GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_archived_sessions_payload_gin
		ON archived_sessions USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create archived_sessions payload GIN index: %w", err)
	}

	return nil
}
