package orchestrator

import "errors"

// Boundary error codes. These cross the API as structured error
// responses, never as panics.
var (
	// ErrInvalidSessionID rejects a malformed session identifier.
	ErrInvalidSessionID = errors.New("invalid_session_id")

	// ErrMissingObjective rejects a first call without initial_objective.
	ErrMissingObjective = errors.New("missing_initial_objective")

	// ErrObjectiveForbidden rejects initial_objective on an existing session.
	ErrObjectiveForbidden = errors.New("initial_objective_forbidden")

	// ErrInvalidPhaseToken rejects an unknown or non-completable
	// phase_completed token.
	ErrInvalidPhaseToken = errors.New("invalid_phase_token")

	// ErrStaleRevision surfaces a lost optimistic-locking race after
	// internal retries are exhausted.
	ErrStaleRevision = errors.New("stale_revision")

	// ErrStore wraps persistence failures.
	ErrStore = errors.New("internal_store_error")
)
