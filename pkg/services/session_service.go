// Package services holds the data-access layer between the orchestrator
// and the Ent client.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stagehand-project/stagehand/ent"
	"github.com/stagehand-project/stagehand/ent/statesession"
	"github.com/stagehand-project/stagehand/pkg/models"
)

// SessionService manages workflow session lifecycle and state persistence.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateParams carries everything needed to start a fresh session.
type CreateParams struct {
	SessionID     string
	Objective     string
	Role          models.Role
	Effectiveness float64
	Payload       models.Payload
}

// GetOrCreate returns the existing session or creates a fresh one at INIT.
// The boolean reports whether a session was created.
func (s *SessionService) GetOrCreate(httpCtx context.Context, p CreateParams) (*ent.StateSession, bool, error) {
	if !models.ValidSessionID(p.SessionID) {
		return nil, false, NewValidationError("session_id", "must match ^[A-Za-z0-9_-]{1,128}$")
	}

	existing, err := s.Get(httpCtx, p.SessionID)
	if err == nil {
		return existing, false, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}

	if p.Objective == "" {
		return nil, false, NewValidationError("initial_objective", "required on first call for a session")
	}

	// Background context with timeout: a dropped client connection must not
	// abandon a half-created session.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.client.StateSession.Create().
		SetID(p.SessionID).
		SetObjective(p.Objective).
		SetDetectedRole(string(p.Role)).
		SetCurrentPhase(statesession.CurrentPhaseINIT).
		SetPayload(map[string]interface{}(p.Payload)).
		SetReasoningEffectiveness(p.Effectiveness).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the winner's row is authoritative.
			winner, getErr := s.Get(ctx, p.SessionID)
			if getErr != nil {
				return nil, false, getErr
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("failed to create session: %w", err)
	}
	return created, true, nil
}

// Get fetches a session by ID.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.StateSession, error) {
	session, err := s.client.StateSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// TransitionUpdate is the state written by one applied transition.
type TransitionUpdate struct {
	Phase           models.Phase
	Payload         models.Payload
	Effectiveness   float64
	CompletionHash  string
	TransitionCount int
	// Role is set when a QUERY completion overrides the detected role.
	Role models.Role
}

// ApplyTransition commits a transition with optimistic locking: the update
// only lands if the stored revision still equals expectedRevision, and the
// revision advances by one. A stale revision returns
// ErrConcurrentModification; callers re-read and re-derive.
func (s *SessionService) ApplyTransition(httpCtx context.Context, sessionID string, expectedRevision int64, u TransitionUpdate) (*ent.StateSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.StateSession.Update().
		Where(
			statesession.IDEQ(sessionID),
			statesession.RevisionEQ(expectedRevision),
		).
		SetCurrentPhase(statesession.CurrentPhase(u.Phase)).
		SetPayload(map[string]interface{}(u.Payload)).
		SetReasoningEffectiveness(u.Effectiveness).
		SetPhaseTransitionCount(u.TransitionCount).
		SetRevision(expectedRevision + 1).
		SetLastActivityAt(time.Now())

	if u.CompletionHash != "" {
		builder.SetLastCompletionHash(u.CompletionHash)
	}
	if u.Role != "" {
		builder.SetDetectedRole(string(u.Role))
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	if n == 0 {
		if _, getErr := s.Get(ctx, sessionID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrConcurrentModification
	}

	return s.Get(ctx, sessionID)
}

// List returns one page of sessions, newest activity first, optionally
// filtered by current phase.
func (s *SessionService) List(ctx context.Context, params models.SessionListParams) (*models.SessionListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	query := s.client.StateSession.Query()
	if params.Phase != "" {
		phase, err := models.ParsePhase(params.Phase)
		if err != nil {
			return nil, NewValidationError("phase", "unknown phase "+params.Phase)
		}
		query = query.Where(statesession.CurrentPhaseEQ(statesession.CurrentPhase(phase)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(statesession.FieldLastActivityAt)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := &models.SessionListResult{
		Sessions:   make([]models.SessionDetail, 0, len(rows)),
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: total,
	}
	for _, row := range rows {
		result.Sessions = append(result.Sessions, ToDetail(row))
	}
	return result, nil
}

// ToDetail converts a session row to its read-model.
func ToDetail(row *ent.StateSession) models.SessionDetail {
	return models.SessionDetail{
		SessionID:              row.ID,
		CurrentPhase:           models.Phase(row.CurrentPhase),
		InitialObjective:       row.Objective,
		DetectedRole:           models.Role(row.DetectedRole),
		ReasoningEffectiveness: row.ReasoningEffectiveness,
		Revision:               int(row.Revision),
		Payload:                models.Payload(row.Payload),
		LastActivity:           row.LastActivityAt,
		CreatedAt:              row.CreatedAt,
	}
}

// ArchiveInactive moves sessions whose last activity predates cutoff into
// the archive table, regardless of phase: an abandoned mid-workflow
// session is evicted the same as a finished one. Returns the number of
// sessions archived.
func (s *SessionService) ArchiveInactive(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	stale, err := s.client.StateSession.Query().
		Where(statesession.LastActivityAtLT(cutoff)).
		Order(ent.Asc(statesession.FieldLastActivityAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale sessions: %w", err)
	}

	archived := 0
	for _, row := range stale {
		if err := s.archiveOne(ctx, row); err != nil {
			return archived, err
		}
		archived++
	}
	return archived, nil
}

// archiveOne snapshots and removes one session in a transaction.
func (s *SessionService) archiveOne(ctx context.Context, row *ent.StateSession) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.ArchivedSession.Create().
		SetID(row.ID).
		SetObjective(row.Objective).
		SetDetectedRole(row.DetectedRole).
		SetFinalPhase(string(row.CurrentPhase)).
		SetPayload(row.Payload).
		SetReasoningEffectiveness(row.ReasoningEffectiveness).
		SetRevision(row.Revision).
		SetPhaseTransitionCount(row.PhaseTransitionCount).
		SetCreatedAt(row.CreatedAt).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to archive session %s: %w", row.ID, err)
	}

	if err := tx.StateSession.DeleteOneID(row.ID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete archived session %s: %w", row.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit archive transaction: %w", err)
	}
	return nil
}
