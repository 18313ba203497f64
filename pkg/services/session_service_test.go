package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/ent/statesession"
	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/test/util"
)

func TestSessionService_GetOrCreate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewSessionService(client)
	ctx := context.Background()

	t.Run("creates a fresh session at INIT", func(t *testing.T) {
		id := uuid.NewString()
		session, created, err := service.GetOrCreate(ctx, CreateParams{
			SessionID:     id,
			Objective:     "build a report generator",
			Role:          models.RoleCoder,
			Effectiveness: 0.8,
			Payload:       models.Payload{"detected_role": "coder"},
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, id, session.ID)
		assert.Equal(t, statesession.CurrentPhaseINIT, session.CurrentPhase)
		assert.Equal(t, "coder", session.DetectedRole)
		assert.EqualValues(t, 0, session.Revision)
		assert.InDelta(t, 0.8, session.ReasoningEffectiveness, 1e-9)
	})

	t.Run("returns the existing session unchanged", func(t *testing.T) {
		id := uuid.NewString()
		_, created, err := service.GetOrCreate(ctx, CreateParams{
			SessionID: id, Objective: "first objective", Role: models.RolePlanner, Effectiveness: 0.8,
		})
		require.NoError(t, err)
		require.True(t, created)

		again, created, err := service.GetOrCreate(ctx, CreateParams{
			SessionID: id, Objective: "different objective", Role: models.RoleCoder, Effectiveness: 0.5,
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "first objective", again.Objective)
		assert.Equal(t, string(models.RolePlanner), again.DetectedRole)
	})

	t.Run("rejects a malformed session id", func(t *testing.T) {
		_, _, err := service.GetOrCreate(ctx, CreateParams{SessionID: "bad id!", Objective: "x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires an objective on first contact", func(t *testing.T) {
		_, _, err := service.GetOrCreate(ctx, CreateParams{SessionID: uuid.NewString()})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_Get(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewSessionService(client)

	_, err := service.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_ApplyTransition(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewSessionService(client)
	ctx := context.Background()

	newSession := func(t *testing.T) string {
		t.Helper()
		id := uuid.NewString()
		_, created, err := service.GetOrCreate(ctx, CreateParams{
			SessionID: id, Objective: "obj", Role: models.RolePlanner, Effectiveness: 0.8,
			Payload: models.Payload{},
		})
		require.NoError(t, err)
		require.True(t, created)
		return id
	}

	t.Run("commits and bumps the revision", func(t *testing.T) {
		id := newSession(t)
		updated, err := service.ApplyTransition(ctx, id, 0, TransitionUpdate{
			Phase:           models.PhaseQuery,
			Payload:         models.Payload{"phase_transition_count": 1},
			Effectiveness:   0.8,
			TransitionCount: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, statesession.CurrentPhaseQUERY, updated.CurrentPhase)
		assert.EqualValues(t, 1, updated.Revision)
		assert.Equal(t, 1, updated.PhaseTransitionCount)
	})

	t.Run("records completion hash and role override", func(t *testing.T) {
		id := newSession(t)
		hash := models.CompletionHash(models.PhaseQuery, models.Payload{"k": "v"})
		updated, err := service.ApplyTransition(ctx, id, 0, TransitionUpdate{
			Phase:           models.PhaseEnhance,
			Payload:         models.Payload{},
			Effectiveness:   0.8,
			CompletionHash:  hash,
			TransitionCount: 2,
			Role:            models.RoleCoder,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.LastCompletionHash)
		assert.Equal(t, hash, *updated.LastCompletionHash)
		assert.Equal(t, string(models.RoleCoder), updated.DetectedRole)
	})

	t.Run("stale revision is a concurrent modification", func(t *testing.T) {
		id := newSession(t)
		_, err := service.ApplyTransition(ctx, id, 0, TransitionUpdate{
			Phase: models.PhaseQuery, Payload: models.Payload{}, Effectiveness: 0.8, TransitionCount: 1,
		})
		require.NoError(t, err)

		_, err = service.ApplyTransition(ctx, id, 0, TransitionUpdate{
			Phase: models.PhaseEnhance, Payload: models.Payload{}, Effectiveness: 0.8, TransitionCount: 2,
		})
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("unknown session reports not found", func(t *testing.T) {
		_, err := service.ApplyTransition(ctx, uuid.NewString(), 0, TransitionUpdate{
			Phase: models.PhaseQuery, Payload: models.Payload{}, Effectiveness: 0.8,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_List(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewSessionService(client)
	ctx := context.Background()

	ids := make([]string, 5)
	for i := range ids {
		ids[i] = fmt.Sprintf("list-test-%d-%s", i, uuid.NewString()[:8])
		_, _, err := service.GetOrCreate(ctx, CreateParams{
			SessionID: ids[i], Objective: "obj", Role: models.RolePlanner, Effectiveness: 0.8,
			Payload: models.Payload{},
		})
		require.NoError(t, err)
	}
	// Advance one session so the phase filter has something to find.
	_, err := service.ApplyTransition(ctx, ids[0], 0, TransitionUpdate{
		Phase: models.PhaseQuery, Payload: models.Payload{}, Effectiveness: 0.8, TransitionCount: 1,
	})
	require.NoError(t, err)

	t.Run("pages newest activity first", func(t *testing.T) {
		res, err := service.List(ctx, models.SessionListParams{Page: 1, PageSize: 3})
		require.NoError(t, err)
		assert.Equal(t, 5, res.TotalCount)
		assert.Len(t, res.Sessions, 3)
		// ids[0] was touched last by the transition.
		assert.Equal(t, ids[0], res.Sessions[0].SessionID)
	})

	t.Run("filters by phase", func(t *testing.T) {
		res, err := service.List(ctx, models.SessionListParams{Phase: "QUERY"})
		require.NoError(t, err)
		require.Len(t, res.Sessions, 1)
		assert.Equal(t, ids[0], res.Sessions[0].SessionID)
	})

	t.Run("rejects an unknown phase filter", func(t *testing.T) {
		_, err := service.List(ctx, models.SessionListParams{Phase: "NOPE"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("clamps out-of-range paging", func(t *testing.T) {
		res, err := service.List(ctx, models.SessionListParams{Page: -3, PageSize: 9999})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 20, res.PageSize)
	})
}

func TestSessionService_ArchiveInactive(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	service := NewSessionService(client)
	ctx := context.Background()

	mkSession := func(t *testing.T, phase models.Phase) string {
		t.Helper()
		id := uuid.NewString()
		_, _, err := service.GetOrCreate(ctx, CreateParams{
			SessionID: id, Objective: "obj", Role: models.RolePlanner, Effectiveness: 0.8,
			Payload: models.Payload{},
		})
		require.NoError(t, err)
		if phase != models.PhaseInit {
			_, err = service.ApplyTransition(ctx, id, 0, TransitionUpdate{
				Phase: phase, Payload: models.Payload{}, Effectiveness: 0.8, TransitionCount: 1,
			})
			require.NoError(t, err)
		}
		return id
	}

	doneID := mkSession(t, models.PhaseDone)
	abandonedID := mkSession(t, models.PhaseExecute)

	t.Run("archives stale sessions regardless of phase", func(t *testing.T) {
		// Cutoff in the future: both sessions are stale by time; the one
		// abandoned mid-EXECUTE is evicted the same as the finished one.
		n, err := service.ArchiveInactive(ctx, time.Now().Add(time.Hour), 100)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = service.Get(ctx, doneID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = service.Get(ctx, abandonedID)
		assert.ErrorIs(t, err, ErrNotFound)

		archived, err := client.ArchivedSession.Get(ctx, doneID)
		require.NoError(t, err)
		assert.Equal(t, string(models.PhaseDone), archived.FinalPhase)
		assert.Equal(t, "obj", archived.Objective)

		abandoned, err := client.ArchivedSession.Get(ctx, abandonedID)
		require.NoError(t, err)
		assert.Equal(t, string(models.PhaseExecute), abandoned.FinalPhase)
	})

	t.Run("recent sessions survive the sweep", func(t *testing.T) {
		id := mkSession(t, models.PhaseDone)
		n, err := service.ArchiveInactive(ctx, time.Now().Add(-time.Hour), 100)
		require.NoError(t, err)
		assert.Zero(t, n)
		_, err = service.Get(ctx, id)
		assert.NoError(t, err)
	})
}
