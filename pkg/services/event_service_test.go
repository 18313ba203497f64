package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/events"
	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/test/util"
)

func TestEventService_ListForSession(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	publisher := events.NewEventPublisher(db)
	service := NewEventService(db)
	ctx := context.Background()

	sessionID := uuid.NewString()
	for i := 1; i <= 3; i++ {
		err := publisher.PublishPhaseTransition(ctx, sessionID, events.PhaseTransitionPayload{
			Type:            events.EventTypePhaseTransition,
			SessionID:       sessionID,
			FromPhase:       string(models.PhaseInit),
			ToPhase:         string(models.PhaseQuery),
			Revision:        int64(i),
			TransitionCount: i,
			Timestamp:       time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	t.Run("returns events oldest first", func(t *testing.T) {
		got, err := service.ListForSession(ctx, sessionID, 0, 100)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Less(t, got[0].ID, got[1].ID)
		assert.Less(t, got[1].ID, got[2].ID)
		assert.Equal(t, events.SessionChannel(sessionID), got[0].Channel)

		var payload events.PhaseTransitionPayload
		require.NoError(t, json.Unmarshal(got[0].Payload, &payload))
		assert.Equal(t, events.EventTypePhaseTransition, payload.Type)
		assert.Equal(t, string(models.PhaseQuery), payload.ToPhase)
	})

	t.Run("resumes after a known id", func(t *testing.T) {
		all, err := service.ListForSession(ctx, sessionID, 0, 100)
		require.NoError(t, err)
		require.Len(t, all, 3)

		tail, err := service.ListForSession(ctx, sessionID, all[0].ID, 100)
		require.NoError(t, err)
		require.Len(t, tail, 2)
		assert.Equal(t, all[1].ID, tail[0].ID)
	})

	t.Run("other sessions are invisible", func(t *testing.T) {
		got, err := service.ListForSession(ctx, uuid.NewString(), 0, 100)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("out-of-range limit falls back to the default", func(t *testing.T) {
		got, err := service.ListForSession(ctx, sessionID, 0, -5)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestEventService_PruneBefore(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	publisher := events.NewEventPublisher(db)
	service := NewEventService(db)
	ctx := context.Background()

	sessionID := uuid.NewString()
	require.NoError(t, publisher.PublishSessionStatus(ctx, sessionID, events.SessionStatusPayload{
		Type:      events.EventTypeSessionStatus,
		SessionID: sessionID,
		Status:    events.SessionStatusCreated,
		Phase:     string(models.PhaseInit),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}))

	t.Run("old cutoff removes nothing", func(t *testing.T) {
		n, err := service.PruneBefore(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("future cutoff removes everything", func(t *testing.T) {
		n, err := service.PruneBefore(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		got, err := service.ListForSession(ctx, sessionID, 0, 100)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEventPublisher_TransientEventsAreNotPersisted(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	publisher := events.NewEventPublisher(db)
	service := NewEventService(db)
	ctx := context.Background()

	sessionID := uuid.NewString()
	require.NoError(t, publisher.PublishKnowledgeFetch(ctx, sessionID, events.KnowledgeFetchPayload{
		Type:      events.EventTypeKnowledgeFetch,
		SessionID: sessionID,
		Endpoint:  "https://api.example.com",
		Name:      "example",
		Success:   true,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}))

	got, err := service.ListForSession(ctx, sessionID, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, got, "knowledge.fetch is broadcast only")
}
