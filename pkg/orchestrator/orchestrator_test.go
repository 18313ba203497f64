package orchestrator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/ent"
	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/knowledge"
	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/pkg/prompt"
	"github.com/stagehand-project/stagehand/pkg/services"
	"github.com/stagehand-project/stagehand/pkg/verification"
	"github.com/stagehand-project/stagehand/test/util"
)

// setupOrchestrator wires a full orchestrator against a test database and
// an httptest-backed knowledge catalog.
func setupOrchestrator(t *testing.T, catalogURL string) (*Orchestrator, *ent.Client) {
	t.Helper()

	client, _ := util.SetupTestDatabase(t)

	cfg := &config.Config{
		Knowledge: config.KnowledgeConfig{
			MaxConcurrency:     2,
			Timeout:            2 * time.Second,
			MaxResponseSize:    5000,
			AutoConnectEnabled: catalogURL != "",
			MaxContentLength:   1 << 20,
			UserAgent:          "stagehand-test",
		},
		RateLimit:     config.RateLimitConfig{RequestsPerMinute: 100, Window: time.Minute},
		SSRF:          config.SSRFConfig{Enabled: false},
		Verification:  config.VerificationConfig{CompletionThreshold: 95, EffectivenessMinimum: 0.7},
		Effectiveness: config.EffectivenessConfig{Initial: 0.8, Min: 0.3, Max: 1.0},
	}
	if catalogURL != "" {
		cfg.Catalog = []config.APIEndpoint{{
			Name:        "test-knowledge",
			URL:         catalogURL,
			Category:    config.CategoryKnowledge,
			Keywords:    []string{"anything"},
			AuthType:    config.AuthNone,
			Reliability: 0.9,
		}}
	}

	sessions := services.NewSessionService(client)
	gate := verification.NewGate(cfg.Verification)
	tracker := NewTracker(cfg.Effectiveness)
	machine := NewMachine(gate, tracker)
	guard := knowledge.NewGuard(cfg.SSRF)
	limiter := knowledge.NewRateLimiter(cfg.RateLimit)
	fetcher := knowledge.NewFetcher(cfg.Knowledge, guard, limiter, nil)
	synth := knowledge.NewSynthesizer(cfg.Knowledge)

	return New(cfg, sessions, machine, tracker, prompt.NewBuilder(), fetcher, synth, nil), client
}

func TestProcessStateColdStart(t *testing.T) {
	orch, _ := setupOrchestrator(t, "")
	ctx := context.Background()
	id := uuid.NewString()

	resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID:        id,
		InitialObjective: "build a csv importer",
	})
	require.NoError(t, err)

	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, models.PhaseQuery, resp.NextPhase)
	assert.Equal(t, []string{"jarvis"}, resp.AllowedNextTools)
	assert.Equal(t, models.StatusInProgress, resp.Status)
	assert.NotEmpty(t, resp.SystemPrompt)
	assert.Equal(t, "coder", resp.Payload.GetString(models.KeyDetectedRole))
	count, _ := resp.Payload.GetInt(models.KeyPhaseTransitionCount)
	assert.Equal(t, 1, count)
}

func TestProcessStateBoundaryErrors(t *testing.T) {
	orch, _ := setupOrchestrator(t, "")
	ctx := context.Background()

	t.Run("invalid session id", func(t *testing.T) {
		_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: "bad id!"})
		assert.ErrorIs(t, err, ErrInvalidSessionID)
	})

	t.Run("unknown session without objective", func(t *testing.T) {
		_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: uuid.NewString()})
		assert.ErrorIs(t, err, ErrMissingObjective)
	})

	t.Run("objective on an existing session", func(t *testing.T) {
		id := uuid.NewString()
		_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
		require.NoError(t, err)

		_, err = orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj again"})
		assert.ErrorIs(t, err, ErrObjectiveForbidden)
	})

	t.Run("uncompletable phase token", func(t *testing.T) {
		id := uuid.NewString()
		_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
		require.NoError(t, err)

		for _, token := range []string{"INIT", "DONE", "banana"} {
			_, err = orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, PhaseCompleted: token})
			assert.ErrorIs(t, err, ErrInvalidPhaseToken, "token %q", token)
		}
	})
}

func TestProcessStateFullLifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fact":"importers should stream"}`))
	}))
	defer srv.Close()

	orch, _ := setupOrchestrator(t, srv.URL)
	ctx := context.Background()
	id := uuid.NewString()

	step := func(completed string, payload models.Payload) *models.ProcessStateResponse {
		t.Helper()
		resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
			SessionID: id, PhaseCompleted: completed, Payload: payload,
		})
		require.NoError(t, err)
		return resp
	}

	resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, InitialObjective: "build a csv importer",
	})
	require.NoError(t, err)
	require.Equal(t, models.PhaseQuery, resp.NextPhase)

	resp = step("QUERY", models.Payload{models.KeyInterpretedGoal: "import csv files robustly"})
	require.Equal(t, models.PhaseEnhance, resp.NextPhase)

	resp = step("ENHANCE", models.Payload{models.KeyEnhancedGoal: "stream csv files with validation"})
	require.Equal(t, models.PhaseKnowledge, resp.NextPhase)

	// KNOWLEDGE completion without synthesis: auto-connection runs against
	// the test catalog endpoint.
	resp = step("KNOWLEDGE", models.Payload{})
	require.Equal(t, models.PhasePlan, resp.NextPhase)
	assert.Equal(t, true, resp.Payload[models.KeyAutoConnectionSuccessful])
	assert.Contains(t, resp.Payload.GetString(models.KeySynthesizedKnowledge), "importers should stream")
	conf, ok := resp.Payload.GetFloat(models.KeyKnowledgeConfidence)
	require.True(t, ok)
	assert.InDelta(t, 0.9, conf, 1e-9)

	todos := []any{
		map[string]any{"id": "t1", "content": "parse header", "status": "pending", "priority": "high"},
		map[string]any{"id": "t2", "content": "stream rows", "status": "pending", "priority": "medium"},
	}
	resp = step("PLAN", models.Payload{
		models.KeyPlanCreated:  true,
		models.KeyCurrentTodos: todos,
	})
	require.Equal(t, models.PhaseExecute, resp.NextPhase)
	idx, _ := resp.Payload.GetInt(models.KeyCurrentTaskIndex)
	assert.Zero(t, idx)

	doneTodos := []any{
		map[string]any{"id": "t1", "content": "parse header", "status": "completed", "priority": "high", "kind": "direct_execution"},
		map[string]any{"id": "t2", "content": "stream rows", "status": "pending", "priority": "medium", "kind": "direct_execution"},
	}
	resp = step("EXECUTE", models.Payload{
		models.KeyExecutionSuccess: true,
		models.KeyTaskComplexity:   "simple",
		models.KeyCurrentTodos:     doneTodos,
	})
	require.Equal(t, models.PhaseExecute, resp.NextPhase, "one task remains")
	idx, _ = resp.Payload.GetInt(models.KeyCurrentTaskIndex)
	assert.Equal(t, 1, idx)

	allDone := []any{
		map[string]any{"id": "t1", "content": "parse header", "status": "completed", "priority": "high", "kind": "direct_execution"},
		map[string]any{"id": "t2", "content": "stream rows", "status": "completed", "priority": "medium", "kind": "direct_execution"},
	}
	resp = step("EXECUTE", models.Payload{
		models.KeyExecutionSuccess: true,
		models.KeyTaskComplexity:   "simple",
		models.KeyCurrentTodos:     allDone,
	})
	require.Equal(t, models.PhaseVerify, resp.NextPhase)

	resp = step("VERIFY", models.Payload{models.KeyVerificationPassed: true})
	require.Equal(t, models.PhaseDone, resp.NextPhase)
	assert.Equal(t, models.StatusDone, resp.Status)
	assert.Empty(t, resp.AllowedNextTools)

	// Terminal state is idempotent: any further report re-issues DONE.
	resp = step("VERIFY", models.Payload{})
	assert.Equal(t, models.PhaseDone, resp.NextPhase)
	assert.Equal(t, models.StatusDone, resp.Status)
}

func TestProcessStateMismatchedCompletionReissues(t *testing.T) {
	orch, client := setupOrchestrator(t, "")
	ctx := context.Background()
	id := uuid.NewString()

	_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
	require.NoError(t, err)

	// Session is at QUERY; reporting EXECUTE is a no-op re-issue.
	resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, PhaseCompleted: "EXECUTE", Payload: models.Payload{"stray": true},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseQuery, resp.NextPhase)

	row, err := client.StateSession.Get(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, row.Revision, "re-issue must not write state")
	assert.NotContains(t, row.Payload, "stray")
}

func TestProcessStateReaskWithoutCompletion(t *testing.T) {
	orch, _ := setupOrchestrator(t, "")
	ctx := context.Background()
	id := uuid.NewString()

	first, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
	require.NoError(t, err)

	again, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id})
	require.NoError(t, err)
	assert.Equal(t, first.NextPhase, again.NextPhase)
	assert.Equal(t, first.AllowedNextTools, again.AllowedNextTools)
}

func TestProcessStateDuplicateDelivery(t *testing.T) {
	orch, client := setupOrchestrator(t, "")
	ctx := context.Background()
	id := uuid.NewString()

	_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
	require.NoError(t, err)

	completion := models.Payload{models.KeyInterpretedGoal: "the goal"}
	resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, PhaseCompleted: "QUERY", Payload: completion,
	})
	require.NoError(t, err)
	require.Equal(t, models.PhaseEnhance, resp.NextPhase)

	// Redelivery of the exact same completion: recognized by hash and
	// re-issued without advancing.
	resp, err = orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, PhaseCompleted: "QUERY", Payload: completion,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseEnhance, resp.NextPhase)

	row, err := client.StateSession.Get(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 2, row.Revision, "duplicate must not commit a second transition")
}

func TestProcessStateDuplicateExecuteRetry(t *testing.T) {
	orch, client := setupOrchestrator(t, "")
	ctx := context.Background()
	id := uuid.NewString()

	_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
	require.NoError(t, err)

	todo := func(id, status string) map[string]any {
		return map[string]any{"id": id, "content": "task " + id, "status": status, "priority": "low"}
	}
	for _, s := range []struct {
		completed string
		payload   models.Payload
	}{
		{"QUERY", models.Payload{models.KeyInterpretedGoal: "g"}},
		{"ENHANCE", models.Payload{models.KeyEnhancedGoal: "g+"}},
		{"KNOWLEDGE", models.Payload{models.KeySynthesizedKnowledge: "known facts"}},
		{"PLAN", models.Payload{
			models.KeyPlanCreated:  true,
			models.KeyCurrentTodos: []any{todo("t1", "pending"), todo("t2", "pending"), todo("t3", "pending")},
		}},
	} {
		_, err = orch.ProcessState(ctx, models.ProcessStateRequest{
			SessionID: id, PhaseCompleted: s.completed, Payload: s.payload,
		})
		require.NoError(t, err)
	}

	completion := models.Payload{
		models.KeyExecutionSuccess: true,
		models.KeyTaskComplexity:   "simple",
		models.KeyCurrentTodos:     []any{todo("t1", "completed"), todo("t2", "pending"), todo("t3", "pending")},
	}
	resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, PhaseCompleted: "EXECUTE", Payload: completion,
	})
	require.NoError(t, err)
	require.Equal(t, models.PhaseExecute, resp.NextPhase)
	idx, _ := resp.Payload.GetInt(models.KeyCurrentTaskIndex)
	require.Equal(t, 1, idx)

	row, err := client.StateSession.Get(ctx, id)
	require.NoError(t, err)
	revision := row.Revision
	effectiveness := row.ReasoningEffectiveness

	// Same-phase redelivery: EXECUTE loops onto itself, so the retry must
	// be caught by the completion hash, not by a phase mismatch.
	resp, err = orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, PhaseCompleted: "EXECUTE", Payload: completion,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseExecute, resp.NextPhase)
	idx, _ = resp.Payload.GetInt(models.KeyCurrentTaskIndex)
	assert.Equal(t, 1, idx, "retry must not advance the task index")

	row, err = client.StateSession.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, revision, row.Revision, "retry must not commit a transition")
	assert.InDelta(t, effectiveness, row.ReasoningEffectiveness, 1e-9,
		"retry must not re-apply the effectiveness delta")
}

func TestProcessStatePlanNotReady(t *testing.T) {
	orch, _ := setupOrchestrator(t, "")
	ctx := context.Background()
	id := uuid.NewString()

	_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
	require.NoError(t, err)

	for _, s := range []struct {
		completed string
		payload   models.Payload
	}{
		{"QUERY", models.Payload{models.KeyInterpretedGoal: "g"}},
		{"ENHANCE", models.Payload{models.KeyEnhancedGoal: "g+"}},
		{"KNOWLEDGE", models.Payload{models.KeySynthesizedKnowledge: "known facts"}},
	} {
		_, err = orch.ProcessState(ctx, models.ProcessStateRequest{
			SessionID: id, PhaseCompleted: s.completed, Payload: s.payload,
		})
		require.NoError(t, err)
	}

	resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, PhaseCompleted: "PLAN", Payload: models.Payload{models.KeyPlanCreated: false},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhasePlan, resp.NextPhase, "plan not declared ready stays at PLAN")
}

func TestProcessStateAutoConnectionDisabled(t *testing.T) {
	orch, _ := setupOrchestrator(t, "")
	ctx := context.Background()
	id := uuid.NewString()

	_, err := orch.ProcessState(ctx, models.ProcessStateRequest{SessionID: id, InitialObjective: "obj"})
	require.NoError(t, err)

	for _, s := range []struct {
		completed string
		payload   models.Payload
	}{
		{"QUERY", models.Payload{models.KeyInterpretedGoal: "g"}},
		{"ENHANCE", models.Payload{models.KeyEnhancedGoal: "g+"}},
	} {
		_, err = orch.ProcessState(ctx, models.ProcessStateRequest{
			SessionID: id, PhaseCompleted: s.completed, Payload: s.payload,
		})
		require.NoError(t, err)
	}

	resp, err := orch.ProcessState(ctx, models.ProcessStateRequest{
		SessionID: id, PhaseCompleted: "KNOWLEDGE", Payload: models.Payload{},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhasePlan, resp.NextPhase)
	assert.Equal(t, false, resp.Payload[models.KeyAutoConnectionSuccessful])
}
