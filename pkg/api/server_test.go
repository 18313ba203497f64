package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/knowledge"
	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/pkg/orchestrator"
	"github.com/stagehand-project/stagehand/pkg/prompt"
	"github.com/stagehand-project/stagehand/pkg/services"
	"github.com/stagehand-project/stagehand/pkg/verification"
	"github.com/stagehand-project/stagehand/test/util"
)

// newTestServer wires a server over a test database with auto-connection
// disabled, so handlers run against the real orchestrator without network.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	client, db := util.SetupTestDatabase(t)

	cfg := &config.Config{
		Knowledge:     config.KnowledgeConfig{MaxConcurrency: 2, Timeout: time.Second, MaxResponseSize: 5000},
		RateLimit:     config.RateLimitConfig{RequestsPerMinute: 100, Window: time.Minute},
		Verification:  config.VerificationConfig{CompletionThreshold: 95, EffectivenessMinimum: 0.7},
		Effectiveness: config.EffectivenessConfig{Initial: 0.8, Min: 0.3, Max: 1.0},
	}

	sessions := services.NewSessionService(client)
	gate := verification.NewGate(cfg.Verification)
	tracker := orchestrator.NewTracker(cfg.Effectiveness)
	machine := orchestrator.NewMachine(gate, tracker)
	guard := knowledge.NewGuard(cfg.SSRF)
	limiter := knowledge.NewRateLimiter(cfg.RateLimit)
	fetcher := knowledge.NewFetcher(cfg.Knowledge, guard, limiter, nil)
	synth := knowledge.NewSynthesizer(cfg.Knowledge)
	orch := orchestrator.New(cfg, sessions, machine, tracker, prompt.NewBuilder(), fetcher, synth, nil)

	return NewServer(nil, orch, sessions, services.NewEventService(db))
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestProcessEndpoint(t *testing.T) {
	s := newTestServer(t)

	t.Run("starts a session and issues QUERY", func(t *testing.T) {
		id := uuid.NewString()
		rec := doJSON(t, s, http.MethodPost, "/api/v1/process",
			`{"session_id":"`+id+`","initial_objective":"build a csv importer"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var resp models.ProcessStateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.SessionID)
		assert.Equal(t, models.PhaseQuery, resp.NextPhase)
		assert.Equal(t, []string{"jarvis"}, resp.AllowedNextTools)
		assert.Equal(t, models.StatusInProgress, resp.Status)
		assert.NotEmpty(t, resp.SystemPrompt)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/process", `{"session_id":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "malformed_request", body.Error)
	})

	t.Run("maps boundary errors to stable codes", func(t *testing.T) {
		tests := []struct {
			name    string
			request string
			status  int
			code    string
		}{
			{
				"invalid session id",
				`{"session_id":"bad id!","initial_objective":"obj"}`,
				http.StatusBadRequest, "invalid_session_id",
			},
			{
				"missing objective",
				`{"session_id":"` + uuid.NewString() + `"}`,
				http.StatusBadRequest, "missing_initial_objective",
			},
			{
				"invalid phase token",
				`{"session_id":"` + uuid.NewString() + `","initial_objective":"obj","phase_completed":"banana"}`,
				http.StatusBadRequest, "invalid_phase_token",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doJSON(t, s, http.MethodPost, "/api/v1/process", tt.request)
				require.Equal(t, tt.status, rec.Code, rec.Body.String())

				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.code, body.Error)
			})
		}
	})

	t.Run("rejects an objective on an existing session", func(t *testing.T) {
		id := uuid.NewString()
		rec := doJSON(t, s, http.MethodPost, "/api/v1/process",
			`{"session_id":"`+id+`","initial_objective":"obj"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, s, http.MethodPost, "/api/v1/process",
			`{"session_id":"`+id+`","initial_objective":"obj again"}`)
		require.Equal(t, http.StatusConflict, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "initial_objective_forbidden", body.Error)
	})
}

func TestSessionEndpoints(t *testing.T) {
	s := newTestServer(t)

	id := uuid.NewString()
	rec := doJSON(t, s, http.MethodPost, "/api/v1/process",
		`{"session_id":"`+id+`","initial_objective":"build a report"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	t.Run("get returns the session detail", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/sessions/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var detail models.SessionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.Equal(t, id, detail.SessionID)
		assert.Equal(t, models.PhaseQuery, detail.CurrentPhase)
		assert.Equal(t, "build a report", detail.InitialObjective)
	})

	t.Run("get reports unknown sessions as not found", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "not_found", body.Error)
	})

	t.Run("list pages sessions", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/sessions", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result models.SessionListResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.GreaterOrEqual(t, result.TotalCount, 1)
	})

	t.Run("list rejects an unknown phase filter", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/sessions?phase=NOPE", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "validation_error", body.Error)
	})

	t.Run("events endpoint returns the session's event list", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/sessions/"+id+"/events", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			SessionID string            `json:"session_id"`
			Events    []json.RawMessage `json:"events"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id, body.SessionID)
	})

	t.Run("events endpoint validates after_id", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/sessions/"+id+"/events?after_id=-1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
