// Package orchestrator drives the eight-phase workflow. ProcessState is
// the single boundary operation: it consumes one completion message,
// advances the session's state machine, and returns the next phase with
// its prompt and capability whitelist.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stagehand-project/stagehand/ent"
	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/events"
	"github.com/stagehand-project/stagehand/pkg/knowledge"
	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/pkg/prompt"
	"github.com/stagehand-project/stagehand/pkg/services"
)

// casRetries bounds internal retries when an optimistic update loses a
// race. The per-session serialization at the store makes races rare;
// exhaustion surfaces as stale_revision.
const casRetries = 3

// Orchestrator composes the state machine with the session store, the
// prompt engine, the knowledge subsystem, and telemetry.
type Orchestrator struct {
	cfg       *config.Config
	sessions  *services.SessionService
	machine   *Machine
	tracker   *Tracker
	builder   *prompt.Builder
	fetcher   *knowledge.Fetcher
	synth     *knowledge.Synthesizer
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// New wires an orchestrator from its dependencies. publisher may be nil
// (telemetry disabled, e.g. in unit tests).
func New(cfg *config.Config, sessions *services.SessionService, machine *Machine, tracker *Tracker,
	builder *prompt.Builder, fetcher *knowledge.Fetcher, synth *knowledge.Synthesizer,
	publisher *events.EventPublisher) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		sessions:  sessions,
		machine:   machine,
		tracker:   tracker,
		builder:   builder,
		fetcher:   fetcher,
		synth:     synth,
		publisher: publisher,
		logger:    slog.With("component", "orchestrator"),
	}
}

// ProcessState applies one completion message and returns the next step.
func (o *Orchestrator) ProcessState(ctx context.Context, req models.ProcessStateRequest) (*models.ProcessStateResponse, error) {
	if !models.ValidSessionID(req.SessionID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSessionID, req.SessionID)
	}

	var completed models.Phase
	if req.PhaseCompleted != "" {
		p, err := models.ParsePhase(req.PhaseCompleted)
		if err != nil || !p.IsCompletable() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPhaseToken, req.PhaseCompleted)
		}
		completed = p
	}

	session, err := o.sessions.Get(ctx, req.SessionID)
	switch {
	case err == nil:
		if req.InitialObjective != "" {
			return nil, fmt.Errorf("%w: session %s already exists", ErrObjectiveForbidden, req.SessionID)
		}
	case errors.Is(err, services.ErrNotFound):
		return o.startSession(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	if models.Phase(session.CurrentPhase) == models.PhaseDone {
		return o.respond(session, models.PhaseDone, models.Payload(session.Payload)), nil
	}
	if completed == "" {
		// Plain re-ask for the current phase; nothing to apply.
		return o.respond(session, models.Phase(session.CurrentPhase), models.Payload(session.Payload)), nil
	}

	return o.applyCompletion(ctx, session, completed, req.Payload)
}

// startSession creates a fresh session and issues QUERY.
func (o *Orchestrator) startSession(ctx context.Context, req models.ProcessStateRequest) (*models.ProcessStateResponse, error) {
	if req.InitialObjective == "" {
		return nil, fmt.Errorf("%w: session %s does not exist", ErrMissingObjective, req.SessionID)
	}

	role := prompt.DetectRole(req.InitialObjective)
	payload := models.Payload{
		models.KeyDetectedRole:         string(role),
		models.KeyPhaseTransitionCount: 0,
	}

	session, created, err := o.sessions.GetOrCreate(ctx, services.CreateParams{
		SessionID:     req.SessionID,
		Objective:     req.InitialObjective,
		Role:          role,
		Effectiveness: o.tracker.Initial(),
		Payload:       payload,
	})
	if err != nil {
		if services.IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if !created {
		// Create race: the winner already advanced; just re-issue.
		return o.respond(session, models.Phase(session.CurrentPhase), models.Payload(session.Payload)), nil
	}

	payload[models.KeyPhaseTransitionCount] = 1
	updated, err := o.sessions.ApplyTransition(ctx, session.ID, session.Revision, services.TransitionUpdate{
		Phase:           models.PhaseQuery,
		Payload:         payload,
		Effectiveness:   session.ReasoningEffectiveness,
		TransitionCount: 1,
	})
	if err != nil {
		return nil, o.mapStoreError(err)
	}

	o.publishTransition(ctx, updated, models.PhaseInit, models.PhaseQuery, "", false)
	o.publishStatus(ctx, updated.ID, events.SessionStatusCreated, models.PhaseQuery)
	o.logger.Info("Session started",
		"session_id", updated.ID, "detected_role", role, "next_phase", models.PhaseQuery)

	return o.respond(updated, models.PhaseQuery, payload), nil
}

// applyCompletion runs the state machine for a reported completion and
// commits the result, retrying internally on optimistic-lock races.
func (o *Orchestrator) applyCompletion(ctx context.Context, session *ent.StateSession, completed models.Phase, completion models.Payload) (*models.ProcessStateResponse, error) {
	hash := models.CompletionHash(completed, completion)

	for attempt := 0; attempt < casRetries; attempt++ {
		current := models.Phase(session.CurrentPhase)

		if session.LastCompletionHash != nil && *session.LastCompletionHash == hash {
			// Redelivery of an already-applied completion; re-issue. This
			// covers self-looping phases too: an EXECUTE retry must not
			// advance the task index or re-apply the effectiveness delta.
			o.logger.Debug("Duplicate completion re-issued",
				"session_id", session.ID, "phase_completed", completed, "current_phase", current)
			return o.respond(session, current, models.Payload(session.Payload)), nil
		}

		step, err := o.machine.Step(StepInput{
			Current:       current,
			Completed:     completed,
			Completion:    completion,
			Payload:       models.Payload(session.Payload),
			Effectiveness: session.ReasoningEffectiveness,
		})
		if err != nil {
			return nil, err
		}
		if step.Reissue {
			return o.respond(session, step.Next, step.Payload), nil
		}

		if step.NeedsKnowledge {
			o.runAutoConnection(ctx, session, step.Payload)
		}

		count := session.PhaseTransitionCount + 1
		step.Payload[models.KeyPhaseTransitionCount] = count

		updated, err := o.sessions.ApplyTransition(ctx, session.ID, session.Revision, services.TransitionUpdate{
			Phase:           step.Next,
			Payload:         step.Payload,
			Effectiveness:   step.Effectiveness,
			CompletionHash:  hash,
			TransitionCount: count,
			Role:            step.RoleOverride,
		})
		if errors.Is(err, services.ErrConcurrentModification) {
			session, err = o.sessions.Get(ctx, session.ID)
			if err != nil {
				return nil, o.mapStoreError(err)
			}
			continue
		}
		if err != nil {
			return nil, o.mapStoreError(err)
		}

		o.publishTransition(ctx, updated, current, step.Next, completed, false)
		if step.Next == models.PhaseDone {
			o.publishStatus(ctx, updated.ID, events.SessionStatusDone, models.PhaseDone)
		}
		o.logger.Info("Phase transition applied",
			"session_id", updated.ID, "from", current, "to", step.Next,
			"revision", updated.Revision, "effectiveness", step.Effectiveness)

		return o.respond(updated, step.Next, step.Payload), nil
	}

	return nil, fmt.Errorf("%w: session %s", ErrStaleRevision, session.ID)
}

// runAutoConnection executes the KNOWLEDGE pipeline and folds the results
// into the payload. Failure is never fatal: a fully failed round leaves
// the fallback answer and auto_connection_successful=false.
func (o *Orchestrator) runAutoConnection(ctx context.Context, session *ent.StateSession, payload models.Payload) {
	if !o.cfg.Knowledge.AutoConnectEnabled {
		payload[models.KeyAutoConnectionSuccessful] = false
		return
	}

	goal := payload.GetString(models.KeyEnhancedGoal)
	if goal == "" {
		goal = session.Objective
	}
	role := o.roleOf(session, payload)

	selected := knowledge.Select(o.cfg.Catalog, goal, role)
	results := o.fetcher.FetchAll(ctx, selected)
	metrics := knowledge.MetricsFor(results)
	synthesis := o.synth.Synthesize(results)

	for _, r := range results {
		o.publishFetch(ctx, session.ID, r)
	}

	payload[models.KeyAPIDiscoveryResults] = results
	payload[models.KeyAPIUsageMetrics] = metrics
	payload[models.KeyKnowledgeGathered] = metrics.Succeeded > 0
	payload[models.KeySynthesizedKnowledge] = synthesis.Answer
	payload[models.KeyKnowledgeConfidence] = synthesis.Confidence
	payload[models.KeyKnowledgeContradictions] = synthesis.Contradictions
	payload[models.KeyAutoConnectionSuccessful] = metrics.Succeeded > 0

	o.logger.Info("Knowledge auto-connection finished",
		"session_id", session.ID, "requested", metrics.Requested,
		"succeeded", metrics.Succeeded, "confidence", synthesis.Confidence)
}

// respond assembles the boundary response for the phase being issued.
func (o *Orchestrator) respond(session *ent.StateSession, next models.Phase, payload models.Payload) *models.ProcessStateResponse {
	status := models.StatusInProgress
	if next == models.PhaseDone {
		status = models.StatusDone
	}

	systemPrompt := o.builder.Build(next, prompt.Input{
		SessionID: session.ID,
		Objective: session.Objective,
		Role:      o.roleOf(session, payload),
		Payload:   payload,
	})

	return &models.ProcessStateResponse{
		SessionID:        session.ID,
		NextPhase:        next,
		SystemPrompt:     systemPrompt,
		AllowedNextTools: AllowedTools(next),
		Status:           status,
		Payload:          payload,
	}
}

// roleOf resolves the effective role: a payload override wins over the
// role detected at session start.
func (o *Orchestrator) roleOf(session *ent.StateSession, payload models.Payload) models.Role {
	if role, err := models.ParseRole(payload.GetString(models.KeyDetectedRole)); err == nil {
		return role
	}
	if role, err := models.ParseRole(session.DetectedRole); err == nil {
		return role
	}
	return models.RolePlanner
}

func (o *Orchestrator) mapStoreError(err error) error {
	switch {
	case errors.Is(err, services.ErrConcurrentModification):
		return fmt.Errorf("%w: %w", ErrStaleRevision, err)
	case errors.Is(err, services.ErrNotFound):
		return err
	case services.IsValidationError(err):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
}

// Telemetry is best-effort: a publish failure is logged, never propagated.

func (o *Orchestrator) publishTransition(ctx context.Context, session *ent.StateSession, from, to, completed models.Phase, reissued bool) {
	if o.publisher == nil {
		return
	}
	err := o.publisher.PublishPhaseTransition(ctx, session.ID, events.PhaseTransitionPayload{
		Type:            events.EventTypePhaseTransition,
		SessionID:       session.ID,
		FromPhase:       string(from),
		ToPhase:         string(to),
		PhaseCompleted:  string(completed),
		Revision:        session.Revision,
		TransitionCount: session.PhaseTransitionCount,
		Reissued:        reissued,
		Timestamp:       time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		o.logger.Warn("Failed to publish phase transition", "session_id", session.ID, "error", err)
	}
}

func (o *Orchestrator) publishStatus(ctx context.Context, sessionID, status string, phase models.Phase) {
	if o.publisher == nil {
		return
	}
	err := o.publisher.PublishSessionStatus(ctx, sessionID, events.SessionStatusPayload{
		Type:      events.EventTypeSessionStatus,
		SessionID: sessionID,
		Status:    status,
		Phase:     string(phase),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		o.logger.Warn("Failed to publish session status", "session_id", sessionID, "error", err)
	}
}

func (o *Orchestrator) publishFetch(ctx context.Context, sessionID string, r knowledge.FetchResult) {
	if o.publisher == nil {
		return
	}
	payload := events.KnowledgeFetchPayload{
		Type:       events.EventTypeKnowledgeFetch,
		SessionID:  sessionID,
		Endpoint:   r.Endpoint,
		Name:       r.Name,
		Success:    r.Success,
		Corrected:  r.Corrected,
		DurationMS: r.DurationMS,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if r.Error != nil {
		payload.ErrorType = string(r.Error.Type)
	}
	if err := o.publisher.PublishKnowledgeFetch(ctx, sessionID, payload); err != nil {
		o.logger.Debug("Failed to publish knowledge fetch", "session_id", sessionID, "error", err)
	}
}
