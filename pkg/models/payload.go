package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
)

// Payload is the open string-keyed map accumulating per-phase outputs.
// Recognized keys get typed accessors below; unknown keys are preserved
// verbatim for forward compatibility.
type Payload map[string]any

// Recognized payload keys, grouped by producing phase.
const (
	KeyInterpretedGoal          = "interpreted_goal"
	KeyEnhancedGoal             = "enhanced_goal"
	KeyKnowledgeGathered        = "knowledge_gathered"
	KeySynthesizedKnowledge     = "synthesized_knowledge"
	KeyKnowledgeConfidence      = "knowledge_confidence"
	KeyKnowledgeContradictions  = "knowledge_contradictions"
	KeyPlanCreated              = "plan_created"
	KeyCurrentTodos             = "current_todos"
	KeyCurrentTaskIndex         = "current_task_index"
	KeyExecutionSuccess         = "execution_success"
	KeyTaskComplexity           = "task_complexity"
	KeyMoreTasksPending         = "more_tasks_pending"
	KeyVerificationPassed       = "verification_passed"
	KeyAPIDiscoveryResults      = "api_discovery_results"
	KeyAPIUsageMetrics          = "api_usage_metrics"
	KeyAutoConnectionSuccessful = "auto_connection_successful"
	KeyPhaseTransitionCount     = "phase_transition_count"
	KeyVerificationFailure      = "verification_failure_reason"
	KeyLastCompletionPct        = "last_completion_percentage"
	KeyDetectedRole             = "detected_role"
	KeyRole                     = "role"
)

// Clone returns a shallow copy. Values are shared; callers treat them as
// immutable once stored.
func (p Payload) Clone() Payload {
	if p == nil {
		return Payload{}
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every key from src over p, preserving unrecognized keys.
func (p Payload) Merge(src Payload) {
	for k, v := range src {
		p[k] = v
	}
}

// GetString returns the string value under key, or "" when absent or not a
// string.
func (p Payload) GetString(key string) string {
	s, _ := p[key].(string)
	return s
}

// GetBool returns the boolean value under key. JSON booleans and the
// strings "true"/"false" are both accepted — worker payloads are not
// strictly typed at the boundary.
func (p Payload) GetBool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// GetInt returns the integer value under key, tolerating JSON's float64
// decoding and numeric strings.
func (p Payload) GetInt(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// GetFloat returns the float value under key.
func (p Payload) GetFloat(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Todos decodes the todo list stored under current_todos.
func (p Payload) Todos() ([]Todo, error) {
	return DecodeTodos(p[KeyCurrentTodos])
}

// SetTodos stores a normalized todo list under current_todos.
func (p Payload) SetTodos(todos []Todo) {
	p[KeyCurrentTodos] = todos
}

// CompletionHash returns a stable digest of a (phase, payload) completion
// message. The session stores the last applied hash so a retried delivery
// of the same completion is recognized and re-issued instead of applied
// twice.
func CompletionHash(completed Phase, payload Payload) string {
	h := sha256.New()
	h.Write([]byte(completed))
	h.Write([]byte{0})

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		// Canonical JSON per value; map key order inside values is not
		// canonicalized, which is acceptable for retry detection.
		raw, err := json.Marshal(payload[k])
		if err == nil {
			h.Write(raw)
		}
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
