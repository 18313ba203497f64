// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stagehand-project/stagehand/ent/statesession"
)

// StateSession is the model entity for the StateSession schema.
type StateSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Initial objective as supplied on session creation
	Objective string `json:"objective,omitempty"`
	// Role inferred from the objective at INIT
	DetectedRole string `json:"detected_role,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase statesession.CurrentPhase `json:"current_phase,omitempty"`
	// Accumulated workflow payload (merged per transition)
	Payload map[string]interface{} `json:"payload,omitempty"`
	// ReasoningEffectiveness holds the value of the "reasoning_effectiveness" field.
	ReasoningEffectiveness float64 `json:"reasoning_effectiveness,omitempty"`
	// Monotonic revision for compare-and-swap updates
	Revision int64 `json:"revision,omitempty"`
	// Hash of the last applied completion, for retry detection
	LastCompletionHash *string `json:"last_completion_hash,omitempty"`
	// PhaseTransitionCount holds the value of the "phase_transition_count" field.
	PhaseTransitionCount int `json:"phase_transition_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Drives the archival sweep
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StateSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case statesession.FieldPayload:
			values[i] = new([]byte)
		case statesession.FieldReasoningEffectiveness:
			values[i] = new(sql.NullFloat64)
		case statesession.FieldRevision, statesession.FieldPhaseTransitionCount:
			values[i] = new(sql.NullInt64)
		case statesession.FieldID, statesession.FieldObjective, statesession.FieldDetectedRole, statesession.FieldCurrentPhase, statesession.FieldLastCompletionHash:
			values[i] = new(sql.NullString)
		case statesession.FieldCreatedAt, statesession.FieldUpdatedAt, statesession.FieldLastActivityAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StateSession fields.
func (_m *StateSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case statesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case statesession.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = value.String
			}
		case statesession.FieldDetectedRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_role", values[i])
			} else if value.Valid {
				_m.DetectedRole = value.String
			}
		case statesession.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = statesession.CurrentPhase(value.String)
			}
		case statesession.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case statesession.FieldReasoningEffectiveness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_effectiveness", values[i])
			} else if value.Valid {
				_m.ReasoningEffectiveness = value.Float64
			}
		case statesession.FieldRevision:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revision", values[i])
			} else if value.Valid {
				_m.Revision = value.Int64
			}
		case statesession.FieldLastCompletionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_completion_hash", values[i])
			} else if value.Valid {
				_m.LastCompletionHash = new(string)
				*_m.LastCompletionHash = value.String
			}
		case statesession.FieldPhaseTransitionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase_transition_count", values[i])
			} else if value.Valid {
				_m.PhaseTransitionCount = int(value.Int64)
			}
		case statesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case statesession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case statesession.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StateSession.
// This includes values selected through modifiers, order, etc.
func (_m *StateSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StateSession.
// Note that you need to call StateSession.Unwrap() before calling this method if this StateSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StateSession) Update() *StateSessionUpdateOne {
	return NewStateSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StateSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StateSession) Unwrap() *StateSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StateSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StateSession) String() string {
	var builder strings.Builder
	builder.WriteString("StateSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("objective=")
	builder.WriteString(_m.Objective)
	builder.WriteString(", ")
	builder.WriteString("detected_role=")
	builder.WriteString(_m.DetectedRole)
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPhase))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("reasoning_effectiveness=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReasoningEffectiveness))
	builder.WriteString(", ")
	builder.WriteString("revision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Revision))
	builder.WriteString(", ")
	if v := _m.LastCompletionHash; v != nil {
		builder.WriteString("last_completion_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("phase_transition_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseTransitionCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StateSessions is a parsable slice of StateSession.
type StateSessions []*StateSession
