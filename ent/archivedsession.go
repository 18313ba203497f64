// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stagehand-project/stagehand/ent/archivedsession"
)

// ArchivedSession is the model entity for the ArchivedSession schema.
type ArchivedSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Objective holds the value of the "objective" field.
	Objective string `json:"objective,omitempty"`
	// DetectedRole holds the value of the "detected_role" field.
	DetectedRole string `json:"detected_role,omitempty"`
	// FinalPhase holds the value of the "final_phase" field.
	FinalPhase string `json:"final_phase,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// ReasoningEffectiveness holds the value of the "reasoning_effectiveness" field.
	ReasoningEffectiveness float64 `json:"reasoning_effectiveness,omitempty"`
	// Revision holds the value of the "revision" field.
	Revision int64 `json:"revision,omitempty"`
	// PhaseTransitionCount holds the value of the "phase_transition_count" field.
	PhaseTransitionCount int `json:"phase_transition_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt   time.Time `json:"archived_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ArchivedSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case archivedsession.FieldPayload:
			values[i] = new([]byte)
		case archivedsession.FieldReasoningEffectiveness:
			values[i] = new(sql.NullFloat64)
		case archivedsession.FieldRevision, archivedsession.FieldPhaseTransitionCount:
			values[i] = new(sql.NullInt64)
		case archivedsession.FieldID, archivedsession.FieldObjective, archivedsession.FieldDetectedRole, archivedsession.FieldFinalPhase:
			values[i] = new(sql.NullString)
		case archivedsession.FieldCreatedAt, archivedsession.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ArchivedSession fields.
func (_m *ArchivedSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case archivedsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case archivedsession.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = value.String
			}
		case archivedsession.FieldDetectedRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_role", values[i])
			} else if value.Valid {
				_m.DetectedRole = value.String
			}
		case archivedsession.FieldFinalPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_phase", values[i])
			} else if value.Valid {
				_m.FinalPhase = value.String
			}
		case archivedsession.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case archivedsession.FieldReasoningEffectiveness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_effectiveness", values[i])
			} else if value.Valid {
				_m.ReasoningEffectiveness = value.Float64
			}
		case archivedsession.FieldRevision:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revision", values[i])
			} else if value.Valid {
				_m.Revision = value.Int64
			}
		case archivedsession.FieldPhaseTransitionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase_transition_count", values[i])
			} else if value.Valid {
				_m.PhaseTransitionCount = int(value.Int64)
			}
		case archivedsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case archivedsession.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ArchivedSession.
// This includes values selected through modifiers, order, etc.
func (_m *ArchivedSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ArchivedSession.
// Note that you need to call ArchivedSession.Unwrap() before calling this method if this ArchivedSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ArchivedSession) Update() *ArchivedSessionUpdateOne {
	return NewArchivedSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ArchivedSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ArchivedSession) Unwrap() *ArchivedSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ArchivedSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ArchivedSession) String() string {
	var builder strings.Builder
	builder.WriteString("ArchivedSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("objective=")
	builder.WriteString(_m.Objective)
	builder.WriteString(", ")
	builder.WriteString("detected_role=")
	builder.WriteString(_m.DetectedRole)
	builder.WriteString(", ")
	builder.WriteString("final_phase=")
	builder.WriteString(_m.FinalPhase)
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
	builder.WriteString("phase_transition_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseTransitionCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("archived_at=")
	builder.WriteString(_m.ArchivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ArchivedSessions is a parsable slice of ArchivedSession.
type ArchivedSessions []*ArchivedSession
