package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateSession holds the schema definition for the StateSession entity:
// one row per active workflow session, carrying the full accumulated
// payload and an optimistic-concurrency revision.
type StateSession struct {
	ent.Schema
}

// Fields of the StateSession.
func (StateSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Text("objective").
			Comment("Initial objective as supplied on session creation"),
		field.String("detected_role").
			Comment("Role inferred from the objective at INIT"),
		field.Enum("current_phase").
			Values("INIT", "QUERY", "ENHANCE", "KNOWLEDGE", "PLAN", "EXECUTE", "VERIFY", "DONE").
			Default("INIT"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Accumulated workflow payload (merged per transition)"),
		field.Float("reasoning_effectiveness"),
		field.Int64("revision").
			Default(0).
			Comment("Monotonic revision for compare-and-swap updates"),
		field.String("last_completion_hash").
			Optional().
			Nillable().
			Comment("Hash of the last applied completion, for retry detection"),
		field.Int("phase_transition_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("Drives the archival sweep"),
	}
}

// Indexes of the StateSession.
func (StateSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("current_phase"),
		index.Fields("last_activity_at"),
		index.Fields("current_phase", "last_activity_at"),
	}
}
