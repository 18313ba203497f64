package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArchivedSession is the immutable snapshot a session becomes when the
// retention sweep moves it out of the active table.
type ArchivedSession struct {
	ent.Schema
}

// Fields of the ArchivedSession.
func (ArchivedSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Text("objective").
			Immutable(),
		field.String("detected_role").
			Immutable(),
		field.String("final_phase").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Float("reasoning_effectiveness").
			Immutable(),
		field.Int64("revision").
			Immutable(),
		field.Int("phase_transition_count").
			Immutable(),
		field.Time("created_at").
			Immutable(),
		field.Time("archived_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ArchivedSession.
func (ArchivedSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("archived_at"),
	}
}
