// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArchivedSessionsColumns holds the columns for the "archived_sessions" table.
	ArchivedSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "objective", Type: field.TypeString, Size: 2147483647},
		{Name: "detected_role", Type: field.TypeString},
		{Name: "final_phase", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning_effectiveness", Type: field.TypeFloat64},
		{Name: "revision", Type: field.TypeInt64},
		{Name: "phase_transition_count", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "archived_at", Type: field.TypeTime},
	}
	// ArchivedSessionsTable holds the schema information for the "archived_sessions" table.
	ArchivedSessionsTable = &schema.Table{
		Name:       "archived_sessions",
		Columns:    ArchivedSessionsColumns,
		PrimaryKey: []*schema.Column{ArchivedSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "archivedsession_archived_at",
				Unique:  false,
				Columns: []*schema.Column{ArchivedSessionsColumns[9]},
			},
		},
	}
	// StateSessionsColumns holds the columns for the "state_sessions" table.
	StateSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "objective", Type: field.TypeString, Size: 2147483647},
		{Name: "detected_role", Type: field.TypeString},
		{Name: "current_phase", Type: field.TypeEnum, Enums: []string{"INIT", "QUERY", "ENHANCE", "KNOWLEDGE", "PLAN", "EXECUTE", "VERIFY", "DONE"}, Default: "INIT"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning_effectiveness", Type: field.TypeFloat64},
		{Name: "revision", Type: field.TypeInt64, Default: 0},
		{Name: "last_completion_hash", Type: field.TypeString, Nullable: true},
		{Name: "phase_transition_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
	}
	// StateSessionsTable holds the schema information for the "state_sessions" table.
	StateSessionsTable = &schema.Table{
		Name:       "state_sessions",
		Columns:    StateSessionsColumns,
		PrimaryKey: []*schema.Column{StateSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statesession_current_phase",
				Unique:  false,
				Columns: []*schema.Column{StateSessionsColumns[3]},
			},
			{
				Name:    "statesession_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{StateSessionsColumns[11]},
			},
			{
				Name:    "statesession_current_phase_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{StateSessionsColumns[3], StateSessionsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArchivedSessionsTable,
		StateSessionsTable,
	}
)

func init() {
}
