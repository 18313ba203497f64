// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stagehand-project/stagehand/ent/archivedsession"
	"github.com/stagehand-project/stagehand/ent/schema"
	"github.com/stagehand-project/stagehand/ent/statesession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	archivedsessionFields := schema.ArchivedSession{}.Fields()
	_ = archivedsessionFields
	// archivedsessionDescArchivedAt is the schema descriptor for archived_at field.
	archivedsessionDescArchivedAt := archivedsessionFields[9].Descriptor()
	// archivedsession.DefaultArchivedAt holds the default value on creation for the archived_at field.
	archivedsession.DefaultArchivedAt = archivedsessionDescArchivedAt.Default.(func() time.Time)
	statesessionFields := schema.StateSession{}.Fields()
	_ = statesessionFields
	// statesessionDescRevision is the schema descriptor for revision field.
	statesessionDescRevision := statesessionFields[6].Descriptor()
	// statesession.DefaultRevision holds the default value on creation for the revision field.
	statesession.DefaultRevision = statesessionDescRevision.Default.(int64)
	// statesessionDescPhaseTransitionCount is the schema descriptor for phase_transition_count field.
	statesessionDescPhaseTransitionCount := statesessionFields[8].Descriptor()
	// statesession.DefaultPhaseTransitionCount holds the default value on creation for the phase_transition_count field.
	statesession.DefaultPhaseTransitionCount = statesessionDescPhaseTransitionCount.Default.(int)
	// statesessionDescCreatedAt is the schema descriptor for created_at field.
	statesessionDescCreatedAt := statesessionFields[9].Descriptor()
	// statesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	statesession.DefaultCreatedAt = statesessionDescCreatedAt.Default.(func() time.Time)
	// statesessionDescUpdatedAt is the schema descriptor for updated_at field.
	statesessionDescUpdatedAt := statesessionFields[10].Descriptor()
	// statesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	statesession.DefaultUpdatedAt = statesessionDescUpdatedAt.Default.(func() time.Time)
	// statesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	statesession.UpdateDefaultUpdatedAt = statesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// statesessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	statesessionDescLastActivityAt := statesessionFields[11].Descriptor()
	// statesession.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	statesession.DefaultLastActivityAt = statesessionDescLastActivityAt.Default.(func() time.Time)
}
