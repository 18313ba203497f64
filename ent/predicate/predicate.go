// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArchivedSession is the predicate function for archivedsession builders.
type ArchivedSession func(*sql.Selector)

// StateSession is the predicate function for statesession builders.
type StateSession func(*sql.Selector)
