// Package dependency models prerequisite relationships between tasks
// and drives the per-task status state machine.
package dependency

import "time"

// Type describes the nature of a dependency edge.
type Type string

const (
	// TypeBlocking gates the dependent: it stays blocked until every
	// blocking prerequisite is completed.
	TypeBlocking Type = "blocking"
	// TypeSuggested is advisory only and never gates availability.
	TypeSuggested Type = "suggested"
	// TypeParallel marks work intended to happen alongside the
	// prerequisite; it never gates availability either.
	TypeParallel Type = "parallel"
)

// Edge is a directed prerequisite relationship: TaskID depends on
// DependsOnID. Edges are created with the owning task and only ever
// deleted with it.
type Edge struct {
	ID           int64     `db:"id"`
	TaskID       string    `db:"task_id"`
	DependsOnID  string    `db:"depends_on_id"`
	Type         Type      `db:"dependency_type"`
	AutoComplete bool      `db:"auto_complete"`
	CreatedAt    time.Time `db:"created_at"`
}

// Gates reports whether the edge participates in the blocked ->
// available transition.
func (e Edge) Gates() bool {
	return e.Type == TypeBlocking
}
