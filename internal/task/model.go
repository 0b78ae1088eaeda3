// Package task provides task models and storage.
package task

import (
	"database/sql"
	"time"
)

// Type identifies the task variant.
type Type string

const (
	TypeAssignment   Type = "assignment"
	TypeLecture      Type = "lecture"
	TypeStudySession Type = "study_session"
)

// Status is the per-task state machine:
// blocked -> available -> in_progress -> completed.
// completed is terminal; blocked is also the initial state when any
// blocking prerequisite is incomplete at creation time.
type Status string

const (
	StatusBlocked    Status = "blocked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Task is a single assignment, lecture, or study session. Status and
// CompletedAt are mutated only by the dependency graph manager.
type Task struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	Type        Type         `db:"task_type"`
	Title       string       `db:"title"`
	DueAt       time.Time    `db:"due_at"`
	Status      Status       `db:"status"`
	CompletedAt sql.NullTime `db:"completed_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

// IsCompleted reports whether the task has reached its terminal state.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
