// Package reminder computes and stores adaptive spaced-repetition
// reminder schedules.
package reminder

import (
	"database/sql"
	"time"
)

// TypeSpacedRepetition is the only reminder type the scheduling core
// produces.
const TypeSpacedRepetition = "spaced_repetition"

// Action values recorded when a reminder is closed without firing.
const (
	ActionRescheduled = "rescheduled"
	ActionCancelled   = "cancelled"
	ActionNotified    = "notified"
)

// Priority of a scheduled reminder.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Reminder is one scheduled review notification. Superseded reminders
// are marked completed with an action, never deleted, preserving audit
// history.
type Reminder struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	SessionID   string         `db:"session_id"`
	RemindAt    time.Time      `db:"remind_at"`
	Type        string         `db:"reminder_type"`
	Title       string         `db:"title"`
	Body        string         `db:"body"`
	Priority    Priority       `db:"priority"`
	Completed   bool           `db:"completed"`
	ActionTaken sql.NullString `db:"action_taken"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
