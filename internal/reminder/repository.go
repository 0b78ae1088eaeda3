package reminder

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studyflow-app/studyflow/internal/apperror"
	"github.com/studyflow-app/studyflow/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/reminder/mock_repository.go -package=mock_reminder

// Repository defines operations for managing scheduled reminders.
type Repository interface {
	InsertBatch(ctx context.Context, reminders []*Reminder) error
	FindPendingBySession(ctx context.Context, sessionID string) ([]Reminder, error)
	FindDue(ctx context.Context, before time.Time, limit int) ([]Reminder, error)
	MarkSuperseded(ctx context.Context, sessionID string) error
	MarkCancelled(ctx context.Context, sessionID string) error
	MarkNotified(ctx context.Context, id string) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// InsertBatch inserts all reminders in a single transaction using a
// multi-row INSERT.
func (r *DBRepository) InsertBatch(ctx context.Context, reminders []*Reminder) error {
	if len(reminders) == 0 {
		return nil
	}

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"id", "user_id", "session_id", "remind_at", "reminder_type", "title", "body", "priority"}
		query := database.BuildMultiRowInsert("scheduled_reminders", columns, len(reminders))

		var args []interface{}
		for _, rem := range reminders {
			args = append(args, rem.ID, rem.UserID, rem.SessionID, rem.RemindAt, rem.Type, rem.Title, rem.Body, rem.Priority)
		}
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return apperror.Persistence("insert reminders", err)
	}
	return nil
}

// FindPendingBySession returns the incomplete reminders for a session
// ordered by fire time.
func (r *DBRepository) FindPendingBySession(ctx context.Context, sessionID string) ([]Reminder, error) {
	var reminders []Reminder
	err := r.db.SelectContext(ctx, &reminders,
		"SELECT * FROM scheduled_reminders WHERE session_id = ? AND completed = FALSE ORDER BY remind_at",
		sessionID)
	if err != nil {
		return nil, apperror.Persistence("load pending reminders", err)
	}
	return reminders, nil
}

// FindDue returns incomplete reminders whose fire time has passed.
func (r *DBRepository) FindDue(ctx context.Context, before time.Time, limit int) ([]Reminder, error) {
	var reminders []Reminder
	err := r.db.SelectContext(ctx, &reminders,
		"SELECT * FROM scheduled_reminders WHERE completed = FALSE AND remind_at <= ? ORDER BY remind_at LIMIT ?",
		before, limit)
	if err != nil {
		return nil, apperror.Persistence("load due reminders", err)
	}
	return reminders, nil
}

// MarkSuperseded closes every incomplete reminder of a session with
// action "rescheduled". The completed = FALSE filter makes the call
// idempotent under concurrent rescheduling.
func (r *DBRepository) MarkSuperseded(ctx context.Context, sessionID string) error {
	return r.closeForSession(ctx, sessionID, ActionRescheduled)
}

// MarkCancelled closes every incomplete reminder of a session with
// action "cancelled".
func (r *DBRepository) MarkCancelled(ctx context.Context, sessionID string) error {
	return r.closeForSession(ctx, sessionID, ActionCancelled)
}

func (r *DBRepository) closeForSession(ctx context.Context, sessionID, action string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE scheduled_reminders SET completed = TRUE, action_taken = ? WHERE session_id = ? AND completed = FALSE",
		action, sessionID)
	if err != nil {
		return apperror.Persistence("close reminders for session", err)
	}
	return nil
}

// MarkNotified closes one reminder after successful dispatch.
func (r *DBRepository) MarkNotified(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE scheduled_reminders SET completed = TRUE, action_taken = ? WHERE id = ?",
		ActionNotified, id)
	if err != nil {
		return apperror.Persistence("mark reminder notified", err)
	}
	return nil
}
