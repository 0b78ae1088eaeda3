package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studyflow-app/studyflow/internal/apperror"
)

//go:generate mockgen -source=repository.go -destination=../mocks/task/mock_repository.go -package=mock_task

// Repository defines operations for managing tasks.
type Repository interface {
	Find(ctx context.Context, id string) (*Task, error)
	FindByIDs(ctx context.Context, ids []string) ([]Task, error)
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	Create(ctx context.Context, t *Task) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns the task with the given id.
// Returns apperror.NotFoundError if no row matches.
func (r *DBRepository) Find(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.GetContext(ctx, &t, "SELECT * FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperror.NotFoundError{Kind: "task", ID: id}
	}
	if err != nil {
		return nil, apperror.Persistence("load task", err)
	}
	return &t, nil
}

// FindByIDs returns all tasks matching the given ids. Missing ids are
// not an error; callers compare lengths when they care.
func (r *DBRepository) FindByIDs(ctx context.Context, ids []string) ([]Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM tasks WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build task id query: %w", err)
	}

	var tasks []Task
	if err := r.db.SelectContext(ctx, &tasks, r.db.Rebind(query), args...); err != nil {
		return nil, apperror.Persistence("load tasks by ids", err)
	}
	return tasks, nil
}

// ListByUser returns all tasks owned by userID ordered by due date.
func (r *DBRepository) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	var tasks []Task
	err := r.db.SelectContext(ctx, &tasks,
		"SELECT * FROM tasks WHERE user_id = ? ORDER BY due_at, id", userID)
	if err != nil {
		return nil, apperror.Persistence("list tasks by user", err)
	}
	return tasks, nil
}

// Create inserts a new task.
func (r *DBRepository) Create(ctx context.Context, t *Task) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (id, user_id, task_type, title, due_at, status) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID, t.UserID, t.Type, t.Title, t.DueAt, t.Status,
	)
	if err != nil {
		return apperror.Persistence("insert task", err)
	}
	return nil
}

// UpdateStatus sets the task status.
func (r *DBRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return apperror.Persistence("update task status", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &apperror.NotFoundError{Kind: "task", ID: id}
	}
	return nil
}

// Delete removes a task. Deleting a missing task is not an error.
func (r *DBRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return apperror.Persistence("delete task", err)
	}
	return nil
}

// MarkCompleted sets the terminal status and the completion timestamp.
func (r *DBRepository) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?",
		StatusCompleted, completedAt, id)
	if err != nil {
		return apperror.Persistence("mark task completed", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &apperror.NotFoundError{Kind: "task", ID: id}
	}
	return nil
}
