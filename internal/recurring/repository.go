package recurring

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studyflow-app/studyflow/internal/apperror"
)

//go:generate mockgen -source=repository.go -destination=../mocks/recurring/mock_repository.go -package=mock_recurring

// PatternRepository defines operations for managing recurring
// patterns.
type PatternRepository interface {
	Create(ctx context.Context, p *Pattern) error
	Find(ctx context.Context, id string) (*Pattern, error)
}

// BindingRepository defines operations for managing recurring task
// bindings.
type BindingRepository interface {
	Create(ctx context.Context, b *Binding) error
	Find(ctx context.Context, id string) (*Binding, error)
	FindDue(ctx context.Context, before time.Time, limit int) ([]Binding, error)
	Advance(ctx context.Context, id string, next time.Time, totalGenerated int, generatedAt time.Time) error
	Deactivate(ctx context.Context, id string) error
}

// DBPatternRepository implements PatternRepository using MySQL.
type DBPatternRepository struct {
	db *sqlx.DB
}

// NewDBPatternRepository creates a new DBPatternRepository.
func NewDBPatternRepository(db *sqlx.DB) *DBPatternRepository {
	return &DBPatternRepository{db: db}
}

// Create inserts a pattern.
func (r *DBPatternRepository) Create(ctx context.Context, p *Pattern) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO recurring_patterns (id, name, frequency, interval_value, days_of_week, day_of_month, ends_at, max_occurrences, timezone) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, p.Frequency, p.IntervalValue, p.DaysOfWeek, p.DayOfMonth, p.EndsAt, p.MaxOccurrences, p.Timezone)
	if err != nil {
		return apperror.Persistence("insert recurring pattern", err)
	}
	return nil
}

// Find returns one pattern by id.
func (r *DBPatternRepository) Find(ctx context.Context, id string) (*Pattern, error) {
	var p Pattern
	err := r.db.GetContext(ctx, &p, "SELECT * FROM recurring_patterns WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperror.NotFoundError{Kind: "recurring pattern", ID: id}
	}
	if err != nil {
		return nil, apperror.Persistence("load recurring pattern", err)
	}
	return &p, nil
}

// DBBindingRepository implements BindingRepository using MySQL.
type DBBindingRepository struct {
	db *sqlx.DB
}

// NewDBBindingRepository creates a new DBBindingRepository.
func NewDBBindingRepository(db *sqlx.DB) *DBBindingRepository {
	return &DBBindingRepository{db: db}
}

// Create inserts a binding.
func (r *DBBindingRepository) Create(ctx context.Context, b *Binding) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO recurring_task_bindings (id, user_id, pattern_id, template_title, task_type, next_generation_at, total_generated, active) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		b.ID, b.UserID, b.PatternID, b.TemplateTitle, b.TaskType, b.NextGenerationAt, b.TotalGenerated, b.Active)
	if err != nil {
		return apperror.Persistence("insert recurring binding", err)
	}
	return nil
}

// Find returns one binding by id.
func (r *DBBindingRepository) Find(ctx context.Context, id string) (*Binding, error) {
	var b Binding
	err := r.db.GetContext(ctx, &b, "SELECT * FROM recurring_task_bindings WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperror.NotFoundError{Kind: "recurring binding", ID: id}
	}
	if err != nil {
		return nil, apperror.Persistence("load recurring binding", err)
	}
	return &b, nil
}

// FindDue returns active bindings whose next generation date has
// passed.
func (r *DBBindingRepository) FindDue(ctx context.Context, before time.Time, limit int) ([]Binding, error) {
	var bindings []Binding
	err := r.db.SelectContext(ctx, &bindings,
		"SELECT * FROM recurring_task_bindings WHERE active = TRUE AND next_generation_at <= ? ORDER BY next_generation_at LIMIT ?",
		before, limit)
	if err != nil {
		return nil, apperror.Persistence("load due recurring bindings", err)
	}
	return bindings, nil
}

// Advance moves a binding's generation cursor forward after
// materializing instances.
func (r *DBBindingRepository) Advance(ctx context.Context, id string, next time.Time, totalGenerated int, generatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE recurring_task_bindings SET next_generation_at = ?, total_generated = ?, last_generated_at = ? WHERE id = ?",
		next, totalGenerated, generatedAt, id)
	if err != nil {
		return apperror.Persistence("advance recurring binding", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &apperror.NotFoundError{Kind: "recurring binding", ID: id}
	}
	return nil
}

// Deactivate marks a binding inactive. Exhausted or cancelled
// bindings stay in the table for history.
func (r *DBBindingRepository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE recurring_task_bindings SET active = FALSE WHERE id = ?", id)
	if err != nil {
		return apperror.Persistence("deactivate recurring binding", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &apperror.NotFoundError{Kind: "recurring binding", ID: id}
	}
	return nil
}
