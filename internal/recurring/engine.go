package recurring

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyflow-app/studyflow/internal/apperror"
	"github.com/studyflow-app/studyflow/internal/task"
)

// maxGenerationsPerRun caps how many instances a single binding can
// materialize in one call, in case a binding has been dormant for a
// very long time.
const maxGenerationsPerRun = 100

//go:generate mockgen -source=engine.go -destination=../mocks/recurring/mock_engine.go -package=mock_recurring

// ReminderCanceller closes the pending reminders keyed by a binding
// when the binding is deactivated.
type ReminderCanceller interface {
	CancelRemindersForSession(ctx context.Context, sessionID string) error
}

// Engine materializes task instances from recurring patterns.
type Engine struct {
	patterns  PatternRepository
	bindings  BindingRepository
	tasks     task.Repository
	dates     DateService
	reminders ReminderCanceller
	logger    *zap.Logger
	now       func() time.Time
}

// NewEngine creates a new Engine. reminders may be nil when no
// reminder store is wired.
func NewEngine(patterns PatternRepository, bindings BindingRepository, tasks task.Repository, dates DateService, reminders ReminderCanceller, logger *zap.Logger) *Engine {
	return &Engine{
		patterns:  patterns,
		bindings:  bindings,
		tasks:     tasks,
		dates:     dates,
		reminders: reminders,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreatePattern validates and persists a recurrence pattern.
func (e *Engine) CreatePattern(ctx context.Context, spec PatternSpec) (*Pattern, error) {
	if errs := validateSpec(spec); len(errs) > 0 {
		return nil, &apperror.ValidationError{Errors: errs}
	}

	p := &Pattern{
		ID:            uuid.NewString(),
		Name:          spec.Name,
		Frequency:     spec.Frequency,
		IntervalValue: spec.IntervalValue,
		DaysOfWeek:    spec.DaysOfWeek,
		Timezone:      spec.Timezone,
	}
	if spec.DayOfMonth > 0 {
		p.DayOfMonth = sql.NullInt64{Valid: true, Int64: int64(spec.DayOfMonth)}
	}
	if spec.EndsAt != nil {
		p.EndsAt = sql.NullTime{Valid: true, Time: *spec.EndsAt}
	}
	if spec.MaxOccurrences > 0 {
		p.MaxOccurrences = sql.NullInt64{Valid: true, Int64: int64(spec.MaxOccurrences)}
	}

	if err := e.patterns.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateRecurringTask creates a pattern and binds it to a task
// template, computing the initial generation date from the pattern's
// frequency rule.
func (e *Engine) CreateRecurringTask(ctx context.Context, userID, templateTitle string, taskType task.Type, spec PatternSpec, startDate time.Time) (*Binding, error) {
	p, err := e.CreatePattern(ctx, spec)
	if err != nil {
		return nil, err
	}

	b := &Binding{
		ID:               uuid.NewString(),
		UserID:           userID,
		PatternID:        p.ID,
		TemplateTitle:    templateTitle,
		TaskType:         string(taskType),
		NextGenerationAt: initialDate(p, startDate),
		Active:           true,
	}
	if err := e.bindings.Create(ctx, b); err != nil {
		return nil, err
	}

	e.logger.Info("recurring binding created",
		zap.String("binding_id", b.ID),
		zap.String("pattern_id", p.ID),
		zap.String("frequency", string(p.Frequency)),
		zap.Time("next_generation_at", b.NextGenerationAt))
	return b, nil
}

// GenerateNextTasks materializes every instance of a binding whose
// generation date has passed, advancing the cursor as it goes.
// Exhausted bindings (end date or max occurrences reached) are
// deactivated.
func (e *Engine) GenerateNextTasks(ctx context.Context, bindingID string) ([]task.Task, error) {
	b, err := e.bindings.Find(ctx, bindingID)
	if err != nil {
		return nil, err
	}
	if !b.Active {
		return nil, nil
	}

	p, err := e.patterns.Find(ctx, b.PatternID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	next := b.NextGenerationAt
	total := b.TotalGenerated
	var generated []task.Task
	exhausted := false

	for !next.After(now) && len(generated) < maxGenerationsPerRun {
		if p.EndsAt.Valid && next.After(p.EndsAt.Time) {
			exhausted = true
			break
		}

		t := task.Task{
			ID:     uuid.NewString(),
			UserID: b.UserID,
			Type:   task.Type(b.TaskType),
			Title:  b.TemplateTitle,
			DueAt:  next,
			Status: task.StatusAvailable,
		}
		if err := e.tasks.Create(ctx, &t); err != nil {
			return nil, fmt.Errorf("materialize recurring task: %w", err)
		}
		generated = append(generated, t)
		total++

		if p.MaxOccurrences.Valid && int64(total) >= p.MaxOccurrences.Int64 {
			exhausted = true
		}

		next = e.nextDate(ctx, p, next)
		if exhausted {
			break
		}
	}

	if len(generated) > 0 || exhausted {
		if err := e.bindings.Advance(ctx, b.ID, next, total, now); err != nil {
			return nil, err
		}
	}
	if exhausted {
		if err := e.deactivate(ctx, b.ID); err != nil {
			return nil, err
		}
	}

	if len(generated) > 0 {
		e.logger.Info("recurring tasks generated",
			zap.String("binding_id", b.ID),
			zap.Int("count", len(generated)),
			zap.Time("next_generation_at", next))
	}
	return generated, nil
}

// ProcessDueRecurringTasks generates instances for every active
// binding whose generation date has passed. A failing binding is
// logged and skipped so one bad row cannot stall the sweep.
func (e *Engine) ProcessDueRecurringTasks(ctx context.Context, batchSize int) (int, error) {
	due, err := e.bindings.FindDue(ctx, e.now(), batchSize)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, b := range due {
		tasks, err := e.GenerateNextTasks(ctx, b.ID)
		if err != nil {
			e.logger.Error("recurring generation failed",
				zap.String("binding_id", b.ID), zap.Error(err))
			continue
		}
		count += len(tasks)
	}
	return count, nil
}

// DeactivateBinding stops future generation for a binding and cancels
// its pending reminders.
func (e *Engine) DeactivateBinding(ctx context.Context, bindingID string) error {
	if _, err := e.bindings.Find(ctx, bindingID); err != nil {
		return err
	}
	return e.deactivate(ctx, bindingID)
}

func (e *Engine) deactivate(ctx context.Context, bindingID string) error {
	if err := e.bindings.Deactivate(ctx, bindingID); err != nil {
		return err
	}
	if e.reminders != nil {
		if err := e.reminders.CancelRemindersForSession(ctx, bindingID); err != nil {
			return fmt.Errorf("cancel reminders for binding %s: %w", bindingID, err)
		}
	}
	e.logger.Info("recurring binding deactivated", zap.String("binding_id", bindingID))
	return nil
}

// nextDate asks the store procedure for the following date and falls
// back to the local frequency rules when it is unavailable.
func (e *Engine) nextDate(ctx context.Context, p *Pattern, from time.Time) time.Time {
	if e.dates != nil {
		next, err := e.dates.NextGenerationDate(ctx, p.ID, from)
		if err == nil {
			return next
		}
		e.logger.Warn("date service unavailable, using local frequency rules",
			zap.String("pattern_id", p.ID), zap.Error(err))
	}
	return advance(p, from)
}

func validateSpec(spec PatternSpec) []string {
	var errs []string
	switch spec.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
	default:
		errs = append(errs, fmt.Sprintf("unknown frequency %q", spec.Frequency))
	}
	if spec.IntervalValue < 1 {
		errs = append(errs, "interval value must be at least 1")
	}
	if spec.Frequency == FrequencyWeekly && len(spec.DaysOfWeek) == 0 {
		errs = append(errs, "weekly patterns require at least one day of week")
	}
	if spec.Frequency == FrequencyMonthly && (spec.DayOfMonth < 1 || spec.DayOfMonth > 31) {
		errs = append(errs, "monthly patterns require a day of month between 1 and 31")
	}
	return errs
}
