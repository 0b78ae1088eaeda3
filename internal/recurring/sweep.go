package recurring

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/studyflow-app/studyflow/internal/config"
)

//go:generate mockgen -source=sweep.go -destination=../mocks/recurring/mock_sweep.go -package=mock_recurring

// ReminderDispatch delivers due reminders. It is nil when the sweep
// runs without a notifier.
type ReminderDispatch interface {
	DispatchDue(ctx context.Context, limit int) (int, error)
}

// Sweeper periodically materializes due recurring tasks and delivers
// due reminders.
type Sweeper struct {
	engine   *Engine
	dispatch ReminderDispatch
	cfg      config.SweepConfig
	logger   *zap.Logger
	cron     *cron.Cron
}

// NewSweeper creates a new Sweeper.
func NewSweeper(engine *Engine, dispatch ReminderDispatch, cfg config.SweepConfig, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		engine:   engine,
		dispatch: dispatch,
		cfg:      cfg,
		logger:   logger,
		cron:     cron.New(),
	}
}

// RunOnce executes a single sweep pass.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	generated, err := s.engine.ProcessDueRecurringTasks(ctx, s.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("process due recurring tasks: %w", err)
	}

	notified := 0
	if s.dispatch != nil {
		notified, err = s.dispatch.DispatchDue(ctx, s.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("dispatch due reminders: %w", err)
		}
	}

	s.logger.Info("sweep completed",
		zap.Int("tasks_generated", generated),
		zap.Int("reminders_notified", notified))
	return nil
}

// Start schedules the sweep on the configured cron spec and runs it in
// the background until Stop is called.
func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(s.cfg.CronSpec, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sweep %q: %w", s.cfg.CronSpec, err)
	}
	s.cron.Start()
	s.logger.Info("sweep daemon started", zap.String("cron", s.cfg.CronSpec))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish or
// the context to expire.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
