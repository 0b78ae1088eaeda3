package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/studyflow-app/studyflow/internal/reminder"
)

// Service finds due reminders and delivers them. A reminder is only
// closed after its notification succeeds, so failed deliveries are
// retried on the next sweep.
type Service struct {
	reminders  reminder.Repository
	dispatcher Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a new Service.
func NewService(reminders reminder.Repository, dispatcher Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		reminders:  reminders,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// DispatchDue delivers every reminder whose fire time has passed and
// marks it notified. A failing reminder is logged and skipped.
func (s *Service) DispatchDue(ctx context.Context, limit int) (int, error) {
	due, err := s.reminders.FindDue(ctx, s.now(), limit)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, r := range due {
		if err := s.dispatcher.Dispatch(ctx, r); err != nil {
			s.logger.Error("reminder dispatch failed",
				zap.String("reminder_id", r.ID),
				zap.String("user_id", r.UserID),
				zap.Error(err))
			continue
		}
		if err := s.reminders.MarkNotified(ctx, r.ID); err != nil {
			s.logger.Error("failed to mark reminder notified",
				zap.String("reminder_id", r.ID), zap.Error(err))
			continue
		}
		count++
	}
	return count, nil
}
