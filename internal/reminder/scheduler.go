package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyflow-app/studyflow/internal/config"
)

// Tier names accepted in Preferences.
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// Difficulty preference names and their interval multipliers.
const (
	DifficultyConservative = "conservative"
	DifficultyModerate     = "moderate"
	DifficultyAggressive   = "aggressive"
)

// Aggregate-performance thresholds for interval adaptation. A coarse,
// aggregate-level analogue of SM-2 ease-factor adjustment: it shrinks
// or grows the whole sequence rather than specializing per topic.
const (
	lowQualityThreshold  = 3.0
	highQualityThreshold = 4.0
	highEaseThreshold    = 2.8
	shrinkFactor         = 0.8
	growFactor           = 1.2
)

// pastClamp keeps a jittered reminder from landing before now.
const pastClamp = 5 * time.Minute

// Preferences carries the per-call scheduling options supplied by the
// user.
type Preferences struct {
	Tier            string
	CustomIntervals []int
	Difficulty      string
	PreferredHour   *int
}

//go:generate mockgen -source=scheduler.go -destination=../mocks/reminder/mock_analytics.go -package=mock_reminder

// Analytics is the slice of the performance engine the scheduler
// consumes.
type Analytics interface {
	AggregatePerformance(ctx context.Context, userID string, window int) (meanQuality, meanEase float64, n int, err error)
}

// Scheduler computes adaptive spaced-repetition reminder schedules.
type Scheduler struct {
	reminders Repository
	analytics Analytics
	timezones TimezoneService
	cfg       config.SchedulerConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(reminders Repository, analytics Analytics, timezones TimezoneService, cfg config.SchedulerConfig, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		analytics: analytics,
		timezones: timezones,
		cfg:       cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ScheduleReminders computes the reminder sequence for a reviewed
// session, supersedes any pending reminders for it, and persists the
// new set.
func (s *Scheduler) ScheduleReminders(ctx context.Context, sessionID, userID string, sessionDate time.Time, topic string, prefs *Preferences) ([]Reminder, error) {
	intervals := s.resolveIntervals(prefs)
	factor, err := s.adaptiveFactor(ctx, userID)
	if err != nil {
		return nil, err
	}
	factor *= difficultyMultiplier(prefs)

	days := scaleIntervals(intervals, factor)
	hour := s.cfg.PreferredHour
	if prefs != nil && prefs.PreferredHour != nil {
		hour = *prefs.PreferredHour
	}

	now := s.now()
	rows := make([]*Reminder, 0, len(days))
	for _, d := range days {
		remindAt, tzErr := s.timezones.ScheduleInUserTimezone(ctx, userID, sessionDate, d, hour)
		if tzErr != nil {
			// Degraded but deterministic: plain UTC date shift.
			s.logger.Warn("timezone service unavailable, using UTC fallback",
				zap.String("user_id", userID), zap.Error(tzErr))
			remindAt = utcSchedule(sessionDate, d, hour)
		}

		remindAt = remindAt.Add(time.Duration(Jitter(sessionID, d, s.cfg.MaxJitterMinutes)) * time.Minute)
		if remindAt.Before(now) {
			remindAt = now.Add(pastClamp)
		}

		rows = append(rows, &Reminder{
			ID:        uuid.NewString(),
			UserID:    userID,
			SessionID: sessionID,
			RemindAt:  remindAt,
			Type:      TypeSpacedRepetition,
			Title:     fmt.Sprintf("Review: %s", topic),
			Body:      fmt.Sprintf("Time to review %s. This is your %d-day follow-up.", topic, d),
			Priority:  priorityFor(d),
		})
	}

	// Supersession, not deletion: old reminders stay for audit.
	if err := s.reminders.MarkSuperseded(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := s.reminders.InsertBatch(ctx, rows); err != nil {
		return nil, err
	}

	s.logger.Info("reminders scheduled",
		zap.String("session_id", sessionID),
		zap.String("user_id", userID),
		zap.Ints("interval_days", days))

	result := make([]Reminder, len(rows))
	for i, r := range rows {
		result[i] = *r
	}
	return result, nil
}

// CancelRemindersForSession closes every pending reminder of a session
// with action "cancelled".
func (s *Scheduler) CancelRemindersForSession(ctx context.Context, sessionID string) error {
	return s.reminders.MarkCancelled(ctx, sessionID)
}

// resolveIntervals picks user-supplied custom intervals when present,
// otherwise the tier-based sequence from configuration.
func (s *Scheduler) resolveIntervals(prefs *Preferences) []int {
	if prefs != nil && len(prefs.CustomIntervals) > 0 {
		return prefs.CustomIntervals
	}
	if prefs != nil && prefs.Tier == TierPremium {
		return s.cfg.PremiumIntervals
	}
	return s.cfg.FreeIntervals
}

// adaptiveFactor derives a sequence-wide multiplier from the user's
// aggregate recent performance. An empty history leaves the sequence
// unchanged.
func (s *Scheduler) adaptiveFactor(ctx context.Context, userID string) (float64, error) {
	meanQ, meanEF, n, err := s.analytics.AggregatePerformance(ctx, userID, s.cfg.HistoryWindow)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 1.0, nil
	}
	switch {
	case meanQ < lowQualityThreshold:
		return shrinkFactor, nil
	case meanQ > highQualityThreshold && meanEF > highEaseThreshold:
		return growFactor, nil
	default:
		return 1.0, nil
	}
}

func difficultyMultiplier(prefs *Preferences) float64 {
	if prefs == nil {
		return 1.0
	}
	switch prefs.Difficulty {
	case DifficultyConservative:
		return 0.8
	case DifficultyAggressive:
		return 1.3
	default:
		return 1.0
	}
}

// scaleIntervals multiplies each interval by factor, rounding down to
// whole days and flooring at one day.
func scaleIntervals(intervals []int, factor float64) []int {
	days := make([]int, len(intervals))
	for i, d := range intervals {
		scaled := int(float64(d) * factor)
		if scaled < 1 {
			scaled = 1
		}
		days[i] = scaled
	}
	return days
}

// priorityFor maps the interval length to urgency: the first short
// follow-ups matter most for retention.
func priorityFor(intervalDays int) Priority {
	switch {
	case intervalDays <= 1:
		return PriorityHigh
	case intervalDays <= 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
