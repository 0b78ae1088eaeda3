package reminder

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=timezone.go -destination=../mocks/reminder/mock_timezone.go -package=mock_reminder

// TimezoneService places a reminder daysOffset days after base at the
// given hour in the user's configured timezone.
type TimezoneService interface {
	ScheduleInUserTimezone(ctx context.Context, userID string, base time.Time, daysOffset, hour int) (time.Time, error)
}

// DBTimezoneService resolves times through the store's
// schedule_in_user_timezone procedure, which knows each user's
// timezone.
type DBTimezoneService struct {
	db *sqlx.DB
}

// NewDBTimezoneService creates a new DBTimezoneService.
func NewDBTimezoneService(db *sqlx.DB) *DBTimezoneService {
	return &DBTimezoneService{db: db}
}

// ScheduleInUserTimezone delegates to the stored function. Callers
// fall back to UTC arithmetic when it fails.
func (s *DBTimezoneService) ScheduleInUserTimezone(ctx context.Context, userID string, base time.Time, daysOffset, hour int) (time.Time, error) {
	var ts time.Time
	err := s.db.GetContext(ctx, &ts,
		"SELECT schedule_in_user_timezone(?, ?, ?, ?)", userID, base, daysOffset, hour)
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

// utcSchedule is the degraded but deterministic fallback: a plain UTC
// date shift normalized to the preferred hour.
func utcSchedule(base time.Time, daysOffset, hour int) time.Time {
	d := base.UTC().AddDate(0, 0, daysOffset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}
