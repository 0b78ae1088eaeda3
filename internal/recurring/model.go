// Package recurring generates future task instances from named
// cadence patterns.
package recurring

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Frequency of a recurring pattern.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

// DaysOfWeek is a set of weekdays stored as a comma separated list,
// using Go's time.Weekday numbering (Sunday = 0).
type DaysOfWeek []time.Weekday

// Value implements driver.Valuer.
func (d DaysOfWeek) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	parts := make([]string, len(d))
	for i, wd := range d {
		parts[i] = strconv.Itoa(int(wd))
	}
	return strings.Join(parts, ","), nil
}

// Scan implements sql.Scanner.
func (d *DaysOfWeek) Scan(src interface{}) error {
	if src == nil {
		*d = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("unsupported days_of_week type %T", src)
	}
	if s == "" {
		*d = nil
		return nil
	}
	parts := strings.Split(s, ",")
	days := make(DaysOfWeek, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("parse days_of_week %q: %w", s, err)
		}
		days = append(days, time.Weekday(n))
	}
	*d = days
	return nil
}

// Contains reports whether wd is in the set.
func (d DaysOfWeek) Contains(wd time.Weekday) bool {
	for _, v := range d {
		if v == wd {
			return true
		}
	}
	return false
}

// Pattern is a named recurrence cadence.
type Pattern struct {
	ID             string        `db:"id"`
	Name           string        `db:"name"`
	Frequency      Frequency     `db:"frequency"`
	IntervalValue  int           `db:"interval_value"`
	DaysOfWeek     DaysOfWeek    `db:"days_of_week"`
	DayOfMonth     sql.NullInt64 `db:"day_of_month"`
	EndsAt         sql.NullTime  `db:"ends_at"`
	MaxOccurrences sql.NullInt64 `db:"max_occurrences"`
	Timezone       string        `db:"timezone"`
	CreatedAt      time.Time     `db:"created_at"`
}

// Binding links a pattern to a task template and tracks generation
// progress.
type Binding struct {
	ID               string       `db:"id"`
	UserID           string       `db:"user_id"`
	PatternID        string       `db:"pattern_id"`
	TemplateTitle    string       `db:"template_title"`
	TaskType         string       `db:"task_type"`
	NextGenerationAt time.Time    `db:"next_generation_at"`
	LastGeneratedAt  sql.NullTime `db:"last_generated_at"`
	TotalGenerated   int          `db:"total_generated"`
	Active           bool         `db:"active"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

// PatternSpec is the caller-supplied description of a pattern to
// create.
type PatternSpec struct {
	Name           string
	Frequency      Frequency
	IntervalValue  int
	DaysOfWeek     DaysOfWeek
	DayOfMonth     int
	EndsAt         *time.Time
	MaxOccurrences int
	Timezone       string
}
