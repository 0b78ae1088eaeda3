// Package performance aggregates review history into retention,
// velocity, difficulty, and mastery insights.
package performance

import (
	"database/sql"
	"time"
)

// Record is one completed review. Records are append-only: the core
// never updates or deletes them.
type Record struct {
	ID                  int64           `db:"id"`
	UserID              string          `db:"user_id"`
	SessionID           string          `db:"session_id"`
	Topic               string          `db:"topic"`
	Quality             int             `db:"quality_rating"`
	EaseFactor          float64         `db:"ease_factor"`
	ResponseTimeSeconds sql.NullFloat64 `db:"response_time_seconds"`
	CreatedAt           time.Time       `db:"created_at"`
}

// Mastery is the coarse skill classification.
type Mastery string

const (
	MasteryBeginner     Mastery = "beginner"
	MasteryIntermediate Mastery = "intermediate"
	MasteryAdvanced     Mastery = "advanced"
)

// Trend classifies the direction of a topic's recent quality ratings.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// TopicDifficulty describes how hard a topic currently is for the user.
type TopicDifficulty struct {
	Topic      string
	Reviews    int
	Difficulty float64 // 5 - mean of the last 7 quality ratings
	Trend      Trend
}

// StudyHour is one hour-of-day bucket ranked by mean quality.
type StudyHour struct {
	Hour        int
	Reviews     int
	MeanQuality float64
}

// Summary bundles every analytics output for one user.
type Summary struct {
	TotalReviews     int
	RetentionRate    float64
	LearningVelocity float64
	MeanQuality      float64
	MeanEaseFactor   float64
	Mastery          Mastery
	Difficulties     []TopicDifficulty
	OptimalHours     []StudyHour
	Recommendations  []string
}
