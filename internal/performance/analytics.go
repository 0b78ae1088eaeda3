package performance

import (
	"context"
	"fmt"
	"sort"
)

const (
	// difficultyWindow is how many recent reviews of a topic feed its
	// difficulty score.
	difficultyWindow = 7
	// minTopicReviews is the smallest history a topic needs before a
	// difficulty score is meaningful.
	minTopicReviews = 3
	// minHourReviews is the smallest bucket size an hour-of-day needs
	// before it is ranked.
	minHourReviews = 3
	// maxOptimalHours caps the ranked hour list.
	maxOptimalHours = 5
	// trendThreshold separates improving/declining from stable.
	trendThreshold = 0.5
)

// AnalyticsEngine derives read-only insights from a user's review
// history. Every method treats an empty history as valid input and
// returns a neutral zero result; errors are reserved for store
// failures so callers can tell "no data" from "fetch failed".
type AnalyticsEngine struct {
	records RecordRepository
}

// NewAnalyticsEngine creates a new AnalyticsEngine.
func NewAnalyticsEngine(records RecordRepository) *AnalyticsEngine {
	return &AnalyticsEngine{records: records}
}

// RetentionRate returns the percentage of reviews with quality >= 3.
func (e *AnalyticsEngine) RetentionRate(ctx context.Context, userID string) (float64, error) {
	records, err := e.records.FindAllByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return Retention(records), nil
}

// LearningVelocity returns the slope of quality over review index,
// scaled by 100 and floored at zero.
func (e *AnalyticsEngine) LearningVelocity(ctx context.Context, userID string) (float64, error) {
	records, err := e.records.FindAllByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return Velocity(records), nil
}

// DifficultyPatterns returns a difficulty score and trend per topic,
// for topics with at least three reviews.
func (e *AnalyticsEngine) DifficultyPatterns(ctx context.Context, userID string) ([]TopicDifficulty, error) {
	records, err := e.records.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return difficulties(records), nil
}

// OptimalStudyTimes ranks hour-of-day buckets with at least three
// reviews by mean quality and returns the top five.
func (e *AnalyticsEngine) OptimalStudyTimes(ctx context.Context, userID string) ([]StudyHour, error) {
	records, err := e.records.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return optimalHours(records), nil
}

// MasteryLevel classifies the user from aggregate quality and ease
// factor.
func (e *AnalyticsEngine) MasteryLevel(ctx context.Context, userID string) (Mastery, error) {
	records, err := e.records.FindAllByUser(ctx, userID)
	if err != nil {
		return MasteryBeginner, err
	}
	meanQ, meanEF := means(records)
	return ClassifyMastery(meanQ, meanEF), nil
}

// AggregatePerformance returns mean quality and mean ease factor over
// the user's most recent reviews, capped at window records. The
// scheduler consumes this to adapt interval sequences.
func (e *AnalyticsEngine) AggregatePerformance(ctx context.Context, userID string, window int) (meanQuality, meanEase float64, n int, err error) {
	records, err := e.records.FindRecentByUser(ctx, userID, window)
	if err != nil {
		return 0, 0, 0, err
	}
	meanQuality, meanEase = means(records)
	return meanQuality, meanEase, len(records), nil
}

// Summary computes every analytics output in one pass over the
// history.
func (e *AnalyticsEngine) Summary(ctx context.Context, userID string) (*Summary, error) {
	records, err := e.records.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	meanQ, meanEF := means(records)
	s := &Summary{
		TotalReviews:     len(records),
		RetentionRate:    Retention(records),
		LearningVelocity: Velocity(records),
		MeanQuality:      meanQ,
		MeanEaseFactor:   meanEF,
		Mastery:          ClassifyMastery(meanQ, meanEF),
		Difficulties:     difficulties(records),
		OptimalHours:     optimalHours(records),
	}
	s.Recommendations = recommendations(s)
	return s, nil
}

// Retention is the percentage of records with quality >= 3. Zero
// records yield zero.
func Retention(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	retained := 0
	for _, r := range records {
		if r.Quality >= 3 {
			retained++
		}
	}
	return float64(retained) / float64(len(records)) * 100
}

// Velocity is the ordinary least-squares slope of quality against
// review index in chronological order, scaled by 100. Negative slopes
// report as zero; decline is captured per topic instead.
func Velocity(records []Record) float64 {
	n := len(records)
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, r := range records {
		x := float64(i)
		y := float64(r.Quality)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := float64(n)*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	slope := (float64(n)*sumXY - sumX*sumY) / denom

	velocity := slope * 100
	if velocity < 0 {
		return 0
	}
	return velocity
}

// ClassifyMastery is a pure function of aggregate quality and ease
// factor. Boundaries are inclusive: exactly 4.0/3.0 is advanced,
// exactly 3.0/2.5 is intermediate.
func ClassifyMastery(meanQuality, meanEase float64) Mastery {
	switch {
	case meanQuality >= 4 && meanEase >= 3.0:
		return MasteryAdvanced
	case meanQuality >= 3 && meanEase >= 2.5:
		return MasteryIntermediate
	default:
		return MasteryBeginner
	}
}

func means(records []Record) (meanQuality, meanEase float64) {
	if len(records) == 0 {
		return 0, 0
	}
	var sumQ, sumEF float64
	for _, r := range records {
		sumQ += float64(r.Quality)
		sumEF += r.EaseFactor
	}
	n := float64(len(records))
	return sumQ / n, sumEF / n
}

func difficulties(records []Record) []TopicDifficulty {
	byTopic := make(map[string][]Record)
	for _, r := range records {
		byTopic[r.Topic] = append(byTopic[r.Topic], r)
	}

	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	var result []TopicDifficulty
	for _, topic := range topics {
		reviews := byTopic[topic]
		if len(reviews) < minTopicReviews {
			continue
		}

		window := reviews
		if len(window) > difficultyWindow {
			window = window[len(window)-difficultyWindow:]
		}

		var sum float64
		for _, r := range window {
			sum += float64(r.Quality)
		}
		mean := sum / float64(len(window))

		result = append(result, TopicDifficulty{
			Topic:      topic,
			Reviews:    len(reviews),
			Difficulty: 5 - mean,
			Trend:      windowTrend(window),
		})
	}
	return result
}

// windowTrend compares the mean quality of the window's first half to
// its second half. An odd-length window leaves its middle review out
// of both halves.
func windowTrend(window []Record) Trend {
	half := len(window) / 2
	if half == 0 {
		return TrendStable
	}

	var firstSum, secondSum float64
	for _, r := range window[:half] {
		firstSum += float64(r.Quality)
	}
	for _, r := range window[len(window)-half:] {
		secondSum += float64(r.Quality)
	}
	delta := secondSum/float64(half) - firstSum/float64(half)

	switch {
	case delta > trendThreshold:
		return TrendImproving
	case delta < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func optimalHours(records []Record) []StudyHour {
	type bucket struct {
		count int
		sum   float64
	}
	byHour := make(map[int]*bucket)
	for _, r := range records {
		h := r.CreatedAt.Hour()
		if byHour[h] == nil {
			byHour[h] = &bucket{}
		}
		byHour[h].count++
		byHour[h].sum += float64(r.Quality)
	}

	var hours []StudyHour
	for h, b := range byHour {
		if b.count < minHourReviews {
			continue
		}
		hours = append(hours, StudyHour{
			Hour:        h,
			Reviews:     b.count,
			MeanQuality: b.sum / float64(b.count),
		})
	}
	sort.Slice(hours, func(i, j int) bool {
		if hours[i].MeanQuality != hours[j].MeanQuality {
			return hours[i].MeanQuality > hours[j].MeanQuality
		}
		return hours[i].Hour < hours[j].Hour
	})

	if len(hours) > maxOptimalHours {
		hours = hours[:maxOptimalHours]
	}
	return hours
}

// recommendations is presentational text generation over the computed
// summary, not an algorithm.
func recommendations(s *Summary) []string {
	if s.TotalReviews == 0 {
		return nil
	}

	var recs []string
	if s.RetentionRate < 70 {
		recs = append(recs, "Retention is below 70%. Review sessions more frequently with shorter intervals.")
	}
	if s.Mastery == MasteryAdvanced {
		recs = append(recs, "You have strong mastery. Longer intervals between reviews will keep sessions efficient.")
	}
	for _, d := range s.Difficulties {
		if d.Difficulty >= 3 {
			recs = append(recs, fmt.Sprintf("%q has been difficult recently. Consider breaking it into smaller sessions.", d.Topic))
		}
	}
	if len(s.OptimalHours) > 0 {
		recs = append(recs, fmt.Sprintf("Your recall is strongest around %02d:00. Schedule demanding reviews then.", s.OptimalHours[0].Hour))
	}
	return recs
}
