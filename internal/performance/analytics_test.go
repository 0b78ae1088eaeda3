package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordsWithQualities(qualities ...int) []Record {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	records := make([]Record, len(qualities))
	for i, q := range qualities {
		records[i] = Record{
			UserID:    "u1",
			Topic:     "calculus",
			Quality:   q,
			CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return records
}

func TestRetention(t *testing.T) {
	tests := []struct {
		name      string
		qualities []int
		want      float64
	}{
		{
			name:      "empty history is zero",
			qualities: nil,
			want:      0,
		},
		{
			name:      "seven of ten retained",
			qualities: []int{5, 4, 3, 3, 4, 5, 3, 2, 1, 0},
			want:      70.0,
		},
		{
			name:      "all retained",
			qualities: []int{3, 4, 5},
			want:      100.0,
		},
		{
			name:      "none retained",
			qualities: []int{0, 1, 2},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Retention(recordsWithQualities(tt.qualities...)), 1e-9)
		})
	}
}

func TestRetention_MonotonicInRetainedCount(t *testing.T) {
	// Holding total count fixed at 10, retention never decreases as
	// more reviews cross the quality threshold.
	prev := -1.0
	for retained := 0; retained <= 10; retained++ {
		qualities := make([]int, 10)
		for i := 0; i < retained; i++ {
			qualities[i] = 4
		}
		got := Retention(recordsWithQualities(qualities...))
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestVelocity(t *testing.T) {
	tests := []struct {
		name      string
		qualities []int
		want      float64
	}{
		{
			name:      "empty history is zero",
			qualities: nil,
			want:      0,
		},
		{
			name:      "single review is zero",
			qualities: []int{5},
			want:      0,
		},
		{
			name:      "steady improvement has positive slope",
			qualities: []int{1, 2, 3, 4, 5},
			// Perfect unit slope scaled by 100.
			want: 100,
		},
		{
			name:      "flat history is zero",
			qualities: []int{3, 3, 3, 3},
			want:      0,
		},
		{
			name:      "decline floors at zero",
			qualities: []int{5, 4, 3, 2, 1},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Velocity(recordsWithQualities(tt.qualities...)), 1e-9)
		})
	}
}

func TestClassifyMastery(t *testing.T) {
	tests := []struct {
		name     string
		quality  float64
		ease     float64
		expected Mastery
	}{
		{name: "advanced", quality: 4.5, ease: 3.2, expected: MasteryAdvanced},
		{name: "advanced boundary is inclusive", quality: 4.0, ease: 3.0, expected: MasteryAdvanced},
		{name: "intermediate", quality: 3.5, ease: 2.7, expected: MasteryIntermediate},
		{name: "intermediate boundary is inclusive", quality: 3.0, ease: 2.5, expected: MasteryIntermediate},
		{name: "high quality low ease is intermediate", quality: 4.5, ease: 2.9, expected: MasteryIntermediate},
		{name: "beginner", quality: 2.9, ease: 2.4, expected: MasteryBeginner},
		{name: "empty history means beginner", quality: 0, ease: 0, expected: MasteryBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyMastery(tt.quality, tt.ease))
		})
	}
}

func TestDifficulties(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	build := func(topic string, qualities ...int) []Record {
		records := make([]Record, len(qualities))
		for i, q := range qualities {
			records[i] = Record{
				Topic:     topic,
				Quality:   q,
				CreatedAt: base.Add(time.Duration(i) * time.Hour),
			}
		}
		return records
	}

	t.Run("topics below three reviews are skipped", func(t *testing.T) {
		got := difficulties(build("chemistry", 1, 2))
		assert.Empty(t, got)
	})

	t.Run("difficulty is five minus recent mean", func(t *testing.T) {
		got := difficulties(build("chemistry", 2, 2, 2))
		require.Len(t, got, 1)
		assert.Equal(t, "chemistry", got[0].Topic)
		assert.InDelta(t, 3.0, got[0].Difficulty, 1e-9)
		assert.Equal(t, TrendStable, got[0].Trend)
	})

	t.Run("only the last seven reviews feed the score", func(t *testing.T) {
		// Three old failures followed by seven perfect reviews: the
		// window holds only the sevens.
		got := difficulties(build("chemistry", 0, 0, 0, 5, 5, 5, 5, 5, 5, 5))
		require.Len(t, got, 1)
		assert.InDelta(t, 0.0, got[0].Difficulty, 1e-9)
		assert.Equal(t, 10, got[0].Reviews)
	})

	t.Run("improving trend", func(t *testing.T) {
		got := difficulties(build("physics", 1, 1, 1, 3, 4, 4, 4))
		require.Len(t, got, 1)
		assert.Equal(t, TrendImproving, got[0].Trend)
	})

	t.Run("declining trend", func(t *testing.T) {
		got := difficulties(build("physics", 5, 5, 5, 3, 2, 2, 2))
		require.Len(t, got, 1)
		assert.Equal(t, TrendDeclining, got[0].Trend)
	})

	t.Run("topics are ordered deterministically", func(t *testing.T) {
		records := append(build("zoology", 3, 3, 3), build("algebra", 4, 4, 4)...)
		got := difficulties(records)
		require.Len(t, got, 2)
		assert.Equal(t, "algebra", got[0].Topic)
		assert.Equal(t, "zoology", got[1].Topic)
	})
}

func TestOptimalHours(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 3, 1, hour, minute, 0, 0, time.UTC)
	}

	t.Run("buckets below three reviews are skipped", func(t *testing.T) {
		records := []Record{
			{Quality: 5, CreatedAt: at(9, 0)},
			{Quality: 5, CreatedAt: at(9, 30)},
		}
		assert.Empty(t, optimalHours(records))
	})

	t.Run("ranks buckets by mean quality", func(t *testing.T) {
		var records []Record
		for i := 0; i < 3; i++ {
			records = append(records, Record{Quality: 3, CreatedAt: at(9, i)})
			records = append(records, Record{Quality: 5, CreatedAt: at(21, i)})
		}
		got := optimalHours(records)
		require.Len(t, got, 2)
		assert.Equal(t, 21, got[0].Hour)
		assert.InDelta(t, 5.0, got[0].MeanQuality, 1e-9)
		assert.Equal(t, 9, got[1].Hour)
	})

	t.Run("returns at most five buckets", func(t *testing.T) {
		var records []Record
		for hour := 8; hour < 15; hour++ {
			for i := 0; i < 3; i++ {
				records = append(records, Record{Quality: hour - 7, CreatedAt: at(hour, i)})
			}
		}
		got := optimalHours(records)
		assert.Len(t, got, 5)
		assert.Equal(t, 14, got[0].Hour)
	})
}
