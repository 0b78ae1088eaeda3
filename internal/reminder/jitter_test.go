package reminder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJitter_Deterministic(t *testing.T) {
	for _, interval := range []int{1, 3, 7, 14, 30, 60} {
		first := Jitter("session-abc", interval, 30)
		second := Jitter("session-abc", interval, 30)
		assert.Equal(t, first, second, "interval %d", interval)
	}
}

func TestJitter_WithinBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		offset := Jitter(fmt.Sprintf("session-%d", i), 7, 30)
		assert.GreaterOrEqual(t, offset, -30)
		assert.LessOrEqual(t, offset, 30)
	}
}

func TestJitter_SpreadsAcrossSessions(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[Jitter(fmt.Sprintf("session-%d", i), 3, 30)] = true
	}
	// 100 hashed sessions over 61 buckets should not collapse to a
	// handful of values.
	assert.Greater(t, len(seen), 10)
}

func TestJitter_VariesByInterval(t *testing.T) {
	offsets := map[int]bool{}
	for _, interval := range []int{1, 3, 7, 14, 30} {
		offsets[Jitter("session-abc", interval, 30)] = true
	}
	assert.Greater(t, len(offsets), 1)
}

func TestJitter_ZeroMax(t *testing.T) {
	assert.Equal(t, 0, Jitter("session-abc", 7, 0))
	assert.Equal(t, 0, Jitter("session-abc", 7, -5))
}
