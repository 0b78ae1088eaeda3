package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCycles(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  [][]string
	}{
		{
			name:  "empty edge set",
			edges: nil,
			want:  nil,
		},
		{
			name: "chain has no cycle",
			edges: []Edge{
				{TaskID: "a", DependsOnID: "b"},
				{TaskID: "b", DependsOnID: "c"},
			},
			want: nil,
		},
		{
			name: "diamond has no cycle",
			edges: []Edge{
				{TaskID: "a", DependsOnID: "b"},
				{TaskID: "a", DependsOnID: "c"},
				{TaskID: "b", DependsOnID: "d"},
				{TaskID: "c", DependsOnID: "d"},
			},
			want: nil,
		},
		{
			name: "three node cycle",
			edges: []Edge{
				{TaskID: "a", DependsOnID: "b"},
				{TaskID: "b", DependsOnID: "c"},
				{TaskID: "c", DependsOnID: "a"},
			},
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "two node cycle with extra edge",
			edges: []Edge{
				{TaskID: "a", DependsOnID: "b"},
				{TaskID: "b", DependsOnID: "a"},
				{TaskID: "a", DependsOnID: "c"},
			},
			want: [][]string{{"a", "b"}},
		},
		{
			name: "two independent cycles",
			edges: []Edge{
				{TaskID: "a", DependsOnID: "b"},
				{TaskID: "b", DependsOnID: "a"},
				{TaskID: "x", DependsOnID: "y"},
				{TaskID: "y", DependsOnID: "x"},
			},
			want: [][]string{{"a", "b"}, {"x", "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectCycles(tt.edges)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, canonicalCycleKey(tt.want[i]), canonicalCycleKey(got[i]))
			}
		})
	}
}

func TestDetectCycles_Deterministic(t *testing.T) {
	edges := []Edge{
		{TaskID: "a", DependsOnID: "b"},
		{TaskID: "b", DependsOnID: "c"},
		{TaskID: "c", DependsOnID: "a"},
		{TaskID: "c", DependsOnID: "d"},
	}

	first := detectCycles(edges)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, detectCycles(edges))
	}
}

func TestCanonicalCycleKey(t *testing.T) {
	// Rotations of the same cycle share one key.
	assert.Equal(t,
		canonicalCycleKey([]string{"b", "c", "a"}),
		canonicalCycleKey([]string{"a", "b", "c"}),
	)
	assert.NotEqual(t,
		canonicalCycleKey([]string{"a", "c", "b"}),
		canonicalCycleKey([]string{"a", "b", "c"}),
	)
}
