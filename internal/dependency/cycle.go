package dependency

import (
	"sort"
	"strings"
)

const (
	colorWhite = iota // unvisited
	colorGrey         // on the recursion stack
	colorBlack        // fully explored
)

// detectCycles runs a depth-first traversal over the edge set,
// maintaining an explicit recursion stack, and returns every distinct
// cycle as an ordered node sequence. The edge set is small (tens of
// edges), so there is no need for incremental cycle detection.
func detectCycles(edges []Edge) [][]string {
	adjacency := make(map[string][]string)
	nodes := make(map[string]struct{})
	for _, e := range edges {
		adjacency[e.TaskID] = append(adjacency[e.TaskID], e.DependsOnID)
		nodes[e.TaskID] = struct{}{}
		nodes[e.DependsOnID] = struct{}{}
	}

	// Deterministic traversal order so the same edge set always
	// reports the same cycles.
	starts := make([]string, 0, len(nodes))
	for n := range nodes {
		starts = append(starts, n)
	}
	sort.Strings(starts)
	for _, neighbors := range adjacency {
		sort.Strings(neighbors)
	}

	color := make(map[string]int, len(nodes))
	var stack []string
	var cycles [][]string
	found := make(map[string]struct{})

	var visit func(node string)
	visit = func(node string) {
		color[node] = colorGrey
		stack = append(stack, node)

		for _, next := range adjacency[node] {
			switch color[next] {
			case colorWhite:
				visit(next)
			case colorGrey:
				cycle := extractCycle(stack, next)
				key := canonicalCycleKey(cycle)
				if _, dup := found[key]; !dup {
					found[key] = struct{}{}
					cycles = append(cycles, cycle)
				}
			}
		}

		stack = stack[:len(stack)-1]
		color[node] = colorBlack
	}

	for _, n := range starts {
		if color[n] == colorWhite {
			visit(n)
		}
	}
	return cycles
}

// extractCycle returns the stack suffix beginning at the first
// occurrence of start.
func extractCycle(stack []string, start string) []string {
	for i, n := range stack {
		if n == start {
			cycle := make([]string, len(stack)-i)
			copy(cycle, stack[i:])
			return cycle
		}
	}
	return nil
}

// canonicalCycleKey rotates the cycle so its smallest node comes
// first, giving rotation-independent deduplication.
func canonicalCycleKey(cycle []string) string {
	if len(cycle) == 0 {
		return ""
	}
	minIdx := 0
	for i, n := range cycle {
		if n < cycle[minIdx] {
			minIdx = i
		}
	}
	rotated := make([]string, 0, len(cycle))
	rotated = append(rotated, cycle[minIdx:]...)
	rotated = append(rotated, cycle[:minIdx]...)
	return strings.Join(rotated, "->")
}

func cycleString(cycle []string) string {
	return strings.Join(cycle, " -> ")
}
