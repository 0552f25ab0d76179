package tour

import (
	"fmt"

	"github.com/katalvlaran/diracroute/core"
)

// NearestNeighbor builds a greedy geometric tour of g from start: at each
// step it travels to the closest not-yet-visited vertex by Euclidean
// distance between points, then closes the loop back to start.
//
// The heuristic is edge-independent by design — it measures distance over
// ALL vertex pairs, so the returned route may cross pairs that are not
// proximity-graph edges and construction never fails (contrast with
// Hamiltonian, which is edge-constrained). Equidistant candidates are
// broken toward the first in the canonical label ordering.
//
// The only error is core.ErrVertexNotFound when start is not a vertex.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(g *core.Graph, start string) (Route, error) {
	labels := g.Labels()
	n := len(labels)

	var (
		points   = make([]core.Point, n)
		startIdx = -1
		i        int
	)
	for i = 0; i < n; i++ {
		// Point cannot fail for labels taken from the graph itself.
		points[i], _ = g.Point(labels[i])
		if labels[i] == start {
			startIdx = i
		}
	}
	if startIdx < 0 {
		return nil, fmt.Errorf("NearestNeighbor: start %q: %w", start, core.ErrVertexNotFound)
	}

	var (
		route   = make(Route, 0, n+1)
		visited = make([]bool, n)
		current = startIdx
		step    int
		j       int
		next    int
		d       float64
		best    float64
	)
	route = append(route, labels[startIdx])
	visited[startIdx] = true

	for step = 1; step < n; step++ {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = core.Dist(points[current], points[j])
			// Strict < keeps the earliest label on exact ties.
			if next < 0 || d < best {
				next = j
				best = d
			}
		}
		route = append(route, labels[next])
		visited[next] = true
		current = next
	}

	// Close the loop.
	route = append(route, labels[startIdx])

	return route, nil
}
