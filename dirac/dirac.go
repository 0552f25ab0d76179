package dirac

import "github.com/katalvlaran/diracroute/core"

// DegreeMap maps a vertex label to its incident-edge count.
// It is a derived view: recompute it whenever the graph is rebuilt.
// Insertion order is irrelevant; only the values feed the verdict.
type DegreeMap map[string]int

// Degrees returns the degree of every vertex of g.
//
// Complexity: O(V).
func Degrees(g *core.Graph) DegreeMap {
	labels := g.Labels()
	out := make(DegreeMap, len(labels))

	var (
		id string
		d  int
	)
	for _, id = range labels {
		// Degree cannot fail for labels taken from the graph itself.
		d, _ = g.Degree(id)
		out[id] = d
	}

	return out
}

// Satisfied computes the DegreeMap of g and reports whether Dirac's
// condition holds: n ≥ 3 and every degree ≥ n/2.
//
// The comparison is exact — 2·deg ≥ n avoids the float division that
// n/2 would otherwise need, so deg=2, n=5 correctly fails (2 < 2.5).
//
// Complexity: O(V).
func Satisfied(g *core.Graph) (DegreeMap, bool) {
	degrees := Degrees(g)

	n := g.VertexCount()
	if n < 3 {
		return degrees, false
	}

	for _, d := range degrees {
		if 2*d < n {
			return degrees, false
		}
	}

	return degrees, true
}
