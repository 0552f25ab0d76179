// Package tour_test — shared fixtures for the tour test files.
//
// The unit square is the canonical instance across these tests: four
// corners A(0,0) B(1,0) C(1,1) D(0,1); perimeter 4.0; diagonals √2.
package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diracroute/core"
)

func squareVertices() []core.Vertex {
	return []core.Vertex{
		{ID: "A", At: core.Point{X: 0, Y: 0}},
		{ID: "B", At: core.Point{X: 1, Y: 0}},
		{ID: "C", At: core.Point{X: 1, Y: 1}},
		{ID: "D", At: core.Point{X: 0, Y: 1}},
	}
}

// squareGraph builds the unit square as a proximity graph for the given
// radius: 1.5 yields K4 (both diagonals), 0.9 yields the perimeter only.
func squareGraph(t *testing.T, radius float64) *core.Graph {
	t.Helper()

	vertices := squareVertices()

	var edges []core.Edge
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			d := core.Dist(vertices[i].At, vertices[j].At)
			if d <= radius {
				edges = append(edges, core.Edge{U: vertices[i].ID, V: vertices[j].ID, Weight: d})
			}
		}
	}

	g, err := core.NewGraph(vertices, edges)
	require.NoError(t, err)

	return g
}

// pathGraph builds A-B-C-D as a bare path: connected, but no Hamiltonian
// cycle exists (the closing pair {D,A} is missing).
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(squareVertices(), []core.Edge{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 1},
		{U: "C", V: "D", Weight: 1},
	})
	require.NoError(t, err)

	return g
}
