package dirac_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diracroute/core"
	"github.com/katalvlaran/diracroute/dirac"
)

func square(t *testing.T, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.Vertex{
		{ID: "A", At: core.Point{X: 0, Y: 0}},
		{ID: "B", At: core.Point{X: 1, Y: 0}},
		{ID: "C", At: core.Point{X: 1, Y: 1}},
		{ID: "D", At: core.Point{X: 0, Y: 1}},
	}, edges)
	require.NoError(t, err)

	return g
}

func TestDegrees(t *testing.T) {
	g := square(t, []core.Edge{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 1},
		{U: "C", V: "D", Weight: 1},
	})

	require.Equal(t, dirac.DegreeMap{"A": 1, "B": 2, "C": 2, "D": 1}, dirac.Degrees(g))
}

// Perimeter square: n=4, every degree 2 ≥ 4/2 — the condition holds with
// equality, so the verdict must be true.
func TestSatisfied_Holds(t *testing.T) {
	g := square(t, []core.Edge{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 1},
		{U: "C", V: "D", Weight: 1},
		{U: "D", V: "A", Weight: 1},
	})

	degrees, ok := dirac.Satisfied(g)
	require.True(t, ok)
	require.Equal(t, dirac.DegreeMap{"A": 2, "B": 2, "C": 2, "D": 2}, degrees)
}

// A path A-B-C-D leaves the endpoints with degree 1 < 2 — verdict false.
func TestSatisfied_Violated(t *testing.T) {
	g := square(t, []core.Edge{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 1},
		{U: "C", V: "D", Weight: 1},
	})

	degrees, ok := dirac.Satisfied(g)
	require.False(t, ok)
	require.Equal(t, 1, degrees["A"])
}

// Below n=3 the theorem is inapplicable: a single edge gives both
// vertices degree 1 ≥ 2/2, yet the verdict must stay false.
func TestSatisfied_DegenerateN(t *testing.T) {
	g, err := core.NewGraph(
		[]core.Vertex{{ID: "A"}, {ID: "B", At: core.Point{X: 1}}},
		[]core.Edge{{U: "A", V: "B", Weight: 1}},
	)
	require.NoError(t, err)

	_, ok := dirac.Satisfied(g)
	require.False(t, ok)
}

// Odd n exercises the real-valued division: n=5 needs degree ≥ 2.5,
// i.e. at least 3; a 5-cycle (all degrees exactly 2) must fail.
func TestSatisfied_OddN(t *testing.T) {
	vertices := []core.Vertex{
		{ID: "A"}, {ID: "B", At: core.Point{X: 1}}, {ID: "C", At: core.Point{X: 2}},
		{ID: "D", At: core.Point{X: 3}}, {ID: "E", At: core.Point{X: 4}},
	}

	cycle := []core.Edge{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 1},
		{U: "C", V: "D", Weight: 1},
		{U: "D", V: "E", Weight: 1},
		{U: "E", V: "A", Weight: 4},
	}
	g, err := core.NewGraph(vertices, cycle)
	require.NoError(t, err)

	_, ok := dirac.Satisfied(g)
	require.False(t, ok)

	// The complete K5 lifts every degree to 4 ≥ 2.5 — verdict true.
	var complete []core.Edge
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			complete = append(complete, core.Edge{
				U: vertices[i].ID, V: vertices[j].ID,
				Weight: core.Dist(vertices[i].At, vertices[j].At),
			})
		}
	}
	g, err = core.NewGraph(vertices, complete)
	require.NoError(t, err)

	_, ok = dirac.Satisfied(g)
	require.True(t, ok)
}
