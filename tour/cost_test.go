package tour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diracroute/builder"
	"github.com/katalvlaran/diracroute/core"
	"github.com/katalvlaran/diracroute/tour"
)

func TestCost_Perimeter(t *testing.T) {
	g := squareGraph(t, 1.5)

	cost, err := tour.Cost(g, tour.Route{"A", "B", "C", "D", "A"})
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
}

// Cost is geometric: hops that are not proximity edges still price at
// their Euclidean distance.
func TestCost_NonEdgeHops(t *testing.T) {
	g := squareGraph(t, 0.9) // no diagonals in the edge set

	cost, err := tour.Cost(g, tour.Route{"A", "C", "B", "D", "A"})
	require.NoError(t, err)
	require.InDelta(t, 2+2*math.Sqrt2, cost, 1e-9)
}

// Reversing a closed route must never change its cost — same edge set,
// opposite direction. round1e9 keeps summation order out of it.
func TestCost_ReversalInvariance(t *testing.T) {
	cases := []tour.Route{
		{"A", "B", "C", "D", "A"},
		{"A", "C", "B", "D", "A"},
		{"B", "D", "A", "C", "B"},
	}
	g := squareGraph(t, 1.5)

	for _, r := range cases {
		fwd, err := tour.Cost(g, r)
		require.NoError(t, err)
		rev, err := tour.Cost(g, r.Reversed())
		require.NoError(t, err)
		require.Equal(t, fwd, rev, "route %s", r)
	}

	// And on an arbitrary seeded instance with irrational distances.
	rg, err := builder.RandomGeometric(9, 0.4, 1234)
	require.NoError(t, err)
	route, err := tour.NearestNeighbor(rg, "A")
	require.NoError(t, err)

	fwd, err := tour.Cost(rg, route)
	require.NoError(t, err)
	rev, err := tour.Cost(rg, route.Reversed())
	require.NoError(t, err)
	require.Equal(t, fwd, rev)
}

func TestCost_Errors(t *testing.T) {
	g := squareGraph(t, 1.5)

	_, err := tour.Cost(g, tour.Route{"A"})
	require.ErrorIs(t, err, tour.ErrBadRoute)

	_, err = tour.Cost(g, nil)
	require.ErrorIs(t, err, tour.ErrBadRoute)

	// A route that references labels from another (rebuilt) graph.
	_, err = tour.Cost(g, tour.Route{"A", "Z", "A"})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
