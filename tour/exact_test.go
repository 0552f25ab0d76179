package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diracroute/builder"
	"github.com/katalvlaran/diracroute/tour"
)

// K4 on the unit square: several Hamiltonian cycles exist; the first one
// in lexicographic enumeration order (the identity A,B,C,D) must win, so
// the answer is the perimeter with total distance exactly 4.
func TestHamiltonian_CompleteSquare(t *testing.T) {
	g := squareGraph(t, 1.5)

	route, err := tour.Hamiltonian(g)
	require.NoError(t, err)
	require.Equal(t, tour.Route{"A", "B", "C", "D", "A"}, route)

	cost, err := tour.Cost(g, route)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
}

// Radius 0.9 drops the diagonals; only the perimeter remains and the
// search must still find the same cycle.
func TestHamiltonian_PerimeterOnly(t *testing.T) {
	g := squareGraph(t, 0.9)
	require.Equal(t, 4, g.EdgeCount())

	route, err := tour.Hamiltonian(g)
	require.NoError(t, err)
	require.Equal(t, tour.Route{"A", "B", "C", "D", "A"}, route)

	cost, err := tour.Cost(g, route)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
}

func TestHamiltonian_RouteInvariants(t *testing.T) {
	g := squareGraph(t, 1.5)

	route, err := tour.Hamiltonian(g)
	require.NoError(t, err)

	// Closed, length n+1, every vertex exactly once.
	require.NoError(t, tour.ValidateRoute(route, g.VertexCount()))

	// Every consecutive pair, wrap-around included, is a graph edge.
	for i := 0; i < len(route)-1; i++ {
		require.True(t, g.HasEdge(route[i], route[i+1]),
			"hop %s-%s must be an edge", route[i], route[i+1])
	}
}

func TestHamiltonian_NotFound(t *testing.T) {
	route, err := tour.Hamiltonian(pathGraph(t))
	require.ErrorIs(t, err, tour.ErrNoCycle)
	require.Nil(t, route)
}

// Above the cap the search must refuse to run — and say so distinctly
// from "searched, found nothing", whatever the graph density.
func TestHamiltonian_NotAttemptedAboveCap(t *testing.T) {
	g, err := builder.RandomGeometric(10, 1.0, 42)
	require.NoError(t, err)

	route, err := tour.Hamiltonian(g)
	require.ErrorIs(t, err, tour.ErrTooLarge)
	require.NotErrorIs(t, err, tour.ErrNoCycle)
	require.Nil(t, route)
}

// At the cap the search still runs.
func TestHamiltonian_RunsAtCap(t *testing.T) {
	g, err := builder.RandomGeometric(tour.MaxExactVertices, 1.0, 42)
	require.NoError(t, err)

	// Radius 1.0 on the margin square yields a dense graph; whatever the
	// outcome, it must be a real search result, not a refusal.
	route, err := tour.Hamiltonian(g)
	if err != nil {
		require.ErrorIs(t, err, tour.ErrNoCycle)

		return
	}
	require.NoError(t, tour.ValidateRoute(route, tour.MaxExactVertices))
}

// Same inputs, same cycle — the tie-break is enumeration order, nothing
// ambient.
func TestHamiltonian_Reproducible(t *testing.T) {
	g, err := builder.RandomGeometric(7, 0.5, 7)
	require.NoError(t, err)

	a, errA := tour.Hamiltonian(g)
	b, errB := tour.Hamiltonian(g)
	require.Equal(t, errA, errB)
	require.Equal(t, a, b)
}
