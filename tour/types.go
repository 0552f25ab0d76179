package tour

import (
	"errors"
	"strings"
)

// MaxExactVertices is the hard cap on the exhaustive search: above this
// vertex count Hamiltonian refuses to run (n! permutations). The cap is a
// static resource bound, not a timeout.
const MaxExactVertices = 9

// Sentinel errors. Branch with errors.Is; the distinction between
// ErrTooLarge and ErrNoCycle is part of the contract (different
// confidence levels for the caller).
var (
	// ErrTooLarge means the exact search was NOT attempted: the vertex
	// count exceeds MaxExactVertices.
	ErrTooLarge = errors.New("tour: vertex count exceeds exact-search cap")

	// ErrNoCycle means the exact search ran to completion and the graph
	// has no Hamiltonian cycle.
	ErrNoCycle = errors.New("tour: no hamiltonian cycle")

	// ErrBadRoute means a Route violates the closed-tour shape
	// (length n+1, first==last, each vertex exactly once).
	ErrBadRoute = errors.New("tour: malformed route")
)

// Route is a closed tour: an ordered sequence of n+1 vertex labels whose
// first and last entries are equal, with each of the n distinct vertices
// appearing exactly once among positions 0..n-1. Routes are value
// objects — they reference labels, not the Graph — and are never mutated
// after construction.
type Route []string

// Closed reports whether the route has at least two entries and its
// first and last labels match. It does not check vertex coverage;
// see ValidateRoute.
func (r Route) Closed() bool {
	return len(r) >= 2 && r[0] == r[len(r)-1]
}

// Reversed returns a new Route traversing r in the opposite direction.
// A closed route stays closed and keeps its start label.
func (r Route) Reversed() Route {
	out := make(Route, len(r))

	var i int
	for i = range r {
		out[i] = r[len(r)-1-i]
	}

	return out
}

// String renders the route as "A → B → C → A".
func (r Route) String() string {
	return strings.Join(r, " → ")
}
