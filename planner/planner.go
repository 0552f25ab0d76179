package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/diracroute/builder"
	"github.com/katalvlaran/diracroute/core"
	"github.com/katalvlaran/diracroute/dirac"
	"github.com/katalvlaran/diracroute/tour"
)

// Config carries the three scalar inputs of one planning run.
type Config struct {
	// N is the number of delivery locations, builder.MinVertices ≤ N ≤
	// builder.MaxVertices.
	N int

	// Radius is the connection distance threshold; (0.1, 0.6] is the
	// recommended range, anything in (0, builder.MaxRadius] is accepted.
	Radius float64

	// Seed drives the deterministic point layout; used verbatim.
	Seed int64
}

// Validate checks the configuration bounds without building anything.
// It returns the builder's sentinels (ErrTooFewVertices,
// ErrTooManyVertices, ErrRadiusOutOfRange) so callers branch the same
// way at either boundary.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.N < builder.MinVertices {
		return fmt.Errorf("planner: n=%d: %w", c.N, builder.ErrTooFewVertices)
	}
	if c.N > builder.MaxVertices {
		return fmt.Errorf("planner: n=%d: %w", c.N, builder.ErrTooManyVertices)
	}
	if c.Radius <= 0 || c.Radius > builder.MaxRadius {
		return fmt.Errorf("planner: radius=%v: %w", c.Radius, builder.ErrRadiusOutOfRange)
	}

	return nil
}

// Status classifies the outcome of the exact Hamiltonian search.
type Status uint8

const (
	// StatusFound - a Hamiltonian cycle was found; Report.Exact holds it.
	StatusFound Status = iota

	// StatusNotFound - the search ran to completion and no cycle exists.
	StatusNotFound

	// StatusNotAttempted - the instance exceeds tour.MaxExactVertices;
	// the search was refused, so nothing is known about Hamiltonicity
	// beyond the Dirac verdict.
	StatusNotAttempted
)

// String implements fmt.Stringer for log and summary output.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusNotAttempted:
		return "not attempted"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Report is everything one run produces, ready for the display layer.
type Report struct {
	// Graph is the immutable snapshot: vertex set with coordinates and
	// the proximity edge set with full-precision weights.
	Graph *core.Graph

	// Degrees maps every vertex label to its incident-edge count.
	Degrees dirac.DegreeMap

	// DiracOK is the sufficiency verdict: true iff every degree ≥ N/2
	// (and N ≥ 3). Sufficient, not necessary.
	DiracOK bool

	// Exact is the Hamiltonian cycle when ExactStatus == StatusFound,
	// nil otherwise.
	Exact tour.Route

	// ExactStatus distinguishes found / not found / not attempted.
	ExactStatus Status

	// ExactCost is the total distance of Exact; 0 unless StatusFound.
	ExactCost float64

	// Heuristic is the greedy nearest-neighbor tour from the first
	// label. Always present: the heuristic is edge-independent.
	Heuristic tour.Route

	// HeuristicCost is the total distance of Heuristic.
	HeuristicCost float64
}

// Plan runs the full pipeline for one configuration.
//
// Steps: validate → build graph → degrees + Dirac verdict → exact search
// (three-state) → greedy tour from the first label → price both routes.
//
// Every non-nil error wraps a sentinel from builder, tour or core;
// exact-search outcomes are NOT errors — they land in Report.ExactStatus.
//
// Complexity: dominated by the exact search, O(n!·n) worst case under
// the n ≤ 9 cap; everything else is O(n²).
func Plan(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	g, err := builder.RandomGeometric(cfg.N, cfg.Radius, cfg.Seed)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Graph: g}
	rep.Degrees, rep.DiracOK = dirac.Satisfied(g)

	var exact tour.Route
	exact, err = tour.Hamiltonian(g)
	switch {
	case err == nil:
		rep.Exact = exact
		rep.ExactStatus = StatusFound
		if rep.ExactCost, err = tour.Cost(g, exact); err != nil {
			return Report{}, err
		}
	case errors.Is(err, tour.ErrTooLarge):
		rep.ExactStatus = StatusNotAttempted
	case errors.Is(err, tour.ErrNoCycle):
		rep.ExactStatus = StatusNotFound
	default:
		return Report{}, err
	}

	start := g.Labels()[0]
	if rep.Heuristic, err = tour.NearestNeighbor(g, start); err != nil {
		return Report{}, err
	}
	if rep.HeuristicCost, err = tour.Cost(g, rep.Heuristic); err != nil {
		return Report{}, err
	}

	return rep, nil
}
