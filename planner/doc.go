// Package planner is the single entry point the presentation layer talks
// to: three scalar inputs in, five outputs out.
//
// Plan validates a Config (vertex count, connection radius, seed), builds
// the deterministic random geometric graph, evaluates vertex degrees and
// the Dirac sufficiency verdict, runs the exact Hamiltonian search when
// the instance is small enough, always builds the greedy nearest-neighbor
// tour, and prices both routes. The whole pipeline is sequential and
// pure: re-running Plan with an identical Config yields a bit-for-bit
// identical Report.
//
// The exact search has three distinct outcomes, surfaced as
// Report.ExactStatus: StatusFound, StatusNotFound (searched everything,
// no cycle) and StatusNotAttempted (vertex count above the exhaustive
// cap). The latter two imply different confidence levels and must not be
// conflated.
//
// Invalid configurations are rejected up front with the builder's
// sentinels (errors.Is), never silently computed.
package planner
