// Package diracroute is a small combinatorial-geometry engine for
// proximity-graph route planning.
//
// Given three scalar inputs — a vertex count n, a connection radius and a
// random seed — it builds a deterministic random geometric graph on the
// unit square, checks Dirac's sufficiency condition for Hamiltonicity
// (every degree ≥ n/2, n ≥ 3), searches exhaustively for a Hamiltonian
// cycle when the instance is small enough, and always produces a greedy
// nearest-neighbor geometric tour for comparison.
//
// Everything is organized under five subpackages:
//
//	core/    — immutable Graph, Vertex, Edge and Point primitives
//	builder/ — seeded random geometric graph construction
//	dirac/   — vertex degrees and the Dirac sufficiency verdict
//	tour/    — exact Hamiltonian search, nearest-neighbor heuristic, route cost
//	planner/ — the single entry point tying the pipeline together
//
// Guarantees:
//
//   - Deterministic — same (n, radius, seed) ⇒ bit-for-bit identical
//     graph, cycle choice and heuristic route, across runs and platforms.
//   - Pure Go, no cgo; the engine itself has no third-party dependencies.
//   - No panics on user input — only sentinel errors, checked with errors.Is.
//
// The cmd/diracroute binary is a minimal consumer: it prints the run
// summary and can render the network and the chosen route to a
// standalone HTML file.
package diracroute
