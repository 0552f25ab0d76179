// Package dirac evaluates vertex degrees and Dirac's sufficiency
// condition for Hamiltonicity.
//
// Dirac's theorem: a simple graph on n ≥ 3 vertices is Hamiltonian if
// every vertex has degree ≥ n/2 (real-valued division). The condition is
// sufficient, not necessary — a graph can be Hamiltonian without
// satisfying it, which is exactly what the exact search in package tour
// is for.
//
// For n < 3 a Hamiltonian cycle is not meaningful, so Satisfied reports
// false; rejecting such degenerate inputs outright is the builder's job.
package dirac
