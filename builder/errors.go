// SPDX-License-Identifier: MIT
// Package: diracroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context via %w.
//   • RandomGeometric MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than MinVertices.
// Degenerate instances (n < 3) make a Hamiltonian cycle meaningless for
// routing, so they are rejected at this boundary rather than computed.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyVertices indicates that n exceeds MaxVertices.
// Usage: if errors.Is(err, ErrTooManyVertices) { /* report invalid size */ }.
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrRadiusOutOfRange indicates a connection radius outside (0, MaxRadius].
// Usage: if errors.Is(err, ErrRadiusOutOfRange) { /* fix radius */ }.
var ErrRadiusOutOfRange = errors.New("builder: radius out of range")
