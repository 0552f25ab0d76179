// SPDX-License-Identifier: MIT
// Package: diracroute/builder
//
// Package builder constructs deterministic random geometric graphs.
//
// RandomGeometric draws n points uniformly from the margin square
// [0.1,0.9]² using an explicit seeded RNG, labels them in a fixed
// deterministic order ("A", "B", …), and connects every unordered pair
// whose Euclidean distance is at most the given radius. The result is an
// immutable core.Graph satisfying the proximity invariant:
//
//	edge {u,v} exists  ⇔  Dist(u,v) ≤ radius.
//
// Determinism is a hard contract: the same (n, radius, seed) triple
// yields a bit-for-bit identical graph on every run and platform. The
// seed is an explicit input — there is no ambient randomness — and it is
// used verbatim (seed 0 is a valid, distinct stream).
//
// Errors (branch with errors.Is):
//
//	ErrTooFewVertices   - n below MinVertices.
//	ErrTooManyVertices  - n above MaxVertices.
//	ErrRadiusOutOfRange - radius outside (0, MaxRadius].
//
// Option constructors (WithLabelFn, WithMargin) validate eagerly and
// panic on meaningless values; RandomGeometric itself never panics.
package builder
