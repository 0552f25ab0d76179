// SPDX-License-Identifier: MIT
// Package: diracroute/builder
//
// geometric.go — the random geometric graph constructor.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/diracroute/core"
)

// RandomGeometric builds a deterministic random geometric graph.
//
// Steps:
//  1. Validate n ∈ [MinVertices, MaxVertices] and radius ∈ (0, MaxRadius].
//  2. Seed a private *rand.Rand with seed (used verbatim; no zero remap —
//     the seed's identity is part of the reproducibility contract).
//  3. Draw n points uniformly from [margin, 1−margin]², X before Y,
//     one point per vertex in label order.
//  4. Label point i with labelFn(i) — label assignment depends only on
//     the draw order, never on map iteration.
//  5. For every unordered pair i<j, add edge {i,j} iff the Euclidean
//     distance is ≤ radius; the stored weight is the full-precision
//     distance (display rounding is core.Edge.RoundedWeight's job).
//
// The returned graph is immutable; the builder holds no state between
// calls and mutates nothing global.
//
// Complexity: O(n²) time, O(n + E) space.
func RandomGeometric(n int, radius float64, seed int64, opts ...Option) (*core.Graph, error) {
	if n < MinVertices {
		return nil, fmt.Errorf("RandomGeometric: n=%d: %w", n, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("RandomGeometric: n=%d: %w", n, ErrTooManyVertices)
	}
	if radius <= 0 || radius > MaxRadius {
		return nil, fmt.Errorf("RandomGeometric: radius=%v: %w", radius, ErrRadiusOutOfRange)
	}

	cfg := newBuilderConfig(opts...)

	// Private, explicitly seeded stream; never shared, never ambient.
	rng := rand.New(rand.NewSource(seed))

	var (
		lo   = cfg.margin
		span = 1 - 2*cfg.margin
	)

	vertices := make([]core.Vertex, n)

	var i int
	for i = 0; i < n; i++ {
		// Draw order is part of the contract: X then Y, vertex by vertex.
		x := lo + rng.Float64()*span
		y := lo + rng.Float64()*span
		vertices[i] = core.Vertex{ID: cfg.labelFn(i), At: core.Point{X: x, Y: y}}
	}

	var (
		edges []core.Edge
		j     int
		d     float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = core.Dist(vertices[i].At, vertices[j].At)
			if d <= radius {
				edges = append(edges, core.Edge{U: vertices[i].ID, V: vertices[j].ID, Weight: d})
			}
		}
	}

	return core.NewGraph(vertices, edges)
}
