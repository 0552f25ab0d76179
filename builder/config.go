// SPDX-License-Identifier: MIT
// Package: diracroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

// Size bounds for RandomGeometric, matching the configuration surface of
// the presentation layer (a slider over 4..10 locations).
const (
	// MinVertices is the smallest accepted vertex count.
	MinVertices = 4

	// MaxVertices is the largest accepted vertex count.
	MaxVertices = 10

	// MaxRadius is the largest accepted connection radius. Points live in
	// the unit square, so any radius above √2 is equivalent to a complete
	// graph; 1 is a practical ceiling for the configuration surface.
	MaxRadius = 1.0
)

// defaultMargin keeps generated points away from the unit-square border.
// Purely cosmetic (the display layer draws labels around each node);
// not a correctness requirement.
const defaultMargin = 0.1

// builderConfig aggregates all knobs used by RandomGeometric.
// It is passed by value to the constructor (immutable to callers).
type builderConfig struct {
	// Vertex label strategy: index -> ID (deterministic).
	labelFn func(int) string

	// Margin from the unit-square border for point generation.
	margin float64
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		labelFn: alphaID,       // "A","B","C",...
		margin:  defaultMargin, // 0.1
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// alphaID renders an index as a single uppercase letter ("A","B",...).
// Deterministic; sufficient for the MaxVertices=10 bound and aligned
// with golden fixtures in tests.
func alphaID(i int) string {
	return string(rune('A' + i))
}
