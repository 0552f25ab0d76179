// SPDX-License-Identifier: MIT
// Package: diracroute/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     RandomGeometric itself never panics.
//   • Determinism is explicit: the seed is a direct argument of
//     RandomGeometric, never an option with a hidden default.

package builder

// Option configures RandomGeometric before construction.
type Option func(*builderConfig)

// WithLabelFn overrides the vertex label scheme (index -> ID).
// The default is alphabetic ("A","B",...). Labels must be deterministic
// in the index; the builder applies fn in construction order.
// Panics if fn is nil.
func WithLabelFn(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}

	return func(cfg *builderConfig) { cfg.labelFn = fn }
}

// WithMargin overrides the border margin for point generation.
// The margin must leave a non-empty square: 0 ≤ m < 0.5.
// Panics on values outside that range.
func WithMargin(m float64) Option {
	if m < 0 || m >= 0.5 {
		panic("builder: WithMargin out of [0, 0.5)")
	}

	return func(cfg *builderConfig) { cfg.margin = m }
}
