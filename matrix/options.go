// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the cofactor engine.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// DefaultMaxExpansionOrder caps recursive cofactor expansion.
// Expansion is O(n!) in the matrix order; the rendering domain never
// exceeds 4×4, and 8 leaves generous headroom for experimentation while
// keeping the worst case bounded.
const DefaultMaxExpansionOrder = 8

// minExpansionOrder is the smallest order the guard may be set to:
// expansion bottoms out at the 2×2 base case.
const minExpansionOrder = 2

// Option configures the cofactor engine (Determinant, Minor, Cofactor,
// IsInvertible, Inverse). Options are applied in call order.
type Option func(*options)

// options is the internal, gathered configuration state.
type options struct {
	maxExpansionOrder int // largest square order accepted by expansion kernels
}

// WithMaxExpansionOrder overrides the expansion-order guard.
// Panics if n < 2 — a limit below the 2×2 base case is a programmer error,
// consistent with the package's option-validation policy.
func WithMaxExpansionOrder(n int) Option {
	if n < minExpansionOrder {
		panic(fmt.Sprintf("matrix: WithMaxExpansionOrder(%d): limit must be ≥ %d", n, minExpansionOrder))
	}

	return func(o *options) { o.maxExpansionOrder = n }
}

// gatherOptions folds opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{maxExpansionOrder: DefaultMaxExpansionOrder}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
