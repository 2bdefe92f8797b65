// Package acm: functional configuration for model construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package acm

import "math"

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// InitialWeight is the small positive constant every entry of v and w
	// starts from.
	InitialWeight = 0.01

	// DefaultPrecision is the early-stop tolerance: training ends once
	// 0 <= Σout < DefaultPrecision. Past that point the output oscillates
	// and may overflow.
	DefaultPrecision = 1e-6
)

// Internal panic messages (no magic strings).
const (
	panicPrecisionInvalid = "acm: WithPrecision: eps must be finite and > 0"
	panicRescaleRange     = "acm: rescaled sample escaped [0,1]"
)

// SpanningTreeFunc reduces an N×N weight matrix to a minimum spanning
// forest of the same shape (non-zero entries are the chosen edges).
// It must be a pure function: no mutation of the input, no side effects.
type SpanningTreeFunc func(adj [][]float64) ([][]float64, error)

// Option mutates internal options. Constructors MUST panic only on
// nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported; New accepts `...Option` and resolves them
// via gatherOptions.
type options struct {
	// precision is the early-stop tolerance; > 0, finite.
	precision float64

	// spanningTree is the pluggable MST capability invoked after training.
	spanningTree SpanningTreeFunc

	// onSample observes every consumed sample: run counter so far and the
	// current Σout. Never mutates model state.
	onSample func(run int, sumOut float64)
}

// WithPrecision sets the early-stop tolerance used by Train.
// Panics with a stable message when eps is non-finite or <= 0.
//
// Complexity: O(1).
func WithPrecision(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicPrecisionInvalid)
	}

	// Assign validated tolerance.
	return func(o *options) { o.precision = eps }
}

// WithSpanningTree replaces the default spanning-tree capability
// (mst.Kruskal). A nil fn is ignored, keeping the previous capability.
//
// Complexity: O(1).
func WithSpanningTree(fn SpanningTreeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.spanningTree = fn
		}
	}
}

// WithOnSample registers a callback observed after every consumed sample;
// useful for progress logging. A nil fn is ignored.
//
// Complexity: O(1) to set; the callback runs once per sample.
func WithOnSample(fn func(run int, sumOut float64)) Option {
	return func(o *options) {
		if fn != nil {
			o.onSample = fn
		}
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
//
// Complexity: O(k) for k option setters.
func gatherOptions(user ...Option) options {
	o := options{
		precision:    DefaultPrecision,
		spanningTree: defaultSpanningTree,
		onSample:     func(int, float64) {},
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
