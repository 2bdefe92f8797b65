// Package dataset generates training fixtures for Auto-Contractive Maps:
// ordered sample sequences plus one descriptive label per dimension.
//
// Two generators are provided:
//
//   - Random     — every entry uniform in [0,1); no correlation at all.
//   - Correlated — the first six dimensions are deterministic functions of
//     one random draw, the rest stay uncorrelated. Training on it should
//     pull dimensions 0..5 together in the extracted tree.
//
// Determinism: pass WithSeed (or WithRand) to freeze the stochastic path;
// the same seed, count and dims always yield the identical Dataset.
// Options follow last-writer-wins semantics.
package dataset

import (
	"errors"
	"math/rand"
	"strconv"
	"time"
)

// Sentinel errors for fixture generation. Callers branch via errors.Is.
var (
	// ErrBadCount indicates a requested sample count < 1.
	ErrBadCount = errors.New("dataset: sample count must be >= 1")

	// ErrBadDimension indicates a requested vector length < 1.
	ErrBadDimension = errors.New("dataset: vector length must be >= 1")

	// ErrTooFewDimensions indicates that Correlated was asked for fewer
	// than MinCorrelatedDims dimensions; the correlated block needs six
	// slots. Fails before any generation occurs.
	ErrTooFewDimensions = errors.New("dataset: correlated fixture needs at least 6 dimensions")
)

// MinCorrelatedDims is the smallest vector length Correlated accepts: the
// correlated block occupies indices 0..5.
const MinCorrelatedDims = 6

// correlatedLabels names the fixed layout of the correlated fixture's
// first ten dimensions; dimensions past index 9 get generic labels.
var correlatedLabels = []string{
	"R1", "2xR1", "R1+0.1", "R1^2", "2*R1^2", "3xR1^2",
	"R2>0.9", "R3>0.9", "R4>0.9", "R5>0.9",
}

// Dataset is an ordered training sequence with parallel dimension labels.
// Labels are purely descriptive and never affect numerics.
type Dataset struct {
	Samples [][]float64
	Labels  []string
}

// Option configures fixture generation via functional arguments.
type Option func(*config)

// config holds the resolved generation configuration.
type config struct {
	rng *rand.Rand
}

// WithSeed freezes the stochastic path with a deterministic source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies a caller-owned RNG; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// gatherOptions resolves options; without WithSeed/WithRand the RNG is
// time-seeded (fixtures stay usable out of the box, determinism is opt-in).
func gatherOptions(opts ...Option) config {
	c := config{}
	for _, set := range opts {
		set(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}

// Random generates count samples of dims uniform [0,1) entries with
// generic labels "R0".."R<dims-1>".
//
// Error Conditions:
//   - ErrBadCount     : count < 1.
//   - ErrBadDimension : dims < 1.
//
// Complexity: O(count·dims).
func Random(count, dims int, opts ...Option) (*Dataset, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	if dims < 1 {
		return nil, ErrBadDimension
	}
	cfg := gatherOptions(opts...)

	samples := make([][]float64, count)
	for s := range samples {
		row := make([]float64, dims)
		for i := range row {
			row[i] = cfg.rng.Float64()
		}
		samples[s] = row
	}

	labels := make([]string, dims)
	for i := range labels {
		labels[i] = "R" + strconv.Itoa(i)
	}

	return &Dataset{Samples: samples, Labels: labels}, nil
}

// Correlated generates count samples whose leading dimensions are tied to
// a single random draw r1 per sample:
//
//	v[0] = r1        v[1] = 2·r1       v[2] = r1 + 0.1
//	v[3] = r1²       v[4] = 2·r1²      v[5] = 3·r1²
//
// Indices 6..min(dims,10)-1 are independent high-plateau noise in
// [0.9, 1.0); indices >= 10 are plain uniform [0,1) entries with generic
// "R<i>" labels — uncorrelated filler beyond the named layout.
//
// Error Conditions:
//   - ErrBadCount        : count < 1.
//   - ErrTooFewDimensions: dims < MinCorrelatedDims, reported before any
//     sample is generated (invalid configuration).
//
// Complexity: O(count·dims).
func Correlated(count, dims int, opts ...Option) (*Dataset, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	if dims < MinCorrelatedDims {
		return nil, ErrTooFewDimensions
	}
	cfg := gatherOptions(opts...)

	samples := make([][]float64, count)
	for s := range samples {
		row := make([]float64, dims)

		// Correlated block: six functions of one draw.
		r1 := cfg.rng.Float64()
		row[0] = r1
		row[1] = r1 * 2
		row[2] = r1 + 0.1
		row[3] = r1 * r1
		row[4] = r1 * r1 * 2
		row[5] = r1 * r1 * 3

		// High-plateau noise block, clipped to the vector length.
		for i := MinCorrelatedDims; i < dims && i < len(correlatedLabels); i++ {
			row[i] = cfg.rng.Float64()*0.1 + 0.9
		}
		// Plain uncorrelated filler beyond the named layout.
		for i := len(correlatedLabels); i < dims; i++ {
			row[i] = cfg.rng.Float64()
		}

		samples[s] = row
	}

	// Labels: the named layout first, generic names past index 9.
	labels := make([]string, dims)
	for i := range labels {
		if i < len(correlatedLabels) {
			labels[i] = correlatedLabels[i]
		} else {
			labels[i] = "R" + strconv.Itoa(i)
		}
	}

	return &Dataset{Samples: samples, Labels: labels}, nil
}
