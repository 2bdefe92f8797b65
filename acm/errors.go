// Package acm: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the acm
// package. All operations return these sentinels and tests check them via
// errors.Is. Panics are reserved for programmer errors (invalid option
// parameters, broken internal invariants).
package acm

import "errors"

var (
	// ErrBadDimension is returned when the requested input length is < 1.
	ErrBadDimension = errors.New("acm: input length must be >= 1")

	// ErrBadContraction is returned when the contraction parameter is not a
	// finite number > 1. Values <= 1 let the (1 - x/C) terms grow unbounded
	// under [0,1] inputs instead of contracting.
	ErrBadContraction = errors.New("acm: contraction parameter must be finite and > 1")

	// ErrDimensionMismatch indicates that a sample or label slice does not
	// match the model's input length.
	ErrDimensionMismatch = errors.New("acm: length does not match model dimension")

	// ErrConstantSample indicates a sample whose elements are all equal:
	// min-max rescaling is undefined there (zero range). Treated as a
	// precondition violation, never silently skipped.
	ErrConstantSample = errors.New("acm: sample is constant, rescaling undefined")

	// ErrNonFinite signals that a NaN or ±Inf value was produced or ingested
	// where finite values are required. Training aborts immediately; the
	// model state must be considered invalid afterwards.
	ErrNonFinite = errors.New("acm: non-finite value encountered")

	// ErrNotTrained is returned when summarization is requested before a
	// successful Train run has stored a spanning tree.
	ErrNotTrained = errors.New("acm: model has not been trained")
)
