package acm

import (
	"fmt"
	"math"
)

// Rescale maps in linearly onto [0,1]: the minimum of in goes to 0, the
// maximum to 1. The input is never mutated.
//
// Error Conditions:
//   - ErrBadDimension   : in is empty.
//   - ErrNonFinite      : in holds a NaN or ±Inf entry.
//   - ErrConstantSample : all elements of in are equal (zero range), so the
//     mapping is undefined. Deliberately an error, not a silent all-zero
//     vector: a constant sample carries no correlation signal and almost
//     always indicates broken upstream data.
//
// Complexity: O(n) time, O(n) memory for the result.
func Rescale(in []float64) ([]float64, error) {
	out := make([]float64, len(in))
	if err := rescaleInto(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// rescaleInto is the allocation-free core of Rescale: it writes the scaled
// vector into dst, which must have the same length as in. The model reuses
// one scratch buffer across steps through this path.
func rescaleInto(dst, in []float64) error {
	if len(in) == 0 {
		return ErrBadDimension
	}
	if len(dst) != len(in) {
		return ErrDimensionMismatch
	}

	// Single pass: reject non-finite input and find the range.
	lo, hi := in[0], in[0]
	for i, x := range in {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: sample[%d]=%v", ErrNonFinite, i, x)
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	// Zero range: the linear map is undefined.
	if lo == hi {
		return fmt.Errorf("%w: all elements equal %v", ErrConstantSample, lo)
	}

	span := hi - lo
	for i, x := range in {
		dst[i] = (x - lo) / span
	}

	// With finite input and lo < hi the result is in [0,1] by construction;
	// escaping that interval means the rescaling logic itself is broken.
	for _, x := range dst {
		if x < 0 || x > 1 {
			panic(panicRescaleRange)
		}
	}

	return nil
}
