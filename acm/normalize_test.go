package acm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/acmap/acm" // package under test
	"github.com/stretchr/testify/assert"
)

// TestRescale_Basic verifies the linear map on a simple vector.
func TestRescale_Basic(t *testing.T) {
	out, err := acm.Rescale([]float64{2, 4, 6})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, out)
}

// TestRescale_Empty verifies that an empty input is rejected.
func TestRescale_Empty(t *testing.T) {
	_, err := acm.Rescale(nil)
	assert.ErrorIs(t, err, acm.ErrBadDimension)
}

// TestRescale_ConstantVector verifies the degenerate-case policy: a vector
// with zero range is a precondition violation, not a silent all-zero result.
func TestRescale_ConstantVector(t *testing.T) {
	_, err := acm.Rescale([]float64{0.7, 0.7, 0.7})
	assert.ErrorIs(t, err, acm.ErrConstantSample)
}

// TestRescale_NonFiniteInput verifies that NaN and ±Inf entries are
// rejected before any range arithmetic runs on them.
func TestRescale_NonFiniteInput(t *testing.T) {
	_, err := acm.Rescale([]float64{0, math.NaN(), 1})
	assert.ErrorIs(t, err, acm.ErrNonFinite)

	_, err = acm.Rescale([]float64{0, math.Inf(-1), 1})
	assert.ErrorIs(t, err, acm.ErrNonFinite)
}

// TestRescale_RangeProperty checks, over random vectors of varying length
// and range, that every non-constant input lands exactly in [0,1] with the
// extremes mapped onto the interval bounds.
func TestRescale_RangeProperty(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + r.Intn(40)
		scale := math.Pow(10, float64(r.Intn(7)-3)) // ranges from 1e-3 to 1e3
		offset := (r.Float64() - 0.5) * 100

		in := make([]float64, n)
		for i := range in {
			in[i] = r.Float64()*scale + offset
		}

		out, err := acm.Rescale(in)
		if err != nil {
			// A random vector is constant only with probability zero, but a
			// degenerate draw is still a legal ErrConstantSample.
			assert.ErrorIs(t, err, acm.ErrConstantSample)
			continue
		}

		lo, hi := out[0], out[0]
		for _, x := range out {
			assert.GreaterOrEqual(t, x, 0.0, "rescaled values must be >= 0")
			assert.LessOrEqual(t, x, 1.0, "rescaled values must be <= 1")
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		assert.Equal(t, 0.0, lo, "the minimum must map to exactly 0")
		assert.Equal(t, 1.0, hi, "the maximum must map to exactly 1")
	}
}
