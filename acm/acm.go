// Package acm: model construction, the five-phase single-sample update and
// the ordered training loop with early stopping.
package acm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/acmap/mst"
)

// defaultSpanningTree is the capability Train delegates to unless
// WithSpanningTree overrides it.
var defaultSpanningTree SpanningTreeFunc = mst.Kruskal

// Model is an Auto-Contractive Map over vectors of a fixed length N.
//
// It owns two adaptive weight stages: the input-layer vector v (length N)
// and the hidden-to-output matrix w (N×N), both initialized to
// InitialWeight. The hidden/out/net buffers are per-step scratch state,
// allocated once at construction and overwritten every update.
//
// A Model is NOT safe for concurrent use: the update rule is a stateful
// recurrence, so there is no valid parallel execution across samples.
type Model struct {
	n int     // input vector length
	c float64 // contraction parameter, > 1

	v []float64   // input-layer weights, adapted every step
	w [][]float64 // hidden-to-output weights, adapted every step

	hidden []float64 // hidden activations, scratch
	out    []float64 // output activations, scratch
	net    []float64 // net signal, scratch
	scaled []float64 // rescaled input, scratch

	runs int         // samples consumed by the last Train call
	tree [][]float64 // spanning forest of w; nil until Train succeeds

	opts options
}

// New constructs a Model for input vectors of length n with the given
// contraction parameter.
//
// Error Conditions:
//   - ErrBadDimension   : n < 1.
//   - ErrBadContraction : contraction is NaN, ±Inf or <= 1.
//
// Steps:
//  1. Validate n and contraction.
//  2. Resolve options (precision, spanning-tree capability, hooks).
//  3. Allocate v, w filled with InitialWeight and the scratch buffers;
//     no further per-step allocation happens after this point.
//
// Complexity: O(n²) time and memory.
func New(n int, contraction float64, opts ...Option) (*Model, error) {
	// 1. Validate construction parameters.
	if n < 1 {
		return nil, ErrBadDimension
	}
	if math.IsNaN(contraction) || math.IsInf(contraction, 0) || contraction <= 1 {
		return nil, ErrBadContraction
	}

	// 2. Resolve functional options against documented defaults.
	m := &Model{
		n:    n,
		c:    contraction,
		opts: gatherOptions(opts...),
	}

	// 3. Allocate the weight stages and scratch arena once.
	m.v = make([]float64, n)
	for i := range m.v {
		m.v[i] = InitialWeight
	}
	m.w = make([][]float64, n)
	for i := range m.w {
		m.w[i] = make([]float64, n)
		for j := range m.w[i] {
			m.w[i][j] = InitialWeight
		}
	}
	m.hidden = make([]float64, n)
	m.out = make([]float64, n)
	m.net = make([]float64, n)
	m.scaled = make([]float64, n)

	return m, nil
}

// RunOnce performs one training step on a single sample, mutating v, w and
// the activation buffers in place. The sample may have arbitrary range; it
// is min-max rescaled to [0,1] first. Deterministic given current state
// and input.
//
// Error Conditions:
//   - ErrDimensionMismatch : len(sample) != N.
//   - ErrConstantSample    : all sample elements equal (see Rescale).
//   - ErrNonFinite         : a phase produced NaN/±Inf; the model state is
//     invalid afterwards and must not be used for summarization.
//
// Phases, in this exact dependency order (no fusing — each phase reads
// only the previous phase's completed values; the decomposition keeps
// intermediate magnitudes small):
//  1. hidden[i] = in[i]·(1 − v[i]/C)
//  2. v[i]     += (in[i] − hidden[i])·(1 − v[i]/C)   (pre-update v, hidden)
//  3. net[i]    = Σ_j hidden[j]·(1 − w[i][j]/C)      (net zeroed first)
//  4. out[i]    = hidden[i]·(1 − net[i]/C)
//  5. w[i][j]  += (hidden[i] − out[i])·(1 − w[i][j]/C)·hidden[j]
//
// A finiteness check runs after every phase and aborts on the first
// non-finite value rather than letting it propagate through the weights.
//
// Complexity: O(n²) time, zero allocations.
func (m *Model) RunOnce(sample []float64) error {
	if len(sample) != m.n {
		return fmt.Errorf("%w: sample has %d elements, want %d",
			ErrDimensionMismatch, len(sample), m.n)
	}

	// 0. Normalize input into [0,1] (scratch buffer, no allocation).
	if err := rescaleInto(m.scaled, sample); err != nil {
		return err
	}

	// 1. Signal in → hidden.
	for i := 0; i < m.n; i++ {
		m.hidden[i] = m.scaled[i] * (1 - m.v[i]/m.c)
	}
	if err := finite("hidden", m.hidden); err != nil {
		return err
	}

	// 2. Adapt input weights v; reads the pre-update v[i] on the right side.
	for i := 0; i < m.n; i++ {
		m.v[i] += (m.scaled[i] - m.hidden[i]) * (1 - m.v[i]/m.c)
	}
	if err := finite("v", m.v); err != nil {
		return err
	}

	// 3. Signal hidden → out: accumulate the net input per unit.
	for i := 0; i < m.n; i++ {
		m.net[i] = 0
		for j := 0; j < m.n; j++ {
			m.net[i] += m.hidden[j] * (1 - m.w[i][j]/m.c)
		}
	}
	if err := finite("net", m.net); err != nil {
		return err
	}

	// 4. Output activations.
	for i := 0; i < m.n; i++ {
		m.out[i] = m.hidden[i] * (1 - m.net[i]/m.c)
	}
	if err := finite("out", m.out); err != nil {
		return err
	}

	// 5. Adapt hidden-to-output weights w; the multiplication stays split
	//    into sequential single steps to limit intermediate growth.
	for i := 0; i < m.n; i++ {
		delta := m.hidden[i] - m.out[i]
		for j := 0; j < m.n; j++ {
			contr := 1 - m.w[i][j]/m.c
			m.w[i][j] += delta * contr * m.hidden[j]
		}
		if err := finite("w", m.w[i]); err != nil {
			return err
		}
	}

	return nil
}

// Train consumes the ordered sample sequence exactly once: for each sample
// it runs RunOnce, increments the run counter, then checks the early-stop
// condition 0 <= Σout < precision. Afterwards (stopped early or exhausted)
// it reduces w to a spanning forest via the configured capability and
// stores the result for Connections.
//
// Error Conditions:
//   - any RunOnce error, wrapped with the failing sample index; the stored
//     tree stays nil and the model must not be summarized.
//   - spanning-tree capability errors, wrapped.
//
// Side effects: mutates v, w, the run counter and the stored tree.
//
// Complexity: O(len(samples)·n²) plus one spanning-tree computation.
func (m *Model) Train(samples [][]float64) error {
	// Reset the counter and invalidate any previous summary.
	m.runs = 0
	m.tree = nil

	for _, sample := range samples {
		if err := m.RunOnce(sample); err != nil {
			return fmt.Errorf("acm: training aborted at sample %d: %w", m.runs, err)
		}
		m.runs++

		// Early-stop check, once per sample boundary.
		var sumOut float64
		for _, o := range m.out {
			sumOut += o
		}
		m.opts.onSample(m.runs, sumOut)
		if sumOut >= 0 && sumOut < m.opts.precision {
			break
		}
	}

	// Reduce the learned weights to a minimum spanning forest. The
	// capability receives a copy: it is contracted to be pure, but the
	// weights must survive a misbehaving plug-in.
	tree, err := m.opts.spanningTree(m.Weights())
	if err != nil {
		return fmt.Errorf("acm: spanning tree: %w", err)
	}
	m.tree = tree

	return nil
}

// finite returns ErrNonFinite (with buffer name, index and value context)
// for the first NaN/±Inf entry of buf, nil otherwise.
func finite(name string, buf []float64) error {
	for i, x := range buf {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s[%d]=%v", ErrNonFinite, name, i, x)
		}
	}

	return nil
}
