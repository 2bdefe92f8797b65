// Package acm: post-training summarization and read-only accessors.
package acm

import "fmt"

// Connection is one labeled edge of the extracted tree: the learned
// contractive relationship from one dimension to another.
type Connection struct {
	From   string
	To     string
	Weight float64
}

// Connections reads the stored spanning tree and pairs every non-zero
// entry with the supplied per-dimension labels, in row-major order
// (row ascending, then column ascending). Read-only: it may be called any
// number of times after a successful Train.
//
// Error Conditions:
//   - ErrNotTrained       : Train has not stored a tree yet (or it failed).
//   - ErrDimensionMismatch: len(labels) != N.
//
// Complexity: O(n²) time, O(n) memory for the triples.
func (m *Model) Connections(labels []string) ([]Connection, error) {
	if m.tree == nil {
		return nil, ErrNotTrained
	}
	if len(labels) != m.n {
		return nil, fmt.Errorf("%w: %d labels for %d dimensions",
			ErrDimensionMismatch, len(labels), m.n)
	}

	// Row-major scan over the sparse tree entries.
	conns := make([]Connection, 0, m.n-1)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.tree[i][j] != 0 {
				conns = append(conns, Connection{
					From:   labels[i],
					To:     labels[j],
					Weight: m.tree[i][j],
				})
			}
		}
	}

	return conns, nil
}

// N returns the model's input vector length.
func (m *Model) N() int { return m.n }

// Contraction returns the model's contraction parameter C.
func (m *Model) Contraction() float64 { return m.c }

// Runs returns the number of samples consumed by the last Train call.
func (m *Model) Runs() int { return m.runs }

// InputWeights returns a copy of the input-layer weight vector v.
func (m *Model) InputWeights() []float64 {
	out := make([]float64, m.n)
	copy(out, m.v)

	return out
}

// Weights returns a deep copy of the hidden-to-output weight matrix w.
func (m *Model) Weights() [][]float64 {
	out := make([][]float64, m.n)
	for i := range m.w {
		out[i] = make([]float64, m.n)
		copy(out[i], m.w[i])
	}

	return out
}

// Tree returns a deep copy of the stored spanning tree, or nil when the
// model has not been (successfully) trained yet.
func (m *Model) Tree() [][]float64 {
	if m.tree == nil {
		return nil
	}
	out := make([][]float64, m.n)
	for i := range m.tree {
		out[i] = make([]float64, m.n)
		copy(out[i], m.tree[i])
	}

	return out
}
