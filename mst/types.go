// Package mst defines configuration options and sentinel errors for
// minimum-spanning-forest computation over dense adjacency matrices.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package mst

import (
	"errors"
	"math"
)

// ErrNilMatrix indicates that a nil or empty adjacency matrix was supplied.
var ErrNilMatrix = errors.New("mst: adjacency matrix is nil or empty")

// ErrNonSquare indicates that the adjacency matrix is not n×n.
var ErrNonSquare = errors.New("mst: adjacency matrix is not square")

// ErrNaNInf indicates that a NaN or ±Inf entry was encountered where
// finite weights are required.
var ErrNaNInf = errors.New("mst: NaN or Inf entry in adjacency matrix")

// ErrBadRoot indicates that the Prim root index is outside [0, n).
var ErrBadRoot = errors.New("mst: root index out of range")

// ErrUnknownMethod indicates that MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodPrim selects Prim's algorithm (grow components from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm Compute runs, and for Prim, which
// starting vertex to use. Use DefaultOptions() for a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex index for Prim; ignored by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions. All Option functions modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the spanning-forest algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(adj).
//	– If opts.Method == MethodPrim:    calls Prim(adj, opts.Root).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Returns the upper-triangular forest matrix described in the package doc.
func Compute(adj [][]float64, opts MSTOptions) ([][]float64, error) {
	// Dispatch by method name
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(adj)
	case MethodPrim:
		return Prim(adj, opts.Root)
	default:
		// Unknown method name
		return nil, ErrUnknownMethod
	}
}

// validate checks that adj is a non-empty square matrix of finite entries
// and returns its side length.
//
// Error Conditions:
//   - ErrNilMatrix : adj is nil or has zero rows.
//   - ErrNonSquare : any row length differs from the row count.
//   - ErrNaNInf    : any entry is NaN or ±Inf.
func validate(adj [][]float64) (int, error) {
	if len(adj) == 0 {
		return 0, ErrNilMatrix
	}
	n := len(adj)
	for i := 0; i < n; i++ {
		if len(adj[i]) != n {
			return 0, ErrNonSquare
		}
		for j := 0; j < n; j++ {
			if math.IsNaN(adj[i][j]) || math.IsInf(adj[i][j], 0) {
				return 0, ErrNaNInf
			}
		}
	}

	return n, nil
}

// edgeWeight resolves the undirected weight between i and j (i != j).
// A zero entry means "no edge"; when both directed entries are non-zero
// the smaller one wins (the convention dense asymmetric matrices need).
// The second return reports whether an edge exists at all.
func edgeWeight(adj [][]float64, i, j int) (float64, bool) {
	a, b := adj[i][j], adj[j][i]
	switch {
	case a != 0 && b != 0:
		return math.Min(a, b), true
	case a != 0:
		return a, true
	case b != 0:
		return b, true
	default:
		return 0, false
	}
}

// emptyForest allocates an all-zero n×n result matrix.
func emptyForest(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	return out
}
