// Package mst provides an implementation of Prim's minimum-spanning-forest
// algorithm over dense adjacency matrices, grown one vertex at a time from
// a root and restarted per connected component.
package mst

import "math"

// Prim computes the minimum spanning forest of the undirected graph encoded
// by adj, growing outwards from the given root vertex. When the graph is
// disconnected, each further component is grown from its lowest-index
// vertex, so the result is always a full spanning forest.
//
// Error Conditions:
//   - ErrNilMatrix : adj is nil or empty.
//   - ErrNonSquare : adj is not n×n.
//   - ErrNaNInf    : adj holds a non-finite entry.
//   - ErrBadRoot   : root is outside [0, n).
//
// Steps:
//  1. Validate the matrix and the root index.
//  2. Initialize bestCost[] = +Inf, parents[] = -1, seed bestCost[root] = 0.
//  3. Repeat n times: pick the unvisited vertex u with minimal bestCost;
//     if every unvisited vertex sits at +Inf, the current component is
//     exhausted — seed the lowest-index unvisited vertex as a new root.
//  4. Mark u visited; if u has a parent, write the edge into the result
//     at [min(u,p)][max(u,p)].
//  5. Relax bestCost for the remaining vertices through edgeWeight.
//
// Complexity: O(n²) time, O(n²) memory (dense output).
func Prim(adj [][]float64, root int) ([][]float64, error) {
	// 1. Validate shape, numeric policy and root.
	n, err := validate(adj)
	if err != nil {
		return nil, err
	}
	if root < 0 || root >= n {
		return nil, ErrBadRoot
	}

	// 2. Initialization: no vertex in the forest, all costs infinite.
	inForest := make([]bool, n)
	bestCost := make([]float64, n)
	parents := make([]int, n)
	for v := 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	// Seed the first component at the requested root.
	bestCost[root] = 0

	forest := emptyForest(n)

	// 3. Grow the forest one vertex per iteration.
	for it := 0; it < n; it++ {
		// (a) Find the unvisited vertex u with minimal bestCost.
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inForest[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		// (b) No reachable vertex left: start a new component at the
		//     lowest-index unvisited vertex.
		if u < 0 {
			for v := 0; v < n; v++ {
				if !inForest[v] {
					u = v
					bestCost[v] = 0
					parents[v] = -1
					break
				}
			}
		}

		// (c) Add u to the forest, recording its tree edge if any.
		inForest[u] = true
		if p := parents[u]; p >= 0 {
			lo, hi := p, u
			if lo > hi {
				lo, hi = hi, lo
			}
			forest[lo][hi] = bestCost[u]
		}

		// (d) Relax costs of the remaining vertices through u.
		for v := 0; v < n; v++ {
			if inForest[v] || v == u {
				continue
			}
			if w, ok := edgeWeight(adj, u, v); ok && w < bestCost[v] {
				bestCost[v] = w
				parents[v] = u
			}
		}
	}

	return forest, nil
}
