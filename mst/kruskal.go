// Package mst provides an implementation of Kruskal's minimum-spanning-forest
// algorithm. It consumes a dense weighted adjacency matrix and produces an
// upper-triangular matrix holding the chosen edges.
package mst

import "sort"

// denseEdge is one undirected candidate edge (i < j) with its resolved weight.
type denseEdge struct {
	i, j   int
	weight float64
}

// Kruskal computes the minimum spanning forest of the undirected graph
// encoded by adj. It uses a disjoint-set (union-find) structure with path
// compression and union by rank.
//
// Error Conditions:
//   - ErrNilMatrix : adj is nil or empty.
//   - ErrNonSquare : adj is not n×n.
//   - ErrNaNInf    : adj holds a non-finite entry.
//
// Steps:
//  1. Validate the matrix (square, finite).
//  2. Collect undirected edges from the upper triangle, resolving each pair
//     (i,j)/(j,i) through edgeWeight; self-loops never arise (i < j).
//  3. Sort edges by ascending weight (sort.SliceStable keeps (i,j) row-major
//     order for equal weights, so results are deterministic).
//  4. Initialize DSU parent[] and rank[] per vertex.
//  5. Loop over sorted edges: if the endpoints lie in different components,
//     union them and write the edge into the result at [i][j].
//  6. Return the forest; components that were never connected simply stay
//     separate trees — disconnection is not an error here.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Kruskal(adj [][]float64) ([][]float64, error) {
	// 1. Validate shape and numeric policy.
	n, err := validate(adj)
	if err != nil {
		return nil, err
	}

	// 2. Collect candidate edges from the upper triangle.
	edges := make([]denseEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w, ok := edgeWeight(adj, i, j); ok {
				edges = append(edges, denseEdge{i: i, j: j, weight: w})
			}
		}
	}

	// 3. Sort edges by ascending weight; stable sort preserves row-major
	//    tie order established by the collection loop above.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].weight < edges[b].weight
	})

	// 4. Initialize disjoint-set (union-find) structures.
	//    parent maps each vertex to its parent in the DSU; initially parent[v] = v.
	parent := make([]int, n)
	//    rank tracks tree depth to keep unions shallow.
	rank := make([]int, n)
	for v := 0; v < n; v++ {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			// Path compression: make u point to its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			// Already in the same set; no action needed.
			return
		}
		// Attach smaller-rank tree under larger-rank root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 5. Build the forest by scanning sorted edges.
	forest := emptyForest(n)
	taken := 0
	for _, e := range edges {
		if find(e.i) != find(e.j) {
			// Endpoints are in different components: take the edge.
			union(e.i, e.j)
			forest[e.i][e.j] = e.weight
			taken++
			// A spanning forest never exceeds n-1 edges.
			if taken == n-1 {
				break
			}
		}
	}

	// 6. Return the forest; leftover components are legal.
	return forest, nil
}
