// Package mst computes minimum spanning forests over dense weighted
// adjacency matrices.
//
// 🚀 What does it solve?
//
//	Given an n×n matrix where a non-zero entry [i][j] is an undirected
//	edge between vertices i and j, mst extracts the subset of edges that
//	connects every reachable vertex at minimum total weight. Disconnected
//	inputs are legal: the result is a spanning forest, one tree per
//	component, never an error.
//
// ✨ Key features:
//   - Kruskal — union-find over all edges, stable ascending sort
//   - Prim    — dense O(n²) growth, restarted per component
//   - Compute — method dispatch via MSTOptions (Kruskal by default)
//   - deterministic: equal-weight ties break by (row, column) ascending
//
// Conventions:
//
//	When both [i][j] and [j][i] are non-zero the smaller one is taken as
//	the undirected edge weight. The result matrix is upper-triangular:
//	a chosen edge {i, j} with i < j is written to [i][j], all other
//	cells stay zero.
//
// ⚙️ Usage:
//
//	forest, err := mst.Kruskal(adj)
//	// or
//	forest, err := mst.Compute(adj, mst.DefaultOptions())
//
// Complexity:
//   - Kruskal: O(n² log n) time, O(n²) memory
//   - Prim:    O(n²) time, O(n²) memory (dense output)
package mst
