// Package acmap trains Auto-Contractive Maps: unsupervised models that
// discover the correlation structure hidden in fixed-length sample vectors
// and summarize it as a minimum spanning tree over the learned weights.
//
// 🚀 What is an Auto-Contractive Map?
//
//	An ACM feeds every sample through two adaptive weight stages whose
//	(1 − x/C) contraction terms shrink toward values reflecting how
//	strongly input dimensions co-vary. After training, the hidden-to-output
//	weight matrix is reduced to a minimum spanning tree: dimensions that
//	move together end up adjacent in the tree.
//
// ✨ What's inside:
//   - acm/      — the model core: five-phase update rule, ordered training
//     loop with early stopping, tree summarization
//   - mst/      — minimum spanning forest over a dense weighted adjacency
//     matrix (Kruskal & Prim)
//   - dataset/  — deterministic sample fixtures (uniform & correlated)
//   - report/   — text and Graphviz DOT reporters for the extracted tree
//   - cmd/acmap — runnable wiring: fixtures → training → report
//
// Quick sketch (N=10, C=2, correlated fixture):
//
//	ds, _ := dataset.Correlated(1000, 10, dataset.WithSeed(1))
//	m, _  := acm.New(10, 2)
//	_     = m.Train(ds.Samples)
//	conns, _ := m.Connections(ds.Labels)
//	report.Write(os.Stdout, m.Runs(), conns)
//
// Everything is pure Go, deterministic for a fixed seed, and single
// threaded by design: the update rule is a stateful recurrence, not a
// stateless map.
package acmap
