// Package acm implements the Auto-Contractive Map: an unsupervised model
// that learns the correlation structure of fixed-length sample vectors.
//
// 🚀 How it works
//
//	Each training sample is rescaled to [0,1] and pushed through two
//	adaptive stages. Every term of the update rule carries a (1 − x/C)
//	contraction factor, C > 1, so weights saturate instead of exploding:
//
//	  1. hidden[i] = in[i]·(1 − v[i]/C)                 signal in→hidden
//	  2. v[i]     += (in[i] − hidden[i])·(1 − v[i]/C)   adapt input weights
//	  3. net[i]    = Σ_j hidden[j]·(1 − w[i][j]/C)      signal hidden→out
//	  4. out[i]    = hidden[i]·(1 − net[i]/C)
//	  5. w[i][j]  += (hidden[i] − out[i])·(1 − w[i][j]/C)·hidden[j]
//
//	Each phase completes before the next starts; the rule is a stateful
//	recurrence, so samples must be consumed strictly in order. Training
//	stops early once the output layer collapses (0 ≤ Σout < precision) —
//	past that point the output oscillates and risks overflow.
//
//	After training the learned w matrix is reduced to a minimum spanning
//	tree: strongly co-varying dimensions end up adjacent in the tree.
//
// ✨ Key features:
//   - five-phase update with a finiteness check after every phase
//     (a non-finite value aborts training instead of corrupting weights)
//   - fixed scratch buffers allocated once at construction, reused per step
//   - pluggable spanning-tree capability (mst.Kruskal by default)
//   - per-sample hook for progress observation
//   - deterministic: two models fed the same sequence agree exactly
//
// ⚙️ Usage:
//
//	m, err := acm.New(10, 2)
//	if err != nil { ... }
//	if err := m.Train(samples); err != nil { ... }
//	conns, err := m.Connections(labels)
//
// Complexity per sample: O(N²) time, O(1) extra memory.
package acm
