package mst_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/acmap/mst" // package under test
	"github.com/stretchr/testify/assert"
)

// buildTriangle constructs a dense adjacency for a weighted triangle:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// Its MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle() [][]float64 {
	return [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}
}

// totalWeight sums every entry of a forest matrix.
func totalWeight(forest [][]float64) float64 {
	var sum float64
	for i := range forest {
		for j := range forest[i] {
			sum += forest[i][j]
		}
	}

	return sum
}

// edgeCount counts non-zero entries of a forest matrix.
func edgeCount(forest [][]float64) int {
	var cnt int
	for i := range forest {
		for j := range forest[i] {
			if forest[i][j] != 0 {
				cnt++
			}
		}
	}

	return cnt
}

// buildMediumMatrix creates a connected weighted adjacency with n vertices:
// a chain V0—V1—...—V(n-1) guarantees connectivity, then extra random
// edges are sprinkled in. The RNG is seeded for reproducibility.
func buildMediumMatrix(n, extra int) [][]float64 {
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	r := rand.New(rand.NewSource(42))

	// Chain for connectivity, weights in [1, 11).
	for i := 1; i < n; i++ {
		w := 1.0 + 10.0*r.Float64()
		adj[i-1][i] = w
		adj[i][i-1] = w
	}
	// Extra random edges, weights in [1, 101).
	for k := 0; k < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v || adj[u][v] != 0 {
			continue
		}
		w := 1.0 + 100.0*r.Float64()
		adj[u][v] = w
		adj[v][u] = w
		k++
	}

	return adj
}

// TestValidation_BadMatrix verifies the shared matrix validation sentinels.
func TestValidation_BadMatrix(t *testing.T) {
	// Nil matrix.
	_, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilMatrix)

	// Non-square matrix.
	_, err = mst.Kruskal([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, mst.ErrNonSquare)

	// NaN entry.
	_, err = mst.Prim([][]float64{{0, math.NaN()}, {1, 0}}, 0)
	assert.ErrorIs(t, err, mst.ErrNaNInf)

	// Inf entry.
	_, err = mst.Kruskal([][]float64{{0, math.Inf(1)}, {1, 0}})
	assert.ErrorIs(t, err, mst.ErrNaNInf)
}

// TestValidation_BadRoot verifies that Prim rejects out-of-range roots.
func TestValidation_BadRoot(t *testing.T) {
	adj := buildTriangle()

	_, err := mst.Prim(adj, -1)
	assert.ErrorIs(t, err, mst.ErrBadRoot)

	_, err = mst.Prim(adj, 3)
	assert.ErrorIs(t, err, mst.ErrBadRoot)
}

// TestCompute_UnknownMethod verifies the dispatcher sentinel.
func TestCompute_UnknownMethod(t *testing.T) {
	opts := mst.MSTOptions{Method: "boruvka"}
	_, err := mst.Compute(buildTriangle(), opts)
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

// TestTriangle_KruskalAndPrim verifies both algorithms pick the two
// cheapest triangle edges and write them upper-triangular.
func TestTriangle_KruskalAndPrim(t *testing.T) {
	adj := buildTriangle()

	forestK, errK := mst.Kruskal(adj)
	assert.NoError(t, errK)
	assert.Equal(t, 1.0, forestK[0][1], "edge 0-1 must be chosen")
	assert.Equal(t, 2.0, forestK[1][2], "edge 1-2 must be chosen")
	assert.Zero(t, forestK[0][2], "edge 0-2 must be rejected")
	assert.Equal(t, 2, edgeCount(forestK))

	forestP, errP := mst.Prim(adj, 0)
	assert.NoError(t, errP)
	assert.Equal(t, forestK, forestP, "Prim must agree with Kruskal on a unique MST")
}

// TestAsymmetricEntries verifies the undirected convention: when both
// directed entries are non-zero, the smaller one is the edge weight.
func TestAsymmetricEntries(t *testing.T) {
	adj := [][]float64{
		{0, 5},
		{2, 0},
	}

	forest, err := mst.Kruskal(adj)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, forest[0][1], "min of the two directed entries wins")
}

// TestDisconnected_Forest verifies that a disconnected input yields a
// spanning forest (one tree per component) without error.
func TestDisconnected_Forest(t *testing.T) {
	// Two components: {0,1} and {2,3}, no edges across.
	adj := [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 4},
		{0, 0, 4, 0},
	}

	forestK, errK := mst.Kruskal(adj)
	assert.NoError(t, errK, "disconnection is not an error for a forest")
	assert.Equal(t, 1.0, forestK[0][1])
	assert.Equal(t, 4.0, forestK[2][3])
	assert.Equal(t, 2, edgeCount(forestK))

	forestP, errP := mst.Prim(adj, 0)
	assert.NoError(t, errP, "Prim restarts per component")
	assert.Equal(t, forestK, forestP)
}

// TestSingleVertex verifies the trivial forest: no edges, zero weight.
func TestSingleVertex(t *testing.T) {
	forest, err := mst.Kruskal([][]float64{{0}})
	assert.NoError(t, err)
	assert.Zero(t, edgeCount(forest))
}

// TestTieBreak_RowMajor verifies deterministic tie-breaking: among
// equal-weight candidates the earliest (row, column) pair wins.
func TestTieBreak_RowMajor(t *testing.T) {
	// A triangle with all weights equal: exactly two edges survive and
	// the stable sort must keep 0-1 and 0-2 (row-major before 1-2).
	adj := [][]float64{
		{0, 7, 7},
		{7, 0, 7},
		{7, 7, 0},
	}

	forest, err := mst.Kruskal(adj)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, forest[0][1])
	assert.Equal(t, 7.0, forest[0][2])
	assert.Zero(t, forest[1][2])
}

// TestMedium_PrimMatchesKruskal checks on a seeded random graph that both
// algorithms produce spanning trees of identical total weight.
func TestMedium_PrimMatchesKruskal(t *testing.T) {
	adj := buildMediumMatrix(50, 200)

	forestK, errK := mst.Kruskal(adj)
	assert.NoError(t, errK)
	forestP, errP := mst.Prim(adj, 0)
	assert.NoError(t, errP)

	assert.Equal(t, 49, edgeCount(forestK), "spanning tree has n-1 edges")
	assert.Equal(t, 49, edgeCount(forestP), "spanning tree has n-1 edges")
	assert.InDelta(t, totalWeight(forestK), totalWeight(forestP), 1e-9,
		"both algorithms must reach the same minimum total weight")
}

// TestCompute_Dispatch verifies that Compute routes to the configured method.
func TestCompute_Dispatch(t *testing.T) {
	adj := buildTriangle()

	viaKruskal, err := mst.Compute(adj, mst.DefaultOptions())
	assert.NoError(t, err)

	opts := mst.MSTOptions{Method: mst.MethodPrim, Root: 2}
	viaPrim, err := mst.Compute(adj, opts)
	assert.NoError(t, err)

	assert.Equal(t, viaKruskal, viaPrim)
}
