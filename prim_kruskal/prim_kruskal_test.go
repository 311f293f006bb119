package prim_kruskal_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brend/algodemos/core"
	"github.com/brend/algodemos/prim_kruskal"
)

// buildDemoGraph is the seven-vertex graph of the tree drawer demo.
// Its MST is {A–D 5, C–E 5, D–F 6, A–B 7, B–E 7, E–G 9}, weight 39.
func buildDemoGraph(t testing.TB) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"D", "A", "B", "C", "E", "F", "G"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 7}, {"A", "D", 5}, {"B", "C", 8}, {"B", "D", 9},
		{"B", "E", 7}, {"C", "E", 5}, {"D", "E", 15}, {"D", "F", 6},
		{"E", "F", 8}, {"E", "G", 9}, {"F", "G", 11},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

// buildRandomGraph creates a connected weighted graph: a chain V0…V(n-1)
// plus random extra edges, seeded for reproducibility.
func buildRandomGraph(t testing.TB, n, extra int, seed int64) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		_, err := g.AddEdge("V"+strconv.Itoa(i-1), "V"+strconv.Itoa(i), int64(1+r.Intn(50)))
		require.NoError(t, err)
	}
	for added := 0; added < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge("V"+strconv.Itoa(u), "V"+strconv.Itoa(v), int64(1+r.Intn(100))); err == nil {
			added++
		}
	}
	return g
}

func pairs(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From + "-" + e.To
	}
	return out
}

func TestValidation(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	unweighted := core.NewGraph()
	_, _ = unweighted.AddEdge("A", "B", 0)
	_, _, err = prim_kruskal.Kruskal(unweighted)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	directed := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = directed.AddEdge("A", "B", 1)
	_, _, err = prim_kruskal.Prim(directed, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	empty := core.NewGraph(core.WithWeighted())
	_, _, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	g := buildDemoGraph(t)
	_, _, err = prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)
	_, _, err = prim_kruskal.Prim(g, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestDisconnected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	require.NoError(t, g.AddVertex("C"))

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("X"))

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	edges, total, err = prim_kruskal.Prim(g, "X")
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestKruskal_Demo(t *testing.T) {
	edges, total, err := prim_kruskal.Kruskal(buildDemoGraph(t))
	require.NoError(t, err)
	assert.Equal(t, int64(39), total)
	assert.Equal(t, []string{"A-D", "C-E", "D-F", "A-B", "B-E", "E-G"}, pairs(edges))
}

func TestPrim_Demo(t *testing.T) {
	edges, total, err := prim_kruskal.Prim(buildDemoGraph(t), "D")
	require.NoError(t, err)
	assert.Equal(t, int64(39), total)
	assert.Equal(t, []string{"A-D", "D-F", "A-B", "B-E", "C-E", "E-G"}, pairs(edges))
}

// TestPrimMatchesKruskal compares total weights on random graphs.
func TestPrimMatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := buildRandomGraph(t, 60, 200, seed)
		_, wk, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		edges, wp, err := prim_kruskal.Prim(g, "V0")
		require.NoError(t, err)
		assert.Equal(t, wk, wp, "seed %d", seed)
		assert.Len(t, edges, 59)
	}
}

func TestCompute(t *testing.T) {
	g := buildDemoGraph(t)
	opts := prim_kruskal.DefaultOptions()
	assert.Equal(t, prim_kruskal.MethodKruskal, opts.Method)

	for _, opt := range []prim_kruskal.Option{
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("G"),
	} {
		opt(&opts)
	}
	edges, total, err := prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(39), total)
	assert.Equal(t, "E-G", pairs(edges)[0])
}
