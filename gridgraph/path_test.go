package gridgraph_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brend/algodemos/astar"
	"github.com/brend/algodemos/bfs"
	"github.com/brend/algodemos/gridgraph"
)

// TestShortestPath_OpenSquare searches (0,0)→(3,3) on an empty 8×8 grid.
func TestShortestPath_OpenSquare(t *testing.T) {
	gg, err := gridgraph.NewEmpty(8, 8, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	res, err := gg.Search(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Moves())
	assert.Equal(t, 6.0, res.Cost)
	assert.Equal(t, gridgraph.Cell{X: 0, Y: 0}, res.Path[0].Cell)
	assert.Equal(t, gridgraph.Cell{X: 3, Y: 3}, res.Path[len(res.Path)-1].Cell)
	assertContiguous(t, gg, gridgraph.Cells(res.Path))
}

// TestShortestPath_Wall separates start and goal with a full column.
func TestShortestPath_Wall(t *testing.T) {
	gg, err := gridgraph.NewEmpty(8, 8, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		require.NoError(t, gg.SetBlocked(gridgraph.Cell{X: 4, Y: y}, true))
	}

	path, err := gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 7, Y: 7})
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	// opening one gap makes the goal reachable again
	require.NoError(t, gg.SetBlocked(gridgraph.Cell{X: 4, Y: 5}, false))
	path, err = gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 7, Y: 7})
	require.NoError(t, err)
	assert.Len(t, path, 15)
	assert.Contains(t, path, gridgraph.Cell{X: 4, Y: 5})
}

// TestShortestPath_Hex checks (0,0)→(2,0) on an open hex grid: two moves.
func TestShortestPath_Hex(t *testing.T) {
	gg, err := gridgraph.NewEmpty(16, 16, gridgraph.GridOptions{Conn: gridgraph.ConnHex})
	require.NoError(t, err)

	from, to := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0}
	path, err := gg.ShortestPath(from, to)
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, gridgraph.HexDistance(from, to), float64(len(path)-1))
	assertContiguous(t, gg, path)
}

func TestShortestPath_StartIsGoal(t *testing.T) {
	gg, err := gridgraph.NewEmpty(3, 3, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	c := gridgraph.Cell{X: 1, Y: 2}
	path, err := gg.ShortestPath(c, c)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{c}, path)
}

func TestShortestPath_Endpoints(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 0, 1},
		{0, 0, 0},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	_, err = gg.ShortestPath(gridgraph.Cell{X: -1, Y: 0}, gridgraph.Cell{X: 0, Y: 0})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 2})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	// blocked goal and blocked start are unreachable, not errors
	path, err := gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0})
	require.NoError(t, err)
	assert.Empty(t, path)
	path, err = gg.ShortestPath(gridgraph.Cell{X: 2, Y: 0}, gridgraph.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestSearch_ForwardsEngineOptions(t *testing.T) {
	gg, err := gridgraph.NewEmpty(8, 8, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	var expanded []string
	res, err := gg.Search(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 7, Y: 7},
		gridgraph.WithSearchOptions(
			astar.WithMaxExpansions(3),
			astar.WithOnExpand(func(key string, _ float64) error {
				expanded = append(expanded, key)
				return nil
			}),
		))
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)
	require.NotNil(t, res)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, []string{"0,0", "1,0", "0,1"}, expanded)
}

func TestNewQuery(t *testing.T) {
	gg, err := gridgraph.NewEmpty(4, 4, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(t, err)
	goal := gridgraph.Cell{X: 3, Y: 1}

	q := gg.NewQuery(goal, nil)
	assert.Equal(t, goal, q.Goal())
	assert.Equal(t, 3.0, q.Node(gridgraph.Cell{X: 0, Y: 0}).Heuristic(), "Chebyshev by default on Conn8")
	assert.Equal(t, 0.0, q.Node(q.Goal()).Heuristic())

	q = gg.NewQuery(goal, gridgraph.Manhattan)
	assert.Equal(t, 4.0, q.Node(gridgraph.Cell{X: 0, Y: 0}).Heuristic())
}

// TestSearch_HookPaintsGrid paints a cell from inside an expansion hook and
// reads the grid back while the search is still running.
func TestSearch_HookPaintsGrid(t *testing.T) {
	gg, err := gridgraph.NewEmpty(10, 10, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	wall := gridgraph.Cell{X: 5, Y: 5}

	var once sync.Once
	hook := func(string, float64) error {
		once.Do(func() {
			painted := make(chan struct{})
			go func() {
				defer close(painted)
				assert.NoError(t, gg.SetBlocked(wall, true))
			}()
			<-painted
			assert.True(t, gg.Blocked(wall))
			assert.NotContains(t, gg.Neighbors(gridgraph.Cell{X: 4, Y: 5}), wall)
		})
		return nil
	}

	done := make(chan struct{})
	var path []gridgraph.Cell
	go func() {
		defer close(done)
		path, err = gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 9, Y: 9},
			gridgraph.WithSearchOptions(astar.WithOnExpand(hook)))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("search blocked while a hook painted the grid")
	}
	require.NoError(t, err)
	assert.Len(t, path, 19)
	assert.True(t, gg.Blocked(wall))
}

func TestHeuristics(t *testing.T) {
	a, b := gridgraph.Cell{X: 1, Y: 1}, gridgraph.Cell{X: 4, Y: -1}
	assert.Equal(t, 5.0, gridgraph.Manhattan(a, b))
	assert.Equal(t, 3.0, gridgraph.Chebyshev(a, b))
	assert.Equal(t, 0.0, gridgraph.HexDistance(a, a))
	// odd column diagonal (x+1, y+1) is one hex step
	assert.Equal(t, 1.0, gridgraph.HexDistance(gridgraph.Cell{X: 1, Y: 0}, gridgraph.Cell{X: 2, Y: 1}))
	// even column diagonal (x+1, y-1) is one hex step
	assert.Equal(t, 1.0, gridgraph.HexDistance(gridgraph.Cell{X: 2, Y: 1}, gridgraph.Cell{X: 3, Y: 0}))
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// randomGrid fills roughly density of a w×h grid with obstacles.
func randomGrid(rng *rand.Rand, w, h int, density float64) [][]int {
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			if rng.Float64() < density {
				values[y][x] = 1
			}
		}
	}
	return values
}

// assertContiguous fails unless every step of path is a legal move.
func assertContiguous(t *testing.T, gg *gridgraph.GridGraph, path []gridgraph.Cell) {
	t.Helper()
	for i, c := range path {
		assert.False(t, gg.Blocked(c), "path crosses obstacle %s", c)
		if i > 0 {
			assert.Contains(t, gg.Neighbors(path[i-1]), c, "illegal step %s→%s", path[i-1], c)
		}
	}
}

// TestShortestPath_MatchesBFS cross-checks path length against breadth-first
// depths over the equivalent core graph, and no-path against connectivity.
func TestShortestPath_MatchesBFS(t *testing.T) {
	topologies := []struct {
		conn gridgraph.Connectivity
		h    gridgraph.Heuristic
	}{
		{gridgraph.Conn4, gridgraph.Manhattan},
		{gridgraph.Conn8, gridgraph.Chebyshev},
		{gridgraph.ConnHex, gridgraph.HexDistance},
	}
	rng := rand.New(rand.NewSource(7))
	for _, topo := range topologies {
		t.Run(topo.conn.String(), func(t *testing.T) {
			for trial := 0; trial < 25; trial++ {
				values := randomGrid(rng, 12, 10, 0.3)
				values[0][0], values[9][11] = 0, 0
				gg, err := gridgraph.From2D(values, topo.conn)
				require.NoError(t, err)
				from, to := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 11, Y: 9}

				path, err := gg.ShortestPath(from, to, gridgraph.WithHeuristic(topo.h))
				require.NoError(t, err)

				layers, err := bfs.BFS(gg.ToCoreGraph(), gridgraph.VertexID(from))
				require.NoError(t, err)
				depth, reached := layers.Depth[gridgraph.VertexID(to)]

				require.Equal(t, reached, gg.Connected(from, to))
				if !reached {
					assert.Empty(t, path, "trial %d", trial)
					continue
				}
				assert.Len(t, path, depth+1, "trial %d", trial)
				assertContiguous(t, gg, path)
			}
		})
	}
}

// TestShortestPath_Deterministic repeats a search with many equal-cost routes.
func TestShortestPath_Deterministic(t *testing.T) {
	gg, err := gridgraph.NewEmpty(10, 10, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	from, to := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 9, Y: 9}

	first, err := gg.ShortestPath(from, to)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := gg.ShortestPath(from, to)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNode_SuccessorsIdempotent(t *testing.T) {
	gg, err := gridgraph.From2D(randomGrid(rand.New(rand.NewSource(3)), 6, 6, 0.25), gridgraph.ConnHex)
	require.NoError(t, err)
	q := gg.NewQuery(gridgraph.Cell{X: 5, Y: 5}, nil)

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			n := q.Node(gridgraph.Cell{X: x, Y: y})
			assert.Equal(t, gridgraph.Cells(n.Successors()), gridgraph.Cells(n.Successors()))
			assert.Equal(t, q.Node(n.Cell).Key(), n.Key())
		}
	}
}

// TestShortestPath_ConcurrentPainting runs searches while obstacles change;
// every returned path must be legal for the grid it was computed on.
func TestShortestPath_ConcurrentPainting(t *testing.T) {
	gg, err := gridgraph.NewEmpty(20, 20, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_, err := gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 19, Y: 19})
				assert.NoError(t, err)
			}
		}()
	}
	for i := 1; i < 19; i++ {
		_, err := gg.Toggle(gridgraph.Cell{X: i, Y: i})
		require.NoError(t, err)
	}
	wg.Wait()
}
