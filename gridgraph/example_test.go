package gridgraph_test

import (
	"fmt"

	"github.com/brend/algodemos/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ShortestPath
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ShortestPath routes around a wall on a square grid.
// Scenario:
//
//   - 5×3 grid, 1 = obstacle
//   - Conn4: W, E, N, S moves of cost 1
//   - The wall forces a detour through the bottom row.
func ExampleGridGraph_ShortestPath() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	}, gridgraph.Conn4)

	path, _ := gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 4, Y: 0})
	fmt.Println("moves:", len(path)-1)
	fmt.Println(path)
	// Output:
	// moves: 8
	// [(0, 0) (1, 0) (1, 1) (1, 2) (2, 2) (3, 2) (4, 2) (4, 1) (4, 0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: hex grid
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Search_hex searches an open hex grid and reports the
// engine statistics alongside the path.
func ExampleGridGraph_Search_hex() {
	gg, _ := gridgraph.NewEmpty(16, 16, gridgraph.GridOptions{Conn: gridgraph.ConnHex})

	res, _ := gg.Search(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 3},
		gridgraph.WithHeuristic(gridgraph.HexDistance))
	fmt.Println("moves:", res.Moves(), "cost:", res.Cost)
	// Output:
	// moves: 5 cost: 5
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents lists the free regions of a grid.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{1, 1, 0},
	}, gridgraph.Conn4)

	for i, comp := range gg.ConnectedComponents() {
		fmt.Printf("component %d: %v\n", i, comp)
	}
	// Output:
	// component 0: [(0, 0) (0, 1)]
	// component 1: [(2, 0) (2, 1) (2, 2)]
}
