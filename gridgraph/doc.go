// Package gridgraph treats a bounded 2D grid with obstacles as a searchable
// graph for the square and hex pathfinding demos.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int obstacle map: 0 is free, any
//     other value is blocked.
//   - Three topologies: Conn4 (square, 4 neighbours), ConnHex (offset-column
//     hexagons, 6 neighbours) and Conn8 (square with diagonals).
//   - Node adapts a cell to the astar.State contract; ShortestPath runs the
//     generic engine between two cells.
//   - ConnectedComponents and ToCoreGraph support analysis and testing.
//
// Hex adjacency (offset columns):
//
//	every cell:  (x, y±1), (x±1, y)
//	odd  x:      (x-1, y+1), (x+1, y+1)
//	even x:      (x-1, y-1), (x+1, y-1)
//
// Obstacles are a structural property of a move, not a cost penalty: a
// blocked or out-of-bounds neighbour is never generated as a successor.
//
// Concurrency:
//
//   - The obstacle map is guarded by a sync.RWMutex. A search copies the map
//     under the read lock and runs on the copy, so it never observes a
//     half-painted grid and painting never waits for a search to finish.
//     Engine hooks may call back into the grid.
//
// Complexity:
//
//   - ShortestPath:        O(W×H×d·log(W×H)) worst case, d = 4, 6 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid:           input grid has no rows or no columns.
//   - ErrNonRectangular:      rows have differing lengths.
//   - ErrBadDimensions:       NewEmpty called with a non-positive size.
//   - ErrOutOfBounds:         a cell lies outside the grid.
//   - ErrUnknownConnectivity: unsupported Connectivity value.
package gridgraph
