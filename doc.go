// Package algodemos is a small collection of search algorithms built around
// one generic A* engine.
//
// What is in here?
//
//	astar/          best-first search over any State (successors, cost,
//	                heuristic, identity), with limits and hooks
//	gridgraph/      square (4- or 8-way) and hex obstacle grids, their
//	                heuristics, shortest paths and connected regions
//	puzzle/         the N×N sliding puzzle as an A* state, with a
//	                solvability check and seeded scrambling
//	core/           thread-safe Graph, Vertex and Edge primitives
//	bfs/, dfs/      layered and depth-first traversals on core graphs
//	prim_kruskal/   minimum spanning trees and rooted tree queries
//
// The pathfind command (cmd/pathfind) runs every demo from a YAML scenario.
//
// Quick example:
//
//	gg, _ := gridgraph.NewEmpty(8, 8, gridgraph.DefaultGridOptions())
//	path, _ := gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 3})
//	// len(path) == 7
//
//	go install github.com/brend/algodemos/cmd/pathfind@latest
package algodemos
