// Package core provides the small, thread-safe in-memory Graph shared by the
// tree and grid packages of algodemos.
//
// A Graph G = (V,E) stores string-labelled vertices and integer-weighted
// edges. It is deliberately narrow:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Collision-free Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), Neighbors() and NeighborIDs()
// all return sorted results, so every algorithm built on top of core produces
// the same output for the same input.
//
// Who uses it:
//
//	prim_kruskal   minimum spanning trees over labelled weighted graphs
//	bfs, dfs       breadth-first layering and depth-first walks of spanning trees
//	gridgraph      ToCoreGraph export of the free cells of an obstacle grid
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core
