// Package prim_kruskal computes minimum spanning trees of undirected,
// weighted *core.Graph values and exposes the result as a rooted Tree.
//
// Algorithms
//
//   - Kruskal(g) sorts all edges by weight (stable, so ties keep insertion
//     order) and merges components with a disjoint-set forest.
//     Time: O(E log E + α(V)·E). Space: O(V + E).
//
//   - Prim(g, root) grows one tree from root, taking the lightest edge that
//     leaves it from a min-heap; equal weights are taken in push order.
//     Time: O(E log E). Space: O(V + E).
//
// Both return the tree edges and the total weight as int64, the weight type
// of core.Edge.
//
// Rooted trees
//
//	NewTree runs Compute and hangs the result from a root vertex (WithRoot,
//	default: the smallest vertex ID). Parent and level queries come from a
//	breadth-first sweep (package bfs) over an unweighted copy of the tree:
//
//	  tree, _ := prim_kruskal.NewTree(g, prim_kruskal.WithRoot("D"))
//	  tree.Parent("E")  // "B", true
//	  tree.Levels()     // [[D] [A F] [B] [E] [C G]]
//
// Errors
//
//   - ErrInvalidGraph:   graph is nil, directed or unweighted.
//   - ErrEmptyRoot:      Prim called without a root.
//   - ErrUnknownMethod:  Compute called with an unsupported Method.
//   - ErrDisconnected:   no spanning tree covers every vertex (or |V| == 0).
//   - core.ErrVertexNotFound: the root does not exist.
package prim_kruskal
