// Package bfs computes breadth-first depth layers over a core.Graph.
//
// What
//
//   - Sweep an unweighted graph outward from a start vertex, one depth layer
//     at a time.
//   - Returns a Result containing:
//   - Order:  discovery sequence (start first)
//   - Depth:  vertex → distance in edges from the start
//   - Parent: vertex → predecessor on a fewest-edge path
//   - Layers: vertices grouped by depth, each layer sorted ascending
//
// Who uses it
//
//	prim_kruskal.Tree derives parents and levels of a spanning tree from
//	the layers; the grid tests use Depth as the fewest-moves oracle for
//	gridgraph.ShortestPath.
//
// Determinism
//
//	core.NeighborIDs returns neighbours sorted, and a layer is expanded in
//	discovery order, so Order, Parent and Layers are reproducible. When a
//	vertex is reachable from several vertices of the previous layer, the
//	first one expanded becomes its parent.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):  checked once per layer.
//   - WithMaxDepth(d):   stop after layer d (d > 0); 0 means no limit.
//   - WithSkip(fn):      ignore the edge curr→next when fn returns true.
//   - WithOnLayer(fn):   called with every completed layer; an error aborts.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNotReached           from Result.PathTo for an unreached vertex.
//   - Wrapped errors from OnLayer.
package bfs
