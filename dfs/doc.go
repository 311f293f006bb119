// Package dfs implements depth-first traversal on a core.Graph.
//
// Neighbours are visited in ascending ID order, so the pre-order and
// post-order sequences of a given graph never change between runs. The
// prim_kruskal package walks spanning trees with it to print them
// top-down.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked on every discovery.
//   - WithMaxDepth(d)        do not descend below depth d (d >= 0).
//   - WithOnVisit(fn)        pre-order hook; an error aborts the walk.
//   - WithOnExit(fn)         post-order hook; an error aborts the walk.
//   - WithFilter(fn)         skip the edge from→to when fn returns false.
//
// Errors:
//
//   - ErrGraphNil             g is nil.
//   - ErrStartVertexNotFound  startID is not in g.
//   - ErrOptionViolation      negative MaxDepth.
//   - ctx.Err()               the context was cancelled.
//   - hook errors             wrapped with the vertex they failed on.
//
// Complexity: O(V + E log E) time because of the neighbour sort, O(V) memory
// for the recursion stack and result maps.
package dfs
