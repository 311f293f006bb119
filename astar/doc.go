// Package astar provides a generic best-first (A*) search over implicit graphs.
//
// Overview:
//
//   - The graph is never materialized. Every node is a State value that
//     reports its own successors, the cost of each move and a heuristic
//     estimate of the remaining cost to the goal.
//   - Search expands the frontier state with the lowest f = g + h until it
//     dequeues the goal or the frontier runs dry, then walks the recorded
//     predecessors back to the start.
//   - The same engine drives grid pathfinding (gridgraph) and the sliding
//     puzzle solver (puzzle); it does not know which one it is running.
//
// The State contract:
//
//	type State[S any] interface {
//	    Key() string        // identity: equal keys mean the same logical state
//	    Successors() []S    // legal next states only
//	    Cost(to S) float64  // non-negative move cost
//	    Heuristic() float64 // estimate of the remaining cost
//	}
//
// States are treated as immutable values. Predecessor links, accumulated
// costs and the closed set live in a run-scoped table owned by the engine,
// so two searches never share mutable state and may run concurrently.
//
// Ordering and determinism:
//
//   - The frontier is ordered by ascending f; equal f values are expanded in
//     discovery order (first discovered, first expanded).
//   - A predecessor link is replaced only by a strictly cheaper one.
//   - Consequently repeated searches over an unchanged graph return the
//     same path every time.
//
// Results:
//
//   - Found:    Result.Path holds start..goal inclusive, Result.Cost its total cost.
//   - start==goal: a single-element path with cost 0.
//   - No path:  Result.Path is empty and the error is nil. Not finding a
//     path is a normal outcome, not a failure.
//
// Optimality is guaranteed only for admissible heuristics (never
// overestimating); the engine does not check admissibility.
//
// Complexity:
//
//   - Time:  O(E log E) heap operations in the worst case, E = generated successors.
//   - Space: O(V + E) for the record table and the lazy frontier.
//
// Options:
//
//   - WithContext(ctx):        abandon the search when ctx is done.
//   - WithMaxExpansions(n):    stop with ErrExpansionLimit after n expansions.
//   - WithOnEnqueue(fn):       observe every frontier insertion.
//   - WithOnExpand(fn):        observe every expansion; an error aborts the search.
//
// Errors (sentinel):
//
//   - ErrOptionViolation: an invalid option was supplied.
//   - ErrExpansionLimit:  MaxExpansions reached before the goal.
//   - ErrNegativeCost:    a State reported a negative move cost.
package astar
