package gridgraph

import (
	"fmt"

	"github.com/brend/algodemos/astar"
)

// Query is the per-search context shared by every Node of one run: the grid
// being searched, the goal and the heuristic. Nothing about a search lives
// in package-level state.
type Query struct {
	grid *GridGraph
	goal Cell
	h    Heuristic
}

// NewQuery prepares a search context towards goal. A nil h selects
// DefaultHeuristic(gg.Conn).
func (gg *GridGraph) NewQuery(goal Cell, h Heuristic) *Query {
	if h == nil {
		h = DefaultHeuristic(gg.Conn)
	}

	return &Query{grid: gg, goal: goal, h: h}
}

// Goal returns the cell the query searches for.
func (q *Query) Goal() Cell { return q.goal }

// Node returns the search state for c.
func (q *Query) Node(c Cell) Node { return Node{Cell: c, q: q} }

// Node is a grid cell bound to a Query. It satisfies astar.State[Node].
//
// Successors reads the obstacle map without locking. Search and
// ShortestPath bind their Query to a private copy of the grid; callers
// driving astar.Search with their own Query must not paint meanwhile.
type Node struct {
	Cell
	q *Query
}

// Key returns "x,y".
func (n Node) Key() string { return vertexID(n.X, n.Y) }

// Successors returns the free, in-bounds neighbours of n in the topology's
// offset order.
func (n Node) Successors() []Node {
	cells := n.q.grid.neighbors(n.Cell)
	out := make([]Node, len(cells))
	for i, c := range cells {
		out[i] = Node{Cell: c, q: n.q}
	}

	return out
}

// Cost is 1 for every move.
func (n Node) Cost(Node) float64 { return 1 }

// Heuristic estimates the remaining moves to the query's goal.
func (n Node) Heuristic() float64 { return n.q.h(n.Cell, n.q.goal) }

// PathOption configures Search and ShortestPath.
type PathOption func(*pathOptions)

type pathOptions struct {
	heuristic Heuristic
	search    []astar.Option
}

// WithHeuristic replaces the default heuristic for the grid's topology.
// Passing nil keeps the default.
func WithHeuristic(h Heuristic) PathOption {
	return func(o *pathOptions) {
		if h != nil {
			o.heuristic = h
		}
	}
}

// WithSearchOptions forwards engine options (limits, hooks, context).
// Hooks run while no grid lock is held and may call any GridGraph method,
// including SetBlocked; the running search keeps the map it started with.
func WithSearchOptions(opts ...astar.Option) PathOption {
	return func(o *pathOptions) {
		o.search = append(o.search, opts...)
	}
}

// Search runs the A* engine from `from` to `to` and returns the engine
// result, including expansion statistics.
//
// Returns ErrOutOfBounds if either endpoint lies outside the grid. A blocked
// endpoint yields an empty path and nil error, like any unreachable goal.
func (gg *GridGraph) Search(from, to Cell, opts ...PathOption) (*astar.Result[Node], error) {
	if !gg.InBounds(from.X, from.Y) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, from)
	}
	if !gg.InBounds(to.X, to.Y) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, to)
	}
	var po pathOptions
	for _, opt := range opts {
		opt(&po)
	}

	gg.mu.RLock()
	if gg.blocked(from.X, from.Y) || gg.blocked(to.X, to.Y) {
		gg.mu.RUnlock()
		return &astar.Result[Node]{Path: []Node{}}, nil
	}
	snap := gg.snapshot()
	gg.mu.RUnlock()
	q := snap.NewQuery(to, po.heuristic)

	return astar.Search(q.Node(from), q.Node(to), po.search...)
}

// ShortestPath returns the cells of a shortest path from `from` to `to`,
// both inclusive. An unreachable goal yields an empty slice and nil error.
func (gg *GridGraph) ShortestPath(from, to Cell, opts ...PathOption) ([]Cell, error) {
	res, err := gg.Search(from, to, opts...)
	if err != nil {
		return nil, err
	}

	return Cells(res.Path), nil
}

// Cells strips the query binding from a path of nodes.
func Cells(path []Node) []Cell {
	out := make([]Cell, len(path))
	for i, n := range path {
		out[i] = n.Cell
	}

	return out
}
