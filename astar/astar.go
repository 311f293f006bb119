// Package astar implements best-first search with a lazy decrease-key frontier.
//
// Notes on implementation choices:
//
//   - Each run owns a record table keyed by State.Key(); a record holds the
//     best known g, the predecessor key and whether the state is closed.
//   - Improvements push a fresh frontier entry instead of fixing the heap in
//     place; stale entries are discarded when popped because their state is
//     already closed.
//   - The goal test happens on dequeue, not on generation, so the first time
//     the goal is popped its g is final for admissible heuristics.
package astar

import (
	"container/heap"
	"fmt"
)

// Search finds a lowest-cost path from `from` to `to`.
//
// Returns:
//
//   - *Result: Path (start..goal inclusive), Cost and statistics. When no path
//     exists Result.Path is empty and err is nil.
//   - error: ErrOptionViolation for bad options, ErrExpansionLimit when
//     MaxExpansions is hit, ctx.Err() on cancellation, ErrNegativeCost, or a
//     wrapped OnExpand error. The partial Result is returned alongside
//     ErrExpansionLimit so callers can inspect the statistics.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Search[S State[S]](from, to S, opts ...Option) (*Result[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner[S]{
		opts:    cfg,
		goal:    to.Key(),
		records: make(map[string]*record[S]),
		open:    make(frontier, 0, 64),
		res:     &Result[S]{Path: []S{}},
	}
	r.init(from)
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// Path is the plain form of Search: it returns the start-to-goal sequence,
// or an empty slice when the goal is unreachable.
func Path[S State[S]](from, to S) []S {
	res, err := Search(from, to)
	if err != nil {
		return []S{}
	}

	return res.Path
}

// record is the engine-owned bookkeeping for one distinct state.
type record[S any] struct {
	state     S
	parent    string
	hasParent bool
	g         float64
	closed    bool
}

// runner holds the mutable state for a single search.
type runner[S State[S]] struct {
	opts    Options
	goal    string
	records map[string]*record[S]
	open    frontier
	seq     uint64
	res     *Result[S]
}

// init registers the start state with g = 0 and pushes it.
func (r *runner[S]) init(from S) {
	key := from.Key()
	r.records[key] = &record[S]{state: from}
	heap.Init(&r.open)
	r.push(key, from, 0)
}

// push inserts a frontier entry with f = g + h.
func (r *runner[S]) push(key string, s S, g float64) {
	f := g + s.Heuristic()
	r.seq++
	heap.Push(&r.open, &item{key: key, g: g, f: f, seq: r.seq})
	r.opts.OnEnqueue(key, g, f)
}

// process is the main loop. It stops when the goal is dequeued, the
// frontier empties, or an option ends the search early.
func (r *runner[S]) process() error {
	for r.open.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		it := heap.Pop(&r.open).(*item)
		rec := r.records[it.key]

		if it.key == r.goal {
			r.res.Path = r.reconstruct(it.key)
			r.res.Cost = rec.g

			return nil
		}
		if rec.closed {
			continue // stale entry
		}
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, r.res.Expanded)
		}

		rec.closed = true
		r.res.Expanded++
		if err := r.opts.OnExpand(it.key, rec.g); err != nil {
			return fmt.Errorf("astar: OnExpand error at %q: %w", it.key, err)
		}
		if err := r.relax(it.key, rec); err != nil {
			return err
		}
	}

	return nil
}

// relax generates the successors of cur and records every strict
// improvement of a successor's g.
func (r *runner[S]) relax(curKey string, cur *record[S]) error {
	for _, next := range cur.state.Successors() {
		r.res.Generated++

		w := cur.state.Cost(next)
		if w < 0 {
			return fmt.Errorf("%w: %s→%s cost=%g", ErrNegativeCost, curKey, next.Key(), w)
		}
		g := cur.g + w
		key := next.Key()

		rec, seen := r.records[key]
		if seen && (rec.closed || g >= rec.g) {
			continue
		}
		if !seen {
			rec = &record[S]{}
			r.records[key] = rec
		}
		rec.state = next
		rec.parent = curKey
		rec.hasParent = true
		rec.g = g
		r.push(key, next, g)
	}

	return nil
}

// reconstruct follows predecessor keys from goal back to the start and
// returns the states in start-to-goal order.
func (r *runner[S]) reconstruct(goal string) []S {
	var path []S
	for key := goal; ; {
		rec := r.records[key]
		path = append(path, rec.state)
		if !rec.hasParent {
			break
		}
		key = rec.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
