package bfs

import (
	"fmt"
	"sort"

	"github.com/brend/algodemos/core"
)

// sweep holds the mutable state of one layered traversal.
type sweep struct {
	graph *core.Graph
	opts  Options
	layer []string // current layer in discovery order
	res   *Result
}

// BFS sweeps g outward from startID and returns distances, parents and
// depth layers.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or a wrapped OnLayer error. On error the
// partially filled Result is returned alongside.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	s := &sweep{
		graph: g,
		opts:  o,
		layer: []string{startID},
		res: &Result{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	s.res.Order = append(s.res.Order, startID)
	s.res.Depth[startID] = 0

	return s.res, s.run()
}

// run closes layers until the frontier is empty or MaxDepth is reached.
func (s *sweep) run() error {
	for depth := 0; len(s.layer) > 0; depth++ {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		sorted := append([]string(nil), s.layer...)
		sort.Strings(sorted)
		s.res.Layers = append(s.res.Layers, sorted)
		if err := s.opts.OnLayer(depth, sorted); err != nil {
			return fmt.Errorf("bfs: OnLayer error at depth %d: %w", depth, err)
		}
		if s.opts.MaxDepth > 0 && depth == s.opts.MaxDepth {
			return nil
		}

		next, err := s.advance(depth + 1)
		if err != nil {
			return err
		}
		s.layer = next
	}

	return nil
}

// advance discovers the unseen neighbours of the current layer, recording
// each at depth d with the first expanded vertex that reached it as parent.
func (s *sweep) advance(d int) ([]string, error) {
	var next []string
	for _, id := range s.layer {
		nbrs, err := s.graph.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbours of %q: %w", id, err)
		}
		for _, nb := range nbrs {
			if _, seen := s.res.Depth[nb]; seen || s.opts.Skip(id, nb) {
				continue
			}
			s.res.Depth[nb] = d
			s.res.Parent[nb] = id
			s.res.Order = append(s.res.Order, nb)
			next = append(next, nb)
		}
	}

	return next, nil
}
