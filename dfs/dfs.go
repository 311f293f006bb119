package dfs

import (
	"fmt"

	"github.com/brend/algodemos/core"
)

// walker holds the state of one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS walks g depth-first from startID.
//
// Returns the partial Result alongside any error raised after the walk
// started (cancellation or a hook failure).
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Preorder:  make([]string, 0, n),
			Postorder: make([]string, 0, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
		},
	}

	return w.res, w.traverse(startID, 0)
}

// traverse visits id at depth and recurses into its unvisited neighbours.
func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
		for _, nid := range nbs {
			if nid == id || w.res.Visited(nid) || !w.opts.Filter(id, nid) {
				continue
			}
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if err := w.opts.OnExit(id); err != nil {
		return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
	}
	w.res.Postorder = append(w.res.Postorder, id)

	return nil
}
