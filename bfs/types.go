package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the sweep never found.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a sweep.
type Options struct {
	// Ctx allows cancellation; checked before each layer.
	Ctx context.Context

	// MaxDepth, if > 0, stops after the layer at that depth.
	MaxDepth int

	// Skip reports whether the edge curr→next must be ignored.
	Skip func(curr, next string) bool

	// OnLayer receives each completed layer (sorted) and its depth.
	OnLayer func(depth int, ids []string) error

	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no skipped edges and a no-op OnLayer.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Skip:    func(_, _ string) bool { return false },
		OnLayer: func(int, []string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the sweep after depth d.
//
//	d > 0:  last layer is d
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSkip ignores every edge curr→next for which fn returns true.
func WithSkip(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Skip = fn
		}
	}
}

// WithOnLayer registers a callback for completed layers.
func WithOnLayer(fn func(depth int, ids []string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// Result holds the outcome of a sweep.
//   - Start:  the start vertex.
//   - Order:  vertices in discovery sequence.
//   - Depth:  vertex → distance in edges from Start.
//   - Parent: vertex → predecessor; Start has no entry.
//   - Layers: Layers[d] lists the vertices at depth d, sorted ascending.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Layers [][]string
}

// Reached reports whether id was discovered.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the fewest-edge path from Start to dest, both
// inclusive. Returns ErrNotReached if dest was not discovered.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
