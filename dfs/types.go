package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behaviour of a DFS walk.
type Option func(*Options)

// Options holds the parameters of a walk.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, stops descent below that depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// OnVisit is invoked when a vertex is discovered (pre-order).
	OnVisit func(id string, depth int) error

	// OnExit is invoked once all descendants of a vertex are done
	// (post-order).
	OnExit func(id string) error

	// Filter reports whether the edge from→to may be followed.
	Filter func(from, to string) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no-op hooks and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		OnVisit:  func(string, int) error { return nil },
		OnExit:   func(string) error { return nil },
		Filter:   func(_, _ string) bool { return true },
	}
}

// WithContext sets the context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits descent to depth d; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithFilter restricts which edges the walk may follow.
func WithFilter(fn func(from, to string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result captures the outcome of a walk.
type Result struct {
	// Preorder lists vertices in discovery order.
	Preorder []string

	// Postorder lists vertices in the order they finished.
	Postorder []string

	// Depth maps each reached vertex to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each reached vertex except the start to the vertex it was
	// discovered from.
	Parent map[string]string
}

// Visited reports whether the walk reached id.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]
	return ok
}
