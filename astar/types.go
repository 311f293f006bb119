// Package astar defines the State contract, configuration options and
// sentinel errors for the best-first search engine.
package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Search.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions states were expanded
	// without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrNegativeCost is returned when a State reports a negative move cost.
	ErrNegativeCost = errors.New("astar: negative move cost")
)

// State is a node of an implicit search graph.
//
// S is the concrete state type itself, so Successors and Cost stay typed:
//
//	type Cell struct{ ... }
//	func (c Cell) Successors() []Cell
//
// Key must be stable: two independently constructed values describing the
// same logical state return the same key.
type State[S any] interface {
	// Key returns the identity of the state.
	Key() string

	// Successors returns the directly reachable states. Illegal moves must
	// be filtered here; the engine trusts this list.
	Successors() []S

	// Cost returns the non-negative cost of moving to the successor to.
	Cost(to S) float64

	// Heuristic estimates the remaining cost from this state to the goal.
	Heuristic() float64
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// Search runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows abandoning a long search. Checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search after that many expansions.
	MaxExpansions int

	// OnEnqueue is called whenever a state is pushed onto the frontier.
	OnEnqueue func(key string, g, f float64)

	// OnExpand is called when a state is closed and about to be expanded.
	// Returning an error aborts the search.
	OnExpand func(key string, g float64) error

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnEnqueue:     func(string, float64, float64) {},
		OnExpand:      func(string, float64) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback run on every frontier insertion.
func WithOnEnqueue(fn func(key string, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run on every expansion; returning an
// error from it stops the search.
func WithOnExpand(fn func(key string, g float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search.
//
//   - Path:      start..goal inclusive; empty when no path exists.
//   - Cost:      total cost of Path (0 when empty or start==goal).
//   - Expanded:  number of states closed and expanded.
//   - Generated: number of successors produced by expansions.
type Result[S any] struct {
	Path      []S
	Cost      float64
	Expanded  int
	Generated int
}

// Found reports whether a path was found.
func (r *Result[S]) Found() bool { return len(r.Path) > 0 }

// Moves returns the number of moves on the path (len(Path)-1), or 0.
func (r *Result[S]) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
