package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/brend/algodemos/core"
)

// Sentinel errors for MST computation.
var (
	// ErrInvalidGraph indicates that MST algorithms require an undirected,
	// weighted graph.
	ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

	// ErrEmptyRoot indicates that no start vertex was specified for Prim.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

	// ErrDisconnected indicates that no spanning tree covers all vertices.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method names an MST algorithm.
type Method string

const (
	// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
	MethodPrim Method = "prim"

	// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
	MethodKruskal Method = "kruskal"
)

// MSTOptions configures which MST algorithm to run and where the tree is
// rooted.
//
//	Method: MethodPrim or MethodKruskal.
//	Root:   start vertex for Prim and root of a Tree; "" picks the
//	        smallest vertex ID in NewTree.
type MSTOptions struct {
	Method Method
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the Prim start vertex and the Tree root.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions{Method: MethodKruskal, Root: ""}.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts.Method.
//
// Returns the MST edges, their total weight, or ErrUnknownMethod for an
// unsupported method along with the errors of Prim and Kruskal.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate rejects graphs no spanning tree can be computed for and returns
// the sorted vertex IDs.
func validate(graph *core.Graph) ([]string, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return nil, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}

	return vertices, nil
}
