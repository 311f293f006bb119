package prim_kruskal

import (
	"fmt"

	"github.com/brend/algodemos/bfs"
	"github.com/brend/algodemos/core"
	"github.com/brend/algodemos/dfs"
)

// Tree is a spanning tree hung from a root vertex.
//
// Parents and levels come from a breadth-first sweep over an unweighted
// copy of the tree edges, so every query is a map lookup.
type Tree struct {
	root   string
	edges  []core.Edge
	weight int64
	shape  *core.Graph
	sweep  *bfs.Result
}

// NewTree computes the minimum spanning tree of graph with Compute and roots
// it at opts.Root. An empty root selects the smallest vertex ID; Prim then
// grows from that vertex as well. A root missing from graph is
// core.ErrVertexNotFound whichever method is selected.
func NewTree(graph *core.Graph, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if graph != nil {
		if o.Root == "" {
			if ids := graph.Vertices(); len(ids) > 0 {
				o.Root = ids[0]
			}
		} else if !graph.HasVertex(o.Root) {
			return nil, fmt.Errorf("%w: root %q", core.ErrVertexNotFound, o.Root)
		}
	}
	edges, _, err := Compute(graph, o)
	if err != nil {
		return nil, err
	}

	return BuildTree(edges, o.Root)
}

// BuildTree roots the given tree edges at root.
// Returns ErrEmptyRoot for an empty root, and ErrDisconnected if the edges
// do not form a single tree containing root.
func BuildTree(edges []core.Edge, root string) (*Tree, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}
	shape := core.NewGraph()
	if err := shape.AddVertex(root); err != nil {
		return nil, err
	}
	var weight int64
	for _, e := range edges {
		if _, err := shape.AddEdge(e.From, e.To, 0); err != nil {
			return nil, fmt.Errorf("%w: edge %s-%s: %v", ErrDisconnected, e.From, e.To, err)
		}
		weight += e.Weight
	}
	sweep, err := bfs.BFS(shape, root)
	if err != nil {
		return nil, err
	}
	// a tree over V vertices has V-1 edges and reaches everything
	if len(sweep.Order) != shape.VertexCount() || len(edges) != shape.VertexCount()-1 {
		return nil, ErrDisconnected
	}

	return &Tree{
		root:   root,
		edges:  append([]core.Edge(nil), edges...),
		weight: weight,
		shape:  shape,
		sweep:  sweep,
	}, nil
}

// Root returns the root label.
func (t *Tree) Root() string { return t.root }

// Parent returns the parent of label; ok is false for the root and for
// labels outside the tree.
func (t *Tree) Parent(label string) (parent string, ok bool) {
	parent, ok = t.sweep.Parent[label]
	return parent, ok
}

// Level returns the depth of label (root = 0), or -1 if absent.
func (t *Tree) Level(label string) int {
	if d, ok := t.sweep.Depth[label]; ok {
		return d
	}

	return -1
}

// Levels returns the vertices grouped by depth, each level sorted.
// The returned slices are copies.
func (t *Tree) Levels() [][]string {
	out := make([][]string, len(t.sweep.Layers))
	for i, layer := range t.sweep.Layers {
		out[i] = append([]string(nil), layer...)
	}

	return out
}

// Children returns the children of label, sorted.
func (t *Tree) Children(label string) []string {
	d := t.Level(label)
	if d < 0 || d+1 >= len(t.sweep.Layers) {
		return nil
	}
	var out []string
	for _, id := range t.sweep.Layers[d+1] {
		if t.sweep.Parent[id] == label {
			out = append(out, id)
		}
	}

	return out
}

// Adjacent reports whether a tree edge joins a and b.
func (t *Tree) Adjacent(a, b string) bool {
	return t.shape.HasEdge(a, b)
}

// Edges returns a copy of the tree edges in the order the algorithm chose
// them.
func (t *Tree) Edges() []core.Edge {
	return append([]core.Edge(nil), t.edges...)
}

// Weight returns the total weight of the tree edges.
func (t *Tree) Weight() int64 { return t.weight }

// Len returns the number of vertices in the tree.
func (t *Tree) Len() int { return len(t.sweep.Order) }

// Walk visits the tree depth-first from the root, children in ID order,
// calling fn with each vertex and its depth. An error from fn stops the
// walk and is returned wrapped.
func (t *Tree) Walk(fn func(id string, depth int) error) error {
	_, err := dfs.DFS(t.shape, t.root, dfs.WithOnVisit(fn))
	return err
}
