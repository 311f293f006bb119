package prim_kruskal

import (
	"container/heap"

	"github.com/brend/algodemos/core"
)

// Prim computes the MST of an undirected, weighted graph by growing
// outwards from root.
//
// Error conditions:
//   - ErrInvalidGraph:        graph is nil, directed or unweighted.
//   - ErrEmptyRoot:           root is "".
//   - core.ErrVertexNotFound: root does not exist.
//   - ErrDisconnected:        |V| == 0 or some vertex is unreachable.
//
// Edges appear in the order they join the tree.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	vertices, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	g := &grower{
		graph:   graph,
		inTree:  make(map[string]bool, len(vertices)),
		mst:     make([]core.Edge, 0, len(vertices)-1),
		pending: make(crossing, 0, len(vertices)),
	}
	if err = g.add(root); err != nil {
		return nil, 0, err
	}
	for g.pending.Len() > 0 && len(g.mst) < len(vertices)-1 {
		c := heap.Pop(&g.pending).(candidate)
		if g.inTree[c.to] {
			continue // both ends already in the tree
		}
		g.mst = append(g.mst, *c.edge)
		g.total += c.edge.Weight
		if err = g.add(c.to); err != nil {
			return nil, 0, err
		}
	}
	if len(g.mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return g.mst, g.total, nil
}

// grower holds the state of one Prim run.
type grower struct {
	graph   *core.Graph
	inTree  map[string]bool
	mst     []core.Edge
	total   int64
	pending crossing
	seq     int
}

// add moves id into the tree and queues every edge leaving it.
func (g *grower) add(id string) error {
	g.inTree[id] = true
	edges, err := g.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		to := e.Other(id)
		if g.inTree[to] {
			continue
		}
		g.seq++
		heap.Push(&g.pending, candidate{edge: e, to: to, seq: g.seq})
	}

	return nil
}

// candidate is an edge leaving the tree towards to.
type candidate struct {
	edge *core.Edge
	to   string
	seq  int
}

// crossing is a min-heap of candidates by (weight, seq).
type crossing []candidate

func (c crossing) Len() int { return len(c) }

func (c crossing) Less(i, j int) bool {
	if c[i].edge.Weight != c[j].edge.Weight {
		return c[i].edge.Weight < c[j].edge.Weight
	}
	return c[i].seq < c[j].seq
}

func (c crossing) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c *crossing) Push(x interface{}) { *c = append(*c, x.(candidate)) }

func (c *crossing) Pop() interface{} {
	old := *c
	n := len(old)
	it := old[n-1]
	*c = old[:n-1]

	return it
}
