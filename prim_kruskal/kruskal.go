package prim_kruskal

import (
	"sort"

	"github.com/brend/algodemos/core"
)

// Kruskal computes the MST of an undirected, weighted graph.
//
// Error conditions:
//   - ErrInvalidGraph: graph is nil, directed or unweighted.
//   - ErrDisconnected: |V| == 0 or the graph is not connected.
//
// Edges appear in ascending weight order; equal weights keep the insertion
// order of core.Graph.Edges.
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	vertices, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}

	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	forest := newDisjointSet(vertices)
	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		if len(mst) == len(vertices)-1 {
			break
		}
		if e.From == e.To || !forest.union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		total += e.Weight
	}
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find forest with path halving and union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the representative of u's set.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; it reports false if they were already
// one set.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
