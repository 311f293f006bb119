// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() sorts by edge insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
package core

import "slices"

// Neighbors returns all edges incident to id.
//
// Directed edges are included only when e.From == id. Undirected edges
// appear once; use Edge.Other(id) to obtain the opposite endpoint.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d), d = number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	for _, eid := range g.adjacencyList[id] {
		e := g.edges[eid]
		if e == nil || (e.Directed && e.From != id) {
			continue
		}
		out = append(out, e)
	}
	slices.SortFunc(out, byInsertion)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.Other(id)
	}
	slices.Sort(ids)

	return slices.Compact(ids), nil
}
