// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.
package core

import (
	"fmt"
	"maps"
	"slices"
)

// AddVertex registers id; adding a known id again is a no-op, so edge
// insertion can call it for both endpoints. The new vertex starts with an
// empty Metadata map and an empty adjacency row.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if g.vertices[id] != nil {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: map[string]interface{}{}}

	// lock order: muVert, then muEdgeAdj
	g.muEdgeAdj.Lock()
	g.adjacencyList[id] = map[string]string{}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id is in the graph. The empty id never is.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return id != "" && g.vertices[id] != nil
}

// Vertex returns the live record for id; writes to its Metadata are
// visible to every later reader.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if v := g.vertices[id]; v != nil {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
}

// Vertices returns every vertex ID in ascending order.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return slices.Sorted(maps.Keys(g.vertices))
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
