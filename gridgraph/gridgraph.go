package gridgraph

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/brend/algodemos/core"
)

var (
	square4Offsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	square8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	hexEvenOffsets = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {-1, -1}, {1, -1}}
	hexOddOffsets  = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {-1, 1}, {1, 1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed values[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrUnknownConnectivity for an unsupported opts.Conn.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	offsets, err := offsetsFor(opts.Conn)
	if err != nil {
		return nil, err
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// From2D is shorthand for NewGridGraph(values, GridOptions{Conn: conn}).
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Conn: conn})
}

// NewEmpty builds an obstacle-free w×h grid.
func NewEmpty(w, h int, opts GridOptions) (*GridGraph, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, w, h)
	}
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
	}

	return NewGridGraph(values, opts)
}

// offsetsFor returns the [even, odd] column offset tables for conn.
func offsetsFor(conn Connectivity) ([2][][2]int, error) {
	switch conn {
	case Conn4:
		return [2][][2]int{square4Offsets, square4Offsets}, nil
	case Conn8:
		return [2][][2]int{square8Offsets, square8Offsets}, nil
	case ConnHex:
		return [2][][2]int{hexEvenOffsets, hexOddOffsets}, nil
	default:
		return [2][][2]int{}, fmt.Errorf("%w: %d", ErrUnknownConnectivity, int(conn))
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the neighbour offsets used for cells in column x.
// Only hex grids depend on the column parity.
func (gg *GridGraph) NeighborOffsets(x int) [][2]int {
	return gg.neighborOffsets[x&1]
}

// Blocked reports whether c is an obstacle. Out-of-bounds cells count as
// blocked.
func (gg *GridGraph) Blocked(c Cell) bool {
	gg.mu.RLock()
	defer gg.mu.RUnlock()

	return gg.blocked(c.X, c.Y)
}

// blocked is Blocked without locking.
func (gg *GridGraph) blocked(x, y int) bool {
	return !gg.InBounds(x, y) || gg.cells[y][x] != 0
}

// SetBlocked marks c as obstacle (true) or free (false). It waits for any
// search currently reading the grid.
func (gg *GridGraph) SetBlocked(c Cell, blocked bool) error {
	if !gg.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	gg.mu.Lock()
	defer gg.mu.Unlock()
	if blocked {
		gg.cells[c.Y][c.X] = 1
	} else {
		gg.cells[c.Y][c.X] = 0
	}

	return nil
}

// Toggle flips the obstacle flag of c and returns the new state.
func (gg *GridGraph) Toggle(c Cell) (bool, error) {
	if !gg.InBounds(c.X, c.Y) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	gg.mu.Lock()
	defer gg.mu.Unlock()
	if gg.cells[c.Y][c.X] != 0 {
		gg.cells[c.Y][c.X] = 0
		return false, nil
	}
	gg.cells[c.Y][c.X] = 1

	return true, nil
}

// Clear removes every obstacle.
func (gg *GridGraph) Clear() {
	gg.mu.Lock()
	defer gg.mu.Unlock()
	for y := range gg.cells {
		for x := range gg.cells[y] {
			gg.cells[y][x] = 0
		}
	}
}

// Neighbors returns the free, in-bounds neighbours of c in the fixed offset
// order of the topology.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	gg.mu.RLock()
	defer gg.mu.RUnlock()

	return gg.neighbors(c)
}

// snapshot copies the grid so a search can read it without holding the
// lock. The caller holds at least the read lock.
func (gg *GridGraph) snapshot() *GridGraph {
	cells := make([][]int, gg.Height)
	for y := range cells {
		cells[y] = slices.Clone(gg.cells[y])
	}

	return &GridGraph{
		Width:           gg.Width,
		Height:          gg.Height,
		Conn:            gg.Conn,
		cells:           cells,
		neighborOffsets: gg.neighborOffsets,
	}
}

// neighbors is Neighbors without locking.
func (gg *GridGraph) neighbors(c Cell) []Cell {
	offsets := gg.NeighborOffsets(c.X)
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if gg.blocked(nx, ny) {
			continue
		}
		out = append(out, Cell{X: nx, Y: ny})
	}

	return out
}

// vertexID formats the unique identifier "x,y" for cell (x,y).
// Used for search keys and core.Graph vertex IDs alike.
func vertexID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// VertexID returns the identifier of c in ToCoreGraph and search keys.
func VertexID(c Cell) string { return vertexID(c.X, c.Y) }

// ToCoreGraph converts the free cells into an unweighted, undirected
// *core.Graph. Each free cell (x,y) becomes a vertex "x,y" with metadata
// {x, y}; edges connect free neighbours according to gg.Conn. Every edge
// stands for one unit move.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	gg.mu.RLock()
	defer gg.mu.RUnlock()

	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.blocked(x, y) {
				continue
			}
			id := vertexID(x, y)
			_ = g.AddVertex(id)
			if v, err := g.Vertex(id); err == nil {
				v.Metadata["x"] = x
				v.Metadata["y"] = y
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.blocked(x, y) {
				continue
			}
			uID := vertexID(x, y)
			for _, n := range gg.neighbors(Cell{X: x, Y: y}) {
				vID := vertexID(n.X, n.Y)
				if g.HasEdge(uID, vID) {
					continue // added from the other endpoint
				}
				_, _ = g.AddEdge(uID, vID, 0)
			}
		}
	}

	return g
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
