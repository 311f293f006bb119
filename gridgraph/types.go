// Package gridgraph defines core types and options for obstacle grids.
package gridgraph

import (
	"strconv"
	"sync"
)

// Connectivity selects the neighbour topology of a grid.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, E, N, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
	// ConnHex uses offset-column hexagonal connectivity (6 neighbours).
	ConnHex
)

// String returns the topology name.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "square"
	case Conn8:
		return "square8"
	case ConnHex:
		return "hex"
	default:
		return "Connectivity(" + strconv.Itoa(int(c)) + ")"
	}
}

// Cell is a grid coordinate. Cells are plain values, identified by X and Y.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x, y)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.X) + ", " + strconv.Itoa(c.Y) + ")"
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses the neighbour topology.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is a bounded obstacle map.
// Width and Height define dimensions; cells[y][x] != 0 marks an obstacle.
// neighborOffsets is precomputed per topology; hex grids keep one offset
// table for even and one for odd columns.
type GridGraph struct {
	mu sync.RWMutex

	Width, Height int
	Conn          Connectivity

	cells           [][]int
	neighborOffsets [2][][2]int // [x&1] → offsets
}
