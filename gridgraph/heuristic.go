package gridgraph

// Heuristic estimates the number of unit moves from one cell to another.
type Heuristic func(from, to Cell) float64

// Manhattan returns |dx| + |dy|. Admissible for Conn4.
func Manhattan(from, to Cell) float64 {
	return float64(abs(from.X-to.X) + abs(from.Y-to.Y))
}

// Chebyshev returns max(|dx|, |dy|). Admissible for Conn8 and Conn4.
func Chebyshev(from, to Cell) float64 {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	if dx > dy {
		return float64(dx)
	}

	return float64(dy)
}

// HexDistance returns the exact step count between two cells of an
// obstacle-free ConnHex grid. Offset columns are converted to axial
// coordinates: q = x, r = y - floor(x/2).
func HexDistance(from, to Cell) float64 {
	dq := to.X - from.X
	dr := (to.Y - to.X>>1) - (from.Y - from.X>>1)

	return float64((abs(dq) + abs(dr) + abs(dq+dr)) / 2)
}

// DefaultHeuristic returns the heuristic ShortestPath uses for conn:
// Chebyshev for Conn8, Manhattan otherwise.
func DefaultHeuristic(conn Connectivity) Heuristic {
	if conn == Conn8 {
		return Chebyshev
	}

	return Manhattan
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
