package gridgraph

// ConnectedComponents finds all contiguous regions of free cells according
// to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order, and the
// cells of each component are sorted row-major as well.
//
// Time:   O(W·H·d), where d = 4, 6 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	gg.mu.RLock()
	defer gg.mu.RUnlock()

	labels, count := gg.label()
	comps := make([][]Cell, count)
	for idx, id := range labels {
		if id < 0 {
			continue
		}
		comps[id] = append(comps[id], gg.Coordinate(idx))
	}

	return comps
}

// ComponentOf returns the component number of c as numbered by
// ConnectedComponents, or -1 if c is blocked or out of bounds.
func (gg *GridGraph) ComponentOf(c Cell) int {
	gg.mu.RLock()
	defer gg.mu.RUnlock()
	if gg.blocked(c.X, c.Y) {
		return -1
	}
	labels, _ := gg.label()

	return labels[gg.index(c.X, c.Y)]
}

// Connected reports whether a path of free cells joins a and b.
// A search between them succeeds exactly when Connected returns true.
func (gg *GridGraph) Connected(a, b Cell) bool {
	gg.mu.RLock()
	defer gg.mu.RUnlock()
	if gg.blocked(a.X, a.Y) || gg.blocked(b.X, b.Y) {
		return false
	}
	labels, _ := gg.label()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// label assigns each free cell its component number by BFS flood fill,
// scanning seeds row-major; blocked cells get -1. The caller holds the lock.
func (gg *GridGraph) label() ([]int, int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	queue := make([]int, 0, total)

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if gg.blocked(x, y) || labels[i0] >= 0 {
				continue
			}
			queue = append(queue[:0], i0)
			labels[i0] = next
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range gg.neighbors(gg.Coordinate(queue[qi])) {
					vi := gg.index(n.X, n.Y)
					if labels[vi] < 0 {
						labels[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			next++
		}
	}

	return labels, next
}
