package astar_test

import (
	"strconv"
	"testing"

	"github.com/brend/algodemos/astar"
)

// lattice is an open w×w 4-connected grid with a Manhattan heuristic.
type lattice struct {
	x, y, w int
	gx, gy  int
}

func (l lattice) Key() string { return strconv.Itoa(l.y*l.w + l.x) }

func (l lattice) Successors() []lattice {
	out := make([]lattice, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nx, ny := l.x+d[0], l.y+d[1]
		if nx < 0 || ny < 0 || nx >= l.w || ny >= l.w {
			continue
		}
		out = append(out, lattice{x: nx, y: ny, w: l.w, gx: l.gx, gy: l.gy})
	}

	return out
}

func (l lattice) Cost(lattice) float64 { return 1 }

func (l lattice) Heuristic() float64 {
	dx, dy := l.gx-l.x, l.gy-l.y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return float64(dx + dy)
}

// BenchmarkSearch_Lattice measures corner-to-corner search on a 200×200 lattice.
func BenchmarkSearch_Lattice(b *testing.B) {
	const w = 200
	from := lattice{x: 0, y: 0, w: w, gx: w - 1, gy: w - 1}
	to := lattice{x: w - 1, y: w - 1, w: w, gx: w - 1, gy: w - 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(from, to)
	}
}
