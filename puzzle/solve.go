package puzzle

import (
	"cmp"
	"math/rand"

	"github.com/brend/algodemos/astar"
)

// Key returns the arrangement as a string of piece ranks.
func (b Board[P]) Key() string { return b.cells }

// Successors returns the boards one blank move away, in the order Up, Down,
// Left, Right, leaving out the move that would undo Last.
func (b Board[P]) Successors() []Board[P] {
	out := make([]Board[P], 0, 4)
	undo := b.last.Reverse()
	for _, m := range moveOrder {
		if m == undo || !b.CanMove(m) {
			continue
		}
		out = append(out, b.slide(m))
	}

	return out
}

// Cost is 1 for every move.
func (b Board[P]) Cost(Board[P]) float64 { return 1 }

// Heuristic returns the sum over all pieces of the Manhattan distance
// between the piece's cell and its cell in the solved form.
func (b Board[P]) Heuristic() float64 {
	n := b.t.n
	d := 0
	for i := 0; i < len(b.cells); i++ {
		if i == b.blank {
			continue
		}
		j := int(b.cells[i])
		d += abs(i/n-j/n) + abs(i%n-j%n)
	}

	return float64(d)
}

// Solve searches for a shortest move sequence from b to its solved form.
// The move that produced b is ignored, so the first step may undo it.
// Unsolvable boards return an empty path without searching.
func Solve[P cmp.Ordered](b Board[P], opts ...astar.Option) (*astar.Result[Board[P]], error) {
	b.last = None
	if !b.Solvable() {
		return &astar.Result[Board[P]]{Path: []Board[P]{}}, nil
	}

	return astar.Search(b, b.Solved(), opts...)
}

// Moves returns the blank moves that turn path[0] into path[len(path)-1].
func Moves[P cmp.Ordered](path []Board[P]) []Move {
	if len(path) < 2 {
		return []Move{}
	}
	out := make([]Move, len(path)-1)
	for i, s := range path[1:] {
		out[i] = s.last
	}

	return out
}

// Scramble applies steps random legal moves to b, never undoing the move
// just made. The result has Last() == None.
func Scramble[P cmp.Ordered](b Board[P], steps int, rng *rand.Rand) Board[P] {
	last := None
	for i := 0; i < steps; i++ {
		var legal [4]Move
		k := 0
		for _, m := range moveOrder {
			if m != last.Reverse() && b.CanMove(m) {
				legal[k] = m
				k++
			}
		}
		last = legal[rng.Intn(k)]
		b = b.slide(last)
	}
	b.last = None

	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
