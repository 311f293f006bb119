package puzzle

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Board is one arrangement of a sliding puzzle. The zero Board is not
// usable; create boards with New.
type Board[P cmp.Ordered] struct {
	t     *table[P]
	cells string // cells[i] is the rank of the stone at index i
	blank int
	last  Move
}

// New builds an n×n board. pieces lists the n*n-1 pieces in row-major
// order, skipping the blank, which sits at index blank.
func New[P cmp.Ordered](n int, pieces []P, blank int) (Board[P], error) {
	if n < MinSize || n > MaxSize {
		return Board[P]{}, fmt.Errorf("%w: %d", ErrBoardSize, n)
	}
	if len(pieces) != n*n-1 {
		return Board[P]{}, fmt.Errorf("%w: got %d for n=%d", ErrPieceCount, len(pieces), n)
	}
	if blank < 0 || blank >= n*n {
		return Board[P]{}, fmt.Errorf("%w: %d", ErrBlankIndex, blank)
	}

	sorted := slices.Clone(pieces)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return Board[P]{}, fmt.Errorf("%w: %v", ErrDuplicatePiece, sorted[i])
		}
	}
	t := &table[P]{n: n, pieces: sorted}

	cells := make([]byte, 0, n*n)
	for _, p := range pieces {
		if len(cells) == blank {
			cells = append(cells, t.blankRank())
		}
		r, _ := slices.BinarySearch(sorted, p)
		cells = append(cells, byte(r))
	}
	if len(cells) == blank {
		cells = append(cells, t.blankRank())
	}

	return Board[P]{t: t, cells: string(cells), blank: blank}, nil
}

// Size returns n.
func (b Board[P]) Size() int { return b.t.n }

// Blank returns the row-major index of the blank.
func (b Board[P]) Blank() int { return b.blank }

// Last returns the move that produced b, or None.
func (b Board[P]) Last() Move { return b.last }

// Pieces returns the pieces in row-major order without the blank, so that
// New(b.Size(), b.Pieces(), b.Blank()) rebuilds b.
func (b Board[P]) Pieces() []P {
	out := make([]P, 0, len(b.cells)-1)
	for i := 0; i < len(b.cells); i++ {
		if i != b.blank {
			out = append(out, b.t.pieces[b.cells[i]])
		}
	}

	return out
}

// At returns the piece at row-major index i; ok is false for the blank.
func (b Board[P]) At(i int) (p P, ok bool) {
	if i == b.blank {
		return p, false
	}

	return b.t.pieces[b.cells[i]], true
}

// CanMove reports whether the blank can travel in direction m.
func (b Board[P]) CanMove(m Move) bool {
	n := b.t.n
	switch m {
	case Up:
		return b.blank >= n
	case Down:
		return b.blank+n < n*n
	case Left:
		return b.blank%n != 0
	case Right:
		return (b.blank+1)%n != 0
	default:
		return false
	}
}

// Move returns the board after the blank travels in direction m.
func (b Board[P]) Move(m Move) (Board[P], error) {
	if !b.CanMove(m) {
		return Board[P]{}, fmt.Errorf("%w: %s from index %d", ErrIllegalMove, m, b.blank)
	}

	return b.slide(m), nil
}

// slide swaps the blank with its neighbour in direction m; m must be legal.
func (b Board[P]) slide(m Move) Board[P] {
	to := b.blank + b.offset(m)
	cells := []byte(b.cells)
	cells[b.blank], cells[to] = cells[to], cells[b.blank]

	return Board[P]{t: b.t, cells: string(cells), blank: to, last: m}
}

func (b Board[P]) offset(m Move) int {
	switch m {
	case Up:
		return -b.t.n
	case Down:
		return b.t.n
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

// Solved returns the solved form of b's piece set.
func (b Board[P]) Solved() Board[P] {
	cells := make([]byte, len(b.cells))
	for i := range cells {
		cells[i] = byte(i)
	}

	return Board[P]{t: b.t, cells: string(cells), blank: len(cells) - 1}
}

// IsSolved reports whether b is in solved form.
func (b Board[P]) IsSolved() bool {
	for i := 0; i < len(b.cells); i++ {
		if int(b.cells[i]) != i {
			return false
		}
	}

	return true
}

// Equal reports whether b and o hold the same pieces in the same
// arrangement. Boards from separate New calls compare by their pieces.
func (b Board[P]) Equal(o Board[P]) bool {
	if b.cells != o.cells {
		return false
	}
	if b.t == o.t {
		return true
	}

	return b.t != nil && o.t != nil && slices.Equal(b.t.pieces, o.t.pieces)
}

// Solvable reports whether the solved form is reachable from b, using the
// inversion parity of the pieces (and, for even n, the blank's row).
func (b Board[P]) Solvable() bool {
	inv := 0
	for i := 0; i < len(b.cells); i++ {
		if i == b.blank {
			continue
		}
		for j := i + 1; j < len(b.cells); j++ {
			if j != b.blank && b.cells[j] < b.cells[i] {
				inv++
			}
		}
	}
	n := b.t.n
	if n%2 == 1 {
		return inv%2 == 0
	}

	return (inv+b.blank/n)%2 == 1
}

// String renders the board as n lines of right-aligned pieces, with "_"
// for the blank.
func (b Board[P]) String() string {
	labels := make([]string, len(b.cells))
	width := 1
	for i := range labels {
		if p, ok := b.At(i); ok {
			labels[i] = fmt.Sprint(p)
		} else {
			labels[i] = "_"
		}
		width = max(width, len(labels[i]))
	}

	var sb strings.Builder
	n := b.t.n
	for i, l := range labels {
		if i%n != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.Repeat(" ", width-len(l)))
		sb.WriteString(l)
		if i%n == n-1 && i != len(labels)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
