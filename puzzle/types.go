package puzzle

import (
	"cmp"
	"errors"
)

// Sentinel errors for board construction and moves.
var (
	ErrBoardSize      = errors.New("puzzle: board size must be between 2 and 15")
	ErrPieceCount     = errors.New("puzzle: need exactly n*n-1 pieces")
	ErrBlankIndex     = errors.New("puzzle: blank index out of range")
	ErrDuplicatePiece = errors.New("puzzle: duplicate piece")
	ErrIllegalMove    = errors.New("puzzle: move leaves the board")
)

const (
	// MinSize and MaxSize bound the board dimension. Each cell is stored as
	// one byte, so n*n must not exceed 256.
	MinSize = 2
	MaxSize = 15
)

// Move is a direction of travel of the blank.
type Move int

const (
	// None marks a board that was not produced by a move.
	None Move = iota
	Up
	Down
	Left
	Right
)

// moveOrder is the order Successors tries moves in.
var moveOrder = [4]Move{Up, Down, Left, Right}

// String returns the move name.
func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "None"
	}
}

// Reverse returns the move that undoes m.
func (m Move) Reverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// ParseMove maps "up", "U", "Down", … to a Move; unknown input is None.
func ParseMove(s string) Move {
	switch s {
	case "up", "Up", "U", "u":
		return Up
	case "down", "Down", "D", "d":
		return Down
	case "left", "Left", "L", "l":
		return Left
	case "right", "Right", "R", "r":
		return Right
	default:
		return None
	}
}

// table is the piece set shared by every board of one puzzle.
// pieces is sorted ascending; a piece's rank is its index in pieces and the
// blank has rank n*n-1.
type table[P cmp.Ordered] struct {
	n      int
	pieces []P
}

func (t *table[P]) blankRank() byte { return byte(t.n*t.n - 1) }
