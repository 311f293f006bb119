// Package puzzle models the N×N sliding-tile puzzle as a search state for
// package astar.
//
// A Board holds n*n-1 ordered pieces and one blank. Moves are named after
// the direction the blank travels: Up swaps the blank with the piece above
// it. The solved form lists the pieces in ascending order, row by row, with
// the blank in the bottom-right corner.
//
//	b, _ := puzzle.New(3, []int{1, 2, 3, 4, 5, 6, 7, 8}, 7) // blank at index 7
//	res, _ := puzzle.Solve(b)
//	puzzle.Moves(res.Path) // [Right]
//
// Search contract:
//
//   - Key is the arrangement only; the move that produced a board is not
//     part of its identity.
//   - Successors tries Up, Down, Left, Right and skips the move that would
//     undo Last.
//   - Heuristic sums the Manhattan distances of all pieces to their solved
//     positions. The blank is not counted, which keeps the estimate
//     admissible.
//
// Boards are immutable values; every move returns a new Board sharing the
// piece table of the original.
//
// Errors:
//
//   - ErrBoardSize:      n outside 2..15.
//   - ErrPieceCount:     len(pieces) != n*n-1.
//   - ErrBlankIndex:     blank outside 0..n*n-1.
//   - ErrDuplicatePiece: two pieces compare equal.
//   - ErrIllegalMove:    a move would leave the board.
package puzzle
