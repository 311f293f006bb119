package puzzle_test

import (
	"math/rand"
	"testing"

	"github.com/brend/algodemos/puzzle"
)

// BenchmarkSolve_3x3 solves a fixed 30-move scramble of the 8-puzzle.
func BenchmarkSolve_3x3(b *testing.B) {
	start, _ := puzzle.New(3, seq(8), 8)
	board := puzzle.Scramble(start, 30, rand.New(rand.NewSource(3)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = puzzle.Solve(board)
	}
}

// BenchmarkSuccessors measures move generation on a 15-puzzle.
func BenchmarkSuccessors(b *testing.B) {
	board, _ := puzzle.New(4, seq(15), 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Successors()
	}
}
