package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/brend/algodemos/astar"
	"github.com/brend/algodemos/puzzle"
)

var (
	flagScramble int
	flagSeed     int64
)

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Solve the sliding puzzle",
	Long: `Builds the scenario's N×N board, optionally scrambles it with a seeded
random walk, and prints the shortest sequence of blank moves that solves it.

Examples:
  pathfind puzzle
  pathfind puzzle --scramble 25 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPuzzle,
}

func init() {
	puzzleCmd.Flags().IntVar(&flagScramble, "scramble", -1, "Random moves applied before solving (-1 = from scenario)")
	puzzleCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Scramble seed (0 = from scenario)")
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	ps := scn.Puzzle
	if flagScramble >= 0 {
		ps.Scramble = flagScramble
	}
	if flagSeed != 0 {
		ps.Seed = flagSeed
	}

	board, err := puzzle.New(ps.Size, ps.Pieces, ps.BlankIndex())
	if err != nil {
		return err
	}
	if ps.Scramble > 0 {
		board = puzzle.Scramble(board, ps.Scramble, rand.New(rand.NewSource(ps.Seed)))
		logger.Debug("scrambled", "steps", ps.Scramble, "seed", ps.Seed)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, board)
	if !board.Solvable() {
		fmt.Fprintln(out, "unsolvable")
		return nil
	}

	logger.Info("solving", "size", board.Size())
	res, err := puzzle.Solve(board, searchOptions(cmd.Context())...)
	switch {
	case errors.Is(err, astar.ErrExpansionLimit):
		logger.Warn("expansion limit reached", "limit", scn.Search.MaxExpansions)
	case err != nil:
		return err
	}

	if res.Found() {
		fmt.Fprintf(out, "moves (%d): %v\n", res.Moves(), puzzle.Moves(res.Path))
	} else {
		fmt.Fprintln(out, "no solution")
	}
	fmt.Fprintf(out, "expanded: %d generated: %d\n", res.Expanded, res.Generated)

	return nil
}
