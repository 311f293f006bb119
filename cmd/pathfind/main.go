// pathfind runs the search demos from a YAML scenario and prints the results.
//
// Usage:
//
//	pathfind square          - Shortest path on the square grid
//	pathfind hex             - Shortest path on the hex grid
//	pathfind puzzle          - Solve the sliding puzzle
//	pathfind mst             - Minimum spanning tree and its levels
//
// Global flags:
//
//	--config <path>  - Scenario file (default: ~/.algodemos/configs or ./configs)
//	--verbose        - Log every expansion at debug level
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brend/algodemos/astar"
	"github.com/brend/algodemos/internal/scenario"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool

	// Set by PersistentPreRunE
	scn    scenario.Config
	logger *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfind",
	Short: "Search demos: grid paths, sliding puzzles and spanning trees",
	Long: `pathfind runs the A* engine on square and hex grids and on the N×N
sliding puzzle, and computes minimum spanning trees.

Scenarios are read from --config, ~/.algodemos/configs/pathfind.yaml,
./configs/pathfind.yaml or the built-in default, in that order.

Examples:
  pathfind square --start 0,0 --goal 5,5
  pathfind hex --heuristic hex
  pathfind puzzle --scramble 40 --seed 3
  pathfind mst --method prim --root A`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr(), flagVerbose)

		cfg, err := scenario.Load(flagConfig)
		if err != nil {
			return err
		}
		scn = cfg
		logger.Debug("scenario loaded", "config", flagConfig, "max_expansions", scn.Search.MaxExpansions)

		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to scenario file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log search progress")

	// Add subcommands
	rootCmd.AddCommand(squareCmd)
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(puzzleCmd)
	rootCmd.AddCommand(mstCmd)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathfind",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}

	return l
}

// searchOptions builds the engine options shared by every search command.
func searchOptions(ctx context.Context) []astar.Option {
	return []astar.Option{
		astar.WithContext(ctx),
		astar.WithMaxExpansions(scn.Search.MaxExpansions),
		astar.WithOnExpand(func(key string, g float64) error {
			logger.Debug("expand", "state", key, "g", g)
			return nil
		}),
	}
}
