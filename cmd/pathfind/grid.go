package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brend/algodemos/astar"
	"github.com/brend/algodemos/gridgraph"
	"github.com/brend/algodemos/internal/scenario"
)

var (
	flagStart     string
	flagGoal      string
	flagHeuristic string
	flagDiagonal  bool
)

var squareCmd = &cobra.Command{
	Use:   "square",
	Short: "Find a shortest path on the square grid",
	Long: `Searches the square grid of the scenario with 4-way moves, or 8-way
moves with --diagonal.

Examples:
  pathfind square
  pathfind square --diagonal --heuristic chebyshev
  pathfind square --start 2,3 --goal 9,0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn := gridgraph.Conn4
		if flagDiagonal {
			conn = gridgraph.Conn8
		}
		return runGrid(cmd, scn.Square, conn)
	},
}

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Find a shortest path on the hex grid",
	Long: `Searches the hex grid of the scenario. Cells are offset columns:
odd columns sit half a cell lower than even ones.

Examples:
  pathfind hex
  pathfind hex --heuristic manhattan --goal 7,2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGrid(cmd, scn.Hex, gridgraph.ConnHex)
	},
}

func init() {
	for _, c := range []*cobra.Command{squareCmd, hexCmd} {
		c.Flags().StringVar(&flagStart, "start", "", "Start cell as x,y (default from scenario)")
		c.Flags().StringVar(&flagGoal, "goal", "", "Goal cell as x,y (default from scenario)")
		c.Flags().StringVar(&flagHeuristic, "heuristic", "", "manhattan, chebyshev or hex (default from scenario)")
	}
	squareCmd.Flags().BoolVar(&flagDiagonal, "diagonal", false, "Allow diagonal moves")
}

// heuristicFor maps a scenario name to a grid heuristic. An empty name
// selects the topology default.
func heuristicFor(name string) (gridgraph.Heuristic, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "manhattan":
		return gridgraph.Manhattan, nil
	case "chebyshev":
		return gridgraph.Chebyshev, nil
	case "hex":
		return gridgraph.HexDistance, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

func runGrid(cmd *cobra.Command, gs scenario.GridScenario, conn gridgraph.Connectivity) error {
	if flagStart != "" {
		p, err := scenario.ParsePoint(flagStart)
		if err != nil {
			return err
		}
		gs.Start = p
	}
	if flagGoal != "" {
		p, err := scenario.ParsePoint(flagGoal)
		if err != nil {
			return err
		}
		gs.Goal = p
	}
	if flagHeuristic != "" {
		gs.Heuristic = flagHeuristic
	}

	values, err := gs.Values()
	if err != nil {
		return err
	}
	gg, err := gridgraph.From2D(values, conn)
	if err != nil {
		return err
	}
	h, err := heuristicFor(gs.Heuristic)
	if err != nil {
		return err
	}
	if conn != gridgraph.Conn4 && strings.EqualFold(gs.Heuristic, "manhattan") {
		logger.Warn("heuristic overestimates on this grid, path may not be shortest",
			"heuristic", gs.Heuristic, "grid", conn)
	}

	from := gridgraph.Cell{X: gs.Start.X, Y: gs.Start.Y}
	to := gridgraph.Cell{X: gs.Goal.X, Y: gs.Goal.Y}
	logger.Info("searching", "grid", conn, "size", fmt.Sprintf("%dx%d", gg.Width, gg.Height), "from", from, "to", to)

	res, err := gg.Search(from, to,
		gridgraph.WithHeuristic(h),
		gridgraph.WithSearchOptions(searchOptions(cmd.Context())...),
	)
	switch {
	case errors.Is(err, astar.ErrExpansionLimit):
		logger.Warn("expansion limit reached", "limit", scn.Search.MaxExpansions)
	case err != nil:
		return err
	}

	out := cmd.OutOrStdout()
	path := gridgraph.Cells(res.Path)
	renderGrid(out, gg, path, from, to)
	if res.Found() {
		fmt.Fprintf(out, "moves: %d cost: %g\n", res.Moves(), res.Cost)
		fmt.Fprintf(out, "path: %v\n", path)
	} else {
		fmt.Fprintln(out, "no path")
	}
	fmt.Fprintf(out, "expanded: %d generated: %d\n", res.Expanded, res.Generated)

	return nil
}

// renderGrid draws the obstacle map: '#' blocked, 'S' start, 'G' goal,
// '*' path, '.' free.
func renderGrid(w io.Writer, gg *gridgraph.GridGraph, path []gridgraph.Cell, from, to gridgraph.Cell) {
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			switch {
			case c == from:
				b.WriteByte('S')
			case c == to:
				b.WriteByte('G')
			case gg.Blocked(c):
				b.WriteByte('#')
			case onPath[c]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}
