package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brend/algodemos/core"
	"github.com/brend/algodemos/internal/scenario"
	"github.com/brend/algodemos/prim_kruskal"
)

var (
	flagMethod string
	flagRoot   string
)

var mstCmd = &cobra.Command{
	Use:   "mst",
	Short: "Compute a minimum spanning tree and print its levels",
	Long: `Builds the scenario's weighted graph, spans it with Prim or Kruskal and
prints the tree edges, the total weight, the vertices per depth below
the root and the tree itself, indented by depth.

Examples:
  pathfind mst
  pathfind mst --method prim --root A`,
	Args: cobra.NoArgs,
	RunE: runMST,
}

func init() {
	mstCmd.Flags().StringVar(&flagMethod, "method", "", "prim or kruskal (default from scenario)")
	mstCmd.Flags().StringVar(&flagRoot, "root", "", "Tree root (default from scenario)")
}

// buildGraph turns the scenario into a weighted undirected graph.
func buildGraph(ms scenario.MSTScenario) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range ms.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range ms.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

func runMST(cmd *cobra.Command, args []string) error {
	ms := scn.MST
	if flagMethod != "" {
		ms.Method = flagMethod
	}
	if flagRoot != "" {
		ms.Root = flagRoot
	}

	g, err := buildGraph(ms)
	if err != nil {
		return err
	}
	logger.Info("spanning", "method", ms.Method, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	tree, err := prim_kruskal.NewTree(g,
		prim_kruskal.WithMethod(prim_kruskal.Method(strings.ToLower(ms.Method))),
		prim_kruskal.WithRoot(ms.Root),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range tree.Edges() {
		logger.Debug("tree edge", "from", e.From, "to", e.To, "weight", e.Weight)
		fmt.Fprintf(out, "%s-%s %d\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintf(out, "weight: %d\n", tree.Weight())
	for depth, level := range tree.Levels() {
		fmt.Fprintf(out, "%d: %s\n", depth, strings.Join(level, " "))
	}

	return tree.Walk(func(id string, depth int) error {
		p, ok := tree.Parent(id)
		if !ok {
			fmt.Fprintln(out, id)
			return nil
		}
		e, err := g.GetEdge(id, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s%s (%d)\n", strings.Repeat("  ", depth), id, e.Weight)
		return nil
	})
}
