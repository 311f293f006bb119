package scenario

import (
	_ "embed"
)

//go:embed defaults/scenario.yaml
var defaultScenarioYAML []byte

// Default returns the built-in scenario: a 20×20 square grid and a 16×16 hex
// grid with a short wall each, a 3×3 puzzle and the seven-vertex tree
// drawer graph. It mirrors defaults/scenario.yaml.
func Default() Config {
	return Config{
		Square: GridScenario{
			Width: 20, Height: 20,
			Start: Point{0, 0}, Goal: Point{19, 19},
			Heuristic: "manhattan",
			Obstacles: column(10, 0, 14),
		},
		Hex: GridScenario{
			Width: 16, Height: 16,
			Start: Point{0, 0}, Goal: Point{3, 3},
			Heuristic: "hex",
			Obstacles: column(2, 0, 3),
		},
		Puzzle: PuzzleScenario{
			Size:     3,
			Pieces:   []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			Blank:    -1,
			Scramble: 20,
			Seed:     1,
		},
		MST: MSTScenario{
			Method:   "kruskal",
			Root:     "D",
			Vertices: []string{"D", "A", "B", "C", "E", "F", "G"},
			Edges: []EdgeSpec{
				{"A", "B", 7}, {"A", "D", 5}, {"B", "C", 8}, {"B", "D", 9},
				{"B", "E", 7}, {"C", "E", 5}, {"D", "E", 15}, {"D", "F", 6},
				{"E", "F", 8}, {"E", "G", 9}, {"F", "G", 11},
			},
		},
	}
}

// column lists the cells (x, y0)..(x, y1).
func column(x, y0, y1 int) []Point {
	out := make([]Point, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		out = append(out, Point{X: x, Y: y})
	}
	return out
}
