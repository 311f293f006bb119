// Package scenario provides YAML-based scenario loading for the pathfind
// command: grid sizes, endpoints and obstacles, the puzzle to solve and the
// graph to span.
package scenario

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("scenario: invalid")

// Config is the root of a scenario file.
type Config struct {
	Search SearchConfig   `yaml:"search"`
	Square GridScenario   `yaml:"square"`
	Hex    GridScenario   `yaml:"hex"`
	Puzzle PuzzleScenario `yaml:"puzzle"`
	MST    MSTScenario    `yaml:"mst"`
}

// SearchConfig holds engine limits shared by all searches.
type SearchConfig struct {
	MaxExpansions int `yaml:"max_expansions"`
}

// Point is a grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParsePoint reads "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: point %q, want x,y", ErrInvalid, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: %v", ErrInvalid, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: %v", ErrInvalid, s, err)
	}

	return Point{X: x, Y: y}, nil
}

// GridScenario describes one grid search.
// The obstacle map is either Rows (one string per row, '#' blocked, any
// other rune free) or Width×Height plus an Obstacles list.
type GridScenario struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Start     Point    `yaml:"start"`
	Goal      Point    `yaml:"goal"`
	Heuristic string   `yaml:"heuristic"`
	Obstacles []Point  `yaml:"obstacles"`
	Rows      []string `yaml:"rows"`
}

// Values builds the [y][x] obstacle matrix: 0 free, 1 blocked.
func (g GridScenario) Values() ([][]int, error) {
	if len(g.Rows) > 0 {
		values := make([][]int, len(g.Rows))
		for y, row := range g.Rows {
			values[y] = make([]int, 0, len(row))
			for _, r := range row {
				v := 0
				if r == '#' {
					v = 1
				}
				values[y] = append(values[y], v)
			}
		}
		return values, nil
	}

	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: grid size %d×%d", ErrInvalid, g.Width, g.Height)
	}
	values := make([][]int, g.Height)
	for y := range values {
		values[y] = make([]int, g.Width)
	}
	for _, p := range g.Obstacles {
		if p.X < 0 || p.Y < 0 || p.X >= g.Width || p.Y >= g.Height {
			return nil, fmt.Errorf("%w: obstacle (%d, %d) outside %d×%d", ErrInvalid, p.X, p.Y, g.Width, g.Height)
		}
		values[p.Y][p.X] = 1
	}

	return values, nil
}

// PuzzleScenario describes a sliding puzzle. Pieces lists the n*n-1 pieces
// in row-major order without the blank; a negative Blank puts the blank in
// the last cell. Scramble > 0 shuffles the board with Seed before solving.
type PuzzleScenario struct {
	Size     int      `yaml:"size"`
	Pieces   []string `yaml:"pieces"`
	Blank    int      `yaml:"blank"`
	Scramble int      `yaml:"scramble"`
	Seed     int64    `yaml:"seed"`
}

// BlankIndex resolves a negative Blank to the last cell.
func (p PuzzleScenario) BlankIndex() int {
	if p.Blank < 0 {
		return p.Size*p.Size - 1
	}

	return p.Blank
}

// MSTScenario describes a weighted undirected graph and how to span it.
type MSTScenario struct {
	Method   string     `yaml:"method"`
	Root     string     `yaml:"root"`
	Vertices []string   `yaml:"vertices"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one weighted edge.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Validate checks fields the algorithm packages cannot check themselves.
func (c Config) Validate() error {
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions %d", ErrInvalid, c.Search.MaxExpansions)
	}
	if c.Puzzle.Scramble < 0 {
		return fmt.Errorf("%w: puzzle.scramble %d", ErrInvalid, c.Puzzle.Scramble)
	}
	for i, e := range c.MST.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: mst.edges[%d] needs from and to", ErrInvalid, i)
		}
	}

	return nil
}
