package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridmdp/gridworld"
	"github.com/katalvlaran/gridmdp/mdp"
)

var (
	// ErrNilGrid indicates a nil *gridworld.Grid.
	ErrNilGrid = errors.New("report: grid is nil")
	// ErrTableLength indicates a value or policy table not sized to the state count.
	ErrTableLength = errors.New("report: table length does not match state count")
)

// ObstacleLabel marks obstacles in policy grids.
const ObstacleLabel = "X"

// ValueGrid lays values out as rows×cols; obstacles hold NaN.
func ValueGrid(g *gridworld.Grid, values []float64) ([][]float64, error) {
	if err := checkTable(g, len(values)); err != nil {
		return nil, err
	}
	rows, cols := g.Dims()
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = math.NaN()
			if s, ok := g.Index(gridworld.Coord{Row: r, Col: c}); ok {
				out[r][c] = values[s]
			}
		}
	}
	return out, nil
}

// PolicyGrid lays action labels out as rows×cols; obstacles hold ObstacleLabel.
func PolicyGrid(g *gridworld.Grid, policy []mdp.Action) ([][]string, error) {
	if err := checkTable(g, len(policy)); err != nil {
		return nil, err
	}
	rows, cols := g.Dims()
	out := make([][]string, rows)
	for r := range out {
		out[r] = make([]string, cols)
		for c := range out[r] {
			out[r][c] = ObstacleLabel
			if s, ok := g.Index(gridworld.Coord{Row: r, Col: c}); ok {
				out[r][c] = policy[s].String()
			}
		}
	}
	return out, nil
}

func checkTable(g *gridworld.Grid, n int) error {
	if g == nil {
		return ErrNilGrid
	}
	if n != g.NumStates() {
		return fmt.Errorf("%w: got %d, want %d", ErrTableLength, n, g.NumStates())
	}
	return nil
}
