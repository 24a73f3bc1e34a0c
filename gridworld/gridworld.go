package gridworld

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// The input is copied; later mutation of cells does not affect the Grid.
//
// States are numbered in row-major order over non-obstacle cells only.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownLabel, ErrNoStart or
// ErrMultipleStarts (see Options).
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}

	g := &Grid{
		rows:  h,
		cols:  w,
		cells: make([]Cell, h*w),
		index: make([]int, h*w),
	}
	starts := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cell := cells[r][c]
			if cell > Goal {
				return nil, fmt.Errorf("%w %d at (%d,%d)", ErrUnknownLabel, uint8(cell), r, c)
			}
			i := r*w + c
			g.cells[i] = cell
			if cell == Obstacle {
				g.index[i] = -1
				continue
			}
			g.index[i] = len(g.states)
			switch cell {
			case Goal:
				g.goals = append(g.goals, len(g.states))
			case Start:
				if starts == 0 {
					g.start = Coord{Row: r, Col: c}
				}
				starts++
			}
			g.states = append(g.states, Coord{Row: r, Col: c})
		}
	}

	if starts == 0 {
		return nil, ErrNoStart
	}
	if starts > 1 && cfg.StartPolicy != FirstStart {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	return g, nil
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the label of c. Coordinates outside the grid read as Obstacle.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Obstacle
	}
	return g.cells[g.offset(c)]
}

// IsObstacle reports whether c is an in-bounds obstacle cell.
func (g *Grid) IsObstacle(c Coord) bool {
	return g.InBounds(c) && g.cells[g.offset(c)] == Obstacle
}

// IsGoal reports whether c is a goal cell.
func (g *Grid) IsGoal(c Coord) bool {
	return g.InBounds(c) && g.cells[g.offset(c)] == Goal
}

// Index returns the state index of c. ok is false for obstacles and
// coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) Index(c Coord) (idx int, ok bool) {
	if !g.InBounds(c) {
		return -1, false
	}
	idx = g.index[g.offset(c)]
	return idx, idx >= 0
}

// Coord returns the coordinate of state idx. It panics if idx is out of range.
func (g *Grid) Coord(idx int) Coord {
	return g.states[idx]
}

// NumStates returns the number of non-obstacle cells.
func (g *Grid) NumStates() int {
	return len(g.states)
}

// States returns the state coordinates ordered by state index.
func (g *Grid) States() []Coord {
	out := make([]Coord, len(g.states))
	copy(out, g.states)
	return out
}

// Start returns the start coordinate.
func (g *Grid) Start() Coord {
	return g.start
}

// Goals returns the goal coordinates in state-index order.
func (g *Grid) Goals() []Coord {
	out := make([]Coord, len(g.goals))
	for i, s := range g.goals {
		out[i] = g.states[s]
	}
	return out
}

// IsGoalState reports whether state idx is a goal.
func (g *Grid) IsGoalState(idx int) bool {
	return g.cells[g.offset(g.states[idx])] == Goal
}

// String renders the grid in its whitespace-separated text form.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.cells[r*g.cols+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// offset maps an in-bounds coordinate to its row-major position.
func (g *Grid) offset(c Coord) int {
	return c.Row*g.cols + c.Col
}
