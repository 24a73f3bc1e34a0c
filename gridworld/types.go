package gridworld

import "fmt"

// Cell is the label of a single grid cell.
type Cell uint8

const (
	// Free is an ordinary walkable cell.
	Free Cell = iota
	// Obstacle blocks movement and never becomes a state.
	Obstacle
	// Start marks the agent's initial cell.
	Start
	// Goal is an absorbing target cell.
	Goal
)

// String returns the canonical single-character label of c.
func (c Cell) String() string {
	switch c {
	case Free:
		return "_"
	case Obstacle:
		return "X"
	case Start:
		return "S"
	case Goal:
		return "G"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// ParseCell maps a text label to a Cell. "#" is reserved for comments and
// yields ErrUnknownLabel.
func ParseCell(label string) (Cell, error) {
	switch label {
	case "_", ".":
		return Free, nil
	case "X", "x":
		return Obstacle, nil
	case "S", "s":
		return Start, nil
	case "G", "g":
		return Goal, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownLabel, label)
}

// Coord addresses a cell by row (top to bottom) and column (left to right).
type Coord struct {
	Row, Col int
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// StartPolicy decides how New treats grids with several start cells.
type StartPolicy int

const (
	// RejectMultipleStarts fails with ErrMultipleStarts.
	RejectMultipleStarts StartPolicy = iota
	// FirstStart keeps the first start cell in row-major order.
	FirstStart
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// StartPolicy chooses how multiple start cells are handled.
	StartPolicy StartPolicy
}

// Option is a functional option for New and the parsers.
type Option func(*Options)

// DefaultOptions returns Options with StartPolicy=RejectMultipleStarts.
func DefaultOptions() Options {
	return Options{StartPolicy: RejectMultipleStarts}
}

// WithFirstStart accepts several start cells and keeps the first one scanned.
func WithFirstStart() Option {
	return func(o *Options) {
		o.StartPolicy = FirstStart
	}
}

// Grid is the indexed state space of a grid world. It is immutable once built.
//
// cells and index are row-major mirrors of the input: cells[r*cols+c] is the
// label, index[r*cols+c] the state index or -1 for obstacles.
type Grid struct {
	rows, cols int
	cells      []Cell
	index      []int
	states     []Coord
	goals      []int
	start      Coord
}
