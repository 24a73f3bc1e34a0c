package gridworld

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for every grid validation failure.
// Match it with errors.Is to catch any malformed-grid condition.
var ErrConfiguration = errors.New("gridworld: invalid grid")

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrConfiguration)
	// ErrNoStart indicates no cell is labeled start.
	ErrNoStart = fmt.Errorf("%w: no start cell", ErrConfiguration)
	// ErrMultipleStarts indicates more than one start cell without WithFirstStart.
	ErrMultipleStarts = fmt.Errorf("%w: more than one start cell", ErrConfiguration)
	// ErrUnknownLabel indicates a cell label outside the supported set.
	ErrUnknownLabel = fmt.Errorf("%w: unknown cell label", ErrConfiguration)
)
