// Package gridworld turns a rectangular grid of cell labels into the indexed
// state space of a grid-world MDP.
//
// What:
//
//   - Grid wraps a rectangular arrangement of Free, Obstacle, Start and Goal cells.
//   - Non-obstacle cells become states, indexed densely in row-major scan order.
//   - Obstacle and goal membership are O(1) lookups in a row-major mirror of the grid.
//   - Reachability and BFS step distances from the start cell (4-connected).
//
// Text form:
//
//	S _ _ X _
//	_ X _ _ _
//	_ _ X _ _
//	X _ _ _ G
//	_ _ X _ _
//
// Rows may be written with whitespace-separated tokens or as compact strings
// ("S__X_"). '_' and '.' are free, 'X' is an obstacle, 'S' the start, 'G'
// a goal. Letters are case-insensitive. '#' is not a cell label: Read treats
// any line starting with it as a comment.
//
// Complexity:
//
//   - New / Parse:        O(W×H) time and memory.
//   - Index, IsObstacle:  O(1).
//   - Distances:          O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - WithFirstStart: accept several 'S' cells and keep the first in row-major order.
//     Without it, more than one start is rejected with ErrMultipleStarts.
//
// Errors (all wrap ErrConfiguration):
//
//   - ErrEmptyGrid:      grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart:        no cell is labeled start.
//   - ErrMultipleStarts: more than one start cell and WithFirstStart not given.
//   - ErrUnknownLabel:   a label outside the supported set.
package gridworld
