// Package report renders solver runs for people and for downstream tools.
//
// What:
//
//   - ValueGrid / PolicyGrid lay a per-state table back onto the grid
//     (NaN and "X" at obstacles).
//   - WriteText / WriteReport print the run header, the policy grid, the
//     value grid and the extracted path. WithColor enables ANSI colours.
//   - WriteOverlay draws the path on the grid: S start, G goal, * visited,
//     X obstacle, _ free.
//   - Record is the flat, one-row-per-run form shared by WriteCSV and
//     WriteParquet (zstd, written to a temp file and renamed into place).
//   - WriteCharts renders an HTML page with an iterations bar chart, a
//     convergence line chart and a value heatmap.
//
// Errors:
//
//   - ErrNilGrid:      grid argument is nil.
//   - ErrTableLength:  a value or policy table is not sized to the state count.
//
// Nothing in this package mutates its inputs.
package report
