package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/gridworld"
	"github.com/katalvlaran/gridmdp/mdp"
	"github.com/katalvlaran/gridmdp/walk"
)

// Run bundles one solver invocation with its inputs and extracted path.
type Run struct {
	Grid    *gridworld.Grid
	Noise   mdp.NoiseKind
	Gamma   float64
	Result  dp.Result
	Path    walk.Path
	Runtime time.Duration
	// Deltas is the optional per-sweep convergence trace.
	Deltas []float64
}

// TextOptions configures WriteText, WriteReport and WriteOverlay.
type TextOptions struct {
	Color bool
}

// TextOption is a functional option for the text writers.
type TextOption func(*TextOptions)

// WithColor toggles ANSI colours.
func WithColor(on bool) TextOption {
	return func(o *TextOptions) { o.Color = on }
}

func textOptions(opts []TextOption) TextOptions {
	var o TextOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WriteReport writes every run as a numbered block, separated by blank lines.
func WriteReport(w io.Writer, runs []Run, opts ...TextOption) error {
	for i, run := range runs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "==================== Run %d ====================\n", i+1); err != nil {
			return err
		}
		if err := WriteText(w, run, opts...); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a single run: header, policy grid, value grid and path.
// Values use %5.1f; obstacles print as " NaN".
func WriteText(w io.Writer, run Run, opts ...TextOption) error {
	policy, err := PolicyGrid(run.Grid, run.Result.Policy)
	if err != nil {
		return err
	}
	values, err := ValueGrid(run.Grid, run.Result.Values)
	if err != nil {
		return err
	}
	au := aurora.NewAurora(textOptions(opts).Color)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "MDP: %s Mode: %s iteration, Gamma: %g\n", title(run.Noise.String()), run.Result.Mode, run.Gamma)
	fmt.Fprintf(bw, "Iterations: %d, Eval iterations: %d, Runtime: %.6f s\n",
		run.Result.Iterations, run.Result.EvalIterations, run.Runtime.Seconds())

	fmt.Fprintln(bw, "Policy Grid:")
	for r, row := range policy {
		for c, label := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			pos := gridworld.Coord{Row: r, Col: c}
			switch {
			case label == ObstacleLabel:
				fmt.Fprint(bw, au.Red(label))
			case run.Grid.IsGoal(pos):
				fmt.Fprint(bw, au.Green(label))
			default:
				fmt.Fprint(bw, au.Cyan(label))
			}
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintln(bw, "Value Table Grid:")
	for _, row := range values {
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			if math.IsNaN(v) {
				fmt.Fprint(bw, au.Red(" NaN"))
				continue
			}
			cell := fmt.Sprintf("%5.1f", v)
			if v < 0 {
				fmt.Fprint(bw, au.Yellow(cell))
			} else {
				fmt.Fprint(bw, au.Green(cell))
			}
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintf(bw, "Path: %s\n", run.Path)
	return bw.Flush()
}

// WriteOverlay draws path on g: S start, G goal, * visited, X obstacle, _ free.
func WriteOverlay(w io.Writer, g *gridworld.Grid, path walk.Path, opts ...TextOption) error {
	if g == nil {
		return ErrNilGrid
	}
	rows, cols := g.Dims()
	visited := make([]bool, rows*cols)
	for _, c := range path.Cells {
		if g.InBounds(c) {
			visited[c.Row*cols+c.Col] = true
		}
	}

	au := aurora.NewAurora(textOptions(opts).Color)
	bw := bufio.NewWriter(w)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			pos := gridworld.Coord{Row: r, Col: c}
			switch {
			case g.IsObstacle(pos):
				fmt.Fprint(bw, au.Red("X"))
			case pos == g.Start():
				fmt.Fprint(bw, au.Cyan("S"))
			case g.IsGoal(pos):
				fmt.Fprint(bw, au.Green("G"))
			case visited[r*cols+c]:
				fmt.Fprint(bw, au.Yellow("*"))
			default:
				bw.WriteByte('_')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
