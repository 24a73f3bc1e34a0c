package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridmdp/gridworld"
)

// Trace is a labelled convergence trace: delta after each sweep.
type Trace struct {
	Label  string
	Deltas []float64
}

// Charts holds the data for WriteCharts. Empty parts are skipped.
type Charts struct {
	Title   string
	Records []Record
	Traces  []Trace
	// Grid and Values feed the heatmap; both must be set.
	Grid   *gridworld.Grid
	Values []float64
}

// WriteCharts renders an HTML page with up to three charts:
// iterations per configuration (bar), delta per sweep (line) and
// the value table laid out on the grid (heatmap, obstacles omitted).
func WriteCharts(w io.Writer, c Charts) error {
	page := components.NewPage()
	if c.Title != "" {
		page.PageTitle = c.Title
	}
	if len(c.Records) > 0 {
		page.AddCharts(iterationsBar(c.Records))
	}
	if len(c.Traces) > 0 {
		page.AddCharts(convergenceLine(c.Traces))
	}
	if c.Grid != nil && c.Values != nil {
		hm, err := valueHeatMap(c.Grid, c.Values)
		if err != nil {
			return err
		}
		page.AddCharts(hm)
	}
	return page.Render(w)
}

// RecordLabel names a record on chart axes, e.g. "deterministic/value/0.6".
func RecordLabel(r Record) string {
	return fmt.Sprintf("%s/%s/%g", r.MDP, r.Mode, r.Gamma)
}

func iterationsBar(records []Record) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Iterations per configuration"}),
	)

	labels := make([]string, len(records))
	iters := make([]opts.BarData, len(records))
	evals := make([]opts.BarData, len(records))
	for i, r := range records {
		labels[i] = RecordLabel(r)
		iters[i] = opts.BarData{Value: r.Iterations}
		evals[i] = opts.BarData{Value: r.EvalIters}
	}
	bar.SetXAxis(labels).
		AddSeries("iterations", iters).
		AddSeries("eval_iters", evals)
	return bar
}

func convergenceLine(traces []Trace) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Convergence (max |ΔV| per sweep)"}),
	)

	longest := 0
	for _, t := range traces {
		longest = max(longest, len(t.Deltas))
	}
	sweeps := make([]string, longest)
	for i := range sweeps {
		sweeps[i] = strconv.Itoa(i)
	}

	line.SetXAxis(sweeps)
	for _, t := range traces {
		items := make([]opts.LineData, 0, len(t.Deltas))
		for _, d := range t.Deltas {
			items = append(items, opts.LineData{Value: d})
		}
		line.AddSeries(t.Label, items)
	}
	return line
}

func valueHeatMap(g *gridworld.Grid, values []float64) (*charts.HeatMap, error) {
	grid, err := ValueGrid(g, values)
	if err != nil {
		return nil, err
	}
	rows, cols := g.Dims()

	xs := make([]string, cols)
	for c := range xs {
		xs[c] = strconv.Itoa(c)
	}
	ys := make([]string, rows)
	for r := range ys {
		ys[r] = strconv.Itoa(r)
	}

	var lo, hi float64
	if len(values) > 0 {
		lo, hi = floats.Min(values), floats.Max(values)
	}

	// NaN cannot be encoded as JSON, so obstacles are left out.
	items := make([]opts.HeatMapData, 0, len(values))
	for r, row := range grid {
		for c, v := range row {
			if math.IsNaN(v) {
				continue
			}
			items = append(items, opts.HeatMapData{Value: [3]interface{}{c, r, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "State values"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: float32(lo),
			Max: float32(hi),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#d94e5d", "#eac736", "#50a3ba"},
			},
		}),
	)
	hm.SetXAxis(xs).AddSeries("value", items)
	return hm, nil
}
