package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// Record is one run flattened for tabular export.
type Record struct {
	Gamma      float64 `parquet:"gamma"`
	MDP        string  `parquet:"mdp,dict"`
	Mode       string  `parquet:"mode,dict"`
	Iterations int64   `parquet:"iterations"`
	EvalIters  int64   `parquet:"eval_iters"`
	RuntimeSec float64 `parquet:"runtime_sec"`
	// Path is the visited cells as "(r,c) (r,c) ...".
	Path string `parquet:"path"`
	// Policy is one action label per state in index order, e.g. "RRDD".
	Policy string `parquet:"policy"`
	// ValueTable is the per-state values in index order, space-separated.
	ValueTable string `parquet:"value_table"`
}

// CSVHeader is the fixed column order written by WriteCSV.
var CSVHeader = []string{
	"gamma", "mdp", "mode", "iterations", "eval_iters",
	"runtime_sec", "path", "policy", "value_table",
}

// NewRecord flattens run.
func NewRecord(run Run) Record {
	var policy strings.Builder
	for _, a := range run.Result.Policy {
		policy.WriteString(a.String())
	}
	values := make([]string, len(run.Result.Values))
	for i, v := range run.Result.Values {
		values[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return Record{
		Gamma:      run.Gamma,
		MDP:        run.Noise.String(),
		Mode:       run.Result.Mode.String(),
		Iterations: int64(run.Result.Iterations),
		EvalIters:  int64(run.Result.EvalIterations),
		RuntimeSec: run.Runtime.Seconds(),
		Path:       run.Path.String(),
		Policy:     policy.String(),
		ValueTable: strings.Join(values, " "),
	}
}

func (r Record) fields() []string {
	return []string{
		strconv.FormatFloat(r.Gamma, 'g', -1, 64),
		r.MDP,
		r.Mode,
		strconv.FormatInt(r.Iterations, 10),
		strconv.FormatInt(r.EvalIters, 10),
		strconv.FormatFloat(r.RuntimeSec, 'f', 6, 64),
		r.Path,
		r.Policy,
		r.ValueTable,
	}
}

// WriteCSV writes CSVHeader followed by one row per record.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
