package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/mdp"
	"github.com/katalvlaran/gridmdp/report"
	"github.com/katalvlaran/gridmdp/walk"
)

// Run solves every noise × gamma × mode combination of cfg in that nesting
// order and returns one report.Run per combination. The context is checked
// between solves. A nil logger discards output.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) ([]report.Run, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := cfg.LoadGrid()
	if err != nil {
		return nil, err
	}
	if !g.GoalReachable() {
		logger.Warn("no goal is reachable from the start", "start", g.Start().String())
	}
	modes, _ := cfg.modes()
	kinds, _ := cfg.noiseKinds()

	runs := make([]report.Run, 0, len(kinds)*len(cfg.Gammas)*len(modes))
	for _, kind := range kinds {
		noise, err := mdp.NoiseFor(kind, cfg.Intended)
		if err != nil {
			return nil, err
		}
		m, err := mdp.Build(g, noise)
		if err != nil {
			return nil, fmt.Errorf("build %s model: %w", kind, err)
		}
		for _, gamma := range cfg.Gammas {
			for _, mode := range modes {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				run, err := solveOne(ctx, cfg, logger, m, kind, gamma, mode)
				if err != nil {
					return nil, fmt.Errorf("%s/%s/%g: %w", kind, mode, gamma, err)
				}
				logger.Info("solved",
					slog.String("noise", kind.String()),
					slog.Float64("gamma", gamma),
					slog.String("mode", mode.String()),
					slog.Int("iterations", run.Result.Iterations),
					slog.Int("eval_iterations", run.Result.EvalIterations),
					slog.Bool("converged", run.Result.Converged),
					slog.Duration("runtime", run.Runtime),
					slog.Int("path_len", run.Path.Len()),
				)
				if !run.Result.Converged {
					logger.Warn("iteration cap reached",
						"noise", kind.String(), "gamma", gamma, "mode", mode.String(), "max_iters", cfg.MaxIters)
				}
				if !run.Path.ReachedGoal {
					logger.Warn("greedy path does not reach a goal",
						"noise", kind.String(), "gamma", gamma, "mode", mode.String(), "path", run.Path.String())
				}
				runs = append(runs, run)
			}
		}
	}
	return runs, nil
}

// Records flattens runs for CSV and Parquet export.
func Records(runs []report.Run) []report.Record {
	out := make([]report.Record, len(runs))
	for i, r := range runs {
		out[i] = report.NewRecord(r)
	}
	return out
}

// Traces returns the convergence trace of every run, labelled like
// report.RecordLabel.
func Traces(runs []report.Run) []report.Trace {
	out := make([]report.Trace, len(runs))
	for i, r := range runs {
		out[i] = report.Trace{Label: report.RecordLabel(report.NewRecord(r)), Deltas: r.Deltas}
	}
	return out
}

func solveOne(ctx context.Context, cfg Config, logger *slog.Logger, m *mdp.Model, kind mdp.NoiseKind, gamma float64, mode dp.Mode) (report.Run, error) {
	opts, err := cfg.solverOptions(gamma)
	if err != nil {
		return report.Run{}, err
	}

	var deltas []float64
	traced := append(opts, dp.WithSweepHook(func(_ int, delta float64) {
		deltas = append(deltas, delta)
	}))
	start := time.Now()
	res, err := dp.Solve(m, mode, traced...)
	if err != nil {
		return report.Run{}, err
	}
	runtime := time.Since(start)

	if cfg.Trials > 1 {
		sum, err := Measure(ctx, m, mode, cfg.Trials, cfg.Workers, opts...)
		if err != nil {
			return report.Run{}, err
		}
		runtime = time.Duration(sum.Runtime.Mean * float64(time.Second))
		logger.Info("measured",
			slog.String("noise", kind.String()),
			slog.Float64("gamma", gamma),
			slog.String("mode", mode.String()),
			slog.Int("trials", sum.Trials),
			slog.Float64("iterations_mean", sum.Iterations.Mean),
			slog.Float64("iterations_stddev", sum.Iterations.StdDev),
			slog.Float64("eval_iterations_mean", sum.EvalIterations.Mean),
			slog.Float64("eval_iterations_stddev", sum.EvalIterations.StdDev),
			slog.Float64("runtime_mean_sec", sum.Runtime.Mean),
			slog.Float64("runtime_stddev_sec", sum.Runtime.StdDev),
			slog.Float64("value_stddev_max", sum.MaxValueStdDev()),
		)
	}

	path, err := walk.Extract(m, res.Policy)
	if err != nil {
		return report.Run{}, err
	}
	return report.Run{
		Grid:    m.Grid(),
		Noise:   kind,
		Gamma:   gamma,
		Result:  res,
		Path:    path,
		Runtime: runtime,
		Deltas:  deltas,
	}, nil
}
