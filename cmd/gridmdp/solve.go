package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/experiment"
	"github.com/katalvlaran/gridmdp/mdp"
	"github.com/katalvlaran/gridmdp/report"
	"github.com/katalvlaran/gridmdp/walk"
)

func solveCommand(root *rootFlags) *cobra.Command {
	var (
		gridFile   string
		gamma      float64
		theta      float64
		maxIters   int
		mode       string
		noise      string
		intended   float64
		firstStart bool
		color      bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one grid and print the policy, values and path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			solveMode, err := dp.ParseMode(mode)
			if err != nil {
				return err
			}
			kind, err := mdp.ParseNoiseKind(noise)
			if err != nil {
				return err
			}

			cfg := experiment.Default()
			if gridFile != "" {
				cfg.Grid, cfg.GridFile = nil, gridFile
			}
			cfg.Intended = intended
			cfg.FirstStart = firstStart
			m, err := cfg.BuildModel(kind)
			if err != nil {
				return err
			}
			logger.Debug("model built", "states", m.NumStates(), "noise", kind.String())

			var deltas []float64
			start := time.Now()
			res, err := dp.Solve(m, solveMode,
				dp.WithGamma(gamma),
				dp.WithTheta(theta),
				dp.WithMaxIters(maxIters),
				dp.WithSweepHook(func(sweep int, delta float64) {
					deltas = append(deltas, delta)
					logger.Debug("sweep", "sweep", sweep, "delta", delta)
				}),
			)
			if err != nil {
				return err
			}
			runtime := time.Since(start)

			path, err := walk.Extract(m, res.Policy)
			if err != nil {
				return err
			}
			if !res.Converged {
				logger.Warn("iteration cap reached", "max_iters", maxIters)
			}
			if !path.ReachedGoal {
				logger.Warn("greedy path does not reach a goal", "path", path.String())
			}

			run := report.Run{
				Grid:    m.Grid(),
				Noise:   kind,
				Gamma:   gamma,
				Result:  res,
				Path:    path,
				Runtime: runtime,
				Deltas:  deltas,
			}
			out := cmd.OutOrStdout()
			if err := report.WriteText(out, run, report.WithColor(color)); err != nil {
				return err
			}
			return report.WriteOverlay(out, m.Grid(), path, report.WithColor(color))
		},
	}

	f := cmd.Flags()
	f.StringVar(&gridFile, "grid", "", "Grid text file (default: built-in 5×5 grid)")
	f.Float64Var(&gamma, "gamma", dp.DefaultGamma, "Discount factor in (0,1]")
	f.Float64Var(&theta, "theta", dp.DefaultTheta, "Convergence threshold")
	f.IntVar(&maxIters, "max-iters", dp.DefaultMaxIters, "Sweep / round cap")
	f.StringVar(&mode, "mode", dp.ModeValue.String(), "Solve mode: value or policy")
	f.StringVar(&noise, "noise", mdp.KindDeterministic.String(), "Noise: deterministic or stochastic")
	f.Float64Var(&intended, "intended", 0.7, "Stochastic probability of the intended action")
	f.BoolVar(&firstStart, "first-start", false, "Use the first start cell when the grid has several")
	f.BoolVar(&color, "color", false, "Colour the output")
	return cmd
}
