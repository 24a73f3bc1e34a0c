// Package experiment sweeps solver configurations over one grid and
// collects the runs for reporting.
//
// A Config names the grid (inline rows or a grid file), the discount factors,
// solve modes and noise strategies to cross, and the solver thresholds. It is
// usually loaded from YAML:
//
//	grid:
//	  - "S _ _ X _"
//	  - "_ X _ _ _"
//	  - "_ _ X _ _"
//	  - "X _ _ _ G"
//	  - "_ _ X _ _"
//	gammas: [0.6, 0.1, 0.9]
//	modes: [value, policy]
//	noises: [deterministic, stochastic]
//	theta: 1e-4
//	max_iters: 10000
//	intended: 0.7
//	trials: 5
//	workers: 4
//
// Run solves every noise × gamma × mode combination in that nesting order,
// extracts the greedy path and records a convergence trace. With trials > 1
// each combination is also timed by Measure and the mean runtime is reported.
//
// Measure repeats one solve on a bounded pool of workers and summarises
// iteration counts, runtimes and per-state values (mean and standard
// deviation). Models are read-only, so workers share one *mdp.Model.
//
// Errors: ErrInvalidConfig wraps every validation failure; grid, model and
// solver errors are returned wrapped with the failing combination.
package experiment
