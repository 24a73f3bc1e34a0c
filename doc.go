// Package gridmdp solves small grid-world Markov decision processes by
// dynamic programming: value iteration, policy evaluation and policy
// iteration, with deterministic or stochastic movement.
//
// 🚀 What is in the box?
//
//	• Grid model: labelled cells (free, obstacle, start, goal) indexed into a
//	  dense row-major state space, plus BFS reachability
//	• Transition model: per (state, action) outcome lists under a pluggable
//	  noise strategy, with an absorbing goal
//	• Solvers: synchronous value iteration, policy evaluation and policy
//	  iteration with deterministic tie-breaking and convergence hooks
//	• Path extraction: follow a policy from the start with cycle detection
//	• Reports: text, coloured overlay, CSV, Parquet and HTML charts
//	• Experiments: YAML-driven gamma × mode × noise sweeps and a concurrent
//	  timing harness
//
// Packages, leaves first:
//
//	gridworld/   grid parsing, state indexing, reachability
//	mdp/         actions, rewards, noise strategies, transition model
//	dp/          value iteration, policy evaluation, policy iteration
//	walk/        policy path extraction
//	report/      text, overlay, CSV, Parquet, charts
//	experiment/  config, sweeps, repeated-trial statistics
//	cmd/gridmdp  command-line front end
//
// Quick ASCII example (the reference grid, optimal deterministic path):
//
//	S * * X _
//	_ X * * *
//	_ _ X _ *
//	X _ _ _ G
//	_ _ X _ _
//
// Entering the goal pays +10, bumping a wall or obstacle costs -5 and leaves
// the agent in place, every other step costs -1.
//
//	go install github.com/katalvlaran/gridmdp/cmd/gridmdp@latest
package gridmdp
