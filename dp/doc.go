// Package dp solves grid-world MDPs by dynamic programming: value iteration,
// policy evaluation and policy iteration over an *mdp.Model.
//
// Overview:
//
//   - ValueIteration repeats Bellman-optimality sweeps
//     V'(s) = max_a Σ p·(r + γ·V(next)) until the largest per-sweep change
//     drops below Theta, then derives the greedy policy.
//   - PolicyEvaluation computes V for a fixed policy with the same sweep rule.
//   - PolicyIteration seeds every state with Right and alternates evaluation
//     with greedy improvement until no action changes.
//   - Solve dispatches on Mode; there is no automatic selection.
//
// Sweep discipline:
//
//   - Synchronous (Jacobi) updates: a sweep reads only the previous table.
//     Two buffers are swapped per sweep, so no allocation happens in the loop.
//   - delta = max_s |V'(s) − V(s)| (gonum floats.Distance with the L∞ norm).
//   - Stop when delta < Theta, or after MaxIters sweeps. Reported iteration
//     counts are zero-based indices of the last sweep or round executed, so
//     they never exceed MaxIters−1.
//
// Tie-breaking:
//
//	Actions are scanned in mdp.Actions order {Up, Right, Down, Left}; a later
//	action replaces the incumbent only when its value is strictly greater.
//
// Goal states self-loop with reward 0, so their value stays exactly 0.0 from
// the all-zero start for any γ.
//
// Options:
//
//   - WithGamma(γ):        discount factor in (0,1]. Default 0.6.
//   - WithTheta(θ):        convergence threshold > 0. Default 1e-4.
//   - WithMaxIters(n):     sweep / round cap > 0. Default 10000.
//   - WithSweepHook(fn):   observe (sweep, delta) after every sweep.
//
// CheckOptions validates a set of options up front, without a model.
//
// Errors (sentinel):
//
//   - ErrNilModel, ErrBadGamma, ErrBadTheta, ErrBadMaxIters: invalid inputs.
//   - ErrInvalidMode:  Solve/ParseMode with a mode other than value or policy.
//   - ErrPolicyLength, ErrValuesLength: tables not sized to the state count.
//
// Thread safety:
//
//	Solvers keep all mutable state local to the call and only read the
//	model, so concurrent solves on one *mdp.Model are safe.
package dp
