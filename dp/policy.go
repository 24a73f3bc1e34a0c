package dp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridmdp/mdp"
)

// PolicyEvaluation computes the value table of a fixed policy by repeated
// synchronous sweeps v'[s] = QValue(s, policy[s]), starting from zeros and
// stopping under the same Theta / MaxIters rule as ValueIteration.
// It returns the values and the zero-based index of the last sweep.
//
// Errors: ErrNilModel, ErrBadGamma, ErrBadTheta, ErrBadMaxIters,
// ErrPolicyLength, mdp.ErrUnknownAction.
func PolicyEvaluation(m *mdp.Model, policy []mdp.Action, opts ...Option) ([]float64, int, error) {
	cfg, err := resolve(m, opts)
	if err != nil {
		return nil, 0, err
	}
	if err = checkPolicy(m, policy); err != nil {
		return nil, 0, err
	}
	v, sweep, _ := evaluate(m, policy, cfg)
	return v, sweep, nil
}

// PolicyIteration alternates full policy evaluation with greedy improvement.
//
// Steps:
//  1. Seed every state with mdp.Right.
//  2. Evaluate the current policy from a zero table (PolicyEvaluation rules).
//  3. Recompute the greedy action of every state under those values, with the
//     same tie-break as ValueIteration.
//  4. Stop when no action changed (stable); otherwise repeat, up to MaxIters rounds.
//
// Result.Iterations is the zero-based index of the last improvement round and
// Result.EvalIterations the sweep index of the final evaluation. Converged
// reports policy stability.
//
// Complexity: O(rounds × MaxIters × S × |outcomes|) time, O(S) space.
func PolicyIteration(m *mdp.Model, opts ...Option) (Result, error) {
	cfg, err := resolve(m, opts)
	if err != nil {
		return Result{}, err
	}

	n := m.NumStates()
	policy := make([]mdp.Action, n)
	for s := range policy {
		policy[s] = mdp.Right
	}

	var (
		v          []float64
		evalSweeps int
		round      int
		stable     bool
	)
	for ; round < cfg.MaxIters; round++ {
		v, evalSweeps, _ = evaluate(m, policy, cfg)

		stable = true
		for s := range policy {
			a, _ := greedyAction(m, v, s, cfg.Gamma)
			if a != policy[s] {
				stable = false
				policy[s] = a
			}
		}
		if stable {
			break
		}
	}
	if !stable {
		round = cfg.MaxIters - 1
	}

	return Result{
		Mode:           ModePolicy,
		Values:         v,
		Policy:         policy,
		Iterations:     round,
		EvalIterations: evalSweeps,
		Converged:      stable,
	}, nil
}

// evaluate runs policy evaluation sweeps; cfg and policy are already validated.
func evaluate(m *mdp.Model, policy []mdp.Action, cfg Options) ([]float64, int, bool) {
	n := m.NumStates()
	v := make([]float64, n)
	next := make([]float64, n)
	inf := math.Inf(1)

	sweep := 0
	for ; sweep < cfg.MaxIters; sweep++ {
		for s := 0; s < n; s++ {
			next[s] = QValue(m, v, s, policy[s], cfg.Gamma)
		}
		delta := floats.Distance(next, v, inf)
		v, next = next, v
		if cfg.OnSweep != nil {
			cfg.OnSweep(sweep, delta)
		}
		if delta < cfg.Theta {
			return v, sweep, true
		}
	}
	return v, cfg.MaxIters - 1, false
}

func checkPolicy(m *mdp.Model, policy []mdp.Action) error {
	if len(policy) != m.NumStates() {
		return fmt.Errorf("%w: got %d, want %d", ErrPolicyLength, len(policy), m.NumStates())
	}
	for s, a := range policy {
		if a >= mdp.NumActions {
			return fmt.Errorf("%w %d at state %d", mdp.ErrUnknownAction, uint8(a), s)
		}
	}
	return nil
}
