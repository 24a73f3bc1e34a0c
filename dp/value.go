package dp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridmdp/mdp"
)

// ValueIteration computes the optimal value table of m by repeated
// Bellman-optimality sweeps and returns it with its greedy policy.
//
// Each sweep is synchronous (Jacobi): every new value is computed from the
// previous sweep's table, and the two tables are swapped afterwards.
// The sweep delta is the L∞ distance between the tables. Iteration stops once
// delta < Theta or after MaxIters sweeps; Result.Iterations is the zero-based
// index of the last sweep.
//
// Errors: ErrNilModel, ErrBadGamma, ErrBadTheta, ErrBadMaxIters.
//
// Complexity:
//
//   - Time:  O(MaxIters × S × A × |outcomes|)
//   - Space: O(S) for two value buffers.
func ValueIteration(m *mdp.Model, opts ...Option) (Result, error) {
	cfg, err := resolve(m, opts)
	if err != nil {
		return Result{}, err
	}

	n := m.NumStates()
	v := make([]float64, n)
	next := make([]float64, n)
	inf := math.Inf(1)

	sweep, converged := 0, false
	for ; sweep < cfg.MaxIters; sweep++ {
		for s := 0; s < n; s++ {
			_, next[s] = greedyAction(m, v, s, cfg.Gamma)
		}
		delta := floats.Distance(next, v, inf)
		v, next = next, v
		if cfg.OnSweep != nil {
			cfg.OnSweep(sweep, delta)
		}
		if delta < cfg.Theta {
			converged = true
			break
		}
	}
	if !converged {
		sweep = cfg.MaxIters - 1
	}

	policy, _ := Greedy(m, v, cfg.Gamma)

	return Result{
		Mode:       ModeValue,
		Values:     v,
		Policy:     policy,
		Iterations: sweep,
		Converged:  converged,
	}, nil
}
