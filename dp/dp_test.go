// Package dp_test contains unit tests for the dynamic-programming solvers.
// They cover option validation, exact results on tiny grids, the absorbing
// goal, agreement between value and policy iteration, and the convergence
// counters.
package dp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/gridworld"
	"github.com/katalvlaran/gridmdp/mdp"
)

var reference = []string{
	"S _ _ X _",
	"_ X _ _ _",
	"_ _ X _ _",
	"X _ _ _ G",
	"_ _ X _ _",
}

func build(t testing.TB, rows []string, noise mdp.Noise) *mdp.Model {
	t.Helper()
	g, err := gridworld.Parse(rows)
	require.NoError(t, err)
	m, err := mdp.Build(g, noise)
	require.NoError(t, err)
	return m
}

func stateAt(t testing.TB, m *mdp.Model, r, c int) int {
	t.Helper()
	idx, ok := m.Grid().Index(gridworld.Coord{Row: r, Col: c})
	require.True(t, ok)
	return idx
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestOptions_Validation(t *testing.T) {
	m := build(t, reference, mdp.Deterministic())
	cases := []struct {
		name string
		opt  dp.Option
		err  error
	}{
		{"GammaZero", dp.WithGamma(0), dp.ErrBadGamma},
		{"GammaAboveOne", dp.WithGamma(1.01), dp.ErrBadGamma},
		{"GammaNaN", dp.WithGamma(math.NaN()), dp.ErrBadGamma},
		{"ThetaZero", dp.WithTheta(0), dp.ErrBadTheta},
		{"ThetaNegative", dp.WithTheta(-1e-3), dp.ErrBadTheta},
		{"MaxItersZero", dp.WithMaxIters(0), dp.ErrBadMaxIters},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dp.ValueIteration(m, tc.opt)
			assert.ErrorIs(t, err, tc.err)
			_, err = dp.PolicyIteration(m, tc.opt)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, dp.CheckOptions(tc.opt), tc.err)
		})
	}

	_, err := dp.ValueIteration(nil)
	assert.ErrorIs(t, err, dp.ErrNilModel)
	assert.NoError(t, dp.CheckOptions())
	assert.NoError(t, dp.DefaultOptions().Validate())
}

func TestSolve_InvalidMode(t *testing.T) {
	m := build(t, reference, mdp.Deterministic())
	_, err := dp.Solve(m, dp.Mode(7))
	assert.ErrorIs(t, err, dp.ErrInvalidMode)

	_, err = dp.ParseMode("qlearning")
	assert.ErrorIs(t, err, dp.ErrInvalidMode)

	mode, err := dp.ParseMode("Policy")
	require.NoError(t, err)
	assert.Equal(t, dp.ModePolicy, mode)
}

func TestPolicyEvaluation_Validation(t *testing.T) {
	m := build(t, reference, mdp.Deterministic())

	_, _, err := dp.PolicyEvaluation(m, []mdp.Action{mdp.Up})
	assert.ErrorIs(t, err, dp.ErrPolicyLength)

	bad := make([]mdp.Action, m.NumStates())
	bad[3] = mdp.Action(9)
	_, _, err = dp.PolicyEvaluation(m, bad)
	assert.ErrorIs(t, err, mdp.ErrUnknownAction)

	_, err = dp.Greedy(m, []float64{0}, 0.9)
	assert.ErrorIs(t, err, dp.ErrValuesLength)
}

// ------------------------------------------------------------------------
// 2. Exact results on a 1×3 corridor
// ------------------------------------------------------------------------

// TestValueIteration_Corridor works through "S _ G" by hand:
// sweep 0 → [-1, 10, 0], sweep 1 → [8, 10, 0] (delta 9), sweep 2 → delta 0.
func TestValueIteration_Corridor(t *testing.T) {
	m := build(t, []string{"S _ G"}, mdp.Deterministic())

	res, err := dp.ValueIteration(m, dp.WithGamma(0.9))
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 10, 0}, res.Values)
	assert.Equal(t, []mdp.Action{mdp.Right, mdp.Right, mdp.Up}, res.Policy)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, 0, res.EvalIterations)
	assert.True(t, res.Converged)
	assert.Equal(t, dp.ModeValue, res.Mode)
}

// TestPolicyIteration_Corridor: the Right seed is already optimal except at
// the goal, where every action ties at 0 and the tie-break flips it to Up.
// That change costs one extra round.
func TestPolicyIteration_Corridor(t *testing.T) {
	m := build(t, []string{"S _ G"}, mdp.Deterministic())

	res, err := dp.PolicyIteration(m, dp.WithGamma(0.9))
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 10, 0}, res.Values)
	assert.Equal(t, []mdp.Action{mdp.Right, mdp.Right, mdp.Up}, res.Policy)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 2, res.EvalIterations)
	assert.True(t, res.Converged)
}

// TestValueIteration_Synchronous checks that one sweep reads only the previous
// table: with the goal on the left, the start cannot see the goal's
// neighbour's new value within the same sweep.
func TestValueIteration_Synchronous(t *testing.T) {
	m := build(t, []string{"G _ S"}, mdp.Deterministic())

	res, err := dp.ValueIteration(m, dp.WithGamma(0.9), dp.WithMaxIters(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, -1}, res.Values)
	assert.Equal(t, 0, res.Iterations)
	assert.False(t, res.Converged)
}

// TestPolicyEvaluation_FixedPolicy evaluates "always Left" on the corridor:
// the start bumps the wall forever, V = -5 / (1-γ).
func TestPolicyEvaluation_FixedPolicy(t *testing.T) {
	m := build(t, []string{"S _ G"}, mdp.Deterministic())
	policy := []mdp.Action{mdp.Left, mdp.Right, mdp.Up}

	v, sweeps, err := dp.PolicyEvaluation(m, policy, dp.WithGamma(0.5), dp.WithTheta(1e-10))
	require.NoError(t, err)
	assert.InDelta(t, -10.0, v[0], 1e-8)
	assert.Equal(t, 10.0, v[1])
	assert.Equal(t, 0.0, v[2])
	assert.Less(t, sweeps, dp.DefaultMaxIters-1)
}

// ------------------------------------------------------------------------
// 3. Properties on the reference grid
// ------------------------------------------------------------------------

func TestGoalValueIsExactlyZero(t *testing.T) {
	for _, noise := range []mdp.Noise{mdp.Deterministic(), mdp.DefaultStochastic()} {
		m := build(t, reference, noise)
		goal := stateAt(t, m, 3, 4)
		for _, gamma := range []float64{0.1, 0.6, 0.9, 1} {
			vi, err := dp.ValueIteration(m, dp.WithGamma(gamma))
			require.NoError(t, err)
			assert.Equal(t, 0.0, vi.Values[goal], "value iteration, gamma=%g", gamma)

			policy := make([]mdp.Action, m.NumStates())
			v, _, err := dp.PolicyEvaluation(m, policy, dp.WithGamma(gamma), dp.WithMaxIters(200))
			require.NoError(t, err)
			assert.Equal(t, 0.0, v[goal], "policy evaluation, gamma=%g", gamma)
		}
	}
}

func TestReferenceScenario_Deterministic(t *testing.T) {
	m := build(t, reference, mdp.Deterministic())

	res, err := dp.ValueIteration(m, dp.WithGamma(0.9), dp.WithTheta(1e-4))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Less(t, res.Iterations, 100)
	assert.Equal(t, 0.0, res.Values[stateAt(t, m, 3, 4)])

	// Seven steps from start: six -1 moves then +10 on entering the goal.
	want := -(1-math.Pow(0.9, 6))/(1-0.9) + math.Pow(0.9, 6)*10
	assert.InDelta(t, want, res.Values[stateAt(t, m, 0, 0)], 1e-9)
}

func TestValueAndPolicyIterationAgree(t *testing.T) {
	for _, noise := range []mdp.Noise{mdp.Deterministic(), mdp.DefaultStochastic()} {
		m := build(t, reference, noise)
		for _, gamma := range []float64{0.1, 0.6, 0.9} {
			opts := []dp.Option{dp.WithGamma(gamma), dp.WithTheta(1e-8), dp.WithMaxIters(100000)}
			vi, err := dp.ValueIteration(m, opts...)
			require.NoError(t, err)
			pi, err := dp.PolicyIteration(m, opts...)
			require.NoError(t, err)
			require.True(t, vi.Converged)
			require.True(t, pi.Converged)

			require.Len(t, pi.Values, len(vi.Values))
			for s := range vi.Values {
				assert.InDelta(t, vi.Values[s], pi.Values[s], 1e-4, "state %d gamma %g", s, gamma)
				if vi.Policy[s] != pi.Policy[s] {
					qa := dp.QValue(m, vi.Values, s, vi.Policy[s], gamma)
					qb := dp.QValue(m, vi.Values, s, pi.Policy[s], gamma)
					assert.InDelta(t, qa, qb, 1e-4, "policies differ at state %d without a tie", s)
				}
			}
		}
	}
}

func TestIterationCap(t *testing.T) {
	m := build(t, reference, mdp.DefaultStochastic())

	res, err := dp.ValueIteration(m, dp.WithGamma(0.9), dp.WithTheta(1e-12), dp.WithMaxIters(3))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Iterations)
	assert.False(t, res.Converged)

	res, err = dp.ValueIteration(m, dp.WithGamma(0.9), dp.WithMaxIters(10000))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Less(t, res.Iterations, 10000-1)

	res, err = dp.PolicyIteration(m, dp.WithGamma(0.9), dp.WithMaxIters(1))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, 0, res.EvalIterations)
}

// TestDeltaContracts checks that value-iteration deltas never grow when γ < 1
// (the Bellman operator is a γ-contraction in the sup norm).
func TestDeltaContracts(t *testing.T) {
	for _, noise := range []mdp.Noise{mdp.Deterministic(), mdp.DefaultStochastic()} {
		m := build(t, reference, noise)
		var deltas []float64
		_, err := dp.ValueIteration(m, dp.WithGamma(0.9), dp.WithTheta(1e-10),
			dp.WithSweepHook(func(sweep int, delta float64) {
				assert.Equal(t, len(deltas), sweep)
				deltas = append(deltas, delta)
			}))
		require.NoError(t, err)
		require.NotEmpty(t, deltas)
		for i := 1; i < len(deltas); i++ {
			assert.LessOrEqual(t, deltas[i], deltas[i-1]+1e-12, "sweep %d", i)
		}
	}
}

// TestStartValueGrowsWithGamma: in the deterministic world a larger discount
// weighs the distant +10 more heavily. The stochastic world has no such
// guarantee (slip penalties are discounted less too), so it is not checked.
func TestStartValueGrowsWithGamma(t *testing.T) {
	m := build(t, reference, mdp.Deterministic())
	start := stateAt(t, m, 0, 0)

	low, err := dp.Solve(m, dp.ModeValue, dp.WithGamma(0.1), dp.WithTheta(1e-8))
	require.NoError(t, err)
	high, err := dp.Solve(m, dp.ModeValue, dp.WithGamma(0.9), dp.WithTheta(1e-8))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, high.Values[start], low.Values[start])
}

// TestReferenceGolden pins iteration counts and policies on the reference
// grid with θ = 1e-4. Policies are listed by state index.
func TestReferenceGolden(t *testing.T) {
	cases := []struct {
		name            string
		noise           mdp.Noise
		gamma           float64
		viIters         int
		piIters, piEval int
		policy          string
	}{
		{"Det/0.1", mdp.Deterministic(), 0.1, 5, 3, 5, "RRDDDRRDRDRDRRRURUUU"},
		{"Det/0.9", mdp.Deterministic(), 0.9, 7, 3, 7, "RRDDDRRDRDRDRRRURUUU"},
		{"Stoch/0.6", mdp.DefaultStochastic(), 0.6, 15, 2, 15, "RRDDDRDDRDDDRRRURUUU"},
		{"Stoch/0.9", mdp.DefaultStochastic(), 0.9, 29, 3, 29, "RRDDDRDDRDDDRRRURUUU"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := build(t, reference, tc.noise)

			vi, err := dp.Solve(m, dp.ModeValue, dp.WithGamma(tc.gamma))
			require.NoError(t, err)
			assert.Equal(t, tc.viIters, vi.Iterations)
			assert.Equal(t, tc.policy, policyString(vi.Policy))

			pi, err := dp.Solve(m, dp.ModePolicy, dp.WithGamma(tc.gamma))
			require.NoError(t, err)
			assert.Equal(t, tc.piIters, pi.Iterations)
			assert.Equal(t, tc.piEval, pi.EvalIterations)
			assert.Equal(t, tc.policy, policyString(pi.Policy))
		})
	}
}

func policyString(p []mdp.Action) string {
	b := make([]byte, len(p))
	for i, a := range p {
		b[i] = a.String()[0]
	}
	return string(b)
}
