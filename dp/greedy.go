package dp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridmdp/mdp"
)

// QValue returns the expected one-step return of action a in state s under
// the value table v: Σ p·(r + γ·v[next]) over the outcome list. Duplicate
// next states contribute once per entry.
func QValue(m *mdp.Model, v []float64, s int, a mdp.Action, gamma float64) float64 {
	var q float64
	for _, o := range m.Outcomes(s, a) {
		q += o.Prob * (o.Reward + gamma*v[o.Next])
	}
	return q
}

// greedyAction returns the action with the highest QValue in s and that value.
// Ties keep the earliest action in mdp.Actions order: a later action replaces
// the incumbent only if it is strictly better.
func greedyAction(m *mdp.Model, v []float64, s int, gamma float64) (mdp.Action, float64) {
	best, bestQ := mdp.Up, math.Inf(-1)
	for _, a := range mdp.Actions {
		if q := QValue(m, v, s, a, gamma); q > bestQ {
			best, bestQ = a, q
		}
	}
	return best, bestQ
}

// Greedy derives the greedy policy of the value table v, one action per state,
// with the same tie-break as the solvers.
//
// Errors: ErrNilModel, ErrValuesLength.
// Complexity: O(S × A × |outcomes|).
func Greedy(m *mdp.Model, v []float64, gamma float64) ([]mdp.Action, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(v) != m.NumStates() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrValuesLength, len(v), m.NumStates())
	}
	policy := make([]mdp.Action, len(v))
	for s := range policy {
		policy[s], _ = greedyAction(m, v, s, gamma)
	}
	return policy, nil
}
