package mdp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridmdp/gridworld"
)

// Model is the transition model of a grid world: for every state and action,
// the list of weighted outcomes. It is pure data and read-only after Build,
// so one Model may be shared by many concurrent solver runs.
type Model struct {
	grid     *gridworld.Grid
	noise    Noise
	rewards  Rewards
	outcomes [][NumActions][]Outcome
}

// Build derives the outcome lists of every (state, action) pair of g under noise.
//
// Goal states self-loop with probability 1 and the Terminal reward for every
// action. Any other state expands each Slip of the intended action through
// Successor; entries that land on the same cell are kept separate.
//
// Errors: ErrNilGrid, ErrNilNoise, ErrBadSlip, ErrProbabilitySum.
// Complexity: O(S × A × |slips|) time and memory.
func Build(g *gridworld.Grid, noise Noise, opts ...Option) (*Model, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if noise == nil {
		return nil, ErrNilNoise
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Model{
		grid:     g,
		noise:    noise,
		rewards:  cfg.Rewards,
		outcomes: make([][NumActions][]Outcome, g.NumStates()),
	}

	for s, pos := range g.States() {
		if g.IsGoalState(s) {
			for _, a := range Actions {
				m.outcomes[s][a] = []Outcome{{Next: s, Prob: 1, Reward: cfg.Rewards.Terminal}}
			}
			continue
		}
		for _, a := range Actions {
			slips := noise.Slips(a)
			list := make([]Outcome, 0, len(slips))
			for _, sl := range slips {
				if sl.Action >= NumActions {
					return nil, fmt.Errorf("%w %d in slips of %v", ErrUnknownAction, uint8(sl.Action), a)
				}
				if sl.Prob < 0 || sl.Prob > 1 || math.IsNaN(sl.Prob) {
					return nil, fmt.Errorf("%w: intended %v, actual %v, p=%g", ErrBadSlip, a, sl.Action, sl.Prob)
				}
				next, reward := m.Successor(pos, sl.Action)
				// Successor never leaves the state space, so the lookup always succeeds.
				ni, _ := g.Index(next)
				list = append(list, Outcome{Next: ni, Prob: sl.Prob, Reward: reward})
			}
			m.outcomes[s][a] = list
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Successor applies the movement rule to pos and a, ignoring goal absorption:
//
//   - off-grid or into an obstacle: stay at pos, Blocked reward;
//   - into a goal cell: move, Goal reward;
//   - otherwise: move, Step reward.
func (m *Model) Successor(pos gridworld.Coord, a Action) (gridworld.Coord, float64) {
	next := pos.Add(a.Delta())
	if !m.grid.InBounds(next) || m.grid.IsObstacle(next) {
		return pos, m.rewards.Blocked
	}
	if m.grid.IsGoal(next) {
		return next, m.rewards.Goal
	}
	return next, m.rewards.Step
}

// Outcomes returns the outcome list of (s, a). The slice is shared with the
// model and must not be modified.
func (m *Model) Outcomes(s int, a Action) []Outcome {
	return m.outcomes[s][a]
}

// Validate checks that every (state, action) outcome list sums to 1 within
// ProbTolerance.
func (m *Model) Validate() error {
	for s := range m.outcomes {
		for _, a := range Actions {
			var sum float64
			for _, o := range m.outcomes[s][a] {
				sum += o.Prob
			}
			if math.Abs(sum-1) > ProbTolerance {
				return fmt.Errorf("%w: state %d %v, action %v sums to %g",
					ErrProbabilitySum, s, m.grid.Coord(s), a, sum)
			}
		}
	}
	return nil
}

// NumStates returns the number of states.
func (m *Model) NumStates() int {
	return len(m.outcomes)
}

// Grid returns the grid the model was built from.
func (m *Model) Grid() *gridworld.Grid {
	return m.grid
}

// Noise returns the noise strategy the model was built with.
func (m *Model) Noise() Noise {
	return m.noise
}

// Rewards returns the reward constants in effect.
func (m *Model) Rewards() Rewards {
	return m.rewards
}
