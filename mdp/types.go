package mdp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the transition model.
var (
	// ErrNilGrid indicates Build was called without a grid.
	ErrNilGrid = errors.New("mdp: grid is nil")

	// ErrNilNoise indicates Build was called without a noise strategy.
	ErrNilNoise = errors.New("mdp: noise strategy is nil")

	// ErrBadSlip indicates a slip probability outside [0,1].
	ErrBadSlip = errors.New("mdp: slip probability must lie in [0,1]")

	// ErrProbabilitySum indicates the outcomes of a (state, action) pair do not sum to 1.
	ErrProbabilitySum = errors.New("mdp: outcome probabilities must sum to 1")

	// ErrUnknownAction indicates an action label outside {U, R, D, L}.
	ErrUnknownAction = errors.New("mdp: unknown action")

	// ErrUnknownNoise indicates a noise name other than deterministic or stochastic.
	ErrUnknownNoise = errors.New("mdp: unknown noise kind")
)

// ProbTolerance is the absolute tolerance used when checking that outcome
// probabilities sum to 1.
const ProbTolerance = 1e-9

// Action is one of the four compass moves.
type Action uint8

const (
	// Up moves one row towards row 0.
	Up Action = iota
	// Right moves one column towards the last column.
	Right
	// Down moves one row towards the last row.
	Down
	// Left moves one column towards column 0.
	Left
)

// NumActions is the size of the action set.
const NumActions = 4

// Actions lists every action in enumeration order. Greedy tie-breaking
// prefers earlier entries.
var Actions = [NumActions]Action{Up, Right, Down, Left}

var actionDeltas = [NumActions][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the (row, col) displacement of a.
func (a Action) Delta() (dr, dc int) {
	d := actionDeltas[a]
	return d[0], d[1]
}

// String returns the single-letter label: U, R, D or L.
func (a Action) String() string {
	switch a {
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction maps a label ("U", "up", "R", ...) to an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(s) {
	case "U", "UP":
		return Up, nil
	case "R", "RIGHT":
		return Right, nil
	case "D", "DOWN":
		return Down, nil
	case "L", "LEFT":
		return Left, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAction, s)
}

// Outcome is one weighted result of taking an action in a state.
type Outcome struct {
	Next   int     // state index after the move
	Prob   float64 // probability of this entry
	Reward float64 // immediate reward
}

// Rewards holds the reward constants of the movement rule.
type Rewards struct {
	Goal     float64 // entering a goal cell
	Blocked  float64 // bumping into a wall or obstacle
	Step     float64 // any other move
	Terminal float64 // any action taken from a goal state
}

// DefaultRewards returns Goal=10, Blocked=-5, Step=-1, Terminal=0.
func DefaultRewards() Rewards {
	return Rewards{Goal: 10, Blocked: -5, Step: -1, Terminal: 0}
}

// Options configures Build.
type Options struct {
	Rewards Rewards
}

// Option is a functional option for Build.
type Option func(*Options)

// DefaultOptions returns Options with DefaultRewards.
func DefaultOptions() Options {
	return Options{Rewards: DefaultRewards()}
}

// WithRewards replaces the reward constants.
func WithRewards(r Rewards) Option {
	return func(o *Options) {
		o.Rewards = r
	}
}
