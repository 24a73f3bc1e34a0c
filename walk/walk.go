// Package walk follows a policy through a grid world from the start cell and
// records the visited cells.
//
// The walk uses the model's movement rule, so a policy that points into a
// wall or obstacle keeps the agent in place. It stops when:
//
//   - a goal cell is appended (the goal is the last cell), or
//   - the next cell was already visited (a cycle; the repeated cell is not
//     appended again).
//
// Every cell is visited at most once, so a walk never exceeds NumStates cells
// and always halts, even for under-converged or adversarial policies.
package walk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridmdp/gridworld"
	"github.com/katalvlaran/gridmdp/mdp"
)

// Sentinel errors for Extract.
var (
	// ErrNilModel indicates Extract was called without a model.
	ErrNilModel = errors.New("walk: model is nil")
	// ErrPolicyLength indicates a policy not sized to the state count.
	ErrPolicyLength = errors.New("walk: policy length does not match state count")
	// ErrStartNotState indicates a start coordinate that is an obstacle or off-grid.
	ErrStartNotState = errors.New("walk: start is not a state")
)

// Path is the result of a walk.
type Path struct {
	Cells       []gridworld.Coord // visited cells in order, starting at the start cell
	ReachedGoal bool              // the last cell is a goal
	Cycle       bool              // the walk stopped on a revisited cell
}

// Len returns the number of visited cells.
func (p Path) Len() int {
	return len(p.Cells)
}

// String formats the cells as "(r,c) (r,c) ...".
func (p Path) String() string {
	parts := make([]string, len(p.Cells))
	for i, c := range p.Cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Options configures Extract.
type Options struct {
	start    gridworld.Coord
	hasStart bool
}

// Option is a functional option for Extract.
type Option func(*Options)

// WithStart walks from c instead of the grid's start cell.
func WithStart(c gridworld.Coord) Option {
	return func(o *Options) {
		o.start = c
		o.hasStart = true
	}
}

// Extract follows policy from the start cell until a goal is reached or a
// cell repeats.
//
// Errors: ErrNilModel, ErrPolicyLength, ErrStartNotState, mdp.ErrUnknownAction.
// Complexity: O(S) time, O(S) memory for the visited flags.
func Extract(m *mdp.Model, policy []mdp.Action, opts ...Option) (Path, error) {
	if m == nil {
		return Path{}, ErrNilModel
	}
	g := m.Grid()
	if len(policy) != g.NumStates() {
		return Path{}, fmt.Errorf("%w: got %d, want %d", ErrPolicyLength, len(policy), g.NumStates())
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	pos := g.Start()
	if cfg.hasStart {
		pos = cfg.start
	}
	if _, ok := g.Index(pos); !ok {
		return Path{}, fmt.Errorf("%w: %v", ErrStartNotState, pos)
	}

	var p Path
	visited := make([]bool, g.NumStates())
	for {
		// Successor only returns states, so the lookup cannot fail here.
		s, _ := g.Index(pos)
		if visited[s] {
			p.Cycle = true
			break
		}
		visited[s] = true
		p.Cells = append(p.Cells, pos)
		if g.IsGoal(pos) {
			p.ReachedGoal = true
			break
		}
		a := policy[s]
		if a >= mdp.NumActions {
			return Path{}, fmt.Errorf("%w %d at %v", mdp.ErrUnknownAction, uint8(a), pos)
		}
		pos, _ = m.Successor(pos, a)
	}
	return p, nil
}
