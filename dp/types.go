package dp

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridmdp/mdp"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilModel indicates a nil *mdp.Model was passed to a solver.
	ErrNilModel = errors.New("dp: model is nil")

	// ErrBadGamma indicates a discount factor outside (0,1].
	ErrBadGamma = errors.New("dp: gamma must lie in (0,1]")

	// ErrBadTheta indicates a non-positive convergence threshold.
	ErrBadTheta = errors.New("dp: theta must be positive")

	// ErrBadMaxIters indicates a non-positive iteration cap.
	ErrBadMaxIters = errors.New("dp: max iterations must be positive")

	// ErrInvalidMode indicates a solve mode other than value or policy.
	ErrInvalidMode = errors.New("dp: mode must be 'value' or 'policy'")

	// ErrPolicyLength indicates a policy whose length differs from the state count.
	ErrPolicyLength = errors.New("dp: policy length does not match state count")

	// ErrValuesLength indicates a value table whose length differs from the state count.
	ErrValuesLength = errors.New("dp: value table length does not match state count")
)

// Mode selects the dynamic-programming algorithm used by Solve.
type Mode int

const (
	// ModeValue runs value iteration.
	ModeValue Mode = iota
	// ModePolicy runs policy iteration.
	ModePolicy
)

// String returns "value" or "policy".
func (m Mode) String() string {
	switch m {
	case ModeValue:
		return "value"
	case ModePolicy:
		return "policy"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "value" / "policy" (case-insensitive) to a Mode.
// Anything else yields ErrInvalidMode; there is no default.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value":
		return ModeValue, nil
	case "policy":
		return ModePolicy, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidMode, s)
}

// SweepHook observes every synchronous sweep: the zero-based sweep index and
// the largest absolute value change of that sweep.
type SweepHook func(sweep int, delta float64)

// Options configures the solvers.
//
// Gamma    – discount factor in (0,1].
// Theta    – stop once the per-sweep delta drops below Theta (> 0).
// MaxIters – cap on sweeps (value iteration, policy evaluation) or on
//
//	improvement rounds (policy iteration). Must be > 0.
//
// OnSweep  – optional SweepHook.
type Options struct {
	Gamma    float64
	Theta    float64
	MaxIters int
	OnSweep  SweepHook
}

// Option represents a functional option for the solvers.
type Option func(*Options)

// Default solver parameters.
const (
	DefaultGamma    = 0.6
	DefaultTheta    = 1e-4
	DefaultMaxIters = 10000
)

// DefaultOptions returns Gamma=0.6, Theta=1e-4, MaxIters=10000 and no hook.
func DefaultOptions() Options {
	return Options{
		Gamma:    DefaultGamma,
		Theta:    DefaultTheta,
		MaxIters: DefaultMaxIters,
	}
}

// WithGamma sets the discount factor.
func WithGamma(gamma float64) Option {
	return func(o *Options) {
		o.Gamma = gamma
	}
}

// WithTheta sets the convergence threshold.
func WithTheta(theta float64) Option {
	return func(o *Options) {
		o.Theta = theta
	}
}

// WithMaxIters sets the iteration cap.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		o.MaxIters = n
	}
}

// WithSweepHook registers fn to be called after every sweep.
// Policy iteration reports the sweeps of each internal evaluation, so the
// sweep index restarts at 0 every improvement round.
func WithSweepHook(fn SweepHook) Option {
	return func(o *Options) {
		o.OnSweep = fn
	}
}

// Result is the outcome of one solver invocation.
//
// Iterations is the zero-based index of the last sweep (value iteration) or
// improvement round (policy iteration) executed. EvalIterations is the sweep
// index of the final internal policy evaluation, and 0 for value iteration.
// Converged reports whether the stop rule fired before the cap.
type Result struct {
	Mode           Mode
	Values         []float64
	Policy         []mdp.Action
	Iterations     int
	EvalIterations int
	Converged      bool
}

// Validate reports the first out-of-range field.
func (o Options) Validate() error {
	if !(o.Gamma > 0 && o.Gamma <= 1) {
		return fmt.Errorf("%w: got %g", ErrBadGamma, o.Gamma)
	}
	if !(o.Theta > 0) || math.IsInf(o.Theta, 0) {
		return fmt.Errorf("%w: got %g", ErrBadTheta, o.Theta)
	}
	if o.MaxIters <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIters, o.MaxIters)
	}
	return nil
}

// CheckOptions applies opts over the defaults and validates them without
// running a solver.
func CheckOptions(opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Validate()
}

// resolve applies opts over the defaults and validates the result.
func resolve(m *mdp.Model, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		return cfg, ErrNilModel
	}
	return cfg, cfg.Validate()
}
