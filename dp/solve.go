package dp

import (
	"fmt"

	"github.com/katalvlaran/gridmdp/mdp"
)

// Solve dispatches to ValueIteration or PolicyIteration. The caller must pick
// the mode explicitly; any other Mode value yields ErrInvalidMode.
func Solve(m *mdp.Model, mode Mode, opts ...Option) (Result, error) {
	switch mode {
	case ModeValue:
		return ValueIteration(m, opts...)
	case ModePolicy:
		return PolicyIteration(m, opts...)
	}
	return Result{}, fmt.Errorf("%w: got %v", ErrInvalidMode, mode)
}
