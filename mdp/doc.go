// Package mdp builds the transition model of a grid-world Markov Decision Process.
//
// Overview:
//
//   - A Model lists, for every (state, action) pair, the weighted outcomes
//     (next state, probability, reward). Probabilities for a pair sum to 1.
//   - Action noise is a strategy (Noise) mapping the intended action to the
//     actions that may actually happen. Deterministic is the single-outcome
//     case; DefaultStochastic keeps the intended action with probability 0.7
//     and slips to each other action with probability 0.1.
//   - The stochastic expansion is explicit data, not sampling: Build never
//     draws random numbers.
//
// Movement rule (Successor):
//
//	candidate = position + delta(action)
//	off-grid or obstacle → stay,  reward Blocked (-5)
//	goal cell            → move,  reward Goal    (+10)
//	otherwise            → move,  reward Step    (-1)
//
// Goal states are absorbing: every action yields (self, 1.0, Terminal=0).
//
// Duplicate next states are not merged. In the stochastic model a corner
// state may list itself twice (two different walls); consumers accumulate
// each entry separately.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilNoise: missing inputs to Build.
//   - ErrBadSlip:              a slip probability outside [0,1].
//   - ErrProbabilitySum:       an outcome list does not sum to 1 within ProbTolerance.
//   - ErrUnknownAction, ErrUnknownNoise: bad labels in parsers.
package mdp
