package mdp

import (
	"fmt"
	"strings"
)

// Slip is one possible actual action for an intended action.
type Slip struct {
	Action Action
	Prob   float64
}

// Noise maps an intended action to the actions that may actually happen.
// Implementations must be deterministic; Build calls Slips once per
// (state, action) pair.
type Noise interface {
	Slips(intended Action) []Slip
}

// SlipTable is a Noise backed by a fixed table indexed by intended action.
type SlipTable [NumActions][]Slip

// Slips implements Noise.
func (t SlipTable) Slips(intended Action) []Slip {
	return t[intended]
}

// Deterministic returns the noise-free strategy: every action happens as intended.
func Deterministic() SlipTable {
	var t SlipTable
	for _, a := range Actions {
		t[a] = []Slip{{Action: a, Prob: 1}}
	}
	return t
}

// DefaultStochastic returns the 0.7 / 0.1 / 0.1 / 0.1 slip strategy.
func DefaultStochastic() SlipTable {
	return slipTable(0.7, 0.1)
}

// Stochastic returns a strategy where the intended action happens with
// probability intended and each of the other three with (1-intended)/3.
// Entries are listed in action enumeration order and never merged.
func Stochastic(intended float64) (SlipTable, error) {
	if !(intended >= 0 && intended <= 1) {
		return SlipTable{}, fmt.Errorf("%w: intended=%g", ErrBadSlip, intended)
	}
	return slipTable(intended, (1-intended)/3), nil
}

func slipTable(intended, other float64) SlipTable {
	var t SlipTable
	for _, a := range Actions {
		row := make([]Slip, 0, NumActions)
		for _, actual := range Actions {
			p := other
			if actual == a {
				p = intended
			}
			row = append(row, Slip{Action: actual, Prob: p})
		}
		t[a] = row
	}
	return t
}

// NoiseKind names a built-in noise strategy.
type NoiseKind int

const (
	// KindDeterministic selects Deterministic.
	KindDeterministic NoiseKind = iota
	// KindStochastic selects Stochastic.
	KindStochastic
)

// String returns "deterministic" or "stochastic".
func (k NoiseKind) String() string {
	switch k {
	case KindDeterministic:
		return "deterministic"
	case KindStochastic:
		return "stochastic"
	}
	return fmt.Sprintf("NoiseKind(%d)", int(k))
}

// ParseNoiseKind maps "deterministic" / "stochastic" (case-insensitive) to a NoiseKind.
func ParseNoiseKind(s string) (NoiseKind, error) {
	switch strings.ToLower(s) {
	case "deterministic", "det":
		return KindDeterministic, nil
	case "stochastic", "stoch":
		return KindStochastic, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownNoise, s)
}

// NoiseFor builds the strategy for kind. intended is ignored for
// KindDeterministic; for KindStochastic a value of 0.7 yields DefaultStochastic.
func NoiseFor(kind NoiseKind, intended float64) (Noise, error) {
	switch kind {
	case KindDeterministic:
		return Deterministic(), nil
	case KindStochastic:
		if intended == 0.7 {
			return DefaultStochastic(), nil
		}
		return Stochastic(intended)
	}
	return nil, fmt.Errorf("%w %v", ErrUnknownNoise, kind)
}
