// SPDX-License-Identifier: MIT

package refresh

import (
	"fmt"
	"math"
)

// Default budgets for 1D (steps) and 2D (time) animations.
const (
	DefaultMaxSteps = 20
	DefaultMaxTime  = 8.0
)

// Policy decides when a context must be rebuilt. A zero field disables that
// budget; at least one must be set.
type Policy struct {
	// MaxSteps refreshes once this many frames were served from one context.
	MaxSteps int `yaml:"max_steps"`
	// MaxTime refreshes once the local time exceeds this value.
	MaxTime float64 `yaml:"max_time"`
}

// StepBudget returns a policy that refreshes every n frames.
func StepBudget(n int) Policy { return Policy{MaxSteps: n} }

// TimeBudget returns a policy that refreshes once local time exceeds t.
func TimeBudget(t float64) Policy { return Policy{MaxTime: t} }

// Validate returns ErrInvalidPolicy for negative or non-finite budgets or
// when neither budget is set.
func (p Policy) Validate() error {
	if p.MaxSteps < 0 {
		return fmt.Errorf("Policy.Validate: max_steps=%d: %w", p.MaxSteps, ErrInvalidPolicy)
	}
	if p.MaxTime < 0 || math.IsNaN(p.MaxTime) || math.IsInf(p.MaxTime, 0) {
		return fmt.Errorf("Policy.Validate: max_time=%g: %w", p.MaxTime, ErrInvalidPolicy)
	}
	if p.MaxSteps == 0 && p.MaxTime == 0 {
		return fmt.Errorf("Policy.Validate: no budget set: %w", ErrInvalidPolicy)
	}

	return nil
}

// Stale reports whether a context that served steps frames over elapsed
// simulated time must be rebuilt.
func (p Policy) Stale(steps int, elapsed float64) bool {
	return (p.MaxSteps > 0 && steps >= p.MaxSteps) || (p.MaxTime > 0 && elapsed > p.MaxTime)
}

// String prints the budgets, e.g. "max_steps=20" or "max_time=8".
func (p Policy) String() string {
	switch {
	case p.MaxSteps > 0 && p.MaxTime > 0:
		return fmt.Sprintf("max_steps=%d max_time=%g", p.MaxSteps, p.MaxTime)
	case p.MaxSteps > 0:
		return fmt.Sprintf("max_steps=%d", p.MaxSteps)
	default:
		return fmt.Sprintf("max_time=%g", p.MaxTime)
	}
}
