// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
)

// State is a complex vector stored as paired real and imaginary buffers.
// Both halves always have the same length.
type State struct {
	Re []float64
	Im []float64
}

// New allocates a zero State of length n.
// Returns ErrInvalidLength when n <= 0.
func New(n int) (State, error) {
	if n <= 0 {
		return State{}, fmt.Errorf("New(%d): %w", n, ErrInvalidLength)
	}

	return State{Re: make([]float64, n), Im: make([]float64, n)}, nil
}

// FromParts copies re and im into a new State.
// Returns ErrLengthMismatch if the halves differ in length and
// ErrInvalidLength if they are empty.
func FromParts(re, im []float64) (State, error) {
	if len(re) != len(im) {
		return State{}, fmt.Errorf("FromParts: re=%d im=%d: %w", len(re), len(im), ErrLengthMismatch)
	}
	if len(re) == 0 {
		return State{}, fmt.Errorf("FromParts: %w", ErrInvalidLength)
	}
	s := State{Re: make([]float64, len(re)), Im: make([]float64, len(im))}
	copy(s.Re, re)
	copy(s.Im, im)

	return s, nil
}

// Len returns the number of grid sites.
func (s State) Len() int { return len(s.Re) }

// Clone returns a deep copy; the result never aliases s.
// Complexity: O(n).
func (s State) Clone() State {
	c := State{Re: make([]float64, len(s.Re)), Im: make([]float64, len(s.Im))}
	copy(c.Re, s.Re)
	copy(c.Im, s.Im)

	return c
}

// CopyFrom overwrites s with src. Lengths must match.
func (s State) CopyFrom(src State) error {
	if s.Len() != src.Len() {
		return fmt.Errorf("CopyFrom: %d vs %d: %w", s.Len(), src.Len(), ErrLengthMismatch)
	}
	copy(s.Re, src.Re)
	copy(s.Im, src.Im)

	return nil
}

// Zero clears both buffers in place.
func (s State) Zero() {
	for i := range s.Re {
		s.Re[i] = 0
		s.Im[i] = 0
	}
}

// IsFinite reports whether every component is finite.
func IsFinite(s State) bool {
	for i := range s.Re {
		if math.IsNaN(s.Re[i]) || math.IsInf(s.Re[i], 0) ||
			math.IsNaN(s.Im[i]) || math.IsInf(s.Im[i], 0) {
			return false
		}
	}

	return true
}

// valid reports whether the halves agree in length.
func (s State) valid() bool { return len(s.Re) == len(s.Im) }
