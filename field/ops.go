// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norm returns sqrt(Σ re²+im²), combining the two half norms with a
// scaled hypot so large amplitudes do not overflow.
// Complexity: O(n). No side effects.
func Norm(s State) float64 {
	return math.Hypot(floats.Norm(s.Re, 2), floats.Norm(s.Im, 2))
}

// Normalize divides s in place by Norm(s).
// Returns ErrZeroNorm (leaving s untouched) when the norm is zero or non-finite.
func Normalize(s State) error {
	nrm := Norm(s)
	if nrm == 0 || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
		return fmt.Errorf("Normalize: norm=%g: %w", nrm, ErrZeroNorm)
	}
	Scale(s, 1/nrm)

	return nil
}

// Scale multiplies s in place by the real factor f.
func Scale(s State, f float64) {
	floats.Scale(f, s.Re)
	floats.Scale(f, s.Im)
}

// Dot returns the Hermitian inner product ⟨a|b⟩ = Σ conj(a_i)·b_i as
//
//	re = Σ a_re·b_re + a_im·b_im
//	im = Σ a_re·b_im − a_im·b_re
//
// The result is not symmetric: Dot(b, a) returns the complex conjugate.
// Returns ErrLengthMismatch on differing lengths.
func Dot(a, b State) (re, im float64, err error) {
	if !sameShape(a, b) {
		return 0, 0, fmt.Errorf("Dot: %d vs %d: %w", a.Len(), b.Len(), ErrLengthMismatch)
	}
	re = floats.Dot(a.Re, b.Re) + floats.Dot(a.Im, b.Im)
	im = floats.Dot(a.Re, b.Im) - floats.Dot(a.Im, b.Re)

	return re, im, nil
}

// SubScaled performs dst -= (cr + i·ci)·v in place.
// Returns ErrLengthMismatch on differing lengths.
func SubScaled(dst State, cr, ci float64, v State) error {
	if !sameShape(dst, v) {
		return fmt.Errorf("SubScaled: %d vs %d: %w", dst.Len(), v.Len(), ErrLengthMismatch)
	}
	// re -= cr·v_re − ci·v_im, im -= cr·v_im + ci·v_re
	floats.AddScaled(dst.Re, -cr, v.Re)
	floats.AddScaled(dst.Re, ci, v.Im)
	floats.AddScaled(dst.Im, -cr, v.Im)
	floats.AddScaled(dst.Im, -ci, v.Re)

	return nil
}

// AddScaled performs dst += (cr + i·ci)·v in place.
func AddScaled(dst State, cr, ci float64, v State) error {
	return SubScaled(dst, -cr, -ci, v)
}

// Distance returns ‖a − b‖.
func Distance(a, b State) (float64, error) {
	if !sameShape(a, b) {
		return 0, fmt.Errorf("Distance: %d vs %d: %w", a.Len(), b.Len(), ErrLengthMismatch)
	}

	return math.Hypot(floats.Distance(a.Re, b.Re, 2), floats.Distance(a.Im, b.Im, 2)), nil
}

// sameShape reports whether a and b are well formed and of equal length,
// the precondition for every floats call above.
func sameShape(a, b State) bool {
	return a.Len() == b.Len() && a.valid() && b.valid()
}
