// SPDX-License-Identifier: MIT

package ortho

import (
	"math"

	"github.com/katalvlaran/wavekrylov/field"
)

// DefaultTolerance is the overlap bound Check uses when tol <= 0.
const DefaultTolerance = 1e-8

// Report summarises how far a basis is from orthonormal.
type Report struct {
	// MaxOverlap is max |⟨b_i|b_j⟩| over i < j; I and J locate it
	// (both -1 when the basis has fewer than two vectors).
	MaxOverlap float64
	I, J       int

	// MaxNormError is max |‖b_i‖ − 1|.
	MaxNormError float64

	// Orthonormal is MaxOverlap < tol && MaxNormError < tol.
	Orthonormal bool
}

// Check measures pairwise overlaps and unit-norm deviation of basis.
// Vectors of mismatched length count as fully overlapping (MaxOverlap = +Inf).
// Complexity: O(k²·n).
func Check(basis []field.State, tol float64) Report {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	r := Report{I: -1, J: -1}
	for i := range basis {
		if e := math.Abs(field.Norm(basis[i]) - 1); e > r.MaxNormError {
			r.MaxNormError = e
		}
		for j := i + 1; j < len(basis); j++ {
			re, im, err := field.Dot(basis[i], basis[j])
			ov := math.Hypot(re, im)
			if err != nil {
				ov = math.Inf(1)
			}
			if ov > r.MaxOverlap || r.I < 0 {
				r.MaxOverlap, r.I, r.J = ov, i, j
			}
		}
	}
	r.Orthonormal = r.MaxOverlap < tol && r.MaxNormError < tol

	return r
}
