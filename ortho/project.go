// SPDX-License-Identifier: MIT

package ortho

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavekrylov/field"
)

// Project orthogonalises state in place against basis (assumed orthonormal)
// using modified Gram-Schmidt in order j = 0..k-1: each step subtracts
// ⟨b_j|state⟩·b_j using the coefficient of the already-updated state.
//
// It returns the residual norm. When normalize is true the residual is also
// divided by that norm; a zero (or non-finite) residual then yields
// ErrZeroResidual and the state is left un-normalised.
// Complexity: O(k·n).
func Project(state field.State, basis []field.State, normalize bool) (float64, error) {
	var cr, ci float64
	var err error
	for j := range basis {
		if cr, ci, err = field.Dot(basis[j], state); err != nil {
			return 0, fmt.Errorf("Project: basis[%d]: %w", j, ErrLengthMismatch)
		}
		if err = field.SubScaled(state, cr, ci, basis[j]); err != nil {
			return 0, fmt.Errorf("Project: basis[%d]: %w", j, ErrLengthMismatch)
		}
	}

	nrm := field.Norm(state)
	if !normalize {
		return nrm, nil
	}
	if nrm == 0 || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
		return nrm, fmt.Errorf("Project: norm=%g: %w", nrm, ErrZeroResidual)
	}
	field.Scale(state, 1/nrm)

	return nrm, nil
}
