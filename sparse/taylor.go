// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavekrylov/field"
)

const (
	// TaylorTerms is the fixed order of the legacy series.
	TaylorTerms = 100

	// TaylorMaxArgument bounds |c|·‖A‖∞ for ExpMultiply. Beyond it the
	// intermediate terms grow past ~1e4 relative to the result and
	// cancellation eats the double-precision budget.
	TaylorMaxArgument = 10.0
)

// ExpMultiply approximates exp(−i·c·A)·x, i.e. x evolved for time c under a
// Hamiltonian A, by the truncated Taylor series
//
//	Σ_{k=0}^{TaylorTerms} (−i·c·A)^k x / k!
//
// accumulated term by term with running scale c/k.
//
// This is the legacy propagator kept as a reference for the Krylov path. It is
// only valid while |c|·‖A‖∞ ≤ TaylorMaxArgument; outside that range (or if a
// partial sum stops being finite) it returns ErrTaylorRange rather than an
// inaccurate state. Requires a square operator.
// Complexity: O(TaylorTerms · nnz).
func (a *CSR) ExpMultiply(x field.State, c float64) (field.State, error) {
	if a.m != a.n {
		return field.State{}, fmt.Errorf("ExpMultiply: %dx%d: %w", a.m, a.n, ErrNotSquare)
	}
	if x.Len() != a.n || len(x.Im) != a.n {
		return field.State{}, fmt.Errorf("ExpMultiply: len(x)=%d, cols=%d: %w", x.Len(), a.n, ErrDimensionMismatch)
	}
	if arg := math.Abs(c) * a.MaxAbsRowSum(); arg > TaylorMaxArgument || math.IsNaN(arg) {
		return field.State{}, fmt.Errorf("ExpMultiply: |c|·‖A‖=%g > %g: %w", arg, TaylorMaxArgument, ErrTaylorRange)
	}

	y := x.Clone()
	term := x.Clone()
	next := field.State{Re: make([]float64, a.n), Im: make([]float64, a.n)}
	var scale, hr, hi float64
	for k := 1; k <= TaylorTerms; k++ {
		a.mulRows(next, term)
		scale = c / float64(k)
		for i := 0; i < a.n; i++ {
			hr, hi = next.Re[i], next.Im[i]
			// (hr + i·hi)·(−i·scale)
			term.Re[i] = hi * scale
			term.Im[i] = -hr * scale
			y.Re[i] += term.Re[i]
			y.Im[i] += term.Im[i]
		}
	}
	if !field.IsFinite(y) {
		return field.State{}, fmt.Errorf("ExpMultiply: non-finite partial sum: %w", ErrTaylorRange)
	}

	return y, nil
}
