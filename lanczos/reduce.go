// SPDX-License-Identifier: MIT

package lanczos

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/ortho"
)

// Operator is the Hermitian operator being reduced. *sparse.CSR satisfies it.
type Operator interface {
	Dims() (rows, cols int)
	MulVec(x field.State) (field.State, error)
}

// Result is the outcome of a reduction.
type Result struct {
	Basis       Basis
	Tridiagonal Tridiagonal
	// Requested is the d passed to Reduce; Effective == len(Basis).
	Requested int
	Effective int
	// Truncated reports that breakdown stopped the reduction early.
	Truncated bool
}

// Reduce runs d Lanczos steps on op from the seed v0.
//
// Step i computes w = H·q_i, alpha_i = Re⟨q_i|w⟩, orthogonalises w against
// q_0..q_i, adds the correction Re⟨q_i|w⟩ to alpha_i, orthogonalises again
// and takes beta_i = ‖w‖. For i < d−1 the normalised w becomes q_{i+1}.
//
// v0 is not modified. Errors: ErrNotSquare, ErrSeedLength, ErrInvalidDimension
// (d outside [1, N]), ErrZeroSeed, ErrDegenerateBasis (non-finite
// coefficients, or breakdown under WithStrict). Operator failures are
// returned wrapped.
func Reduce(op Operator, v0 field.State, d int, opts ...Option) (*Result, error) {
	rows, cols := op.Dims()
	if rows != cols {
		return nil, fmt.Errorf("Reduce: %dx%d: %w", rows, cols, ErrNotSquare)
	}
	n := rows
	if v0.Len() != n || len(v0.Im) != n {
		return nil, fmt.Errorf("Reduce: len(v0)=%d, N=%d: %w", v0.Len(), n, ErrSeedLength)
	}
	if d < 1 || d > n {
		return nil, fmt.Errorf("Reduce: d=%d, N=%d: %w", d, n, ErrInvalidDimension)
	}
	o := gatherOptions(opts)

	q0 := v0.Clone()
	if err := field.Normalize(q0); err != nil {
		return nil, fmt.Errorf("Reduce: %w", ErrZeroSeed)
	}

	basis := make(Basis, 1, d)
	basis[0] = q0
	alphas := make([]float64, 0, d)
	betas := make([]float64, 0, d)

	var (
		w         field.State
		alpha, ar float64
		beta      float64
		scale     float64
		err       error
		truncated bool
	)
	for i := 0; i < d; i++ {
		if w, err = op.MulVec(basis[i]); err != nil {
			return nil, fmt.Errorf("Reduce: step %d: %w", i, err)
		}

		// Two orthogonalisation passes; the second catches what rounding
		// left behind in the first.
		if alpha, _, err = field.Dot(basis[i], w); err != nil {
			return nil, fmt.Errorf("Reduce: step %d: %w", i, err)
		}
		if _, err = ortho.Project(w, basis[:i+1], false); err != nil {
			return nil, fmt.Errorf("Reduce: step %d: %w", i, err)
		}
		if ar, _, err = field.Dot(basis[i], w); err != nil {
			return nil, fmt.Errorf("Reduce: step %d: %w", i, err)
		}
		alpha += ar
		if beta, err = ortho.Project(w, basis[:i+1], false); err != nil {
			return nil, fmt.Errorf("Reduce: step %d: %w", i, err)
		}

		if !finite(alpha) || !finite(beta) {
			return nil, fmt.Errorf("Reduce: step %d: alpha=%g beta=%g: %w", i, alpha, beta, ErrDegenerateBasis)
		}
		alphas = append(alphas, alpha)
		betas = append(betas, beta)
		if s := math.Abs(alpha) + beta; s > scale {
			scale = s
		}
		if i == d-1 {
			break
		}

		if beta <= o.breakdownTol*math.Max(1, scale) {
			if o.strict {
				return nil, fmt.Errorf("Reduce: step %d: beta=%g: %w", i, beta, ErrDegenerateBasis)
			}
			o.logger.Debug("lanczos breakdown",
				zap.Int("step", i),
				zap.Float64("beta", beta),
				zap.Int("requested", d),
				zap.Int("effective", i+1),
			)
			betas[i] = 0
			truncated = true
			break
		}
		field.Scale(w, 1/beta)
		basis = append(basis, w)
	}

	return &Result{
		Basis:       basis,
		Tridiagonal: Tridiagonal{Alphas: alphas, Betas: betas},
		Requested:   d,
		Effective:   len(basis),
		Truncated:   truncated,
	}, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
