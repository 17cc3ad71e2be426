// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solver diagonalises a real symmetric tridiagonal matrix.
type Solver interface {
	// Tridiagonal factorises T with T[i][i] = diag[i] and
	// T[i][i+1] = T[i+1][i] = off[i]; len(off) must be len(diag)-1.
	Tridiagonal(diag, off []float64) (*Decomposition, error)
}

// Decomposition holds ascending eigenvalues and the matching eigenvectors
// stored column-wise.
type Decomposition struct {
	Values  []float64
	Vectors *mat.Dense
}

// Size returns the matrix dimension d.
func (d *Decomposition) Size() int { return len(d.Values) }

// Vector returns a copy of eigenvector k.
func (d *Decomposition) Vector(k int) []float64 {
	return mat.Col(nil, k, d.Vectors)
}

// Residual returns max |(T·S − S·Λ)[i][k]| for the tridiagonal T described
// by diag and off. It is ~1e-15·‖T‖ for a healthy factorisation.
func (d *Decomposition) Residual(diag, off []float64) float64 {
	n := len(d.Values)
	var worst, ts float64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ts = diag[i] * d.Vectors.At(i, k)
			if i > 0 {
				ts += off[i-1] * d.Vectors.At(i-1, k)
			}
			if i+1 < n {
				ts += off[i] * d.Vectors.At(i+1, k)
			}
			if r := math.Abs(ts - d.Values[k]*d.Vectors.At(i, k)); r > worst {
				worst = r
			}
		}
	}

	return worst
}

// validate applies the shared input checks.
func validate(op string, diag, off []float64) error {
	if len(diag) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	if len(off) != len(diag)-1 {
		return fmt.Errorf("%s: len(diag)=%d len(off)=%d: %w", op, len(diag), len(off), ErrShape)
	}
	for _, xs := range [2][]float64{diag, off} {
		for i, v := range xs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: entry %d=%g: %w", op, i, v, ErrNonFinite)
			}
		}
	}

	return nil
}

// SymTridiagonal assembles the dense symmetric form of (diag, off).
func SymTridiagonal(diag, off []float64) *mat.SymDense {
	n := len(diag)
	t := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		t.SetSym(i, i, diag[i])
		if i+1 < n {
			t.SetSym(i, i+1, off[i])
		}
	}

	return t
}
