// SPDX-License-Identifier: MIT

package lanczos

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wavekrylov/field"
)

// Basis is an ordered set of orthonormal Krylov vectors.
type Basis []field.State

// Tridiagonal is the projected operator T = QᴴHQ.
//
// len(Betas) == len(Alphas); Betas[i] couples rows i and i+1 and the last
// entry is the residual norm of the final step, which is not part of T.
type Tridiagonal struct {
	Alphas []float64
	Betas  []float64
}

// Size returns the dimension of T.
func (t Tridiagonal) Size() int { return len(t.Alphas) }

// Off returns the d−1 off-diagonal entries of T.
func (t Tridiagonal) Off() []float64 {
	if len(t.Alphas) == 0 {
		return nil
	}

	return t.Betas[:len(t.Alphas)-1]
}

// At returns T[i][j]. T is symmetric by construction, so At(i, j) == At(j, i)
// exactly. Out-of-band entries are zero; the caller keeps i, j in range.
func (t Tridiagonal) At(i, j int) float64 {
	switch {
	case i == j:
		return t.Alphas[i]
	case j == i+1:
		return t.Betas[i]
	case i == j+1:
		return t.Betas[j]
	default:
		return 0
	}
}

// Dense materialises T as a gonum symmetric matrix.
func (t Tridiagonal) Dense() *mat.SymDense {
	n := t.Size()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, t.Alphas[i])
		if i+1 < n {
			s.SetSym(i, i+1, t.Betas[i])
		}
	}

	return s
}
