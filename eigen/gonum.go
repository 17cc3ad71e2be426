// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum solves with gonum's LAPACK-backed symmetric eigendecomposition.
// The zero value is ready to use.
type Gonum struct{}

// Tridiagonal implements Solver.
func (Gonum) Tridiagonal(diag, off []float64) (*Decomposition, error) {
	if err := validate("Gonum.Tridiagonal", diag, off); err != nil {
		return nil, err
	}

	var es mat.EigenSym
	if ok := es.Factorize(SymTridiagonal(diag, off), true); !ok {
		return nil, fmt.Errorf("Gonum.Tridiagonal: d=%d: %w", len(diag), ErrNoConvergence)
	}
	vecs := new(mat.Dense)
	es.VectorsTo(vecs)

	return &Decomposition{Values: es.Values(nil), Vectors: vecs}, nil
}
