// SPDX-License-Identifier: MIT

package propagator

import (
	"fmt"

	"github.com/katalvlaran/wavekrylov/field"
)

// RitzVector lifts eigenvector k of T back to the full space: Σ_i S[i][k]·q_i.
// The result has unit norm up to the orthonormality of the basis.
// Returns ErrTargetOutOfRange unless 0 <= k < Dimension().
func (c *Context) RitzVector(k int) (field.State, error) {
	if k < 0 || k >= len(c.basis) {
		return field.State{}, fmt.Errorf("RitzVector: k=%d, d=%d: %w", k, len(c.basis), ErrTargetOutOfRange)
	}
	n := c.seed.Len()
	out := field.State{Re: make([]float64, n), Im: make([]float64, n)}
	for i := range c.basis {
		if err := field.AddScaled(out, c.dec.Vectors.At(i, k), 0, c.basis[i]); err != nil {
			return field.State{}, fmt.Errorf("RitzVector: %w", err)
		}
	}

	return out, nil
}

// RitzVectors lifts every eigenvector of T, in ascending energy order.
// Complexity: O(d²·N).
func (c *Context) RitzVectors() ([]field.State, error) {
	out := make([]field.State, len(c.basis))
	var err error
	for k := range out {
		if out[k], err = c.RitzVector(k); err != nil {
			return nil, err
		}
	}

	return out, nil
}
