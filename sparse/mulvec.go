// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wavekrylov/field"
)

// MulVec returns A·x for a complex x.
// Returns ErrDimensionMismatch when x.Len() != n.
// Complexity: O(nnz).
func (a *CSR) MulVec(x field.State) (field.State, error) {
	if x.Len() != a.n || len(x.Im) != a.n {
		return field.State{}, fmt.Errorf("MulVec: len(x)=%d, cols=%d: %w", x.Len(), a.n, ErrDimensionMismatch)
	}
	y := field.State{Re: make([]float64, a.m), Im: make([]float64, a.m)}
	a.mulRows(y, x)

	return y, nil
}

// MulVecInto writes A·x into dst without allocating. dst must have length m
// and must not alias x.
func (a *CSR) MulVecInto(dst, x field.State) error {
	if x.Len() != a.n || len(x.Im) != a.n {
		return fmt.Errorf("MulVecInto: len(x)=%d, cols=%d: %w", x.Len(), a.n, ErrDimensionMismatch)
	}
	if dst.Len() != a.m || len(dst.Im) != a.m {
		return fmt.Errorf("MulVecInto: len(dst)=%d, rows=%d: %w", dst.Len(), a.m, ErrDimensionMismatch)
	}
	a.mulRows(dst, x)

	return nil
}

// mulRows dispatches between the serial loop and the chunked errgroup loop.
func (a *CSR) mulRows(y, x field.State) {
	chunks := a.workers
	if maxChunks := a.m / minRowsPerWorker; chunks > maxChunks {
		chunks = maxChunks
	}
	if chunks <= 1 {
		a.mulRange(y, x, 0, a.m)
		return
	}

	var g errgroup.Group
	step := (a.m + chunks - 1) / chunks
	for lo := 0; lo < a.m; lo += step {
		lo, hi := lo, min(lo+step, a.m)
		g.Go(func() error {
			a.mulRange(y, x, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait only joins
}

// mulRange computes rows [lo, hi) of y = A·x.
func (a *CSR) mulRange(y, x field.State, lo, hi int) {
	var re, im, v float64
	var col int
	for r := lo; r < hi; r++ {
		re, im = 0, 0
		for k := a.rowPointers[r]; k < a.rowPointers[r+1]; k++ {
			v = a.values[k]
			col = a.columnIndices[k]
			re += v * x.Re[col]
			im += v * x.Im[col]
		}
		y.Re[r] = re
		y.Im[r] = im
	}
}
