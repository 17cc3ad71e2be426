// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"sort"
)

// CSR is a real m×n operator in compressed-sparse-row form.
//
// Invariants (established by New, never violated afterwards):
//   - len(rowPointers) == m+1, rowPointers[0] == 0,
//     rowPointers[m] == len(values) == len(columnIndices);
//   - rowPointers is non-decreasing;
//   - within a row, column indices are non-decreasing.
type CSR struct {
	m, n          int
	values        []float64
	columnIndices []int
	rowPointers   []int
	workers       int
}

type triplet struct {
	r, c int
	v    float64
}

// New builds an m×n CSR operator from parallel triplet slices.
//
// Returns ErrInvalidInput when m <= 0, n <= 0, or the three slices differ in
// length. Out-of-range and zero-valued triplets are dropped without error.
// Complexity: O(k log k) for k kept triplets.
func New(m, n int, rows, cols []int, vals []float64, opts ...Option) (*CSR, error) {
	if m <= 0 || n <= 0 {
		return nil, fmt.Errorf("New: shape %dx%d: %w", m, n, ErrInvalidInput)
	}
	if len(rows) != len(cols) || len(cols) != len(vals) {
		return nil, fmt.Errorf("New: rows=%d cols=%d vals=%d: %w",
			len(rows), len(cols), len(vals), ErrInvalidInput)
	}
	o := gatherOptions(opts)

	entries := make([]triplet, 0, len(vals))
	for i := range vals {
		r, c, v := rows[i], cols[i], vals[i]
		if r < 0 || r >= m || c < 0 || c >= n {
			continue
		}
		if v == 0 {
			continue
		}
		entries = append(entries, triplet{r: r, c: c, v: v})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].r != entries[b].r {
			return entries[a].r < entries[b].r
		}
		return entries[a].c < entries[b].c
	})

	op := &CSR{
		m:             m,
		n:             n,
		values:        make([]float64, len(entries)),
		columnIndices: make([]int, len(entries)),
		rowPointers:   make([]int, m+1),
		workers:       o.workers,
	}
	// Count per row, then prefix-sum into row starts.
	for k, e := range entries {
		op.values[k] = e.v
		op.columnIndices[k] = e.c
		op.rowPointers[e.r+1]++
	}
	for r := 0; r < m; r++ {
		op.rowPointers[r+1] += op.rowPointers[r]
	}

	return op, nil
}

// Dims returns (rows, cols).
func (a *CSR) Dims() (int, int) { return a.m, a.n }

// NNZ returns the number of stored entries (duplicates counted separately).
func (a *CSR) NNZ() int { return len(a.values) }

// Workers returns the configured MulVec parallelism.
func (a *CSR) Workers() int { return a.workers }

// RowPointers returns a copy of the row offset array (length m+1).
func (a *CSR) RowPointers() []int { return append([]int(nil), a.rowPointers...) }

// ColumnIndices returns a copy of the per-entry column indices.
func (a *CSR) ColumnIndices() []int { return append([]int(nil), a.columnIndices...) }

// Values returns a copy of the stored values.
func (a *CSR) Values() []float64 { return append([]float64(nil), a.values...) }

// At returns the effective matrix element (i, j): the sum of every stored
// entry at that position. Complexity: O(row length).
func (a *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= a.m || j < 0 || j >= a.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	var sum float64
	for k := a.rowPointers[i]; k < a.rowPointers[i+1]; k++ {
		if a.columnIndices[k] == j {
			sum += a.values[k]
		}
	}

	return sum, nil
}

// IsSymmetric reports whether At(i,j) == At(j,i) within tol for every stored
// entry. Complexity: O(nnz · row length).
func (a *CSR) IsSymmetric(tol float64) bool {
	if a.m != a.n {
		return false
	}
	for i := 0; i < a.m; i++ {
		for k := a.rowPointers[i]; k < a.rowPointers[i+1]; k++ {
			j := a.columnIndices[k]
			aij, _ := a.At(i, j)
			aji, _ := a.At(j, i)
			if math.Abs(aij-aji) > tol {
				return false
			}
		}
	}

	return true
}

// MaxAbsRowSum returns max_r Σ|a_rk|, the induced ∞-norm. For a symmetric
// operator it bounds the spectral radius.
func (a *CSR) MaxAbsRowSum() float64 {
	var best, sum float64
	for r := 0; r < a.m; r++ {
		sum = 0
		for k := a.rowPointers[r]; k < a.rowPointers[r+1]; k++ {
			sum += math.Abs(a.values[k])
		}
		if sum > best {
			best = sum
		}
	}

	return best
}
