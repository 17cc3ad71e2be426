// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekrylov/sparse"
)

// assertCSRInvariants checks the structural contract of a CSR operator.
func assertCSRInvariants(t *testing.T, a *sparse.CSR) {
	t.Helper()
	m, _ := a.Dims()
	rp := a.RowPointers()
	require.Len(t, rp, m+1)
	assert.Equal(t, 0, rp[0])
	assert.Equal(t, a.NNZ(), rp[m])
	assert.Len(t, a.Values(), a.NNZ())
	assert.Len(t, a.ColumnIndices(), a.NNZ())
	for r := 0; r < m; r++ {
		assert.LessOrEqual(t, rp[r], rp[r+1], "row pointers must be non-decreasing")
	}
}

// TestNew_DropsOutOfRangeTriplet: an out-of-range row is dropped silently.
func TestNew_DropsOutOfRangeTriplet(t *testing.T) {
	a, err := sparse.New(3, 3,
		[]int{0, 1, 5, 2},
		[]int{0, 1, 0, 2},
		[]float64{1, 2, 9, 3})
	require.NoError(t, err, "out-of-range triplets must not error")

	m, n := a.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, a.NNZ(), "entry count excludes the dropped triplet")
	assertCSRInvariants(t, a)
}

// TestNew_DropsNegativeAndColumnOutOfRange covers the other bounds.
func TestNew_DropsNegativeAndColumnOutOfRange(t *testing.T) {
	a, err := sparse.New(2, 2,
		[]int{-1, 0, 1},
		[]int{0, 2, 1},
		[]float64{1, 1, 4})
	require.NoError(t, err)
	assert.Equal(t, 1, a.NNZ())
	v, err := a.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

// TestNew_DropsZeros: zero values are not stored.
func TestNew_DropsZeros(t *testing.T) {
	a, err := sparse.New(2, 2, []int{0, 1}, []int{0, 1}, []float64{0, 5})
	require.NoError(t, err)
	assert.Equal(t, 1, a.NNZ())
	assert.Equal(t, []int{0, 0, 1}, a.RowPointers())
}

// TestNew_InvalidInput covers mismatched lengths and bad shapes.
func TestNew_InvalidInput(t *testing.T) {
	_, err := sparse.New(2, 2, []int{0, 1}, []int{0}, []float64{1, 1})
	assert.ErrorIs(t, err, sparse.ErrInvalidInput)

	_, err = sparse.New(2, 2, []int{0}, []int{0}, []float64{1, 1})
	assert.ErrorIs(t, err, sparse.ErrInvalidInput)

	_, err = sparse.New(0, 2, nil, nil, nil)
	assert.ErrorIs(t, err, sparse.ErrInvalidInput)
}

// TestNew_SortsAndKeepsDuplicates: entries are ordered and duplicates stay separate.
func TestNew_SortsAndKeepsDuplicates(t *testing.T) {
	a, err := sparse.New(3, 3,
		[]int{2, 0, 0, 2, 0},
		[]int{1, 2, 0, 1, 2},
		[]float64{7, 3, 1, 8, 4})
	require.NoError(t, err)

	assert.Equal(t, 5, a.NNZ(), "duplicates are not merged")
	assert.Equal(t, []int{0, 3, 3, 5}, a.RowPointers(), "row 1 is empty")
	assert.Equal(t, []int{0, 2, 2, 1, 1}, a.ColumnIndices())
	assert.Equal(t, []float64{1, 3, 4, 7, 8}, a.Values(), "stable order for duplicates")
	assertCSRInvariants(t, a)

	v, err := a.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "At sums duplicate entries")

	_, err = a.At(3, 0)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestIsSymmetric distinguishes symmetric and asymmetric operators.
func TestIsSymmetric(t *testing.T) {
	sym, err := sparse.New(2, 2, []int{0, 1, 0}, []int{1, 0, 0}, []float64{2, 2, 1})
	require.NoError(t, err)
	assert.True(t, sym.IsSymmetric(0))

	asym, err := sparse.New(2, 2, []int{0}, []int{1}, []float64{2})
	require.NoError(t, err)
	assert.False(t, asym.IsSymmetric(1e-12))

	rect, err := sparse.New(2, 3, nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, rect.IsSymmetric(0))
}

// TestMaxAbsRowSum checks the ∞-norm.
func TestMaxAbsRowSum(t *testing.T) {
	a, err := sparse.New(2, 2, []int{0, 0, 1}, []int{0, 1, 1}, []float64{-3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 4.0, a.MaxAbsRowSum())
}

// TestWithWorkers_PanicsOnInvalid mirrors the option validation policy.
func TestWithWorkers_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { sparse.WithWorkers(0) })
	assert.NotPanics(t, func() { sparse.WithWorkers(3) })
}
