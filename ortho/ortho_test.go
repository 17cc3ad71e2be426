package ortho_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/ortho"
)

func randomState(n int, rng *rand.Rand) field.State {
	s := field.State{Re: make([]float64, n), Im: make([]float64, n)}
	for i := 0; i < n; i++ {
		s.Re[i] = rng.NormFloat64()
		s.Im[i] = rng.NormFloat64()
	}

	return s
}

// buildBasis orthonormalises k random vectors with two Project passes each.
func buildBasis(t *testing.T, n, k int, seed int64) []field.State {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	basis := make([]field.State, 0, k)
	for len(basis) < k {
		v := randomState(n, rng)
		_, err := ortho.Project(v, basis, false)
		require.NoError(t, err)
		_, err = ortho.Project(v, basis, true)
		require.NoError(t, err)
		basis = append(basis, v)
	}

	return basis
}

// TestProject_Orthonormalises builds a complex basis and checks the report.
func TestProject_Orthonormalises(t *testing.T) {
	basis := buildBasis(t, 40, 12, 1)
	r := ortho.Check(basis, 1e-12)
	assert.True(t, r.Orthonormal, "report: %+v", r)
	assert.Less(t, r.MaxOverlap, 1e-12)
	assert.Less(t, r.MaxNormError, 1e-12)
}

// TestProject_ReturnsResidualNorm: analysis mode reports the norm without scaling.
func TestProject_ReturnsResidualNorm(t *testing.T) {
	// Basis {e0}, state (3, 4i, 0): residual is (0, 4i, 0) with norm 4.
	e0 := field.State{Re: []float64{1, 0, 0}, Im: []float64{0, 0, 0}}
	s := field.State{Re: []float64{3, 0, 0}, Im: []float64{0, 4, 0}}

	nrm, err := ortho.Project(s, []field.State{e0}, false)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, nrm, 1e-15)
	assert.InDelta(t, 4.0, field.Norm(s), 1e-15, "state is not normalised")
	assert.Equal(t, 0.0, s.Re[0])

	nrm, err = ortho.Project(s, []field.State{e0}, true)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, nrm, 1e-15)
	assert.InDelta(t, 1.0, field.Norm(s), 1e-15)
}

// TestProject_ComplexCoefficient removes a component with a complex weight.
func TestProject_ComplexCoefficient(t *testing.T) {
	b := field.State{Re: []float64{0, 0}, Im: []float64{1, 0}} // (i, 0)
	s := field.State{Re: []float64{2, 0}, Im: []float64{3, 0}} // (2+3i, 0) = (3−2i)·b

	nrm, err := ortho.Project(s, []field.State{b}, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, nrm, "s is parallel to b")

	_, err = ortho.Project(s, []field.State{b}, true)
	assert.ErrorIs(t, err, ortho.ErrZeroResidual)
}

// TestProject_LengthMismatch rejects inconsistent bases.
func TestProject_LengthMismatch(t *testing.T) {
	b := field.State{Re: []float64{1}, Im: []float64{0}}
	s := field.State{Re: []float64{1, 2}, Im: []float64{0, 0}}
	_, err := ortho.Project(s, []field.State{b}, false)
	assert.ErrorIs(t, err, ortho.ErrLengthMismatch)
}

// TestCheck_DetectsOverlap flags a non-orthogonal pair and reports its indices.
func TestCheck_DetectsOverlap(t *testing.T) {
	basis := buildBasis(t, 10, 3, 5)
	bad := basis[0].Clone()
	require.NoError(t, field.AddScaled(bad, 0.1, 0, basis[2]))
	require.NoError(t, field.Normalize(bad))
	basis = append(basis, bad)

	r := ortho.Check(basis, 0)
	assert.False(t, r.Orthonormal)
	assert.Equal(t, 0, r.I)
	assert.Equal(t, 3, r.J)
	assert.Greater(t, r.MaxOverlap, 0.9)

	empty := ortho.Check(nil, 0)
	assert.True(t, empty.Orthonormal)
	assert.Equal(t, -1, empty.I)
}
