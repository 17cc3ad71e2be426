package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekrylov/field"
)

// TestGaussian1D_CentroidAndNorm checks the packet sits at x0 with unit norm.
func TestGaussian1D_CentroidAndNorm(t *testing.T) {
	psi, err := field.Gaussian1D(128, 64, 0.7, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, field.Norm(psi), 1e-12)

	c, err := field.Centroid1D(psi)
	require.NoError(t, err)
	assert.InDelta(t, 64.0, c, 1e-9)

	// The carrier phase advances by p0 per site around the centre.
	phase := math.Atan2(psi.Im[65], psi.Re[65]) - math.Atan2(psi.Im[64], psi.Re[64])
	assert.InDelta(t, 0.7, phase, 1e-12)
}

// TestGaussian1D_InvalidWidth covers width validation.
func TestGaussian1D_InvalidWidth(t *testing.T) {
	for _, sigma := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := field.Gaussian1D(16, 8, 0, sigma)
		assert.ErrorIs(t, err, field.ErrInvalidWidth, "sigma=%g", sigma)
	}
}

// TestGaussian2D_Marginals checks both marginals peak at the packet centre.
func TestGaussian2D_Marginals(t *testing.T) {
	const nx, ny = 20, 10
	psi, err := field.Gaussian2D(nx, ny, 6, 4, 1, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, field.Norm(psi), 1e-12)

	mx, my, err := field.Marginals(psi, nx, ny)
	require.NoError(t, err)
	assert.Equal(t, 6, argmax(mx))
	assert.Equal(t, 4, argmax(my))

	var total float64
	for _, p := range mx {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

// TestSeparable_Unentangled verifies product states score ~0 entanglement.
func TestSeparable_Unentangled(t *testing.T) {
	px, err := field.Gaussian1D(12, 4, 0, 1.5)
	require.NoError(t, err)
	py, err := field.Gaussian1D(9, 5, 0, 2)
	require.NoError(t, err)

	psi, err := field.Separable(px, py)
	require.NoError(t, err)
	require.Equal(t, 12*9, psi.Len())

	e, err := field.Entanglement(psi, 12, 9)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, e, 1e-12)
}

// TestEntanglement_BellLike checks a correlated 2×2 state.
func TestEntanglement_BellLike(t *testing.T) {
	h := 1 / math.Sqrt2
	psi, err := field.FromParts([]float64{h, 0, 0, h}, []float64{0, 0, 0, 0})
	require.NoError(t, err)

	e, err := field.Entanglement(psi, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1-h, e, 1e-12)

	_, err = field.Entanglement(psi, 3, 2)
	assert.ErrorIs(t, err, field.ErrInvalidShape)
}

// TestRandom_Deterministic checks seeding and normalisation.
func TestRandom_Deterministic(t *testing.T) {
	a, err := field.Random(32, 11)
	require.NoError(t, err)
	b, err := field.Random(32, 11)
	require.NoError(t, err)
	c, err := field.Random(32, 12)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.InDelta(t, 1.0, field.Norm(a), 1e-12)
}

func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}

	return best
}
