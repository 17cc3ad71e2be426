package propagator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/hamiltonian"
	"github.com/katalvlaran/wavekrylov/sparse"
)

func chain(t testing.TB, n int, mass float64, potential string) *sparse.CSR {
	t.Helper()
	g, err := hamiltonian.NewGrid1D(n)
	require.NoError(t, err)
	v, err := hamiltonian.Potential1D(potential, n)
	require.NoError(t, err)
	h, err := hamiltonian.Build(v, g, mass)
	require.NoError(t, err)

	return h
}

// mode returns the normalised k-th standing wave of the free open chain.
func mode(n, k int) field.State {
	s := field.State{Re: make([]float64, n), Im: make([]float64, n)}
	for i := 0; i < n; i++ {
		s.Re[i] = math.Sin(float64(k*(i+1)) * math.Pi / float64(n+1))
	}
	_ = field.Normalize(s)

	return s
}

// freeLevel is the k-th (1-based) eigenvalue of the free chain with mass 1.
func freeLevel(n, k int) float64 {
	return 1 - math.Cos(float64(k)*math.Pi/float64(n+1))
}

func point(n, at int) field.State {
	s := field.State{Re: make([]float64, n), Im: make([]float64, n)}
	s.Re[at] = 1

	return s
}

func prob(s field.State, i int) float64 { return s.Re[i]*s.Re[i] + s.Im[i]*s.Im[i] }

func overlap(t *testing.T, a, b field.State) float64 {
	t.Helper()
	re, im, err := field.Dot(a, b)
	require.NoError(t, err)

	return math.Hypot(re, im)
}
