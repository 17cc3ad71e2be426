package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wavekrylov/eigen"
)

const tol = 1e-10

var solvers = []struct {
	name string
	s    eigen.Solver
}{
	{"Gonum", eigen.Gonum{}},
	{"Jacobi", eigen.Jacobi{}},
}

// pathLaplacian returns the 1D discrete Laplacian with Dirichlet ends,
// whose spectrum is 2−2cos(kπ/(n+1)), k = 1..n.
func pathLaplacian(n int) (diag, off []float64, want []float64) {
	diag = make([]float64, n)
	off = make([]float64, n-1)
	want = make([]float64, n)
	for i := range diag {
		diag[i] = 2
		if i < n-1 {
			off[i] = -1
		}
		want[i] = 2 - 2*math.Cos(float64(i+1)*math.Pi/float64(n+1))
	}

	return diag, off, want
}

func assertOrthogonal(t *testing.T, v *mat.Dense) {
	t.Helper()
	n, _ := v.Dims()
	var g mat.Dense
	g.Mul(v.T(), v)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, g.At(i, j), tol, "SᵀS[%d][%d]", i, j)
		}
	}
}

// TestTridiagonal_PathLaplacian verifies the analytic spectrum of the path Laplacian.
func TestTridiagonal_PathLaplacian(t *testing.T) {
	diag, off, want := pathLaplacian(12)
	for _, tc := range solvers {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.s.Tridiagonal(diag, off)
			require.NoError(t, err)
			require.Equal(t, 12, d.Size())
			for k := range want {
				assert.InDelta(t, want[k], d.Values[k], tol, "λ[%d]", k)
			}
			assert.Less(t, d.Residual(diag, off), tol)
			assertOrthogonal(t, d.Vectors)
		})
	}
}

// TestTridiagonal_TwoByTwo verifies a closed-form 2x2 decomposition.
func TestTridiagonal_TwoByTwo(t *testing.T) {
	for _, tc := range solvers {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.s.Tridiagonal([]float64{2, 2}, []float64{1})
			require.NoError(t, err)
			assert.InDelta(t, 1.0, d.Values[0], tol)
			assert.InDelta(t, 3.0, d.Values[1], tol)
			// Lowest eigenvector is (1, −1)/√2 up to sign.
			v := d.Vector(0)
			assert.InDelta(t, 1/math.Sqrt2, math.Abs(v[0]), tol)
			assert.InDelta(t, -v[0], v[1], tol)
		})
	}
}

// TestTridiagonal_SingleEntry verifies the 1x1 case.
func TestTridiagonal_SingleEntry(t *testing.T) {
	for _, tc := range solvers {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.s.Tridiagonal([]float64{-4.5}, nil)
			require.NoError(t, err)
			assert.Equal(t, []float64{-4.5}, d.Values)
			assert.InDelta(t, 1.0, math.Abs(d.Vectors.At(0, 0)), tol)
		})
	}
}

// TestTridiagonal_SolversAgree cross-checks both implementations on random
// tridiagonals, including a zero coupling that splits the matrix.
func TestTridiagonal_SolversAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		n := 3 + rng.Intn(20)
		diag := make([]float64, n)
		off := make([]float64, n-1)
		for i := range diag {
			diag[i] = rng.NormFloat64()
		}
		for i := range off {
			off[i] = rng.NormFloat64()
		}
		off[n/2-1] = 0

		g, err := eigen.Gonum{}.Tridiagonal(diag, off)
		require.NoError(t, err)
		j, err := eigen.Jacobi{}.Tridiagonal(diag, off)
		require.NoError(t, err)
		require.Len(t, j.Values, n)
		for k := range g.Values {
			assert.InDelta(t, g.Values[k], j.Values[k], 1e-9, "trial %d λ[%d]", trial, k)
		}
		assert.Less(t, j.Residual(diag, off), 1e-9)
		assert.Less(t, g.Residual(diag, off), 1e-9)
		assertOrthogonal(t, j.Vectors)
	}
}

// TestTridiagonal_Errors verifies that empty, misshapen and non-finite input is rejected.
func TestTridiagonal_Errors(t *testing.T) {
	cases := []struct {
		name      string
		diag, off []float64
		wantErr   error
	}{
		{"Empty", nil, nil, eigen.ErrEmpty},
		{"ShortOff", []float64{1, 2, 3}, []float64{1}, eigen.ErrShape},
		{"LongOff", []float64{1}, []float64{1}, eigen.ErrShape},
		{"NaNDiag", []float64{1, math.NaN()}, []float64{0}, eigen.ErrNonFinite},
		{"InfOff", []float64{1, 2}, []float64{math.Inf(-1)}, eigen.ErrNonFinite},
	}
	for _, tc := range solvers {
		for _, c := range cases {
			t.Run(tc.name+"/"+c.name, func(t *testing.T) {
				_, err := tc.s.Tridiagonal(c.diag, c.off)
				assert.ErrorIs(t, err, c.wantErr)
			})
		}
	}
}

// TestJacobi_SweepLimit verifies ErrNoConvergence when sweeps run out.
func TestJacobi_SweepLimit(t *testing.T) {
	diag, off, _ := pathLaplacian(10)
	_, err := eigen.Jacobi{MaxSweeps: 1}.Tridiagonal(diag, off)
	assert.ErrorIs(t, err, eigen.ErrNoConvergence)
}

// TestSymTridiagonal verifies the dense symmetric layout.
func TestSymTridiagonal(t *testing.T) {
	s := eigen.SymTridiagonal([]float64{1, 2, 3}, []float64{4, 5})
	want := [][]float64{{1, 4, 0}, {4, 2, 5}, {0, 5, 3}}
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, want[i][j], s.At(i, j))
		}
	}
}
