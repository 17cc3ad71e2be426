// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Jacobi defaults.
const (
	DefaultJacobiTol       = 1e-13
	DefaultJacobiMaxSweeps = 64
)

// Jacobi diagonalises with cyclic Jacobi rotations.
//
// Each sweep visits every pair p < q in row order and applies the rotation
// that zeroes A[p][q]. The loop stops once the off-diagonal Frobenius norm
// drops below Tol·‖A‖_F. Zero fields select the defaults.
type Jacobi struct {
	Tol       float64
	MaxSweeps int
}

// Tridiagonal implements Solver.
// Complexity: O(d³) per sweep, typically 6–10 sweeps.
func (j Jacobi) Tridiagonal(diag, off []float64) (*Decomposition, error) {
	if err := validate("Jacobi.Tridiagonal", diag, off); err != nil {
		return nil, err
	}
	tol, maxSweeps := j.Tol, j.MaxSweeps
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultJacobiMaxSweeps
	}

	n := len(diag)
	a := make([]float64, n*n) // working copy, row-major
	v := make([]float64, n*n) // accumulated rotations, starts at I
	for i := 0; i < n; i++ {
		a[i*n+i] = diag[i]
		v[i*n+i] = 1
		if i+1 < n {
			a[i*n+i+1], a[(i+1)*n+i] = off[i], off[i]
		}
	}

	var (
		frob               = frobenius(a)
		sweep              int
		app, aqq, apq      float64
		theta, t, c, s     float64
		aip, aiq, vip, viq float64
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		if offNorm(a, n) <= tol*frob {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				apq = a[p*n+q]
				if apq == 0 {
					continue
				}
				app, aqq = a[p*n+p], a[q*n+q]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1 / math.Sqrt(t*t+1)
				s = t * c

				for i := 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, aiq = a[i*n+p], a[i*n+q]
					a[i*n+p] = c*aip - s*aiq
					a[p*n+i] = a[i*n+p]
					a[i*n+q] = s*aip + c*aiq
					a[q*n+i] = a[i*n+q]
				}
				a[p*n+p] = app - t*apq
				a[q*n+q] = aqq + t*apq
				a[p*n+q], a[q*n+p] = 0, 0

				for i := 0; i < n; i++ {
					vip, viq = v[i*n+p], v[i*n+q]
					v[i*n+p] = c*vip - s*viq
					v[i*n+q] = s*vip + c*viq
				}
			}
		}
	}
	if sweep == maxSweeps && offNorm(a, n) > tol*frob {
		return nil, fmt.Errorf("Jacobi.Tridiagonal: %d sweeps: %w", maxSweeps, ErrNoConvergence)
	}

	// Sort ascending, permuting eigenvector columns alongside.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return a[order[x]*n+order[x]] < a[order[y]*n+order[y]] })

	values := make([]float64, n)
	vecs := mat.NewDense(n, n, nil)
	for k, src := range order {
		values[k] = a[src*n+src]
		for i := 0; i < n; i++ {
			vecs.Set(i, k, v[i*n+src])
		}
	}

	return &Decomposition{Values: values, Vectors: vecs}, nil
}

func frobenius(a []float64) float64 {
	var sum float64
	for _, x := range a {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// offNorm returns the Frobenius norm of the strictly off-diagonal part.
func offNorm(a []float64, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				sum += a[i*n+j] * a[i*n+j]
			}
		}
	}

	return math.Sqrt(sum)
}
