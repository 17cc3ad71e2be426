// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavekrylov/sparse"
)

// neighbourOffsets are the 4-connected lattice steps used by the 2D stencil.
var neighbourOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Kinetic returns the hopping strength k = ħ²/2m with ħ = 1.
func Kinetic(mass float64) float64 { return 0.5 / mass }

// Build assembles the Hamiltonian for potential on grid with particle mass.
// Options are forwarded to sparse.New (e.g. sparse.WithWorkers).
//
// Errors: ErrInvalidGrid (zero-value grid), ErrInvalidMass,
// ErrPotentialLength, ErrNonFinitePotential.
// Complexity: O(N log N) (triplet sort), N = grid size.
func Build(potential []float64, grid Grid, mass float64, opts ...sparse.Option) (*sparse.CSR, error) {
	if grid.Size() < 2 {
		return nil, fmt.Errorf("Build: grid %s: %w", grid, ErrInvalidGrid)
	}
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("Build: mass=%g: %w", mass, ErrInvalidMass)
	}
	if len(potential) != grid.Size() {
		return nil, fmt.Errorf("Build: len(V)=%d, N=%d: %w", len(potential), grid.Size(), ErrPotentialLength)
	}
	for i, v := range potential {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Build: V[%d]=%g: %w", i, v, ErrNonFinitePotential)
		}
	}

	if grid.Is2D() {
		return build2D(potential, grid, Kinetic(mass), opts)
	}

	return build1D(potential, grid.Size(), Kinetic(mass), opts)
}

// build1D emits the tridiagonal stencil with open ends.
func build1D(potential []float64, n int, k float64, opts []sparse.Option) (*sparse.CSR, error) {
	nnz := 3*n - 2
	rows := make([]int, 0, nnz)
	cols := make([]int, 0, nnz)
	vals := make([]float64, 0, nnz)
	for i := 0; i < n; i++ {
		rows = append(rows, i)
		cols = append(cols, i)
		vals = append(vals, potential[i]+2*k)
	}
	for i := 0; i+1 < n; i++ {
		rows = append(rows, i, i+1)
		cols = append(cols, i+1, i)
		vals = append(vals, -k, -k)
	}

	return sparse.New(n, n, rows, cols, vals, opts...)
}

// build2D emits the five-point stencil; neighbours come from (x, y), never
// from flat index arithmetic alone.
func build2D(potential []float64, g Grid, k float64, opts []sparse.Option) (*sparse.CSR, error) {
	n := g.Size()
	rows := make([]int, 0, 5*n)
	cols := make([]int, 0, 5*n)
	vals := make([]float64, 0, 5*n)
	var i, nxp, nyp int
	for y := 0; y < g.Ny(); y++ {
		for x := 0; x < g.Nx(); x++ {
			i = g.Index(x, y)
			rows = append(rows, i)
			cols = append(cols, i)
			vals = append(vals, potential[i]+4*k)
			for _, d := range neighbourOffsets {
				nxp, nyp = x+d[0], y+d[1]
				if !g.InBounds(nxp, nyp) {
					continue
				}
				rows = append(rows, i)
				cols = append(cols, g.Index(nxp, nyp))
				vals = append(vals, -k)
			}
		}
	}

	return sparse.New(n, n, rows, cols, vals, opts...)
}
