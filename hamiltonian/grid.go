// SPDX-License-Identifier: MIT

package hamiltonian

import "fmt"

// Grid is the immutable lattice a simulation runs on. A 1D grid of n sites
// has Nx = n, Ny = 1; a 2D grid is flattened row-major (index = y·Nx + x).
type Grid struct {
	nx, ny int
	dims   int
}

// NewGrid1D returns a 1D grid of n ≥ 2 sites.
func NewGrid1D(n int) (Grid, error) {
	if n < 2 {
		return Grid{}, fmt.Errorf("NewGrid1D(%d): %w", n, ErrInvalidGrid)
	}

	return Grid{nx: n, ny: 1, dims: 1}, nil
}

// NewGrid2D returns an nx×ny grid. Both sides must be ≥ 1 and nx·ny ≥ 2.
func NewGrid2D(nx, ny int) (Grid, error) {
	if nx < 1 || ny < 1 || nx*ny < 2 {
		return Grid{}, fmt.Errorf("NewGrid2D(%d,%d): %w", nx, ny, ErrInvalidGrid)
	}

	return Grid{nx: nx, ny: ny, dims: 2}, nil
}

// Nx returns the number of columns (sites along x).
func (g Grid) Nx() int { return g.nx }

// Ny returns the number of rows (1 for a 1D grid).
func (g Grid) Ny() int { return g.ny }

// Size returns the number of sites N = Nx·Ny.
func (g Grid) Size() int { return g.nx * g.ny }

// Is2D reports whether the grid was built with NewGrid2D.
func (g Grid) Is2D() bool { return g.dims == 2 }

// Index maps (x, y) to the flat site index y·Nx + x.
// The caller must ensure InBounds(x, y).
func (g Grid) Index(x, y int) int { return y*g.nx + x }

// Coords is the inverse of Index.
func (g Grid) Coords(i int) (x, y int) { return i % g.nx, i / g.nx }

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.nx && y >= 0 && y < g.ny
}

// String implements fmt.Stringer.
func (g Grid) String() string {
	if g.Is2D() {
		return fmt.Sprintf("%dx%d", g.nx, g.ny)
	}

	return fmt.Sprintf("%d", g.nx)
}
