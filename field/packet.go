// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
)

// Gaussian1D builds a normalised Gaussian wave packet on n sites:
//
//	ψ(i) = exp(−½((i−x0)/σ)²) · exp(i·p0·(i−x0))
//
// p0 is the carrier momentum in units of inverse grid spacing.
// Returns ErrInvalidLength (n <= 0), ErrInvalidWidth (σ <= 0 or non-finite)
// or ErrZeroNorm when the packet underflows on the grid.
func Gaussian1D(n int, x0, p0, sigma float64) (State, error) {
	if err := validWidth(sigma); err != nil {
		return State{}, fmt.Errorf("Gaussian1D: %w", err)
	}
	s, err := New(n)
	if err != nil {
		return State{}, fmt.Errorf("Gaussian1D: %w", err)
	}
	var dx, env float64
	for i := 0; i < n; i++ {
		dx = float64(i) - x0
		env = math.Exp(-0.5 * (dx / sigma) * (dx / sigma))
		s.Re[i] = env * math.Cos(p0*dx)
		s.Im[i] = env * math.Sin(p0*dx)
	}
	if err = Normalize(s); err != nil {
		return State{}, fmt.Errorf("Gaussian1D: %w", err)
	}

	return s, nil
}

// Gaussian2D builds a normalised isotropic Gaussian packet on an nx×ny grid
// flattened row-major (index = y·nx + x), carrying momentum (px, py).
func Gaussian2D(nx, ny int, x0, y0, px, py, sigma float64) (State, error) {
	if err := validWidth(sigma); err != nil {
		return State{}, fmt.Errorf("Gaussian2D: %w", err)
	}
	if nx <= 0 || ny <= 0 {
		return State{}, fmt.Errorf("Gaussian2D: %dx%d: %w", nx, ny, ErrInvalidLength)
	}
	s, err := New(nx * ny)
	if err != nil {
		return State{}, fmt.Errorf("Gaussian2D: %w", err)
	}
	var dx, dy, env, phase float64
	inv := 1 / (sigma * sigma)
	for y := 0; y < ny; y++ {
		dy = float64(y) - y0
		for x := 0; x < nx; x++ {
			dx = float64(x) - x0
			env = math.Exp(-0.5 * (dx*dx + dy*dy) * inv)
			phase = px*dx + py*dy
			s.Re[y*nx+x] = env * math.Cos(phase)
			s.Im[y*nx+x] = env * math.Sin(phase)
		}
	}
	if err = Normalize(s); err != nil {
		return State{}, fmt.Errorf("Gaussian2D: %w", err)
	}

	return s, nil
}

// Separable builds the normalised product state Ψ(x, y) = ψx(x)·ψy(y) on a
// len(ψx)×len(ψy) grid. Read as a two-particle wavefunction on a 1D line,
// x and y are the coordinates of the two particles and the result is
// unentangled by construction.
func Separable(psiX, psiY State) (State, error) {
	nx, ny := psiX.Len(), psiY.Len()
	s, err := New(nx * ny)
	if err != nil {
		return State{}, fmt.Errorf("Separable: %w", err)
	}
	var a, b, c, d float64
	for y := 0; y < ny; y++ {
		c, d = psiY.Re[y], psiY.Im[y]
		for x := 0; x < nx; x++ {
			a, b = psiX.Re[x], psiX.Im[x]
			s.Re[y*nx+x] = a*c - b*d
			s.Im[y*nx+x] = a*d + b*c
		}
	}
	if err = Normalize(s); err != nil {
		return State{}, fmt.Errorf("Separable: %w", err)
	}

	return s, nil
}

// Random returns a normalised state with components drawn uniformly from
// [−½, ½). The same seed always yields the same state (seed 0 maps to a
// fixed default). Used as an unbiased starting guess for eigenstate search.
func Random(n int, seed int64) (State, error) {
	s, err := New(n)
	if err != nil {
		return State{}, fmt.Errorf("Random: %w", err)
	}
	rng := rngFromSeed(seed)
	for i := 0; i < n; i++ {
		s.Re[i] = rng.Float64() - 0.5
		s.Im[i] = rng.Float64() - 0.5
	}
	if err = Normalize(s); err != nil {
		return State{}, fmt.Errorf("Random: %w", err)
	}

	return s, nil
}

func validWidth(sigma float64) error {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return ErrInvalidWidth
	}

	return nil
}
