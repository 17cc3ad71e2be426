// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
)

// Probability returns |ψ_i|² for every site.
func Probability(s State) []float64 {
	p := make([]float64, s.Len())
	for i := range p {
		p[i] = s.Re[i]*s.Re[i] + s.Im[i]*s.Im[i]
	}

	return p
}

// Centroid1D returns the probability-weighted mean site index
// Σ i·|ψ_i|² / Σ |ψ_i|². Returns ErrZeroNorm for a zero state.
func Centroid1D(s State) (float64, error) {
	var num, den, p float64
	for i := range s.Re {
		p = s.Re[i]*s.Re[i] + s.Im[i]*s.Im[i]
		num += float64(i) * p
		den += p
	}
	if den == 0 {
		return 0, fmt.Errorf("Centroid1D: %w", ErrZeroNorm)
	}

	return num / den, nil
}

// Marginals sums |ψ(x,y)|² over y (into mx) and over x (into my) for an
// nx×ny row-major state. For a two-particle state these are the single
// particle densities.
func Marginals(s State, nx, ny int) (mx, my []float64, err error) {
	if nx <= 0 || ny <= 0 || nx*ny != s.Len() {
		return nil, nil, fmt.Errorf("Marginals: %dx%d vs %d: %w", nx, ny, s.Len(), ErrInvalidShape)
	}
	mx = make([]float64, nx)
	my = make([]float64, ny)
	var p float64
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			p = s.Re[i]*s.Re[i] + s.Im[i]*s.Im[i]
			mx[x] += p
			my[y] += p
		}
	}

	return mx, my, nil
}

// Entanglement estimates how far an nx×ny state is from a product state.
// The amplitudes are summed along each axis to form ψx and ψy, the product
// ψx⊗ψy is normalised, and the result is 1 − |⟨ψ|ψx⊗ψy⟩|/‖ψ‖.
// 0 means separable (under this rank-1 estimate); values approach 1 as the
// state becomes strongly correlated.
func Entanglement(s State, nx, ny int) (float64, error) {
	if nx <= 0 || ny <= 0 || nx*ny != s.Len() {
		return 0, fmt.Errorf("Entanglement: %dx%d vs %d: %w", nx, ny, s.Len(), ErrInvalidShape)
	}
	px := State{Re: make([]float64, nx), Im: make([]float64, nx)}
	py := State{Re: make([]float64, ny), Im: make([]float64, ny)}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			px.Re[x] += s.Re[i]
			px.Im[x] += s.Im[i]
			py.Re[y] += s.Re[i]
			py.Im[y] += s.Im[i]
		}
	}
	prod, err := Separable(px, py)
	if err != nil {
		return 0, fmt.Errorf("Entanglement: %w", err)
	}
	nrm := Norm(s)
	if nrm == 0 {
		return 0, fmt.Errorf("Entanglement: %w", ErrZeroNorm)
	}
	re, im, err := Dot(s, prod)
	if err != nil {
		return 0, fmt.Errorf("Entanglement: %w", err)
	}

	return 1 - math.Hypot(re, im)/nrm, nil
}
