// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"
	"math"
	"sort"
)

// Potential1D preset names.
const (
	Free     = "free"     // V = 0
	Low      = "low"      // barrier of height 0.5 just right of centre
	High     = "high"     // barrier of height 1 just right of centre
	Well     = "well"     // height-1 walls outside the central 40%
	Harmonic = "harmonic" // 1e-5·(i − n/2)²
	DeepWell = "deepwell" // height-50 walls outside (3n/8, 5n/8)
	Mexican  = "mexican"  // 0.01·(x² − 1)², x = (i − n/2)/50
)

// Potential2D preset names. Box, Attraction and Repulsion read the two axes
// as the 1D coordinates of two particles.
const (
	HighWall   = "highwall"   // vertical wall of height 1 at mid-x
	LowWall    = "lowwall"    // vertical wall of height 0.3 at mid-x
	OneSlit    = "oneslit"    // wall with a single central opening
	TwoSlit    = "twoslit"    // wall with two openings
	Box        = "box"        // independent square well for each particle
	Attraction = "attraction" // −2/(|x−y|+1)
	Repulsion  = "repulsion"  // +2/(|x−y|+1)
)

var presets1D = map[string]func(n int) []float64{
	Free: func(n int) []float64 { return make([]float64, n) },
	Low:  func(n int) []float64 { return barrier1D(n, 0.5) },
	High: func(n int) []float64 { return barrier1D(n, 1) },
	Well: func(n int) []float64 {
		v := make([]float64, n)
		lo, hi := n*156/512, n*356/512
		for i := range v {
			if i < lo || i >= hi {
				v[i] = 1
			}
		}
		return v
	},
	Harmonic: func(n int) []float64 {
		v := make([]float64, n)
		c := float64(n) / 2
		for i := range v {
			d := float64(i) - c
			v[i] = 1e-5 * d * d
		}
		return v
	},
	DeepWell: func(n int) []float64 {
		v := make([]float64, n)
		lo, hi := 3*float64(n)/8, 5*float64(n)/8
		for i := range v {
			if f := float64(i); f <= lo || f >= hi {
				v[i] = 50
			}
		}
		return v
	},
	Mexican: func(n int) []float64 {
		v := make([]float64, n)
		c := float64(n) / 2
		for i := range v {
			x := (float64(i) - c) / 50
			v[i] = 0.01 * (x*x - 1) * (x*x - 1)
		}
		return v
	},
}

// barrier1D places a barrier over [270/512·n, 280/512·n).
func barrier1D(n int, height float64) []float64 {
	v := make([]float64, n)
	for i := n * 270 / 512; i < n*280/512; i++ {
		v[i] = height
	}

	return v
}

var presets2D = map[string]func(g Grid) []float64{
	Free:     func(g Grid) []float64 { return make([]float64, g.Size()) },
	HighWall: func(g Grid) []float64 { return wall2D(g, 1, func(float64) bool { return true }) },
	LowWall:  func(g Grid) []float64 { return wall2D(g, 0.3, func(float64) bool { return true }) },
	OneSlit: func(g Grid) []float64 {
		c := 0.5 * float64(g.Ny())
		return wall2D(g, 1, func(y float64) bool { return y < c-2 || y > c+2 })
	},
	TwoSlit: func(g Grid) []float64 {
		c := 0.5 * float64(g.Ny())
		return wall2D(g, 1, func(y float64) bool {
			return y < c-6 || (y > c-2 && y < c+2) || y > c+6
		})
	},
	Box: func(g Grid) []float64 {
		v := make([]float64, g.Size())
		cx, cy := float64(g.Nx())/2, float64(g.Ny())/2
		hx, hy := 0.3*float64(g.Nx()), 0.3*float64(g.Ny())
		for i := range v {
			x, y := g.Coords(i)
			if math.Abs(float64(x)-cx) > hx || math.Abs(float64(y)-cy) > hy {
				v[i] = 1
			}
		}
		return v
	},
	Attraction: func(g Grid) []float64 { return coupling2D(g, -2) },
	Repulsion:  func(g Grid) []float64 { return coupling2D(g, 2) },
}

// wall2D raises a 5-site-thick vertical wall around mid-x, keeping only rows
// for which solid(y) is true.
func wall2D(g Grid, height float64, solid func(y float64) bool) []float64 {
	v := make([]float64, g.Size())
	c := 0.5 * float64(g.Nx())
	for i := range v {
		x, y := g.Coords(i)
		if fx := float64(x); fx > c-3 && fx < c+3 && solid(float64(y)) {
			v[i] = height
		}
	}

	return v
}

// coupling2D is the regularised inverse-distance interaction s/(|x−y|+1).
func coupling2D(g Grid, s float64) []float64 {
	v := make([]float64, g.Size())
	for i := range v {
		x, y := g.Coords(i)
		v[i] = s / (math.Abs(float64(x-y)) + 1)
	}

	return v
}

// Potential1D returns the named 1D preset sampled on n sites.
func Potential1D(name string, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("Potential1D(%q, %d): %w", name, n, ErrInvalidGrid)
	}
	fn, ok := presets1D[name]
	if !ok {
		return nil, fmt.Errorf("Potential1D(%q): %w", name, ErrUnknownPotential)
	}

	return fn(n), nil
}

// Potential2D returns the named 2D preset sampled on g.
func Potential2D(name string, g Grid) ([]float64, error) {
	if g.Size() < 2 {
		return nil, fmt.Errorf("Potential2D(%q): %w", name, ErrInvalidGrid)
	}
	fn, ok := presets2D[name]
	if !ok {
		return nil, fmt.Errorf("Potential2D(%q): %w", name, ErrUnknownPotential)
	}

	return fn(g), nil
}

// PotentialFor dispatches to Potential1D or Potential2D based on the grid.
func PotentialFor(name string, g Grid) ([]float64, error) {
	if g.Is2D() {
		return Potential2D(name, g)
	}

	return Potential1D(name, g.Size())
}

// Presets1D lists the 1D preset names in sorted order.
func Presets1D() []string { return sortedKeys(presets1D) }

// Presets2D lists the 2D preset names in sorted order.
func Presets2D() []string { return sortedKeys(presets2D) }

func sortedKeys[F any](m map[string]F) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
