// SPDX-License-Identifier: MIT

// Package field implements the discretised complex wavefunction used by the
// Krylov propagation engine.
//
// A State is a pair of equal-length real buffers (Re, Im); index i is the
// grid site i of a 1D grid or the row-major flattening y·Nx+x of a 2D grid.
//
// The package provides:
//   - the numeric primitives every other package builds on: Norm, Normalize,
//     Dot (⟨a|b⟩ = Σ conj(a)·b) and SubScaled (dst -= c·v);
//   - initial-state builders (Gaussian1D, Gaussian2D, Separable, Random);
//   - read-only diagnostics (Probability, Centroid1D, Marginals, Entanglement).
//
// Every builder returns a freshly allocated State; nothing here keeps global
// state, so independent simulations never share buffers.
//
//	psi, err := field.Gaussian1D(512, 256, 1.0, 5.0)
//	if err != nil { ... }
//	fmt.Println(field.Norm(psi)) // 1
package field
