// SPDX-License-Identifier: MIT

// Package wavekrylov evolves discretised quantum wavefunctions with
// Krylov-subspace methods.
//
// A state on a 1D chain or a 2D grid (which doubles as two particles on a
// line) is evolved under a sparse Schrödinger Hamiltonian H by reducing H
// to a small tridiagonal matrix with Lanczos, diagonalising that, and
// reconstructing exp(−i·t·H)·ψ spectrally. A refresh policy rebuilds the
// basis before the approximation goes stale, and the same machinery
// extracts eigenstates by restarted Lanczos.
//
// Packages, bottom-up:
//
//	field/       - complex State, norms and inner products, wave packets, diagnostics
//	sparse/      - CSR operator, (parallel) complex MulVec, legacy Taylor propagator
//	hamiltonian/ - 1D/2D grids, kinetic + potential operator, potential presets
//	ortho/       - modified Gram-Schmidt projection, orthogonality report
//	eigen/       - symmetric tridiagonal eigensolvers (gonum, Jacobi)
//	lanczos/     - Krylov basis and tridiagonal reduction with breakdown handling
//	propagator/  - Context, StateAt, Refresh, Ritz vectors, FindEigenstate
//	refresh/     - refresh Policy, frame Stepper, metrics Observer
//	config/      - YAML simulation description
//	cmd/krylovsim - command-line driver
//
// Quick example:
//
//	grid, _ := hamiltonian.NewGrid1D(512)
//	h, _ := hamiltonian.Build(make([]float64, 512), grid, 1)
//	psi, _ := field.Gaussian1D(512, 256, 1, 5)
//	ctx, _ := propagator.Initialize(psi, h, 20)
//	later, _ := ctx.StateAt(4)
//
// Units: ħ = 1 and unit grid spacing, so the kinetic hopping is 1/(2m).
package wavekrylov
