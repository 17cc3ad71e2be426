// SPDX-License-Identifier: MIT

// Package hamiltonian discretises the single-particle Schrödinger operator
//
//	H = −(ħ²/2m)∇² + V
//
// on a 1D or 2D grid (ħ = 1, unit spacing) as a sparse.CSR operator.
//
// 1D (open boundaries):
//
//	H[i][i]   = V[i] + 2k
//	H[i][i±1] = −k,            k = 1/(2m)
//
// 2D (Nx×Ny flattened row-major, index = y·Nx + x):
//
//	H[i][i]         = V[i] + 4k
//	H[i][neighbour] = −k      for the in-bounds neighbours x±1, y±1
//
// Neighbours are resolved from 2D coordinates, so the last site of a row is
// never linked to the first site of the next one.
//
// The package also ships the named potential landscapes used by the demo
// driver (barriers, wells, slits, two-particle couplings).
package hamiltonian
