// SPDX-License-Identifier: MIT

// Package propagator evolves a state under exp(−i·t·H) using a Lanczos
// basis and the eigendecomposition of its tridiagonal projection.
//
// With Q the Krylov basis from seed x and T = S·Λ·Sᵀ:
//
//	exp(−i·t·H)·x ≈ ‖x‖ · Q · S · exp(−i·t·Λ) · Sᵀ · e₁
//
// Initialize pays for the reduction and the eigensolve once; StateAt is then
// O(d² + d·N) per query and exact at t = 0 up to rounding. Accuracy degrades
// as t grows relative to d / ‖H‖, which is what Refresh is for: it rebuilds
// the context around a new seed, typically the latest evolved state.
//
// The same machinery yields Ritz vectors (approximate eigenstates), and
// FindEigenstate restarts the reduction from a Ritz vector until it
// converges.
//
// A Context is immutable after Initialize and may be shared for reading;
// it is not synchronised otherwise.
package propagator
