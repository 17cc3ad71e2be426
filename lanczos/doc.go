// SPDX-License-Identifier: MIT

// Package lanczos reduces a Hermitian operator to a small real symmetric
// tridiagonal matrix on a Krylov subspace.
//
// Starting from a seed v0, Reduce builds an orthonormal basis
// Q = {q₀ … q_{d−1}} of span{v0, Hv0, …, H^{d−1}v0} together with
// T = QᴴHQ, which for Hermitian H is tridiagonal with real diagonal alphas
// and real off-diagonal betas. Every new Krylov vector is orthogonalised
// twice against the whole basis (full modified Gram-Schmidt
// re-orthogonalisation), so the basis stays orthonormal to ~1e-12 even
// for d in the hundreds.
//
// Breakdown: when the residual after step i is negligible the Krylov
// space is exhausted (the seed lies in an invariant subspace of
// dimension i+1). By default the reduction stops there and reports the
// effective dimension; WithStrict turns that into ErrDegenerateBasis.
//
// Complexity: d operator applications plus O(d²·N) for the
// re-orthogonalisation. Memory: d+1 vectors of length N.
package lanczos
