// SPDX-License-Identifier: MIT

// Package eigen is the boundary to the dense symmetric eigensolver the
// propagator depends on.
//
// The contract is narrow: given the diagonal and off-diagonal of a real
// symmetric tridiagonal matrix T of size d, return eigenvalues λ (ascending)
// and an orthogonal S whose column k is the eigenvector for λ[k], so that
// T·S = S·diag(λ).
//
// Two implementations satisfy Solver:
//   - Gonum: LAPACK-backed mat.EigenSym from gonum.org/v1/gonum. Default.
//   - Jacobi: cyclic Jacobi rotations on a dense copy. Slower (O(d³) per
//     sweep) but self-contained; useful as a cross-check.
package eigen
