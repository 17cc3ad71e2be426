// SPDX-License-Identifier: MIT

// Package ortho implements the modified Gram-Schmidt projection used by the
// Lanczos reduction, and an orthonormality diagnostic for finished bases.
//
// Project serves two roles with one flag:
//   - normalize=false: remove every basis component and return the residual
//     norm (the Lanczos β coefficient), leaving the residual un-normalised;
//   - normalize=true: the same, then scale the residual to unit length so it
//     can be appended to the basis.
//
// Calling Project twice in a row is the classical "twice is enough"
// re-orthogonalisation.
package ortho
