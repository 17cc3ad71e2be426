// SPDX-License-Identifier: MIT

package ortho

import "errors"

var (
	// ErrZeroResidual indicates normalisation was requested for a residual
	// that vanished (the state lay inside the span of the basis).
	ErrZeroResidual = errors.New("ortho: residual norm is zero")

	// ErrLengthMismatch indicates a basis vector whose length differs from the state.
	ErrLengthMismatch = errors.New("ortho: basis vector length mismatch")
)
