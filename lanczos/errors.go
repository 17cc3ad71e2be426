// SPDX-License-Identifier: MIT

package lanczos

import "errors"

var (
	// ErrZeroSeed indicates a seed with zero or non-finite norm.
	ErrZeroSeed = errors.New("lanczos: seed has zero norm")

	// ErrSeedLength indicates len(seed) does not match the operator size.
	ErrSeedLength = errors.New("lanczos: seed length does not match operator")

	// ErrInvalidDimension indicates d outside [1, N].
	ErrInvalidDimension = errors.New("lanczos: Krylov dimension out of range")

	// ErrNotSquare indicates a non-square operator.
	ErrNotSquare = errors.New("lanczos: operator is not square")

	// ErrDegenerateBasis indicates the Krylov basis could not be extended
	// (strict mode) or produced non-finite coefficients.
	ErrDegenerateBasis = errors.New("lanczos: degenerate Krylov basis")
)
