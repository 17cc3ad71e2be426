// SPDX-License-Identifier: MIT

package sparse

import "errors"

var (
	// ErrInvalidInput indicates malformed construction input: triplet slices
	// of different lengths or a non-positive shape.
	ErrInvalidInput = errors.New("sparse: invalid input")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// operator's column (or row) count.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNotSquare indicates an operation that requires m == n.
	ErrNotSquare = errors.New("sparse: operator is not square")

	// ErrOutOfRange indicates an At(i, j) lookup outside the shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrTaylorRange indicates the truncated Taylor exponential was asked for
	// an argument outside its documented valid range, or diverged.
	ErrTaylorRange = errors.New("sparse: taylor series outside valid range")
)
