// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrLengthMismatch indicates two states (or a state's Re/Im halves) differ in length.
	ErrLengthMismatch = errors.New("field: length mismatch")

	// ErrZeroNorm indicates a normalisation of a zero (or non-finite) vector.
	ErrZeroNorm = errors.New("field: zero or non-finite norm")

	// ErrInvalidLength indicates a non-positive state length was requested.
	ErrInvalidLength = errors.New("field: length must be > 0")

	// ErrInvalidWidth indicates a non-positive or non-finite packet width.
	ErrInvalidWidth = errors.New("field: packet width must be finite and > 0")

	// ErrInvalidShape indicates nx·ny does not match the state length.
	ErrInvalidShape = errors.New("field: shape does not match state length")
)
