// SPDX-License-Identifier: MIT

package refresh

import "errors"

var (
	// ErrInvalidPolicy indicates a negative budget or a policy with no budget.
	ErrInvalidPolicy = errors.New("refresh: invalid policy")

	// ErrInvalidTimeStep indicates a zero or non-finite dt.
	ErrInvalidTimeStep = errors.New("refresh: time step must be finite and non-zero")
)
