// SPDX-License-Identifier: MIT

package eigen

import "errors"

var (
	// ErrEmpty indicates a zero-size matrix.
	ErrEmpty = errors.New("eigen: empty matrix")

	// ErrShape indicates len(off) != len(diag)-1.
	ErrShape = errors.New("eigen: off-diagonal length must be len(diag)-1")

	// ErrNonFinite indicates a NaN or ±Inf entry.
	ErrNonFinite = errors.New("eigen: NaN or Inf entry")

	// ErrNoConvergence indicates the solver gave up before converging.
	ErrNoConvergence = errors.New("eigen: decomposition did not converge")
)
