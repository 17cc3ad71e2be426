// SPDX-License-Identifier: MIT

package propagator

import "errors"

// ErrTargetOutOfRange indicates a Ritz index outside [0, effective dimension).
var ErrTargetOutOfRange = errors.New("propagator: Ritz index out of range")
