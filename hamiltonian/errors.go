// SPDX-License-Identifier: MIT

package hamiltonian

import "errors"

var (
	// ErrInvalidGrid indicates a grid with fewer than 2 sites or a non-positive side.
	ErrInvalidGrid = errors.New("hamiltonian: invalid grid")

	// ErrInvalidMass indicates a mass that is not finite and > 0.
	ErrInvalidMass = errors.New("hamiltonian: mass must be finite and > 0")

	// ErrPotentialLength indicates len(potential) != grid size.
	ErrPotentialLength = errors.New("hamiltonian: potential length does not match grid")

	// ErrNonFinitePotential indicates a NaN or ±Inf potential value.
	ErrNonFinitePotential = errors.New("hamiltonian: potential contains NaN or Inf")

	// ErrUnknownPotential indicates an unsupported preset name.
	ErrUnknownPotential = errors.New("hamiltonian: unknown potential preset")
)
