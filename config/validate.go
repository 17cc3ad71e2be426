// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/katalvlaran/wavekrylov/hamiltonian"
)

// Validate checks every field and reports all problems at once; each is
// wrapped around ErrInvalid (or the package error it came from).
func (c *Config) Validate() error {
	var err error
	bad := func(field string, v any) {
		err = multierr.Append(err, fmt.Errorf("%s=%v: %w", field, v, ErrInvalid))
	}

	if c.Grid.Nx < 1 || c.Grid.Ny < 1 || c.Grid.Nx*c.Grid.Ny < 2 {
		bad("grid", fmt.Sprintf("%dx%d", c.Grid.Nx, c.Grid.Ny))
	}
	if !(c.Mass > 0) || math.IsInf(c.Mass, 0) {
		bad("mass", c.Mass)
	}
	if c.Grid.Nx >= 1 && c.Grid.Ny >= 1 {
		if !hasPreset(c.Potential, c.Is2D()) {
			bad("potential", c.Potential)
		}
		if d := c.Krylov.Dimension; d < 1 || d > c.Grid.Nx*c.Grid.Ny {
			bad("krylov.dimension", d)
		}
	}
	switch c.Packet.Kind {
	case PacketGaussian:
	case PacketSeparable:
		if !c.Is2D() {
			bad("packet.kind", c.Packet.Kind+" (needs ny > 1)")
		}
	default:
		bad("packet.kind", c.Packet.Kind)
	}
	if !(c.Packet.Sigma > 0) || math.IsInf(c.Packet.Sigma, 0) {
		bad("packet.sigma", c.Packet.Sigma)
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"packet.x0", c.Packet.X0},
		{"packet.y0", c.Packet.Y0},
		{"packet.px", c.Packet.Px},
		{"packet.py", c.Packet.Py},
	} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			bad(p.name, p.v)
		}
	}
	if c.Krylov.BreakdownTol < 0 || math.IsNaN(c.Krylov.BreakdownTol) || math.IsInf(c.Krylov.BreakdownTol, 0) {
		bad("krylov.breakdown_tol", c.Krylov.BreakdownTol)
	}
	if c.Krylov.Solver != SolverGonum && c.Krylov.Solver != SolverJacobi {
		bad("krylov.solver", c.Krylov.Solver)
	}
	if c.TimeStep == 0 || math.IsNaN(c.TimeStep) || math.IsInf(c.TimeStep, 0) {
		bad("time_step", c.TimeStep)
	}
	if perr := c.Refresh.Validate(); perr != nil {
		err = multierr.Append(err, perr)
	}
	if c.Eigen.Target < 0 {
		bad("eigen.target", c.Eigen.Target)
	}
	if c.Eigen.Count < 1 {
		bad("eigen.count", c.Eigen.Count)
	}
	if c.Eigen.Iterations < 1 {
		bad("eigen.iterations", c.Eigen.Iterations)
	}
	if c.Eigen.Tolerance < 0 || math.IsNaN(c.Eigen.Tolerance) || math.IsInf(c.Eigen.Tolerance, 0) {
		bad("eigen.tolerance", c.Eigen.Tolerance)
	}
	if c.Workers < 1 {
		bad("workers", c.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		bad("logging.level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		bad("logging.format", c.Logging.Format)
	}

	return err
}

func hasPreset(name string, twoD bool) bool {
	presets := hamiltonian.Presets1D()
	if twoD {
		presets = hamiltonian.Presets2D()
	}
	for _, p := range presets {
		if p == name {
			return true
		}
	}

	return false
}
