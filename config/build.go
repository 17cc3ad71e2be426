// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/eigen"
	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/hamiltonian"
	"github.com/katalvlaran/wavekrylov/lanczos"
	"github.com/katalvlaran/wavekrylov/propagator"
	"github.com/katalvlaran/wavekrylov/refresh"
	"github.com/katalvlaran/wavekrylov/sparse"
)

// BuildGrid returns the configured lattice.
func (c *Config) BuildGrid() (hamiltonian.Grid, error) {
	if c.Is2D() {
		return hamiltonian.NewGrid2D(c.Grid.Nx, c.Grid.Ny)
	}

	return hamiltonian.NewGrid1D(c.Grid.Nx)
}

// BuildPotential evaluates the named preset on g.
func (c *Config) BuildPotential(g hamiltonian.Grid) ([]float64, error) {
	return hamiltonian.PotentialFor(c.Potential, g)
}

// BuildOperator assembles the Hamiltonian with the configured worker count.
func (c *Config) BuildOperator(g hamiltonian.Grid) (*sparse.CSR, error) {
	v, err := c.BuildPotential(g)
	if err != nil {
		return nil, err
	}

	return hamiltonian.Build(v, g, c.Mass, sparse.WithWorkers(c.Workers))
}

// BuildSeed returns the normalised initial state on g.
func (c *Config) BuildSeed(g hamiltonian.Grid) (field.State, error) {
	p := c.Packet
	if !g.Is2D() {
		return field.Gaussian1D(g.Nx(), p.X0, p.Px, p.Sigma)
	}
	if p.Kind != PacketSeparable {
		return field.Gaussian2D(g.Nx(), g.Ny(), p.X0, p.Y0, p.Px, p.Py, p.Sigma)
	}
	a, err := field.Gaussian1D(g.Nx(), p.X0, p.Px, p.Sigma)
	if err != nil {
		return field.State{}, fmt.Errorf("BuildSeed: particle 1: %w", err)
	}
	b, err := field.Gaussian1D(g.Ny(), p.Y0, p.Py, p.Sigma)
	if err != nil {
		return field.State{}, fmt.Errorf("BuildSeed: particle 2: %w", err)
	}

	return field.Separable(a, b)
}

// BuildPolicy returns the refresh policy.
func (c *Config) BuildPolicy() refresh.Policy { return c.Refresh }

// BuildSolver returns the configured eigensolver.
func (c *Config) BuildSolver() eigen.Solver {
	if c.Krylov.Solver == SolverJacobi {
		return eigen.Jacobi{}
	}

	return eigen.Gonum{}
}

// PropagatorOptions assembles the solver, Lanczos and logging options.
func (c *Config) PropagatorOptions(logger *zap.Logger) []propagator.Option {
	lopts := []lanczos.Option{lanczos.WithBreakdownTol(c.Krylov.BreakdownTol)}
	if c.Krylov.Strict {
		lopts = append(lopts, lanczos.WithStrict())
	}

	return []propagator.Option{
		propagator.WithSolver(c.BuildSolver()),
		propagator.WithLogger(logger),
		propagator.WithLanczos(lopts...),
	}
}

// EigenOptions extends PropagatorOptions with the eigenstate search settings
// for Ritz index target.
func (c *Config) EigenOptions(logger *zap.Logger, target int) []propagator.Option {
	return append(c.PropagatorOptions(logger),
		propagator.WithTarget(target),
		propagator.WithIterations(c.Eigen.Iterations),
		propagator.WithTolerance(c.Eigen.Tolerance),
	)
}
