// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/propagator"
)

func newStatesCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Find the lowest eigenstates of the configured Hamiltonian",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("count") {
				if count < 1 {
					return fmt.Errorf("states: --count must be >= 1")
				}
				a.cfg.Eigen.Count = count
			}
			return findStates(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "number of states from eigen.target upwards (overrides eigen.count)")

	return cmd
}

func findStates(w io.Writer, a *app) error {
	cfg := a.cfg
	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	h, err := cfg.BuildOperator(g)
	if err != nil {
		return err
	}
	guess, err := field.Random(g.Size(), cfg.Eigen.Seed)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(w, "k\tenergy\tresidual\titerations\torthonormal\tmax_overlap"); err != nil {
		return err
	}
	for k := cfg.Eigen.Target; k < cfg.Eigen.Target+cfg.Eigen.Count; k++ {
		es, err := propagator.FindEigenstate(h, guess, cfg.Krylov.Dimension, cfg.EigenOptions(a.logger, k)...)
		if err != nil {
			return fmt.Errorf("state %d: %w", k, err)
		}
		a.logger.Debug("eigenstate found", zap.Int("k", k), zap.Float64("energy", es.Energy))
		if _, err = fmt.Fprintf(w, "%d\t%.9f\t%.3e\t%d\t%t\t%.3e\n", k, es.Energy, es.Residual,
			es.Iterations, es.Orthogonality.Orthonormal, es.Orthogonality.MaxOverlap); err != nil {
			return err
		}
	}

	return nil
}
