// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/hamiltonian"
	"github.com/katalvlaran/wavekrylov/refresh"
)

func newRunCmd(a *app) *cobra.Command {
	var steps, every int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve the configured wave packet and print its trajectory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 || every < 1 {
				return fmt.Errorf("run: --steps and --every must be >= 1")
			}
			return runSimulation(cmd.OutOrStdout(), a, steps, every)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 100, "number of frames to compute")
	cmd.Flags().IntVar(&every, "every", 10, "print every n-th frame")

	return cmd
}

func runSimulation(w io.Writer, a *app, steps, every int) error {
	cfg := a.cfg
	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	h, err := cfg.BuildOperator(g)
	if err != nil {
		return err
	}
	seed, err := cfg.BuildSeed(g)
	if err != nil {
		return err
	}

	obs := &refresh.BasicObserver{}
	st, err := refresh.NewStepper(seed, h, cfg.Krylov.Dimension, cfg.TimeStep, cfg.BuildPolicy(),
		refresh.WithLogger(a.logger),
		refresh.WithObserver(obs),
		refresh.WithPropagator(cfg.PropagatorOptions(nil)...),
	)
	if err != nil {
		return err
	}
	a.logger.Info("simulation started",
		zap.String("session", st.ID().String()),
		zap.Stringer("grid", g),
		zap.String("potential", cfg.Potential),
		zap.Int("dimension", st.Context().Dimension()),
		zap.Float64("energy", st.Context().Energy()),
	)

	if err = printHeader(w, g); err != nil {
		return err
	}
	if err = printFrame(w, g, 0, 0, seed); err != nil {
		return err
	}
	var psi field.State
	for i := 1; i <= steps; i++ {
		if psi, err = st.Step(); err != nil {
			return err
		}
		if i%every == 0 || i == steps {
			if err = printFrame(w, g, i, st.Time(), psi); err != nil {
				return err
			}
		}
	}

	s := obs.Stats()
	_, err = fmt.Fprintf(w, "# frames=%d refreshes=%d truncated=%d avg_query=%s avg_refresh=%s\n",
		s.QueryCount, st.Refreshes(), s.RefreshTruncated, s.QueryAvg, s.RefreshAvg)

	return err
}

func printHeader(w io.Writer, g hamiltonian.Grid) error {
	if g.Is2D() {
		_, err := fmt.Fprintln(w, "step\tt\tnorm\t<x>\t<y>\tentanglement")
		return err
	}
	_, err := fmt.Fprintln(w, "step\tt\tnorm\t<x>")

	return err
}

func printFrame(w io.Writer, g hamiltonian.Grid, step int, t float64, psi field.State) error {
	if !g.Is2D() {
		c, err := field.Centroid1D(psi)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%d\t%.3f\t%.9f\t%.3f\n", step, t, field.Norm(psi), c)
		return err
	}
	mx, my, err := field.Marginals(psi, g.Nx(), g.Ny())
	if err != nil {
		return err
	}
	ent, err := field.Entanglement(psi, g.Nx(), g.Ny())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d\t%.3f\t%.9f\t%.3f\t%.3f\t%.4f\n",
		step, t, field.Norm(psi), mean(mx), mean(my), ent)

	return err
}

// mean returns the centroid of a density.
func mean(p []float64) float64 {
	var num, den float64
	for i, v := range p {
		num += float64(i) * v
		den += v
	}
	if den == 0 {
		return 0
	}

	return num / den
}
