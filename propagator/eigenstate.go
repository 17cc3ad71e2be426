// SPDX-License-Identifier: MIT

package propagator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/lanczos"
	"github.com/katalvlaran/wavekrylov/ortho"
)

// Eigenstate is the outcome of FindEigenstate.
type Eigenstate struct {
	State field.State
	// Energy is the Ritz value of State.
	Energy float64
	// Residual is ‖H·State − Energy·State‖.
	Residual   float64
	Iterations int
	// Orthogonality describes the Krylov basis of the final iteration.
	Orthogonality ortho.Report
}

// FindEigenstate approximates an eigenstate of op by restarted Lanczos.
//
// Each iteration reduces op on the Krylov space of the current guess,
// diagonalises, and restarts from the normalised Ritz vector selected by
// WithTarget (0 = lowest). It stops after WithIterations restarts, or once
// the Ritz residual drops to WithTolerance. When a restart seed spans an
// invariant subspace too small to hold the target, the previous iterate is
// returned.
//
// Returns ErrTargetOutOfRange when the first reduction is already smaller
// than target+1; reduction and solver errors are returned wrapped.
func FindEigenstate(op lanczos.Operator, guess field.State, d int, opts ...Option) (*Eigenstate, error) {
	o := gatherOptions(opts)

	var (
		best      *Eigenstate
		ctx       *Context
		state     = guess
		psi, hpsi field.State
		err       error
	)
	for it := 1; it <= o.iterations; it++ {
		if ctx, err = Initialize(state, op, d, opts...); err != nil {
			return nil, fmt.Errorf("FindEigenstate: iteration %d: %w", it, err)
		}
		if o.target >= ctx.Dimension() {
			if best == nil {
				return nil, fmt.Errorf("FindEigenstate: target=%d, d=%d: %w", o.target, ctx.Dimension(), ErrTargetOutOfRange)
			}
			o.logger.Debug("eigenstate search reached an invariant subspace",
				zap.Int("iteration", it),
				zap.Int("effective", ctx.Dimension()),
			)
			break
		}

		if psi, err = ctx.RitzVector(o.target); err != nil {
			return nil, fmt.Errorf("FindEigenstate: %w", err)
		}
		if err = field.Normalize(psi); err != nil {
			return nil, fmt.Errorf("FindEigenstate: iteration %d: %w", it, lanczos.ErrDegenerateBasis)
		}
		energy := ctx.dec.Values[o.target]
		if hpsi, err = op.MulVec(psi); err != nil {
			return nil, fmt.Errorf("FindEigenstate: %w", err)
		}
		if err = field.SubScaled(hpsi, energy, 0, psi); err != nil {
			return nil, fmt.Errorf("FindEigenstate: %w", err)
		}

		best = &Eigenstate{
			State:         psi,
			Energy:        energy,
			Residual:      field.Norm(hpsi),
			Iterations:    it,
			Orthogonality: ortho.Check(ctx.basis, ortho.DefaultTolerance),
		}
		o.logger.Debug("eigenstate iteration",
			zap.Int("iteration", it),
			zap.Int("target", o.target),
			zap.Float64("energy", energy),
			zap.Float64("residual", best.Residual),
		)
		if best.Residual <= o.tolerance {
			break
		}
		state = psi
	}

	return best, nil
}
