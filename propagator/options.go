// SPDX-License-Identifier: MIT

package propagator

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/eigen"
	"github.com/katalvlaran/wavekrylov/lanczos"
)

// Eigenstate search defaults.
const (
	DefaultIterations     = 10
	DefaultEigenTolerance = 1e-8
	DefaultTarget         = 0
)

const (
	panicIterationsInvalid = "propagator: WithIterations: iterations must be >= 1"
	panicTargetInvalid     = "propagator: WithTarget: target must be >= 0"
	panicToleranceInvalid  = "propagator: WithTolerance: tolerance must be finite and >= 0"
)

// Option configures Initialize and FindEigenstate.
type Option func(*options)

type options struct {
	solver     eigen.Solver
	logger     *zap.Logger
	reduce     []lanczos.Option
	target     int
	iterations int
	tolerance  float64
}

func defaultOptions() options {
	return options{
		solver:     eigen.Gonum{},
		logger:     zap.NewNop(),
		target:     DefaultTarget,
		iterations: DefaultIterations,
		tolerance:  DefaultEigenTolerance,
	}
}

// WithSolver replaces the default eigen.Gonum solver. nil is ignored.
func WithSolver(s eigen.Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithLogger routes debug events to l; the logger is also handed to the
// Lanczos reduction. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLanczos forwards options to every lanczos.Reduce call.
func WithLanczos(opts ...lanczos.Option) Option {
	return func(o *options) { o.reduce = append(o.reduce, opts...) }
}

// WithTarget selects the Ritz index FindEigenstate converges to
// (0 = lowest energy). Panics when k < 0.
func WithTarget(k int) Option {
	if k < 0 {
		panic(panicTargetInvalid)
	}

	return func(o *options) { o.target = k }
}

// WithIterations caps the number of restarts in FindEigenstate.
// Panics when n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *options) { o.iterations = n }
}

// WithTolerance stops FindEigenstate once ‖Hψ − λψ‖ ≤ r. Zero disables the
// early stop. Panics on a negative or non-finite r.
func WithTolerance(r float64) Option {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = r }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// reduceOptions prepends the logger so explicit WithLanczos(WithLogger(...))
// still wins.
func (o options) reduceOptions() []lanczos.Option {
	return append([]lanczos.Option{lanczos.WithLogger(o.logger)}, o.reduce...)
}
