// SPDX-License-Identifier: MIT

package lanczos

import (
	"math"

	"go.uber.org/zap"
)

// DefaultBreakdownTol is the relative residual below which the Krylov space
// is considered exhausted. The threshold scales with max(1, max|α|+β) seen
// so far so that it tracks the operator's magnitude.
const DefaultBreakdownTol = 1e-10

const panicBreakdownTol = "lanczos: WithBreakdownTol: tolerance must be finite and >= 0"

// Option configures Reduce.
type Option func(*options)

type options struct {
	breakdownTol float64
	strict       bool
	logger       *zap.Logger
}

func defaultOptions() options {
	return options{breakdownTol: DefaultBreakdownTol, logger: zap.NewNop()}
}

// WithBreakdownTol overrides DefaultBreakdownTol.
// Panics on a negative or non-finite tolerance.
func WithBreakdownTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicBreakdownTol)
	}

	return func(o *options) { o.breakdownTol = tol }
}

// WithStrict makes breakdown an ErrDegenerateBasis error instead of a
// truncation.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger routes debug events (breakdown, truncation) to l.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
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
