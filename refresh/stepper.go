// SPDX-License-Identifier: MIT

package refresh

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/lanczos"
	"github.com/katalvlaran/wavekrylov/propagator"
)

// Stepper advances a state in fixed time steps, rebuilding its context
// according to a Policy.
type Stepper struct {
	id        uuid.UUID
	ctx       *propagator.Context
	dt        float64
	policy    Policy
	local     int
	steps     int
	refreshes int
	observer  Observer
	logger    *zap.Logger
}

// NewStepper builds the first context from seed (Krylov dimension d) and
// returns a Stepper that advances by dt per Step.
//
// Errors: ErrInvalidTimeStep, ErrInvalidPolicy, or the wrapped
// propagator.Initialize error.
func NewStepper(seed field.State, op lanczos.Operator, d int, dt float64, policy Policy, opts ...Option) (*Stepper, error) {
	if dt == 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("NewStepper: dt=%g: %w", dt, ErrInvalidTimeStep)
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("NewStepper: %w", err)
	}
	o := gatherOptions(opts)
	logger := o.logger.With(zap.String("session", o.id.String()))

	popts := append([]propagator.Option{propagator.WithLogger(logger)}, o.propagator...)
	start := time.Now()
	ctx, err := propagator.Initialize(seed, op, d, popts...)
	if err != nil {
		o.observer.RecordRefresh(0, false, time.Since(start), err)
		return nil, fmt.Errorf("NewStepper: %w", err)
	}
	o.observer.RecordRefresh(ctx.Dimension(), ctx.Truncated(), time.Since(start), nil)
	logger.Debug("stepper started",
		zap.Float64("dt", dt),
		zap.Stringer("policy", policy),
		zap.Int("dimension", ctx.Dimension()),
	)

	return &Stepper{
		id:       o.id,
		ctx:      ctx,
		dt:       dt,
		policy:   policy,
		observer: o.observer,
		logger:   logger,
	}, nil
}

// Step evaluates the next frame at local time (k+1)·dt, where k frames were
// already served from the current context. When the policy then reports the
// context stale, the frame becomes the seed of a fresh context.
//
// On error no counters move and the Stepper keeps its previous context.
func (s *Stepper) Step() (field.State, error) {
	local := s.local + 1
	t := float64(local) * s.dt

	start := time.Now()
	state, err := s.ctx.StateAt(t)
	s.observer.RecordQuery(time.Since(start), err)
	if err != nil {
		return field.State{}, fmt.Errorf("Step: %w", err)
	}

	if s.policy.Stale(local, math.Abs(t)) {
		start = time.Now()
		next, err := s.ctx.Refresh(state)
		if err != nil {
			s.observer.RecordRefresh(0, false, time.Since(start), err)
			return field.State{}, fmt.Errorf("Step: %w", err)
		}
		s.observer.RecordRefresh(next.Dimension(), next.Truncated(), time.Since(start), nil)
		s.ctx = next
		s.refreshes++
		local = 0
		s.logger.Debug("basis refreshed",
			zap.Int("refresh", s.refreshes),
			zap.Float64("time", float64(s.steps+1)*s.dt),
			zap.Int("dimension", next.Dimension()),
			zap.Bool("truncated", next.Truncated()),
		)
	}
	s.local = local
	s.steps++

	return state, nil
}

// Time returns the total simulated time steps·dt.
func (s *Stepper) Time() float64 { return float64(s.steps) * s.dt }

// Steps returns the number of frames served.
func (s *Stepper) Steps() int { return s.steps }

// Refreshes returns how many times the context was rebuilt after NewStepper.
func (s *Stepper) Refreshes() int { return s.refreshes }

// Context returns the current context.
func (s *Stepper) Context() *propagator.Context { return s.ctx }

// ID returns the session id attached to every log line.
func (s *Stepper) ID() uuid.UUID { return s.id }

// Policy returns the refresh policy.
func (s *Stepper) Policy() Policy { return s.policy }
