// SPDX-License-Identifier: MIT

package refresh

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/propagator"
)

// Option configures a Stepper.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	observer   Observer
	id         uuid.UUID
	propagator []propagator.Option
}

func defaultOptions() options {
	return options{logger: zap.NewNop(), observer: NoopObserver{}}
}

// WithLogger routes refresh events to l, tagged with the session id.
// nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver installs a metrics hook. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithID fixes the session id instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// WithPropagator forwards options to every propagator.Initialize call.
func WithPropagator(opts ...propagator.Option) Option {
	return func(o *options) { o.propagator = append(o.propagator, opts...) }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	return o
}
