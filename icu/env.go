package icu

import (
	"go.uber.org/zap"

	"github.com/wippyai/icu4x-go/capi"
)

// Env binds wrappers to one boundary. Every wrapper created through an
// Env calls back into the same boundary for accessors and destruction.
type Env struct {
	b      capi.Boundary
	logger *zap.Logger
}

// Option configures an Env.
type Option func(*Env)

// WithLogger sets the logger for wrapper lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(e *Env) {
		e.logger = l
	}
}

// New creates an Env over b.
func New(b capi.Boundary, opts ...Option) *Env {
	e := &Env{
		b:      b,
		logger: Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Boundary returns the boundary this Env calls.
func (e *Env) Boundary() capi.Boundary {
	return e.b
}
