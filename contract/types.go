// Package contract defines options and sentinel errors for path-contraction
// queries over deterministic transition functions.
package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/orbit/cycle"
)

// DefaultMaxSteps is the step budget used when WithMaxSteps is not
// supplied: one million transition applications per query.
const DefaultMaxSteps = 1_000_000

// Sentinel errors for path contraction.
var (
	// ErrNilNext is returned when the transition function is nil.
	ErrNilNext = errors.New("contract: transition function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("contract: invalid option supplied")

	// ErrExhausted is returned when the step budget runs out before the
	// query is answered — either no repeated state was observed (ApplyN)
	// or too many raw transition calls were needed (Shortcut). It is never
	// accompanied by a possibly-wrong state.
	ErrExhausted = errors.New("contract: step budget exhausted before target reached")
)

// Option configures a contraction query via functional arguments.
// An invalid Option (e.g. non-positive MaxSteps) is recorded internally
// and surfaced as ErrOptionViolation when the query is invoked.
type Option func(*Options)

// Options holds tunable parameters and callbacks for contraction queries.
type Options struct {
	// Ctx allows cancellation and deadlines; polled inside the
	// simulation loops.
	Ctx context.Context

	// MaxSteps bounds the number of transition applications one query may
	// perform. For ApplyN this caps the recorded trace; for Shortcut it
	// caps raw (non-memoized) transition calls.
	MaxSteps int

	// OnCycle is called once if the query discovers the orbit's
	// periodicity, receiving the (μ, λ) pair. Callers may cache the Info
	// across queries against the same start state and transition.
	OnCycle func(cycle.Info)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MaxSteps = DefaultMaxSteps
//   - no-op OnCycle hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: DefaultMaxSteps,
		OnCycle:  func(cycle.Info) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of transition applications.
//
//	s ≥ 1: budget of s applications
//	s < 1: invalid option → ErrOptionViolation
func WithMaxSteps(s int) Option {
	return func(o *Options) {
		if s < 1 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, s)
			return
		}
		o.MaxSteps = s
	}
}

// WithOnCycle registers a callback invoked with the discovered (μ, λ)
// when a query detects the orbit's cycle.
func WithOnCycle(fn func(cycle.Info)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCycle = fn
		}
	}
}
