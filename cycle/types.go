// Package cycle defines options, sentinel errors and the Info result type
// for cycle detection over deterministic transition functions.
package cycle

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxSteps is the step budget used when WithMaxSteps is not supplied:
// one million applications of the transition function.
const DefaultMaxSteps = 1_000_000

// Sentinel errors for cycle detection.
var (
	// ErrNilNext is returned when the transition function is nil.
	ErrNilNext = errors.New("cycle: transition function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")

	// ErrNoCycle is returned when the step budget is exhausted before any
	// repeated state is observed. The orbit may still cycle beyond the
	// budget; raising MaxSteps is a deliberate caller decision, never an
	// automatic retry.
	ErrNoCycle = errors.New("cycle: no cycle found within step budget")
)

// Info describes the eventual periodicity of an orbit.
//
// Invariants: Preperiod ≥ 0, Period ≥ 1, both minimal — the state reached
// after Preperiod steps equals the state reached after Preperiod+Period
// steps, and no smaller pair satisfies that condition.
type Info struct {
	// Preperiod (μ) is the number of steps before the orbit enters its cycle.
	Preperiod int

	// Period (λ) is the length of the repeating cycle once entered.
	Period int
}

// Option configures cycle detection via functional arguments.
// An invalid Option (e.g. non-positive MaxSteps) is recorded internally
// and surfaced as ErrOptionViolation when Detect is invoked.
type Option func(*Options)

// Options holds tunable parameters for cycle detection.
type Options struct {
	// Ctx allows cancellation and deadlines; polled inside the
	// simulation loops.
	Ctx context.Context

	// MaxSteps bounds the transition applications spent searching for a
	// repeat (roughly 2(μ+λ) are needed), so size the budget against the
	// largest orbit expected. Locating μ after a repeat is confirmed is
	// guaranteed to terminate and is not charged.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MaxSteps = DefaultMaxSteps
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: DefaultMaxSteps,
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
