package stateiter

import (
	"context"
	"errors"
)

// Sentinel errors for state-distribution iteration.
var (
	// ErrNilNext is returned when the transition function is nil.
	ErrNilNext = errors.New("stateiter: transition function is nil")

	// ErrNegativeRounds is returned for a negative round count.
	ErrNegativeRounds = errors.New("stateiter: round count cannot be negative")

	// ErrEmptyDistribution is returned when the starting distribution
	// holds no states.
	ErrEmptyDistribution = errors.New("stateiter: starting distribution is empty")
)

// Distribution maps each state to its multiplicity — the number of
// distinct evolutions currently occupying that state.
type Distribution[S comparable] map[S]uint64

// Total returns the sum of all multiplicities.
func (d Distribution[S]) Total() uint64 {
	var sum uint64
	for _, count := range d {
		sum += count
	}

	return sum
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Run.
type Options struct {
	// Ctx allows cancellation and deadlines; polled once per round.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Step applies one round of the branching transition to every state in
// states, merging the counts of successors that coincide. The input
// distribution is never mutated.
func Step[S comparable](states Distribution[S], next func(S) []S) Distribution[S] {
	out := make(Distribution[S], len(states))
	for state, count := range states {
		for _, succ := range next(state) {
			out[succ] += count
		}
	}

	return out
}

// Run simulates rounds successive applications of the branching
// transition starting from start, returning the final distribution.
//
// There is no cycle shortcutting here: with branching transitions the
// working set is a distribution, not a single orbit, so each round is
// evaluated directly and the aggregation of Step keeps the cost
// proportional to distinct states rather than total evolutions.
func Run[S comparable](start Distribution[S], next func(S) []S, rounds int, opts ...Option) (Distribution[S], error) {
	if next == nil {
		return nil, ErrNilNext
	}
	if rounds < 0 {
		return nil, ErrNegativeRounds
	}
	if len(start) == 0 {
		return nil, ErrEmptyDistribution
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Copy so round 0 already owns its distribution.
	cur := make(Distribution[S], len(start))
	for state, count := range start {
		cur[state] = count
	}

	for round := 0; round < rounds; round++ {
		// cancellation check (once per round)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur = Step(cur, next)
	}

	return cur, nil
}
