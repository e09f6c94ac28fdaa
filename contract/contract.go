package contract

import (
	"github.com/katalvlaran/orbit/cycle"
)

// ApplyN returns the state reached after applying next to start exactly n
// times, without performing n individual steps when n is large.
//
// Algorithm outline:
//  1. Simulate forward from start, recording every visited state in a
//     trace slice and a state→index map.
//  2. If n steps are taken before any repeat, the answer is trace[n] —
//     no cycle arithmetic involved. This branch also covers n < μ.
//  3. As soon as a state repeats, its earlier index is the pre-period μ
//     and the gap to the current step is the period λ (cycle detection
//     folded into the same pass; the trace is reused instead of running
//     a second simulation). The answer is trace[μ + ((n-μ) mod λ)],
//     an index guaranteed to lie within the recorded range [μ, μ+λ).
//
// n is a uint64 so targets far beyond any simulable horizon (10⁹–10¹⁸)
// are exact; nothing wraps. The modulo in step 3 only ever sees
// non-negative operands since n ≥ μ+λ holds on that branch.
//
// Returns ErrExhausted if MaxSteps transition applications were performed
// without reaching n or observing a repeat.
func ApplyN[S comparable](start S, next func(S) S, n uint64, opts ...Option) (S, error) {
	var zero S
	if next == nil {
		return zero, ErrNilNext
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return zero, o.err
	}

	// trace[i] is the state after i applications; seen maps a state back
	// to its step index for repeat detection.
	trace := []S{start}
	seen := map[S]int{start: 0}
	cur := start

	for uint64(len(trace))-1 < n {
		// cancellation check (once per step)
		select {
		case <-o.Ctx.Done():
			return zero, o.Ctx.Err()
		default:
		}
		if len(trace)-1 >= o.MaxSteps {
			return zero, ErrExhausted
		}

		cur = next(cur)
		if at, ok := seen[cur]; ok {
			// First repeat: the orbit enters its cycle at index at.
			mu, lam := at, len(trace)-at
			o.OnCycle(cycle.Info{Preperiod: mu, Period: lam})

			idx := mu + int((n-uint64(mu))%uint64(lam))

			return trace[idx], nil
		}
		seen[cur] = len(trace)
		trace = append(trace, cur)
	}

	// Reached n directly; includes targets inside the pre-periodic prefix.
	return trace[int(n)], nil
}
