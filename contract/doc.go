// Package contract evaluates the result of applying a deterministic
// state-transition function an enormous number of times (commonly billions)
// without performing each step individually.
//
// 🚀 What is path contraction?
//
//	Some problems define a transition rule and ask for the state after,
//	say, one billion applications. Simulating each step is infeasible, but
//	a deterministic transition over a finite state space must eventually
//	revisit a state — after which the orbit repeats forever. The infinite
//	tail of applications then collapses to a modular offset into the
//	recorded prefix:
//	  result(n) = trace[μ + ((n-μ) mod λ)]   for n ≥ μ
//	where μ is the pre-period and λ the period of the orbit.
//
// ✨ Key features:
//   - ApplyN: simulate once up to the first repeat, answer any n from the
//     recorded trace — O(μ+λ) transition calls regardless of n
//   - Shortcut: memoized combinable jumps (contraction-hierarchies style),
//     an alternative that never records the full trace
//   - generic over any comparable state type
//   - WithOnCycle hook to observe the discovered (μ, λ) for caching
//   - bounded: a step budget turns "never repeats" into a clean error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/orbit/contract"
//
//	next := func(x int) int { return (x * 2) % 7 }
//	state, err := contract.ApplyN(1, next, 1_000_000)
//	if err != nil {
//	  // handle ErrNilNext, ErrOptionViolation or ErrExhausted
//	}
//	// state == 2: the orbit 1,2,4,… has λ=3 and 1000000 mod 3 == 1
//
// Determinism is a hard precondition: next must be pure and single-valued.
// If the state space is effectively unbounded the orbit never repeats;
// supply WithMaxSteps and treat ErrExhausted as "not amenable to
// contraction", never as a wrong answer.
//
// Complexity:
//
//   - Time:   O(μ + λ) transition calls (ApplyN), independent of n
//   - Memory: O(μ + λ) recorded states for one query; nothing is shared
//     or retained across queries
//
// Errors:
//
//   - ErrNilNext          if the transition function is nil.
//   - ErrOptionViolation  if an invalid Option was supplied (MaxSteps < 1).
//   - ErrExhausted        if the budget ran out before reaching n or
//     finding a repeat.
package contract
