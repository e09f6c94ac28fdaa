// Package cycle detects the eventual periodicity of a deterministic
// state-transition function, returning the pre-period (μ) and period (λ)
// of the orbit of a starting state.
//
// 🚀 What is cycle detection?
//
//	Repeatedly applying a deterministic function f to a state x0 produces
//	the orbit x0, f(x0), f(f(x0)), … . Over a finite state space the orbit
//	must eventually revisit a state, after which it repeats forever:
//	  • μ (pre-period) — number of steps before the orbit enters its cycle
//	  • λ (period)     — length of the repeating cycle once entered
//	Knowing (μ, λ) turns "apply f a billion times" into a single modular
//	lookup; see the companion package contract.
//
// ✨ Key features:
//   - Brent's algorithm: one moving cursor with power-of-two checkpoints,
//     lower constant factor than Floyd's tortoise-and-hare
//   - generic over any comparable state type — no interface boxing
//   - minimal (μ, λ): no smaller pair satisfies the repeat condition
//   - bounded: a step budget turns "never cycles" into a clean error
//   - context cancellation honored inside the simulation loops
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/orbit/cycle"
//
//	next := func(x int) int { return (x * 2) % 7 }
//	info, err := cycle.Detect(1, next, cycle.WithMaxSteps(1000))
//	if err != nil {
//	  // handle ErrNilNext, ErrOptionViolation or ErrNoCycle
//	}
//	// info.Preperiod == 0, info.Period == 3  (orbit 1,2,4,1,2,4,…)
//
// Determinism is a hard precondition: next must be a pure, single-valued
// function of its argument. The package never mutates caller state.
//
// Complexity:
//
//   - Time:   O(μ + λ) applications of next (never proportional to any
//     large iteration target)
//   - Memory: O(1) — only a handful of cursor states are retained
//
// Errors:
//
//   - ErrNilNext          if the transition function is nil.
//   - ErrOptionViolation  if an invalid Option was supplied (MaxSteps < 1).
//   - ErrNoCycle          if no repeat was observed within the step budget.
package cycle
