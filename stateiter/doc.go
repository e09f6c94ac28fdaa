// Package stateiter iterates a branching transition function over a
// weighted multiset of states, aggregating the multiplicity of equal
// states after every round.
//
// 🚀 What is state-distribution iteration?
//
//	Instead of tracking one state, track how many ways each state can be
//	reached. A round applies the transition to every state in the
//	distribution; a transition may branch into several successor states,
//	and successors that coincide merge by adding their counts. After n
//	rounds the distribution answers questions like "how many of the
//	possible evolutions end in an accepting state".
//
// This is the sibling of package contract for branching transitions: no
// cycle shortcutting applies (the orbit is a set, not a single path), so
// rounds are simulated directly, with the per-round aggregation keeping
// the working set as small as the number of distinct states.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/orbit/stateiter"
//
//	start := stateiter.Distribution[int]{0: 1}
//	branch := func(x int) []int { return []int{x + 1, x + 1, x + 2} }
//
//	dist, err := stateiter.Run(start, branch, 5)
//	if err != nil {
//	  // handle ErrNilNext, ErrNegativeRounds or ErrEmptyDistribution
//	}
//
// Complexity (per round, D = distinct states, B = branching factor):
//
//   - Time:   O(D·B)
//   - Memory: O(D·B) for the successor distribution
//
// Errors:
//
//   - ErrNilNext            if the transition function is nil.
//   - ErrNegativeRounds     if the round count is negative.
//   - ErrEmptyDistribution  if the starting distribution has no states.
package stateiter
