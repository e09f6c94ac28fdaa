package stateiter_test

import (
	"fmt"

	"github.com/katalvlaran/orbit/stateiter"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRun
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A non-deterministic machine over states 0..3: from every state you may
//	stay or advance, and the accepting state 3 absorbs. Count how many
//	evolutions are accepting after 4 rounds.
//
// Use case:
//
//	Counting accepting runs of a finite automaton after n steps without
//	enumerating the exponentially many runs individually.
func ExampleRun() {
	branch := func(x int) []int {
		if x == 3 {
			return []int{3} // accepting state absorbs
		}

		return []int{x, x + 1}
	}

	dist, err := stateiter.Run(stateiter.Distribution[int]{0: 1}, branch, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("accepting=%d of %d\n", dist[3], dist.Total())
	// Output:
	// accepting=4 of 15
}
