package cycle_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/orbit/cycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetect_NilNext verifies that a nil transition function is rejected
// before any simulation begins.
func TestDetect_NilNext(t *testing.T) {
	_, err := cycle.Detect[int](0, nil)
	assert.ErrorIs(t, err, cycle.ErrNilNext, "nil transition must error ErrNilNext")
}

// TestDetect_BadMaxSteps ensures MaxSteps < 1 triggers ErrOptionViolation.
func TestDetect_BadMaxSteps(t *testing.T) {
	next := func(x int) int { return x }

	_, err := cycle.Detect(0, next, cycle.WithMaxSteps(0))
	assert.ErrorIs(t, err, cycle.ErrOptionViolation, "MaxSteps=0 must error ErrOptionViolation")

	_, err = cycle.Detect(0, next, cycle.WithMaxSteps(-5))
	assert.ErrorIs(t, err, cycle.ErrOptionViolation, "negative MaxSteps must error ErrOptionViolation")
}

// TestDetect_SelfLoop verifies the immediate fixed point f(x0) == x0
// yields μ=0, λ=1.
func TestDetect_SelfLoop(t *testing.T) {
	info, err := cycle.Detect(7, func(x int) int { return x })
	require.NoError(t, err, "self-loop must be detected")
	assert.Equal(t, cycle.Info{Preperiod: 0, Period: 1}, info, "fixed point is a cycle of length 1 with no prefix")
}

// TestDetect_PureCycle checks the doubling orbit 1,2,4,1,2,4,… under
// f(x) = 2x mod 7: μ=0, λ=3.
func TestDetect_PureCycle(t *testing.T) {
	info, err := cycle.Detect(1, func(x int) int { return (x * 2) % 7 })
	require.NoError(t, err)
	assert.Equal(t, 0, info.Preperiod, "orbit starts inside its cycle")
	assert.Equal(t, 3, info.Period, "doubling mod 7 from 1 has period 3")
}

// TestDetect_TailThenCycle checks an orbit with a genuine pre-periodic
// prefix: 0,1,2,3,4,5,6,3,4,5,6,… → μ=3, λ=4.
func TestDetect_TailThenCycle(t *testing.T) {
	next := func(x int) int {
		if x < 3 {
			return x + 1
		}
		return 3 + (x-3+1)%4
	}

	info, err := cycle.Detect(0, next)
	require.NoError(t, err)
	assert.Equal(t, cycle.Info{Preperiod: 3, Period: 4}, info)
}

// TestDetect_StructState exercises a composite comparable state: the
// Fibonacci pair modulo 10, whose Pisano period is 60 with no prefix.
func TestDetect_StructState(t *testing.T) {
	type pair struct{ a, b int }
	next := func(p pair) pair { return pair{p.b, (p.a + p.b) % 10} }

	info, err := cycle.Detect(pair{0, 1}, next)
	require.NoError(t, err)
	assert.Equal(t, cycle.Info{Preperiod: 0, Period: 60}, info, "Pisano period mod 10 is 60")
}

// TestDetect_MatchesBruteForce cross-checks Detect against a naive
// trace-recording scan on pseudorandom functional graphs over a small
// state space, verifying both μ and λ are minimal.
func TestDetect_MatchesBruteForce(t *testing.T) {
	const space = 50
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 25; trial++ {
		table := make([]int, space)
		for i := range table {
			table[i] = rng.Intn(space)
		}
		next := func(x int) int { return table[x] }
		start := rng.Intn(space)

		// Brute force: walk until the first repeated state.
		wantMu, wantLam := bruteForce(start, next)

		info, err := cycle.Detect(start, next)
		require.NoError(t, err, "trial %d: bounded space must always cycle", trial)
		assert.Equal(t, wantMu, info.Preperiod, "trial %d: μ mismatch", trial)
		assert.Equal(t, wantLam, info.Period, "trial %d: λ mismatch", trial)
	}
}

// bruteForce records every visited state with its step index and returns
// (μ, λ) from the first repeat. Reference oracle for small spaces only.
func bruteForce(start int, next func(int) int) (mu, lam int) {
	seen := map[int]int{start: 0}
	cur := start
	for step := 1; ; step++ {
		cur = next(cur)
		if at, ok := seen[cur]; ok {
			return at, step - at
		}
		seen[cur] = step
	}
}

// TestDetect_NoCycleWithinBudget verifies that a strictly increasing
// counter yields ErrNoCycle instead of a wrong or default Info.
func TestDetect_NoCycleWithinBudget(t *testing.T) {
	info, err := cycle.Detect(0, func(x int) int { return x + 1 }, cycle.WithMaxSteps(100))
	assert.ErrorIs(t, err, cycle.ErrNoCycle, "acyclic orbit must exhaust the budget")
	assert.Equal(t, cycle.Info{}, info, "no Info may be guessed on exhaustion")
}

// TestDetect_ContextCancelled ensures a cancelled context aborts detection.
func TestDetect_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cycle.Detect(1, func(x int) int { return (x * 2) % 7 }, cycle.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled, "cancelled context must abort Detect")
}
