// Package orbit is your toolkit for reasoning about the long-run behavior
// of deterministic state-transition functions — from detecting when an
// orbit starts repeating itself to answering "what happens after a billion
// steps" in a handful of lookups.
//
// 🚀 What is orbit?
//
//	A small, focused library built around one hard problem — path
//	contraction — split into composable subpackages:
//		• Cycle detection: pre-period μ and period λ via Brent's algorithm
//		• Path contraction: the state after n applications, for n up to 10¹⁸,
//		  via trace recording + modular offset or combinable shortcut jumps
//		• State-distribution iteration: branching transitions over weighted
//		  multisets of states, with per-round aggregation
//
// ✨ Why choose orbit?
//
//   - Generic – works with any comparable state type, no interface boxing
//   - Exact – unbounded targets never wrap, bounded searches never guess
//   - Rock-solid guarantees – sentinel errors, step budgets, context support
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	cycle/     — Brent's cycle detection: Detect → Info{Preperiod, Period}
//	contract/  — path contraction: ApplyN (cycle shortcut), Shortcut (jumps)
//	stateiter/ — weighted multiset iteration for branching transitions
//
// Quick ASCII example:
//
//	    x0 → x1 → x2 → x3
//	               ↑     ↓
//	              x5  ←  x4
//
//	an orbit with pre-period μ=2 and period λ=4: after the second step,
//	every further application just walks the square.
//
// Dive into each subpackage's doc.go for tutorials, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/orbit
package orbit
