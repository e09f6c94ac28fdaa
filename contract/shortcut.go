package contract

// jump is one memoized shortcut: applying next length times from the
// keyed state lands on to.
type jump[S comparable] struct {
	to     S
	length uint64
}

// shortcutWalker encapsulates the memo table and raw-call budget of one
// Shortcut query.
type shortcutWalker[S comparable] struct {
	next      func(S) S
	opts      Options
	shortcuts map[S]jump[S]
	calls     int
}

// Shortcut returns the state reached after applying next to start exactly
// n times, building combinable shortcut jumps instead of recording the
// full trace.
//
// Each loop iteration takes two hops — a memoized shortcut where one
// exists, a single raw step otherwise — and, when the combined jump stays
// within the remaining distance, memoizes it as a new, longer shortcut
// from the pre-hop state. Shortcuts therefore snowball: a shortcut over a
// shortcut covers the sum of both lengths. When even the first hop would
// overshoot the target, the walker falls back to one raw step and clears
// the table, rebuilding shorter shortcuts from the current position.
//
// Compared to ApplyN this never needs the orbit to actually cycle: it
// reaches any n eventually, spending raw transition calls only where no
// shortcut applies. MaxSteps bounds those raw calls (memoized jumps are
// free); breaching it returns ErrExhausted.
func Shortcut[S comparable](start S, next func(S) S, n uint64, opts ...Option) (S, error) {
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

	w := &shortcutWalker[S]{
		next:      next,
		opts:      o,
		shortcuts: make(map[S]jump[S]),
	}

	cur := start
	var done uint64
	for done < n {
		// cancellation check (once per loop)
		select {
		case <-o.Ctx.Done():
			return zero, o.Ctx.Err()
		default:
		}

		// First hop from the current state.
		hop1, err := w.hop(cur)
		if err != nil {
			return zero, err
		}
		// Second hop from wherever the first one lands.
		hop2, err := w.hop(hop1.to)
		if err != nil {
			return zero, err
		}

		remaining := n - done
		switch {
		case hop1.length <= remaining && hop2.length <= remaining-hop1.length:
			// Combine both hops into a single longer shortcut.
			w.shortcuts[cur] = jump[S]{to: hop2.to, length: hop1.length + hop2.length}
			cur = hop2.to
			done += hop1.length + hop2.length
		case hop1.length <= remaining:
			w.shortcuts[cur] = hop1
			cur = hop1.to
			done += hop1.length
		default:
			// Every known jump overshoots: take one raw step and rebuild
			// shorter shortcuts from here.
			if cur, err = w.advance(cur); err != nil {
				return zero, err
			}
			done++
			clear(w.shortcuts)
		}
	}

	return cur, nil
}

// hop returns the memoized shortcut from s, or a length-1 jump obtained
// by one raw transition call when none exists.
func (w *shortcutWalker[S]) hop(s S) (jump[S], error) {
	if j, ok := w.shortcuts[s]; ok {
		return j, nil
	}
	to, err := w.advance(s)
	if err != nil {
		return jump[S]{}, err
	}

	return jump[S]{to: to, length: 1}, nil
}

// advance performs one raw transition call, charging the budget.
func (w *shortcutWalker[S]) advance(s S) (S, error) {
	if w.calls >= w.opts.MaxSteps {
		return s, ErrExhausted
	}
	w.calls++

	return w.next(s), nil
}
