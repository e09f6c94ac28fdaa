package cycle

// detector carries the transition function, options and the running count
// of transition applications for one Detect call.
type detector[S comparable] struct {
	next  func(S) S
	opts  Options
	steps int
}

// Detect finds the pre-period μ and period λ of the orbit of start under
// next, using Brent's cycle detection algorithm.
//
// Phase 1 races a single moving cursor (the hare) against checkpoints taken
// at power-of-two intervals; the first time the hare equals its checkpoint,
// the distance travelled since the checkpoint is the period λ. Phase 2
// re-walks from start with two cursors offset by λ steps; they coincide
// exactly at the cycle entrance, after μ steps.
//
// The MaxSteps budget bounds the repeat search of phase 1 (roughly 2(μ+λ)
// applications); once a repeat is confirmed, locating μ is guaranteed to
// terminate and costs at most λ+2μ further applications. Returns ErrNoCycle
// if the budget is exhausted before any repeat is observed — never a
// guessed Info.
func Detect[S comparable](start S, next func(S) S, opts ...Option) (Info, error) {
	if next == nil {
		return Info{}, ErrNilNext
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Info{}, o.err
	}

	d := &detector[S]{next: next, opts: o}

	// Phase 1: search successive powers of two for the period λ.
	power, lam := 1, 1
	tortoise := start
	hare, err := d.probe(start)
	if err != nil {
		return Info{}, err
	}
	for tortoise != hare {
		if power == lam {
			// Start a new power-of-two window; the checkpoint jumps to
			// the hare's current position.
			tortoise = hare
			power *= 2
			lam = 0
		}
		if hare, err = d.probe(hare); err != nil {
			return Info{}, err
		}
		lam++
	}

	// Phase 2: locate μ. Offset the hare by λ steps, then move both
	// cursors in lockstep until they coincide at the cycle entrance.
	tortoise, hare = start, start
	for i := 0; i < lam; i++ {
		if hare, err = d.step(hare); err != nil {
			return Info{}, err
		}
	}
	mu := 0
	for tortoise != hare {
		if tortoise, err = d.step(tortoise); err != nil {
			return Info{}, err
		}
		if hare, err = d.step(hare); err != nil {
			return Info{}, err
		}
		mu++
	}

	return Info{Preperiod: mu, Period: lam}, nil
}

// probe applies next once, charging the step budget.
// Returns ErrNoCycle when the budget is already spent.
func (d *detector[S]) probe(s S) (S, error) {
	if d.steps >= d.opts.MaxSteps {
		return s, ErrNoCycle
	}
	d.steps++

	return d.step(s)
}

// step applies next once, honoring cancellation but not the budget;
// used in phase 2 where termination is already guaranteed.
func (d *detector[S]) step(s S) (S, error) {
	select {
	case <-d.opts.Ctx.Done():
		return s, d.opts.Ctx.Err()
	default:
	}

	return d.next(s), nil
}
