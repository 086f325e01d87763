package domain

import "slices"

// Pool holds the numbers not yet drawn in the current game together with
// the roster that tracks drawn status.
type Pool struct {
	available []int
	roster    *Roster
	rng       RNG
}

// NewPool returns a full pool. rng drives candidate shuffling.
func NewPool(rng RNG) *Pool {
	p := &Pool{roster: NewRoster(), rng: rng}
	p.Reset()
	return p
}

// Reset refills the pool with 1..75 and rebuilds the roster.
func (p *Pool) Reset() {
	p.available = p.available[:0]
	for v := MinNumber; v <= MaxNumber; v++ {
		p.available = append(p.available, v)
	}
	p.roster.Reset()
}

// HasAvailable reports whether any number remains.
func (p *Pool) HasAvailable() bool { return len(p.available) > 0 }

// Len returns how many numbers remain.
func (p *Pool) Len() int { return len(p.available) }

// Contains reports whether v is still undrawn.
func (p *Pool) Contains(v int) bool { return slices.Contains(p.available, v) }

// Values returns the undrawn numbers in ascending order.
func (p *Pool) Values() []int { return slices.Clone(p.available) }

// Roster exposes the pool's roster.
func (p *Pool) Roster() *Roster { return p.roster }

// ShuffledCandidates returns every undrawn number in random order.
// The pool itself is left untouched.
func (p *Pool) ShuffledCandidates() []int {
	out := slices.Clone(p.available)
	for i := len(out) - 1; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Commit removes v from the pool and marks it drawn on the roster.
// Values outside 1..75 return ErrOutOfRange; an already drawn value returns
// ErrInvalidDraw. Either way the pool is left unchanged.
func (p *Pool) Commit(v int) error {
	if !InRange(v) {
		return ErrOutOfRange
	}
	i := slices.Index(p.available, v)
	if i < 0 {
		return ErrInvalidDraw
	}
	p.available = slices.Delete(p.available, i, i+1)
	return p.roster.MarkDrawn(v)
}
