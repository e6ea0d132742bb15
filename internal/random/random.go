// Package random provides the bounded-integer capability used to fill
// particle populations.
package random

import (
	"math/rand/v2"
	"time"
)

// Source draws integers uniformly from a closed range.
type Source interface {
	// IntRange returns an integer in [lo, hi]. Callers guarantee lo <= hi.
	IntRange(lo, hi int) int
}

// PCG is a Source backed by a seeded PCG generator. Not safe for concurrent use.
type PCG struct {
	seed uint64
	rng  *rand.Rand
}

// NewPCG returns a PCG source. A zero seed is replaced by the current time,
// so only non-zero seeds reproduce a run.
func NewPCG(seed uint64) *PCG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PCG{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// IntRange returns a uniformly distributed integer in [lo, hi].
func (p *PCG) IntRange(lo, hi int) int {
	return lo + p.rng.IntN(hi-lo+1)
}

// Seed returns the effective seed.
func (p *PCG) Seed() uint64 {
	return p.seed
}

// Sequence replays a fixed list of values, cycling when exhausted. It ignores
// the requested bounds and is meant for tests that need known populations.
type Sequence struct {
	values []int
	next   int
	Calls  int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntRange returns the next value of the sequence, or lo when it is empty.
func (s *Sequence) IntRange(lo, _ int) int {
	s.Calls++
	if len(s.values) == 0 {
		return lo
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
