// Package coin provides uniform boolean sources. The engine draws from a
// Flipper for every randomized check, so tests can pin the outcome.
package coin

import (
	"math/rand/v2"
	"sync"
)

// Flipper is a source of uniform booleans.
type Flipper interface {
	Flip() bool
}

// Random is a fair coin backed by a seeded PCG generator. The same seed
// always yields the same sequence of flips.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a fair coin from the given seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Flip returns true with probability one half.
func (r *Random) Flip() bool {
	return r.rng.Float64() >= 0.5
}

// Fixed always lands on the same side.
type Fixed bool

// Flip implements Flipper.
func (f Fixed) Flip() bool {
	return bool(f)
}

// Sequence replays a scripted list of outcomes. Once the list is exhausted
// it keeps returning the last value.
type Sequence struct {
	mu     sync.Mutex
	values []bool
	flips  int
}

// NewSequence creates a scripted coin. It panics if no values are given.
func NewSequence(values ...bool) *Sequence {
	if len(values) == 0 {
		panic("coin: sequence requires at least one value")
	}
	return &Sequence{values: append([]bool(nil), values...)}
}

// Flip implements Flipper.
func (s *Sequence) Flip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.flips
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.flips++
	return s.values[i]
}

// Flips reports how many times the coin has been flipped.
func (s *Sequence) Flips() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flips
}
