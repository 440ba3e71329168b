package rng

import (
	"math/rand"
	"sync"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a reproducible generator. It is safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded returns a generator that always yields the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a number in [0, n)
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Intn(n)
}

// New returns a seeded generator when seed is non-zero, otherwise the crypto generator
func New(seed int64) Generator {
	if seed != 0 {
		return NewSeeded(seed)
	}

	return Crypto{}
}
