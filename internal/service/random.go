package service

import (
	"math/rand/v2"
	"sync"
)

// globalRandomizer draws from the runtime-seeded global source of
// math/rand/v2, which is safe for concurrent use.
type globalRandomizer struct{}

// NewRandomizer returns a goroutine-safe [Randomizer] seeded by the runtime.
// Sequences differ between process runs.
func NewRandomizer() Randomizer {
	return globalRandomizer{}
}

func (globalRandomizer) IntN(n int) int {
	return rand.IntN(n)
}

// lockedRandomizer guards a single seeded generator with a mutex.
type lockedRandomizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRandomizer returns a goroutine-safe [Randomizer] whose sequence is
// fully determined by seed.
func NewSeededRandomizer(seed uint64) Randomizer {
	return &lockedRandomizer{
		rnd: rand.New(rand.NewPCG(seed, seed)),
	}
}

func (r *lockedRandomizer) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}
