package random

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniform variates for the simulation's two random decisions:
// rate sampling and the settlement outcome draw. Implementations must be safe
// for concurrent use.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// New returns a Source. A non-zero seed gives a deterministic sequence for
// tests; a zero seed falls back to the process-wide entropy-seeded generator.
func New(seed uint64) Source {
	if seed == 0 {
		return entropySource{}
	}
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

type entropySource struct{}

func (entropySource) Float64() float64 {
	// The top-level rand/v2 functions are already concurrency-safe.
	return rand.Float64()
}

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
