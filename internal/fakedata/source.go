package fakedata

import (
	"math/rand/v2"
	"time"
)

// Source draws uniformly distributed integers from the inclusive range [min, max].
type Source interface {
	Between(min, max int) int
}

type pcgSource struct {
	rnd *rand.Rand
}

func (s *pcgSource) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.rnd.IntN(max-min+1)
}

// NewSource returns a reproducible source for the given seed.
func NewSource(seed uint64) Source {
	return &pcgSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func NewRandomSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}
