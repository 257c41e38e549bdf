// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Sampler draws uniformly distributed integers from an inclusive range.
type Sampler interface {
	// Between returns a value in [min, max]. Panics if min > max.
	Between(min, max int) int
}

// RandSampler is a Sampler backed by math/rand/v2.
// It is safe for concurrent use.
type RandSampler struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSampler returns a RandSampler seeded from the runtime's random source.
func NewSampler() *RandSampler {
	return NewRandSampler(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewSeededSampler returns a reproducible RandSampler.
func NewSeededSampler(seed uint64) *RandSampler {
	return NewRandSampler(rand.New(rand.NewPCG(seed, 0)))
}

func NewRandSampler(r *rand.Rand) *RandSampler {
	return &RandSampler{r: r}
}

func (s *RandSampler) Between(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("lottery: Between(%d, %d): min > max", min, max))
	}
	size, ok := rangeSize(min, max)
	if !ok {
		panic(fmt.Sprintf("lottery: Between(%d, %d): range too large", min, max))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.IntN(size)
}

// SequenceSampler replays a fixed list of values, one per call, ignoring
// the requested range. Used for exact-value tests.
type SequenceSampler struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewSequenceSampler(values ...int) *SequenceSampler {
	return &SequenceSampler{values: values}
}

func (s *SequenceSampler) Between(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("lottery: Between(%d, %d): min > max", min, max))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("lottery: sequence exhausted after %d draws", len(s.values)))
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Remaining reports how many values have not been drawn yet.
func (s *SequenceSampler) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values) - s.next
}
