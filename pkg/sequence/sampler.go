package sequence

import (
	"github.com/seqkit/seqkit/pkg/generic"
	"github.com/seqkit/seqkit/pkg/random"
)

// Sampler draws elements from slices of T repeatedly, reusing its scratch
// index permutations across calls. Prefer it over the free Sample function
// when sampling large slices in a loop. Safe for concurrent use as long as
// its Source is.
type Sampler[T any] struct {
	src     random.Source
	scratch *generic.Pool[[]int]
}

// NewSampler creates a Sampler drawing from src. A nil src falls back to
// the process-wide source.
func NewSampler[T any](src random.Source) *Sampler[T] {
	if src == nil {
		src = random.Global()
	}
	return &Sampler[T]{
		src: src,
		scratch: generic.NewPool(func() []int {
			return nil
		}),
	}
}

// Pick returns one element picked uniformly from data, or the zero value
// when data is empty.
func (s *Sampler[T]) Pick(data []T) T {
	return RandomElementFrom(s.src, data)
}

// Sample returns n elements of data drawn uniformly without replacement;
// n >= len(data) degrades to a full shuffled copy. data is never mutated.
func (s *Sampler[T]) Sample(data []T, n int) []T {
	if n >= len(data) {
		return ShuffledClone(s.src, data)
	}
	if n <= 0 {
		return nil
	}

	idx := s.scratch.Get()
	if cap(idx) < len(data) {
		idx = make([]int, len(data))
	}
	idx = idx[:len(data)]
	defer s.scratch.Put(idx)

	for i := range idx {
		idx[i] = i
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		j := i + s.src.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = data[idx[i]]
	}
	return out
}
