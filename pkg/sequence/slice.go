package sequence

import (
	"github.com/seqkit/seqkit/pkg/random"
)

// RandomElement returns an element picked uniformly from s using the
// process-wide random source. An empty or nil slice yields the zero value.
func RandomElement[S ~[]E, E any](s S) E {
	return RandomElementFrom(random.Global(), s)
}

// RandomElementFrom is RandomElement drawing from an explicit source.
func RandomElementFrom[S ~[]E, E any](src random.Source, s S) E {
	var zero E
	if len(s) == 0 {
		return zero
	}
	return s[src.Intn(len(s))]
}

// Clone returns an independently owned shallow copy of s: same elements,
// same order, separate backing array. Clone of a nil slice is nil.
func Clone[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}

// Swap exchanges the elements at i and j in place. Indices must satisfy
// 0 <= i, j < len(s); anything else panics through the slice's own bounds
// check, which is the caller's bug to fix, not a condition to recover from.
func Swap[S ~[]E, E any](s S, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Shuffle permutes s in place using the process-wide random source and
// returns the same slice so calls can chain. Slices of length <= 1 pass
// through untouched.
func Shuffle[S ~[]E, E any](s S) S {
	return ShuffleFrom(random.Global(), s)
}

// ShuffleFrom is Shuffle drawing from an explicit source.
//
// This is the Durstenfeld variant of Fisher-Yates: walk i from the last
// index down to 1, draw j uniformly in [0, i], swap. Given a uniform source
// every permutation of s is equally likely.
func ShuffleFrom[S ~[]E, E any](src random.Source, s S) S {
	for i := len(s) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// ShuffledClone returns a uniformly permuted copy of s, leaving s untouched.
func ShuffledClone[S ~[]E, E any](src random.Source, s S) S {
	return ShuffleFrom(src, Clone(s))
}

// Sample returns n elements of s drawn uniformly without replacement. When
// n >= len(s) it degrades to a full shuffled copy. The input is never
// mutated; the result's element order is itself uniformly random.
func Sample[S ~[]E, E any](src random.Source, s S, n int) []E {
	if n >= len(s) {
		return ShuffledClone(src, []E(s))
	}
	if n <= 0 {
		return nil
	}
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	out := make([]E, n)
	// Partial Fisher-Yates over the index permutation: only the first n
	// positions need settling.
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = s[idx[i]]
	}
	return out
}
