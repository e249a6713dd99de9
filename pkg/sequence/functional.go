package sequence

import (
	"iter"
	"sort"

	"github.com/seqkit/seqkit/pkg/random"
)

// Iterator is a lazy, chainable view over an ordered stream of T. Chained
// adapters (Filter, Take, Drop, Map) cost nothing until the iterator is
// consumed; Collect, Sorted, Reversed and Shuffled are eager.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates an Iterator over the elements of a slice, in order.
func From[T any](data []T) *Iterator[T] {
	return FromSeq(func(yield func(T) bool) {
		for _, v := range data {
			if !yield(v) {
				return
			}
		}
	})
}

// FromSeq wraps an existing iter.Seq.
func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	return &Iterator[T]{seq: seq}
}

// Seq exposes the underlying sequence function for range-over-func use.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Pull converts the iterator to pull style. Callers must invoke stop when
// done pulling early.
func (i *Iterator[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(i.seq)
}

// Collect exhausts the iterator into a fresh slice.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Each applies action to every element, consuming the iterator.
func (i *Iterator[T]) Each(action func(T)) {
	i.seq(func(v T) bool {
		action(v)
		return true
	})
}

// Filter keeps only elements satisfying pred.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return FromSeq(func(yield func(T) bool) {
		i.seq(func(v T) bool {
			if pred(v) {
				return yield(v)
			}
			return true
		})
	})
}

// Take yields at most the first n elements.
func (i *Iterator[T]) Take(n int) *Iterator[T] {
	return FromSeq(func(yield func(T) bool) {
		taken := 0
		i.seq(func(v T) bool {
			if taken >= n {
				return false
			}
			taken++
			return yield(v)
		})
	})
}

// Drop skips the first n elements.
func (i *Iterator[T]) Drop(n int) *Iterator[T] {
	return FromSeq(func(yield func(T) bool) {
		skipped := 0
		i.seq(func(v T) bool {
			if skipped < n {
				skipped++
				return true
			}
			return yield(v)
		})
	})
}

// Count consumes the iterator and reports how many elements it yielded.
func (i *Iterator[T]) Count() int {
	count := 0
	i.seq(func(T) bool {
		count++
		return true
	})
	return count
}

// First returns the first element, or false if the iterator is empty.
func (i *Iterator[T]) First() (T, bool) {
	var first T
	found := false
	i.seq(func(v T) bool {
		first = v
		found = true
		return false
	})
	return first, found
}

// Reversed collects the elements and yields them back to front.
func (i *Iterator[T]) Reversed() *Iterator[T] {
	data := i.Collect()
	for l, r := 0, len(data)-1; l < r; l, r = l+1, r-1 {
		data[l], data[r] = data[r], data[l]
	}
	return From(data)
}

// Sorted collects the elements and yields them ordered by less (stable).
func (i *Iterator[T]) Sorted(less func(a, b T) bool) *Iterator[T] {
	data := i.Collect()
	sort.SliceStable(data, func(a, b int) bool {
		return less(data[a], data[b])
	})
	return From(data)
}

// Shuffled collects the elements and yields them in a uniformly random
// order drawn from src. A nil src falls back to the process-wide source.
func (i *Iterator[T]) Shuffled(src random.Source) *Iterator[T] {
	if src == nil {
		src = random.Global()
	}
	return From(ShuffleFrom(src, i.Collect()))
}

// Map transforms each element lazily from T to R.
func Map[T, R any](it *Iterator[T], fn func(T) R) *Iterator[R] {
	return FromSeq(func(yield func(R) bool) {
		it.seq(func(v T) bool {
			return yield(fn(v))
		})
	})
}
