package concurrent

import (
	"golang.org/x/sync/errgroup"

	"github.com/seqkit/seqkit/pkg/sequence"
)

// ForEach runs action for every element of the iterator, one goroutine per
// element, and waits for all of them. The first error encountered is
// returned; remaining goroutines still run to completion.
//
// Elements are handed to goroutines by value. Mutating a sequence shared
// between actions is still the caller's to serialize.
func ForEach[T any](it *sequence.Iterator[T], action func(T) error) error {
	group := errgroup.Group{}
	next, stop := it.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}
		group.Go(func() error {
			return action(value)
		})
	}

	return group.Wait()
}

// Map applies fn to every element with at most workers goroutines,
// preserving element order in the result.
func Map[T, R any](it *sequence.Iterator[T], workers int, fn func(T) R) []R {
	in := it.Collect()
	out := make([]R, len(in))
	if workers <= 0 {
		workers = 1
	}

	group := errgroup.Group{}
	group.SetLimit(workers)
	for idx, value := range in {
		group.Go(func() error {
			out[idx] = fn(value)
			return nil
		})
	}
	_ = group.Wait()

	return out
}
