package sequence

import "container/heap"

type comparatorHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *comparatorHeap[T]) Len() int {
	return len(h.items)
}

func (h *comparatorHeap[T]) Less(i, j int) bool {
	return h.less(h.items[i], h.items[j])
}

func (h *comparatorHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *comparatorHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *comparatorHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // avoid holding references
	h.items = old[:n-1]
	return item
}

// PriorityQueue is an ordered container yielding elements smallest-first
// under a caller-supplied comparator. Not safe for concurrent use.
type PriorityQueue[T any] struct {
	h comparatorHeap[T]
}

// NewPriorityQueue creates a queue ordered by less: less(a, b) reporting
// true means a is dequeued before b.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{
		h: comparatorHeap[T]{less: less},
	}
	heap.Init(&pq.h)
	return pq
}

// Push adds a value to the queue.
func (pq *PriorityQueue[T]) Push(value T) {
	heap.Push(&pq.h, value)
}

// Pop removes and returns the highest-priority value, or false when empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&pq.h).(T), true
}

// Peek returns the highest-priority value without removing it, or false
// when empty.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return pq.h.items[0], true
}

// Drain pops every value into a slice, in priority order. The queue is
// empty afterwards.
func (pq *PriorityQueue[T]) Drain() []T {
	out := make([]T, 0, pq.h.Len())
	for {
		v, ok := pq.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.h.Len() == 0
}
