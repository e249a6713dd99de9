package generic

import "sync"

// Pool is a typed wrapper over sync.Pool. The zero value is not usable;
// construct with NewPool.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool creates a pool that calls generate when empty.
func NewPool[T any](generate func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return generate()
			},
		},
	}
}

// NewWarmPool creates a pool pre-filled with warm generated values, for
// callers that want to skip cold-start allocation in hot paths.
func NewWarmPool[T any](generate func() T, warm int) *Pool[T] {
	p := NewPool[T](generate)
	for i := 0; i < warm; i++ {
		p.pool.Put(generate())
	}
	return p
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(value T) {
	p.pool.Put(value)
}
