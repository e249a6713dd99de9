package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniformly distributed numbers for sequence operations.
// Implementations returned by this package are safe for concurrent draws;
// third-party implementations only need to be if their callers share them.
type Source interface {
	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

var _ Source = (*lockedSource)(nil)

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a time-seeded Source backed by math/rand. Pseudo-random is
// enough here: the package targets gameplay-style picking and shuffling,
// not anything security sensitive.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Source. Equal seeds produce equal draw
// streams, which is what reproducible shuffle tests build on.
func NewSeeded(seed int64) Source {
	return &lockedSource{
		rnd: rand.New(rand.NewSource(seed)), // #nosec G404
	}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

var (
	globalMu sync.RWMutex
	global   Source = New()
)

// Seed resets the process-wide source to a deterministic state. Call it once
// at startup (or at the top of a test) before any draws that must replay.
func Seed(seed int64) {
	globalMu.Lock()
	global = NewSeeded(seed)
	globalMu.Unlock()
}

// Global returns the process-wide source used by operations that do not take
// an explicit one.
func Global() Source {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Intn draws from the process-wide source.
func Intn(n int) int {
	return Global().Intn(n)
}
