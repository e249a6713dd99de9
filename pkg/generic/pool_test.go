package generic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolGeneratesWhenEmpty(t *testing.T) {
	generated := 0
	p := NewPool(func() *int {
		generated++
		v := new(int)
		return v
	})

	first := p.Get()
	require.NotNil(t, first)
	require.Equal(t, 1, generated)

	p.Put(first)
	second := p.Get()
	require.NotNil(t, second)
}

func TestWarmPool(t *testing.T) {
	generated := 0
	p := NewWarmPool(func() []byte {
		generated++
		return make([]byte, 0, 64)
	}, 4)

	require.Equal(t, 4, generated)
	buf := p.Get()
	require.Equal(t, 64, cap(buf))
}
