package sequence

import (
	"sort"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/seqkit/seqkit/pkg/random"
)

// TestCloneIndependence tests that a clone and its original never alias
func TestCloneIndependence(t *testing.T) {
	original := []int{1, 2, 3, 4}
	clone := Clone(original)

	require.Equal(t, original, clone)

	clone[0] = 100
	require.Equal(t, []int{1, 2, 3, 4}, original)

	original[1] = 200
	require.Equal(t, []int{100, 2, 3, 4}, clone)
}

func TestCloneNil(t *testing.T) {
	var s []string
	require.Nil(t, Clone(s))
}

func TestCloneNamedSliceType(t *testing.T) {
	type ids []int64
	original := ids{7, 8, 9}
	clone := Clone(original)
	require.IsType(t, ids{}, clone)
	require.Equal(t, original, clone)
}

// TestSwapSelfInverse tests that swapping the same pair twice restores order
func TestSwapSelfInverse(t *testing.T) {
	s := []string{"a", "b", "c", "d"}

	Swap(s, 0, 3)
	require.Equal(t, []string{"d", "b", "c", "a"}, s)

	Swap(s, 0, 3)
	require.Equal(t, []string{"a", "b", "c", "d"}, s)
}

func TestSwapSameIndex(t *testing.T) {
	s := []int{1, 2, 3}
	Swap(s, 1, 1)
	require.Equal(t, []int{1, 2, 3}, s)
}

func TestSwapOutOfRangePanics(t *testing.T) {
	s := []int{1, 2, 3}
	require.Panics(t, func() { Swap(s, 0, 3) })
	require.Panics(t, func() { Swap(s, -1, 0) })
}

func TestRandomElementEmpty(t *testing.T) {
	require.Equal(t, 0, RandomElement([]int{}))
	require.Equal(t, "", RandomElement([]string(nil)))

	type payload struct{ ID int }
	require.Equal(t, payload{}, RandomElement([]payload(nil)))
}

func TestRandomElementMembership(t *testing.T) {
	src := random.NewSeeded(1)
	s := []int{10, 20, 30, 40}
	for i := 0; i < 200; i++ {
		require.Contains(t, s, RandomElementFrom(src, s))
	}
}

func TestRandomElementSingle(t *testing.T) {
	src := random.NewSeeded(1)
	require.Equal(t, 42, RandomElementFrom(src, []int{42}))
}

// TestShufflePermutation tests that shuffling preserves the multiset
func TestShufflePermutation(t *testing.T) {
	src := random.NewSeeded(3)
	s := []int{5, 3, 8, 1, 9, 2, 7}

	got := ShuffleFrom(src, Clone(s))
	require.Len(t, got, len(s))

	sort.Ints(got)
	want := Clone(s)
	sort.Ints(want)
	require.Equal(t, want, got)
}

func TestShuffleReturnsSameSlice(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	got := Shuffle(s)

	require.True(t, &s[0] == &got[0], "Shuffle must return the slice it was given")
}

func TestShuffleShortSlices(t *testing.T) {
	require.Empty(t, Shuffle([]int{}))
	require.Equal(t, []int{1}, Shuffle([]int{1}))

	var s []int
	require.Nil(t, Shuffle(s))
}

func TestShuffleFromDeterministic(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := ShuffleFrom(random.NewSeeded(11), Clone(s))
	b := ShuffleFrom(random.NewSeeded(11), Clone(s))
	require.Equal(t, a, b)
}

// TestShuffleDistribution tests that every permutation of three distinct
// elements shows up with roughly equal frequency. Permutations are counted
// by xxhash fingerprints of the shuffled bytes.
func TestShuffleDistribution(t *testing.T) {
	const trials = 60000
	src := random.NewSeeded(1234)

	counts := make(map[uint64]int, 6)
	for i := 0; i < trials; i++ {
		perm := ShuffleFrom(src, []byte{1, 2, 3})
		counts[xxhash.Sum64(perm)]++
	}

	require.Len(t, counts, 6, "3 distinct elements admit exactly 6 permutations")

	expected := trials / 6
	for fingerprint, n := range counts {
		if n < expected*9/10 || n > expected*11/10 {
			t.Errorf("permutation %x seen %d times, expected about %d", fingerprint, n, expected)
		}
	}
}

func TestShuffledCloneLeavesOriginal(t *testing.T) {
	src := random.NewSeeded(5)
	original := []int{1, 2, 3, 4, 5, 6}

	got := ShuffledClone(src, original)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, original)
	require.ElementsMatch(t, original, got)
}

func TestSampleWithoutReplacement(t *testing.T) {
	src := random.NewSeeded(8)
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Sample(src, s, 4)
	require.Len(t, got, 4)

	seen := make(map[int]bool, len(got))
	for _, v := range got {
		require.Contains(t, s, v)
		require.False(t, seen[v], "sampled %d twice", v)
		seen[v] = true
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, s)
}

func TestSampleDegradesToShuffledClone(t *testing.T) {
	src := random.NewSeeded(8)
	s := []int{1, 2, 3}

	got := Sample(src, s, 10)
	require.ElementsMatch(t, s, got)
}

func TestSampleNonPositive(t *testing.T) {
	src := random.NewSeeded(8)
	require.Nil(t, Sample(src, []int{1, 2, 3}, 0))
	require.Nil(t, Sample(src, []int{1, 2, 3}, -1))
}
