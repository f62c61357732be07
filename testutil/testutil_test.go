package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueWords(t *testing.T) {
	rng := NewRNG(4711)

	words := rng.UniqueWords(200, 3, 6)
	require.Len(t, words, 200)

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		assert.GreaterOrEqual(t, len(w), 3)
		assert.LessOrEqual(t, len(w), 6)
		_, dup := seen[w]
		assert.False(t, dup, "duplicate word %q", w)
		seen[w] = struct{}{}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Word(4, 4)

	rng.Reset()
	assert.Equal(t, first, rng.Word(4, 4))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestPerm(t *testing.T) {
	rng := NewRNG(7)
	p := rng.Perm(50)
	assert.Len(t, p, 50)
	assert.ElementsMatch(t, rng.Perm(50), p)
}

func TestZipf(t *testing.T) {
	rng := NewRNG(1)

	counts := make([]int, 10)
	for range 2000 {
		v := rng.Zipf(10, 1.5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
		counts[v]++
	}

	// Rank 0 is the most likely value.
	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[0], counts[i])
	}
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}
