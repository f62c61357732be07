package searchlru

import (
	"fmt"
	"testing"

	"github.com/hupe1980/searchlru/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCache_ConcurrentAccess(t *testing.T) {
	const (
		capacity     = 128
		numWorkers   = 16
		opsPerWorker = 2000
	)

	words := testutil.NewRNG(42).UniqueWords(512, 2, 5)
	c := newCache[string, int](t, capacity)

	var g errgroup.Group
	for w := range numWorkers {
		g.Go(func() error {
			rng := testutil.NewRNG(int64(w))
			for i := range opsPerWorker {
				key := words[rng.Zipf(len(words), 1.1)]
				switch rng.Intn(10) {
				case 0:
					c.DeleteKey(key)
				case 1, 2:
					for _, k := range c.SearchByPrefix(key[:1]) {
						if len(k) == 0 || k[0] != key[0] {
							return fmt.Errorf("search %q returned %q", key[:1], k)
						}
					}
				case 3:
					c.Peek(key)
				case 4, 5:
					c.Get(key)
				default:
					c.Put(key, i)
				}
				if n := c.Len(); n > capacity {
					return fmt.Errorf("len %d exceeds capacity %d", n, capacity)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, c.validate())

	assert.Len(t, c.SearchByPrefix(""), c.Len())
	assert.Len(t, c.EntriesByRecency(), c.Len())
}

func TestCache_ConcurrentSearchSeesCommittedState(t *testing.T) {
	c := newCache[string, int](t, 1024)

	var g errgroup.Group
	g.Go(func() error {
		for i := range 1000 {
			c.Put(fmt.Sprintf("k%04d", i), i)
		}
		return nil
	})
	for range 4 {
		g.Go(func() error {
			prev := 0
			for range 500 {
				n := len(c.SearchByPrefix("k"))
				// Keys are only added, so the match count never shrinks.
				if n < prev {
					return fmt.Errorf("search shrank from %d to %d", prev, n)
				}
				prev = n
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, c.SearchByPrefix("k"), 1000)
	assert.Len(t, c.SearchByPrefix("k09"), 100)
}
