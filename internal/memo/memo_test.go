package memo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo_LookupStoreClear(t *testing.T) {
	m := New[string]()

	_, ok := m.Lookup("ca")
	assert.False(t, ok)

	m.Store("ca", []string{"cat", "car"})
	got, ok := m.Lookup("ca")
	require.True(t, ok)
	assert.Equal(t, []string{"cat", "car"}, got)
	assert.Equal(t, 1, m.Len())

	m.Clear()
	_, ok = m.Lookup("ca")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	hits, misses := m.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(2), misses)
}

func TestMemo_EmptyResultIsAHit(t *testing.T) {
	m := New[int]()
	m.Store("9", nil)

	got, ok := m.Lookup("9")
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestMemo_ReturnsCopies(t *testing.T) {
	m := New[string]()
	in := []string{"a", "b"}
	m.Store("", in)

	in[0] = "mutated"
	got, _ := m.Lookup("")
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "mutated"
	again, _ := m.Lookup("")
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestMemo_Concurrent(t *testing.T) {
	m := New[int]()

	var wg sync.WaitGroup
	for g := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range 200 {
				m.Store("p", []int{id, i})
				if got, ok := m.Lookup("p"); ok {
					assert.Len(t, got, 2)
				}
			}
		}(g)
	}
	wg.Wait()

	hits, misses := m.Stats()
	assert.Equal(t, int64(16*200), hits+misses)
}
