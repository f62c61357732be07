package memo

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Memo maps a prefix to the keys a search for it returned.
type Memo[K any] struct {
	mu      sync.Mutex
	results map[string][]K

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an empty Memo.
func New[K any]() *Memo[K] {
	return &Memo[K]{
		results: make(map[string][]K),
	}
}

// Lookup returns a copy of the result stored for prefix.
func (m *Memo[K]) Lookup(prefix string) ([]K, bool) {
	m.mu.Lock()
	keys, ok := m.results[prefix]
	m.mu.Unlock()

	if !ok {
		m.misses.Add(1)
		return nil, false
	}
	m.hits.Add(1)
	return slices.Clone(keys), true
}

// Store records keys as the result for prefix. The slice is copied.
func (m *Memo[K]) Store(prefix string, keys []K) {
	cp := slices.Clone(keys)
	if cp == nil {
		cp = []K{}
	}

	m.mu.Lock()
	m.results[prefix] = cp
	m.mu.Unlock()
}

// Clear drops every stored result. Hit and miss counters are kept.
func (m *Memo[K]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.results) == 0 {
		return
	}
	clear(m.results)
}

// Len returns the number of stored prefixes.
func (m *Memo[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.results)
}

// Stats returns the lookup hit and miss counts.
func (m *Memo[K]) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}
