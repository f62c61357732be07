package searchlru

import (
	"cmp"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/searchlru/internal/avl"
	"github.com/hupe1980/searchlru/internal/memo"
	"github.com/hupe1980/searchlru/internal/recency"
)

// Entry is a key-value pair returned by the listing methods.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Stats is a point-in-time view of a cache's internal structures.
type Stats struct {
	Len         int
	Capacity    int
	IndexHeight int
	MemoEntries int
	MemoHits    int64
	MemoMisses  int64
	Evictions   int64
}

// Cache is a fixed-capacity LRU cache whose keys can be searched by prefix.
//
// A single RWMutex guards the value map, the recency tracker, the key index and
// the query memo. Get takes the exclusive lock because it moves the key to the
// front of the recency order; Peek, ContainsKey, the listing methods and
// SearchByPrefix share the read lock.
type Cache[K comparable, V any] struct {
	mu sync.RWMutex

	capacity int
	values   map[K]V
	recency  *recency.Tracker[K]
	index    *avl.Tree[K]
	memo     *memo.Memo[K] // nil when disabled

	opts      options[K, V]
	evictions atomic.Int64
}

// New creates a cache holding at most capacity entries, with keys ordered by
// their natural order.
func New[K cmp.Ordered, V any](capacity int, optFns ...Option[K, V]) (*Cache[K, V], error) {
	return NewFunc(capacity, cmp.Compare[K], optFns...)
}

// NewFunc creates a cache holding at most capacity entries, with keys ordered
// by compare. compare must be a total order consistent with key equality.
func NewFunc[K comparable, V any](capacity int, compare func(a, b K) int, optFns ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, &CapacityError{Capacity: capacity}
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	o := applyOptions(optFns)
	o.logger = o.logger.WithCapacity(capacity)

	c := &Cache[K, V]{
		capacity: capacity,
		values:   make(map[K]V, capacity),
		recency:  recency.New[K](),
		index:    avl.New(compare),
		opts:     o,
	}
	if o.memo {
		c.memo = memo.New[K]()
	}
	return c, nil
}

// Put inserts or overwrites key. Overwriting counts as a use of the key. If the
// key is new and the cache is full, the least recently used entry is evicted
// first.
//
// Every Put clears the query memo.
func (c *Cache[K, V]) Put(key K, value V) {
	start := time.Now()

	c.mu.Lock()
	inserted, evicted := c.putLocked(key, value)
	c.mu.Unlock()

	if evicted != nil {
		c.evictions.Add(1)
		c.opts.logger.LogEvict(context.Background(), evicted.Key, c.capacity)
		if c.opts.onEvict != nil {
			c.opts.onEvict(evicted.Key, evicted.Value)
		}
	}
	c.opts.metricsCollector.RecordPut(time.Since(start), inserted, evicted != nil)
}

func (c *Cache[K, V]) putLocked(key K, value V) (inserted bool, evicted *Entry[K, V]) {
	defer c.clearMemoLocked()

	if _, ok := c.values[key]; ok {
		c.values[key] = value
		if !c.recency.Touch(key) {
			invariant("key %v stored but not tracked", key)
		}
		return false, nil
	}

	if len(c.values) >= c.capacity {
		evicted = c.evictLocked()
	}

	c.values[key] = value
	c.recency.InsertNew(key)
	if !c.index.Insert(key) {
		invariant("key %v already indexed", key)
	}
	c.checkSizesLocked()
	return true, evicted
}

func (c *Cache[K, V]) evictLocked() *Entry[K, V] {
	key, ok := c.recency.EvictOldest()
	if !ok {
		invariant("cache full but recency tracker empty")
	}
	value, ok := c.values[key]
	if !ok {
		invariant("evicted key %v not stored", key)
	}
	delete(c.values, key)
	if !c.index.Delete(key) {
		invariant("evicted key %v not indexed", key)
	}
	return &Entry[K, V]{Key: key, Value: value}
}

func (c *Cache[K, V]) checkSizesLocked() {
	n := len(c.values)
	if n > c.capacity || n != c.recency.Len() || n != c.index.Len() {
		invariant("size mismatch: store %d, recency %d, index %d, capacity %d",
			n, c.recency.Len(), c.index.Len(), c.capacity)
	}
}

func (c *Cache[K, V]) clearMemoLocked() {
	if c.memo != nil {
		c.memo.Clear()
	}
}

// Get returns the value for key and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	start := time.Now()

	c.mu.Lock()
	value, ok := c.values[key]
	tracked := !ok || c.recency.Touch(key)
	c.mu.Unlock()

	if !tracked {
		invariant("key %v stored but not tracked", key)
	}

	c.opts.metricsCollector.RecordGet(time.Since(start), ok)
	return value, ok
}

// Peek returns the value for key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.values[key]
	return value, ok
}

// ContainsKey reports whether key is cached, without updating its recency.
func (c *Cache[K, V]) ContainsKey(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.values[key]
	return ok
}

// DeleteKey removes key from the cache. It returns true if the key was present
// and has been removed, false if it was not cached. Either way the key is
// absent when DeleteKey returns.
//
// A successful delete clears the query memo.
func (c *Cache[K, V]) DeleteKey(key K) bool {
	start := time.Now()

	c.mu.Lock()
	found := c.deleteLocked(key)
	c.mu.Unlock()

	c.opts.metricsCollector.RecordDelete(time.Since(start), found)
	return found
}

func (c *Cache[K, V]) deleteLocked(key K) bool {
	if _, ok := c.values[key]; !ok {
		return false
	}

	delete(c.values, key)
	if !c.recency.Remove(key) {
		invariant("deleted key %v not tracked", key)
	}
	if !c.index.Delete(key) {
		invariant("deleted key %v not indexed", key)
	}
	c.checkSizesLocked()
	c.clearMemoLocked()
	return true
}

// EntriesByRecency returns all entries from most to least recently used.
func (c *Cache[K, V]) EntriesByRecency() []Entry[K, V] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry[K, V], 0, len(c.values))
	c.recency.Range(func(k K) bool {
		out = append(out, Entry[K, V]{Key: k, Value: c.values[k]})
		return true
	})
	return out
}

// EntriesAscending returns all entries in ascending key order.
func (c *Cache[K, V]) EntriesAscending() []Entry[K, V] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry[K, V], 0, len(c.values))
	c.index.Ascend(func(k K) bool {
		out = append(out, Entry[K, V]{Key: k, Value: c.values[k]})
		return true
	})
	return out
}

// Keys returns keys in MRU -> LRU order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.recency.Keys()
}

// SearchByPrefix returns the cached keys whose string form starts with the
// string form of prefix. An empty string form matches every key.
//
// Results come from the query memo when the same prefix was searched since the
// last mutation. Keys are in index visit order; treat the result as a set.
func (c *Cache[K, V]) SearchByPrefix(prefix K) []K {
	start := time.Now()
	p := c.opts.keyString(prefix)

	c.mu.RLock()
	keys, memoHit := c.searchLocked(p)
	c.mu.RUnlock()

	c.opts.logger.LogSearch(context.Background(), p, len(keys), memoHit)
	c.opts.metricsCollector.RecordSearch(time.Since(start), len(keys), memoHit)
	return keys
}

// searchLocked requires at least the read lock. The memo synchronizes itself, so
// concurrent readers may populate it; writers are excluded until the read lock
// is released, which keeps stored results consistent with the index.
func (c *Cache[K, V]) searchLocked(prefix string) ([]K, bool) {
	if c.memo != nil {
		if keys, ok := c.memo.Lookup(prefix); ok {
			return keys, true
		}
	}

	keys := c.index.SearchByPrefix(prefix, c.opts.keyString)
	if c.memo != nil {
		c.memo.Store(prefix, keys)
	}
	return keys, false
}

// Purge removes every entry and clears the query memo. The eviction callback is
// not invoked.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	removed := len(c.values)
	c.values = make(map[K]V, c.capacity)
	c.recency.Reset()
	c.index.Reset()
	c.clearMemoLocked()
	c.mu.Unlock()

	c.opts.logger.LogPurge(context.Background(), removed)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Cap returns the capacity fixed at construction.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{
		Len:         len(c.values),
		Capacity:    c.capacity,
		IndexHeight: c.index.Height(),
		Evictions:   c.evictions.Load(),
	}
	if c.memo != nil {
		s.MemoEntries = c.memo.Len()
		s.MemoHits, s.MemoMisses = c.memo.Stats()
	}
	return s
}

// validate checks that the store, tracker and index agree. Used by tests.
func (c *Cache[K, V]) validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.index.Validate(); err != nil {
		return err
	}
	c.checkSizesLocked()
	for k := range c.values {
		if !c.recency.Contains(k) || !c.index.Contains(k) {
			invariant("key %v missing from recency or index", k)
		}
	}
	return nil
}
