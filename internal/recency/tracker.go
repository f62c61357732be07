package recency

import (
	"container/list"
	"fmt"
)

// Tracker orders keys by recency. Front = most recently used (MRU),
// Back = least recently used (LRU).
type Tracker[K comparable] struct {
	order *list.List
	items map[K]*list.Element
}

// New creates an empty Tracker.
func New[K comparable]() *Tracker[K] {
	return &Tracker[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

// Len returns the number of tracked keys.
func (t *Tracker[K]) Len() int { return len(t.items) }

// Contains reports whether key is tracked.
func (t *Tracker[K]) Contains(key K) bool {
	_, ok := t.items[key]
	return ok
}

// Touch moves key to the front. It returns false if key is not tracked.
func (t *Tracker[K]) Touch(key K) bool {
	elem, ok := t.items[key]
	if !ok {
		return false
	}
	t.order.MoveToFront(elem)
	return true
}

// InsertNew adds key as the most recently used key.
// It panics if key is already tracked.
func (t *Tracker[K]) InsertNew(key K) {
	if _, ok := t.items[key]; ok {
		panic(fmt.Sprintf("recency: key %v already tracked", key))
	}
	t.items[key] = t.order.PushFront(key)
}

// Oldest returns the least recently used key without removing it.
func (t *Tracker[K]) Oldest() (K, bool) {
	elem := t.order.Back()
	if elem == nil {
		var zero K
		return zero, false
	}
	return elem.Value.(K), true
}

// EvictOldest removes and returns the least recently used key.
func (t *Tracker[K]) EvictOldest() (K, bool) {
	elem := t.order.Back()
	if elem == nil {
		var zero K
		return zero, false
	}
	key := elem.Value.(K)
	t.order.Remove(elem)
	delete(t.items, key)
	return key, true
}

// Remove drops key. It returns false if key was not tracked.
func (t *Tracker[K]) Remove(key K) bool {
	elem, ok := t.items[key]
	if !ok {
		return false
	}
	t.order.Remove(elem)
	delete(t.items, key)
	return true
}

// Range calls fn for each key from most to least recently used until fn
// returns false.
func (t *Tracker[K]) Range(fn func(key K) bool) {
	for elem := t.order.Front(); elem != nil; elem = elem.Next() {
		if !fn(elem.Value.(K)) {
			return
		}
	}
}

// Keys returns keys in MRU -> LRU order.
func (t *Tracker[K]) Keys() []K {
	out := make([]K, 0, t.order.Len())
	t.Range(func(k K) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Reset drops every key.
func (t *Tracker[K]) Reset() {
	t.order.Init()
	t.items = make(map[K]*list.Element)
}
