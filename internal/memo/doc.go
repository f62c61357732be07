// Package memo caches prefix-search results until the next mutation.
//
// The memo has no size bound and no eviction policy of its own: the owning cache
// clears it in bulk whenever its key set or recency order changes. Memo guards its
// map with its own mutex so that concurrent searches, all holding the cache's
// shared lock, can populate it.
package memo
