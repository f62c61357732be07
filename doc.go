// Package searchlru provides a fixed-capacity LRU cache with prefix search over its keys.
//
// A Cache combines three structures behind one lock: a recency list that picks
// the eviction candidate, a balanced search tree mirroring the key set, and a memo
// of recent prefix-search results.
//
// # Quick Start
//
//	c, err := searchlru.New[string, int](1000)
//	if err != nil {
//	    return err
//	}
//
//	c.Put("cat", 1)
//	c.Put("car", 2)
//
//	v, ok := c.Get("cat")          // marks cat as most recently used
//	v, ok = c.Peek("car")          // does not touch recency
//	keys := c.SearchByPrefix("ca") // [cat car] in index visit order
//
// # Eviction
//
// Put on a full cache evicts the least recently used key. Get and Put (including
// overwrites) count as uses; Peek, ContainsKey and the listing methods do not.
// DeleteKey and eviction remove the key from every structure.
//
// # Prefix Search
//
// SearchByPrefix matches the string form of each key against the string form of
// the prefix. String forms default to fmt.Sprint and can be replaced with
// WithKeyString. The search is exhaustive when the key order agrees with the
// ordinal order of the string forms, which is always the case for string keys.
//
// Results are memoized per prefix until the next Put, successful DeleteKey or
// Purge. Every Put clears the memo, including overwrites of existing keys.
//
// # Custom Keys
//
// New orders cmp.Ordered keys naturally. NewFunc accepts any comparable key type
// together with a total order:
//
//	c, err := searchlru.NewFunc[Version, string](64, CompareVersion,
//	    searchlru.WithKeyString[Version, string](Version.String),
//	)
//
// # Observability
//
//   - WithLogger: structured logging via log/slog (evictions and searches at debug level)
//   - WithMetricsCollector: BasicMetricsCollector, or the metrics/prometheus package
//
// # Concurrency
//
// All methods are safe for concurrent use. Get, Put, DeleteKey and Purge take an
// exclusive lock; Peek, ContainsKey, the listing methods and SearchByPrefix share
// a read lock. Returned slices are owned by the caller.
package searchlru
