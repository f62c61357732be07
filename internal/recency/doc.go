// Package recency tracks access order for LRU eviction.
//
// A Tracker keeps keys in a doubly-linked list ordered from most recently used
// (front) to least recently used (back), plus a map from key to list element so
// that touching, inserting, evicting and removing are all O(1).
//
// Tracker is not safe for concurrent use.
package recency
