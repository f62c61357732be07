// Package avl provides the ordered key index behind prefix search.
//
// The tree is a height-balanced (AVL) binary search tree. Nodes are stored in a
// flat arena slice and addressed by int32 handles instead of pointers, which keeps
// the node graph free of pointer cycles and lets freed slots be recycled.
//
// # Arena
//
// Handle 0 is reserved as the nil sentinel. The sentinel node is never written,
// so its zero height makes height lookups branch-free.
//
// # Prefix Search
//
// SearchByPrefix walks from the root. A node whose string form starts with the
// prefix is emitted and both of its subtrees are explored, right before left.
// A non-matching node sends the walk left when the prefix sorts before the node's
// string form and right otherwise. The result is in visit order, not sorted order.
//
// The walk only finds every match when the tree's key order agrees with the
// ordinal order of the keys' string forms (true for string keys).
//
// # Concurrency
//
// Tree is not safe for concurrent use. Callers serialize mutations and may run
// read-only methods (SearchByPrefix, Ascend, Contains) concurrently with each other.
package avl
