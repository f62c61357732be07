package avl

import (
	"errors"
	"fmt"
	"strings"
)

// handle addresses a node in the arena. The zero handle is nil.
type handle int32

const nilHandle handle = 0

// ErrCorrupt is wrapped by every error Validate returns.
var ErrCorrupt = errors.New("avl: corrupt tree")

type node[K any] struct {
	key    K
	left   handle
	right  handle
	height int32
}

// Tree is an AVL tree over keys ordered by a caller-supplied comparison.
type Tree[K any] struct {
	cmp   func(a, b K) int
	nodes []node[K] // nodes[0] is the nil sentinel
	free  []handle
	root  handle
	size  int
}

// New creates an empty tree ordered by cmp.
// cmp must return a negative number when a < b, zero when a == b and a positive
// number when a > b.
func New[K any](cmp func(a, b K) int) *Tree[K] {
	return &Tree[K]{
		cmp:   cmp,
		nodes: make([]node[K], 1, 16),
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.size }

// Height returns the height of the tree. An empty tree has height 0.
func (t *Tree[K]) Height() int { return int(t.nodes[t.root].height) }

// Reset drops every key and releases the arena.
func (t *Tree[K]) Reset() {
	t.nodes = make([]node[K], 1, 16)
	t.free = nil
	t.root = nilHandle
	t.size = 0
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	h := t.root
	for h != nilHandle {
		n := &t.nodes[h]
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			h = n.left
		case c > 0:
			h = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds key to the tree. It returns false if the key was already present,
// in which case the tree is unchanged.
func (t *Tree[K]) Insert(key K) bool {
	var inserted bool
	t.root = t.insert(t.root, key, &inserted)
	if inserted {
		t.size++
	}
	return inserted
}

func (t *Tree[K]) insert(h handle, key K, inserted *bool) handle {
	if h == nilHandle {
		*inserted = true
		return t.alloc(key)
	}

	c := t.cmp(key, t.nodes[h].key)
	switch {
	case c < 0:
		l := t.insert(t.nodes[h].left, key, inserted)
		t.nodes[h].left = l
	case c > 0:
		r := t.insert(t.nodes[h].right, key, inserted)
		t.nodes[h].right = r
	default:
		return h
	}

	t.updateHeight(h)
	return t.rebalance(h)
}

// Delete removes key from the tree. It returns false if the key was absent.
func (t *Tree[K]) Delete(key K) bool {
	var deleted bool
	t.root = t.delete(t.root, key, &deleted)
	if deleted {
		t.size--
	}
	return deleted
}

func (t *Tree[K]) delete(h handle, key K, deleted *bool) handle {
	if h == nilHandle {
		return nilHandle
	}

	c := t.cmp(key, t.nodes[h].key)
	switch {
	case c < 0:
		l := t.delete(t.nodes[h].left, key, deleted)
		t.nodes[h].left = l
	case c > 0:
		r := t.delete(t.nodes[h].right, key, deleted)
		t.nodes[h].right = r
	default:
		n := t.nodes[h]
		if n.left == nilHandle || n.right == nilHandle {
			*deleted = true
			child := n.left
			if child == nilHandle {
				child = n.right
			}
			t.release(h)
			return child
		}

		// Two children: promote the in-order successor, then remove it
		// from the right subtree.
		succ := t.min(n.right)
		succKey := t.nodes[succ].key
		t.nodes[h].key = succKey
		r := t.delete(n.right, succKey, deleted)
		t.nodes[h].right = r
	}

	t.updateHeight(h)
	return t.rebalance(h)
}

func (t *Tree[K]) min(h handle) handle {
	for t.nodes[h].left != nilHandle {
		h = t.nodes[h].left
	}
	return h
}

func (t *Tree[K]) alloc(key K) handle {
	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[h] = node[K]{key: key, height: 1}
		return h
	}
	t.nodes = append(t.nodes, node[K]{key: key, height: 1})
	return handle(len(t.nodes) - 1) //nolint:gosec // bounded by the cache capacity
}

func (t *Tree[K]) release(h handle) {
	t.nodes[h] = node[K]{}
	t.free = append(t.free, h)
}

func (t *Tree[K]) height(h handle) int32 { return t.nodes[h].height }

func (t *Tree[K]) updateHeight(h handle) {
	n := &t.nodes[h]
	n.height = 1 + max(t.height(n.left), t.height(n.right))
}

// balance is left height minus right height.
func (t *Tree[K]) balance(h handle) int32 {
	return t.height(t.nodes[h].left) - t.height(t.nodes[h].right)
}

func (t *Tree[K]) rebalance(h handle) handle {
	bf := t.balance(h)

	if bf < -1 {
		if t.balance(t.nodes[h].right) > 0 {
			t.nodes[h].right = t.rotateRight(t.nodes[h].right)
		}
		return t.rotateLeft(h)
	}

	if bf > 1 {
		if t.balance(t.nodes[h].left) < 0 {
			t.nodes[h].left = t.rotateLeft(t.nodes[h].left)
		}
		return t.rotateRight(h)
	}

	return h
}

func (t *Tree[K]) rotateLeft(h handle) handle {
	r := t.nodes[h].right
	t.nodes[h].right = t.nodes[r].left
	t.nodes[r].left = h

	t.updateHeight(h)
	t.updateHeight(r)
	return r
}

func (t *Tree[K]) rotateRight(h handle) handle {
	l := t.nodes[h].left
	t.nodes[h].left = t.nodes[l].right
	t.nodes[l].right = h

	t.updateHeight(h)
	t.updateHeight(l)
	return l
}

// SearchByPrefix returns the keys whose string form, as produced by str, starts
// with prefix. Keys are returned in visit order (see package docs).
func (t *Tree[K]) SearchByPrefix(prefix string, str func(K) string) []K {
	var out []K
	return t.searchPrefix(t.root, prefix, str, out)
}

func (t *Tree[K]) searchPrefix(h handle, prefix string, str func(K) string, out []K) []K {
	for h != nilHandle {
		n := &t.nodes[h]
		s := str(n.key)
		if strings.HasPrefix(s, prefix) {
			out = append(out, n.key)
			out = t.searchPrefix(n.right, prefix, str, out)
			return t.searchPrefix(n.left, prefix, str, out)
		}
		if prefix < s {
			h = n.left
		} else {
			h = n.right
		}
	}
	return out
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(key K) bool) {
	t.ascend(t.root, fn)
}

func (t *Tree[K]) ascend(h handle, fn func(K) bool) bool {
	if h == nilHandle {
		return true
	}
	n := &t.nodes[h]
	if !t.ascend(n.left, fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}
	return t.ascend(n.right, fn)
}

// Validate checks ordering, stored heights, the AVL balance bound and the size
// counter. It returns an error wrapping ErrCorrupt on the first violation.
func (t *Tree[K]) Validate() error {
	count := 0
	if _, err := t.validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d, reachable nodes %d", ErrCorrupt, t.size, count)
	}
	if live := len(t.nodes) - 1 - len(t.free); live != t.size {
		return fmt.Errorf("%w: size %d, live arena slots %d", ErrCorrupt, t.size, live)
	}
	return nil
}

func (t *Tree[K]) validate(h handle, lo, hi *K, count *int) (int32, error) {
	if h == nilHandle {
		return 0, nil
	}
	*count++

	n := &t.nodes[h]
	if lo != nil && t.cmp(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorrupt, n.key, *lo)
	}
	if hi != nil && t.cmp(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrCorrupt, n.key, *hi)
	}

	lh, err := t.validate(n.left, lo, &n.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.validate(n.right, &n.key, hi, count)
	if err != nil {
		return 0, err
	}

	if d := lh - rh; d < -1 || d > 1 {
		return 0, fmt.Errorf("%w: key %v has balance %d", ErrCorrupt, n.key, d)
	}
	h2 := 1 + max(lh, rh)
	if n.height != h2 {
		return 0, fmt.Errorf("%w: key %v stores height %d, want %d", ErrCorrupt, n.key, n.height, h2)
	}
	return h2, nil
}
