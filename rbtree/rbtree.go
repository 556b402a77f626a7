// Package rbtree implements a red-black tree based ordered map, augmented
// with an arbitrary per-node metadata aggregate and supporting join-based
// bulk operations (Join, Split) alongside the usual single-key operations.
//
// Unlike a textbook red-black tree, a Tree here has no separate "nil" leaf
// sentinel: absent children are plain Go nil, checked with a small isBlack
// helper that treats nil as black. The tree does keep one sentinel node,
// end, whose left child holds the real root; the root's own parent points
// back to end rather than to nil. That single indirection removes every
// "is this the root?" special case from the rotation and successor/
// predecessor code, since end behaves like an ordinary node in all of them.
package rbtree

import (
	"fmt"
	"strings"

	"github.com/clonemasterUwU/bbst/augment"
	"github.com/clonemasterUwU/bbst/cmp"
	"github.com/clonemasterUwU/bbst/internal/invariant"
)

// Node is one node of a Tree. Key is immutable once inserted; Value and
// Metadata change over the node's lifetime as the tree is mutated around it.
type Node[K, V, M any] struct {
	key   K
	value V

	metadata M
	black    bool

	parent, left, right *Node[K, V, M]
}

// Key returns the node's key.
func (n *Node[K, V, M]) Key() K { return n.key }

// Value returns the node's value.
func (n *Node[K, V, M]) Value() V { return n.value }

// Metadata returns the node's current augmentation metadata.
func (n *Node[K, V, M]) Metadata() M { return n.metadata }

// Tree is a red-black tree ordered map over keys K, holding values V, and
// carrying per-subtree metadata M maintained by an augment.Updater.
type Tree[K comparable, V, M any] struct {
	end         *Node[K, V, M]
	size        int
	blackHeight uint32

	cmp     cmp.Comparator[K]
	updater augment.Updater[K, V, M]
}

// New builds an empty Tree ordered by comparator and augmented by updater.
func New[K comparable, V, M any](comparator cmp.Comparator[K], updater augment.Updater[K, V, M]) *Tree[K, V, M] {
	return &Tree[K, V, M]{
		end:     &Node[K, V, M]{},
		cmp:     comparator,
		updater: updater,
	}
}

// NewOrdered builds an empty Tree over a cmp.Ordered key type, using
// cmp.Compare as the comparator.
func NewOrdered[K cmp.Ordered, V, M any](updater augment.Updater[K, V, M]) *Tree[K, V, M] {
	return New[K, V, M](cmp.Compare[K], updater)
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V, M]) Len() int { return t.size }

// Empty reports whether the tree has no entries.
func (t *Tree[K, V, M]) Empty() bool { return t.size == 0 }

// Clear removes every entry from the tree.
func (t *Tree[K, V, M]) Clear() {
	t.end.left = nil
	t.size = 0
	t.blackHeight = 0
}

func (t *Tree[K, V, M]) less(a, b K) bool { return t.cmp(a, b) < 0 }

// lowerBound returns the leftmost node whose key is not less than key, or
// t.end if no such node exists.
func (t *Tree[K, V, M]) lowerBound(key K) *Node[K, V, M] {
	cur := t.end.left
	result := t.end

	for cur != nil {
		if !t.less(cur.key, key) {
			result = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return result
}

// find returns the node whose key equals key, or t.end if there is none.
//
// This follows the documented lower_bound-then-compare semantic rather than
// the source's inconsistent second copy: a candidate from lowerBound only
// qualifies when its key is not itself greater than the query key, i.e. the
// two keys compare equal.
func (t *Tree[K, V, M]) find(key K) *Node[K, V, M] {
	p := t.lowerBound(key)
	if p != t.end && !t.less(key, p.key) {
		return p
	}

	return t.end
}

// GetNode returns the node holding key, or nil if no such key exists.
func (t *Tree[K, V, M]) GetNode(key K) *Node[K, V, M] {
	p := t.find(key)
	if p == t.end {
		return nil
	}

	return p
}

// Get returns the value stored under key and whether it was found.
func (t *Tree[K, V, M]) Get(key K) (V, bool) {
	n := t.GetNode(key)
	if n == nil {
		var zero V
		return zero, false
	}

	return n.value, true
}

// Has reports whether key is present in the tree.
func (t *Tree[K, V, M]) Has(key K) bool {
	return t.find(key) != t.end
}

// TryEmplace inserts key/val if key is not already present, returning the
// resulting node and true. If key is already present, it returns the
// existing node, unmodified, and false.
func (t *Tree[K, V, M]) TryEmplace(key K, val V) (*Node[K, V, M], bool) {
	parent := t.end
	cur := t.end.left
	goLeft := true

	for cur != nil {
		parent = cur

		switch {
		case t.less(key, cur.key):
			goLeft = true
			cur = cur.left
		case t.less(cur.key, key):
			goLeft = false
			cur = cur.right
		default:
			return cur, false
		}
	}

	n := &Node[K, V, M]{key: key, value: val, parent: parent}
	n.metadata = t.updater.Recompute(key, val, t.updater.Empty(), t.updater.Empty())

	switch {
	case parent == t.end:
		t.end.left = n
	case goLeft:
		parent.left = n
	default:
		parent.right = n
	}

	if insertFixup(t.end, n, t.updater) {
		t.blackHeight++
	}

	recomputeAncestors(t.end, n, t.updater)
	t.size++

	return n, true
}

// Put inserts key/val, overwriting any existing value for key.
func (t *Tree[K, V, M]) Put(key K, val V) {
	if n, inserted := t.TryEmplace(key, val); !inserted {
		n.value = val
		recomputeNode(n, t.updater)
		recomputeAncestors(t.end, n, t.updater)
	}
}

// Floor returns the largest node with key <= key, or nil.
func (t *Tree[K, V, M]) Floor(key K) *Node[K, V, M] {
	cur := t.end.left

	var result *Node[K, V, M]

	for cur != nil {
		if t.less(key, cur.key) {
			cur = cur.left
		} else {
			result = cur
			cur = cur.right
		}
	}

	return result
}

// Ceiling returns the smallest node with key >= key, or nil.
func (t *Tree[K, V, M]) Ceiling(key K) *Node[K, V, M] {
	p := t.lowerBound(key)
	if p == t.end {
		return nil
	}

	return p
}

// Keys returns every key in ascending order.
func (t *Tree[K, V, M]) Keys() []K {
	keys := make([]K, 0, t.size)
	for it := t.Iterator(); it.Next(); {
		keys = append(keys, it.Key())
	}

	return keys
}

// Values returns every value in ascending key order.
func (t *Tree[K, V, M]) Values() []V {
	values := make([]V, 0, t.size)
	for it := t.Iterator(); it.Next(); {
		values = append(values, it.Value())
	}

	return values
}

// Entry is one key/value pair, as returned by Entries.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Entries returns every key/value pair in ascending key order.
func (t *Tree[K, V, M]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.size)
	for it := t.Iterator(); it.Next(); {
		entries = append(entries, Entry[K, V]{it.Key(), it.Value()})
	}

	return entries
}

// String renders the tree as an indented, box-drawing tree dump, one line
// per node, showing each node's key, color, and metadata.
func (t *Tree[K, V, M]) String() string {
	var sb strings.Builder

	sb.WriteString("RedBlackTree\n")

	if t.end.left != nil {
		output(t.end.left, "", true, &sb)
	}

	return sb.String()
}

func output[K, V, M any](n *Node[K, V, M], prefix string, isTail bool, sb *strings.Builder) {
	if n.right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}

		output(n.right, newPrefix, false, sb)
	}

	sb.WriteString(prefix)

	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}

	color := "R"
	if n.black {
		color = "B"
	}

	fmt.Fprintf(sb, "(%s) %v -> %v [%v]\n", color, n.key, n.value, n.metadata)

	if n.left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}

		output(n.left, newPrefix, true, sb)
	}
}

func isBlack[K, V, M any](n *Node[K, V, M]) bool {
	return n == nil || n.black
}

func metaOf[K, V, M any](n *Node[K, V, M], u augment.Updater[K, V, M]) M {
	if n == nil {
		return u.Empty()
	}

	return n.metadata
}

func recomputeNode[K, V, M any](n *Node[K, V, M], u augment.Updater[K, V, M]) {
	invariant.Check(n != nil, "rbtree: recomputeNode called on nil node")
	n.metadata = u.Recompute(n.key, n.value, metaOf(n.left, u), metaOf(n.right, u))
}

// recomputeAncestors recomputes every node strictly above leaf, from
// leaf.parent up to (excluding) end, using current post-fixup pointers.
//
// leaf's own metadata must already be correct by the time this is called:
// it is set at insertion and then kept correct by the rotate-and-recompute
// helpers used during fixup, even when leaf itself is rotated into an
// internal position. Everything from leaf.parent upward, though, still
// needs a fresh Recompute, since each such ancestor's subtree just gained
// (or changed) an entry regardless of whether any rotation touched it.
func recomputeAncestors[K, V, M any](end, leaf *Node[K, V, M], u augment.Updater[K, V, M]) {
	n := leaf.parent
	for n != end {
		recomputeNode(n, u)
		n = n.parent
	}
}

func countNodes[K, V, M any](n *Node[K, V, M]) int {
	if n == nil {
		return 0
	}

	return 1 + countNodes(n.left) + countNodes(n.right)
}
