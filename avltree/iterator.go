package avltree

import (
	"fmt"
	"iter"

	"github.com/clonemasterUwU/bbst/container"
)

var _ container.ReverseIteratorWithKey[string, int] = (*Iterator[string, int, int])(nil)

func treeMin[K, V, M any](n *Node[K, V, M]) *Node[K, V, M] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func treeMax[K, V, M any](n *Node[K, V, M]) *Node[K, V, M] {
	for n.right != nil {
		n = n.right
	}

	return n
}

func successor[K, V, M any](end, n *Node[K, V, M]) *Node[K, V, M] {
	if n.right != nil {
		return treeMin(n.right)
	}

	p := n.parent
	for p != end && n == p.right {
		n = p
		p = p.parent
	}

	return p
}

func predecessor[K, V, M any](end, n *Node[K, V, M]) *Node[K, V, M] {
	if n.left != nil {
		return treeMax(n.left)
	}

	p := n.parent

	for p != end && n == p.left {
		n = p
		p = p.parent
	}

	if p == end {
		return nil
	}

	return p
}

type iterPosition byte

const (
	posBegin iterPosition = iota
	posBetween
	posEnd
)

// Iterator is a stateful, bidirectional cursor over a Tree's entries in
// ascending key order.
type Iterator[K comparable, V, M any] struct {
	tree *Tree[K, V, M]
	node *Node[K, V, M]
	pos  iterPosition
}

// Iterator returns a new cursor positioned before the first entry.
func (t *Tree[K, V, M]) Iterator() *Iterator[K, V, M] {
	return &Iterator[K, V, M]{tree: t, pos: posBegin}
}

// IteratorAt returns a cursor positioned at n.
func (t *Tree[K, V, M]) IteratorAt(n *Node[K, V, M]) *Iterator[K, V, M] {
	return &Iterator[K, V, M]{tree: t, node: n, pos: posBetween}
}

// Next advances the cursor and reports whether it now sits on an entry.
func (it *Iterator[K, V, M]) Next() bool {
	switch it.pos {
	case posBegin:
		if it.tree.end.left == nil {
			it.pos = posEnd
			return false
		}

		it.node = treeMin(it.tree.end.left)
	case posBetween:
		next := successor(it.tree.end, it.node)
		if next == it.tree.end {
			it.pos = posEnd
			it.node = nil

			return false
		}

		it.node = next
	case posEnd:
		return false
	}

	it.pos = posBetween

	return true
}

// Prev moves the cursor backward and reports whether it now sits on an
// entry.
func (it *Iterator[K, V, M]) Prev() bool {
	switch it.pos {
	case posEnd:
		if it.tree.end.left == nil {
			it.pos = posBegin
			return false
		}

		it.node = treeMax(it.tree.end.left)
	case posBetween:
		prev := predecessor(it.tree.end, it.node)
		if prev == nil {
			it.pos = posBegin
			it.node = nil

			return false
		}

		it.node = prev
	case posBegin:
		return false
	}

	it.pos = posBetween

	return true
}

// Begin resets the cursor to before the first entry.
func (it *Iterator[K, V, M]) Begin() {
	it.pos = posBegin
	it.node = nil
}

// End resets the cursor to after the last entry.
func (it *Iterator[K, V, M]) End() {
	it.pos = posEnd
	it.node = nil
}

// First moves directly to the first entry.
func (it *Iterator[K, V, M]) First() bool {
	it.Begin()
	return it.Next()
}

// Last moves directly to the last entry.
func (it *Iterator[K, V, M]) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo advances until fn returns true for the current entry, or the
// cursor runs off the end.
func (it *Iterator[K, V, M]) NextTo(fn func(key K, value V) bool) bool {
	for it.Next() {
		if fn(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}

// PrevTo moves backward until fn returns true for the current entry, or
// the cursor runs off the beginning.
func (it *Iterator[K, V, M]) PrevTo(fn func(key K, value V) bool) bool {
	for it.Prev() {
		if fn(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}

func (it *Iterator[K, V, M]) valid() bool {
	return it.pos == posBetween && it.node != nil
}

// Key returns the current entry's key. It panics if the cursor is not
// positioned on an entry.
func (it *Iterator[K, V, M]) Key() K {
	if !it.valid() {
		panic(fmt.Sprintf("avltree: Key called on iterator not positioned on an entry (pos=%d)", it.pos))
	}

	return it.node.key
}

// Value returns the current entry's value. It panics if the cursor is not
// positioned on an entry.
func (it *Iterator[K, V, M]) Value() V {
	if !it.valid() {
		panic(fmt.Sprintf("avltree: Value called on iterator not positioned on an entry (pos=%d)", it.pos))
	}

	return it.node.value
}

// Node returns the current underlying node. It panics if the cursor is not
// positioned on an entry.
func (it *Iterator[K, V, M]) Node() *Node[K, V, M] {
	if !it.valid() {
		panic(fmt.Sprintf("avltree: Node called on iterator not positioned on an entry (pos=%d)", it.pos))
	}

	return it.node
}

// Iter returns a forward range-over-func sequence of key/value pairs.
func (t *Tree[K, V, M]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// RIter returns a reverse range-over-func sequence of key/value pairs.
func (t *Tree[K, V, M]) RIter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		it.End()

		for it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
