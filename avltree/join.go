package avltree

import "github.com/clonemasterUwU/bbst/augment"

// header is a detached subtree plus its height, playing the bookkeeping
// role of the source's avl_tree_header without owning a sentinel of its
// own. height follows the source's off-by-one convention: an empty header
// has height 1 (not 0), so that joining two empty headers with a pivot
// produces height 2 for a single-node tree. This convention is purely
// internal to the join/split machinery and never observed by callers.
type header[K, V, M any] struct {
	root   *Node[K, V, M]
	height uint32
}

func emptyHeader[K, V, M any]() header[K, V, M] {
	return header[K, V, M]{height: 1}
}

func attachChild[K, V, M any](parent *Node[K, V, M], left bool, child *Node[K, V, M]) {
	if left {
		parent.left = child
	} else {
		parent.right = child
	}

	if child != nil {
		child.parent = parent
	}
}

func pivotBalance(leftHeight, rightHeight uint32) int8 {
	switch {
	case leftHeight < rightHeight:
		return 1
	case leftHeight == rightHeight:
		return 0
	default:
		return -1
	}
}

// joinCore splices pivotKey/pivotVal between left and right, using end as
// scratch space for the rotation/fixup machinery, and returns the resulting
// header.
func joinCore[K, V, M any](
	end *Node[K, V, M],
	left header[K, V, M], pivotKey K, pivotVal V, right header[K, V, M],
	u augment.Updater[K, V, M],
) header[K, V, M] {
	pivot := &Node[K, V, M]{key: pivotKey, value: pivotVal}

	switch {
	case left.height > right.height+1:
		// Descend left's right spine, counting off height, until attaching
		// the pivot here would bring the two sides back within one of each
		// other.
		ptr := left.root
		leftHeight := left.height
		rightHeight := right.height

		for {
			if ptr.balance < 0 {
				leftHeight -= 2
			} else {
				leftHeight--
			}

			if leftHeight <= rightHeight+1 {
				break
			}

			ptr = ptr.right
		}

		attachChild(pivot, true, ptr.right)
		attachChild(pivot, false, right.root)
		pivot.balance = pivotBalance(leftHeight, rightHeight)
		pivot.metadata = u.Recompute(pivotKey, pivotVal, metaOf(pivot.left, u), metaOf(pivot.right, u))

		ptr.right = pivot
		pivot.parent = ptr

		end.left = left.root
		left.root.parent = end

		increased := insertFixup(end, pivot, u)

		newHeight := left.height
		if increased {
			newHeight++
		}

		return header[K, V, M]{root: end.left, height: newHeight}

	case right.height > left.height+1:
		ptr := right.root
		leftHeight := left.height
		rightHeight := right.height

		for {
			if ptr.balance > 0 {
				rightHeight -= 2
			} else {
				rightHeight--
			}

			if rightHeight <= leftHeight+1 {
				break
			}

			ptr = ptr.left
		}

		attachChild(pivot, true, left.root)
		attachChild(pivot, false, ptr.left)
		pivot.balance = pivotBalance(leftHeight, rightHeight)
		pivot.metadata = u.Recompute(pivotKey, pivotVal, metaOf(pivot.left, u), metaOf(pivot.right, u))

		ptr.left = pivot
		pivot.parent = ptr

		end.left = right.root
		right.root.parent = end

		increased := insertFixup(end, pivot, u)

		newHeight := right.height
		if increased {
			newHeight++
		}

		return header[K, V, M]{root: end.left, height: newHeight}

	default:
		attachChild(pivot, true, left.root)
		attachChild(pivot, false, right.root)
		pivot.balance = pivotBalance(left.height, right.height)
		pivot.metadata = u.Recompute(pivotKey, pivotVal, metaOf(left.root, u), metaOf(right.root, u))

		h := left.height
		if right.height > h {
			h = right.height
		}

		return header[K, V, M]{root: pivot, height: h + 1}
	}
}

// Join concatenates left, a new pivotKey/pivotVal entry, and right into a
// single tree. Every key in left must be less than pivotKey, which must be
// less than every key in right — Join does not check this.
//
// Both left and right are consumed: after Join returns, neither is safe to
// use again.
func Join[K comparable, V, M any](left *Tree[K, V, M], pivotKey K, pivotVal V, right *Tree[K, V, M]) *Tree[K, V, M] {
	lh := header[K, V, M]{root: left.end.left, height: left.height}
	rh := header[K, V, M]{root: right.end.left, height: right.height}

	out := &Tree[K, V, M]{end: &Node[K, V, M]{}, cmp: left.cmp, updater: left.updater}

	combined := joinCore(out.end, lh, pivotKey, pivotVal, rh, out.updater)

	out.end.left = combined.root
	if combined.root != nil {
		combined.root.parent = out.end
	}

	out.height = combined.height
	out.size = left.size + right.size + 1

	left.end.left = nil
	left.size = 0
	left.height = 1

	right.end.left = nil
	right.size = 0
	right.height = 1

	return out
}

// splitRoutine implements the recursive join-based split, mirroring
// avl_tree_custom_invoke.h's split_by_key: every key less than key ends up
// in the left result, every key greater in the right result, and the entry
// equal to key (if any) goes to whichever side equalOnLeft names.
func splitRoutine[K, V, M any](
	h header[K, V, M], key K, equalOnLeft bool, less func(a, b K) bool, u augment.Updater[K, V, M],
) (header[K, V, M], header[K, V, M]) {
	if h.root == nil {
		return emptyHeader[K, V, M](), emptyHeader[K, V, M]()
	}

	root := h.root

	leftChildHeight := h.height - heightDrop(root.balance > 0)
	rightChildHeight := h.height - heightDrop(root.balance < 0)

	leftChild := header[K, V, M]{root: root.left, height: leftChildHeight}
	rightChild := header[K, V, M]{root: root.right, height: rightChildHeight}

	switch {
	case less(key, root.key):
		ll, lr := splitRoutine(leftChild, key, equalOnLeft, less, u)
		rightPart := joinCore(&Node[K, V, M]{}, lr, root.key, root.value, rightChild, u)

		return ll, rightPart

	case less(root.key, key):
		rl, rr := splitRoutine(rightChild, key, equalOnLeft, less, u)
		leftPart := joinCore(&Node[K, V, M]{}, leftChild, root.key, root.value, rl, u)

		return leftPart, rr

	default:
		if equalOnLeft {
			leftPart := joinCore(&Node[K, V, M]{}, leftChild, root.key, root.value, emptyHeader[K, V, M](), u)
			return leftPart, rightChild
		}

		rightPart := joinCore(&Node[K, V, M]{}, emptyHeader[K, V, M](), root.key, root.value, rightChild, u)

		return leftChild, rightPart
	}
}

func heightDrop(heavy bool) uint32 {
	if heavy {
		return 2
	}

	return 1
}

func newTreeFromHeader[K comparable, V, M any](
	h header[K, V, M], comparator func(a, b K) int, u augment.Updater[K, V, M],
) *Tree[K, V, M] {
	end := &Node[K, V, M]{}
	t := &Tree[K, V, M]{end: end, cmp: comparator, updater: u, height: h.height}

	end.left = h.root
	if h.root != nil {
		h.root.parent = end
		t.size = countNodes(h.root)
	}

	return t
}

// Split divides t into two trees at key: every entry less than key goes to
// the left result, every entry greater goes to the right result, and an
// entry equal to key (if present) goes to the left result when equalOnLeft
// is true, the right result otherwise.
//
// t is consumed: after Split returns, t is empty and should not be reused.
func Split[K comparable, V, M any](t *Tree[K, V, M], key K, equalOnLeft bool) (*Tree[K, V, M], *Tree[K, V, M]) {
	lh, rh := splitRoutine(header[K, V, M]{root: t.end.left, height: t.height}, key, equalOnLeft, t.less, t.updater)

	left := newTreeFromHeader(lh, t.cmp, t.updater)
	right := newTreeFromHeader(rh, t.cmp, t.updater)

	t.end.left = nil
	t.size = 0
	t.height = 1

	return left, right
}
