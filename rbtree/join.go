package rbtree

import "github.com/clonemasterUwU/bbst/augment"

// header is a detached subtree plus the one fact about it every join/split
// step needs: its black height. It plays the same bookkeeping role as the
// source's rb_tree_header, without owning a sentinel of its own.
type header[K, V, M any] struct {
	root *Node[K, V, M]
	bh   uint32
}

func emptyHeader[K, V, M any]() header[K, V, M] { return header[K, V, M]{} }

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

// joinCore splices pivotKey/pivotVal between left and right, using end as
// scratch space for the rotation/fixup machinery, and returns the resulting
// header. It is the single routine behind both the exported Join and the
// rejoining steps inside Split.
func joinCore[K, V, M any](
	end *Node[K, V, M],
	left header[K, V, M], pivotKey K, pivotVal V, right header[K, V, M],
	u augment.Updater[K, V, M],
) header[K, V, M] {
	pivot := &Node[K, V, M]{key: pivotKey, value: pivotVal}

	switch {
	case left.bh == right.bh:
		pivot.black = true
		attachChild(pivot, true, left.root)
		attachChild(pivot, false, right.root)
		pivot.metadata = u.Recompute(pivotKey, pivotVal, metaOf(left.root, u), metaOf(right.root, u))
		end.left = pivot
		pivot.parent = end

		return header[K, V, M]{root: pivot, bh: left.bh + 1}

	case left.bh < right.bh:
		// Descend right's left spine until the black height remaining
		// matches left's and the node reached is black (or nil), then
		// graft left+pivot in as that node's new
		// left child, with the displaced node becoming pivot's right
		// child (it held keys between pivot and the rest of right).
		end.left = right.root
		if right.root != nil {
			right.root.parent = end
		}

		cur := right.root
		parent := end
		bh := right.bh

		for cur != nil && (bh > left.bh || !cur.black) {
			if cur.black {
				bh--
			}

			parent = cur
			cur = cur.left
		}

		pivot.black = false
		attachChild(pivot, true, left.root)
		attachChild(pivot, false, cur)
		pivot.metadata = u.Recompute(pivotKey, pivotVal, metaOf(left.root, u), metaOf(cur, u))
		pivot.parent = parent

		if parent == end {
			end.left = pivot
		} else {
			parent.left = pivot
		}

		increased := insertFixup(end, pivot, u)
		recomputeAncestors(end, pivot, u)

		newBH := right.bh
		if increased {
			newBH++
		}

		return header[K, V, M]{root: end.left, bh: newBH}

	default: // left.bh > right.bh: symmetric, descend left's right spine.
		end.left = left.root
		if left.root != nil {
			left.root.parent = end
		}

		cur := left.root
		parent := end
		bh := left.bh

		for cur != nil && (bh > right.bh || !cur.black) {
			if cur.black {
				bh--
			}

			parent = cur
			cur = cur.right
		}

		pivot.black = false
		attachChild(pivot, true, cur)
		attachChild(pivot, false, right.root)
		pivot.metadata = u.Recompute(pivotKey, pivotVal, metaOf(cur, u), metaOf(right.root, u))
		pivot.parent = parent

		if parent == end {
			end.left = pivot
		} else {
			parent.right = pivot
		}

		increased := insertFixup(end, pivot, u)
		recomputeAncestors(end, pivot, u)

		newBH := left.bh
		if increased {
			newBH++
		}

		return header[K, V, M]{root: end.left, bh: newBH}
	}
}

// Join concatenates left, a new pivotKey/pivotVal entry, and right into a
// single tree. Every key in left must be less than pivotKey, which must be
// less than every key in right — Join does not check this.
//
// Both left and right are consumed: after Join returns, neither is safe to
// use again (left's and right's own state is reset to empty).
func Join[K comparable, V, M any](left *Tree[K, V, M], pivotKey K, pivotVal V, right *Tree[K, V, M]) *Tree[K, V, M] {
	lh := header[K, V, M]{root: left.end.left, bh: left.blackHeight}
	rh := header[K, V, M]{root: right.end.left, bh: right.blackHeight}

	out := &Tree[K, V, M]{end: &Node[K, V, M]{}, cmp: left.cmp, updater: left.updater}

	combined := joinCore(out.end, lh, pivotKey, pivotVal, rh, out.updater)

	out.end.left = combined.root
	if combined.root != nil {
		combined.root.parent = out.end
	}

	out.blackHeight = combined.bh
	out.size = left.size + right.size + 1

	left.end.left = nil
	left.size = 0
	left.blackHeight = 0

	right.end.left = nil
	right.size = 0
	right.blackHeight = 0

	return out
}

// detachChild splits child off as a standalone header relative to the
// parent's own black height (parentBH), forcing child's root black first if
// it wasn't already. Every header handed to joinCore as an operand (or
// recursed into by splitRoutine) must have a black root — joinCore's
// unequal-height branches splice the pivot in as a descendant of that root,
// relying on rb_tree_insert_fixup's precondition that the subtree it
// operates over already has one. A nil child is treated as already black,
// matching the root.left/root.right == nil checks everywhere else in this
// package; bh is decremented for it exactly as it would be for a real black
// child, never for a red one, since forcing a red child black adds a black
// node that the parent's bh didn't previously count.
func detachChild[K, V, M any](child *Node[K, V, M], parentBH uint32) header[K, V, M] {
	if child == nil {
		return header[K, V, M]{bh: parentBH - 1}
	}

	bh := parentBH
	if child.black {
		bh--
	}

	child.black = true

	return header[K, V, M]{root: child, bh: bh}
}

// splitRoutine implements the recursive join-based split: every key less
// than key ends up in the left result, every key greater ends up in the
// right result, and the entry equal to key (if any) goes to whichever side
// equalOnLeft names.
func splitRoutine[K, V, M any](
	h header[K, V, M], key K, equalOnLeft bool, less func(a, b K) bool, u augment.Updater[K, V, M],
) (header[K, V, M], header[K, V, M]) {
	if h.root == nil {
		return emptyHeader[K, V, M](), emptyHeader[K, V, M]()
	}

	root := h.root

	leftChild := detachChild(root.left, h.bh)
	rightChild := detachChild(root.right, h.bh)

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

func newTreeFromHeader[K comparable, V, M any](
	h header[K, V, M], comparator func(a, b K) int, u augment.Updater[K, V, M],
) *Tree[K, V, M] {
	end := &Node[K, V, M]{}
	t := &Tree[K, V, M]{end: end, cmp: comparator, updater: u, blackHeight: h.bh}

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
// Every header splitRoutine returns already has a black root (detachChild
// enforces it at every recursion level, and joinCore's own insertFixup call
// or direct black assignment enforces it for anything rejoined along the
// way), so unlike the source's split_by_key there is no separate
// root-forcing step needed here at the boundary.
//
// t is consumed: after Split returns, t is empty and should not be reused.
func Split[K comparable, V, M any](t *Tree[K, V, M], key K, equalOnLeft bool) (*Tree[K, V, M], *Tree[K, V, M]) {
	lh, rh := splitRoutine(header[K, V, M]{root: t.end.left, bh: t.blackHeight}, key, equalOnLeft, t.less, t.updater)

	left := newTreeFromHeader(lh, t.cmp, t.updater)
	right := newTreeFromHeader(rh, t.cmp, t.updater)

	t.end.left = nil
	t.size = 0
	t.blackHeight = 0

	return left, right
}
