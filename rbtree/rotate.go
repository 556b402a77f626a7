package rbtree

import "github.com/clonemasterUwU/bbst/augment"

// replaceNode rewires oldN's parent to point at newN instead, handling the
// sentinel uniformly with an ordinary parent: when oldN is the root,
// oldN.parent is end and the write lands in end.left rather than a real
// node's child slot.
func replaceNode[K, V, M any](end, oldN, newN *Node[K, V, M]) {
	p := oldN.parent

	switch {
	case p == end:
		end.left = newN
	case oldN == p.left:
		p.left = newN
	default:
		p.right = newN
	}

	if newN != nil {
		newN.parent = p
	}
}

// rotateLeft and rotateRight are pure pointer rewrites; they never touch
// color or metadata. Callers that need metadata kept current use the
// rotate*AndRecompute wrappers below.
func rotateLeft[K, V, M any](end *Node[K, V, M], x *Node[K, V, M]) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	replaceNode(end, x, y)
	y.left = x
	x.parent = y
}

func rotateRight[K, V, M any](end *Node[K, V, M], x *Node[K, V, M]) {
	y := x.left
	x.left = y.right

	if y.right != nil {
		y.right.parent = x
	}

	replaceNode(end, x, y)
	y.right = x
	x.parent = y
}

// rotateLeftAndRecompute rotates at x and recomputes the metadata of both
// nodes whose children changed: x (now demoted to a child) first, then y
// (the promoted new local root), in that order, since y's correct metadata
// depends on x's.
func rotateLeftAndRecompute[K, V, M any](end *Node[K, V, M], x *Node[K, V, M], u augment.Updater[K, V, M]) {
	y := x.right
	rotateLeft(end, x)
	recomputeNode(x, u)
	recomputeNode(y, u)
}

func rotateRightAndRecompute[K, V, M any](end *Node[K, V, M], x *Node[K, V, M], u augment.Updater[K, V, M]) {
	y := x.left
	rotateRight(end, x)
	recomputeNode(x, u)
	recomputeNode(y, u)
}

// insertFixup restores the red-black invariants after z has been linked
// into the tree as a red node (whether as a freshly inserted leaf or as the
// pivot spliced in partway down a spine during a join). It reports whether
// the tree's black height increased.
//
// Metadata is not touched here beyond what rotateLeftAndRecompute/
// rotateRightAndRecompute already fix up; the caller is responsible for
// recomputing the remaining ancestors above whatever z ends up under (see
// recomputeAncestors) once insertFixup returns.
func insertFixup[K, V, M any](end *Node[K, V, M], z *Node[K, V, M], u augment.Updater[K, V, M]) bool {
	for z.parent != end && !z.parent.black {
		gp := z.parent.parent

		if z.parent == gp.left {
			uncle := gp.right
			if !isBlack(uncle) {
				z.parent.black = true
				uncle.black = true
				gp.black = false
				z = gp

				continue
			}

			if z == z.parent.right {
				z = z.parent
				rotateLeftAndRecompute(end, z, u)
			}

			z.parent.black = true
			gp.black = false
			rotateRightAndRecompute(end, gp, u)

			break
		}

		uncle := gp.left
		if !isBlack(uncle) {
			z.parent.black = true
			uncle.black = true
			gp.black = false
			z = gp

			continue
		}

		if z == z.parent.left {
			z = z.parent
			rotateRightAndRecompute(end, z, u)
		}

		z.parent.black = true
		gp.black = false
		rotateLeftAndRecompute(end, gp, u)

		break
	}

	root := end.left
	if root != nil && !root.black {
		root.black = true
		return true
	}

	return false
}
