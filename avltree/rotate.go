package avltree

import "github.com/clonemasterUwU/bbst/augment"

// replaceNode rewires oldN's parent to point at newN instead, handling the
// sentinel uniformly with an ordinary parent.
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
// balance or metadata. They return the node that took x's place.
func rotateLeft[K, V, M any](end *Node[K, V, M], x *Node[K, V, M]) *Node[K, V, M] {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	replaceNode(end, x, y)
	y.left = x
	x.parent = y

	return y
}

func rotateRight[K, V, M any](end *Node[K, V, M], x *Node[K, V, M]) *Node[K, V, M] {
	y := x.left
	x.left = y.right

	if y.right != nil {
		y.right.parent = x
	}

	replaceNode(end, x, y)
	y.right = x
	x.parent = y

	return y
}

// rotateRightLeft resolves the case where x is right-heavy and its right
// child z is left-heavy: rotate right around z, then left around x. y (z's
// left child before either rotation) ends up as the new local root.
func rotateRightLeft[K, V, M any](end *Node[K, V, M], x, z *Node[K, V, M]) *Node[K, V, M] {
	y := z.left
	rotateRight(end, z)
	rotateLeft(end, x)

	return y
}

// rotateLeftRight is the mirror image: x left-heavy, its left child z
// right-heavy.
func rotateLeftRight[K, V, M any](end *Node[K, V, M], x, z *Node[K, V, M]) *Node[K, V, M] {
	y := z.right
	rotateLeft(end, z)
	rotateRight(end, x)

	return y
}

// insertFixup restores the AVL balance invariant after z has been linked
// into the tree with balance 0 (whether as a freshly inserted leaf or as
// the pivot spliced in partway down a spine during a join). It reports
// whether the tree's height increased.
func insertFixup[K, V, M any](end *Node[K, V, M], z *Node[K, V, M], u augment.Updater[K, V, M]) bool {
	heightInc := true

	for z.parent != end {
		x := z.parent

		if x.right == z {
			if x.balance > 0 {
				if z.balance < 0 {
					y := rotateRightLeft(end, x, z)

					switch {
					case y.balance == 0:
						x.balance, z.balance = 0, 0
					case y.balance > 0:
						x.balance, z.balance = -1, 0
					default:
						x.balance, z.balance = 0, 1
					}

					y.balance = 0

					recomputeNode(x, u)
					recomputeNode(z, u)
					recomputeNode(y, u)

					z = y
				} else {
					rotateLeft(end, x)
					x.balance, z.balance = 0, 0

					recomputeNode(x, u)
					recomputeNode(z, u)

					z = x
				}

				heightInc = false

				break
			}

			z = x
			recomputeNode(x, u)

			if x.balance < 0 {
				x.balance = 0
				heightInc = false

				break
			}

			x.balance = 1
		} else {
			if x.balance < 0 {
				if z.balance > 0 {
					y := rotateLeftRight(end, x, z)

					switch {
					case y.balance == 0:
						x.balance, z.balance = 0, 0
					case y.balance < 0:
						x.balance, z.balance = 1, 0
					default:
						x.balance, z.balance = 0, -1
					}

					y.balance = 0

					recomputeNode(x, u)
					recomputeNode(z, u)
					recomputeNode(y, u)

					z = y
				} else {
					rotateRight(end, x)
					x.balance, z.balance = 0, 0

					recomputeNode(x, u)
					recomputeNode(z, u)

					z = x
				}

				heightInc = false

				break
			}

			z = x
			recomputeNode(x, u)

			if x.balance > 0 {
				x.balance = 0
				heightInc = false

				break
			}

			x.balance = -1
		}
	}

	recomputeAncestors(end, z, u)

	return heightInc
}
