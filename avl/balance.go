// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: restore the balance of a single node
//
// a balance factor of -1, 0 or +1 only needs the height refreshed,
// anything outside that range rotates and the new sub-tree root is
// linked back into the position the node used to occupy
func (tree *Tree[V]) rebalance(p *Node[V]) {
	up := p.up
	kind := LeftLeft
	var subtree *Node[V]

	switch bf := p.BalanceFactor(); {
	case bf < -1: // left heavy
		if p.left.BalanceFactor() > 0 {
			kind = LeftRight
			p.left = rotateLeft(p.left)
			p.left.up = p
		}
		subtree = rotateRight(p)

	case bf > 1: // right heavy
		kind = RightRight
		if p.right.BalanceFactor() < 0 {
			kind = RightLeft
			p.right = rotateRight(p.right)
			p.right.up = p
		}
		subtree = rotateLeft(p)

	default:
		p.updateHeight()
		return
	}

	subtree.up = up
	tree.replaceChild(up, p, subtree)

	if nil != tree.observer {
		tree.observer.Rebalanced(kind, p.value)
	}
}

// internal: make replacement occupy the slot of old below parent, a
// nil parent means old was the root
//
// only the downward link is changed; the caller sets replacement.up
func (tree *Tree[V]) replaceChild(parent *Node[V], old *Node[V], replacement *Node[V]) {
	switch {
	case nil == parent:
		tree.root = replacement
	case old == parent.left:
		parent.left = replacement
	default:
		parent.right = replacement
	}
}

// internal: refresh heights from p up to the root
func (tree *Tree[V]) updateHeights(p *Node[V]) {
	for ; nil != p; p = p.up {
		p.updateHeight()
	}
}

// internal: rebalance every node from p up to the root
//
// after a rotation p.up is the new sub-tree root, which is visited
// next and only has its height refreshed
func (tree *Tree[V]) rebalanceUp(p *Node[V]) {
	for ; nil != p; p = p.up {
		tree.rebalance(p)
	}
}
