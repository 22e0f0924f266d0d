// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific value from the tree
//
// returns false if the value was not present
func (tree *Tree[V]) Remove(value V) bool {
	if nil == tree.root {
		return false
	}

	// locate the node and remember its parent
	var parent *Node[V]
	q := tree.root
	for nil != q && value != q.value {
		parent = q
		if value < q.value {
			q = q.left
		} else {
			q = q.right
		}
	}
	if nil == q { // value not in tree
		return false
	}

	// lowest node whose sub-tree changed
	start := parent

	switch {
	case nil == q.left && nil == q.right:
		tree.replaceChild(parent, q, nil)

	case nil == q.left:
		q.right.up = parent
		tree.replaceChild(parent, q, q.right)

	case nil == q.right:
		q.left.up = parent
		tree.replaceChild(parent, q, q.left)

	default:
		start = tree.promoteSuccessor(parent, q)
	}

	// detach the removed node completely
	q.left = nil
	q.right = nil
	q.up = nil

	tree.updateHeights(start)
	tree.rebalanceUp(start)

	return true
}

// internal: replace q (which has two children) by its in-order
// successor, the left-most node of the right sub-tree
//
// the successor node itself is moved, values are never copied, so
// other references to it stay valid.  Returns the node from which
// heights and balance must be repaired.
func (tree *Tree[V]) promoteSuccessor(parent *Node[V], q *Node[V]) *Node[V] {
	successor := q.right
	successorParent := q.right
	for nil != successor.left {
		successorParent = successor
		successor = successor.left
	}

	start := successorParent

	if successor == q.right {
		// direct right child: keeps its own right sub-tree
		successor.left = q.left
		successor.left.up = successor

	} else {
		// deeper: the successor's right sub-tree takes its place
		successorParent.left = successor.right
		if nil != successorParent.left {
			successorParent.left.up = successorParent
		}

		successor.left = q.left
		successor.left.up = successor
		successor.right = q.right
		successor.right.up = successor
	}

	successor.up = parent
	tree.replaceChild(parent, q, successor)

	return start
}
