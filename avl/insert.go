// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new value into the tree, a value that is already
// present leaves the tree unchanged
func (tree *Tree[V]) Add(value V) {
	if tree.Contains(value) {
		return
	}

	n := newNode(value)

	if nil == tree.root {
		tree.root = n
		return
	}

	// find the last node on the search path
	var parent *Node[V]
	for p := tree.root; nil != p; {
		parent = p
		if value < p.value {
			p = p.left
		} else {
			p = p.right
		}
	}

	if value < parent.value {
		parent.left = n
	} else {
		parent.right = n
	}
	n.up = parent

	// heights first, then balance; rebalance also refreshes the
	// height of each node so the first walk is redundant but harmless
	tree.updateHeights(parent)
	tree.rebalanceUp(parent)
}
