// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// height of an absent sub-tree
const emptyHeight = -1

// Node - a node in the tree
type Node[V constraints.Ordered] struct {
	left   *Node[V] // left sub-tree
	right  *Node[V] // right sub-tree
	up     *Node[V] // points to parent node, nil for the root
	value  V        // key for ordering
	height int      // 1 + max(left.height, right.height)
}

// create a detached leaf
func newNode[V constraints.Ordered](value V) *Node[V] {
	return &Node[V]{
		value:  value,
		height: 0,
	}
}

// Value - read the value from a node
func (p *Node[V]) Value() V {
	return p.value
}

// Left - the left sub-tree or nil
func (p *Node[V]) Left() *Node[V] {
	return p.left
}

// Right - the right sub-tree or nil
func (p *Node[V]) Right() *Node[V] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[V]) Parent() *Node[V] {
	return p.up
}

// Height - cached height, -1 for a nil node
func (p *Node[V]) Height() int {
	if nil == p {
		return emptyHeight
	}
	return p.height
}

// BalanceFactor - height(right) - height(left)
func (p *Node[V]) BalanceFactor() int {
	return p.right.Height() - p.left.Height()
}

// Depth - get the depth of a node
func (p *Node[V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// the height as determined by the children
func (p *Node[V]) childHeight() int {
	l := p.left.Height()
	r := p.right.Height()
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// recompute the cached height from the children
func (p *Node[V]) updateHeight() {
	p.height = p.childHeight()
}
