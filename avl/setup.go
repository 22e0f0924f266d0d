// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Tree - type to hold the root node of a tree
type Tree[V constraints.Ordered] struct {
	root     *Node[V]
	observer Observer[V]
}

// New - create an initially empty tree
func New[V constraints.Ordered]() *Tree[V] {
	return &Tree[V]{
		root:     nil,
		observer: nil,
	}
}

// NewFrom - create a tree by adding each value in sequence
func NewFrom[V constraints.Ordered](values ...V) *Tree[V] {
	tree := New[V]()
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

// SetObserver - receive a notification for every rotation, nil to
// disable
func (tree *Tree[V]) SetObserver(observer Observer[V]) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return nil == tree.root
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree[V]) Height() int {
	return tree.root.Height()
}

// Count - number of nodes currently in the tree
//
// there is no stored counter, so this visits every node
func (tree *Tree[V]) Count() int {
	return count(tree.root)
}

func count[V constraints.Ordered](p *Node[V]) int {
	if nil == p {
		return 0
	}
	return 1 + count(p.left) + count(p.right)
}
