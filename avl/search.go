// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Contains - true if the value is in the tree
func (tree *Tree[V]) Contains(value V) bool {
	return nil != search(value, tree.root)
}

// internal: locate the node holding a value, nil if absent
func search[V constraints.Ordered](value V, p *Node[V]) *Node[V] {
	for nil != p {
		switch {
		case value == p.value:
			return p
		case value < p.value:
			p = p.left
		default:
			p = p.right
		}
	}
	return nil
}
