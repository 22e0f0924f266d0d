// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// IsValid - check cached heights and the up pointers for consistency
//
// every node must have height 1 + max(left, right), every node with
// a parent must be the child on the side its value selects, and only
// the root may have no parent
func (tree *Tree[V]) IsValid() bool {
	if nil != tree.root && nil != tree.root.up {
		return false
	}

	stack := []*Node[V]{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil == p {
			continue
		}

		if p.height != p.childHeight() {
			return false
		}

		if nil != p.up {
			expected := p.up.right
			if p.value < p.up.value {
				expected = p.up.left
			}
			if expected != p {
				return false
			}
		} else if p != tree.root {
			return false
		}

		stack = append(stack, p.right, p.left)
	}
	return true
}

// IsBalanced - every balance factor is in the range [-1, +1]
func (tree *Tree[V]) IsBalanced() bool {
	return balanced(tree.root)
}

func balanced[V constraints.Ordered](p *Node[V]) bool {
	if nil == p {
		return true
	}
	if bf := p.BalanceFactor(); bf < -1 || bf > 1 {
		return false
	}
	return balanced(p.left) && balanced(p.right)
}

// IsOrdered - in-order values are strictly increasing
func (tree *Tree[V]) IsOrdered() bool {
	var last *Node[V]
	ok := true
	inOrder(tree.root, func(p *Node[V]) bool {
		if nil != last && !(last.value < p.value) {
			ok = false
			return false
		}
		last = p
		return true
	})
	return ok
}

// internal: visit nodes in order until f returns false
func inOrder[V constraints.Ordered](p *Node[V], f func(*Node[V]) bool) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, f) && f(p) && inOrder(p.right, f)
}
