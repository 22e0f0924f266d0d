// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// internal: rotate toward the left about p, the right child of p
// becomes the root of the sub-tree and is returned
//
//	    p                r
//	   / \              / \
//	  a   r     ->     p   c
//	     / \          / \
//	    b   c        a   b
//
// the link from the parent of p is not touched and r.up still points
// to p; the caller must reattach r
func rotateLeft[V constraints.Ordered](p *Node[V]) *Node[V] {
	r := p.right

	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}

	r.left = p
	p.up = r

	// p is now below r so must be done first
	p.updateHeight()
	r.updateHeight()

	return r
}

// internal: rotate toward the right about p, mirror of rotateLeft
//
//	      p            l
//	     / \          / \
//	    l   c   ->   a   p
//	   / \              / \
//	  a   b            b   c
func rotateRight[V constraints.Ordered](p *Node[V]) *Node[V] {
	l := p.left

	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}

	l.right = p
	p.up = l

	p.updateHeight()
	l.updateHeight()

	return l
}
