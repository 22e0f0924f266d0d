// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// PreOrder - values in node, left, right order
func (tree *Tree[V]) PreOrder() []V {
	values := make([]V, 0, 16)
	stack := []*Node[V]{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != p {
			values = append(values, p.value)
			stack = append(stack, p.right, p.left)
		}
	}
	return values
}

// String - pre-order listing of the values
func (tree *Tree[V]) String() string {
	values := tree.PreOrder()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return "AVL pre-order { " + strings.Join(s, ", ") + " }"
}

// Print - display an ASCII graphic representation of the tree
//
// returns the number of levels
func (tree *Tree[V]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[V constraints.Ordered](w io.Writer, tree *Node[V], prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.value
	}
	fmt.Fprintf(w, "%v ^%v h=%d %+d\n", tree.value, up, tree.height, tree.BalanceFactor())
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
