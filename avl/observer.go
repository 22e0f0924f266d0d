// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Imbalance - the shape that triggered a rebalance
type Imbalance int

// the four rotation cases
const (
	LeftLeft   Imbalance = iota // single right rotation
	LeftRight  Imbalance = iota // left rotation of left child, then right rotation
	RightRight Imbalance = iota // single left rotation
	RightLeft  Imbalance = iota // right rotation of right child, then left rotation
)

// String - short name of the case
func (i Imbalance) String() string {
	switch i {
	case LeftLeft:
		return "LL"
	case LeftRight:
		return "LR"
	case RightRight:
		return "RR"
	case RightLeft:
		return "RL"
	default:
		return "??"
	}
}

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

// Observer - notified after each rebalance that rotated
//
// pivot is the value of the node that was out of balance
type Observer[V constraints.Ordered] interface {
	Rebalanced(kind Imbalance, pivot V)
}
