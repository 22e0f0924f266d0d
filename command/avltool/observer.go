// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
)

// rotationLogger - writes each rebalance to a log channel
type rotationLogger[V constraints.Ordered] struct {
	log *logger.L
}

func (r rotationLogger[V]) Rebalanced(kind avl.Imbalance, pivot V) {
	r.log.Debugf("rebalance: %s at: %v", kind, pivot)
}

// rotationCounter - only counts rebalances
type rotationCounter[V constraints.Ordered] struct {
	count *counter.Counter
}

func (r rotationCounter[V]) Rebalanced(kind avl.Imbalance, pivot V) {
	r.count.Increment()
}
