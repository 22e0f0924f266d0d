// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced AVL tree of ordered values with
// the addition of parent pointers so that height and balance repairs
// can walk from the point of change back up to the root
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches its height (a leaf has height zero and an absent
// sub-tree counts as -1).  After every Add or Remove the heights are
// refreshed bottom-up and each ancestor is rebalanced by one of the
// four classic rotation cases (LL, LR, RR, RL).
//
// Values are unique: adding a value that is already present does
// nothing.  Remove does not copy values between nodes, the in-order
// successor node is relinked into the position of the removed node.
package avl
