// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// script actions
const (
	actionAdd      = "add"
	actionRemove   = "remove"
	actionContains = "contains"
)

// a converted Operation
type step[V constraints.Ordered] struct {
	action string
	value  V
}

// convert configured operations, rejecting unknown actions
func convertOperations[V constraints.Ordered](operations []Operation, convert converter[V]) ([]step[V], error) {
	steps := make([]step[V], 0, len(operations))
	for _, op := range operations {
		switch op.Action {
		case actionAdd, actionRemove, actionContains:
		default:
			return nil, fault.ErrInvalidAction
		}
		v, err := convert(op.Value)
		if nil != err {
			return nil, err
		}
		steps = append(steps, step[V]{action: op.Action, value: v})
	}
	return steps, nil
}

// runScript - build from the initial values then apply each operation
// in turn, checking the tree after every step
func runScript[V constraints.Ordered](log *logger.L, out io.Writer, conf *Configuration, convert converter[V], verbose bool) error {

	initial, err := convertAll(conf.Initial, convert)
	if nil != err {
		return err
	}
	steps, err := convertOperations(conf.Operations, convert)
	if nil != err {
		return err
	}

	log.Infof("script: %d initial values  %d operations", len(initial), len(steps))

	tree := avl.New[V]()
	tree.SetObserver(rotationLogger[V]{log: log})
	for _, v := range initial {
		tree.Add(v)
	}

	fmt.Fprintf(out, "initial: %s\n", tree)
	if err := checkTree(tree); nil != err {
		log.Errorf("initial tree: %s", err)
		return err
	}
	if verbose {
		tree.Print(out)
	}

	for i, s := range steps {
		switch s.action {
		case actionAdd:
			tree.Add(s.value)
			fmt.Fprintf(out, "%d: add %v: %s\n", i, s.value, tree)
		case actionRemove:
			removed := tree.Remove(s.value)
			fmt.Fprintf(out, "%d: remove %v: %t: %s\n", i, s.value, removed, tree)
		case actionContains:
			fmt.Fprintf(out, "%d: contains %v: %t\n", i, s.value, tree.Contains(s.value))
		}

		if err := checkTree(tree); nil != err {
			log.Errorf("step: %d  %s %v: %s", i, s.action, s.value, err)
			return err
		}
		if verbose {
			tree.Print(out)
		}
	}

	log.Infof("script: final height: %d  count: %d", tree.Height(), tree.Count())
	return nil
}

// buildTree - construct from a list and show the result
func buildTree[V constraints.Ordered](log *logger.L, out io.Writer, items []interface{}, convert converter[V], verbose bool) error {

	values, err := convertAll(items, convert)
	if nil != err {
		return err
	}
	if 0 == len(values) {
		return fault.ErrMissingValues
	}

	tree := avl.New[V]()
	tree.SetObserver(rotationLogger[V]{log: log})
	for _, v := range values {
		tree.Add(v)
	}

	fmt.Fprintf(out, "%s\n", tree)
	fmt.Fprintf(out, "height: %d  count: %d\n", tree.Height(), tree.Count())
	if verbose {
		tree.Print(out)
	}
	return checkTree(tree)
}

// run all validators
func checkTree[V constraints.Ordered](tree *avl.Tree[V]) error {
	if !tree.IsValid() {
		return fault.ErrTreeInconsistent
	}
	if !tree.IsBalanced() {
		return fault.ErrTreeUnbalanced
	}
	if !tree.IsOrdered() {
		return fault.ErrTreeUnordered
	}
	return nil
}
