// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"strconv"

	"github.com/bitmark-inc/avltree/fault"
)

// converts a configuration or command line item to a key
type converter[V any] func(interface{}) (V, error)

// largest magnitude where every integer has an exact float64
const maxExactInteger = 1 << 53

// Lua numbers arrive as float64, command line items as strings
func toInteger(item interface{}) (int, error) {
	switch v := item.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > maxExactInteger {
			return 0, fault.ErrInvalidValue
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if nil != err {
			return 0, fault.ErrInvalidValue
		}
		return n, nil
	default:
		return 0, fault.ErrInvalidValue
	}
}

func toString(item interface{}) (string, error) {
	switch v := item.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fault.ErrInvalidValue
	}
}

// convert a whole list, stopping at the first failure
func convertAll[V any](items []interface{}, convert converter[V]) ([]V, error) {
	values := make([]V, 0, len(items))
	for _, item := range items {
		v, err := convert(item)
		if nil != err {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// command line arguments as configuration items
func argumentItems(arguments []string) []interface{} {
	items := make([]interface{}, len(arguments))
	for i, a := range arguments {
		items[i] = a
	}
	return items
}
