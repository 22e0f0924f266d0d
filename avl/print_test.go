// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func TestString(t *testing.T) {
	tree := avl.NewFrom(1, 2, 3)
	assert.Equal(t, "AVL pre-order { 2, 1, 3 }", tree.String(), "string")
}

func TestPrint(t *testing.T) {
	tree := avl.NewFrom(2, 1, 3)

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)

	expected := "       /------+ 3 ^2 h=0 +0\n" +
		"|------+ 2 ^<nil> h=1 +0\n" +
		"       \\------+ 1 ^2 h=0 +0\n"

	assert.Equal(t, 2, depth, "depth")
	assert.Equal(t, expected, buffer.String(), "picture")
}

func TestPrintEmpty(t *testing.T) {
	buffer := &bytes.Buffer{}
	assert.Equal(t, 0, avl.New[string]().Print(buffer), "depth")
	assert.Equal(t, "", buffer.String(), "picture")
}
