// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func TestProcessCommand(t *testing.T) {
	log := logger.New(logCategory)

	conf := &Configuration{
		Keys:    keysInteger,
		Initial: numbers(1, 2, 3),
		Operations: []Operation{
			{Action: actionRemove, Value: float64(2)},
		},
		Stress: StressType{
			Trials:      2,
			Size:        50,
			Limit:       500,
			Workers:     1,
			DeleteEvery: 3,
			Seed:        5,
		},
	}

	buffer := &bytes.Buffer{}
	err := processCommand(log, buffer, []string{"run"}, conf, false, nil)
	assert.Nil(t, err, "run")
	assert.Equal(t, "initial: AVL pre-order { 2, 1, 3 }\n0: remove 2: true: AVL pre-order { 3, 1 }\n", buffer.String(), "run output")

	buffer.Reset()
	err = processCommand(log, buffer, []string{"build", "10", "20", "30", "40"}, conf, false, nil)
	assert.Nil(t, err, "build")
	assert.Equal(t, "AVL pre-order { 20, 10, 30, 40 }\nheight: 2  count: 4\n", buffer.String(), "build output")

	buffer.Reset()
	err = processCommand(log, buffer, []string{"stress"}, conf, false, nil)
	assert.Nil(t, err, "stress")

	buffer.Reset()
	err = processCommand(log, buffer, []string{"help"}, conf, false, nil)
	assert.Nil(t, err, "help")
	assert.True(t, strings.HasPrefix(buffer.String(), "commands:\n"), "help output")
	for _, c := range commands {
		assert.Contains(t, buffer.String(), c.name, "help lists: %s", c.name)
	}

	err = processCommand(log, buffer, []string{"rotate"}, conf, false, nil)
	assert.Equal(t, fault.ErrNotFoundCommand, err, "unknown command")
}

func TestProcessCommandKeys(t *testing.T) {
	log := logger.New(logCategory)

	conf := &Configuration{Keys: keysString}

	buffer := &bytes.Buffer{}
	err := processCommand(log, buffer, []string{"build", "b", "a", "c"}, conf, false, nil)
	assert.Nil(t, err, "build strings")
	assert.Equal(t, "AVL pre-order { b, a, c }\nheight: 1  count: 3\n", buffer.String(), "build output")

	conf.Keys = "float"
	err = processCommand(log, buffer, []string{"run"}, conf, false, nil)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "run with bad keys")
	err = processCommand(log, buffer, []string{"build", "1"}, conf, false, nil)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "build with bad keys")
}
