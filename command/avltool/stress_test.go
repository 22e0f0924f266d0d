// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func TestStressTrial(t *testing.T) {
	p := StressType{
		Trials:      1,
		Size:        200,
		Limit:       1000,
		Workers:     1,
		DeleteEvery: 2,
	}

	counts := stressCounts{}
	r := rand.New(rand.NewSource(42))
	err := stressTrial(r, p, &counts)
	assert.Nil(t, err, "trial")

	added := counts.added.Uint64()
	assert.True(t, added > 0 && added <= 200, "added: %d", added)
	assert.Equal(t, (added+1)/2, counts.removed.Uint64(), "every other value removed")
	assert.Equal(t, uint64(1), counts.trials.Uint64(), "trials")
	assert.False(t, counts.rotations.IsZero(), "random insertion must rotate")
}

func TestStressTrialSmallLimit(t *testing.T) {
	p := StressType{
		Trials:      1,
		Size:        50,
		Limit:       2,
		Workers:     1,
		DeleteEvery: 1,
	}

	counts := stressCounts{}
	r := rand.New(rand.NewSource(1))
	err := stressTrial(r, p, &counts)
	assert.Nil(t, err, "trial")
	assert.Equal(t, uint64(1), counts.added.Uint64(), "only the value 1 is possible")
	assert.Equal(t, uint64(1), counts.removed.Uint64(), "removed")
}

func TestRunStress(t *testing.T) {
	log := logger.New(logCategory)

	p := StressType{
		Trials:      6,
		Size:        200,
		Limit:       1000,
		Workers:     3,
		DeleteEvery: 2,
		Seed:        11,
	}

	buffer := &bytes.Buffer{}
	err := runStress(log, buffer, p, nil)
	assert.Nil(t, err, "stress")
	assert.Contains(t, buffer.String(), "WORKER", "report header")
	assert.Contains(t, buffer.String(), "TOTAL", "report footer")
}

func TestRunStressInterrupted(t *testing.T) {
	log := logger.New(logCategory)

	p := StressType{
		Trials:      1000000,
		Size:        900,
		Limit:       20000,
		Workers:     2,
		DeleteEvery: 2,
		Seed:        3,
	}

	stop := make(chan struct{})
	close(stop)

	buffer := &bytes.Buffer{}
	err := runStress(log, buffer, p, stop)
	assert.Equal(t, fault.ErrInterrupted, err, "interrupted")
}

func TestRunStressNoWorkers(t *testing.T) {
	log := logger.New(logCategory)

	p := StressType{
		Trials:      1,
		Size:        10,
		Limit:       100,
		DeleteEvery: 1,
	}

	err := runStress(log, &bytes.Buffer{}, p, nil)
	assert.Equal(t, fault.ErrInvalidStressParameter, err, "zero workers")
}
