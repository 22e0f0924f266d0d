// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
)

// runs until shutdown
type looper struct {
	count   counter.Counter
	stopped bool
}

func (l *looper) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		l.count.Increment()
		time.Sleep(time.Millisecond)
	}
	l.stopped = true
}

// finishes by itself
type finite struct {
	n    int
	seen interface{}
}

func (f *finite) Run(args interface{}, shutdown <-chan struct{}) {
	f.seen = args
	for i := 0; i < 10; i += 1 {
		f.n += 1
	}
}

func TestStop(t *testing.T) {
	l1 := &looper{}
	l2 := &looper{}

	p := background.Start(background.Processes{l1, l2}, nil)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.True(t, l1.stopped, "first stopped")
	assert.True(t, l2.stopped, "second stopped")
	assert.False(t, l1.count.IsZero(), "first ran")
	assert.False(t, l2.count.IsZero(), "second ran")

	// second stop is harmless
	p.Stop()
}

func TestWait(t *testing.T) {
	f1 := &finite{}
	f2 := &finite{}

	p := background.Start(background.Processes{f1, f2}, "args")
	p.Wait()

	assert.Equal(t, 10, f1.n, "first count")
	assert.Equal(t, 10, f2.n, "second count")
	assert.Equal(t, "args", f1.seen, "args passed")

	select {
	case <-p.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestEmpty(t *testing.T) {
	p := background.Start(background.Processes{}, nil)
	p.Wait()
	p.Stop()
}
