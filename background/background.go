// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of goroutines that share a single
// shutdown signal and can be waited for as a group
package background

import (
	"sync"
)

// Process - a background task
//
// Run must return soon after the shutdown channel is closed, it may
// also return earlier when its work is complete
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started group
type T struct {
	shutdown chan struct{}
	once     sync.Once
	done     chan struct{}
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}

	wg := sync.WaitGroup{}
	wg.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(p Process) {
			defer wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}

	go func() {
		wg.Wait()
		close(register.done)
	}()

	return register
}

// Stop - signal all processes to stop and wait for them to finish
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	<-t.done
}

// Done - closed when every process has returned
func (t *T) Done() <-chan struct{} {
	return t.done
}

// Wait - block until every process has returned
func (t *T) Wait() {
	<-t.done
}
