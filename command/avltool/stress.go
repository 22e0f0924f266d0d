// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// how often to log progress
const progressInterval = 5 * time.Second

// totals for one worker, read by the main routine while running
type stressCounts struct {
	trials    counter.Counter
	added     counter.Counter
	removed   counter.Counter
	rotations counter.Counter
}

// one background worker running a share of the trials
type stressWorker struct {
	id     int
	trials int
	params StressType
	log    *logger.L
	counts stressCounts
	err    error
}

// Run - background process
func (w *stressWorker) Run(args interface{}, shutdown <-chan struct{}) {

	r := rand.New(rand.NewSource(w.params.Seed + int64(w.id)))
	w.log.Infof("start: %d trials", w.trials)

loop:
	for i := 0; i < w.trials; i += 1 {
		select {
		case <-shutdown:
			w.log.Info("shutdown")
			break loop
		default:
		}
		if err := stressTrial(r, w.params, &w.counts); nil != err {
			w.err = err
			fault.Criticalf("worker: %d  trial: %d  error: %s", w.id, i, err)
			w.log.Errorf("trial: %d  error: %s", i, err)
			break loop
		}
	}
	w.log.Infof("finished: %d trials", w.counts.trials.Uint64())
}

// stressTrial - build from unique random values in [1, limit) then
// delete every n-th one, validating after each removal
func stressTrial(r *rand.Rand, p StressType, counts *stressCounts) error {

	seen := make(map[int]struct{}, p.Size)
	values := make([]int, 0, p.Size)
	for i := 0; i < p.Size; i += 1 {
		v := 1 + r.Intn(p.Limit-1)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	tree := avl.New[int]()
	tree.SetObserver(rotationCounter[int]{count: &counts.rotations})
	for _, v := range values {
		tree.Add(v)
	}
	counts.added.Add(uint64(len(values)))

	if err := checkTree(tree); nil != err {
		return err
	}

	for i := 0; i < len(values); i += p.DeleteEvery {
		if !tree.Remove(values[i]) {
			return fault.ErrTreeInconsistent
		}
		counts.removed.Increment()
		if err := checkTree(tree); nil != err {
			return err
		}
	}

	counts.trials.Increment()
	return nil
}

// runStress - spread the trials over background workers, stop early
// if the stop channel is closed
func runStress(log *logger.L, out io.Writer, p StressType, stop <-chan struct{}) error {

	if p.Workers < 1 {
		return fault.ErrInvalidStressParameter
	}
	if 0 == p.Seed {
		p.Seed = time.Now().UnixNano()
	}
	log.Infof("stress: trials: %d  size: %d  limit: %d  workers: %d  seed: %d",
		p.Trials, p.Size, p.Limit, p.Workers, p.Seed)

	workers := make([]*stressWorker, p.Workers)
	processes := make(background.Processes, p.Workers)
	for i := range workers {
		n := p.Trials / p.Workers
		if i < p.Trials%p.Workers {
			n += 1
		}
		workers[i] = &stressWorker{
			id:     i,
			trials: n,
			params: p,
			log:    logger.New(fmt.Sprintf("stress-%d", i)),
		}
		processes[i] = workers[i]
	}

	start := time.Now()
	handle := background.Start(processes, nil)

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	interrupted := false
wait:
	for {
		select {
		case <-handle.Done():
			break wait
		case <-stop:
			log.Warn("stress: interrupted")
			handle.Stop()
			interrupted = true
			break wait
		case <-ticker.C:
			done := uint64(0)
			for _, w := range workers {
				done += w.counts.trials.Uint64()
			}
			log.Infof("stress: progress: %d of %d trials", done, p.Trials)
		}
	}

	elapsed := time.Since(start)
	stressReport(out, workers, elapsed)

	for _, w := range workers {
		if nil != w.err {
			return w.err
		}
	}
	if interrupted {
		return fault.ErrInterrupted
	}
	log.Infof("stress: completed in: %s", elapsed)
	return nil
}

// print a table of the per-worker totals
func stressReport(out io.Writer, workers []*stressWorker, elapsed time.Duration) {

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"worker", "trials", "added", "removed", "rotations", "status"})

	var trials, added, removed, rotations uint64
	for _, w := range workers {
		status := "ok"
		if nil != w.err {
			status = w.err.Error()
		}
		t.AppendRow(table.Row{
			w.id,
			humanize.Comma(int64(w.counts.trials.Uint64())),
			humanize.Comma(int64(w.counts.added.Uint64())),
			humanize.Comma(int64(w.counts.removed.Uint64())),
			humanize.Comma(int64(w.counts.rotations.Uint64())),
			status,
		})
		trials += w.counts.trials.Uint64()
		added += w.counts.added.Uint64()
		removed += w.counts.removed.Uint64()
		rotations += w.counts.rotations.Uint64()
	}

	t.AppendFooter(table.Row{
		"total",
		humanize.Comma(int64(trials)),
		humanize.Comma(int64(added)),
		humanize.Comma(int64(removed)),
		humanize.Comma(int64(rotations)),
		elapsed.Round(time.Millisecond).String(),
	})
	t.Render()
}
