// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/avlbench/avl"
	"github.com/bitmark-inc/avlbench/results"
	"github.com/bitmark-inc/avlbench/workload"
)

// one row of the result table
type cell struct {
	scenario   string
	size       int
	repetition int
	mode       avl.Mode
}

func (c cell) String() string {
	return fmt.Sprintf("%s/%d/%d/%s", c.scenario, c.size, c.repetition, c.mode)
}

// random and sorted: build from insert, then time deleting remove
func (r *Runner) scaling(ctx context.Context, c cell, insert []int, remove []int, live []int) error {
	if err := ctx.Err(); nil != err {
		return err
	}

	tree, err := avl.New(c.mode)
	if nil != err {
		return err
	}
	for _, k := range insert {
		tree.Insert(avl.Int(k))
	}
	tree.ResetStats()

	var elapsed time.Duration
	for i := 0; i < len(remove); i += batchSize {
		end := i + batchSize
		if end > len(remove) {
			end = len(remove)
		}

		start := time.Now()
		for _, k := range remove[i:end] {
			tree.Delete(avl.Int(k))
		}
		elapsed += time.Since(start)

		if err := r.batch(ctx, c, tree, end, len(remove)); nil != err {
			return err
		}
	}

	return r.finish(c, tree, elapsed, live)
}

// long-running: fill from the churn pool then time the steady state
func (r *Runner) longRunning(ctx context.Context, c cell, churn *workload.Churn) error {
	if err := ctx.Err(); nil != err {
		return err
	}

	tree, err := avl.New(c.mode)
	if nil != err {
		return err
	}
	for _, k := range churn.Initial() {
		tree.Insert(avl.Int(k))
	}
	tree.ResetStats()

	total := r.plan.churn.Operations
	var elapsed time.Duration
	for i := 0; i < total; i += batchSize {
		end := i + batchSize
		if end > total {
			end = total
		}

		start := time.Now()
		for k := i; k < end; k += 1 {
			remove, add := churn.Step(k)
			tree.Delete(avl.Int(remove))
			tree.Insert(avl.Int(add))
		}
		elapsed += time.Since(start)

		if err := r.batch(ctx, c, tree, end, total); nil != err {
			return err
		}
	}

	return r.finish(c, tree, elapsed, churn.Live())
}

// verify, measure searches and record the row
func (r *Runner) finish(c cell, tree *avl.Tree, elapsed time.Duration, live []int) error {

	// counters first: neither check nor search alters them
	stats := tree.Stats()

	if r.plan.check {
		if err := tree.Check(); nil != err {
			r.log.Criticalf("%s: inconsistent tree: %s", c, err)
			return fmt.Errorf("%s: %w", c, err)
		}
		if len(live) != tree.Count() {
			r.log.Criticalf("%s: count: %d  expected: %d", c, tree.Count(), len(live))
			return fmt.Errorf("%s: count: %d  expected: %d", c, tree.Count(), len(live))
		}
	}

	row := results.Row{
		Scenario:     c.scenario,
		Size:         c.size,
		Repetition:   c.repetition,
		Method:       c.mode.String(),
		ElapsedMS:    float64(elapsed) / float64(time.Millisecond),
		Rotations:    stats.Rotations,
		Comparisons:  stats.Comparisons,
		FinalHeight:  tree.Height(),
		AverageDepth: tree.AverageDepth(),
		SearchNS:     r.search(tree, live),
	}
	return r.record(row)
}

// mean nanoseconds per search of a live key, zero if not configured
//
// every live key is searched for in turn, repeated until the
// configured total is reached
func (r *Runner) search(tree *avl.Tree, live []int) float64 {
	if r.plan.searchOperations <= 0 || 0 == len(live) {
		return 0
	}
	rounds := r.plan.searchOperations / len(live)
	if rounds < 1 {
		rounds = 1
	}

	keys := make([]avl.Item, len(live))
	for i, k := range live {
		keys[i] = avl.Int(k)
	}

	missing := 0
	start := time.Now()
	for i := 0; i < rounds; i += 1 {
		for _, k := range keys {
			if !tree.Search(k) {
				missing += 1
			}
		}
	}
	elapsed := time.Since(start)

	if 0 != missing {
		r.log.Warnf("search: %d live keys not found", missing)
	}
	return float64(elapsed.Nanoseconds()) / float64(rounds*len(keys))
}
