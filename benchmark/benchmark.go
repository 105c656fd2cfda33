// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"context"
	"math/rand"

	"github.com/bitmark-inc/avlbench/avl"
	"github.com/bitmark-inc/avlbench/background"
	"github.com/bitmark-inc/avlbench/fault"
	"github.com/bitmark-inc/avlbench/results"
	"github.com/bitmark-inc/avlbench/workload"
	"github.com/bitmark-inc/logger"
)

// number of operations between cancellation checks and progress offers
const batchSize = 4096

// Runner - runs every configured cell and records its row
type Runner struct {
	plan     *plan
	recorder results.Recorder
	progress *progress
	log      *logger.L
	rows     int
}

// New - validate the configuration and create a runner
func New(config *Configuration, recorder results.Recorder, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == recorder {
		return nil, fault.ErrNoRecorder
	}
	p, err := config.plan()
	if nil != err {
		return nil, err
	}
	return &Runner{
		plan:     p,
		recorder: recorder,
		progress: newProgress(p.interval, log),
		log:      log,
	}, nil
}

// Run - run all cells in order, stopping early if the context is
// cancelled; returns the number of rows recorded
//
// the recorder is not closed
func (r *Runner) Run(ctx context.Context) (int, error) {

	bg := background.Start(background.Processes{r.progress}, nil)
	defer bg.Stop()

	r.rows = 0
	rng := rand.New(rand.NewSource(r.plan.seed))

	for _, n := range r.plan.sizes {
		for rep := 1; rep <= r.plan.repetitions; rep += 1 {

			// one key sequence per repetition, shared by both
			// scenarios and every method
			keys := workload.Shuffled(n, rng)
			remove := workload.Half(keys)
			live := keys[len(remove):]

			if r.plan.scenarios[Random] {
				for _, mode := range r.plan.modes {
					c := cell{scenario: Random, size: n, repetition: rep, mode: mode}
					if err := r.scaling(ctx, c, keys, remove, live); nil != err {
						return r.rows, err
					}
				}
			}

			if r.plan.scenarios[Sorted] {
				ascending := workload.Ascending(n)
				for _, mode := range r.plan.modes {
					c := cell{scenario: Sorted, size: n, repetition: rep, mode: mode}
					if err := r.scaling(ctx, c, ascending, remove, live); nil != err {
						return r.rows, err
					}
				}
			}
		}
	}

	if r.plan.scenarios[LongRunning] {
		size := r.plan.churn.Size
		for rep := 1; rep <= r.plan.repetitions; rep += 1 {
			seed := rng.Int63()
			for _, mode := range r.plan.modes {
				c := cell{scenario: LongRunning, size: size, repetition: rep, mode: mode}
				churn := workload.NewChurn(size, rand.New(rand.NewSource(seed)))
				if err := r.longRunning(ctx, c, churn); nil != err {
					return r.rows, err
				}
			}
		}
	}

	r.log.Infof("completed: %d rows", r.rows)
	return r.rows, nil
}

// hand a finished cell to the recorder
func (r *Runner) record(row results.Row) error {
	r.log.Debugf("row: %+v", row)
	if err := r.recorder.Record(row); nil != err {
		r.log.Errorf("record error: %s", err)
		return err
	}
	r.rows += 1
	return nil
}

// check for cancellation and offer progress
func (r *Runner) batch(ctx context.Context, c cell, tree *avl.Tree, done int, total int) error {
	if err := ctx.Err(); nil != err {
		return err
	}
	r.progress.publish(Snapshot{
		Scenario:   c.scenario,
		Size:       c.size,
		Repetition: c.repetition,
		Method:     c.mode.String(),
		Done:       done,
		Total:      total,
		Rotations:  tree.Stats().Rotations,
	})
	return nil
}
