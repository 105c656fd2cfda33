// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
)

// Snapshot - position of a running benchmark
type Snapshot struct {
	Scenario   string
	Size       int
	Repetition int
	Method     string
	Done       int
	Total      int
	Rotations  uint64
}

// progress publication
//
// the runner offers a snapshot after every batch; the limiter lets at
// most one through per interval and the background Run logs it, so
// the timed loop never waits on the log
type progress struct {
	limiter *rate.Limiter
	queue   chan Snapshot
	log     *logger.L
}

func newProgress(interval time.Duration, log *logger.L) *progress {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &progress{
		limiter: rate.NewLimiter(limit, 1),
		queue:   make(chan Snapshot, 1),
		log:     log,
	}
}

// offer a snapshot, returns true if it was queued for logging
func (p *progress) publish(s Snapshot) bool {
	if !p.limiter.Allow() {
		return false
	}
	select {
	case p.queue <- s:
		return true
	default:
		return false
	}
}

// Run - background process logging queued snapshots
func (p *progress) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case s := <-p.queue:
			p.report(s)
		}
	}

	// anything left over
	select {
	case s := <-p.queue:
		p.report(s)
	default:
	}
	log.Info("stopped")
}

func (p *progress) report(s Snapshot) {
	percent := 100.0
	if s.Total > 0 {
		percent = 100.0 * float64(s.Done) / float64(s.Total)
	}
	p.log.Infof("%s  size: %d  repetition: %d  method: %s  %d/%d (%.1f%%)  rotations: %d",
		s.Scenario, s.Size, s.Repetition, s.Method, s.Done, s.Total, percent, s.Rotations)
}
