// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// background process logging memory use, the node pool of each tree
// keeps released nodes so allocation should level off
type memstats struct {
	log *logger.L
}

func (m *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	delay := time.NewTicker(statsDelay)
	defer delay.Stop()

	m.log.Info("starting…")
	m.report()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-delay.C:
			m.report()
		}
	}
	m.report()
	m.log.Info("stopped")
}

func (m *memstats) report() {
	var s runtime.MemStats
	runtime.ReadMemStats(&s)

	text, err := json.Marshal(s)
	if nil != err {
		m.log.Errorf("marshal error: %s", err)
	} else {
		m.log.Debugf("stats: %s", text)
	}
	a := s.Alloc / mega
	t := s.TotalAlloc / mega
	o := s.Sys / mega
	m.log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M  GC: %d", a, t, o, s.NumGC)
}
