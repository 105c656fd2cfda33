// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"strings"
	"time"

	"github.com/bitmark-inc/avlbench/avl"
	"github.com/bitmark-inc/avlbench/fault"
)

// scenario names
const (
	Random      = "random"
	Sorted      = "sorted"
	LongRunning = "long-running"
)

// Scenarios - all scenario names in run order
func Scenarios() []string {
	return []string{Random, Sorted, LongRunning}
}

// ChurnConfiguration - size and length of the long-running scenario
type ChurnConfiguration struct {
	Size       int `gluamapper:"size" json:"size"`
	Operations int `gluamapper:"operations" json:"operations"`
}

// Configuration - what to run
type Configuration struct {
	Seed             int64              `gluamapper:"seed" json:"seed"`
	Sizes            []int              `gluamapper:"sizes" json:"sizes"`
	Repetitions      int                `gluamapper:"repetitions" json:"repetitions"`
	Scenarios        []string           `gluamapper:"scenarios" json:"scenarios"`
	Methods          []string           `gluamapper:"methods" json:"methods"`
	LongRunning      ChurnConfiguration `gluamapper:"long_running" json:"long_running"`
	SearchOperations int                `gluamapper:"search_operations" json:"search_operations"`
	Check            bool               `gluamapper:"check" json:"check"`
	ProgressInterval string             `gluamapper:"progress_interval" json:"progress_interval"`
}

// validated form of the configuration
type plan struct {
	seed             int64
	sizes            []int
	repetitions      int
	scenarios        map[string]bool
	modes            []avl.Mode
	churn            ChurnConfiguration
	searchOperations int
	check            bool
	interval         time.Duration
}

// Validate - check a configuration without running anything
func (config *Configuration) Validate() error {
	_, err := config.plan()
	return err
}

func (config *Configuration) plan() (*plan, error) {
	if config.Repetitions <= 0 {
		return nil, fault.ErrInvalidRepetitions
	}

	p := &plan{
		seed:             config.Seed,
		repetitions:      config.Repetitions,
		scenarios:        make(map[string]bool),
		churn:            config.LongRunning,
		searchOperations: config.SearchOperations,
		check:            config.Check,
	}

	for _, s := range config.Scenarios {
		s = strings.ToLower(strings.TrimSpace(s))
		switch s {
		case Random, Sorted, LongRunning:
			p.scenarios[s] = true
		default:
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidScenario, s)
		}
	}
	if 0 == len(p.scenarios) {
		return nil, fmt.Errorf("%w: none selected", fault.ErrInvalidScenario)
	}

	if p.scenarios[Random] || p.scenarios[Sorted] {
		if 0 == len(config.Sizes) {
			return nil, fault.ErrInvalidSize
		}
		for _, n := range config.Sizes {
			if n <= 0 {
				return nil, fmt.Errorf("%w: %d", fault.ErrInvalidSize, n)
			}
		}
		p.sizes = append(p.sizes, config.Sizes...)
	}

	if p.scenarios[LongRunning] {
		if config.LongRunning.Size <= 0 {
			return nil, fmt.Errorf("%w: long running: %d", fault.ErrInvalidSize, config.LongRunning.Size)
		}
		if config.LongRunning.Operations <= 0 {
			return nil, fault.ErrInvalidOperations
		}
	}

	seen := make(map[avl.Mode]bool)
	for _, m := range config.Methods {
		mode, err := avl.ParseMode(m)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", err, m)
		}
		if !seen[mode] {
			seen[mode] = true
			p.modes = append(p.modes, mode)
		}
	}
	if 0 == len(p.modes) {
		p.modes = avl.Modes()
	}

	if "" != config.ProgressInterval {
		d, err := time.ParseDuration(config.ProgressInterval)
		if nil != err {
			return nil, err
		}
		if d < 0 {
			return nil, fmt.Errorf("progress interval: %s is negative", d)
		}
		p.interval = d
	}
	return p, nil
}
