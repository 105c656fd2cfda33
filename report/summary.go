// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"math"
	"sort"

	"github.com/bitmark-inc/avlbench/avl"
	"github.com/bitmark-inc/avlbench/benchmark"
	"github.com/bitmark-inc/avlbench/results"
)

// Statistic - aggregate of one measurement over the repetitions
type Statistic struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary - one (scenario, size, method) group
type Summary struct {
	Scenario     string    `json:"scenario"`
	Size         int       `json:"size"`
	Method       string    `json:"method"`
	Count        int       `json:"count"`
	Elapsed      Statistic `json:"elapsed_ms"`
	Rotations    Statistic `json:"rotations"`
	Comparisons  Statistic `json:"comparisons"`
	Height       Statistic `json:"final_height"`
	AverageDepth Statistic `json:"average_depth"`
	Search       Statistic `json:"search_ns"`
}

type group struct {
	scenario string
	size     int
	method   string
}

// Summarise - group rows and compute the statistics
//
// the result is ordered by scenario (in run order), size and then
// method with standard before optimized
func Summarise(rows []results.Row) []Summary {

	groups := make(map[group][]results.Row)
	for _, row := range rows {
		g := group{
			scenario: row.Scenario,
			size:     row.Size,
			method:   row.Method,
		}
		groups[g] = append(groups[g], row)
	}

	summaries := make([]Summary, 0, len(groups))
	for g, rows := range groups {
		summaries = append(summaries, Summary{
			Scenario:     g.scenario,
			Size:         g.size,
			Method:       g.method,
			Count:        len(rows),
			Elapsed:      statistic(rows, func(r results.Row) float64 { return r.ElapsedMS }),
			Rotations:    statistic(rows, func(r results.Row) float64 { return float64(r.Rotations) }),
			Comparisons:  statistic(rows, func(r results.Row) float64 { return float64(r.Comparisons) }),
			Height:       statistic(rows, func(r results.Row) float64 { return float64(r.FinalHeight) }),
			AverageDepth: statistic(rows, func(r results.Row) float64 { return r.AverageDepth }),
			Search:       statistic(rows, func(r results.Row) float64 { return r.SearchNS }),
		})
	}

	sort.Slice(summaries, func(i int, j int) bool {
		a := summaries[i]
		b := summaries[j]
		if a.Scenario != b.Scenario {
			ra, rb := scenarioRank(a.Scenario), scenarioRank(b.Scenario)
			if ra != rb {
				return ra < rb
			}
			return a.Scenario < b.Scenario
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		ma, mb := methodRank(a.Method), methodRank(b.Method)
		if ma != mb {
			return ma < mb
		}
		return a.Method < b.Method
	})
	return summaries
}

func statistic(rows []results.Row, value func(results.Row) float64) Statistic {
	if 0 == len(rows) {
		return Statistic{}
	}

	s := Statistic{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
	sum := 0.0
	for _, r := range rows {
		v := value(r)
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(rows))

	if len(rows) > 1 {
		sq := 0.0
		for _, r := range rows {
			d := value(r) - s.Mean
			sq += d * d
		}
		s.StdDev = math.Sqrt(sq / float64(len(rows)-1))
	}
	return s
}

// known scenarios first in run order, anything else after them
func scenarioRank(s string) int {
	for i, name := range benchmark.Scenarios() {
		if name == s {
			return i
		}
	}
	return len(benchmark.Scenarios())
}

func methodRank(m string) int {
	mode, err := avl.ParseMode(m)
	if nil != err {
		return math.MaxInt32
	}
	return int(mode)
}
