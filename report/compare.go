// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"github.com/bitmark-inc/avlbench/avl"
)

// Comparison - the two methods of one (scenario, size) group
type Comparison struct {
	Scenario  string  `json:"scenario"`
	Size      int     `json:"size"`
	Standard  Summary `json:"standard"`
	Optimized Summary `json:"optimized"`

	// optimized mean / standard mean, zero when the standard mean is zero
	RotationRatio float64 `json:"rotation_ratio"`
	ElapsedRatio  float64 `json:"elapsed_ratio"`

	// optimized mean - standard mean
	HeightDifference float64 `json:"height_difference"`
	DepthDifference  float64 `json:"depth_difference"`
}

// Compare - pair standard and optimized summaries of the same group
//
// groups that lack either method are skipped; order follows the
// summaries
func Compare(summaries []Summary) []Comparison {

	type key struct {
		scenario string
		size     int
	}

	standard := make(map[key]Summary)
	optimized := make(map[key]Summary)
	order := []key{}

	for _, s := range summaries {
		k := key{scenario: s.Scenario, size: s.Size}
		mode, err := avl.ParseMode(s.Method)
		if nil != err {
			continue
		}
		_, seenS := standard[k]
		_, seenO := optimized[k]
		if !seenS && !seenO {
			order = append(order, k)
		}
		switch mode {
		case avl.Standard:
			standard[k] = s
		case avl.Optimized:
			optimized[k] = s
		}
	}

	comparisons := make([]Comparison, 0, len(order))
	for _, k := range order {
		s, okS := standard[k]
		o, okO := optimized[k]
		if !okS || !okO {
			continue
		}
		comparisons = append(comparisons, Comparison{
			Scenario:         k.scenario,
			Size:             k.size,
			Standard:         s,
			Optimized:        o,
			RotationRatio:    ratio(o.Rotations.Mean, s.Rotations.Mean),
			ElapsedRatio:     ratio(o.Elapsed.Mean, s.Elapsed.Mean),
			HeightDifference: o.Height.Mean - s.Height.Mean,
			DepthDifference:  o.AverageDepth.Mean - s.AverageDepth.Mean,
		})
	}
	return comparisons
}

func ratio(a float64, b float64) float64 {
	if 0 == b {
		return 0
	}
	return a / b
}
