// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package results

import (
	"strconv"
)

// Row - the measurements of one benchmark cell
type Row struct {
	Scenario     string  `json:"scenario"`
	Size         int     `json:"size"`
	Repetition   int     `json:"repetition"`
	Method       string  `json:"method"`
	ElapsedMS    float64 `json:"elapsed_ms"`
	Rotations    uint64  `json:"rotations"`
	Comparisons  uint64  `json:"comparisons"`
	FinalHeight  int     `json:"final_height"`
	AverageDepth float64 `json:"average_depth"`
	SearchNS     float64 `json:"search_ns"`
}

// column names in the order written by the CSV recorder
var header = []string{
	"scenario",
	"size",
	"repetition",
	"method",
	"elapsed_ms",
	"rotations",
	"comparisons",
	"final_height",
	"average_depth",
	"search_ns",
}

// Header - CSV column names
func Header() []string {
	return append([]string{}, header...)
}

// fields - the row as CSV text in header order
func (row Row) fields() []string {
	return []string{
		row.Scenario,
		strconv.Itoa(row.Size),
		strconv.Itoa(row.Repetition),
		row.Method,
		strconv.FormatFloat(row.ElapsedMS, 'f', 3, 64),
		strconv.FormatUint(row.Rotations, 10),
		strconv.FormatUint(row.Comparisons, 10),
		strconv.Itoa(row.FinalHeight),
		strconv.FormatFloat(row.AverageDepth, 'f', 4, 64),
		strconv.FormatFloat(row.SearchNS, 'f', 2, 64),
	}
}
