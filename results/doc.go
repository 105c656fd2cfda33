// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package results - persistence of benchmark result rows
//
// a Recorder accepts rows as they are produced; rows can go to a CSV
// file for external plotting, to a LevelDB store that the summary
// command reads back, or to both through Multi
package results
