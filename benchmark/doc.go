// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - timing harness comparing the delete replacement
// modes of the avl package
//
// scenarios:
//
//   random        insert 0..n-1 shuffled, delete the first half of
//                 the shuffled keys
//   sorted        insert 0..n-1 ascending, delete the same random half
//   long-running  fill from a pool of 2·size keys then run a steady
//                 stream of delete/insert pairs
//
// only the deletion phase (or the churn phase) is timed and counted.
// Every method of one repetition sees exactly the same keys.
package benchmark
