// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - key sequences for driving the tree benchmarks
//
// all randomness comes from a caller supplied *rand.Rand so that a
// run can be repeated exactly from its seed
package workload
