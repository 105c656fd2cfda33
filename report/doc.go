// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package report - aggregate repeated benchmark rows
//
// rows are grouped by scenario, size and method; each group gives
// mean, sample standard deviation, minimum and maximum of every
// measurement.  Compare pairs the two replacement methods of a group.
package report
