// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbench/counter"
)

// Stats - snapshot of the work counters of a tree
type Stats struct {
	Rotations   uint64 `json:"rotations"`
	Comparisons uint64 `json:"comparisons"`
}

// live counters
type stats struct {
	rotations   counter.Counter
	comparisons counter.Counter
}

// Stats - read the current counters
func (tree *Tree) Stats() Stats {
	return Stats{
		Rotations:   tree.stats.rotations.Uint64(),
		Comparisons: tree.stats.comparisons.Uint64(),
	}
}

// ResetStats - zero the counters, the tree is not changed
func (tree *Tree) ResetStats() {
	tree.stats.rotations.Reset()
	tree.stats.comparisons.Reset()
}
