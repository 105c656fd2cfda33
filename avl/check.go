// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlbench/fault"
)

// Check - verify ordering, balance, cached heights and node count
//
// returns nil for a consistent tree, otherwise an error wrapping one
// of the fault.ErrTree… values and naming the first offending key
func (tree *Tree) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: actual: %d  expected: %d", fault.ErrTreeCount, n, tree.count)
	}
	return nil
}

// internal: consistency checker
//
// every key in the sub-tree must satisfy low <= key <= high, where a
// nil bound is unlimited; returns the node count and recomputed height
//
// equal keys may appear on either side: duplicates are inserted to the
// right but a rotation can carry one into a left sub-tree
func check(p *node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && low.Compare(p.key) > 0 {
		return 0, 0, fmt.Errorf("%w: key: %v below: %v", fault.ErrTreeOrder, p.key, low)
	}
	if nil != high && high.Compare(p.key) < 0 {
		return 0, 0, fmt.Errorf("%w: key: %v above: %v", fault.ErrTreeOrder, p.key, high)
	}

	nl, hl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v cached: %d  actual: %d", fault.ErrTreeHeight, p.key, p.height, h)
	}
	if b := hl - hr; b > 1 || b < -1 {
		return 0, 0, fmt.Errorf("%w: key: %v balance: %+d", fault.ErrTreeBalance, p.key, b)
	}
	return 1 + nl + nr, h, nil
}
