// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbench/fault"
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 as the receiver is less than, equal to
// or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// a node in the tree
type node struct {
	left   *node // left sub-tree
	right  *node // right sub-tree
	key    Item  // key part for ordering
	height int   // 1 + height of the taller sub-tree
}

// per-tree node pool, released nodes are linked through left
type allocator struct {
	pool       *node // linked list of reclaimed nodes
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the pool
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (a *allocator) newNode(key Item) *node {
	if nil == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("avl: node pool corrupt: free: %d", a.freeNodes)
		}
		a.totalNodes += 1
		return &node{
			key:    key,
			height: 1,
		}
	}
	p := a.pool
	a.pool = p.left
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.key = key
	p.height = 1
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator) freeNode(p *node) {
	p.left = a.pool // use as free list pointer
	p.right = nil
	p.key = nil
	p.height = 0
	a.freeNodes += 1
	a.pool = p
}

