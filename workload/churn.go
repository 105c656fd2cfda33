// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
)

// Churn - steady state delete/insert stream over a fixed size tree
//
// the pool holds 0..2·size-1 shuffled; the first size entries are the
// keys currently live, the rest are waiting to be added
type Churn struct {
	size int
	pool []int
}

// NewChurn - create a churn stream for a tree of the given size
func NewChurn(size int, rng *rand.Rand) *Churn {
	return &Churn{
		size: size,
		pool: Shuffled(2*size, rng),
	}
}

// Size - number of live keys
func (c *Churn) Size() int {
	return c.size
}

// Initial - keys to populate the tree before the first step
func (c *Churn) Initial() []int {
	keys := make([]int, c.size)
	copy(keys, c.pool[:c.size])
	return keys
}

// Live - keys that are in the tree after the steps taken so far
func (c *Churn) Live() []int {
	return c.Initial()
}

// Step - the k'th operation pair: delete remove then insert add
//
// once every slot has been replaced (k >= size) the key removed and
// the key added are the same, each step then re-inserts a live key
func (c *Churn) Step(k int) (remove int, add int) {
	slot := k % c.size
	remove = c.pool[slot]
	add = c.pool[(k+c.size)%len(c.pool)]
	c.pool[slot] = add
	return remove, add
}
