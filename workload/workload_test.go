// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbench/workload"
)

func TestAscending(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, workload.Ascending(5), "wrong sequence")
	assert.Equal(t, []int{}, workload.Ascending(0), "wrong empty sequence")
	assert.Equal(t, []int{}, workload.Ascending(-3), "wrong negative sequence")
}

func TestShuffled(t *testing.T) {
	a := workload.Shuffled(1000, rand.New(rand.NewSource(42)))
	b := workload.Shuffled(1000, rand.New(rand.NewSource(42)))
	c := workload.Shuffled(1000, rand.New(rand.NewSource(43)))

	assert.Equal(t, a, b, "same seed gave different sequences")
	assert.NotEqual(t, a, c, "different seeds gave the same sequence")
	assert.NotEqual(t, workload.Ascending(1000), a, "sequence not shuffled")

	sorted := append([]int{}, a...)
	sort.Ints(sorted)
	assert.Equal(t, workload.Ascending(1000), sorted, "not a permutation")

	assert.Equal(t, a[:500], workload.Half(a), "wrong half")
	assert.Equal(t, 0, len(workload.Half([]int{7})), "half of one")
}

func TestChurn(t *testing.T) {
	const size = 50

	c := workload.NewChurn(size, rand.New(rand.NewSource(7)))
	assert.Equal(t, size, c.Size(), "wrong size")

	live := map[int]bool{}
	for _, k := range c.Initial() {
		live[k] = true
	}
	assert.Equal(t, size, len(live), "initial keys not distinct")

	for k := 0; k < 5*size; k += 1 {
		remove, add := c.Step(k)
		if !assert.True(t, live[remove], "step: %d removed key: %d not live", k, remove) {
			return
		}
		delete(live, remove)
		assert.False(t, live[add], "step: %d added key: %d already live", k, add)
		live[add] = true

		if k >= size {
			assert.Equal(t, remove, add, "step: %d steady state", k)
		}
	}

	assert.Equal(t, size, len(live), "live count changed")
	for _, k := range c.Live() {
		assert.True(t, live[k], "live key: %d missing", k)
	}
}

func TestChurnFirstPass(t *testing.T) {
	const size = 20

	c := workload.NewChurn(size, rand.New(rand.NewSource(99)))
	initial := c.Initial()

	added := map[int]bool{}
	for k := 0; k < size; k += 1 {
		remove, add := c.Step(k)
		assert.Equal(t, initial[k], remove, "step: %d wrong removal", k)
		added[add] = true
	}

	// the first pass swaps in the whole second half of the pool
	for _, k := range initial {
		assert.False(t, added[k], "initial key: %d added again", k)
	}
	assert.Equal(t, size, len(added), "added keys not distinct")
}
