// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbench/avl"
	"github.com/bitmark-inc/avlbench/fault"
)

func ints(tree *avl.Tree) []int {
	keys := []int{}
	for _, k := range tree.Keys() {
		keys = append(keys, int(k.(avl.Int)))
	}
	return keys
}

func build(t *testing.T, mode avl.Mode, keys ...int) *avl.Tree {
	tree := newTree(t, mode)
	for _, k := range keys {
		tree.Insert(avl.Int(k))
	}
	return tree
}

func TestNewMode(t *testing.T) {
	for _, mode := range []avl.Mode{avl.Standard, avl.Optimized} {
		tree, err := avl.New(mode)
		assert.Nil(t, err, "valid mode rejected")
		assert.Equal(t, mode, tree.Mode(), "wrong mode")
		assert.True(t, tree.IsEmpty(), "new tree not empty")
	}

	for _, mode := range []avl.Mode{0, 3, -1} {
		tree, err := avl.New(mode)
		assert.Nil(t, tree, "tree created for invalid mode")
		assert.Equal(t, fault.ErrInvalidMode, err, "wrong error")
		assert.True(t, fault.IsErrInvalid(err), "not an invalid argument")
	}
}

func TestParseMode(t *testing.T) {
	items := []struct {
		s    string
		mode avl.Mode
		ok   bool
	}{
		{"standard", avl.Standard, true},
		{"Standard", avl.Standard, true},
		{" OPTIMIZED ", avl.Optimized, true},
		{"optimised", avl.Optimized, true},
		{"", 0, false},
		{"balanced", 0, false},
	}
	for _, item := range items {
		mode, err := avl.ParseMode(item.s)
		if item.ok {
			assert.Nil(t, err, "parse: %q", item.s)
			assert.Equal(t, item.mode, mode, "parse: %q", item.s)
			assert.Equal(t, mode, must(avl.ParseMode(mode.String())), "round trip: %q", item.s)
		} else {
			assert.Equal(t, fault.ErrInvalidMode, err, "parse: %q", item.s)
		}
	}
	assert.Equal(t, "*unknown*", avl.Mode(9).String(), "unknown mode name")
}

func must(mode avl.Mode, err error) avl.Mode {
	if nil != err {
		panic(err)
	}
	return mode
}

func TestEmptyTree(t *testing.T) {
	for _, mode := range avl.Modes() {
		tree := newTree(t, mode)
		assert.Equal(t, 0, tree.Height(), "height")
		assert.Equal(t, 0, tree.BalanceAtRoot(), "balance")
		assert.Equal(t, 0.0, tree.AverageDepth(), "average depth")
		assert.Nil(t, tree.Root(), "root")
		assert.Nil(t, tree.First(), "first")
		assert.Nil(t, tree.Last(), "last")
		assert.False(t, tree.Search(avl.Int(1)), "search")
		assert.False(t, tree.Delete(avl.Int(1)), "delete")
		assert.Equal(t, avl.Stats{}, tree.Stats(), "stats")
		assert.Nil(t, tree.Check(), "check")
	}
}

func TestBalancedInsertion(t *testing.T) {
	tree := build(t, avl.Standard, 5, 3, 8, 1, 4, 7, 9)

	assert.Equal(t, avl.Int(5), tree.Root(), "root key")
	assert.Equal(t, 3, tree.Height(), "height")
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, ints(tree), "in-order")
	assert.Equal(t, avl.Stats{Rotations: 0, Comparisons: 10}, tree.Stats(), "stats")
	assert.InDelta(t, 10.0/7.0, tree.AverageDepth(), 1e-9, "average depth")
}

func TestAscendingInsertion(t *testing.T) {
	for _, mode := range avl.Modes() {
		tree := build(t, mode, 1, 2, 3, 4, 5, 6, 7)

		assert.Equal(t, 3, tree.Height(), "height")
		assert.Equal(t, avl.Int(4), tree.Root(), "root key")
		assert.Equal(t, uint64(4), tree.Stats().Rotations, "rotations")
		assert.Equal(t, uint64(14), tree.Stats().Comparisons, "comparisons")
		assert.Nil(t, tree.Check(), "check")
	}
}

// each of the four insert cases, one rotation call per single case
// and two per double case
func TestInsertCases(t *testing.T) {
	items := []struct {
		keys      []int
		root      int
		rotations uint64
	}{
		{[]int{3, 2, 1}, 2, 1}, // right
		{[]int{1, 2, 3}, 2, 1}, // left
		{[]int{3, 1, 2}, 2, 2}, // left-right
		{[]int{1, 3, 2}, 2, 2}, // right-left
	}
	for _, item := range items {
		tree := build(t, avl.Standard, item.keys...)
		assert.Equal(t, avl.Int(item.root), tree.Root(), "root for: %v", item.keys)
		assert.Equal(t, item.rotations, tree.Stats().Rotations, "rotations for: %v", item.keys)
		assert.Equal(t, 2, tree.Height(), "height for: %v", item.keys)
	}
}

// duplicates go right; equal to the heavy child key is treated as
// the outer case so balance is kept
func TestDuplicateInsertion(t *testing.T) {
	for _, mode := range avl.Modes() {
		tree := build(t, mode, 2, 2, 2, 2, 2, 2, 2)
		assert.Equal(t, 3, tree.Height(), "height")
		assert.Equal(t, 7, tree.Count(), "count")
		assert.Nil(t, tree.Check(), "check")

		for i := 7; i > 0; i -= 1 {
			assert.True(t, tree.Delete(avl.Int(2)), "delete duplicate: %d", i)
			assert.Equal(t, i-1, tree.Count(), "count")
			assert.Nil(t, tree.Check(), "check after delete")
		}
		assert.False(t, tree.Delete(avl.Int(2)), "delete from empty")
		assert.True(t, tree.IsEmpty(), "not empty")

		tree = build(t, mode, 5, 3, 3)
		assert.Equal(t, 2, tree.Height(), "height")
		assert.Equal(t, avl.Int(3), tree.Root(), "root")
		assert.Equal(t, []int{3, 3, 5}, ints(tree), "in-order")
		assert.Nil(t, tree.Check(), "check")
	}
}

// each of the four delete cases
func TestDeleteCases(t *testing.T) {
	items := []struct {
		keys      []int
		remove    int
		root      int
		rotations uint64
	}{
		{[]int{5, 3, 8, 1}, 8, 3, 1},    // right, left child balanced left
		{[]int{5, 3, 8, 4}, 8, 4, 2},    // left-right
		{[]int{5, 3, 8, 9}, 3, 8, 1},    // left, right child balanced right
		{[]int{5, 3, 8, 7}, 3, 7, 2},    // right-left
		{[]int{5, 3, 8, 1, 4}, 8, 3, 1}, // right, left child balanced
	}
	for _, item := range items {
		for _, mode := range avl.Modes() {
			tree := build(t, mode, item.keys...)
			tree.ResetStats()
			assert.True(t, tree.Delete(avl.Int(item.remove)), "delete: %d", item.remove)
			assert.Equal(t, avl.Int(item.root), tree.Root(), "root for: %v - %d", item.keys, item.remove)
			assert.Equal(t, item.rotations, tree.Stats().Rotations, "rotations for: %v - %d", item.keys, item.remove)
			assert.Nil(t, tree.Check(), "check")
		}
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	tree := build(t, avl.Standard, 5, 3, 8, 1, 4, 7, 9)
	tree.ResetStats()

	assert.False(t, tree.Delete(avl.Int(6)), "delete absent")
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, ints(tree), "in-order")
	assert.Equal(t, 7, tree.Count(), "count")
	// 5 → 8 → 7 → nil
	assert.Equal(t, avl.Stats{Rotations: 0, Comparisons: 3}, tree.Stats(), "stats")
}

func TestSearchNotCounted(t *testing.T) {
	tree := build(t, avl.Optimized, 5, 3, 8, 1, 4, 7, 9)
	before := tree.Stats()
	for i := 0; i < 12; i += 1 {
		tree.Search(avl.Int(i))
	}
	assert.Equal(t, before, tree.Stats(), "search changed stats")

	tree.ResetStats()
	assert.Equal(t, avl.Stats{}, tree.Stats(), "reset")
	assert.Equal(t, avl.Int(5), tree.Root(), "reset changed tree")
	assert.Equal(t, 3, tree.Height(), "reset changed tree")
}

func TestReinsertAfterDelete(t *testing.T) {
	for _, mode := range avl.Modes() {
		tree := build(t, mode, 10, 20, 30, 40, 50, 60, 70, 80)
		for _, k := range []int{40, 10, 80} {
			key := avl.Int(k)
			assert.True(t, tree.Delete(key), "delete: %d", k)
			assert.False(t, tree.Search(key), "search after delete: %d", k)
			tree.Insert(key)
			assert.True(t, tree.Search(key), "search after insert: %d", k)
			assert.Nil(t, tree.Check(), "check")
		}
	}
}

func TestRoundTrip(t *testing.T) {
	const n = 1000
	for _, mode := range avl.Modes() {
		r := rand.New(rand.NewSource(int64(mode)))
		keys := r.Perm(n)
		tree := build(t, mode, keys...)
		assert.Equal(t, n, tree.Count(), "count")

		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for _, k := range keys {
			assert.True(t, tree.Delete(avl.Int(k)), "delete: %d", k)
		}
		assert.True(t, tree.IsEmpty(), "not empty")
		assert.Equal(t, 0, tree.Height(), "height")
		assert.Equal(t, 0.0, tree.AverageDepth(), "average depth")
	}
}

// the same two-child delete under both policies: the left sub-tree of
// the root is taller so optimized takes the predecessor
func TestReplacementDivergence(t *testing.T) {
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2}

	standard := build(t, avl.Standard, keys...)
	optimized := build(t, avl.Optimized, keys...)
	assert.Equal(t, standard.Stats(), optimized.Stats(), "insert is mode independent")
	assert.Equal(t, avl.Stats{Rotations: 0, Comparisons: 13}, standard.Stats(), "insert stats")

	standard.ResetStats()
	optimized.ResetStats()
	assert.True(t, standard.Delete(avl.Int(5)), "standard delete")
	assert.True(t, optimized.Delete(avl.Int(5)), "optimized delete")

	assert.Equal(t, avl.Int(7), standard.Root(), "standard root")
	assert.Equal(t, 4, standard.Height(), "standard height")
	assert.Equal(t, avl.Stats{Rotations: 0, Comparisons: 3}, standard.Stats(), "standard stats")
	assert.InDelta(t, 11.0/7.0, standard.AverageDepth(), 1e-9, "standard average depth")

	assert.Equal(t, avl.Int(4), optimized.Root(), "optimized root")
	assert.Equal(t, 3, optimized.Height(), "optimized height")
	assert.Equal(t, avl.Stats{Rotations: 2, Comparisons: 3}, optimized.Stats(), "optimized stats")
	assert.InDelta(t, 10.0/7.0, optimized.AverageDepth(), 1e-9, "optimized average depth")

	expected := []int{1, 2, 3, 4, 7, 8, 9}
	assert.Equal(t, expected, ints(standard), "standard in-order")
	assert.Equal(t, expected, ints(optimized), "optimized in-order")
	assert.Nil(t, standard.Check(), "standard check")
	assert.Nil(t, optimized.Check(), "optimized check")
}

// equal sub-tree heights fall back to the successor
func TestReplacementTie(t *testing.T) {
	keys := []int{5, 3, 8, 1, 4, 7, 9}
	standard := build(t, avl.Standard, keys...)
	optimized := build(t, avl.Optimized, keys...)

	standard.Delete(avl.Int(5))
	optimized.Delete(avl.Int(5))

	assert.Equal(t, avl.Int(7), standard.Root(), "standard root")
	assert.Equal(t, avl.Int(7), optimized.Root(), "optimized root")
	assert.Equal(t, standard.KeysAtDepth(2), optimized.KeysAtDepth(2), "shape")
	assert.Equal(t, standard.Stats(), optimized.Stats(), "stats")
}

// steady state churn; optimized is expected to rotate less in total
// (measured around 12% fewer), allow a small margin
func TestChurnRotations(t *testing.T) {
	if testing.Short() {
		t.Skip("long churn")
	}

	const (
		size       = 2000
		operations = 20000
	)

	total := map[avl.Mode]uint64{}
	for seed := int64(1); seed <= 3; seed += 1 {
		for _, mode := range avl.Modes() {
			r := rand.New(rand.NewSource(seed))
			pool := r.Perm(2 * size)
			tree := build(t, mode, pool[:size]...)
			tree.ResetStats()

			for k := 0; k < operations; k += 1 {
				remove := pool[k%size]
				add := pool[(k+size)%len(pool)]
				assert.True(t, tree.Delete(avl.Int(remove)), "churn delete: %d", remove)
				tree.Insert(avl.Int(add))
				pool[k%size] = add
			}
			assert.Nil(t, tree.Check(), "check")
			assert.Equal(t, size, tree.Count(), "count")
			total[mode] += tree.Stats().Rotations
		}
	}

	t.Logf("rotations: standard: %d  optimized: %d", total[avl.Standard], total[avl.Optimized])
	assert.True(t, float64(total[avl.Optimized]) <= 1.02*float64(total[avl.Standard]),
		"optimized: %d  standard: %d", total[avl.Optimized], total[avl.Standard])
}
