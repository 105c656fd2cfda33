// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Height - cached height of the tree, zero if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// BalanceAtRoot - height(left) - height(right) at the root
func (tree *Tree) BalanceAtRoot() int {
	return balance(tree.root)
}

// AverageDepth - mean depth of all nodes, the root has depth zero
//
// computed by a full traversal without reference to the cached
// heights, so it can be used to cross check them
func (tree *Tree) AverageDepth() float64 {
	if nil == tree.root {
		return 0
	}

	type item struct {
		p     *node
		depth int
	}

	nodes := 0
	total := 0
	stack := []item{{p: tree.root, depth: 0}}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nodes += 1
		total += i.depth
		if nil != i.p.left {
			stack = append(stack, item{p: i.p.left, depth: i.depth + 1})
		}
		if nil != i.p.right {
			stack = append(stack, item{p: i.p.right, depth: i.depth + 1})
		}
	}
	return float64(total) / float64(nodes)
}
