// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// replacement selection for a node with two children
//
// replace picks a donor key from one sub-tree of p and deletes it from
// that sub-tree; it returns the donor key, the rebalanced sub-tree and
// the branch it belongs on.  p itself is not modified.
type replacer interface {
	replace(tree *Tree, p *node) (Item, *node, branch)
}

// Standard: always the in-order successor
type successor struct{}

func (successor) replace(tree *Tree, p *node) (Item, *node, branch) {
	key := p.right.first().key
	sub, _ := tree.delete(key, p.right)
	return key, sub, right
}

// Optimized: the predecessor when the left side is strictly taller,
// otherwise the successor
type tallerSide struct{}

func (tallerSide) replace(tree *Tree, p *node) (Item, *node, branch) {
	if height(p.left) > height(p.right) {
		key := p.left.last().key
		sub, _ := tree.delete(key, p.left)
		return key, sub, left
	}
	return successor{}.replace(tree, p)
}
