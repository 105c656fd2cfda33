// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// an equal key is not overwritten, the new node is placed to its right
func (tree *Tree) Insert(key Item) {
	tree.root = tree.insert(key, tree.root)
	tree.count += 1
}

// internal routine for insert, returns the new sub-tree root
func (tree *Tree) insert(key Item, p *node) *node {
	base := len(tree.path)

	for nil != p {
		tree.stats.comparisons.Increment()
		if p.key.Compare(key) > 0 { // p.key > key
			tree.path = append(tree.path, step{p: p, br: left})
			p = p.left
		} else { // p.key <= key
			tree.path = append(tree.path, step{p: p, br: right})
			p = p.right
		}
	}

	sub := tree.alloc.newNode(key)

	for i := len(tree.path) - 1; i >= base; i -= 1 {
		s := tree.path[i]
		s.p.attach(s.br, sub)
		sub = tree.balanceInsert(s.p, key)
	}
	tree.path = tree.path[:base]
	return sub
}

// insert: tree balancer
//
// the rotation case is chosen by comparing the inserted key with the
// child key on the heavy side
func (tree *Tree) balanceInsert(p *node, key Item) *node {
	p.fixHeight()
	b := balance(p)

	if b > 1 {
		if p.left.key.Compare(key) > 0 { // key < left.key
			return tree.rotateRight(p)
		}
		// double LR rotation
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p)
	}

	if b < -1 {
		if p.right.key.Compare(key) > 0 { // key < right.key
			// double RL rotation
			p.right = tree.rotateRight(p.right)
			return tree.rotateLeft(p)
		}
		return tree.rotateLeft(p)
	}
	return p
}
