// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// one level of a descent: the node and the branch taken from it
type step struct {
	p  *node
	br branch
}

// cached height, zero for an empty sub-tree
func height(p *node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// height(left) - height(right), zero for an empty sub-tree
func balance(p *node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func (p *node) fixHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// attach a sub-tree on the given branch
func (p *node) attach(br branch, sub *node) {
	if left == br {
		p.left = sub
	} else {
		p.right = sub
	}
}

// promote the left child of z, returns the new sub-tree root
func (tree *Tree) rotateRight(z *node) *node {
	tree.stats.rotations.Increment()
	y := z.left
	z.left = y.right
	y.right = z
	z.fixHeight()
	y.fixHeight()
	return y
}

// promote the right child of z, returns the new sub-tree root
func (tree *Tree) rotateLeft(z *node) *node {
	tree.stats.rotations.Increment()
	y := z.right
	z.right = y.left
	y.left = z
	z.fixHeight()
	y.fixHeight()
	return y
}
