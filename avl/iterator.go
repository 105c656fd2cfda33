// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the lowest key, nil if the tree is empty
func (tree *Tree) First() Item {
	if p := tree.root.first(); nil != p {
		return p.key
	}
	return nil
}

// internal: lowest node in a sub-tree
func (p *node) first() *node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the highest key, nil if the tree is empty
func (tree *Tree) Last() Item {
	if p := tree.root.last(); nil != p {
		return p.key
	}
	return nil
}

// internal: highest node in a sub-tree
func (p *node) last() *node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Walk - visit every key in ascending order until f returns false
func (tree *Tree) Walk(f func(key Item) bool) {
	stack := make([]*node, 0, height(tree.root))
	p := tree.root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(p.key) {
			return
		}
		p = p.right
	}
}

// Keys - all keys in ascending order, duplicates included
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	tree.Walk(func(key Item) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
