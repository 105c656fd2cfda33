// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes one node matching the key from the tree
//
// returns false, leaving the tree unchanged, if the key is not present
func (tree *Tree) Delete(key Item) bool {
	root, removed := tree.delete(key, tree.root)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the new sub-tree root
//
// also used by the replacement strategies to remove the donor key,
// in which case it runs above the caller's entries on the path stack
func (tree *Tree) delete(key Item, p *node) (*node, bool) {
	base := len(tree.path)
	top := p

search:
	for nil != p {
		tree.stats.comparisons.Increment()
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			tree.path = append(tree.path, step{p: p, br: left})
			p = p.left
		case c < 0: // p.key < key
			tree.path = append(tree.path, step{p: p, br: right})
			p = p.right
		default:
			break search
		}
	}

	if nil == p { // key not in tree
		tree.path = tree.path[:base]
		return top, false
	}

	// found: delete p
	var sub *node
	if nil == p.left {
		sub = p.right
		tree.alloc.freeNode(p) // return deleted node to pool
	} else if nil == p.right {
		sub = p.left
		tree.alloc.freeNode(p)
	} else {
		k, donor, br := tree.replacer.replace(tree, p)
		p.key = k
		p.attach(br, donor)
		sub = tree.balanceDelete(p)
	}

	// the nested donor delete may have grown the stack, so index afresh
	for i := len(tree.path) - 1; i >= base; i -= 1 {
		s := tree.path[i]
		s.p.attach(s.br, sub)
		sub = tree.balanceDelete(s.p)
	}
	tree.path = tree.path[:base]
	return sub, true
}

// delete: tree balancer
//
// the rotation case is chosen by the balance of the child on the heavy
// side, unlike insert which compares keys
func (tree *Tree) balanceDelete(p *node) *node {
	p.fixHeight()
	b := balance(p)

	if b > 1 {
		if balance(p.left) >= 0 {
			return tree.rotateRight(p)
		}
		// double LR rotation
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p)
	}

	if b < -1 {
		if balance(p.right) <= 0 {
			return tree.rotateLeft(p)
		}
		// double RL rotation
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p)
	}
	return p
}
