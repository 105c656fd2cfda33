// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *node
	count    int
	mode     Mode
	replacer replacer
	stats    stats
	alloc    allocator
	path     []step // descent stack shared by nested operations
}

// New - create an initially empty tree
func New(mode Mode) (*Tree, error) {
	r, err := mode.replacer()
	if nil != err {
		return nil, err
	}
	return &Tree{
		root:     nil,
		count:    0,
		mode:     mode,
		replacer: r,
		path:     make([]step, 0, 64),
	}, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Mode - the replacement mode fixed at creation
func (tree *Tree) Mode() Mode {
	return tree.mode
}

// Root - return the key at the root of the tree, nil if empty
func (tree *Tree) Root() Item {
	if nil == tree.root {
		return nil
	}
	return tree.root.key
}

// KeysAtDepth - returns the keys of all nodes at a specific depth,
// left to right, the root is at depth zero
func (tree *Tree) KeysAtDepth(depth int) []Item {
	keys := []Item{}
	if nil == tree.root || depth < 0 {
		return keys
	}

	level := []*node{tree.root}
	for ; depth > 0 && len(level) > 0; depth -= 1 {
		next := make([]*node, 0, 2*len(level))
		for _, p := range level {
			if nil != p.left {
				next = append(next, p.left)
			}
			if nil != p.right {
				next = append(next, p.right)
			}
		}
		level = next
	}
	for _, p := range level {
		keys = append(keys, p.key)
	}
	return keys
}
