// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the key is in the tree
//
// searches are not counted in the comparison statistics
func (tree *Tree) Search(key Item) bool {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		if 0 == c {
			return true
		}
		if c > 0 { // p.key > key
			p = p.left
		} else {
			p = p.right
		}
	}
	return false
}
