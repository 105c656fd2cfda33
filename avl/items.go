// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Int - an integer key
type Int int

// Compare - integer comparison for AVL interface
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - a string key
type String string

// Compare - lexical comparison for AVL interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}
