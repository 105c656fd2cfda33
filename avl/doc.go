// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with cached node heights and
// instrumented rebalancing
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  The statistics counters may be read from another
//       go routine.
//
// Keys form a multiset: a duplicate key is always placed in the right
// sub-tree of an equal key.  There are no parent pointers; insert and
// delete record their descent on an explicit path stack and rebalance
// on the way back up, so tree height never consumes call stack.
//
// When a node with two children is deleted its key is replaced by a
// key donated from one of its sub-trees.  The tree mode selects the
// donor:
//
//   Standard  - always the in-order successor (leftmost of right)
//   Optimized - the in-order predecessor (rightmost of left) when the
//               left sub-tree is taller, otherwise the successor
//
// The two modes produce different shapes and rotation counts for the
// same sequence of operations; Stats reports the work done.
package avl
