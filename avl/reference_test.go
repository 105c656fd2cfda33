// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// a straightforward recursive balancer used as the reference for the
// iterative one; it shares no code with the tree apart from Item
type refNode struct {
	key    Item
	left   *refNode
	right  *refNode
	height int
}

type refTree struct {
	root        *refNode
	mode        Mode
	rotations   uint64
	comparisons uint64
}

func refHeight(p *refNode) int {
	if nil == p {
		return 0
	}
	return p.height
}

func refBalance(p *refNode) int {
	if nil == p {
		return 0
	}
	return refHeight(p.left) - refHeight(p.right)
}

func (p *refNode) fix() {
	p.height = 1 + refHeight(p.left)
	if h := 1 + refHeight(p.right); h > p.height {
		p.height = h
	}
}

func (r *refTree) right(z *refNode) *refNode {
	r.rotations += 1
	y := z.left
	z.left, y.right = y.right, z
	z.fix()
	y.fix()
	return y
}

func (r *refTree) left(z *refNode) *refNode {
	r.rotations += 1
	y := z.right
	z.right, y.left = y.left, z
	z.fix()
	y.fix()
	return y
}

func (r *refTree) insert(p *refNode, key Item) *refNode {
	if nil == p {
		return &refNode{key: key, height: 1}
	}
	r.comparisons += 1
	if p.key.Compare(key) > 0 {
		p.left = r.insert(p.left, key)
	} else {
		p.right = r.insert(p.right, key)
	}
	p.fix()
	switch b := refBalance(p); {
	case b > 1 && p.left.key.Compare(key) > 0:
		return r.right(p)
	case b > 1:
		p.left = r.left(p.left)
		return r.right(p)
	case b < -1 && p.right.key.Compare(key) > 0:
		p.right = r.right(p.right)
		return r.left(p)
	case b < -1:
		return r.left(p)
	}
	return p
}

func (r *refTree) delete(p *refNode, key Item) (*refNode, bool) {
	if nil == p {
		return nil, false
	}
	r.comparisons += 1
	found := true
	switch c := p.key.Compare(key); {
	case c > 0:
		p.left, found = r.delete(p.left, key)
	case c < 0:
		p.right, found = r.delete(p.right, key)
	default:
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}
		if Optimized == r.mode && refHeight(p.left) > refHeight(p.right) {
			q := p.left
			for nil != q.right {
				q = q.right
			}
			p.key = q.key
			p.left, _ = r.delete(p.left, q.key)
		} else {
			q := p.right
			for nil != q.left {
				q = q.left
			}
			p.key = q.key
			p.right, _ = r.delete(p.right, q.key)
		}
	}
	if !found {
		return p, false
	}
	p.fix()
	switch b := refBalance(p); {
	case b > 1 && refBalance(p.left) >= 0:
		return r.right(p), true
	case b > 1:
		p.left = r.left(p.left)
		return r.right(p), true
	case b < -1 && refBalance(p.right) <= 0:
		return r.left(p), true
	case b < -1:
		p.right = r.right(p.right)
		return r.left(p), true
	}
	return p, true
}

// pre-order rendering of keys and heights, enough to compare shapes
func refShape(b *strings.Builder, p *refNode) {
	if nil == p {
		b.WriteString(".")
		return
	}
	fmt.Fprintf(b, "(%v:%d ", p.key, p.height)
	refShape(b, p.left)
	refShape(b, p.right)
	b.WriteString(")")
}

func treeShape(b *strings.Builder, p *node) {
	if nil == p {
		b.WriteString(".")
		return
	}
	fmt.Fprintf(b, "(%v:%d ", p.key, p.height)
	treeShape(b, p.left)
	treeShape(b, p.right)
	b.WriteString(")")
}

func sameTree(t *testing.T, tree *Tree, ref *refTree, stage string) {
	want := &strings.Builder{}
	refShape(want, ref.root)
	got := &strings.Builder{}
	treeShape(got, tree.root)
	if want.String() != got.String() {
		t.Fatalf("%s: %s: shape:\n actual: %s\n expected: %s", tree.mode, stage, got, want)
	}
	s := tree.Stats()
	if s.Rotations != ref.rotations || s.Comparisons != ref.comparisons {
		t.Fatalf("%s: %s: stats: actual: %+v  expected: rotations: %d  comparisons: %d",
			tree.mode, stage, s, ref.rotations, ref.comparisons)
	}
}

func TestReferenceBalancer(t *testing.T) {
	for _, mode := range Modes() {
		for _, keyRange := range []int{40, 1000} {
			r := rand.New(rand.NewSource(int64(keyRange)))
			tree, err := New(mode)
			if nil != err {
				t.Fatalf("new: %s", err)
			}
			ref := &refTree{mode: mode}

			for i := 0; i < 4000; i += 1 {
				key := Int(r.Intn(keyRange))
				stage := fmt.Sprintf("step: %d insert: %d", i, key)
				if r.Intn(5) < 2 {
					stage = fmt.Sprintf("step: %d delete: %d", i, key)
					var refFound bool
					ref.root, refFound = ref.delete(ref.root, key)
					if found := tree.Delete(key); found != refFound {
						t.Fatalf("%s: %s: found: %t  expected: %t", mode, stage, found, refFound)
					}
				} else {
					ref.root = ref.insert(ref.root, key)
					tree.Insert(key)
				}
				sameTree(t, tree, ref, stage)
			}
			if 0 != len(tree.path) {
				t.Fatalf("%s: path stack not empty: %d", mode, len(tree.path))
			}
		}
	}
}

// freed nodes are reused before new ones are allocated
func TestAllocatorReuse(t *testing.T) {
	tree, err := New(Standard)
	if nil != err {
		t.Fatalf("new: %s", err)
	}
	for i := 0; i < 100; i += 1 {
		tree.Insert(Int(i))
	}
	for i := 0; i < 60; i += 1 {
		tree.Delete(Int(i))
	}
	if 100 != tree.alloc.totalNodes || 60 != tree.alloc.freeNodes {
		t.Fatalf("pool: total: %d  free: %d", tree.alloc.totalNodes, tree.alloc.freeNodes)
	}
	for i := 0; i < 50; i += 1 {
		tree.Insert(Int(i))
	}
	if 100 != tree.alloc.totalNodes || 10 != tree.alloc.freeNodes {
		t.Fatalf("pool after reuse: total: %d  free: %d", tree.alloc.totalNodes, tree.alloc.freeNodes)
	}
}
