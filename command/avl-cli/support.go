// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlbench/avl"
)

// state of a tree after a command
type summary struct {
	Mode         string    `json:"mode"`
	Count        int       `json:"count"`
	Height       int       `json:"height"`
	AverageDepth float64   `json:"averageDepth"`
	Root         avl.Item  `json:"root"`
	Stats        avl.Stats `json:"stats"`
	Check        string    `json:"check"`
}

func parseKey(s string) (avl.Int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return avl.Int(i), nil
}

func parseKeys(args []string) ([]avl.Int, error) {
	if 0 == len(args) {
		return nil, ErrNoKeys
	}
	keys := make([]avl.Int, 0, len(args))
	for _, a := range args {

		// allow comma separated lists as well
		for _, s := range strings.Split(a, ",") {
			if "" == s {
				continue
			}
			k, err := parseKey(s)
			if nil != err {
				return nil, err
			}
			keys = append(keys, k)
		}
	}
	if 0 == len(keys) {
		return nil, ErrNoKeys
	}
	return keys, nil
}

// the key given by a --key option
func requiredKey(s string) (avl.Int, error) {
	if "" == strings.TrimSpace(s) {
		return 0, ErrMissingKey
	}
	return parseKey(s)
}

func buildTree(mode avl.Mode, keys []avl.Int) (*avl.Tree, error) {
	tree, err := avl.New(mode)
	if nil != err {
		return nil, err
	}
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree, nil
}

func summarise(tree *avl.Tree) summary {
	check := "ok"
	if err := tree.Check(); nil != err {
		check = err.Error()
	}
	return summary{
		Mode:         tree.Mode().String(),
		Count:        tree.Count(),
		Height:       tree.Height(),
		AverageDepth: tree.AverageDepth(),
		Root:         tree.Root(),
		Stats:        tree.Stats(),
		Check:        check,
	}
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "mode:          %s\n", s.Mode)
	fmt.Fprintf(w, "count:         %d\n", s.Count)
	fmt.Fprintf(w, "height:        %d\n", s.Height)
	fmt.Fprintf(w, "average depth: %.4f\n", s.AverageDepth)
	fmt.Fprintf(w, "rotations:     %d\n", s.Stats.Rotations)
	fmt.Fprintf(w, "comparisons:   %d\n", s.Stats.Comparisons)
	fmt.Fprintf(w, "check:         %s\n", s.Check)
}
