// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbench/avl"
)

// delete the same key from identical trees, one per mode; the global
// mode option is ignored
func runCompare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := requiredKey(c.String("key"))
	if nil != err {
		return err
	}
	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	for i, mode := range avl.Modes() {
		tree, err := buildTree(mode, keys)
		if nil != err {
			return err
		}
		if 0 == i {
			fmt.Fprintf(m.w, "before:\n")
			tree.Print(m.w)
		}

		tree.ResetStats()
		if !tree.Delete(key) {
			return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
		}

		fmt.Fprintf(m.w, "\n%s:\n", mode)
		tree.Print(m.w)
		printSummary(m.w, summarise(tree))
	}

	return nil
}
