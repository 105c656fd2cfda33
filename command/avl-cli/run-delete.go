// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := requiredKey(c.String("key"))
	if nil != err {
		return err
	}
	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mode: %s\n", m.mode)
		fmt.Fprintf(m.e, "keys: %v\n", keys)
		fmt.Fprintf(m.e, "delete: %d\n", key)
	}

	tree, err := buildTree(m.mode, keys)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "before:\n")
	tree.Print(m.w)

	// only the delete is counted
	tree.ResetStats()
	if !tree.Delete(key) {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}

	fmt.Fprintf(m.w, "after:\n")
	tree.Print(m.w)
	printSummary(m.w, summarise(tree))

	return nil
}
