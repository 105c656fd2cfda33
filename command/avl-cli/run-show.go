// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mode: %s\n", m.mode)
		fmt.Fprintf(m.e, "keys: %v\n", keys)
	}

	tree, err := buildTree(m.mode, keys)
	if nil != err {
		return err
	}

	if c.Bool("json") {
		return printJson(m.w, summarise(tree))
	}

	tree.Print(m.w)
	printSummary(m.w, summarise(tree))

	return nil
}
