// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbench/avl"
	"github.com/bitmark-inc/avlbench/workload"
)

func runChurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	size := c.Int("size")
	if size <= 0 {
		return fmt.Errorf("invalid size: %d", size)
	}
	operations := c.Int("operations")
	if operations < 0 {
		return fmt.Errorf("invalid operations: %d", operations)
	}
	seed := c.Int64("seed")

	if m.verbose {
		fmt.Fprintf(m.e, "mode: %s\n", m.mode)
		fmt.Fprintf(m.e, "size: %d\n", size)
		fmt.Fprintf(m.e, "operations: %d\n", operations)
		fmt.Fprintf(m.e, "seed: %d\n", seed)
	}

	churn := workload.NewChurn(size, rand.New(rand.NewSource(seed)))

	tree, err := avl.New(m.mode)
	if nil != err {
		return err
	}
	for _, k := range churn.Initial() {
		tree.Insert(avl.Int(k))
	}
	tree.ResetStats()

	start := time.Now()
	for k := 0; k < operations; k += 1 {
		remove, add := churn.Step(k)
		tree.Delete(avl.Int(remove))
		tree.Insert(avl.Int(add))
	}
	elapsed := time.Since(start)

	if m.verbose {
		fmt.Fprintf(m.e, "elapsed: %s\n", elapsed)
	}

	printSummary(m.w, summarise(tree))
	if tree.Count() != size {
		return fmt.Errorf("count: %d  expected: %d", tree.Count(), size)
	}
	return nil
}
