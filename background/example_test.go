// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/avlbench/background"
)

type reporter struct {
	count int
}

func Example() {

	proc := &reporter{}

	processes := background.Processes{
		proc,
	}

	p := background.Start(processes, "cell: random/1000")
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	// Output:
	// start: cell: random/1000
	// stop
}

func (state *reporter) Run(args interface{}, shutdown <-chan struct{}) {

	fmt.Printf("start: %v\n", args)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		state.count += 1
		time.Sleep(time.Millisecond)
	}

	fmt.Printf("stop\n")
}
