// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbench/avl"
)

type metadata struct {
	mode    avl.Mode
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "inspect AVL trees built from small key lists"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "mode, m",
			Value: avl.Standard.String(),
			Usage: " two child delete replacement `MODE` [standard|optimized]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "show",
			Usage:     "insert keys and print the resulting tree",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " print summary as JSON",
				},
			},
			Action: runShow,
		},
		{
			Name:      "delete",
			Usage:     "insert keys, delete one and print the tree before and after",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*key to delete `KEY`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "compare",
			Usage:     "delete one key from the same tree in every mode",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*key to delete `KEY`",
				},
			},
			Action: runCompare,
		},
		{
			Name:      "churn",
			Usage:     "run a steady state delete/insert workload and print the counters",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "size, s",
					Value: 1000,
					Usage: " live key `COUNT`",
				},
				cli.IntFlag{
					Name:  "operations, o",
					Value: 10000,
					Usage: " delete/insert pair `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: " random `SEED` for the key pool",
				},
			},
			Action: runChurn,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		mode, err := avl.ParseMode(c.GlobalString("mode"))
		if nil != err {
			return fmt.Errorf("mode: %q: %s", c.GlobalString("mode"), err)
		}

		c.App.Metadata["config"] = &metadata{
			mode:    mode,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
