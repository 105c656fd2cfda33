// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/avlbench/fault"
	"github.com/bitmark-inc/avlbench/report"
	"github.com/bitmark-inc/avlbench/results"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

// setup command handler
//
// commands that need neither the configuration file nor logging
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false

	case "summary", "sum":
		return false // defer processing until database is opened

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--memory-stats] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  start [NAME=VALUE...]      (run)    - run the benchmark, same as no arguments\n")
		fmt.Printf("                                        each NAME is set as a Lua global string\n")
		fmt.Printf("                                        before the configuration file is read\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  summary                    (sum)    - print the aggregated results of all\n")
		fmt.Printf("                                        rows held in the results database\n")
		fmt.Printf("\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// split NAME=VALUE arguments into Lua variables
func getVariables(arguments []string) (map[string]string, error) {
	variables := make(map[string]string)
	if len(arguments) < 2 {
		return variables, nil
	}
	for _, a := range arguments[1:] {
		s := strings.SplitN(a, "=", 2)
		if 2 != len(s) || "" == strings.TrimSpace(s[0]) {
			return nil, fmt.Errorf("argument: %q is not NAME=VALUE", a)
		}
		variables[strings.TrimSpace(s[0])] = s[1]
	}
	return variables, nil
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the results database is read but no benchmark is run
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "summary", "sum":
		store, err := results.Open(options.Results.Database.Name, results.ReadOnly)
		if nil != err {
			log.Errorf("open: %q  error: %s", options.Results.Database.Name, err)
			exitwithstatus.Message("error: open: %q  error: %s", options.Results.Database.Name, err)
		}
		defer store.Close()

		rows, err := store.Rows()
		if nil != err {
			exitwithstatus.Message("error: read results: %s", err)
		}
		if 0 == len(rows) {
			exitwithstatus.Message("error: %s", fault.ErrMissingResults)
		}
		log.Infof("summary of: %d rows", len(rows))

		if err := printReport(os.Stdout, rows); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// summary table followed by the method comparison
func printReport(w io.Writer, rows []results.Row) error {
	summaries := report.Summarise(rows)
	if err := report.Write(w, summaries); nil != err {
		return err
	}
	fmt.Fprintf(w, "\n")
	return report.WriteComparison(w, report.Compare(summaries))
}

// keeps the rows of the current run for the final report
type collector struct {
	rows []results.Row
}

func (c *collector) Record(row results.Row) error {
	c.rows = append(c.rows, row)
	return nil
}

func (c *collector) Close() error {
	return nil
}
