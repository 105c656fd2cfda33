// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/avlbench/background"
	"github.com/bitmark-inc/avlbench/benchmark"
	"github.com/bitmark-inc/avlbench/fault"
	"github.com/bitmark-inc/avlbench/results"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: %s, %d were detected", program, fault.ErrMissingConfiguration, len(options["config-file"]))
	}

	variables, err := getVariables(arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// these commands only read the results database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	// ------------------
	// start of real main
	// ------------------

	recorder, collected, err := openRecorders(log, theConfiguration)
	if nil != err {
		log.Criticalf("results initialise error: %s", err)
		exitwithstatus.Message("results initialise error: %s", err)
	}

	runner, err := benchmark.New(&theConfiguration.Benchmark, recorder, logger.New("benchmark"))
	if nil != err {
		recorder.Close()
		log.Criticalf("benchmark initialise error: %s", err)
		exitwithstatus.Message("benchmark initialise error: %s", err)
	}

	// if memory logging enabled
	processes := background.Processes{}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memstats{log: logger.New("memory")})
	}
	bg := background.Start(processes, nil)

	// turn Signals into cancellation
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	n, err := runner.Run(ctx)
	cancel()
	bg.Stop()

	fault.PanicIfError("close results", recorder.Close())

	if nil != err {
		log.Criticalf("benchmark stopped after: %d rows  error: %s", n, err)
		exitwithstatus.Message("benchmark stopped after: %d rows  error: %s", n, err)
	}
	log.Infof("recorded: %d rows", n)

	if err := printReport(os.Stdout, collected.rows); nil != err {
		exitwithstatus.Message("report error: %s", err)
	}
}

// the results database always, the CSV file if configured, and the
// in-memory rows for the final report
func openRecorders(log *logger.L, options *Configuration) (results.Recorder, *collector, error) {

	store, err := results.Open(options.Results.Database.Name, results.ReadWrite)
	if nil != err {
		return nil, nil, err
	}
	log.Infof("database: %q  existing rows: %d", options.Results.Database.Name, store.Count())

	collected := &collector{}
	recorders := []results.Recorder{store, collected}

	if "" != options.Results.CSV {
		csv, err := results.CreateCSV(options.Results.CSV)
		if nil != err {
			store.Close()
			return nil, nil, err
		}
		log.Infof("csv: %q", options.Results.CSV)
		recorders = append(recorders, csv)
	}

	recorder, err := results.Multi(recorders...)
	if nil != err {
		store.Close()
		return nil, nil, err
	}
	return recorder, collected, nil
}
