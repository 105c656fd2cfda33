// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlbench/avl"
	"github.com/bitmark-inc/avlbench/benchmark"
	"github.com/bitmark-inc/avlbench/configuration"
	"github.com/bitmark-inc/avlbench/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultCSVFile = "results.csv"

	defaultLevelDBDirectory = "data"
	defaultResultsDatabase  = "results.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "avlbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSeed             = 1
	defaultRepetitions      = 5
	defaultChurnSize        = 100000
	defaultChurnOperations  = 1000000
	defaultSearchOperations = 1000000
	defaultProgressInterval = "10s"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
	defaultSizes = []int{1000, 10000, 100000, 1000000}
)

// DatabaseType - LevelDB location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ResultsType - where rows are recorded, a blank CSV file disables it
type ResultsType struct {
	CSV      string       `gluamapper:"csv" json:"csv"`
	Database DatabaseType `gluamapper:"database" json:"database"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string                  `gluamapper:"data_directory" json:"data_directory"`
	Results       ResultsType             `gluamapper:"results" json:"results"`
	Benchmark     benchmark.Configuration `gluamapper:"benchmark" json:"benchmark"`
	Logging       logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Results: ResultsType{
			CSV: defaultCSVFile,
			Database: DatabaseType{
				Directory: defaultLevelDBDirectory,
				Name:      defaultResultsDatabase,
			},
		},

		Benchmark: benchmark.Configuration{
			Seed:        defaultSeed,
			Repetitions: defaultRepetitions,
			LongRunning: benchmark.ChurnConfiguration{
				Size:       defaultChurnSize,
				Operations: defaultChurnOperations,
			},
			SearchOperations: defaultSearchOperations,
			Check:            false,
			ProgressInterval: defaultProgressInterval,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// list defaults are only applied when the file gives none, since
	// decoding into a non-empty slice overwrites element by element
	if 0 == len(options.Benchmark.Sizes) {
		options.Benchmark.Sizes = append([]int{}, defaultSizes...)
	}
	if 0 == len(options.Benchmark.Scenarios) {
		options.Benchmark.Scenarios = benchmark.Scenarios()
	}
	if 0 == len(options.Benchmark.Methods) {
		options.Benchmark.Methods = []string{avl.Standard.String(), avl.Optimized.String()}
	}

	if err := options.Benchmark.Validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Results.CSV,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Results.Database.Directory,
		&options.Logging.Directory,
	} {
		*d, err = util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Results.Database.Name, &options.Results.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		if nil == f[1] {
			if _, err := util.EnsurePlainName("", *f[0]); nil != err {
				return nil, err
			}
			continue
		}
		*f[0], err = util.EnsurePlainName(*f[1], *f[0])
		if nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
