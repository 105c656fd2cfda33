// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark_test

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbench/results"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// keeps every row in memory
type memory struct {
	rows   []results.Row
	closed bool
}

func (m *memory) Record(row results.Row) error {
	m.rows = append(m.rows, row)
	return nil
}

func (m *memory) Close() error {
	m.closed = true
	return nil
}
